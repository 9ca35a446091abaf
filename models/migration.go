package models

import (
	"log"

	"github.com/oficinadigital/workshop_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Client{},
		&Vehicle{},
		&Service{},
		&ActivityLog{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
