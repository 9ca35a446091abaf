// seed-dev loads a small demo dataset: two clients, three vehicles, and a
// handful of services including legacy status spellings written by the old
// billing process ("Processado", "Orçamento Solicitado").
//
// Usage (from backend directory):
//   DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed-dev
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/oficinadigital/workshop_backend/config"
	"github.com/oficinadigital/workshop_backend/models"
	"github.com/shopspring/decimal"
)

func main() {
	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}

	models.MigrateTable()

	clients := []*models.Client{
		{
			Name:   "João Pereira",
			Email:  "joao.pereira@example.com",
			Phone:  "+55 11 91234-5678",
			City:   "São Paulo",
			State:  "SP",
			Status: models.ClientStatusActive,
		},
		{
			Name:   "Maria Souza",
			Email:  "maria.souza@example.com",
			Phone:  "+55 21 99876-5432",
			City:   "Rio de Janeiro",
			State:  "RJ",
			Status: models.ClientStatusActive,
		},
	}
	for _, c := range clients {
		if err := db.WithContext(ctx).Where("name = ?", c.Name).FirstOrCreate(c).Error; err != nil {
			fmt.Fprintf(os.Stderr, "failed to seed client %s: %v\n", c.Name, err)
			os.Exit(1)
		}
	}

	vehicles := []*models.Vehicle{
		{ClientId: &clients[0].ID, Make: "Fiat", Model: "Uno", Year: 2015, Plate: "ABC-1234", Color: "Prata", FuelType: "flex", Odometer: 84500},
		{ClientId: &clients[1].ID, Make: "Volkswagen", Model: "Gol", Year: 2019, Plate: "DEF-5678", Color: "Branco", FuelType: "flex", Odometer: 32100},
		{Make: "Chevrolet", Model: "Onix", Year: 2021, Plate: "GHI-9012", Color: "Preto", FuelType: "gasolina", Odometer: 12800},
	}
	for _, v := range vehicles {
		if err := db.WithContext(ctx).Where("plate = ?", v.Plate).FirstOrCreate(v).Error; err != nil {
			fmt.Fprintf(os.Stderr, "failed to seed vehicle %s: %v\n", v.Plate, err)
			os.Exit(1)
		}
	}

	date := func(s string) time.Time {
		t, _ := time.Parse("2006-01-02", s)
		return t
	}

	services := []*models.Service{
		{
			VehicleId:    vehicles[0].ID,
			ClientId:     &clients[0].ID,
			ServiceTypes: models.ServiceTypeList{"Troca de Óleo", "Revisão"},
			Description:  "Revisão dos 80 mil km",
			Cost:         decimal.NewFromFloat(450.00),
			ServiceDate:  date("2026-08-10"),
			Status:       string(models.ServiceStatusConcluido),
			Mechanic:     "Carlos",
			LaborHours:   decimal.NewFromFloat(2.5),
		},
		{
			VehicleId:    vehicles[0].ID,
			ClientId:     &clients[0].ID,
			ServiceTypes: models.ServiceTypeList{"Alinhamento"},
			Cost:         decimal.NewFromFloat(120.00),
			ServiceDate:  date("2026-08-20"),
			// legacy spelling written by the old billing process
			Status:   "Processado",
			Mechanic: "Carlos",
		},
		{
			VehicleId:    vehicles[1].ID,
			ClientId:     &clients[1].ID,
			ServiceTypes: models.ServiceTypeList{"Troca de Pastilhas de Freio"},
			Cost:         decimal.NewFromFloat(380.00),
			ServiceDate:  date("2026-08-25"),
			Status:       string(models.ServiceStatusEmAndamento),
			Mechanic:     "Rafael",
			LaborHours:   decimal.NewFromFloat(1.5),
		},
		{
			VehicleId:    vehicles[2].ID,
			ServiceTypes: models.ServiceTypeList{"Funilaria"},
			Cost:         decimal.NewFromFloat(0),
			ServiceDate:  date("2026-08-28"),
			// quote requested; normalizes to pending
			Status: "Orçamento Solicitado",
		},
	}
	for _, s := range services {
		if err := db.WithContext(ctx).
			Where("vehicle_id = ? AND service_date = ? AND service_types = ?", s.VehicleId, s.ServiceDate, s.ServiceTypes.Format()).
			FirstOrCreate(s).Error; err != nil {
			fmt.Fprintf(os.Stderr, "failed to seed service: %v\n", err)
			os.Exit(1)
		}
	}

	// derive vehicle statuses from the seeded services
	for _, v := range vehicles {
		if err := models.SyncVehicleStatus(ctx, v.ID); err != nil {
			fmt.Fprintf(os.Stderr, "failed to sync vehicle %d status: %v\n", v.ID, err)
			os.Exit(1)
		}
	}

	fmt.Println("seeded demo dataset")
}
