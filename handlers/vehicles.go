package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/oficinadigital/workshop_backend/models"
)

func CreateVehicle() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewVehicle
		if err := c.ShouldBindJSON(&input); err != nil {
			writeBindError(c, err)
			return
		}
		vehicle, err := models.CreateVehicle(c.Request.Context(), &input)
		if err != nil {
			writeModelError(c, err)
			return
		}
		c.JSON(http.StatusCreated, vehicle)
	}
}

func GetVehicle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		vehicle, err := models.GetVehicle(c.Request.Context(), id)
		if err != nil {
			writeModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, vehicle)
	}
}

func ListVehicles() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientId, _ := strconv.Atoi(c.Query("client_id"))
		vehicles, err := models.ListVehicles(c.Request.Context(),
			clientId,
			models.VehicleStatus(c.Query("status")))
		if err != nil {
			writeModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, vehicles)
	}
}

func UpdateVehicle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var input models.NewVehicle
		if err := c.ShouldBindJSON(&input); err != nil {
			writeBindError(c, err)
			return
		}
		vehicle, err := models.UpdateVehicle(c.Request.Context(), id, &input)
		if err != nil {
			writeModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, vehicle)
	}
}

func DeleteVehicle() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		vehicle, err := models.DeleteVehicle(c.Request.Context(), id)
		if err != nil {
			writeModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, vehicle)
	}
}
