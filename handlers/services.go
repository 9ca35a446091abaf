package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/oficinadigital/workshop_backend/models"
)

func CreateService() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewService
		if err := c.ShouldBindJSON(&input); err != nil {
			writeBindError(c, err)
			return
		}
		service, err := models.CreateService(c.Request.Context(), &input)
		if err != nil {
			writeModelError(c, err)
			return
		}
		c.JSON(http.StatusCreated, service)
	}
}

func GetService() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		service, err := models.GetService(c.Request.Context(), id)
		if err != nil {
			writeModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, service)
	}
}

func ListServices() gin.HandlerFunc {
	return func(c *gin.Context) {
		vehicleId, _ := strconv.Atoi(c.Query("vehicle_id"))
		clientId, _ := strconv.Atoi(c.Query("client_id"))
		services, err := models.ListServices(c.Request.Context(), vehicleId, clientId)
		if err != nil {
			writeModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, services)
	}
}

func UpdateService() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var input models.NewService
		if err := c.ShouldBindJSON(&input); err != nil {
			writeBindError(c, err)
			return
		}
		service, err := models.UpdateService(c.Request.Context(), id, &input)
		if err != nil {
			writeModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, service)
	}
}

type serviceStatusPatch struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

// UpdateServiceStatus patches the status alone and triggers vehicle status
// reconciliation.
func UpdateServiceStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var patch serviceStatusPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			writeBindError(c, err)
			return
		}
		if strings.TrimSpace(patch.PaymentStatus) == "" {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"PaymentStatus": "required"}})
			return
		}
		service, err := models.UpdateServiceStatus(c.Request.Context(), id, patch.PaymentStatus)
		if err != nil {
			writeModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, service)
	}
}

func DeleteService() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		service, err := models.DeleteService(c.Request.Context(), id)
		if err != nil {
			writeModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, service)
	}
}
