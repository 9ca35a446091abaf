package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oficinadigital/workshop_backend/models"
)

func CreateClient() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.NewClient
		if err := c.ShouldBindJSON(&input); err != nil {
			writeBindError(c, err)
			return
		}
		client, err := models.CreateClient(c.Request.Context(), &input)
		if err != nil {
			writeModelError(c, err)
			return
		}
		c.JSON(http.StatusCreated, client)
	}
}

func GetClient() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		client, err := models.GetClient(c.Request.Context(), id)
		if err != nil {
			writeModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, client)
	}
}

func ListClients() gin.HandlerFunc {
	return func(c *gin.Context) {
		clients, err := models.ListClients(c.Request.Context(),
			c.Query("name"),
			models.ClientStatus(c.Query("status")))
		if err != nil {
			writeModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, clients)
	}
}

func UpdateClient() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		var input models.NewClient
		if err := c.ShouldBindJSON(&input); err != nil {
			writeBindError(c, err)
			return
		}
		client, err := models.UpdateClient(c.Request.Context(), id, &input)
		if err != nil {
			writeModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, client)
	}
}

func DeleteClient() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := idParam(c)
		if !ok {
			return
		}
		client, err := models.DeleteClient(c.Request.Context(), id)
		if err != nil {
			writeModelError(c, err)
			return
		}
		c.JSON(http.StatusOK, client)
	}
}
