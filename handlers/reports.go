package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oficinadigital/workshop_backend/config"
	"github.com/oficinadigital/workshop_backend/models/reports"
)

// ExportServicesExcel streams the service detail report as an xlsx download.
func ExportServicesExcel() gin.HandlerFunc {
	return func(c *gin.Context) {
		f, err := reports.BuildServicesExcel(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", "attachment; filename=services.xlsx")
		if err := f.Write(c.Writer); err != nil {
			config.LogError(config.GetLogger(), "reports.go", "ExportServicesExcel", "f.Write", nil, err)
		}
	}
}
