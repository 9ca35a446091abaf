package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/oficinadigital/workshop_backend/utils"
)

// idParam parses the :id path segment; a non-numeric id is a 400.
func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// writeBindError maps gin binding failures to a 422 with a field => rule map.
func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": utils.ProcessValidationErrors(err)})
}

// writeModelError maps model-layer errors onto the documented status codes:
// 404 not-found, 409 uniqueness/referential conflicts, 422 everything else
// (validation messages surfaced from the models package).
func writeModelError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrorRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, utils.ErrorRecordInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case strings.HasPrefix(err.Error(), "duplicate "):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	}
}
