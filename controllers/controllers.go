package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DazJ14/restaurant-api/services"
	"github.com/DazJ14/restaurant-api/utils"
)

// respondServiceError traduce la clase de error del servicio a su código
// HTTP. Los fallos del almacén nunca se detallan al cliente.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var conflictErr *services.ConflictError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		body := gin.H{"error": conflictErr.Error()}
		if conflictErr.TabID != 0 {
			body["cuenta_id"] = conflictErr.TabID
		}
		c.JSON(http.StatusConflict, body)
	default:
		utils.ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno del servidor"})
	}
}
