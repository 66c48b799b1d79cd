package utils

import "github.com/gin-gonic/gin"

// RespondError escribe el formato de error que ya consume el frontend:
// {"error": "..."}
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"error": err.Error()})
}
