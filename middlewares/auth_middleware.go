package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DazJ14/restaurant-api/utils"
)

// AuthMiddleware valida el Bearer token y deja user_id y rol en el
// contexto.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("Acceso denegado. Token no proporcionado."))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil || claims == nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("Token inválido o expirado. Inicia sesión nuevamente."))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("rol", claims.Role)
		c.Next()
	}
}

// RequireRoles corta la petición si el rol del token no está permitido.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("rol")
		if !exists {
			utils.RespondError(c, http.StatusForbidden, errors.New("No tienes permisos para realizar esta acción."))
			c.Abort()
			return
		}

		role, _ := roleValue.(string)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden, errors.New("No tienes permisos para realizar esta acción."))
		c.Abort()
	}
}
