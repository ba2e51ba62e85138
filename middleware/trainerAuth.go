package middleware

import (
	"net/http"
	"strings"

	"fifty3/services/identity"
	"fifty3/utils"

	"github.com/gin-gonic/gin"
)

// TrainerAuthMiddleware validates the session token and binds the trainer
// identity to the request context. The token subject must still resolve to
// an authorized trainer; revoking an email in the identity table invalidates
// outstanding tokens.
func TrainerAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		trainerID, err := utils.ExtractTrainerIDFromToken(tokenString)
		if err != nil || trainerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		trainer, ok := identity.ResolveTrainerByID(trainerID)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "This account is not registered as a trainer.",
			})
			return
		}

		c.Set("trainerID", trainer.ID)
		c.Set("trainerName", trainer.DisplayName)
		c.Next()
	}
}
