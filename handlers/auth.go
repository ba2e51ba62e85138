package handlers

import (
	"net/http"

	"fifty3/models"
	"fifty3/services/identity"
	"fifty3/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exchanges verified credentials for an in-app session token.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// LoginRequest accepts either a Firebase ID token or, when the demo
// fallback is enabled, a plain email/password pair.
type LoginRequest struct {
	IDToken  string `json:"idToken"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token and the resolved trainer.
type LoginResponse struct {
	Token   string         `json:"token"`
	Trainer models.Trainer `json:"trainer"`
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var email string
	switch {
	case req.IDToken != "":
		verified, err := utils.VerifyIDToken(c.Request.Context(), req.IDToken)
		if err != nil {
			logger.Warn("Login failed: ID token rejected", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong email or password."})
			return
		}
		email = verified
	case req.Email != "":
		if err := identity.VerifyDemoPassword(req.Password); err != nil {
			logger.Warn("Login failed: demo password rejected", zap.String("email", req.Email))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong email or password."})
			return
		}
		email = req.Email
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either idToken or email/password is required."})
		return
	}

	trainer, ok := identity.ResolveTrainer(email)
	if !ok {
		logger.Warn("Login rejected: not a registered trainer", zap.String("email", email))
		c.JSON(http.StatusForbidden, gin.H{"error": "This account is not registered as a trainer."})
		return
	}

	token, err := utils.GenerateToken(trainer.ID, trainer.Email, utils.SessionTokenTTL)
	if err != nil {
		logger.Error("Failed to issue session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to establish session."})
		return
	}

	logger.Info("Trainer logged in", zap.String("trainerID", trainer.ID))
	c.JSON(http.StatusOK, LoginResponse{Token: token, Trainer: trainer})
}
