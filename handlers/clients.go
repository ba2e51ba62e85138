package handlers

import (
	"net/http"

	"fifty3/models"
	"fifty3/services/roster"
	"fifty3/services/session"
	"fifty3/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientHandler serves the roster CRUD endpoints.
type ClientHandler struct {
	Session *session.Controller
}

func NewClientHandler(ctrl *session.Controller) *ClientHandler {
	return &ClientHandler{Session: ctrl}
}

// ListClientsHandler handles GET /api/clients?role=&active=&q=.
func (h *ClientHandler) ListClientsHandler(c *gin.Context) {
	q := roster.Query{
		Role:       models.Role(c.Query("role")),
		ActiveOnly: c.Query("active") == "true",
		Search:     c.Query("q"),
	}
	c.JSON(http.StatusOK, h.Session.Clients(q))
}

// CreateClientHandler handles POST /api/clients.
func (h *ClientHandler) CreateClientHandler(c *gin.Context) {
	var input models.ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created := h.Session.AddClient(input)
	utils.GetLogger().Info("Client added", zap.String("clientID", created.ID))
	c.JSON(http.StatusCreated, created)
}

// UpdateClientHandler handles PUT /api/clients/:id.
func (h *ClientHandler) UpdateClientHandler(c *gin.Context) {
	id := c.Param("id")
	var input models.ClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	updated, err := h.Session.UpdateClient(id, input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteClientHandler handles DELETE /api/clients/:id. Deletion cascades
// into the slot ledger and the client's bookkeeping records.
func (h *ClientHandler) DeleteClientHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Session.DeleteClient(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	utils.GetLogger().Info("Client deleted", zap.String("clientID", id))
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted"})
}
