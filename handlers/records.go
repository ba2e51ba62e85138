package handlers

import (
	"net/http"

	"fifty3/models"
	"fifty3/services/session"

	"github.com/gin-gonic/gin"
)

// RecordsHandler serves the per-client bookkeeping endpoints: notes,
// payments and body metrics.
type RecordsHandler struct {
	Session *session.Controller
}

func NewRecordsHandler(ctrl *session.Controller) *RecordsHandler {
	return &RecordsHandler{Session: ctrl}
}

// ListNotesHandler handles GET /api/clients/:id/notes.
func (h *RecordsHandler) ListNotesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Session.Notes(c.Param("id")))
}

// AddNoteHandler handles POST /api/clients/:id/notes. The author is the
// session trainer.
func (h *RecordsHandler) AddNoteHandler(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	note, err := h.Session.AddNote(c.Param("id"), c.GetString("trainerID"), req.Text)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, note)
}

// DeleteNoteHandler handles DELETE /api/clients/:id/notes/:noteID.
func (h *RecordsHandler) DeleteNoteHandler(c *gin.Context) {
	h.Session.DeleteNote(c.Param("noteID"))
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted"})
}

// ListPaymentsHandler handles GET /api/clients/:id/payments.
func (h *RecordsHandler) ListPaymentsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Session.Payments(c.Param("id")))
}

// UpsertPaymentHandler handles PUT /api/clients/:id/payments. One record per
// billing period; saving the same period again replaces it.
func (h *RecordsHandler) UpsertPaymentHandler(c *gin.Context) {
	var req struct {
		Period string               `json:"period" binding:"required"`
		Amount float64              `json:"amount"`
		Status models.PaymentStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	switch req.Status {
	case models.PaymentPaid, models.PaymentUnpaid, models.PaymentLate:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be PAID, UNPAID or LATE"})
		return
	}

	rec := models.PaymentRecord{
		ClientID: c.Param("id"),
		Period:   req.Period,
		Amount:   req.Amount,
		Status:   req.Status,
	}
	if err := h.Session.UpsertPayment(rec); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ListMetricsHandler handles GET /api/clients/:id/metrics.
func (h *RecordsHandler) ListMetricsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.Session.Metrics(c.Param("id")))
}

// AddMetricsHandler handles POST /api/clients/:id/metrics.
func (h *RecordsHandler) AddMetricsHandler(c *gin.Context) {
	var m models.BodyMetrics
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m.ClientID = c.Param("id")
	created, err := h.Session.AddMetrics(m)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteMetricsHandler handles DELETE /api/clients/:id/metrics/:metricsID.
func (h *RecordsHandler) DeleteMetricsHandler(c *gin.Context) {
	h.Session.DeleteMetrics(c.Param("metricsID"))
	c.JSON(http.StatusOK, gin.H{"message": "Metrics deleted"})
}
