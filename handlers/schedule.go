package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"fifty3/models"
	"fifty3/services/schedule"
	"fifty3/services/session"
	"fifty3/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the calendar endpoints. The trainer identity always
// comes from the session token, never from the request body, so one trainer
// cannot edit another's slots.
type ScheduleHandler struct {
	Session *session.Controller
}

func NewScheduleHandler(ctrl *session.Controller) *ScheduleHandler {
	return &ScheduleHandler{Session: ctrl}
}

// SlotRequest addresses one calendar cell. Month is zero-based.
type SlotRequest struct {
	Year      int      `json:"year" binding:"required"`
	Month     *int     `json:"month" binding:"required"`
	Day       int      `json:"day" binding:"required"`
	Hour      int      `json:"hour" binding:"required"`
	ClientIDs []string `json:"clientIds"`
}

func (r SlotRequest) key(trainerID string) (models.SlotKey, error) {
	if *r.Month < 0 || *r.Month > 11 {
		return models.SlotKey{}, errors.New("month must be between 0 and 11")
	}
	if r.Hour < schedule.OpeningHour || r.Hour > schedule.ClosingHour {
		return models.SlotKey{}, errors.New("hour is outside opening hours")
	}
	return models.SlotKey{
		Year:      r.Year,
		Month:     *r.Month,
		Day:       r.Day,
		Hour:      r.Hour,
		TrainerID: trainerID,
	}, nil
}

// MonthViewHandler handles GET /api/schedule/month/:year/:month.
func (h *ScheduleHandler) MonthViewHandler(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 0 || month > 11 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 0 and 11"})
		return
	}

	trainerID := c.GetString("trainerID")
	bookings, blocked := h.Session.MonthView(trainerID, year, month)
	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"hours":        gin.H{"from": schedule.OpeningHour, "to": schedule.ClosingHour},
		"bookings":     bookings,
		"blockedSlots": blocked,
	})
}

// SaveSlotHandler handles PUT /api/schedule/slot: the full participant list
// for one slot. An empty list clears the booking.
func (h *ScheduleHandler) SaveSlotHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	key, err := req.key(c.GetString("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Session.SaveSlot(key, req.ClientIDs); err != nil {
		var slotErr *schedule.SlotError
		if errors.As(err, &slotErr) {
			c.JSON(http.StatusConflict, gin.H{"error": slotErr.Message, "code": slotErr.Code})
			return
		}
		logger.Error("Failed to save slot", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slot saved"})
}

// LockSlotHandler handles POST /api/schedule/lock.
func (h *ScheduleHandler) LockSlotHandler(c *gin.Context) {
	key, ok := h.bindKey(c)
	if !ok {
		return
	}
	h.Session.LockSlot(key)
	c.JSON(http.StatusOK, gin.H{"message": "Slot locked"})
}

// UnlockSlotHandler handles POST /api/schedule/unlock.
func (h *ScheduleHandler) UnlockSlotHandler(c *gin.Context) {
	key, ok := h.bindKey(c)
	if !ok {
		return
	}
	h.Session.UnlockSlot(key)
	c.JSON(http.StatusOK, gin.H{"message": "Slot unlocked"})
}

func (h *ScheduleHandler) bindKey(c *gin.Context) (models.SlotKey, bool) {
	var req SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.SlotKey{}, false
	}
	key, err := req.key(c.GetString("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.SlotKey{}, false
	}
	return key, true
}
