package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"fifty3/config"
	"fifty3/handlers"
	"fifty3/models"
	"fifty3/routes"
	"fifty3/services/session"
	"fifty3/services/state"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestRouter(t *testing.T) (*gin.Engine, *session.Controller) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.MinCost)
	require.NoError(t, err)
	origHash := config.AppConfig.DemoPasswordHash
	config.AppConfig.DemoPasswordHash = string(hash)
	t.Cleanup(func() { config.AppConfig.DemoPasswordHash = origHash })

	// No stores wired: handler tests run against the in-memory aggregate only.
	ctrl := session.NewController(state.Seed(), nil)

	router := gin.New()
	routes.RegisterRoutes(router, &routes.HandlerBundle{
		Auth:     handlers.NewAuthHandler(),
		Clients:  handlers.NewClientHandler(ctrl),
		Schedule: handlers.NewScheduleHandler(ctrl),
		Records:  handlers.NewRecordsHandler(ctrl),
	})
	return router, ctrl
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": "1234",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp handlers.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestLogin(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("known trainer gets a session token", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
			"email": "kostas@fifty3.com", "password": "1234",
		})
		require.Equal(t, http.StatusOK, w.Code)
		var resp handlers.LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "trainer-kostas", resp.Trainer.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
			"email": "kostas@fifty3.com", "password": "nope",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid credentials but not a trainer", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
			"email": "maria@fifty3.com", "password": "1234",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAuthRequired(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/clients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/clients", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestClientEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)
	token := login(t, router, "kostas@fifty3.com")

	t.Run("seeded roster is listed", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/clients?role=CLIENT", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var clients []models.Client
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &clients))
		assert.Len(t, clients, 2)
	})

	t.Run("create update delete", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/clients", token, gin.H{
			"fullName": "Γιάννης", "email": "giannis@fifty3.com", "phone": "6900000012",
		})
		require.Equal(t, http.StatusCreated, w.Code)
		var created models.Client
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
		assert.True(t, created.Active)

		w = doJSON(t, router, http.MethodPut, "/api/clients/"+created.ID, token, gin.H{
			"fullName": "Γιάννης Β.", "email": "giannis@fifty3.com", "active": false,
		})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodDelete, "/api/clients/"+created.ID, token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodPut, "/api/clients/"+created.ID, token, gin.H{
			"fullName": "x", "email": "x@x",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("search filter", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/clients?q=maria", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var clients []models.Client
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &clients))
		require.Len(t, clients, 1)
		assert.Equal(t, "client_maria", clients[0].ID)
	})
}

func TestScheduleEndpoints(t *testing.T) {
	router, ctrl := newTestRouter(t)
	token := login(t, router, "kostas@fifty3.com")

	slot := gin.H{"year": 2025, "month": 0, "day": 15, "hour": 10}
	withClients := func(ids []string) gin.H {
		out := gin.H{}
		for k, v := range slot {
			out[k] = v
		}
		out["clientIds"] = ids
		return out
	}

	t.Run("save and read back", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/schedule/slot", token, withClients([]string{"client_maria"}))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = doJSON(t, router, http.MethodGet, "/api/schedule/month/2025/0", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var view struct {
			Bookings []models.Booking `json:"bookings"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		require.Len(t, view.Bookings, 1)
		assert.Equal(t, "trainer-kostas", view.Bookings[0].TrainerID)
	})

	t.Run("capacity rejected with 409", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/schedule/slot", token, withClients([]string{"a", "b", "c", "d"}))
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("lock then save rejected with 409", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/schedule/lock", token, slot)
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodPut, "/api/schedule/slot", token, withClients([]string{"client_nikos"}))
		assert.Equal(t, http.StatusConflict, w.Code)

		// Still the previously saved participants.
		bookings, _ := ctrl.MonthView("trainer-kostas", 2025, 0)
		require.Len(t, bookings, 1)
		assert.Equal(t, []string{"client_maria"}, bookings[0].ClientIDs)

		w = doJSON(t, router, http.MethodPost, "/api/schedule/unlock", token, slot)
		require.Equal(t, http.StatusOK, w.Code)
		w = doJSON(t, router, http.MethodPut, "/api/schedule/slot", token, withClients([]string{"client_nikos"}))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("trainer id comes from the session, not the body", func(t *testing.T) {
		zoe := login(t, router, "zoe@fifty3.com")
		w := doJSON(t, router, http.MethodGet, "/api/schedule/month/2025/0", zoe, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var view struct {
			Bookings []models.Booking `json:"bookings"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Empty(t, view.Bookings)
	})

	t.Run("hour outside opening hours", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/schedule/slot", token, gin.H{
			"year": 2025, "month": 0, "day": 15, "hour": 7, "clientIds": []string{"x"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRecordsEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)
	token := login(t, router, "kostas@fifty3.com")

	base := "/api/clients/client_maria"

	t.Run("notes carry the session trainer as author", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, base+"/notes", token, gin.H{"text": "πρώτη μέτρηση"})
		require.Equal(t, http.StatusCreated, w.Code)
		var note models.ClientNote
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &note))
		assert.Equal(t, "trainer-kostas", note.AuthorTrainerID)

		w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("%s/notes/%s", base, note.ID), token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("payment upsert", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, base+"/payments", token, gin.H{
			"period": "2025-01", "amount": 40, "status": "UNPAID",
		})
		require.Equal(t, http.StatusOK, w.Code)
		w = doJSON(t, router, http.MethodPut, base+"/payments", token, gin.H{
			"period": "2025-01", "amount": 40, "status": "PAID",
		})
		require.Equal(t, http.StatusOK, w.Code)

		w = doJSON(t, router, http.MethodGet, base+"/payments", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var payments []models.PaymentRecord
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payments))
		require.Len(t, payments, 1)
		assert.Equal(t, models.PaymentPaid, payments[0].Status)
	})

	t.Run("invalid payment status", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, base+"/payments", token, gin.H{
			"period": "2025-01", "amount": 40, "status": "MAYBE",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("records for an unknown client", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/clients/ghost/notes", token, gin.H{"text": "x"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
