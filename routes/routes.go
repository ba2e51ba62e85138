package routes

import (
	"net/http"
	"time"

	"fifty3/handlers"
	"fifty3/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers wired up in main.
type HandlerBundle struct {
	Auth     *handlers.AuthHandler
	Clients  *handlers.ClientHandler
	Schedule *handlers.ScheduleHandler
	Records  *handlers.RecordsHandler
}

// RegisterAuthRoutes registers the login endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Auth.LoginHandler)
	}
}

// RegisterClientRoutes registers roster and bookkeeping endpoints.
func RegisterClientRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/clients")
	api.Use(middleware.TrainerAuthMiddleware())
	{
		api.GET("", hb.Clients.ListClientsHandler)
		api.POST("", hb.Clients.CreateClientHandler)
		api.PUT("/:id", hb.Clients.UpdateClientHandler)
		api.DELETE("/:id", hb.Clients.DeleteClientHandler)

		api.GET("/:id/notes", hb.Records.ListNotesHandler)
		api.POST("/:id/notes", hb.Records.AddNoteHandler)
		api.DELETE("/:id/notes/:noteID", hb.Records.DeleteNoteHandler)

		api.GET("/:id/payments", hb.Records.ListPaymentsHandler)
		api.PUT("/:id/payments", hb.Records.UpsertPaymentHandler)

		api.GET("/:id/metrics", hb.Records.ListMetricsHandler)
		api.POST("/:id/metrics", hb.Records.AddMetricsHandler)
		api.DELETE("/:id/metrics/:metricsID", hb.Records.DeleteMetricsHandler)
	}
}

// RegisterScheduleRoutes registers the calendar endpoints.
func RegisterScheduleRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/schedule")
	api.Use(middleware.TrainerAuthMiddleware())
	{
		api.GET("/month/:year/:month", hb.Schedule.MonthViewHandler)
		api.PUT("/slot", hb.Schedule.SaveSlotHandler)
		api.POST("/lock", hb.Schedule.LockSlotHandler)
		api.POST("/unlock", hb.Schedule.UnlockSlotHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm FIFTY3"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterClientRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterHealthRoute(r)
}
