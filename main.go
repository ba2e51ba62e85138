// File: fifty3/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fifty3/config"
	"fifty3/database"
	stateRepo "fifty3/database/repository/state"
	"fifty3/handlers"
	"fifty3/middleware"
	"fifty3/routes"
	"fifty3/services/session"
	"fifty3/services/state"
	"fifty3/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitStateCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Persistence bridge: remote document store + local mirror.
	remote := stateRepo.NewMongoStateRepo()
	local := state.NewRedisStateCache(utils.GetStateCacheClient())
	bridge := state.NewBridge(remote, local)

	// Load the aggregate once at startup; the session controller owns it
	// for the lifetime of the process.
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 15*time.Second)
	aggregate := bridge.Load(loadCtx)
	cancelLoad()

	controller := session.NewController(aggregate, bridge)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Auth:     handlers.NewAuthHandler(),
		Clients:  handlers.NewClientHandler(controller),
		Schedule: handlers.NewScheduleHandler(controller),
		Records:  handlers.NewRecordsHandler(controller),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
