package server

import (
	"skin-scout/internal/scheduler"
	scout "skin-scout/internal/scoutService"
	handler "skin-scout/services/scout/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(scoutService *scout.ScoutService, dispatcher *scheduler.Dispatcher) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	scoutHandler := handler.NewScoutHandler(scoutService, dispatcher)

	// Single message endpoint: the action field selects the operation,
	// mirroring the runtime message port the frontends were built on.
	router.POST("/message", scoutHandler.DispatchHandler)

	return router
}
