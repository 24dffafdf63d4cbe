package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/EldarTem/inventoryTrack/internal/core/container"
	"github.com/EldarTem/inventoryTrack/internal/middleware"
)

// RegisterRoutes mounts every feature handler on the facade router.
func RegisterRoutes(router *gin.Engine, c *container.Container) {
	c.SessionHandler.RegisterRoutes(router)
	c.GuardHandler.RegisterRoutes(router)
	c.InventoryHandler.RegisterRoutes(router)
}

// RegisterUtilityRoutes mounts endpoints that exist regardless of features.
func RegisterUtilityRoutes(router *gin.Engine, version string) {
	router.GET("/health", middleware.HealthCheckHandler(version))
}
