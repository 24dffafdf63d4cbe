package guard

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes the navigation guard to the rendering layer's router.
type Handler struct {
	guard *Guard
}

func NewHandler(g *Guard) *Handler {
	return &Handler{guard: g}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/navigation/decide", h.DecideHandler())
}

func (h *Handler) DecideHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var target RouteMeta
		if err := c.ShouldBindJSON(&target); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}
		c.JSON(http.StatusOK, h.guard.Decide(c.Request.Context(), target))
	}
}
