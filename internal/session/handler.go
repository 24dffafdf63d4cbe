package session

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/EldarTem/inventoryTrack/internal/rate_limiter"
)

const (
	loginAttemptLimit  = 10
	loginAttemptWindow = 5 * time.Minute
)

// Handler exposes the session lifecycle to the rendering layer.
type Handler struct {
	sessions *Store
	limiter  *rate_limiter.RateLimiter
	log      *zap.Logger
}

func NewHandler(sessions *Store, log *zap.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		limiter:  rate_limiter.NewRateLimiter(loginAttemptLimit, loginAttemptWindow),
		log:      log,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.POST("/session/login", h.LoginHandler())
	router.POST("/session/logout", h.LogoutHandler())
	router.GET("/session", h.GetSessionHandler())
}

func (h *Handler) LoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if !h.limiter.IsAllowed(clientIP) {
			remaining := h.limiter.Remaining(clientIP)
			c.Header("X-RateLimit-Limit", strconv.Itoa(loginAttemptLimit))
			c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":     "Too many login attempts. Try again later.",
				"remaining": remaining,
			})
			return
		}

		var creds Credentials
		if err := c.ShouldBindJSON(&creds); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
			return
		}

		identity, err := h.sessions.Login(c.Request.Context(), creds)
		if err != nil {
			var authErr *AuthenticationError
			if errors.As(err, &authErr) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": authErr.Message})
				return
			}
			h.log.Error("login exchange failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Authentication service unavailable"})
			return
		}

		c.JSON(http.StatusOK, identity)
	}
}

func (h *Handler) LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		h.sessions.Logout(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

func (h *Handler) GetSessionHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := h.sessions.Identity()
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		c.JSON(http.StatusOK, identity)
	}
}
