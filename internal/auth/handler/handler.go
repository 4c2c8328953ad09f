package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sujoygiri/test-back/internal/logger"
	"github.com/sujoygiri/test-back/internal/middleware"
	"github.com/sujoygiri/test-back/internal/session"
	"github.com/sujoygiri/test-back/internal/user"
)

type Handler struct {
	sessions *session.Manager
	users    user.Repository
}

func NewHandler(sessions *session.Manager, users user.Repository) *Handler {
	return &Handler{
		sessions: sessions,
		users:    users,
	}
}

// RegisterRoutes mounts the auth endpoints. The group must run the
// session-loading middleware.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/data", h.CurrentUser)
	r.POST("/signup", h.Signup)
	r.POST("/signin", h.Signin)
	r.POST("/signout", h.Signout)
}

// CurrentUser returns the identity bound to the session, or 401 when the
// visitor is anonymous. No side effects.
func (h *Handler) CurrentUser(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	if !sess.Authenticated() {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "User not authenticated",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    sess.User,
	})
}

// storeFailure converts a session write failure into the generic 500.
// Detail stays in the server log; the client never sees it.
func storeFailure(c *gin.Context, err error) {
	logger.Error("failed to persist session", map[string]any{
		"error": err.Error(),
		"path":  c.Request.URL.Path,
	})
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "Internal server error",
	})
}
