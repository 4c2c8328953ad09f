package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sujoygiri/test-back/internal/logger"
	"github.com/sujoygiri/test-back/internal/session"
)

// unexported context key, namespaced to avoid handler collisions
const sessionContextKey = "middleware.session"

// LoadSession resolves the request cookie to a session and stashes it in
// the gin context. Anonymous visitors pass through with an empty session;
// handlers decide whether authentication is required. Only a store outage
// terminates the request here.
func LoadSession(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := manager.Load(c.Request.Context(), c.Request)
		if err != nil {
			logger.Error("failed to load session", map[string]any{
				"error": err.Error(),
				"path":  c.Request.URL.Path,
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Internal server error",
			})
			return
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// SessionFromContext returns the session placed by LoadSession.
// Handlers reached without the middleware see an anonymous session.
func SessionFromContext(c *gin.Context) *session.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return &session.Session{}
}
