package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sujoygiri/test-back/internal/logger"
	"github.com/sujoygiri/test-back/internal/middleware"
)

// Signout deletes the session record and expires the cookie. Idempotent:
// an anonymous caller still gets a success response.
func (h *Handler) Signout(c *gin.Context) {
	sess := middleware.SessionFromContext(c)

	if err := h.sessions.Clear(c.Request.Context(), c.Writer, sess); err != nil {
		// Cookie is already expired; the orphaned record ages out via TTL.
		logger.Warn("failed to delete session record", map[string]any{
			"error": err.Error(),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Signed out",
	})
}
