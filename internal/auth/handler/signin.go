package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sujoygiri/test-back/internal/middleware"
)

type signinRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signin authenticates and binds the resulting identity to the session.
// Unlike Signup, any request-level failure reads as 401, not 400.
func (h *Handler) Signin(c *gin.Context) {
	var req signinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	u, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	sess := middleware.SessionFromContext(c)
	if err := h.sessions.Attach(c.Request.Context(), c.Writer, sess, u); err != nil {
		storeFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    u,
	})
}
