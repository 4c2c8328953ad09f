package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sujoygiri/test-back/internal/middleware"
)

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup creates an account and binds it to the session. The password is
// accepted but neither verified nor stored.
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	u, err := h.users.Create(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	sess := middleware.SessionFromContext(c)
	if err := h.sessions.Attach(c.Request.Context(), c.Writer, sess, u); err != nil {
		storeFailure(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    u,
	})
}
