package app

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sujoygiri/test-back/internal/auth/handler"
	"github.com/sujoygiri/test-back/internal/config"
	"github.com/sujoygiri/test-back/internal/middleware"
	"github.com/sujoygiri/test-back/internal/session"
	"github.com/sujoygiri/test-back/internal/user"
)

func setupHTTP(cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	sessionStore := session.NewRedisStore(infra.Redis.Client)
	sessionManager := session.NewManager(
		sessionStore,
		cfg.SessionSecret,
		cfg.Domain,
		cfg.IsProduction(),
	)

	userRepo := user.NewMockRepository()

	authHandler := handler.NewHandler(sessionManager, userRepo)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.CORSOrigin}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	// ----------------------------
	// Public Routes
	// ----------------------------

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the API"})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Session-backed Routes
	// ----------------------------

	userGroup := router.Group("/user")
	userGroup.Use(middleware.LoadSession(sessionManager))
	authHandler.RegisterRoutes(userGroup)

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.Redis.Close()
	}, nil
}
