package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sujoygiri/test-back/internal/app"
	"github.com/sujoygiri/test-back/internal/config"
	"github.com/sujoygiri/test-back/internal/logger"
)

func main() {
	logger.Init()
	cfg := config.Load()

	logger.Info("starting server", map[string]any{
		"environment": cfg.Env,
		"domain":      cfg.Domain,
		"port":        cfg.Port,
	})

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	application, err := app.New(cfg)
	if err != nil {
		logger.Fatal("failed to initialize app", map[string]any{
			"error": err.Error(),
		})
	}

	go func() {
		if err := application.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", map[string]any{
			"error": err.Error(),
		})
	}
}
