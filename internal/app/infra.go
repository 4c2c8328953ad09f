package app

import (
	"github.com/sujoygiri/test-back/internal/config"
	"github.com/sujoygiri/test-back/internal/logger"
	"github.com/sujoygiri/test-back/internal/redis"
)

type Infra struct {
	Redis *redis.Client
}

func setupInfra(cfg config.Config) (*Infra, error) {
	redisClient, err := redis.New(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	logger.Info("redis ready", nil)

	return &Infra{
		Redis: redisClient,
	}, nil
}
