package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env    string // "production" switches cookie security flags
	Port   string
	Domain string // cookie domain, production only

	RedisURL      string
	SessionSecret string

	CORSOrigin string
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first if present.
func Load() Config {

	_ = godotenv.Load()

	cfg := Config{

		Env:    getEnv("NODE_ENV", "development"),
		Port:   getEnv("PORT", "3000"),
		Domain: getEnv("DOMAIN", ""),

		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),
		SessionSecret: getEnv("SESSION_SECRET", "secret-key"),

		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:4200"),
	}

	return cfg

}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
