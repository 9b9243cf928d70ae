package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port            string
	ShutdownTimeout time.Duration
}

func Load() AppConfig {
	_ = godotenv.Load() // load .env if present
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	shutdown := 10
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			shutdown = n
		}
	}
	return AppConfig{
		Port:            port,
		ShutdownTimeout: time.Duration(shutdown) * time.Second,
	}
}
