package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	HTTPAddr     string
	DatabaseURL  string
	DatabaseName string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		HTTPAddr:     ":" + getenv("PORT", "8000"),
		DatabaseURL:  getenv("DATABASE_URL", "mongodb://localhost:27017"),
		DatabaseName: getenv("DATABASE_NAME", "grocery"),
	}
	log.Infof("[config] PORT=%s", cfg.HTTPAddr)
	log.Infof("[config] DATABASE_NAME=%s", cfg.DatabaseName)
	// the URL may carry credentials, log only whether it was provided
	if os.Getenv("DATABASE_URL") != "" {
		log.Info("[config] DATABASE_URL set from environment")
	} else {
		log.Infof("[config] DATABASE_URL defaulting to %s", cfg.DatabaseURL)
	}
	return cfg
}
