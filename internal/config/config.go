package config

import (
	"os"
	"strings"
)

const defaultDatabaseDSN = "rooms.db"

type Config struct {
	DatabaseDSN string
}

func Load() *Config {
	return &Config{
		DatabaseDSN: strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseDSN)),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
