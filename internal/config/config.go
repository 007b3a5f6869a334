// Package config holds the process-wide configuration. It is loaded once at
// startup, validated, and injected into the adapters; components never read
// the environment themselves.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultMongoConnectTimeout = 5 * time.Second

type Config struct {
	HTTPAddr    string
	PostgresDSN string

	MongoURI            string
	MongoDatabase       string
	MongoConnectTimeout time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:            getenv("HTTP_ADDR", ":8080"),
		PostgresDSN:         os.Getenv("POSTGRES_DSN"),
		MongoURI:            os.Getenv("MONGO_URI"),
		MongoDatabase:       getenv("MONGO_DB", "chatbot"),
		MongoConnectTimeout: defaultMongoConnectTimeout,
	}

	if raw := os.Getenv("MONGO_CONNECT_TIMEOUT"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("MONGO_CONNECT_TIMEOUT must be a positive number of seconds, got %q", raw)
		}
		cfg.MongoConnectTimeout = time.Duration(secs) * time.Second
	}

	if cfg.PostgresDSN == "" {
		return nil, errors.New("POSTGRES_DSN is not set")
	}
	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is not set")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
