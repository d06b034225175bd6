package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenAddr   string
	LogLevel     string
	ShutdownWait time.Duration
	IdleTimeout  time.Duration
	CatalogPath  string
	RateLimit    float64
	RateBurst    int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string, def int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

func atof(s string, def float64) float64 {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return def
}

func Parse() Config {
	wait, _ := time.ParseDuration(getenv("SHUTDOWN_WAIT", "5s"))
	idle, _ := time.ParseDuration(getenv("IDLE_TIMEOUT", "5m"))
	return Config{
		ListenAddr:   getenv("LISTEN_ADDR", ":8080"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		ShutdownWait: wait,
		IdleTimeout:  idle,
		CatalogPath:  os.Getenv("CATALOG_PATH"),
		RateLimit:    atof(getenv("RATE_LIMIT", "5"), 5),
		RateBurst:    atoi(getenv("RATE_BURST", "10"), 10),
	}
}
