package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTP_ADDR string

	// Upstream endpoints backing the passthrough routes. One contract per
	// route; the read endpoints default to the public placeholder service
	// and the write/user endpoints to the local backend.
	ATTENDANCE_URL       string
	ATTENDANCE_WRITE_URL string
	SESSIONS_URL         string
	USER_URL             string

	// Simulated latency applied by the mock session store on every
	// sign-in/sign-up attempt.
	AUTH_DELAY time.Duration

	// Session persistence. Empty REDIS_ADDR keeps sessions in process memory.
	REDIS_ADDR     string
	REDIS_PASSWORD string

	UPSTREAM_TIMEOUT time.Duration

	// Otel
	OTEL_EXPORTER_OTLP_ENDPOINT string
}

func ReadConfig() *Config {
	authDelay := 800 * time.Millisecond
	if raw := os.Getenv("AUTH_DELAY_MS"); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil {
			authDelay = time.Duration(ms) * time.Millisecond
		}
	}

	upstreamTimeout := 10 * time.Second
	if raw := os.Getenv("UPSTREAM_TIMEOUT_MS"); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil {
			upstreamTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	return &Config{
		HTTP_ADDR: getEnvOrDefault("HTTP_ADDR", "0.0.0.0:6060"),

		ATTENDANCE_URL:       getEnvOrDefault("ATTENDANCE_URL", "https://jsonplaceholder.typicode.com/posts"),
		ATTENDANCE_WRITE_URL: getEnvOrDefault("ATTENDANCE_WRITE_URL", "http://localhost:8080/attendance"),
		SESSIONS_URL:         getEnvOrDefault("SESSIONS_URL", "https://jsonplaceholder.typicode.com/posts"),
		USER_URL:             getEnvOrDefault("USER_URL", "http://localhost:8080/user"),

		AUTH_DELAY: authDelay,

		REDIS_ADDR:     os.Getenv("REDIS_ADDR"),
		REDIS_PASSWORD: os.Getenv("REDIS_PASSWORD"),

		UPSTREAM_TIMEOUT: upstreamTimeout,

		OTEL_EXPORTER_OTLP_ENDPOINT: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
