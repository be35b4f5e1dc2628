package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	APIURL     string
	ListenAddr string
	APITimeout time.Duration
	// APIRate is the outbound request budget per second; 0 disables it.
	APIRate   float64
	APIBurst  int
	LazyList  bool
	LogLevel  string
	LogPretty bool
	CodeStyle string
}

func Defaults() Config {
	return Config{
		APIURL:     "http://localhost:5001/api",
		ListenAddr: "127.0.0.1:8080",
		APITimeout: 10 * time.Second,
		APIBurst:   5,
		LazyList:   true,
		LogLevel:   "info",
		CodeStyle:  "monokai",
	}
}

// Load builds the configuration from, lowest precedence first, the YAML
// file named by THINKBOARD_CONFIG, a .env file in the working directory
// and the process environment.
func Load() (Config, error) {
	initEnvFile()

	cfg := Defaults()
	if path := strings.TrimSpace(os.Getenv("THINKBOARD_CONFIG")); path != "" {
		if err := mergeFile(&cfg, path); err != nil {
			return cfg, err
		}
	}

	cfg.APIURL = envOr("THINKBOARD_API_URL", cfg.APIURL)
	cfg.ListenAddr = envOr("THINKBOARD_LISTEN_ADDR", cfg.ListenAddr)
	cfg.APITimeout = parseDurationOr("THINKBOARD_API_TIMEOUT", cfg.APITimeout)
	cfg.APIRate = parseFloatOr("THINKBOARD_API_RATE", cfg.APIRate)
	cfg.APIBurst = parseIntOr("THINKBOARD_API_BURST", cfg.APIBurst)
	cfg.LazyList = parseBoolOr("THINKBOARD_LAZY_LIST", cfg.LazyList)
	cfg.LogLevel = envOr("THINKBOARD_LOG_LEVEL", cfg.LogLevel)
	cfg.LogPretty = parseBoolOr("THINKBOARD_LOG_PRETTY", cfg.LogPretty)
	cfg.CodeStyle = envOr("THINKBOARD_CODE_STYLE", cfg.CodeStyle)
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func parseIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return fallback
}

func parseFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			return f
		}
	}
	return fallback
}

func parseBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
