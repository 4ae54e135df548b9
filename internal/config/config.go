package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr          string
	LogLevel          string
	RequestTimeout    time.Duration
	AllowedOrigins    []string
	PromptMode        string
	CompletionBackend string
	AI21              AI21Config
	Maestro           MaestroConfig
	FilterStore       FilterStoreConfig
}

type AI21Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
}

type MaestroConfig struct {
	PollInterval time.Duration
	PollTimeout  time.Duration
}

type FilterStoreConfig struct {
	Type string // "memory" | "file"
	Path string
}

func Load() (Config, error) {
	var cfg Config

	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.PromptMode = getEnv("PROMPT_MODE", "scripted")
	cfg.CompletionBackend = getEnv("COMPLETION_BACKEND", "chat")
	cfg.AllowedOrigins = splitList(getEnv("ALLOWED_ORIGINS", "*"))

	reqTimeout, err := parseDuration(getEnv("HTTP_CLIENT_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_CLIENT_TIMEOUT: %w", err)
	}
	cfg.RequestTimeout = reqTimeout

	maxTokens, err := strconv.Atoi(getEnv("AI21_MAX_TOKENS", "500"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AI21_MAX_TOKENS: %w", err)
	}
	temperature, err := strconv.ParseFloat(getEnv("AI21_TEMPERATURE", "0.7"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse AI21_TEMPERATURE: %w", err)
	}

	cfg.AI21 = AI21Config{
		APIKey:      getEnv("AI21_API_KEY", ""),
		BaseURL:     getEnv("AI21_BASE_URL", "https://api.ai21.com/studio/v1"),
		Model:       getEnv("AI21_MODEL", "jamba-large-1.6"),
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	pollInterval, err := parseDuration(getEnv("MAESTRO_POLL_INTERVAL", "1s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse MAESTRO_POLL_INTERVAL: %w", err)
	}
	pollTimeout, err := parseDuration(getEnv("MAESTRO_POLL_TIMEOUT", "120s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse MAESTRO_POLL_TIMEOUT: %w", err)
	}
	cfg.Maestro = MaestroConfig{
		PollInterval: pollInterval,
		PollTimeout:  pollTimeout,
	}

	cfg.FilterStore = FilterStoreConfig{
		Type: getEnv("FILTER_STORE_TYPE", "memory"),
		Path: getEnv("FILTER_STORE_PATH", "data/filters.json"),
	}

	return cfg, nil
}

func parseDuration(value string) (time.Duration, error) {
	if value == "" {
		return 0, fmt.Errorf("duration is empty")
	}
	return time.ParseDuration(value)
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
