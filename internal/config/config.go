package config

import (
	"errors"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey возвращается, если GROQ_API_KEY не задан.
var ErrMissingAPIKey = errors.New("GROQ_API_KEY is not set in the environment variables")

type Config struct {
	APIKey      string
	LLMBaseURL  string
	ChatModel   string
	Temperature float32
	MaxTokens   int
	ServerAddr  string
	LogLevel    string
	LogFormat   string
}

// Load читает настройки из окружения. Ключ API обязателен.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
	v.SetDefault("LLM_MODEL", "llama-3.1-70b-versatile")
	v.SetDefault("LLM_TEMPERATURE", 0.3)
	v.SetDefault("LLM_MAX_TOKENS", 7000)
	v.SetDefault("SERVER_ADDR", ":8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	cfg := &Config{
		APIKey:      v.GetString("GROQ_API_KEY"),
		LLMBaseURL:  v.GetString("GROQ_BASE_URL"),
		ChatModel:   v.GetString("LLM_MODEL"),
		Temperature: float32(v.GetFloat64("LLM_TEMPERATURE")),
		MaxTokens:   v.GetInt("LLM_MAX_TOKENS"),
		ServerAddr:  v.GetString("SERVER_ADDR"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		LogFormat:   v.GetString("LOG_FORMAT"),
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return cfg, nil
}
