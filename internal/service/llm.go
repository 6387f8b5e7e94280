package service

import (
	"context"
	"errors"
	"time"

	"github.com/katakuxiko/mealplanner/internal/config"
	"github.com/katakuxiko/mealplanner/internal/metrics"
	"github.com/sashabaranov/go-openai"
)

// ErrEmptyCompletion возвращается, если API не вернул ни одного варианта ответа.
var ErrEmptyCompletion = errors.New("completion API returned no choices")

// LLMClient клиент для Groq (OpenAI совместимый API).
// Один экземпляр на процесс, безопасен для конкурентного использования.
type LLMClient struct {
	client      *openai.Client
	chatName    string
	temperature float32
	maxTokens   int
}

// NewLLMClient создаёт новый клиент с настройками из config
func NewLLMClient(cfg *config.Config) *LLMClient {
	oaiCfg := openai.DefaultConfig(cfg.APIKey)
	oaiCfg.BaseURL = cfg.LLMBaseURL
	client := openai.NewClientWithConfig(oaiCfg)

	return &LLMClient{
		client:      client,
		chatName:    cfg.ChatModel,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// Complete отправляет системную инструкцию и сообщение пользователя,
// возвращает текст первого варианта без изменений.
func (l *LLMClient) Complete(ctx context.Context, system, user string) (string, error) {
	start := time.Now()
	resp, err := l.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: l.chatName,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: system},
				{Role: openai.ChatMessageRoleUser, Content: user},
			},
			Temperature: l.temperature,
			MaxTokens:   l.maxTokens,
			Stream:      false,
		},
	)
	metrics.CompletionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.CompletionsTotal.WithLabelValues("error").Inc()
		return "", err
	}
	if len(resp.Choices) == 0 {
		metrics.CompletionsTotal.WithLabelValues("empty").Inc()
		return "", ErrEmptyCompletion
	}
	metrics.CompletionsTotal.WithLabelValues("ok").Inc()
	return resp.Choices[0].Message.Content, nil
}

// ListModels возвращает список моделей, доступных по ключу
func (l *LLMClient) ListModels(ctx context.Context) ([]openai.Model, error) {
	resp, err := l.client.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	return resp.Models, nil
}
