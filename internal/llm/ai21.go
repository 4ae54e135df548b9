package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"stylist/internal/config"
	"stylist/internal/retry"

	"log/slog"
)

var ErrModelRequired = errors.New("model is required")

// AI21Client клиент chat-completions API AI21. Модель, лимит токенов и
// температура фиксируются конфигурацией и не являются параметрами вызова.
type AI21Client struct {
	apiKey      string
	baseURL     string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
	policy      retry.Policy
	logger      *slog.Logger
}

func NewAI21Client(cfg config.AI21Config, httpClient *http.Client, logger *slog.Logger) *AI21Client {
	return &AI21Client{
		apiKey:      cfg.APIKey,
		baseURL:     cfg.BaseURL,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		httpClient:  httpClient,
		policy:      retry.DefaultPolicy(),
		logger:      logger,
	}
}

// ChatCompletion отправляет system + история + новое сообщение и возвращает
// один ответ ассистента. Временные сбои (429/5xx, обрывы сети) повторяются
// политикой retry; остальные ошибки возвращаются как есть.
func (c *AI21Client) ChatCompletion(ctx context.Context, systemPrompt string, history []Message, userMessage string) (string, error) {
	if c.model == "" {
		return "", ErrModelRequired
	}

	messages := make([]chatMessage, 0, len(history)+2)
	if systemPrompt != "" {
		messages = append(messages, chatMessage{Role: "system", Content: systemPrompt})
	}
	for _, msg := range history {
		if msg.Role == "user" || msg.Role == "assistant" {
			messages = append(messages, chatMessage{Role: msg.Role, Content: msg.Content})
		}
	}
	messages = append(messages, chatMessage{Role: "user", Content: userMessage})

	buf, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    messages,
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	resp, body, err := retry.DoHTTP(ctx, c.policy, c.logger, func(ctx context.Context) (*http.Response, []byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/chat/completions", c.baseURL), bytes.NewReader(buf))
		if err != nil {
			return nil, nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, nil, fmt.Errorf("execute request: %w", err)
		}
		defer resp.Body.Close()

		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, nil, fmt.Errorf("read response: %w", err)
		}
		return resp, bodyBytes, nil
	})
	if err != nil {
		return "", fmt.Errorf("ai21 request: %w", err)
	}

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", errors.New("empty response from model")
	}
	return parsed.Choices[0].Message.Content, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}
