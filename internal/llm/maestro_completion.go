package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// MaestroCompletion адаптирует асинхронный run-API Maestro под интерфейс
// Client, чтобы оркестратор мог переключаться между бэкендами завершения.
// Вместо системного промпта Maestro получает список требований — он сам
// ведёт уточняющий диалог.
type MaestroCompletion struct {
	client       *MaestroClient
	requirements []RunRequirement
	interval     time.Duration
	timeout      time.Duration
}

func NewMaestroCompletion(client *MaestroClient, requirements []RunRequirement, interval, timeout time.Duration) *MaestroCompletion {
	return &MaestroCompletion{
		client:       client,
		requirements: requirements,
		interval:     interval,
		timeout:      timeout,
	}
}

// ChatCompletion создаёт run из истории и нового сообщения и дожидается
// его завершения. systemPrompt игнорируется: требования заменяют его.
func (c *MaestroCompletion) ChatCompletion(ctx context.Context, systemPrompt string, history []Message, userMessage string) (string, error) {
	input := make([]Message, 0, len(history)+1)
	for _, msg := range history {
		if msg.Role == "user" || msg.Role == "assistant" {
			input = append(input, msg)
		}
	}
	input = append(input, Message{Role: "user", Content: userMessage})

	run, err := c.client.CreateAndPoll(ctx, RunRequest{
		Input:        input,
		Requirements: c.requirements,
		Include:      []string{"requirements_result"},
	}, c.interval, c.timeout)
	if err != nil {
		return "", err
	}
	if run.Status != RunStatusCompleted {
		return "", fmt.Errorf("maestro run %s finished with status %s", run.ID, run.Status)
	}

	// result приходит либо JSON-строкой, либо произвольным объектом.
	var text string
	if err := json.Unmarshal(run.Result, &text); err == nil {
		return text, nil
	}
	return string(run.Result), nil
}
