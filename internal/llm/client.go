package llm

import "context"

// Message одно сообщение диалога. История принадлежит вызывающей стороне
// и пересылается целиком на каждом ходе: сервер ничего не хранит.
type Message struct {
	Role    string `json:"role"` // "user" | "assistant"
	Content string `json:"content"`
}

// Client минимальный публичный интерфейс LLM клиента: один вызов —
// одно ответное сообщение ассистента.
type Client interface {
	ChatCompletion(ctx context.Context, systemPrompt string, history []Message, userMessage string) (string, error)
}
