package assistant

import (
	"net/http"

	"stylist/internal/catalog"
	"stylist/internal/httpserver"
	"stylist/internal/llm"

	"log/slog"
)

// ChatRequest один ход диалога от витрины. История опциональна и
// пересылается целиком: сервер не хранит диалог между запросами.
type ChatRequest struct {
	Message             string        `json:"message" validate:"required"`
	ConversationHistory []llm.Message `json:"conversationHistory"`
}

// ChatResponse конверт ответа. Products равен null до терминального хода.
type ChatResponse struct {
	Response    string               `json:"response"`
	Products    []catalog.View       `json:"products"`
	Preferences *catalog.Preferences `json:"preferences,omitempty"`
	Stage       Stage                `json:"stage"`
	Terminal    bool                 `json:"terminal"`
	RunID       string               `json:"runId"`
}

// Handler HTTP-ручка диалога.
type Handler struct {
	service *Service
	logger  *slog.Logger
}

func NewHandler(service *Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.WriteJSONError(w, http.StatusBadRequest, "Message is required")
		return
	}

	result, err := h.service.HandleTurn(r.Context(), req.Message, req.ConversationHistory)
	if err != nil {
		h.logger.Error("chat turn failed", slog.String("error", err.Error()))
		httpserver.WriteJSONError(w, http.StatusInternalServerError, "Failed to process request")
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, ChatResponse{
		Response:    result.Response,
		Products:    result.Products,
		Preferences: result.Preferences,
		Stage:       result.Stage,
		Terminal:    result.Terminal,
		RunID:       result.RunID,
	})
}
