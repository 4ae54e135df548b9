package assistant

import (
	"context"
	"fmt"
	"strings"

	"stylist/internal/catalog"
	"stylist/internal/llm"
	"stylist/internal/session"

	"log/slog"

	"github.com/google/uuid"
)

// TurnResult итог одного хода диалога. На нетерминальном ходе заполнен
// только Response: вызывающая сторона дописывает ход в историю и присылает
// её со следующим сообщением.
type TurnResult struct {
	Response    string
	Products    []catalog.View
	Preferences *catalog.Preferences
	Stage       Stage
	Terminal    bool
	RunID       string
}

// Service оркестратор диалога: один ход — один вызов LLM, затем
// нормализация ответа, извлечение предпочтений и фильтрация каталога.
type Service struct {
	llm          llm.Client
	products     []catalog.Product
	filters      session.Store
	events       *session.Broker
	promptMode   string
	requirements []Requirement
	logger       *slog.Logger
}

// ServiceConfig зависимости для создания Service.
type ServiceConfig struct {
	LLM          llm.Client
	Products     []catalog.Product
	Filters      session.Store
	Events       *session.Broker
	PromptMode   string
	Requirements []Requirement
	Logger       *slog.Logger
}

func NewService(cfg ServiceConfig) *Service {
	requirements := cfg.Requirements
	if len(requirements) == 0 {
		requirements = DefaultRequirements()
	}
	return &Service{
		llm:          cfg.LLM,
		products:     cfg.Products,
		filters:      cfg.Filters,
		events:       cfg.Events,
		promptMode:   cfg.PromptMode,
		requirements: requirements,
		logger:       cfg.Logger,
	}
}

// HandleTurn выполняет один ход диалога. Ошибка возвращается только при
// сбое LLM-вызова: повреждённый вывод модели восстанавливается локально,
// и ход завершается штатно.
func (s *Service) HandleTurn(ctx context.Context, userMessage string, history []llm.Message) (TurnResult, error) {
	systemPrompt := SystemPrompt(s.promptMode, s.requirements)

	reply, err := s.llm.ChatCompletion(ctx, systemPrompt, history, userMessage)
	if err != nil {
		return TurnResult{}, fmt.Errorf("chat completion: %w", err)
	}

	reply = NormalizeToolCalls(reply)
	stage := DetectStage(reply)
	runID := "chat-" + uuid.NewString()

	if stage != StageTerminal {
		return TurnResult{Response: reply, Stage: stage, RunID: runID}, nil
	}

	prefs := Extract(reply)
	result := catalog.Filter(s.products, prefs)

	s.applySessionFilters(prefs)

	return TurnResult{
		Response:    spliceProducts(reply, result.Products),
		Products:    result.Products,
		Preferences: &prefs,
		Stage:       stage,
		Terminal:    true,
		RunID:       runID,
	}, nil
}

// applySessionFilters сохраняет фильтр сессии и оповещает подписчиков.
// Сбой хранилища деградирует мягко: ход диалога не ломается.
func (s *Service) applySessionFilters(prefs catalog.Preferences) {
	if s.filters != nil {
		if err := s.filters.Save(prefs); err != nil {
			s.logger.Error("save session filters", slog.String("error", err.Error()))
		}
	}
	if s.events != nil {
		s.events.Publish(session.EventFiltersApplied, prefs)
	}
}

// spliceProducts подставляет список рекомендаций на место терминального
// маркера. Цена печатается в долларах, в которых покупатель называл бюджет.
func spliceProducts(text string, products []catalog.View) string {
	var b strings.Builder
	b.WriteString("\n\n**RECOMMENDED PRODUCTS:**\n")
	if len(products) == 0 {
		b.WriteString("No products match your preferences.")
	} else {
		lines := make([]string, 0, len(products))
		for _, p := range products {
			lines = append(lines, fmt.Sprintf("- %s - $%.2f (%s) - Sizes: %s",
				p.Name, p.PriceUSD(), strings.Join(p.Colors, ", "), strings.Join(p.Sizes, ", ")))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}
	return strings.Replace(text, terminalMarker, b.String(), 1)
}
