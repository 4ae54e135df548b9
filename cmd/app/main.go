package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"stylist/internal/assistant"
	"stylist/internal/catalog"
	"stylist/internal/config"
	"stylist/internal/httpserver"
	"stylist/internal/llm"
	"stylist/internal/session"
	"stylist/internal/transport"

	"log/slog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := newLogger(cfg.LogLevel)

	httpClient := transport.NewHTTPClient(cfg.RequestTimeout)

	var completion llm.Client
	switch strings.ToLower(cfg.CompletionBackend) {
	case "maestro":
		maestroClient := llm.NewMaestroClient(cfg.AI21, httpClient, logger)
		completion = llm.NewMaestroCompletion(
			maestroClient,
			runRequirements(assistant.DefaultRequirements()),
			cfg.Maestro.PollInterval,
			cfg.Maestro.PollTimeout,
		)
	default:
		completion = llm.NewAI21Client(cfg.AI21, httpClient, logger)
	}

	var filterStore session.Store
	switch strings.ToLower(cfg.FilterStore.Type) {
	case "file":
		fileStore, err := session.NewFileStore(cfg.FilterStore.Path)
		if err != nil {
			log.Fatalf("failed to init filter store: %v", err)
		}
		filterStore = fileStore
	default:
		filterStore = session.NewMemoryStore()
	}

	events := session.NewBroker()
	go logFilterEvents(events, logger)

	products := catalog.SampleProducts()

	chatService := assistant.NewService(assistant.ServiceConfig{
		LLM:        completion,
		Products:   products,
		Filters:    filterStore,
		Events:     events,
		PromptMode: cfg.PromptMode,
		Logger:     logger,
	})
	chatHandler := assistant.NewHandler(chatService, logger)
	catalogHandler := catalog.NewHandler(products, logger)
	sessionHandler := session.NewHandler(filterStore, events, logger)

	router := httpserver.NewRouter(httpserver.RouterDeps{
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		Chat:           chatHandler,
		ProductList:    catalogHandler.List,
		ProductFilter:  catalogHandler.Filter,
		SessionGet:     sessionHandler.Get,
		SessionPut:     sessionHandler.Put,
		SessionReset:   sessionHandler.Reset,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * time.Minute, // ход диалога ждёт ответа модели
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting", slog.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}

// logFilterEvents подписывается на события фильтра и пишет их в лог.
func logFilterEvents(events *session.Broker, logger *slog.Logger) {
	applied, cancelApplied := events.Subscribe(session.EventFiltersApplied)
	reset, cancelReset := events.Subscribe(session.EventFiltersReset)
	defer cancelApplied()
	defer cancelReset()

	for {
		select {
		case ev, ok := <-applied:
			if !ok {
				return
			}
			logger.Info("filters applied", slog.Any("preferences", ev.Preferences))
		case ev, ok := <-reset:
			if !ok {
				return
			}
			logger.Info("filters reset", slog.String("event", ev.Name))
		}
	}
}

func runRequirements(reqs []assistant.Requirement) []llm.RunRequirement {
	out := make([]llm.RunRequirement, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, llm.RunRequirement{
			Name:        r.Name,
			Description: r.Description,
			IsMandatory: r.IsMandatory,
		})
	}
	return out
}

func newLogger(level string) *slog.Logger {
	slogLevel := slog.LevelInfo
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
}
