package session

import (
	"net/http"

	"stylist/internal/catalog"
	"stylist/internal/httpserver"

	"log/slog"
)

// FiltersResponse текущее состояние фильтра сессии.
type FiltersResponse struct {
	Preferences catalog.Preferences `json:"preferences"`
	Active      bool                `json:"active"`
}

// Handler HTTP-ручки фильтра сессии.
type Handler struct {
	store  Store
	events *Broker
	logger *slog.Logger
}

func NewHandler(store Store, events *Broker, logger *slog.Logger) *Handler {
	return &Handler{
		store:  store,
		events: events,
		logger: logger,
	}
}

// Get возвращает последний применённый фильтр.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	prefs, ok := h.store.Get()
	httpserver.WriteJSON(w, http.StatusOK, FiltersResponse{
		Preferences: prefs,
		Active:      ok,
	})
}

// Put сохраняет фильтр и рассылает событие применения.
func (h *Handler) Put(w http.ResponseWriter, r *http.Request) {
	var prefs catalog.Preferences
	if err := httpserver.DecodeJSON(r, &prefs); err != nil {
		httpserver.WriteJSONError(w, http.StatusBadRequest, "cannot parse preferences")
		return
	}

	if err := h.store.Save(prefs); err != nil {
		h.logger.Error("save session filters", slog.String("error", err.Error()))
		httpserver.WriteJSONError(w, http.StatusInternalServerError, "failed to save filters")
		return
	}
	h.events.Publish(EventFiltersApplied, prefs)

	httpserver.WriteJSON(w, http.StatusOK, FiltersResponse{Preferences: prefs, Active: true})
}

// Reset сбрасывает фильтр и рассылает событие сброса с пустой записью.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(); err != nil {
		h.logger.Error("clear session filters", slog.String("error", err.Error()))
		httpserver.WriteJSONError(w, http.StatusInternalServerError, "failed to reset filters")
		return
	}
	h.events.Publish(EventFiltersReset, catalog.Preferences{})

	httpserver.WriteJSON(w, http.StatusOK, FiltersResponse{})
}
