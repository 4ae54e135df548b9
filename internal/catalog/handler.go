package catalog

import (
	"net/http"

	"stylist/internal/httpserver"

	"log/slog"
)

// FilterResponse ответ ручки фильтрации: товары, количество и эхо
// применённых предпочтений.
type FilterResponse struct {
	Products    []View      `json:"products"`
	Count       int         `json:"count"`
	Preferences Preferences `json:"preferences"`
}

// Handler HTTP-ручки каталога.
type Handler struct {
	products []Product
	logger   *slog.Logger
}

func NewHandler(products []Product, logger *slog.Logger) *Handler {
	return &Handler{
		products: products,
		logger:   logger,
	}
}

// List возвращает весь каталог.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	views := make([]View, 0, len(h.products))
	for _, p := range h.products {
		views = append(views, p.View())
	}
	httpserver.WriteJSON(w, http.StatusOK, FilterResponse{
		Products: views,
		Count:    len(views),
	})
}

// Filter применяет присланные предпочтения к каталогу.
// Все поля запроса опциональны: пустая запись возвращает весь каталог.
func (h *Handler) Filter(w http.ResponseWriter, r *http.Request) {
	var prefs Preferences
	if err := httpserver.DecodeJSON(r, &prefs); err != nil {
		httpserver.WriteJSONError(w, http.StatusBadRequest, "cannot parse preferences")
		return
	}

	result := Filter(h.products, prefs)
	httpserver.WriteJSON(w, http.StatusOK, FilterResponse{
		Products:    result.Products,
		Count:       result.Count,
		Preferences: prefs,
	})
}
