package httpserver

import (
	"net/http"

	"stylist/internal/middleware"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type RouterDeps struct {
	Logger         *slog.Logger
	AllowedOrigins []string

	Chat          http.Handler
	ProductList   http.HandlerFunc
	ProductFilter http.HandlerFunc
	SessionGet    http.HandlerFunc
	SessionPut    http.HandlerFunc
	SessionReset  http.HandlerFunc
}

// NewRouter собирает chi-роутер с общими middleware и CORS для витрины.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", deps.Chat.ServeHTTP)
		r.Get("/products", deps.ProductList)
		r.Post("/products/filter", deps.ProductFilter)
		r.Get("/session/filters", deps.SessionGet)
		r.Put("/session/filters", deps.SessionPut)
		r.Delete("/session/filters", deps.SessionReset)
	})

	return r
}
