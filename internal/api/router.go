package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/blackjack-go/internal/api/handler"
	apimiddleware "github.com/mcoot/blackjack-go/internal/api/middleware"
	"github.com/mcoot/blackjack-go/internal/middleware"
	"github.com/mcoot/blackjack-go/internal/services/history"
	"github.com/mcoot/blackjack-go/internal/services/registry"
	"github.com/mcoot/blackjack-go/internal/services/router"
	"github.com/mcoot/blackjack-go/internal/storage"
	"github.com/mcoot/blackjack-go/internal/web/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	Storage     storage.Storage
	Registry    *registry.Registry
	Router      *router.Router
	History     *history.Service
	HubManager  *sse.HubManager
	Broadcaster *sse.Broadcaster
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.Router, cfg.Logger)
	eventsHandler := handler.NewEventsHandler(cfg.Router, cfg.HubManager, cfg.Broadcaster)
	historyHandler := handler.NewHistoryHandler(cfg.History)
	healthHandler := handler.NewHealthHandler(cfg.Storage, cfg.Registry, cfg.HubManager, cfg.Logger)

	identity := apimiddleware.Identity()
	optionalIdentity := apimiddleware.OptionalIdentity()

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Reads are open; anyone can watch a table
	api.Handle("/games", optionalIdentity(http.HandlerFunc(gameHandler.List))).Methods(http.MethodGet)
	api.Handle("/games/{id}", optionalIdentity(http.HandlerFunc(gameHandler.Get))).Methods(http.MethodGet)
	api.Handle("/games/{id}/events", optionalIdentity(http.HandlerFunc(eventsHandler.Stream))).Methods(http.MethodGet)
	api.HandleFunc("/history", historyHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/history/{id}", historyHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/health", healthHandler.Check).Methods(http.MethodGet)

	// Writes act as a player
	api.Handle("/games", identity(http.HandlerFunc(gameHandler.Create))).Methods(http.MethodPost)
	api.Handle("/interactions", identity(http.HandlerFunc(gameHandler.Interact))).Methods(http.MethodPost)

	return r
}
