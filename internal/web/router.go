package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/blackjack-go/internal/services/router"
	"github.com/mcoot/blackjack-go/internal/web/handler"
	"github.com/mcoot/blackjack-go/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger *slog.Logger
	Router *router.Router
}

// NewRouter creates the spectator web router. Pages are read-only; play
// happens through interactions on the API.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	tableHandler := handler.NewTableHandler(cfg.Router, cfg.Logger)

	r.HandleFunc("/", tableHandler.Home).Methods(http.MethodGet)
	r.HandleFunc("/games/{id}", tableHandler.View).Methods(http.MethodGet)

	return r
}
