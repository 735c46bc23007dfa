package handler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gorilla/mux"

	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/render"
	"github.com/mcoot/blackjack-go/internal/services/router"
	"github.com/mcoot/blackjack-go/internal/web/templates/layout"
	"github.com/mcoot/blackjack-go/internal/web/templates/pages"
)

// TableHandler serves the spectator pages
type TableHandler struct {
	router *router.Router
	logger *slog.Logger
}

// NewTableHandler creates a new TableHandler
func NewTableHandler(gameRouter *router.Router, logger *slog.Logger) *TableHandler {
	return &TableHandler{
		router: gameRouter,
		logger: logger,
	}
}

// Home renders the list of live games
func (h *TableHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := pages.HomeData{
		PageData: layout.PageData{Title: render.Title},
		Games:    h.router.Views(),
	}
	h.write(w, r, pages.Home(data))
}

// View renders one game, which then follows the event stream
func (h *TableHandler) View(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	view, err := h.router.View(id)
	if errors.Is(err, model.ErrGameNotFound) {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pages.TableData{
		PageData: layout.PageData{Title: render.Title + ": " + view.Name},
		View:     view,
	}
	h.write(w, r, pages.Table(data))
}

// write renders into a buffer first so a component error still gets a clean 500
func (h *TableHandler) write(w http.ResponseWriter, r *http.Request, page templ.Component) {
	var buf bytes.Buffer
	if err := page.Render(r.Context(), &buf); err != nil {
		h.logger.Error("failed to render page", slog.String("path", r.URL.Path), slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
