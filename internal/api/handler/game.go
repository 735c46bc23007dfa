package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/blackjack-go/internal/api/apierr"
	"github.com/mcoot/blackjack-go/internal/api/middleware"
	"github.com/mcoot/blackjack-go/internal/api/request"
	"github.com/mcoot/blackjack-go/internal/api/response"
	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/services/router"
)

// GameHandler handles game creation, lookup and interactions
type GameHandler struct {
	router *router.Router
	logger *slog.Logger
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameRouter *router.Router, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		router: gameRouter,
		logger: logger,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	resp, err := h.router.CreateGame(r.Context(), req.Name, req.Decks, *player)
	if err != nil {
		WriteError(w, err)
		return
	}
	if resp.Kind == router.KindNotice {
		WriteError(w, apierr.NewInvalidDeckCountError(resp.Notice))
		return
	}

	response.JSON(w, http.StatusCreated, resp)
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.GameList{Games: h.router.Views()})
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	view, err := h.router.View(id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, view)
}

// Interact handles POST /api/v1/interactions. Every interaction is
// answered with 200: stale identifiers come back as an acknowledgement
// carrying the unsubscribe instruction. Watchers already got any render
// from the router while the game was locked.
func (h *GameHandler) Interact(w http.ResponseWriter, r *http.Request) {
	player := middleware.MustGetPlayer(r.Context())

	var req request.InteractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.ActionID == "" {
		WriteError(w, NewInvalidRequestError("action_id is required"))
		return
	}

	resp := h.router.Dispatch(r.Context(), router.Event{
		ActionID: req.ActionID,
		Player:   *player,
		Input:    req.Input,
	})

	response.JSON(w, http.StatusOK, resp)
}
