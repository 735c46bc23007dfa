package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/blackjack-go/internal/api/middleware"
	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/services/router"
	"github.com/mcoot/blackjack-go/internal/web/sse"
)

// EventsHandler streams live game displays over SSE
type EventsHandler struct {
	router      *router.Router
	hubManager  *sse.HubManager
	broadcaster *sse.Broadcaster
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(gameRouter *router.Router, hubManager *sse.HubManager, broadcaster *sse.Broadcaster) *EventsHandler {
	return &EventsHandler{
		router:      gameRouter,
		hubManager:  hubManager,
		broadcaster: broadcaster,
	}
}

// Stream handles GET /api/v1/games/{id}/events
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	if _, err := h.router.View(id); err != nil {
		WriteError(w, err)
		return
	}

	var watcher model.PlayerID
	if player := middleware.GetPlayer(r.Context()); player != nil {
		watcher = player.ID
	}

	hub := h.hubManager.GetOrCreateHub(id)
	sse.ServeSSE(w, r, hub, watcher, func() (uint64, [][]byte) {
		view, err := h.router.View(id)
		if err != nil {
			// the game went away after the check above
			return 0, nil
		}
		return h.broadcaster.InitialEvents(view)
	})
}
