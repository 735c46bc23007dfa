package sse

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/render"
	"github.com/mcoot/blackjack-go/internal/services/router"
)

// Broadcaster pushes router responses to the watchers of a game
type Broadcaster struct {
	hubManager *HubManager
	renderer   *Renderer
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		renderer:   NewRenderer(),
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// Publish shares a public response with the game's watchers. Forms,
// notices and acknowledgements are private to the actor and are skipped.
// The router calls it while the game is locked, so renders reach the hub in
// the order they were committed.
func (b *Broadcaster) Publish(resp router.Response) {
	if resp.Kind != router.KindRender || resp.View == nil {
		return
	}
	hub := b.hubManager.GetHub(resp.GameID)
	if hub == nil {
		return
	}

	version := resp.View.Version
	for _, msg := range b.viewEvents(resp.View) {
		hub.BroadcastVersion(version, msg)
	}

	if resp.PhaseChanged {
		if data, err := json.Marshal(resp.Update); err == nil {
			hub.BroadcastVersion(version, formatSSEMessage(string(model.EventListeningUpdate), string(data)))
		}
	}

	if resp.PhaseChanged && resp.Phase.IsTerminal() {
		hub.BroadcastEvent(model.EventGameFinished, string(resp.GameID))
		b.hubManager.RemoveHub(resp.GameID)
	}
}

// InitialEvents are the messages a new watcher receives on connect, with
// the version they show
func (b *Broadcaster) InitialEvents(view *render.View) (uint64, [][]byte) {
	return view.Version, b.viewEvents(view)
}

func (b *Broadcaster) viewEvents(view *render.View) [][]byte {
	var events [][]byte

	data, err := json.Marshal(view)
	if err != nil {
		b.logger.Error("sse failed to encode view",
			slog.String("game_id", string(view.GameID)),
			slog.Any("error", err))
		return nil
	}
	events = append(events, formatSSEMessage(string(model.EventGameUpdate), string(data)))

	html, err := b.renderer.RenderTable(context.Background(), view)
	if err != nil {
		b.logger.Error("sse failed to render fragment",
			slog.String("game_id", string(view.GameID)),
			slog.Any("error", err))
		return events
	}
	return append(events, formatSSEMessage(string(model.EventGameFragment), html))
}
