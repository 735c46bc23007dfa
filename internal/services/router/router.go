package router

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/render"
	"github.com/mcoot/blackjack-go/internal/services/game"
	"github.com/mcoot/blackjack-go/internal/services/registry"
)

// DeckRangeMessage is the private notice for a bad deck count
const DeckRangeMessage = "You need to enter a positive integer between 4 and 10"

// HistoryRecorder keeps a record of finished games
type HistoryRecorder interface {
	Record(ctx context.Context, snap model.Snapshot) error
}

// Publisher shares public responses with a game's watchers
type Publisher interface {
	Publish(resp Response)
}

// Event is an inbound interaction as delivered by a transport
type Event struct {
	ActionID string
	Player   model.Player
	Input    string
}

// ResponseKind tells the transport how to answer the interaction
type ResponseKind string

const (
	KindAck    ResponseKind = "ack"
	KindRender ResponseKind = "render"
	KindForm   ResponseKind = "form"
	KindNotice ResponseKind = "notice"
)

// Response is the router's answer to an interaction: an acknowledgement or
// a payload, paired with the listening update to apply
type Response struct {
	Kind         ResponseKind          `json:"kind"`
	GameID       model.GameID          `json:"game_id,omitempty"`
	Phase        model.Phase           `json:"phase,omitempty"`
	PhaseChanged bool                  `json:"phase_changed"`
	View         *render.View          `json:"view,omitempty"`
	Form         *model.BetForm        `json:"form,omitempty"`
	Notice       string                `json:"notice,omitempty"`
	Update       model.ListeningUpdate `json:"update"`
}

// Router resolves action identifiers to games and dispatches them
type Router struct {
	registry      *registry.Registry
	subscriptions *Subscriptions
	history       HistoryRecorder
	publisher     Publisher
	logger        *slog.Logger
}

var _ game.Publisher = (*Router)(nil)

// New creates a Router and subscribes it to the registry's renders.
// subscriptions must also be registered as an observer of the registry so
// phase changes reach it.
func New(reg *registry.Registry, subscriptions *Subscriptions, history HistoryRecorder, logger *slog.Logger) *Router {
	r := &Router{
		registry:      reg,
		subscriptions: subscriptions,
		history:       history,
		logger:        logger,
	}
	reg.AddPublisher(r)
	return r
}

// CreateGame is the command entry point. decks arrives as typed by the
// user; a bad value becomes a private notice and nothing is created.
func (r *Router) CreateGame(ctx context.Context, name, decks string, host model.Player) (Response, error) {
	count, err := strconv.Atoi(strings.TrimSpace(decks))
	if err != nil || registry.ValidateDecks(count) != nil {
		return Response{Kind: KindNotice, Notice: DeckRangeMessage}, nil
	}

	g, err := r.registry.CreateGame(name, count, host)
	if err != nil {
		if errors.Is(err, model.ErrInvalidDeckCount) {
			return Response{Kind: KindNotice, Notice: DeckRangeMessage}, nil
		}
		return Response{}, err
	}

	return r.respond(ctx, g.ID(), g.Open()), nil
}

// Dispatch routes one interaction. Anything that does not resolve to a
// live game in the phase named by the identifier is acknowledged and its
// identifier unsubscribed.
func (r *Router) Dispatch(ctx context.Context, ev Event) Response {
	id := model.ActionID(strings.TrimSpace(ev.ActionID))

	phase, action, gameID, err := model.ParseActionID(string(id))
	if err != nil {
		r.logger.Debug("unroutable interaction",
			slog.String("action_id", string(id)),
			slog.String("error", err.Error()),
		)
		return r.stale(id)
	}
	if !r.subscriptions.Contains(id) {
		return r.stale(id)
	}
	g, err := r.registry.Lookup(gameID)
	if err != nil {
		return r.stale(id)
	}

	in := model.Interaction{
		Phase:  phase,
		Action: action,
		GameID: gameID,
		Player: ev.Player,
		Input:  ev.Input,
	}
	return r.respond(ctx, gameID, route(g, in))
}

// route is the one place actions meet game methods
func route(g *game.Game, in model.Interaction) game.Result {
	switch in.Action {
	case model.ActionJoin:
		return g.Join(in)
	case model.ActionLeave:
		return g.Leave(in)
	case model.ActionStart:
		return g.Start(in)
	case model.ActionEnd:
		return g.End(in)
	case model.ActionBet:
		return g.OpenBetForm(in)
	case model.ActionBetSubmit:
		return g.SubmitBet(in)
	case model.ActionHit:
		return g.Hit(in)
	case model.ActionStand:
		return g.Stand(in)
	case model.ActionDoubleDown:
		return g.DoubleDown(in)
	case model.ActionReadyUp:
		return g.ReadyUp(in)
	default:
		return game.Result{Update: model.StaleUpdate(in.ID())}
	}
}

// stale answers an identifier that is not live. The table itself is only
// changed by phase transitions, so the unsubscribe goes to the transport.
func (r *Router) stale(id model.ActionID) Response {
	return Response{Kind: KindAck, Update: model.StaleUpdate(id)}
}

// SetPublisher sends every committed render to p. Call it before the
// router serves interactions.
func (r *Router) SetPublisher(p Publisher) {
	r.publisher = p
}

// Rendered publishes a committed render. It runs under the game's lock, so
// the publisher sees each game's renders in the order they happened.
func (r *Router) Rendered(id model.GameID, res game.Result) {
	if r.publisher == nil {
		return
	}
	r.publisher.Publish(toResponse(id, res))
}

func (r *Router) respond(ctx context.Context, gameID model.GameID, res game.Result) Response {
	if res.PhaseChanged() && res.To == model.PhaseFinished && res.Snapshot != nil {
		r.recordFinished(ctx, *res.Snapshot)
	}
	return toResponse(gameID, res)
}

func toResponse(gameID model.GameID, res game.Result) Response {
	resp := Response{
		GameID:       gameID,
		Phase:        res.To,
		PhaseChanged: res.PhaseChanged(),
		Update:       res.Update,
	}
	switch res.Kind {
	case game.ResultRender:
		resp.Kind = KindRender
		resp.View = render.Build(*res.Snapshot)
	case game.ResultBetForm:
		resp.Kind = KindForm
		resp.Form = res.Form
	case game.ResultNotice:
		resp.Kind = KindNotice
		resp.Notice = res.Notice
	default:
		resp.Kind = KindAck
	}
	return resp
}

func (r *Router) recordFinished(ctx context.Context, snap model.Snapshot) {
	if r.history == nil {
		return
	}
	if err := r.history.Record(ctx, snap); err != nil {
		r.logger.Error("failed to record game summary",
			slog.String("game_id", string(snap.ID)),
			slog.String("error", err.Error()),
		)
	}
}

// View renders the live state of a game
func (r *Router) View(id model.GameID) (*render.View, error) {
	g, err := r.registry.Lookup(id)
	if err != nil {
		return nil, err
	}
	return render.Build(g.Snapshot()), nil
}

// Views renders every live game in id order
func (r *Router) Views() []*render.View {
	ids := r.registry.IDs()
	views := make([]*render.View, 0, len(ids))
	for _, id := range ids {
		if view, err := r.View(id); err == nil {
			views = append(views, view)
		}
	}
	return views
}

// Subscriptions exposes the identifier table for transports
func (r *Router) Subscriptions() *Subscriptions {
	return r.subscriptions
}
