package game

import "github.com/mcoot/blackjack-go/internal/model"

// ResultKind says what the caller should send back for an interaction
type ResultKind int

const (
	// ResultAck is a silent acknowledgement with no render
	ResultAck ResultKind = iota
	// ResultRender carries the new state to display
	ResultRender
	// ResultBetForm asks the transport to show the bet entry form
	ResultBetForm
	// ResultNotice is a private message for the acting player only
	ResultNotice
)

func (k ResultKind) String() string {
	switch k {
	case ResultAck:
		return "ack"
	case ResultRender:
		return "render"
	case ResultBetForm:
		return "form"
	case ResultNotice:
		return "notice"
	default:
		return "unknown"
	}
}

// Result is what every game method returns
type Result struct {
	Kind     ResultKind
	Snapshot *model.Snapshot
	Form     *model.BetForm
	Notice   string
	Update   model.ListeningUpdate

	// From and To are equal unless the interaction changed the phase
	From model.Phase
	To   model.Phase
}

// PhaseChanged reports whether the interaction moved the game
func (r Result) PhaseChanged() bool {
	return r.From != r.To
}

func (g *Game) ack() Result {
	return Result{Kind: ResultAck, From: g.phase, To: g.phase}
}

func (g *Game) stale(in model.Interaction) Result {
	return Result{
		Kind:   ResultAck,
		Update: model.StaleUpdate(in.ID()),
		From:   g.phase,
		To:     g.phase,
	}
}

// render stamps a new version on the state and publishes it before the
// lock is released, so watchers see renders in the order they committed
func (g *Game) render(from model.Phase, update model.ListeningUpdate) Result {
	g.version++
	snap := g.snapshot()
	res := Result{
		Kind:     ResultRender,
		Snapshot: &snap,
		Update:   update,
		From:     from,
		To:       g.phase,
	}
	if g.publisher != nil {
		g.publisher.Rendered(g.id, res)
	}
	return res
}

func (g *Game) notice(message string) Result {
	return Result{Kind: ResultNotice, Notice: message, From: g.phase, To: g.phase}
}
