package game

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mcoot/blackjack-go/internal/model"
)

// BetFormTitle is the heading of the bet entry form
const BetFormTitle = "Place your bets"

// inPhase checks the interaction against the live phase. The phase in an
// action identifier is only a hint; this is the real check.
func (g *Game) inPhase(in model.Interaction) bool {
	if in.Phase != g.phase {
		g.logger.Debug("stale interaction",
			slog.String("action_id", string(in.ID())),
			slog.String("live_phase", string(g.phase)),
		)
		return false
	}
	return true
}

// Open moves a freshly registered game to Ready
func (g *Game) Open() Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != model.PhaseRegistered {
		return g.ack()
	}
	from := g.phase
	return g.render(from, g.transition(model.PhaseReady))
}

// AddParticipant seats a player while the game is in Ready
func (g *Game) AddParticipant(p model.Player) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.addParticipant(p)
}

func (g *Game) addParticipant(p model.Player) error {
	if g.phase != model.PhaseReady {
		return model.ErrNotAcceptingPlayers
	}
	if g.participant(p.ID) != nil {
		return model.ErrAlreadyJoined
	}
	if len(g.participants) >= MaxParticipants {
		return model.ErrGameFull
	}

	g.participants = append(g.participants, model.NewParticipant(p))
	g.logger.Info("player joined",
		slog.String("player_id", string(p.ID)),
		slog.Int("participants", len(g.participants)),
	)
	return nil
}

// Join handles the join button
func (g *Game) Join(in model.Interaction) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inPhase(in) {
		return g.stale(in)
	}
	if err := g.addParticipant(in.Player); err != nil {
		return g.ack()
	}
	return g.render(g.phase, model.ListeningUpdate{})
}

// Start is the host-only move from Ready to Betting
func (g *Game) Start(in model.Interaction) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inPhase(in) {
		return g.stale(in)
	}
	if !g.isHost(in.Player) {
		return g.ack()
	}
	from := g.phase
	return g.render(from, g.transition(model.PhaseBetting))
}

// End is the host-only forced finish, available in every live phase.
// Hands in progress are discarded without settlement.
func (g *Game) End(in model.Interaction) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inPhase(in) {
		return g.stale(in)
	}
	if !g.isHost(in.Player) {
		return g.ack()
	}
	return g.finish("ended by host", true)
}

// finish moves to Finished. forced is false only when a round ended with
// nobody left who can play.
func (g *Game) finish(reason string, forced bool) Result {
	from := g.phase
	g.forced = forced
	g.logger.Info("game finishing",
		slog.String("reason", reason),
		slog.Bool("forced", forced),
	)
	return g.render(from, g.transition(model.PhaseFinished))
}

// Leave marks the participant as gone. In Ready the host leaving ends the
// game and anyone else is taken off the roster.
func (g *Game) Leave(in model.Interaction) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inPhase(in) {
		return g.stale(in)
	}

	if g.phase == model.PhaseReady {
		if g.isHost(in.Player) {
			return g.finish("host left", true)
		}
		if !g.removeParticipant(in.Player.ID) {
			return g.ack()
		}
		return g.render(g.phase, model.ListeningUpdate{})
	}

	p := g.participant(in.Player.ID)
	if p == nil || p.PlayingState == model.PlayingStateLeft {
		return g.ack()
	}
	p.PlayingState = model.PlayingStateLeft
	p.Bet = 0
	p.Ready = false

	if !g.activePlayersExist() {
		return g.finish("no active players", true)
	}
	return g.advance()
}

// advance re-runs the current phase's progress check after a roster change
func (g *Game) advance() Result {
	from := g.phase
	switch {
	case g.phase == model.PhaseBetting && g.everybodyHasBet():
		return g.render(from, g.transition(model.PhaseInGame))
	case g.phase == model.PhaseInGame && !g.someoneCanMove():
		return g.render(from, g.transition(model.PhaseResults))
	case g.phase == model.PhaseResults && g.pendingReady() == 0:
		return g.render(from, g.transition(model.PhaseBetting))
	}
	return g.render(from, model.ListeningUpdate{})
}

// OpenBetForm returns the private bet form for an eligible participant
func (g *Game) OpenBetForm(in model.Interaction) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inPhase(in) {
		return g.stale(in)
	}
	p := g.participant(in.Player.ID)
	if p == nil || !p.CanBet() || p.Currency <= 0 {
		return g.ack()
	}

	return Result{
		Kind: ResultBetForm,
		Form: &model.BetForm{
			ActionID: model.NewActionID(g.phase, model.ActionBetSubmit, g.id),
			Title:    BetFormTitle,
			Min:      1,
			Max:      p.Currency,
			Current:  p.Bet,
		},
		From: g.phase,
		To:   g.phase,
	}
}

// SubmitBet places the amount typed into the bet form. Non-numeric input
// gets a private notice; a number outside 1..currency is ignored.
func (g *Game) SubmitBet(in model.Interaction) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inPhase(in) {
		return g.stale(in)
	}
	p := g.participant(in.Player.ID)
	if p == nil || !p.CanBet() {
		return g.ack()
	}

	amount, err := strconv.Atoi(strings.TrimSpace(in.Input))
	if err != nil {
		return g.notice(fmt.Sprintf("Bet must be a whole number between 1 and %d", p.Currency))
	}
	if amount < 1 || amount > p.Currency {
		return g.render(g.phase, model.ListeningUpdate{})
	}

	p.Bet = amount
	p.PlayingState = model.PlayingStateHasBet
	g.logger.Debug("bet placed",
		slog.String("player_id", string(p.Player.ID)),
		slog.Int("bet", amount),
	)
	return g.advance()
}

// Hit draws one card for the participant
func (g *Game) Hit(in model.Interaction) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inPhase(in) {
		return g.stale(in)
	}
	p := g.participant(in.Player.ID)
	if p == nil || !p.CanAct() {
		return g.ack()
	}

	p.Hand = append(p.Hand, g.mustDraw())
	switch value := p.HandValue(); {
	case value > 21:
		p.HandState = model.HandStateBust
	case value == 21:
		p.HandState = model.HandStateTwentyOne
	}
	return g.advance()
}

// Stand ends the participant's turn
func (g *Game) Stand(in model.Interaction) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inPhase(in) {
		return g.stale(in)
	}
	p := g.participant(in.Player.ID)
	if p == nil || !p.CanAct() {
		return g.ack()
	}

	p.HandState = model.HandStateStand
	return g.advance()
}

// DoubleDown doubles the bet on an untouched two-card hand, draws exactly
// one card and stands unless that card busts or makes 21
func (g *Game) DoubleDown(in model.Interaction) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inPhase(in) {
		return g.stale(in)
	}
	p := g.participant(in.Player.ID)
	if p == nil || !p.CanAct() || len(p.Hand) != 2 || 2*p.Bet > p.Currency {
		return g.ack()
	}

	p.Bet *= 2
	p.Hand = append(p.Hand, g.mustDraw())
	switch value := p.HandValue(); {
	case value > 21:
		p.HandState = model.HandStateBust
	case value == 21:
		p.HandState = model.HandStateTwentyOne
	default:
		p.HandState = model.HandStateStand
	}
	return g.advance()
}

// ReadyUp marks the participant ready for the next round
func (g *Game) ReadyUp(in model.Interaction) Result {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inPhase(in) {
		return g.stale(in)
	}
	p := g.participant(in.Player.ID)
	if p == nil {
		return g.ack()
	}
	p.Ready = true

	if g.pendingReady() > 0 {
		return g.render(g.phase, model.ListeningUpdate{})
	}
	if !g.activePlayersExist() {
		return g.finish("no active players", false)
	}
	from := g.phase
	return g.render(from, g.transition(model.PhaseBetting))
}
