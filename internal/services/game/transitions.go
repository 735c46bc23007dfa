package game

import (
	"log/slog"
	"sort"

	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/services/settlement"
	"github.com/mcoot/blackjack-go/internal/services/shoe"
)

// dealerStandsOn is the total at which the dealer stops drawing
const dealerStandsOn = 17

// entryEffects run whenever the game enters the keyed phase, before
// observers hear about the change
var entryEffects = map[model.Phase]func(*Game){
	model.PhaseBetting:  (*Game).enterBetting,
	model.PhaseInGame:   (*Game).enterInGame,
	model.PhaseResults:  (*Game).enterResults,
	model.PhaseFinished: (*Game).enterFinished,
}

// transition moves the game to a new phase, runs its entry effect and
// returns the combined listening update. Callers hold g.mu.
func (g *Game) transition(to model.Phase) model.ListeningUpdate {
	from := g.phase
	g.previousPhase = from
	g.phase = to

	if effect, ok := entryEffects[to]; ok {
		effect(g)
	}

	update := model.PhaseChangeUpdate(g.id, from, to)

	g.logger.Info("phase changed",
		slog.String("from", string(from)),
		slog.String("to", string(to)),
		slog.Int("participants", len(g.participants)),
	)

	if g.observer != nil {
		g.observer.PhaseChanged(g.id, from, to, update)
	}
	return update
}

func (g *Game) enterBetting() {
	for _, p := range g.participants {
		if p.Currency == 0 && p.PlayingState != model.PlayingStateLeft {
			p.PlayingState = model.PlayingStateBankrupt
		}
		if p.PlayingState == model.PlayingStateHasBet {
			p.PlayingState = model.PlayingStateNotYetBet
		}
		if p.PlayingState != model.PlayingStateHasBet {
			p.Bet = 0
		}
		p.Ready = false
	}

	if g.shoe.ReshuffleIfLow(shoe.ReshuffleThreshold) {
		g.logger.Info("shoe reshuffled", slog.Int("cards", g.shoe.CardsLeft()))
	}
}

func (g *Game) enterInGame() {
	g.rounds++
	g.dealerHand = nil
	for _, p := range g.participants {
		p.ClearRound()
	}

	g.dealerHand = append(g.dealerHand, g.mustDraw(), g.mustDraw())
	g.dealerHandState = model.HandStateUnfinished

	for _, p := range g.participants {
		if p.PlayingState != model.PlayingStateHasBet {
			continue
		}
		p.Hand = append(p.Hand, g.mustDraw(), g.mustDraw())
		p.HandState = model.HandStateUnfinished
	}
}

func (g *Game) enterResults() {
	g.playDealer()

	dealer := settlement.HandOf(g.dealerHand, g.dealerHandState)
	for _, p := range g.participants {
		if p.PlayingState != model.PlayingStateHasBet {
			continue
		}
		result := settlement.Settle(dealer, settlement.HandOf(p.Hand, p.HandState), p.Bet)
		p.Currency += result.Delta
		p.Outcome = result.Outcome
		p.Reason = result.Reason
		p.Delta = result.Delta
	}
}

// playDealer draws while the dealer is under seventeen. Bust and twenty-one
// are only flagged by a draw; a dealt hand of seventeen or more stands.
func (g *Game) playDealer() {
	g.dealerHandState = model.HandStateStand
	for model.HandValue(g.dealerHand) < dealerStandsOn {
		g.dealerHand = append(g.dealerHand, g.mustDraw())
		switch value := model.HandValue(g.dealerHand); {
		case value > 21:
			g.dealerHandState = model.HandStateBust
			return
		case value == 21:
			g.dealerHandState = model.HandStateTwentyOne
			return
		}
	}
}

func (g *Game) enterFinished() {
	sort.SliceStable(g.participants, func(i, j int) bool {
		return g.participants[i].Currency > g.participants[j].Currency
	})
}
