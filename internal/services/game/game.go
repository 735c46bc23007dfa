package game

import (
	"log/slog"
	"sync"

	"github.com/mcoot/blackjack-go/internal/dependencies/random"
	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/services/shoe"
)

// MaxParticipants is the roster capacity of a game
const MaxParticipants = 6

// Observer is told about every phase change. It is called while the game's
// lock is held, so it must not call back into the game.
type Observer interface {
	PhaseChanged(id model.GameID, from, to model.Phase, update model.ListeningUpdate)
}

// Publisher hears every rendered result in commit order. Like Observer it
// runs under the game's lock.
type Publisher interface {
	Rendered(id model.GameID, res Result)
}

// Shoe is the card source a game deals from
type Shoe interface {
	Draw() (model.Card, error)
	CardsLeft() int
	Capacity() int
	ReshuffleIfLow(threshold float64) bool
}

// Config holds everything needed to construct a Game
type Config struct {
	ID        model.GameID
	Name      string
	Decks     int
	Host      model.Player
	Random    random.Random
	Logger    *slog.Logger
	Observer  Observer
	Publisher Publisher
	// Shoe overrides the freshly shuffled shoe built from Decks
	Shoe Shoe
}

// Game is one table: the phase machine, the shoe, the dealer's hand and
// the roster. Every exported method holds the game's lock for its whole
// duration, so mutations on one game are serialized while different games
// proceed in parallel.
type Game struct {
	mu sync.Mutex

	id    model.GameID
	name  string
	decks int
	host  model.Player

	phase         model.Phase
	previousPhase model.Phase
	rounds        int
	forced        bool
	version       uint64

	shoe            Shoe
	dealerHand      []model.Card
	dealerHandState model.HandState
	participants    []*model.Participant

	observer  Observer
	publisher Publisher
	logger    *slog.Logger
}

// New constructs a game in Registered with the host seated first
func New(cfg Config) *Game {
	cards := cfg.Shoe
	if cards == nil {
		cards = shoe.New(cfg.Decks, cfg.Random)
	}
	g := &Game{
		id:            cfg.ID,
		name:          cfg.Name,
		decks:         cfg.Decks,
		host:          cfg.Host,
		phase:         model.PhaseRegistered,
		previousPhase: model.PhaseRegistered,
		shoe:          cards,
		participants:  []*model.Participant{model.NewParticipant(cfg.Host)},
		observer:      cfg.Observer,
		publisher:     cfg.Publisher,
		logger:        cfg.Logger.With(slog.String("game_id", string(cfg.ID))),
	}
	return g
}

// ID returns the game's registry identifier
func (g *Game) ID() model.GameID {
	return g.id
}

// Phase returns the live phase
func (g *Game) Phase() model.Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// Host returns the identity of the host
func (g *Game) Host() model.Player {
	return g.host
}

// HasParticipant reports whether the player is on the roster
func (g *Game) HasParticipant(id model.PlayerID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.participant(id) != nil
}

// Snapshot copies the game's state under its lock
func (g *Game) Snapshot() model.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

func (g *Game) snapshot() model.Snapshot {
	dealer := make([]model.Card, len(g.dealerHand))
	copy(dealer, g.dealerHand)

	participants := make([]model.ParticipantSnapshot, 0, len(g.participants))
	for _, p := range g.participants {
		participants = append(participants, model.SnapshotParticipant(p))
	}

	return model.Snapshot{
		ID:            g.id,
		Version:       g.version,
		Name:          g.name,
		Host:          g.host,
		Decks:         g.decks,
		Phase:         g.phase,
		PreviousPhase: g.previousPhase,
		Rounds:        g.rounds,
		Forced:        g.forced,
		CardsLeft:     g.shoe.CardsLeft(),
		ShoeSize:      g.shoe.Capacity(),
		Dealer: model.DealerSnapshot{
			Hand:      dealer,
			Value:     model.HandValue(dealer),
			HandState: g.dealerHandState,
		},
		Participants:  participants,
		PendingReady:  g.pendingReady(),
		ActivePlayers: g.activePlayersExist(),
	}
}

// participant finds a roster entry by identity. Rosters hold at most six
// entries so a scan is enough.
func (g *Game) participant(id model.PlayerID) *model.Participant {
	for _, p := range g.participants {
		if p.Player.ID == id {
			return p
		}
	}
	return nil
}

func (g *Game) removeParticipant(id model.PlayerID) bool {
	for i, p := range g.participants {
		if p.Player.ID == id {
			g.participants = append(g.participants[:i], g.participants[i+1:]...)
			return true
		}
	}
	return false
}

func (g *Game) isHost(p model.Player) bool {
	return p.ID == g.host.ID
}

func (g *Game) activePlayersExist() bool {
	for _, p := range g.participants {
		if p.IsActive() {
			return true
		}
	}
	return false
}

func (g *Game) everybodyHasBet() bool {
	for _, p := range g.participants {
		if p.PlayingState == model.PlayingStateNotYetBet {
			return false
		}
	}
	return true
}

func (g *Game) someoneCanMove() bool {
	for _, p := range g.participants {
		if p.CanAct() {
			return true
		}
	}
	return false
}

func (g *Game) pendingReady() int {
	n := 0
	for _, p := range g.participants {
		if p.PlayingState == model.PlayingStateHasBet && !p.Ready && p.Currency > 0 {
			n++
		}
	}
	return n
}

// mustDraw deals the next card. An empty shoe mid-round means the
// reshuffle threshold failed to keep enough cards in play.
func (g *Game) mustDraw() model.Card {
	card, err := g.shoe.Draw()
	if err != nil {
		g.logger.Error("shoe exhausted during play",
			slog.Int("capacity", g.shoe.Capacity()),
			slog.String("phase", string(g.phase)),
		)
		panic(err)
	}
	return card
}
