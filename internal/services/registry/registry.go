package registry

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/mcoot/blackjack-go/internal/dependencies/random"
	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/services/game"
)

const (
	// GameIDLength is the length of generated game ids
	GameIDLength = 6
	// GameIDAlphabet is the characters used in game ids
	GameIDAlphabet = "0123456789"

	// MinDecks and MaxDecks bound the shoe size a game may be created with
	MinDecks = 4
	MaxDecks = 10

	// DefaultName is used when a game is created without a name
	DefaultName = "Blackjack"

	maxIDAttempts = 64
)

// Registry is the process-wide map of live games. Its lock guards only the
// map; each game has its own lock. A game may call into the registry while
// holding its own lock (on finishing), so the registry never waits on a
// game lock while holding its own.
type Registry struct {
	mu         sync.RWMutex
	games      map[model.GameID]*game.Game
	random     random.Random
	logger     *slog.Logger
	observers  []game.Observer
	publishers []game.Publisher
}

var (
	_ game.Observer  = (*Registry)(nil)
	_ game.Publisher = (*Registry)(nil)
)

// New creates an empty registry. Observers hear about every phase change of
// every game after the registry has applied it.
func New(rnd random.Random, logger *slog.Logger, observers ...game.Observer) *Registry {
	return &Registry{
		games:     make(map[model.GameID]*game.Game),
		random:    rnd,
		logger:    logger,
		observers: observers,
	}
}

// ValidateDecks checks a requested deck count
func ValidateDecks(decks int) error {
	if decks < MinDecks || decks > MaxDecks {
		return fmt.Errorf("%w: %d not in %d..%d", model.ErrInvalidDeckCount, decks, MinDecks, MaxDecks)
	}
	return nil
}

// CreateGame allocates a fresh id and registers a new game in Registered
// with the host seated
func (r *Registry) CreateGame(name string, decks int, host model.Player) (*game.Game, error) {
	if err := ValidateDecks(decks); err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.allocateID()
	if err != nil {
		r.logger.Error("game id allocation failed", slog.Int("live_games", len(r.games)))
		return nil, err
	}

	g := game.New(game.Config{
		ID:        id,
		Name:      name,
		Decks:     decks,
		Host:      host,
		Random:    r.random,
		Logger:    r.logger,
		Observer:  r,
		Publisher: r,
	})
	r.games[id] = g

	r.logger.Info("game created",
		slog.String("game_id", string(id)),
		slog.String("host_id", string(host.ID)),
		slog.Int("decks", decks),
	)
	return g, nil
}

// allocateID draws ids until one is free. Callers hold r.mu.
func (r *Registry) allocateID() (model.GameID, error) {
	for range maxIDAttempts {
		id := model.GameID(r.random.String(GameIDLength, GameIDAlphabet))
		if len(id) != GameIDLength {
			continue
		}
		if _, taken := r.games[id]; !taken {
			return id, nil
		}
	}
	return "", model.ErrIDSpaceExhausted
}

// Lookup returns the live game with the id
func (r *Registry) Lookup(id model.GameID) (*game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return g, nil
}

// Remove drops the game from the registry
func (r *Registry) Remove(id model.GameID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[id]; !ok {
		return
	}
	delete(r.games, id)
	r.logger.Info("game removed", slog.String("game_id", string(id)))
}

// Join seats a player in a game that is in Ready. It returns false without
// changing anything when the game is missing, full, started or already
// has the player.
func (r *Registry) Join(id model.GameID, player model.Player) bool {
	g, err := r.Lookup(id)
	if err != nil {
		return false
	}
	return g.AddParticipant(player) == nil
}

// Leave removes the player from the game using the game's live phase
func (r *Registry) Leave(id model.GameID, player model.Player) bool {
	g, err := r.Lookup(id)
	if err != nil {
		return false
	}
	res := g.Leave(model.Interaction{
		Phase:  g.Phase(),
		Action: model.ActionLeave,
		GameID: id,
		Player: player,
	})
	return res.Kind == game.ResultRender
}

// GetByIdentity returns every live game the player is seated in
func (r *Registry) GetByIdentity(player model.PlayerID) []*game.Game {
	var found []*game.Game
	for _, g := range r.all() {
		if g.HasParticipant(player) {
			found = append(found, g)
		}
	}
	return found
}

// all copies the game list so callers can lock games without r.mu held
func (r *Registry) all() []*game.Game {
	r.mu.RLock()
	defer r.mu.RUnlock()
	games := make([]*game.Game, 0, len(r.games))
	for _, g := range r.games {
		games = append(games, g)
	}
	return games
}

// IDs returns the ids of every live game in ascending order
func (r *Registry) IDs() []model.GameID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]model.GameID, 0, len(r.games))
	for id := range r.games {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Count returns the number of live games
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}

// PhaseChanged removes games the moment they finish, then notifies the
// registry's observers
func (r *Registry) PhaseChanged(id model.GameID, from, to model.Phase, update model.ListeningUpdate) {
	if to.IsTerminal() {
		r.Remove(id)
	}
	for _, o := range r.observers {
		o.PhaseChanged(id, from, to, update)
	}
}

// AddPublisher subscribes p to the renders of every game
func (r *Registry) AddPublisher(p game.Publisher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.publishers = append(r.publishers, p)
}

// Rendered passes a game's render on to the registry's publishers. It runs
// under the game's lock, which keeps renders of one game in commit order.
func (r *Registry) Rendered(id model.GameID, res game.Result) {
	r.mu.RLock()
	publishers := r.publishers
	r.mu.RUnlock()
	for _, p := range publishers {
		p.Rendered(id, res)
	}
}
