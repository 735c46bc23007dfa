package router

import (
	"sort"
	"sync"

	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/services/game"
)

// Subscriptions is the table of action identifiers currently listened for.
// Each listening update is applied under one lock, so no reader ever sees
// a half-swapped set.
type Subscriptions struct {
	mu     sync.RWMutex
	active map[model.ActionID]model.GameID
}

var _ game.Observer = (*Subscriptions)(nil)

// NewSubscriptions creates an empty table
func NewSubscriptions() *Subscriptions {
	return &Subscriptions{active: make(map[model.ActionID]model.GameID)}
}

// Apply removes the unsubscribed identifiers and adds the subscribed ones
func (s *Subscriptions) Apply(gameID model.GameID, update model.ListeningUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range update.Unsubscribe {
		delete(s.active, id)
	}
	for _, id := range update.Subscribe {
		s.active[id] = gameID
	}
}

// PhaseChanged applies a game's phase-change update
func (s *Subscriptions) PhaseChanged(id model.GameID, _, _ model.Phase, update model.ListeningUpdate) {
	s.Apply(id, update)
}

// Contains reports whether the identifier is currently listened for
func (s *Subscriptions) Contains(id model.ActionID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.active[id]
	return ok
}

// ForGame returns the identifiers listened for on one game, sorted
func (s *Subscriptions) ForGame(gameID model.GameID) []model.ActionID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var ids []model.ActionID
	for id, g := range s.active {
		if g == gameID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of identifiers listened for across all games
func (s *Subscriptions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.active)
}
