package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu        sync.RWMutex
	summaries map[string]*model.GameSummary
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		summaries: make(map[string]*model.GameSummary),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) SaveSummary(ctx context.Context, summary *model.GameSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summaries[summary.ID] = copySummary(summary)
	return nil
}

func (s *Storage) GetSummary(ctx context.Context, id string) (*model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	summary, ok := s.summaries[id]
	if !ok {
		return nil, model.ErrSummaryNotFound
	}
	return copySummary(summary), nil
}

func (s *Storage) ListSummaries(ctx context.Context, limit int) ([]*model.GameSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*model.GameSummary, 0, len(s.summaries))
	for _, summary := range s.summaries {
		all = append(all, copySummary(summary))
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CompletedAt.Equal(all[j].CompletedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CompletedAt.After(all[j].CompletedAt)
	})

	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (s *Storage) DeleteSummary(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.summaries, id)
	return nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return nil
}

func copySummary(summary *model.GameSummary) *model.GameSummary {
	out := *summary
	out.Standings = make([]model.Standing, len(summary.Standings))
	copy(out.Standings, summary.Standings)
	return &out
}
