package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mcoot/blackjack-go/internal/dependencies/clock"
	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/storage"
)

// DefaultLimit caps Recent when the caller gives no limit
const DefaultLimit = 20

// Service keeps summaries of finished games
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a history Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Record stores a summary of a game that has reached Finished. The
// snapshot's roster is already in final ranking order.
func (s *Service) Record(ctx context.Context, snap model.Snapshot) error {
	if snap.Phase != model.PhaseFinished {
		return fmt.Errorf("record game %s: phase is %s", snap.ID, snap.Phase)
	}

	summary := Summarize(snap, s.clock.Now())
	if err := s.storage.SaveSummary(ctx, summary); err != nil {
		return fmt.Errorf("save summary: %w", err)
	}

	s.logger.Info("game summary recorded",
		slog.String("summary_id", summary.ID),
		slog.String("game_id", string(summary.GameID)),
		slog.Int("rounds", summary.Rounds),
		slog.Bool("forced", summary.Forced),
	)
	return nil
}

// Summarize builds a summary from a finished game's snapshot
func Summarize(snap model.Snapshot, completedAt time.Time) *model.GameSummary {
	standings := make([]model.Standing, 0, len(snap.Participants))
	for i, p := range snap.Participants {
		standings = append(standings, model.Standing{
			Rank:     i + 1,
			Player:   p.Player,
			Currency: p.Currency,
		})
	}

	return &model.GameSummary{
		ID:          uuid.NewString(),
		GameID:      snap.ID,
		Name:        snap.Name,
		Host:        snap.Host,
		Decks:       snap.Decks,
		Rounds:      snap.Rounds,
		Forced:      snap.Forced,
		Standings:   standings,
		CompletedAt: completedAt,
	}
}

// Get returns one summary
func (s *Service) Get(ctx context.Context, id string) (*model.GameSummary, error) {
	return s.storage.GetSummary(ctx, id)
}

// Recent returns the latest summaries, newest first
func (s *Service) Recent(ctx context.Context, limit int) ([]*model.GameSummary, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return s.storage.ListSummaries(ctx, limit)
}
