package storage

import (
	"context"

	"github.com/mcoot/blackjack-go/internal/model"
)

// Storage persists records of finished games. Live games never touch it;
// they exist only in the in-process registry.
type Storage interface {
	SaveSummary(ctx context.Context, summary *model.GameSummary) error
	GetSummary(ctx context.Context, id string) (*model.GameSummary, error)
	// ListSummaries returns up to limit summaries, most recently completed first
	ListSummaries(ctx context.Context, limit int) ([]*model.GameSummary, error)
	DeleteSummary(ctx context.Context, id string) error

	Ping(ctx context.Context) error
}
