package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/blackjack-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) summary(id string, at time.Time) *model.GameSummary {
	return &model.GameSummary{
		ID:     id,
		GameID: "482913",
		Name:   "table",
		Standings: []model.Standing{
			{Rank: 1, Player: model.Player{ID: "alice", DisplayName: "Alice"}, Currency: 1050},
		},
		CompletedAt: at,
	}
}

func (s *StorageSuite) TestSaveAndGetSummary() {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.storage.SaveSummary(s.ctx, s.summary("a", base)))

	got, err := s.storage.GetSummary(s.ctx, "a")
	s.Require().NoError(err)
	s.Equal("table", got.Name)
	s.Equal(1050, got.Standings[0].Currency)

	// callers get copies
	got.Standings[0].Currency = 0
	again, _ := s.storage.GetSummary(s.ctx, "a")
	s.Equal(1050, again.Standings[0].Currency)
}

func (s *StorageSuite) TestGetMissingSummary() {
	_, err := s.storage.GetSummary(s.ctx, "missing")
	s.ErrorIs(err, model.ErrSummaryNotFound)
}

func (s *StorageSuite) TestListSummariesNewestFirst() {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.Require().NoError(s.storage.SaveSummary(s.ctx, s.summary("old", base)))
	s.Require().NoError(s.storage.SaveSummary(s.ctx, s.summary("new", base.Add(time.Hour))))
	s.Require().NoError(s.storage.SaveSummary(s.ctx, s.summary("mid", base.Add(time.Minute))))

	all, err := s.storage.ListSummaries(s.ctx, 0)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal("new", all[0].ID)
	s.Equal("mid", all[1].ID)
	s.Equal("old", all[2].ID)

	limited, err := s.storage.ListSummaries(s.ctx, 2)
	s.Require().NoError(err)
	s.Len(limited, 2)
}

func (s *StorageSuite) TestDeleteSummary() {
	s.Require().NoError(s.storage.SaveSummary(s.ctx, s.summary("a", time.Now())))
	s.Require().NoError(s.storage.DeleteSummary(s.ctx, "a"))

	_, err := s.storage.GetSummary(s.ctx, "a")
	s.ErrorIs(err, model.ErrSummaryNotFound)
	s.NoError(s.storage.Ping(s.ctx))
}
