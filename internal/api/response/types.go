package response

import (
	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/mcoot/blackjack-go/internal/render"
)

// GameList is the response for listing live games
type GameList struct {
	Games []*render.View `json:"games"`
}

// HistoryList is the response for listing finished games
type HistoryList struct {
	Summaries []*model.GameSummary `json:"summaries"`
}

// Health is the response for the health check
type Health struct {
	Status    string `json:"status"`
	LiveGames int    `json:"live_games"`
	Watched   int    `json:"watched_games"`
}
