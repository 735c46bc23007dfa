package model

import "time"

// GameSummary is the record kept after a game finishes
type GameSummary struct {
	ID          string     `json:"id"`
	GameID      GameID     `json:"game_id"`
	Name        string     `json:"name"`
	Host        Player     `json:"host"`
	Decks       int        `json:"decks"`
	Rounds      int        `json:"rounds"`
	Forced      bool       `json:"forced"`
	Standings   []Standing `json:"standings"`
	CompletedAt time.Time  `json:"completed_at"`
}

// Standing is one line of the final ranking
type Standing struct {
	Rank     int    `json:"rank"`
	Player   Player `json:"player"`
	Currency int    `json:"currency"`
}
