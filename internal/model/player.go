package model

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player is the caller-supplied identity attached to every interaction.
type Player struct {
	ID          PlayerID `json:"id"`
	DisplayName string   `json:"display_name"`
}

// GameID identifies a live game within the registry
type GameID string
