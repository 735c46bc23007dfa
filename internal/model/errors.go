package model

import "errors"

// Common errors used across the application
var (
	// Card and shoe errors
	ErrInvalidRank = errors.New("rank must be between 1 and 13")
	ErrShoeEmpty   = errors.New("shoe is empty")

	// Game errors
	ErrGameNotFound        = errors.New("game not found")
	ErrInvalidDeckCount    = errors.New("deck count out of range")
	ErrGameFull            = errors.New("game is full")
	ErrNotAcceptingPlayers = errors.New("game is not accepting players")
	ErrAlreadyJoined       = errors.New("player has already joined")
	ErrIDSpaceExhausted    = errors.New("could not allocate a unique game id")

	// Interaction errors
	ErrMalformedActionID = errors.New("malformed action identifier")
	ErrUnknownPhase      = errors.New("unknown phase tag")
	ErrUnknownAction     = errors.New("unknown action")

	// History errors
	ErrSummaryNotFound = errors.New("game summary not found")
)
