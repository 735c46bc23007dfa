package model

// EventType identifies a live display event pushed to game watchers
type EventType string

const (
	EventGameUpdate      EventType = "game-update"
	EventGameFragment    EventType = "game-fragment"
	EventListeningUpdate EventType = "listening-update"
	EventGameFinished    EventType = "game-finished"
)
