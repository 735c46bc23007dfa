package request

// CreateGameRequest is the request body for creating a game.
// Decks is passed through as typed so a bad value gets the same notice
// as any other surface.
type CreateGameRequest struct {
	Name  string `json:"name"`
	Decks string `json:"decks"`
}

// InteractionRequest is the request body for a button press or form submission
type InteractionRequest struct {
	ActionID string `json:"action_id"`
	Input    string `json:"input,omitempty"`
}
