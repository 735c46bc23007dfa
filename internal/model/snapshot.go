package model

// Snapshot is a copy of a game's state taken under the game's lock.
// It carries everything a presentation layer needs to render any phase.
type Snapshot struct {
	ID            GameID                `json:"id"`
	Version       uint64                `json:"version"`
	Name          string                `json:"name"`
	Host          Player                `json:"host"`
	Decks         int                   `json:"decks"`
	Phase         Phase                 `json:"phase"`
	PreviousPhase Phase                 `json:"previous_phase"`
	Rounds        int                   `json:"rounds"`
	Forced        bool                  `json:"forced"`
	CardsLeft     int                   `json:"cards_left"`
	ShoeSize      int                   `json:"shoe_size"`
	Dealer        DealerSnapshot        `json:"dealer"`
	Participants  []ParticipantSnapshot `json:"participants"`
	PendingReady  int                   `json:"pending_ready"`
	ActivePlayers bool                  `json:"active_players"`
}

// DealerSnapshot is the dealer's full hand; the presentation layer decides
// what to hide.
type DealerSnapshot struct {
	Hand      []Card    `json:"hand"`
	Value     int       `json:"value"`
	HandState HandState `json:"hand_state"`
}

// ParticipantSnapshot is a copy of one roster entry
type ParticipantSnapshot struct {
	Player       Player           `json:"player"`
	Currency     int              `json:"currency"`
	Bet          int              `json:"bet"`
	Hand         []Card           `json:"hand"`
	Value        int              `json:"value"`
	HandState    HandState        `json:"hand_state"`
	PlayingState PlayingState     `json:"playing_state"`
	Ready        bool             `json:"ready"`
	Outcome      Outcome          `json:"outcome"`
	Reason       SettlementReason `json:"reason"`
	Delta        int              `json:"delta"`
}

// SnapshotParticipant copies a participant, including its hand
func SnapshotParticipant(p *Participant) ParticipantSnapshot {
	hand := make([]Card, len(p.Hand))
	copy(hand, p.Hand)
	return ParticipantSnapshot{
		Player:       p.Player,
		Currency:     p.Currency,
		Bet:          p.Bet,
		Hand:         hand,
		Value:        HandValue(hand),
		HandState:    p.HandState,
		PlayingState: p.PlayingState,
		Ready:        p.Ready,
		Outcome:      p.Outcome,
		Reason:       p.Reason,
		Delta:        p.Delta,
	}
}

// BetForm describes the private bet entry form shown to one participant
type BetForm struct {
	ActionID ActionID `json:"action_id"`
	Title    string   `json:"title"`
	Min      int      `json:"min"`
	Max      int      `json:"max"`
	Current  int      `json:"current"`
}
