package model

// StartingCurrency is every participant's balance on joining
const StartingCurrency = 1000

// Participant is a player's seat within a single game
type Participant struct {
	Player       Player
	Currency     int
	Bet          int
	Hand         []Card
	HandState    HandState
	PlayingState PlayingState
	Ready        bool

	// Settlement record of the most recent round
	Outcome Outcome
	Reason  SettlementReason
	Delta   int
}

// NewParticipant seats a player with the starting balance
func NewParticipant(p Player) *Participant {
	return &Participant{
		Player:       p,
		Currency:     StartingCurrency,
		PlayingState: PlayingStateNotYetBet,
	}
}

// IsActive reports whether the participant can still take part in rounds
func (p *Participant) IsActive() bool {
	return (p.PlayingState == PlayingStateNotYetBet || p.PlayingState == PlayingStateHasBet) &&
		p.Currency != 0
}

// CanBet reports whether the participant may place or replace a bet
func (p *Participant) CanBet() bool {
	return p.PlayingState == PlayingStateNotYetBet || p.PlayingState == PlayingStateHasBet
}

// CanAct reports whether the participant still has a live hand
func (p *Participant) CanAct() bool {
	return p.PlayingState == PlayingStateHasBet && p.HandState == HandStateUnfinished
}

// HandValue returns the Blackjack total of the participant's hand
func (p *Participant) HandValue() int {
	return HandValue(p.Hand)
}

// ClearRound drops the hand and the previous settlement record
func (p *Participant) ClearRound() {
	p.Hand = nil
	p.HandState = HandStateNone
	p.Outcome = OutcomeNone
	p.Reason = ReasonNone
	p.Delta = 0
}
