package model

// Phase is the discrete state of a single game
type Phase string

const (
	PhaseRegistered Phase = "registered"
	PhaseReady      Phase = "ready"
	PhaseBetting    Phase = "betting"
	PhaseInGame     Phase = "in_game"
	PhaseResults    Phase = "results"
	PhaseFinished   Phase = "finished"
)

// phaseTags are the tokens used as the first part of an action identifier
var phaseTags = map[Phase]string{
	PhaseRegistered: "registered",
	PhaseReady:      "ready",
	PhaseBetting:    "bettingPhase",
	PhaseInGame:     "inGame",
	PhaseResults:    "results",
	PhaseFinished:   "finished",
}

// Tag returns the action identifier token for the phase
func (p Phase) Tag() string {
	if tag, ok := phaseTags[p]; ok {
		return tag
	}
	return string(p)
}

// PhaseFromTag maps an action identifier token back to its phase
func PhaseFromTag(tag string) (Phase, bool) {
	for phase, t := range phaseTags {
		if t == tag {
			return phase, true
		}
	}
	return "", false
}

// IsTerminal reports whether no further actions apply
func (p Phase) IsTerminal() bool {
	return p == PhaseFinished
}

// HandState tracks a hand's progress within a round. The zero value means
// the participant has no hand this round.
type HandState string

const (
	HandStateNone       HandState = ""
	HandStateUnfinished HandState = "unfinished"
	HandStateStand      HandState = "stand"
	HandStateBust       HandState = "bust"
	HandStateTwentyOne  HandState = "twenty_one"
)

// PlayingState tracks a participant's standing in the game
type PlayingState string

const (
	PlayingStateNotYetBet PlayingState = "not_yet_bet"
	PlayingStateHasBet    PlayingState = "has_bet"
	PlayingStateBankrupt  PlayingState = "bankrupt"
	PlayingStateLeft      PlayingState = "left"
)

// Outcome is the canonical settlement classification for a participant
type Outcome string

const (
	OutcomeNone          Outcome = ""
	OutcomeWin           Outcome = "win"
	OutcomeLose          Outcome = "lose"
	OutcomePush          Outcome = "push"
	OutcomeBlackjackWin  Outcome = "blackjack_win"
	OutcomeBlackjackLoss Outcome = "blackjack_loss"
)

// SettlementReason names the settlement branch that produced an Outcome
type SettlementReason string

const (
	ReasonNone             SettlementReason = ""
	ReasonBust             SettlementReason = "bust"
	ReasonDealerBust       SettlementReason = "dealer_bust"
	ReasonLowerThanDealer  SettlementReason = "lower_than_dealer"
	ReasonEqualToDealer    SettlementReason = "equal_to_dealer"
	ReasonDealerBlackjack  SettlementReason = "dealer_blackjack"
	ReasonPlayerBlackjack  SettlementReason = "player_blackjack"
	ReasonHigherThanDealer SettlementReason = "higher_than_dealer"
)
