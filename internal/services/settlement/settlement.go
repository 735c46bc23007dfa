package settlement

import "github.com/mcoot/blackjack-go/internal/model"

// Hand is the part of a hand settlement looks at
type Hand struct {
	Value int
	State model.HandState
	Size  int
}

// HandOf summarizes a list of cards with its state
func HandOf(cards []model.Card, state model.HandState) Hand {
	return Hand{Value: model.HandValue(cards), State: state, Size: len(cards)}
}

// Result is one participant's settlement: the canonical outcome, the rule
// that decided it and the currency change to apply
type Result struct {
	Outcome model.Outcome
	Reason  model.SettlementReason
	Delta   int
}

// Settle decides a participant's hand against the dealer's. It is a pure
// function of its inputs.
func Settle(dealer, player Hand, bet int) Result {
	switch {
	case player.State == model.HandStateBust:
		return Result{Outcome: model.OutcomeLose, Reason: model.ReasonBust, Delta: -bet}
	case dealer.State == model.HandStateBust:
		return Result{Outcome: model.OutcomeWin, Reason: model.ReasonDealerBust, Delta: bet}
	case dealer.Value > player.Value:
		return Result{Outcome: model.OutcomeLose, Reason: model.ReasonLowerThanDealer, Delta: -bet}
	case dealer.Value == player.Value:
		return settleTie(dealer, player, bet)
	default:
		return Result{Outcome: model.OutcomeWin, Reason: model.ReasonHigherThanDealer, Delta: bet}
	}
}

func settleTie(dealer, player Hand, bet int) Result {
	dealerTwo, playerTwo := dealer.Size == 2, player.Size == 2
	switch {
	case dealerTwo && !playerTwo:
		return Result{Outcome: model.OutcomeBlackjackLoss, Reason: model.ReasonDealerBlackjack, Delta: -bet}
	case playerTwo && !dealerTwo:
		// 3:2, truncated toward zero
		return Result{Outcome: model.OutcomeBlackjackWin, Reason: model.ReasonPlayerBlackjack, Delta: bet * 3 / 2}
	default:
		return Result{Outcome: model.OutcomePush, Reason: model.ReasonEqualToDealer, Delta: 0}
	}
}
