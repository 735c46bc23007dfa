package render

import (
	"fmt"
	"strings"

	"github.com/mcoot/blackjack-go/internal/model"
)

var outcomeLabels = map[model.Outcome]string{
	model.OutcomeWin:           "Win",
	model.OutcomeBlackjackWin:  "Win",
	model.OutcomeLose:          "Lose",
	model.OutcomeBlackjackLoss: "Lose",
	model.OutcomePush:          "Tie",
}

var reasonTexts = map[model.SettlementReason]string{
	model.ReasonBust:             "Bust",
	model.ReasonDealerBust:       "Dealer bust",
	model.ReasonLowerThanDealer:  "Lower than dealer",
	model.ReasonEqualToDealer:    "Equal to dealer",
	model.ReasonDealerBlackjack:  "Dealer has Blackjack",
	model.ReasonPlayerBlackjack:  "Player has Blackjack",
	model.ReasonHigherThanDealer: "Higher than dealer",
}

var handStateTexts = map[model.HandState]string{
	model.HandStateUnfinished: "playing",
	model.HandStateStand:      "stand",
	model.HandStateBust:       "bust",
	model.HandStateTwentyOne:  "21",
}

// OutcomeText is the narrative for a settled outcome, e.g. "Lose - Bust"
func OutcomeText(outcome model.Outcome, reason model.SettlementReason) string {
	label, ok := outcomeLabels[outcome]
	if !ok {
		return ""
	}
	if text, ok := reasonTexts[reason]; ok {
		return label + " - " + text
	}
	return label
}

func summarize(phase model.Phase, p model.ParticipantSnapshot) string {
	switch p.PlayingState {
	case model.PlayingStateLeft:
		return "Left the game"
	case model.PlayingStateBankrupt:
		if phase != model.PhaseFinished {
			return "Bankrupt"
		}
	}

	switch phase {
	case model.PhaseBetting:
		if p.PlayingState == model.PlayingStateHasBet {
			return fmt.Sprintf("Betting %d of %d", p.Bet, p.Currency)
		}
		return fmt.Sprintf("Choosing a bet (%d available)", p.Currency)
	case model.PhaseInGame:
		if len(p.Hand) == 0 {
			return "Sitting this round out"
		}
		return fmt.Sprintf("Bet %d, hand %d (%s)", p.Bet, p.Value, handStateTexts[p.HandState])
	case model.PhaseResults:
		if p.Outcome == model.OutcomeNone {
			return fmt.Sprintf("Balance %d", p.Currency)
		}
		text := fmt.Sprintf("%s (%+d), balance %d", OutcomeText(p.Outcome, p.Reason), p.Delta, p.Currency)
		if p.Ready {
			text += ", ready"
		}
		return text
	case model.PhaseFinished:
		return fmt.Sprintf("Final balance %d", p.Currency)
	default:
		return fmt.Sprintf("Balance %d", p.Currency)
	}
}

// Text renders a view as plain text for terminals and chat surfaces
func Text(v *View) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s [%s]\n", v.Title, v.Name, v.GameID)
	fmt.Fprintf(&b, "Host: %s | Phase: %s", v.Host, phaseTitle(v.Phase))
	if v.Round > 0 {
		fmt.Fprintf(&b, " | Round %d", v.Round)
	}
	b.WriteString("\n")

	if v.Dealer != nil {
		fmt.Fprintf(&b, "Dealer: %s", cardsText(v.Dealer.Cards))
		if v.Dealer.Hidden {
			fmt.Fprintf(&b, " (showing %d)\n", v.Dealer.Value)
		} else {
			fmt.Fprintf(&b, " (%d, %s)\n", v.Dealer.Value, handStateTexts[v.Dealer.HandState])
		}
	}

	for _, p := range v.Participants {
		name := p.Name
		if p.IsHost {
			name += " (host)"
		}
		fmt.Fprintf(&b, "- %s: %s", name, p.Summary)
		if len(p.Cards) > 0 {
			fmt.Fprintf(&b, " %s", cardsText(p.Cards))
		}
		b.WriteString("\n")
	}

	if v.Status != "" {
		b.WriteString(v.Status + "\n")
	}
	for _, s := range v.Standings {
		b.WriteString(s.String() + "\n")
	}
	if v.Phase != model.PhaseFinished {
		b.WriteString(v.Shoe.String() + "\n")
	}
	return b.String()
}

func cardsText(cards []CardView) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Symbol
	}
	return strings.Join(names, " ")
}

func phaseTitle(p model.Phase) string {
	switch p {
	case model.PhaseReady:
		return "Waiting for players"
	case model.PhaseBetting:
		return "Betting"
	case model.PhaseInGame:
		return "Playing"
	case model.PhaseResults:
		return "Results"
	case model.PhaseFinished:
		return "Finished"
	default:
		return string(p)
	}
}
