package settlement

import (
	"testing"

	"github.com/mcoot/blackjack-go/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSettle(t *testing.T) {
	tests := []struct {
		name     string
		dealer   Hand
		player   Hand
		bet      int
		expected Result
	}{
		{
			name:     "player bust loses even when dealer busts",
			dealer:   Hand{Value: 24, State: model.HandStateBust, Size: 3},
			player:   Hand{Value: 24, State: model.HandStateBust, Size: 3},
			bet:      100,
			expected: Result{Outcome: model.OutcomeLose, Reason: model.ReasonBust, Delta: -100},
		},
		{
			name:     "dealer bust pays the bet",
			dealer:   Hand{Value: 22, State: model.HandStateBust, Size: 3},
			player:   Hand{Value: 12, State: model.HandStateStand, Size: 2},
			bet:      40,
			expected: Result{Outcome: model.OutcomeWin, Reason: model.ReasonDealerBust, Delta: 40},
		},
		{
			name:     "lower than dealer loses",
			dealer:   Hand{Value: 19, State: model.HandStateStand, Size: 2},
			player:   Hand{Value: 18, State: model.HandStateStand, Size: 3},
			bet:      25,
			expected: Result{Outcome: model.OutcomeLose, Reason: model.ReasonLowerThanDealer, Delta: -25},
		},
		{
			name:     "equal with two cards each pushes",
			dealer:   Hand{Value: 21, State: model.HandStateTwentyOne, Size: 2},
			player:   Hand{Value: 21, State: model.HandStateStand, Size: 2},
			bet:      50,
			expected: Result{Outcome: model.OutcomePush, Reason: model.ReasonEqualToDealer, Delta: 0},
		},
		{
			name:     "dealer blackjack beats twenty one after hit",
			dealer:   Hand{Value: 21, State: model.HandStateTwentyOne, Size: 2},
			player:   Hand{Value: 21, State: model.HandStateTwentyOne, Size: 3},
			bet:      50,
			expected: Result{Outcome: model.OutcomeBlackjackLoss, Reason: model.ReasonDealerBlackjack, Delta: -50},
		},
		{
			name:     "player blackjack pays three to two truncated",
			dealer:   Hand{Value: 21, State: model.HandStateTwentyOne, Size: 3},
			player:   Hand{Value: 21, State: model.HandStateStand, Size: 2},
			bet:      15,
			expected: Result{Outcome: model.OutcomeBlackjackWin, Reason: model.ReasonPlayerBlackjack, Delta: 22},
		},
		{
			name:     "equal with more than two cards each pushes",
			dealer:   Hand{Value: 18, State: model.HandStateStand, Size: 3},
			player:   Hand{Value: 18, State: model.HandStateStand, Size: 4},
			bet:      10,
			expected: Result{Outcome: model.OutcomePush, Reason: model.ReasonEqualToDealer, Delta: 0},
		},
		{
			name:     "higher than dealer wins",
			dealer:   Hand{Value: 18, State: model.HandStateStand, Size: 2},
			player:   Hand{Value: 20, State: model.HandStateStand, Size: 2},
			bet:      50,
			expected: Result{Outcome: model.OutcomeWin, Reason: model.ReasonHigherThanDealer, Delta: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Settle(tt.dealer, tt.player, tt.bet))
			// same inputs, same answer
			assert.Equal(t, Settle(tt.dealer, tt.player, tt.bet), Settle(tt.dealer, tt.player, tt.bet))
		})
	}
}

func TestHandOf(t *testing.T) {
	hand := HandOf([]model.Card{{Rank: model.RankAce}, {Rank: 6}}, model.HandStateStand)
	assert.Equal(t, Hand{Value: 17, State: model.HandStateStand, Size: 2}, hand)
}
