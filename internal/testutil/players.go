package testutil

import "github.com/mcoot/blackjack-go/internal/model"

// Player builds an identity whose display name matches its id
func Player(id string) model.Player {
	return model.Player{ID: model.PlayerID(id), DisplayName: id}
}

// Card is shorthand for a spade of the given rank; suits rarely matter
func Card(rank model.Rank) model.Card {
	return model.Card{Suit: model.SuitSpade, Rank: rank}
}

// Cards is shorthand for spades of the given ranks
func Cards(ranks ...model.Rank) []model.Card {
	out := make([]model.Card, len(ranks))
	for i, r := range ranks {
		out[i] = Card(r)
	}
	return out
}
