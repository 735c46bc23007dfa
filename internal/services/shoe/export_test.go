package shoe

import (
	"errors"
	"fmt"

	"github.com/mcoot/blackjack-go/internal/model"
)

var errCardNotInShoe = errors.New("card is not in the shoe")

// Stack moves the given cards to the front of the shoe in order, so the
// next draws return them. Each card must still be in the shoe.
func (s *Shoe) Stack(cards ...model.Card) error {
	rest := make([]model.Card, len(s.cards))
	copy(rest, s.cards)

	for _, want := range cards {
		idx := -1
		for i, c := range rest {
			if c == want {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: %s", errCardNotInShoe, want)
		}
		rest = append(rest[:idx], rest[idx+1:]...)
	}

	stacked := make([]model.Card, 0, len(s.cards))
	stacked = append(stacked, cards...)
	stacked = append(stacked, rest...)
	s.cards = stacked
	return nil
}

// Discard drops cards from the front until n remain
func (s *Shoe) Discard(remaining int) {
	if remaining < 0 {
		remaining = 0
	}
	if remaining < len(s.cards) {
		s.cards = s.cards[len(s.cards)-remaining:]
	}
}
