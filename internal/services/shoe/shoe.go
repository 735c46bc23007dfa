package shoe

import (
	"github.com/mcoot/blackjack-go/internal/dependencies/random"
	"github.com/mcoot/blackjack-go/internal/model"
)

// ReshuffleThreshold is the remaining fraction below which the shoe is
// rebuilt at the start of a betting phase
const ReshuffleThreshold = 0.25

// Shoe is the shuffled pile of undealt cards for one game.
// It is not safe for concurrent use; the owning game serializes access.
type Shoe struct {
	decks    int
	capacity int
	cards    []model.Card
	random   random.Random
}

// New builds a shoe of the given number of full decks and shuffles it
func New(decks int, rnd random.Random) *Shoe {
	if decks < 0 {
		decks = 0
	}
	s := &Shoe{
		decks:    decks,
		capacity: decks * model.CardsPerDeck,
		random:   rnd,
	}
	s.Refill()
	return s
}

// Refill rebuilds every deck and shuffles the whole shoe
func (s *Shoe) Refill() {
	cards := make([]model.Card, 0, s.capacity)
	for range s.decks {
		for _, suit := range model.AllSuits {
			for rank := model.MinRank; rank <= model.MaxRank; rank++ {
				cards = append(cards, model.Card{Suit: suit, Rank: rank})
			}
		}
	}
	s.random.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	s.cards = cards
}

// Draw removes and returns the front card
func (s *Shoe) Draw() (model.Card, error) {
	if len(s.cards) == 0 {
		return model.Card{}, model.ErrShoeEmpty
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	return card, nil
}

// CardsLeft returns the number of undealt cards
func (s *Shoe) CardsLeft() int {
	return len(s.cards)
}

// Capacity returns the size of a full shoe
func (s *Shoe) Capacity() int {
	return s.capacity
}

// Decks returns the number of decks in the shoe
func (s *Shoe) Decks() int {
	return s.decks
}

// RemainingFraction returns cards left over capacity
func (s *Shoe) RemainingFraction() float64 {
	if s.capacity == 0 {
		return 0
	}
	return float64(len(s.cards)) / float64(s.capacity)
}

// ReshuffleIfLow refills the shoe when the remaining fraction is below the
// threshold and reports whether it did
func (s *Shoe) ReshuffleIfLow(threshold float64) bool {
	if s.RemainingFraction() >= threshold {
		return false
	}
	s.Refill()
	return true
}
