package model

import "fmt"

// Suit is one of the four card suits
type Suit int

const (
	SuitHeart Suit = iota
	SuitDiamond
	SuitClub
	SuitSpade
)

// AllSuits lists the suits in deck-building order
var AllSuits = []Suit{SuitHeart, SuitDiamond, SuitClub, SuitSpade}

func (s Suit) String() string {
	switch s {
	case SuitHeart:
		return "Hearts"
	case SuitDiamond:
		return "Diamonds"
	case SuitClub:
		return "Clubs"
	case SuitSpade:
		return "Spades"
	default:
		return fmt.Sprintf("Suit(%d)", int(s))
	}
}

// Rank is a card rank, 1 (Ace) through 13 (King)
type Rank int

const (
	RankAce   Rank = 1
	RankJack  Rank = 11
	RankQueen Rank = 12
	RankKing  Rank = 13

	MinRank = RankAce
	MaxRank = RankKing
)

// CardsPerDeck is the size of one standard deck
const CardsPerDeck = 52

// Card is an immutable playing card
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// NewCard validates the rank and returns the card
func NewCard(suit Suit, rank Rank) (Card, error) {
	if rank < MinRank || rank > MaxRank {
		return Card{}, fmt.Errorf("%w: got %d", ErrInvalidRank, rank)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// IsAce reports whether the card is an ace
func (c Card) IsAce() bool {
	return c.Rank == RankAce
}

// Value is the card's fixed contribution to a hand. Aces count 1 here;
// HandValue decides how many of them count 11.
func (c Card) Value() int {
	if c.Rank >= 10 {
		return 10
	}
	return int(c.Rank)
}

// Name returns the rank name, e.g. "Ace", "7", "Queen"
func (c Card) Name() string {
	switch c.Rank {
	case RankAce:
		return "Ace"
	case RankJack:
		return "Jack"
	case RankQueen:
		return "Queen"
	case RankKing:
		return "King"
	default:
		return fmt.Sprintf("%d", int(c.Rank))
	}
}

func (c Card) String() string {
	return c.Name() + " of " + c.Suit.String()
}

// CardBack is the glyph shown for a face-down card
const CardBack = "\U0001F0A0"

// Symbol returns the Unicode playing card glyph for the card
func (c Card) Symbol() string {
	var base rune
	switch c.Suit {
	case SuitSpade:
		base = 0x1F0A0
	case SuitHeart:
		base = 0x1F0B0
	case SuitDiamond:
		base = 0x1F0C0
	default:
		base = 0x1F0D0
	}
	offset := rune(c.Rank)
	// the block has a Knight between Jack and Queen
	if c.Rank >= RankQueen {
		offset++
	}
	return string(base + offset)
}

// HandValue returns the Blackjack total of the cards. Each ace counts at
// least 1; aces are promoted to 11 one at a time while the total stays
// at or below 21.
func HandValue(cards []Card) int {
	direct, aces := 0, 0
	for _, c := range cards {
		if c.IsAce() {
			aces++
			continue
		}
		direct += c.Value()
	}

	total := direct + aces
	if aces == 0 || total > 21 {
		return total
	}

	for elevens := 1; elevens <= aces; elevens++ {
		candidate := direct + elevens*11 + (aces - elevens)
		if candidate > 21 {
			break
		}
		total = candidate
	}
	return total
}
