package blackjack

// Suit is a card suit symbol
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

var suits = []Suit{Spades, Hearts, Diamonds, Clubs}

var ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Card is a single playing card
type Card struct {
	Rank string
	Suit Suit
}

// String renders the card as e.g. "A♠"
func (c Card) String() string {
	return c.Rank + string(c.Suit)
}

// value returns the card's base value, counting aces as 1
func (c Card) value() int {
	switch c.Rank {
	case "A":
		return 1
	case "J", "Q", "K":
		return 10
	case "10":
		return 10
	default:
		return int(c.Rank[0] - '0')
	}
}

// NewDeck returns an ordered 52-card deck
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, s := range suits {
		for _, r := range ranks {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	return deck
}

// HandValue totals a hand, counting each ace as 11 when that does not bust
// the hand.
func HandValue(hand []Card) int {
	total := 0
	aces := 0
	for _, c := range hand {
		total += c.value()
		if c.Rank == "A" {
			aces++
		}
	}

	for aces > 0 && total+10 <= 21 {
		total += 10
		aces--
	}

	return total
}
