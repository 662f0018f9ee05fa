package blackjack

import (
	"testing"

	"github.com/playroom-bot/playroom/internal/games"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// deck builds a draw pile from rank strings, padding with low cards so the
// dealer always has something to draw.
func deck(t *testing.T, ranks ...string) []Card {
	t.Helper()
	cards := make([]Card, 0, len(ranks)+10)
	for _, r := range ranks {
		cards = append(cards, Card{Rank: r, Suit: Spades})
	}
	for len(cards) < 12 {
		cards = append(cards, Card{Rank: "2", Suit: Hearts})
	}
	return cards
}

func TestNaturalBlackjackWinsImmediately(t *testing.T) {
	// player: A K (21), dealer: 9 7
	s, err := New(&Config{Deck: deck(t, "A", "K", "9", "7"), Wager: 100})
	require.NoError(t, err)

	assert.Equal(t, games.StatusWon, s.Status())
	assert.True(t, s.Snapshot().Detail.(*View).Natural)

	// natural pays 3:2 on top of the returned stake
	assert.Equal(t, int64(250), s.Settlement().Payout)
}

func TestBothNaturalsPush(t *testing.T) {
	s, err := New(&Config{Deck: deck(t, "A", "K", "A", "Q"), Wager: 100})
	require.NoError(t, err)

	assert.Equal(t, games.StatusCancelled, s.Status())
	assert.Equal(t, int64(100), s.Settlement().Payout)
}

func TestBustLosesImmediately(t *testing.T) {
	// player: 10 9, hit draws K -> 29
	s, err := New(&Config{Deck: deck(t, "10", "9", "5", "6", "K"), Wager: 50})
	require.NoError(t, err)

	require.NoError(t, s.Advance("hit"))
	assert.Equal(t, games.StatusLost, s.Status())
	assert.Zero(t, s.Settlement().Payout)
}

func TestStandDealerDrawsToSeventeen(t *testing.T) {
	// player: 10 9 (19), dealer: 5 6 (11) then draws 2s up to 17
	s, err := New(&Config{Deck: deck(t, "10", "9", "5", "6"), Wager: 50})
	require.NoError(t, err)

	require.NoError(t, s.Advance("stand"))
	require.Equal(t, games.StatusWon, s.Status())

	view := s.Snapshot().Detail.(*View)
	assert.GreaterOrEqual(t, view.DealerValue, 17)
	assert.Equal(t, int64(100), s.Settlement().Payout)
}

func TestPushRefundsStake(t *testing.T) {
	// player: 10 9 (19), dealer: 10 9 (19)
	s, err := New(&Config{Deck: deck(t, "10", "9", "10", "9"), Wager: 80})
	require.NoError(t, err)

	require.NoError(t, s.Advance("s"))
	assert.Equal(t, games.StatusCancelled, s.Status())
	assert.Equal(t, int64(80), s.Settlement().Payout)
}

func TestDealerBustWins(t *testing.T) {
	// player: 10 8 (18), dealer: 10 6 draws K -> 26
	s, err := New(&Config{Deck: deck(t, "10", "8", "10", "6", "K"), Wager: 10})
	require.NoError(t, err)

	require.NoError(t, s.Advance("stand"))
	assert.Equal(t, games.StatusWon, s.Status())
}

func TestHoleCardHiddenWhileActive(t *testing.T) {
	s, err := New(&Config{Deck: deck(t, "10", "9", "5", "6")})
	require.NoError(t, err)

	view := s.Snapshot().Detail.(*View)
	assert.True(t, view.HoleHidden)
	assert.Len(t, view.DealerHand, 1)
	assert.Zero(t, view.DealerValue)
}

func TestInvalidInput(t *testing.T) {
	s, err := New(&Config{Deck: deck(t, "10", "9", "5", "6")})
	require.NoError(t, err)

	assert.ErrorIs(t, s.Advance("split"), games.ErrInvalidInput)
	assert.Equal(t, 0, s.Snapshot().Round)
}

func TestForfeitLosesStake(t *testing.T) {
	s, err := New(&Config{Deck: deck(t, "10", "9", "5", "6"), Wager: 60})
	require.NoError(t, err)

	s.Cancel()
	assert.Equal(t, games.StatusLost, s.Status())
	assert.Zero(t, s.Settlement().Payout)
}

func TestExpiryRefundsStake(t *testing.T) {
	s, err := New(&Config{Deck: deck(t, "10", "9", "5", "6"), Wager: 60})
	require.NoError(t, err)

	s.Expire()
	assert.Equal(t, games.StatusExpired, s.Status())
	assert.Equal(t, int64(60), s.Settlement().Payout)
}

func TestHandValueProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		size := rapid.IntRange(1, 10).Draw(t, "size")
		hand := make([]Card, size)
		for i := range hand {
			hand[i] = Card{
				Rank: rapid.SampledFrom(ranks).Draw(t, "rank"),
				Suit: rapid.SampledFrom(suits).Draw(t, "suit"),
			}
		}

		got := HandValue(hand)

		// never below the all-aces-low total, never above aces-high
		low := 0
		aces := 0
		for _, c := range hand {
			low += c.value()
			if c.Rank == "A" {
				aces++
			}
		}
		assert.GreaterOrEqual(t, got, low)
		assert.LessOrEqual(t, got, low+10*aces)

		// an ace is only promoted when it cannot bust the hand
		if got > 21 {
			assert.Equal(t, low, got, "a busted hand must count aces low")
		}
	})
}
