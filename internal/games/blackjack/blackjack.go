package blackjack

import (
	"errors"
	"strings"

	"github.com/playroom-bot/playroom/internal/games"
	"github.com/playroom-bot/playroom/internal/rng"
)

const (
	// dealerStandsAt is the total the dealer draws to
	dealerStandsAt = 17

	winExperience = 15
)

// Config holds the initial state for a blackjack session
type Config struct {
	// Deck is the shuffled draw pile; the first four cards form the
	// opening hands (two to the player, then two to the dealer)
	Deck []Card

	// Wager staked on the hand
	Wager int64
}

// Session is a single blackjack hand against the dealer
type Session struct {
	deck    []Card
	next    int
	player  []Card
	dealer  []Card
	wager   int64
	rounds  int
	natural bool
	status  games.Status
}

// View is the render snapshot for blackjack
type View struct {
	PlayerHand  []Card
	PlayerValue int
	DealerHand  []Card // only the upcard while the hand is live
	DealerValue int    // 0 while the hole card is hidden
	HoleHidden  bool
	Natural     bool
	Wager       int64
}

// New deals the opening hands. A natural 21 resolves immediately: a push if
// the dealer also holds one, otherwise a win with the natural payout.
func New(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if len(cfg.Deck) < 10 {
		return nil, errors.New("deck too small")
	}
	if cfg.Wager < 0 {
		return nil, errors.New("wager cannot be negative")
	}

	s := &Session{
		deck:   append([]Card(nil), cfg.Deck...),
		wager:  cfg.Wager,
		status: games.StatusActive,
	}

	s.player = append(s.player, s.draw(), s.draw())
	s.dealer = append(s.dealer, s.draw(), s.draw())

	if HandValue(s.player) == 21 {
		s.natural = true
		if HandValue(s.dealer) == 21 {
			s.status = games.StatusCancelled
		} else {
			s.status = games.StatusWon
		}
	}

	return s, nil
}

// NewRandom deals from a freshly shuffled deck
func NewRandom(wager int64, roller rng.Roller) (*Session, error) {
	deck := NewDeck()
	roller.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	return New(&Config{
		Deck:  deck,
		Wager: wager,
	})
}

// Variant returns the game type
func (s *Session) Variant() games.Variant {
	return games.VariantBlackjack
}

// Status returns the current lifecycle state
func (s *Session) Status() games.Status {
	return s.status
}

// Advance interprets hit or stand. A bust loses immediately; reaching 21
// stands automatically; standing runs the dealer out and compares totals,
// with a push cancelling the hand.
func (s *Session) Advance(input string) error {
	if s.status != games.StatusActive {
		return games.ErrInvalidState
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "hit", "h":
		s.rounds++
		if s.next >= len(s.deck) {
			// draw pile exhausted, force a stand
			s.resolve()
			return nil
		}
		s.player = append(s.player, s.draw())

		total := HandValue(s.player)
		switch {
		case total > 21:
			s.status = games.StatusLost
		case total == 21:
			s.resolve()
		}

	case "stand", "s":
		s.rounds++
		s.resolve()

	default:
		return games.ErrInvalidInput
	}

	return nil
}

// Cancel forfeits the hand; the stake is lost, not refunded, so a bad hand
// cannot be walked away from for free
func (s *Session) Cancel() {
	if s.status == games.StatusActive {
		s.status = games.StatusLost
	}
}

// Expire marks the session abandoned
func (s *Session) Expire() {
	if s.status == games.StatusActive {
		s.status = games.StatusExpired
	}
}

// Snapshot returns the render view
func (s *Session) Snapshot() *games.Snapshot {
	view := &View{
		PlayerHand:  append([]Card(nil), s.player...),
		PlayerValue: HandValue(s.player),
		Natural:     s.natural,
		Wager:       s.wager,
	}

	if s.status == games.StatusActive {
		view.DealerHand = []Card{s.dealer[0]}
		view.HoleHidden = true
	} else {
		view.DealerHand = append([]Card(nil), s.dealer...)
		view.DealerValue = HandValue(s.dealer)
	}

	return &games.Snapshot{
		Variant: games.VariantBlackjack,
		Status:  s.status,
		Round:   s.rounds,
		Detail:  view,
	}
}

// Settlement pays 3:2 on a natural, 1:1 on a regular win, and refunds the
// stake on a push or expiry
func (s *Session) Settlement() *games.Settlement {
	switch s.status {
	case games.StatusWon:
		payout := s.wager * 2
		if s.natural {
			payout = s.wager * 5 / 2
		}
		return &games.Settlement{
			Payout:     payout,
			Experience: winExperience,
		}
	case games.StatusCancelled, games.StatusExpired:
		return &games.Settlement{Payout: s.wager}
	default:
		return &games.Settlement{}
	}
}

// resolve plays out the dealer and compares totals
func (s *Session) resolve() {
	for HandValue(s.dealer) < dealerStandsAt && s.next < len(s.deck) {
		s.dealer = append(s.dealer, s.draw())
	}

	player := HandValue(s.player)
	dealer := HandValue(s.dealer)

	switch {
	case dealer > 21 || player > dealer:
		s.status = games.StatusWon
	case player < dealer:
		s.status = games.StatusLost
	default:
		s.status = games.StatusCancelled
	}
}

func (s *Session) draw() Card {
	c := s.deck[s.next]
	s.next++
	return c
}
