package rps

import (
	"errors"
	"strings"

	"github.com/playroom-bot/playroom/internal/games"
	"github.com/playroom-bot/playroom/internal/rng"
)

const (
	// DefaultMaxRounds caps how many ties re-prompt before the session is
	// cancelled and any stake refunded
	DefaultMaxRounds = 5

	winExperience = 5
)

// Choice is one of the three throws
type Choice string

const (
	Rock     Choice = "rock"
	Paper    Choice = "paper"
	Scissors Choice = "scissors"
)

var choices = []Choice{Rock, Paper, Scissors}

// beats maps each choice to the one it defeats
var beats = map[Choice]Choice{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// Config holds the initial state for a rock-paper-scissors session
type Config struct {
	// BotChoices holds one pre-drawn bot throw per possible round, so the
	// session stays deterministic; must have MaxRounds entries
	BotChoices []Choice

	// MaxRounds before repeated ties cancel the session
	MaxRounds int

	// Wager staked on the match, 0 for a friendly game
	Wager int64
}

// Session is a single best-of-ties rock-paper-scissors match
type Session struct {
	botChoices []Choice
	maxRounds  int
	wager      int64
	round      int
	lastPlayer Choice
	lastBot    Choice
	status     games.Status
}

// View is the render snapshot for rock-paper-scissors
type View struct {
	Round        int
	MaxRounds    int
	PlayerChoice Choice
	BotChoice    Choice
	Wager        int64
}

// New creates an Active session from explicit initial state
func New(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	maxRounds := cfg.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	if len(cfg.BotChoices) < maxRounds {
		return nil, errors.New("need a bot choice per round")
	}
	for _, c := range cfg.BotChoices {
		if _, ok := beats[c]; !ok {
			return nil, errors.New("unknown bot choice")
		}
	}
	if cfg.Wager < 0 {
		return nil, errors.New("wager cannot be negative")
	}

	botChoices := make([]Choice, len(cfg.BotChoices))
	copy(botChoices, cfg.BotChoices)

	return &Session{
		botChoices: botChoices,
		maxRounds:  maxRounds,
		wager:      cfg.Wager,
		status:     games.StatusActive,
	}, nil
}

// NewRandom creates a session with bot throws drawn from the roller
func NewRandom(wager int64, roller rng.Roller) (*Session, error) {
	botChoices := make([]Choice, DefaultMaxRounds)
	for i := range botChoices {
		botChoices[i] = choices[roller.Intn(len(choices))]
	}

	return New(&Config{
		BotChoices: botChoices,
		Wager:      wager,
	})
}

// Variant returns the game type
func (s *Session) Variant() games.Variant {
	return games.VariantRPS
}

// Status returns the current lifecycle state
func (s *Session) Status() games.Status {
	return s.status
}

// Advance plays one throw against the bot. Ties re-prompt until the round
// cap is exceeded, which cancels the match.
func (s *Session) Advance(input string) error {
	if s.status != games.StatusActive {
		return games.ErrInvalidState
	}

	player, ok := parseChoice(input)
	if !ok {
		return games.ErrInvalidInput
	}

	bot := s.botChoices[s.round]
	s.round++
	s.lastPlayer = player
	s.lastBot = bot

	switch {
	case player == bot:
		if s.round >= s.maxRounds {
			s.status = games.StatusCancelled
		}
	case beats[player] == bot:
		s.status = games.StatusWon
	default:
		s.status = games.StatusLost
	}

	return nil
}

// Cancel forfeits the match, refunding any stake
func (s *Session) Cancel() {
	if s.status == games.StatusActive {
		s.status = games.StatusCancelled
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
	return &games.Snapshot{
		Variant: games.VariantRPS,
		Status:  s.status,
		Round:   s.round,
		Detail: &View{
			Round:        s.round,
			MaxRounds:    s.maxRounds,
			PlayerChoice: s.lastPlayer,
			BotChoice:    s.lastBot,
			Wager:        s.wager,
		},
	}
}

// Settlement doubles the stake on a win and refunds it on a cancelled or
// expired match
func (s *Session) Settlement() *games.Settlement {
	switch s.status {
	case games.StatusWon:
		return &games.Settlement{
			Payout:     s.wager * 2,
			Experience: winExperience,
		}
	case games.StatusCancelled, games.StatusExpired:
		return &games.Settlement{Payout: s.wager}
	default:
		return &games.Settlement{}
	}
}

func parseChoice(input string) (Choice, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "rock", "r":
		return Rock, true
	case "paper", "p":
		return Paper, true
	case "scissors", "s":
		return Scissors, true
	default:
		return "", false
	}
}
