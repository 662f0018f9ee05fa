package numguess

import (
	"errors"
	"strconv"
	"strings"

	"github.com/playroom-bot/playroom/internal/games"
	"github.com/playroom-bot/playroom/internal/rng"
)

const winExperience = 20

// Hint tells the player which direction the target lies
type Hint string

const (
	HintNone   Hint = ""
	HintHigher Hint = "higher"
	HintLower  Hint = "lower"
)

// Difficulty bundles the range, attempt cap and reward of a game
type Difficulty struct {
	Name        string
	Min         int
	Max         int
	MaxAttempts int
	Reward      int64
}

// Difficulties are the selectable game presets
var Difficulties = map[string]Difficulty{
	"easy":   {Name: "easy", Min: 1, Max: 50, MaxAttempts: 6, Reward: 50},
	"normal": {Name: "normal", Min: 1, Max: 100, MaxAttempts: 7, Reward: 100},
	"hard":   {Name: "hard", Min: 1, Max: 200, MaxAttempts: 8, Reward: 200},
	"expert": {Name: "expert", Min: 1, Max: 500, MaxAttempts: 9, Reward: 500},
}

// DefaultDifficulty is used when the player does not pick one
const DefaultDifficulty = "normal"

// ErrUnknownDifficulty is returned for an unrecognized difficulty name
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Config holds the initial state for a number-guess session
type Config struct {
	// Target is the secret number, must lie within [Min, Max]
	Target int

	// Min and Max bound the guessing range
	Min int
	Max int

	// MaxAttempts before the game is lost
	MaxAttempts int

	// Reward paid out on a win
	Reward int64

	// Difficulty name, shown to the player
	Difficulty string
}

// Session is a single number-guess game
type Session struct {
	cfg      Config
	attempts int
	guesses  []int
	lastHint Hint
	status   games.Status
}

// View is the render snapshot for number-guess
type View struct {
	Difficulty   string
	Min          int
	Max          int
	Attempts     int
	MaxAttempts  int
	Guesses      []int
	LastHint     Hint
	Target       int // revealed only once terminal
}

// New creates an Active session from explicit initial state
func New(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Max <= cfg.Min {
		return nil, errors.New("range must be non-empty")
	}
	if cfg.Target < cfg.Min || cfg.Target > cfg.Max {
		return nil, errors.New("target outside range")
	}
	if cfg.MaxAttempts <= 0 {
		return nil, errors.New("attempt cap must be positive")
	}

	return &Session{
		cfg:    *cfg,
		status: games.StatusActive,
	}, nil
}

// NewRandom creates a session for the named difficulty with a random target
func NewRandom(difficulty string, roller rng.Roller) (*Session, error) {
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}

	d, ok := Difficulties[difficulty]
	if !ok {
		return nil, ErrUnknownDifficulty
	}

	return New(&Config{
		Target:      roller.Between(d.Min, d.Max),
		Min:         d.Min,
		Max:         d.Max,
		MaxAttempts: d.MaxAttempts,
		Reward:      d.Reward,
		Difficulty:  d.Name,
	})
}

// Variant returns the game type
func (s *Session) Variant() games.Variant {
	return games.VariantNumberGuess
}

// Status returns the current lifecycle state
func (s *Session) Status() games.Status {
	return s.status
}

// Advance processes one guess. Input that is not an integer inside the
// configured range is rejected without consuming an attempt.
func (s *Session) Advance(input string) error {
	if s.status != games.StatusActive {
		return games.ErrInvalidState
	}

	guess, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return games.ErrInvalidInput
	}
	if guess < s.cfg.Min || guess > s.cfg.Max {
		return games.ErrInvalidInput
	}

	s.attempts++
	s.guesses = append(s.guesses, guess)

	switch {
	case guess == s.cfg.Target:
		s.lastHint = HintNone
		s.status = games.StatusWon
	case guess < s.cfg.Target:
		s.lastHint = HintHigher
	default:
		s.lastHint = HintLower
	}

	if s.status == games.StatusActive && s.attempts >= s.cfg.MaxAttempts {
		s.status = games.StatusLost
	}

	return nil
}

// Cancel forfeits the game
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
	view := &View{
		Difficulty:  s.cfg.Difficulty,
		Min:         s.cfg.Min,
		Max:         s.cfg.Max,
		Attempts:    s.attempts,
		MaxAttempts: s.cfg.MaxAttempts,
		Guesses:     append([]int(nil), s.guesses...),
		LastHint:    s.lastHint,
	}
	if s.status.Terminal() {
		view.Target = s.cfg.Target
	}

	return &games.Snapshot{
		Variant: games.VariantNumberGuess,
		Status:  s.status,
		Round:   s.attempts,
		Detail:  view,
	}
}

// Settlement pays the difficulty reward on a win
func (s *Session) Settlement() *games.Settlement {
	if s.status != games.StatusWon {
		return &games.Settlement{}
	}

	return &games.Settlement{
		Payout:     s.cfg.Reward,
		Experience: winExperience,
	}
}
