package trivia

import (
	"errors"
	"strings"

	"github.com/playroom-bot/playroom/internal/games"
	"github.com/playroom-bot/playroom/internal/rng"
)

// DifficultyExperience maps difficulty to the XP awarded for a correct answer
var DifficultyExperience = map[string]int64{
	"easy":   10,
	"medium": 20,
	"hard":   30,
}

// DefaultDifficulty is used when the player does not pick one
const DefaultDifficulty = "medium"

// ErrUnknownDifficulty is returned for an unrecognized difficulty name
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Question is one entry in the built-in question bank
type Question struct {
	Prompt     string
	Answer     string
	Decoys     []string
	Category   string
	Difficulty string
}

// Config holds the initial state for a trivia session
type Config struct {
	// Prompt is the question text
	Prompt string

	// Choices are the displayed answers, already shuffled
	Choices []string

	// CorrectIndex points at the right answer within Choices
	CorrectIndex int

	// Category and Difficulty are shown to the player
	Category   string
	Difficulty string
}

// Session is a single one-round trivia game
type Session struct {
	cfg      Config
	answered int // index of the submitted choice, -1 before answering
	status   games.Status
}

// View is the render snapshot for trivia
type View struct {
	Prompt     string
	Choices    []string
	Category   string
	Difficulty string
	Answered   int
	Correct    int // revealed only once terminal
}

// New creates an Active trivia session from explicit initial state
func New(cfg *Config) (*Session, error) {
	if cfg == nil || cfg.Prompt == "" {
		return nil, errors.New("prompt cannot be empty")
	}
	if len(cfg.Choices) < 2 {
		return nil, errors.New("need at least two choices")
	}
	if cfg.CorrectIndex < 0 || cfg.CorrectIndex >= len(cfg.Choices) {
		return nil, errors.New("correct index outside choices")
	}

	return &Session{
		cfg:      *cfg,
		answered: -1,
		status:   games.StatusActive,
	}, nil
}

// NewRandom draws a question of the named difficulty from the built-in bank
// and shuffles its answer choices.
func NewRandom(difficulty string, roller rng.Roller) (*Session, error) {
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}
	if _, ok := DifficultyExperience[difficulty]; !ok {
		return nil, ErrUnknownDifficulty
	}

	var pool []Question
	for _, q := range QuestionBank {
		if q.Difficulty == difficulty {
			pool = append(pool, q)
		}
	}
	if len(pool) == 0 {
		return nil, errors.New("no questions for difficulty")
	}

	q := pool[roller.Intn(len(pool))]

	choices := append([]string{q.Answer}, q.Decoys...)
	roller.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})

	correct := 0
	for i, c := range choices {
		if c == q.Answer {
			correct = i
			break
		}
	}

	return New(&Config{
		Prompt:       q.Prompt,
		Choices:      choices,
		CorrectIndex: correct,
		Category:     q.Category,
		Difficulty:   q.Difficulty,
	})
}

// Variant returns the game type
func (s *Session) Variant() games.Variant {
	return games.VariantTrivia
}

// Status returns the current lifecycle state
func (s *Session) Status() games.Status {
	return s.status
}

// Advance accepts a choice letter ("a".."d") or number ("1".."4") and
// resolves the round immediately.
func (s *Session) Advance(input string) error {
	if s.status != games.StatusActive {
		return games.ErrInvalidState
	}

	idx, ok := parseChoice(input, len(s.cfg.Choices))
	if !ok {
		return games.ErrInvalidInput
	}

	s.answered = idx
	if idx == s.cfg.CorrectIndex {
		s.status = games.StatusWon
	} else {
		s.status = games.StatusLost
	}

	return nil
}

// Cancel forfeits the round
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
		Prompt:     s.cfg.Prompt,
		Choices:    append([]string(nil), s.cfg.Choices...),
		Category:   s.cfg.Category,
		Difficulty: s.cfg.Difficulty,
		Answered:   s.answered,
		Correct:    -1,
	}
	if s.status.Terminal() {
		view.Correct = s.cfg.CorrectIndex
	}

	round := 0
	if s.answered >= 0 {
		round = 1
	}

	return &games.Snapshot{
		Variant: games.VariantTrivia,
		Status:  s.status,
		Round:   round,
		Detail:  view,
	}
}

// Settlement awards XP by difficulty on a correct answer
func (s *Session) Settlement() *games.Settlement {
	if s.status != games.StatusWon {
		return &games.Settlement{}
	}

	xp, ok := DifficultyExperience[s.cfg.Difficulty]
	if !ok {
		xp = DifficultyExperience[DefaultDifficulty]
	}

	return &games.Settlement{Experience: xp}
}

func parseChoice(input string, n int) (int, bool) {
	c := strings.ToLower(strings.TrimSpace(input))
	if len(c) != 1 {
		return 0, false
	}

	var idx int
	switch {
	case c[0] >= 'a' && c[0] <= 'z':
		idx = int(c[0] - 'a')
	case c[0] >= '1' && c[0] <= '9':
		idx = int(c[0] - '1')
	default:
		return 0, false
	}

	if idx >= n {
		return 0, false
	}
	return idx, true
}
