package hangman

import (
	"errors"
	"sort"
	"strings"

	"github.com/playroom-bot/playroom/internal/games"
	"github.com/playroom-bot/playroom/internal/rng"
)

const (
	// DefaultMaxMisses matches the six drawable hangman stages
	DefaultMaxMisses = 6

	// rewardPerLetter scales the win payout by unique letters in the word
	rewardPerLetter = 10

	winExperience = 25
)

// WordLists holds the selectable categories
var WordLists = map[string][]string{
	"animals": {"elephant", "giraffe", "penguin", "dolphin", "kangaroo",
		"alligator", "squirrel", "hedgehog", "flamingo", "butterfly",
		"cheetah", "octopus", "panther"},
	"food": {"hamburger", "spaghetti", "chocolate", "pancakes", "sandwich",
		"blueberry", "pineapple", "strawberry", "watermelon", "avocado",
		"cucumber", "broccoli"},
	"countries": {"australia", "canada", "germany", "brazil", "thailand",
		"egypt", "mexico", "netherlands", "switzerland", "singapore",
		"portugal", "argentina"},
	"sports": {"basketball", "volleyball", "swimming", "gymnastics",
		"surfing", "baseball", "football", "tennis", "hockey", "soccer",
		"cricket"},
}

// ErrUnknownCategory is returned when a requested category does not exist
var ErrUnknownCategory = errors.New("unknown word category")

// Config holds the initial state for a hangman session
type Config struct {
	// Word is the secret word, lowercase letters only
	Word string

	// Category the word was drawn from, shown to the player
	Category string

	// MaxMisses before the game is lost, defaults to DefaultMaxMisses
	MaxMisses int
}

// Session is a single hangman game
type Session struct {
	word      string
	category  string
	maxMisses int
	misses    int
	rounds    int
	guessed   map[rune]bool
	status    games.Status
}

// View is the render snapshot for hangman
type View struct {
	Category   string
	Masked     string
	Guessed    []string
	Misses     int
	MaxMisses  int
	Word       string // revealed only once terminal
}

// New creates an Active hangman session from explicit initial state
func New(cfg *Config) (*Session, error) {
	if cfg == nil || cfg.Word == "" {
		return nil, errors.New("word cannot be empty")
	}

	word := strings.ToLower(cfg.Word)
	for _, r := range word {
		if r < 'a' || r > 'z' {
			return nil, errors.New("word must contain only letters")
		}
	}

	maxMisses := cfg.MaxMisses
	if maxMisses <= 0 {
		maxMisses = DefaultMaxMisses
	}

	return &Session{
		word:      word,
		category:  cfg.Category,
		maxMisses: maxMisses,
		guessed:   make(map[rune]bool),
		status:    games.StatusActive,
	}, nil
}

// NewRandom creates a session with a word drawn from the given category,
// or from a random category when none is given.
func NewRandom(category string, roller rng.Roller) (*Session, error) {
	if category == "" {
		categories := make([]string, 0, len(WordLists))
		for c := range WordLists {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		category = categories[roller.Intn(len(categories))]
	}

	words, ok := WordLists[category]
	if !ok {
		return nil, ErrUnknownCategory
	}

	return New(&Config{
		Word:     words[roller.Intn(len(words))],
		Category: category,
	})
}

// Variant returns the game type
func (s *Session) Variant() games.Variant {
	return games.VariantHangman
}

// Status returns the current lifecycle state
func (s *Session) Status() games.Status {
	return s.status
}

// Advance processes a single letter guess or a whole-word guess. A repeated
// letter or non-alphabetic input is rejected without consuming a miss; a
// wrong whole-word guess costs two misses.
func (s *Session) Advance(input string) error {
	if s.status != games.StatusActive {
		return games.ErrInvalidState
	}

	guess := strings.ToLower(strings.TrimSpace(input))
	if guess == "" {
		return games.ErrInvalidInput
	}
	for _, r := range guess {
		if r < 'a' || r > 'z' {
			return games.ErrInvalidInput
		}
	}

	switch {
	case len(guess) == 1:
		letter := rune(guess[0])
		if s.guessed[letter] {
			return games.ErrInvalidInput
		}

		s.guessed[letter] = true
		s.rounds++
		if !strings.ContainsRune(s.word, letter) {
			s.misses++
		}

	case len(guess) == len(s.word):
		s.rounds++
		if guess == s.word {
			for _, r := range s.word {
				s.guessed[r] = true
			}
		} else {
			s.misses += 2
			if s.misses > s.maxMisses {
				s.misses = s.maxMisses
			}
		}

	default:
		return games.ErrInvalidInput
	}

	if s.revealed() {
		s.status = games.StatusWon
	} else if s.misses >= s.maxMisses {
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
		Category:  s.category,
		Masked:    s.masked(),
		Guessed:   s.guessedLetters(),
		Misses:    s.misses,
		MaxMisses: s.maxMisses,
	}
	if s.status.Terminal() {
		view.Word = s.word
	}

	return &games.Snapshot{
		Variant: games.VariantHangman,
		Status:  s.status,
		Round:   s.rounds,
		Detail:  view,
	}
}

// Settlement pays out based on the word's unique letters
func (s *Session) Settlement() *games.Settlement {
	if s.status != games.StatusWon {
		return &games.Settlement{}
	}

	unique := make(map[rune]bool)
	for _, r := range s.word {
		unique[r] = true
	}

	return &games.Settlement{
		Payout:     int64(len(unique) * rewardPerLetter),
		Experience: winExperience,
	}
}

func (s *Session) revealed() bool {
	for _, r := range s.word {
		if !s.guessed[r] {
			return false
		}
	}
	return true
}

func (s *Session) masked() string {
	var b strings.Builder
	for i, r := range s.word {
		if i > 0 {
			b.WriteByte(' ')
		}
		if s.guessed[r] {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func (s *Session) guessedLetters() []string {
	letters := make([]string, 0, len(s.guessed))
	for r := range s.guessed {
		letters = append(letters, string(r))
	}
	sort.Strings(letters)
	return letters
}
