package memory

import (
	"errors"
	"strings"

	"github.com/playroom-bot/playroom/internal/games"
	"github.com/playroom-bot/playroom/internal/rng"
)

const (
	rewardPerPair = 5
	winExperience = 30
)

// symbolPool supplies the pair faces; large enough for the biggest grid
var symbolPool = []string{
	"🍎", "🍌", "🍇", "🍓", "🍒", "🍑", "🥝", "🍍",
	"🐶", "🐱", "🦊", "🐼", "🐸", "🦁", "🐙", "🦉",
	"⚽", "🏀", "🎲", "🎸", "🚀", "⛵", "🎈", "⭐",
}

// Difficulty selects the grid dimensions
type Difficulty struct {
	Name string
	Rows int
	Cols int
}

// Difficulties are the selectable grid presets
var Difficulties = map[string]Difficulty{
	"easy":   {Name: "easy", Rows: 4, Cols: 4},
	"normal": {Name: "normal", Rows: 4, Cols: 6},
	"hard":   {Name: "hard", Rows: 6, Cols: 6},
}

// DefaultDifficulty is used when the player does not pick one
const DefaultDifficulty = "easy"

// ErrUnknownDifficulty is returned for an unrecognized difficulty name
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Config holds the initial state for a memory-match session
type Config struct {
	// Grid is the shuffled layout, row-major, each symbol appearing twice
	Grid []string

	// Rows and Cols are the grid dimensions; Rows*Cols must equal len(Grid)
	Rows int
	Cols int

	// Difficulty name, shown to the player
	Difficulty string
}

// Session is a single memory-match game
type Session struct {
	grid       []string
	rows       int
	cols       int
	difficulty string
	matched    []bool
	moves      int
	lastA      int
	lastB      int
	lastMatch  bool
	status     games.Status
}

// Cell is one grid position in the render view
type Cell struct {
	// Symbol is empty while the cell is concealed
	Symbol   string
	Matched  bool
	Revealed bool // true for the two cells of the last move
}

// View is the render snapshot for memory-match
type View struct {
	Difficulty string
	Rows       int
	Cols       int
	Moves      int
	PairsLeft  int
	LastMatch  bool
	Cells      []Cell
}

// New creates an Active session from an explicit shuffled grid
func New(cfg *Config) (*Session, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Rows <= 0 || cfg.Cols <= 0 || cfg.Rows*cfg.Cols != len(cfg.Grid) {
		return nil, errors.New("grid does not match dimensions")
	}
	if len(cfg.Grid)%2 != 0 {
		return nil, errors.New("grid needs an even number of cells")
	}

	counts := make(map[string]int)
	for _, sym := range cfg.Grid {
		counts[sym]++
	}
	for sym, n := range counts {
		if n != 2 {
			return nil, errors.New("symbol " + sym + " does not form a pair")
		}
	}

	return &Session{
		grid:       append([]string(nil), cfg.Grid...),
		rows:       cfg.Rows,
		cols:       cfg.Cols,
		difficulty: cfg.Difficulty,
		matched:    make([]bool, len(cfg.Grid)),
		lastA:      -1,
		lastB:      -1,
		status:     games.StatusActive,
	}, nil
}

// NewRandom creates a session for the named difficulty with a shuffled grid
func NewRandom(difficulty string, roller rng.Roller) (*Session, error) {
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}

	d, ok := Difficulties[difficulty]
	if !ok {
		return nil, ErrUnknownDifficulty
	}

	pairs := d.Rows * d.Cols / 2
	pool := append([]string(nil), symbolPool...)
	roller.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	grid := make([]string, 0, d.Rows*d.Cols)
	for _, sym := range pool[:pairs] {
		grid = append(grid, sym, sym)
	}
	roller.Shuffle(len(grid), func(i, j int) {
		grid[i], grid[j] = grid[j], grid[i]
	})

	return New(&Config{
		Grid:       grid,
		Rows:       d.Rows,
		Cols:       d.Cols,
		Difficulty: d.Name,
	})
}

// Variant returns the game type
func (s *Session) Variant() games.Variant {
	return games.VariantMemoryMatch
}

// Status returns the current lifecycle state
func (s *Session) Status() games.Status {
	return s.status
}

// Advance reveals the two cells named by the input, e.g. "a1 b3". Matching
// cells stay revealed; a mismatch is re-concealed on the next render. The
// game is won when every pair is matched and lost only by forfeit or
// timeout.
func (s *Session) Advance(input string) error {
	if s.status != games.StatusActive {
		return games.ErrInvalidState
	}

	fields := strings.Fields(strings.ToLower(input))
	if len(fields) != 2 {
		return games.ErrInvalidInput
	}

	a, ok := s.parseCell(fields[0])
	if !ok {
		return games.ErrInvalidInput
	}
	b, ok := s.parseCell(fields[1])
	if !ok {
		return games.ErrInvalidInput
	}
	if a == b || s.matched[a] || s.matched[b] {
		return games.ErrInvalidInput
	}

	s.moves++
	s.lastA, s.lastB = a, b
	s.lastMatch = s.grid[a] == s.grid[b]

	if s.lastMatch {
		s.matched[a] = true
		s.matched[b] = true
	}

	if s.allMatched() {
		s.status = games.StatusWon
	}

	return nil
}

// Cancel forfeits the game, which counts as a loss for memory-match
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
	cells := make([]Cell, len(s.grid))
	pairsLeft := 0
	for i := range s.grid {
		revealed := i == s.lastA || i == s.lastB
		cells[i] = Cell{
			Matched:  s.matched[i],
			Revealed: revealed,
		}
		if s.matched[i] || revealed || s.status.Terminal() {
			cells[i].Symbol = s.grid[i]
		}
		if !s.matched[i] {
			pairsLeft++
		}
	}

	return &games.Snapshot{
		Variant: games.VariantMemoryMatch,
		Status:  s.status,
		Round:   s.moves,
		Detail: &View{
			Difficulty: s.difficulty,
			Rows:       s.rows,
			Cols:       s.cols,
			Moves:      s.moves,
			PairsLeft:  pairsLeft / 2,
			LastMatch:  s.lastMatch,
			Cells:      cells,
		},
	}
}

// Settlement pays per matched pair on a win
func (s *Session) Settlement() *games.Settlement {
	if s.status != games.StatusWon {
		return &games.Settlement{}
	}

	return &games.Settlement{
		Payout:     int64(len(s.grid) / 2 * rewardPerPair),
		Experience: winExperience,
	}
}

func (s *Session) allMatched() bool {
	for _, m := range s.matched {
		if !m {
			return false
		}
	}
	return true
}

// parseCell turns "b3" into a row-major index
func (s *Session) parseCell(ref string) (int, bool) {
	if len(ref) < 2 {
		return 0, false
	}

	row := int(ref[0] - 'a')
	if row < 0 || row >= s.rows {
		return 0, false
	}

	col := 0
	for _, r := range ref[1:] {
		if r < '0' || r > '9' {
			return 0, false
		}
		col = col*10 + int(r-'0')
	}
	col--
	if col < 0 || col >= s.cols {
		return 0, false
	}

	return row*s.cols + col, true
}
