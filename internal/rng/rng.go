package rng

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/playroom-bot/playroom/internal/rng Roller

// Roller is the source of randomness for games and rewards
type Roller interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Between returns a random int in [min, max] inclusive
	Between(min, max int) int

	// Shuffle randomizes the order of n elements via swap
	Shuffle(n int, swap func(i, j int))
}

// Config for the default roller
type Config struct {
	// Optional seed for testing
	Seed int64
}

// DefaultRoller implements Roller using math/rand
type DefaultRoller struct {
	// rand.Rand is not safe for concurrent use
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new roller
func New(cfg *Config) *DefaultRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &DefaultRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random int in [0, n)
func (r *DefaultRoller) Intn(n int) int {
	if n < 1 {
		return 0
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}

// Between returns a random int in [min, max] inclusive
func (r *DefaultRoller) Between(min, max int) int {
	if max <= min {
		return min
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return min + r.random.Intn(max-min+1)
}

// Shuffle randomizes the order of n elements via swap
func (r *DefaultRoller) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.random.Shuffle(n, swap)
}
