// Package registry tracks at most one active game session per
// (channel, player) pair. It owns no game rules and never touches the
// ledger; expiry hands abandoned sessions to a callback for settlement.
package registry

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/playroom-bot/playroom/internal/common/clock"
	"github.com/playroom-bot/playroom/internal/games"
)

var (
	// ErrAlreadyActive is returned when a start collides with a live session
	ErrAlreadyActive = errors.New("a game is already active for this player in this channel")

	// ErrSessionNotFound is returned for keys with no active session
	ErrSessionNotFound = errors.New("no active game session")
)

// DefaultIdleTimeout is how long a session may sit without input
const DefaultIdleTimeout = 2 * time.Minute

// Key scopes a session to one player in one channel
type Key struct {
	ChannelID string
	UserID    string
}

// Entry is a registered session plus its bookkeeping. The embedded mutex
// serializes Advance calls for the session; the registry's own lock only
// guards the map.
type Entry struct {
	// ID is a unique identifier for logging
	ID string

	// Key the entry is registered under
	Key Key

	// Session is the game state machine
	Session games.Session

	// Wager staked when the session started, for logging and display
	Wager int64

	// StartedAt and LastInput drive idle expiry
	StartedAt time.Time
	LastInput time.Time

	mu sync.Mutex
}

// Lock serializes access to the entry's session
func (e *Entry) Lock() {
	e.mu.Lock()
}

// Unlock releases the entry
func (e *Entry) Unlock() {
	e.mu.Unlock()
}

// Config holds configuration for the registry
type Config struct {
	// Clock for idle tracking
	Clock clock.Clock

	// IdleTimeout before an untouched session expires
	IdleTimeout time.Duration
}

// Registry is the in-memory session table
type Registry struct {
	mu          sync.Mutex
	entries     map[Key]*Entry
	clock       clock.Clock
	idleTimeout time.Duration
}

// New creates an empty registry
func New(cfg *Config) (*Registry, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	idle := cfg.IdleTimeout
	if idle <= 0 {
		idle = DefaultIdleTimeout
	}

	return &Registry{
		entries:     make(map[Key]*Entry),
		clock:       cfg.Clock,
		idleTimeout: idle,
	}, nil
}

// Start registers an entry under its key. The check-and-insert is atomic:
// two simultaneous starts for the same key cannot both succeed, and a start
// against a live session never alters it.
func (r *Registry) Start(entry *Entry) error {
	if entry == nil || entry.Session == nil {
		return errors.New("entry and session cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[entry.Key]; ok && !existing.Session.Status().Terminal() {
		return ErrAlreadyActive
	}

	now := r.clock.Now()
	entry.StartedAt = now
	entry.LastInput = now
	r.entries[entry.Key] = entry

	return nil
}

// Get returns the entry for a key
func (r *Registry) Get(key Key) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[key]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return entry, nil
}

// Touch records player input against the idle timer
func (r *Registry) Touch(key Key) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.entries[key]; ok {
		entry.LastInput = r.clock.Now()
	}
}

// Remove deletes the entry for a key and returns it, so exactly one caller
// owns the removed session
func (r *Registry) Remove(key Key) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[key]
	if !ok {
		return nil, ErrSessionNotFound
	}

	delete(r.entries, key)
	return entry, nil
}

// Len reports the number of registered sessions
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// CollectExpired removes and returns every entry idle past the timeout
func (r *Registry) CollectExpired() []*Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.clock.Now().Add(-r.idleTimeout)

	var expired []*Entry
	for key, entry := range r.entries {
		if entry.LastInput.Before(cutoff) {
			expired = append(expired, entry)
			delete(r.entries, key)
		}
	}

	return expired
}

// RunJanitor sweeps for expired sessions until the context is cancelled,
// handing each one to onExpire outside the registry lock.
func (r *Registry) RunJanitor(ctx context.Context, interval time.Duration, onExpire func(*Entry)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, entry := range r.CollectExpired() {
				onExpire(entry)
			}
		}
	}
}
