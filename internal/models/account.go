package models

import (
	"time"
)

// Account holds a player's economy state
type Account struct {
	// UserID is the Discord user ID that owns the account
	UserID string

	// Balance is the player's coin balance, never negative
	Balance int64

	// Experience is the player's accumulated experience points
	Experience int64

	// Level is derived from Experience, see LevelForExperience
	Level int

	// DailyStreak counts consecutive daily claims
	DailyStreak int

	// LastDaily is when the player last claimed a daily reward
	LastDaily time.Time

	// LastWork is when the player last worked
	LastWork time.Time

	// CreatedAt is when the account was first seen
	CreatedAt time.Time

	// UpdatedAt is when the account was last written
	UpdatedAt time.Time
}

// LevelForExperience derives a level from total experience. Reaching level n
// requires 100*n*(n+1)/2 cumulative experience, so levels get progressively
// more expensive.
func LevelForExperience(xp int64) int {
	level := 0
	for xp >= int64(100*(level+1)*(level+2)/2) {
		level++
	}
	return level
}

// ExperienceForLevel returns the cumulative experience required to reach
// the given level.
func ExperienceForLevel(level int) int64 {
	if level <= 0 {
		return 0
	}
	return int64(100 * level * (level + 1) / 2)
}
