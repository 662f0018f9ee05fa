package models

// GameStats tracks a player's record for a single game variant
type GameStats struct {
	// UserID is the Discord user ID of the player
	UserID string

	// Variant is the game these stats belong to
	Variant string

	// Wins is the number of sessions ending in a win
	Wins int64

	// Losses is the number of sessions ending in a loss
	Losses int64
}

// WinRate returns the player's win percentage, 0 if they have not played.
func (s *GameStats) WinRate() float64 {
	total := s.Wins + s.Losses
	if total == 0 {
		return 0
	}
	return float64(s.Wins) / float64(total) * 100
}
