package stats

import (
	"github.com/playroom-bot/playroom/internal/models"
)

// RecordResultInput holds parameters for RecordResult
type RecordResultInput struct {
	// Variant names the game the result belongs to
	Variant string

	// UserID is the Discord user ID of the player
	UserID string

	// Won is true for a win, false for a loss
	Won bool
}

// GetStatsInput holds parameters for GetStats
type GetStatsInput struct {
	Variant string
	UserID  string
}

// GetTopWinnersInput holds parameters for GetTopWinners
type GetTopWinnersInput struct {
	Variant string

	// Limit caps how many players are returned
	Limit int
}

// GetTopWinnersOutput holds the result of GetTopWinners
type GetTopWinnersOutput struct {
	// Stats ordered by wins, highest first
	Stats []*models.GameStats
}
