package stats

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/playroom-bot/playroom/internal/repositories/stats Repository

import (
	"context"

	"github.com/playroom-bot/playroom/internal/models"
)

// Repository defines the interface for per-game win/loss persistence
type Repository interface {
	// RecordResult increments a player's win or loss counter for a game
	RecordResult(ctx context.Context, input *RecordResultInput) error

	// GetStats retrieves a player's record for a game
	GetStats(ctx context.Context, input *GetStatsInput) (*models.GameStats, error)

	// GetTopWinners returns the players with the most wins for a game
	GetTopWinners(ctx context.Context, input *GetTopWinnersInput) (*GetTopWinnersOutput, error)
}
