package arcade

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/playroom-bot/playroom/internal/services/arcade Service

import (
	"context"

	"github.com/playroom-bot/playroom/internal/registry"
)

// Service defines the interface for running game sessions
type Service interface {
	// StartGame creates a session, registers it, and stakes the wager; a
	// failed stake leaves no session behind
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// Advance feeds player input to their active session, settling it if
	// the input ends the game
	Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error)

	// Forfeit ends the player's active session early
	Forfeit(ctx context.Context, input *ForfeitInput) (*ForfeitOutput, error)

	// ExpireEntry settles a session the janitor collected; the entry is
	// already out of the registry
	ExpireEntry(ctx context.Context, entry *registry.Entry)

	// ActiveSessions reports how many sessions are live
	ActiveSessions() int
}
