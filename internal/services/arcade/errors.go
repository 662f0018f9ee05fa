package arcade

import (
	"github.com/playroom-bot/playroom/internal/games"
	"github.com/playroom-bot/playroom/internal/registry"
	"github.com/playroom-bot/playroom/internal/services/ledger"
)

// ArcadeError is a custom error type for arcade-related errors
type ArcadeError string

// Error implements the error interface
func (e ArcadeError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrUnknownVariant  ArcadeError = "unknown game"
	ErrWagerNotAllowed ArcadeError = "this game does not take a wager"
	ErrWagerRequired   ArcadeError = "this game requires a wager"
	ErrWagerOutOfRange ArcadeError = "wager is outside the table limits"
	ErrNilConfig       ArcadeError = "config cannot be nil"
	ErrNilRegistry     ArcadeError = "registry cannot be nil"
	ErrNilLedger       ArcadeError = "ledger service cannot be nil"
	ErrNilStatsRepo    ArcadeError = "stats repository cannot be nil"
	ErrNilRoller       ArcadeError = "roller cannot be nil"
	ErrNilUUID         ArcadeError = "uuid generator cannot be nil"
)

// Errors surfaced from lower layers, re-exported so the dispatcher only
// matches against this package
var (
	ErrAlreadyActive      = registry.ErrAlreadyActive
	ErrSessionNotFound    = registry.ErrSessionNotFound
	ErrInsufficientFunds  = ledger.ErrInsufficientFunds
	ErrStorageUnavailable = ledger.ErrStorageUnavailable
	ErrInvalidInput       = games.ErrInvalidInput
	ErrInvalidState       = games.ErrInvalidState
)
