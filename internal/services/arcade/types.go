package arcade

import (
	"github.com/playroom-bot/playroom/internal/common/uuid"
	"github.com/playroom-bot/playroom/internal/games"
	"github.com/playroom-bot/playroom/internal/registry"
	"github.com/playroom-bot/playroom/internal/repositories/stats"
	"github.com/playroom-bot/playroom/internal/rng"
	"github.com/playroom-bot/playroom/internal/services/ledger"
)

// Config holds configuration for the arcade service
type Config struct {
	Registry  *registry.Registry
	Ledger    ledger.Service
	StatsRepo stats.Repository
	Roller    rng.Roller
	UUID      uuid.UUID

	// Table limits for wagered games; zero values take the defaults
	MinWager int64
	MaxWager int64
}

// Table limits from the blackjack table rules
const (
	DefaultMinWager int64 = 10
	DefaultMaxWager int64 = 1000
)

// StartGameInput holds parameters for StartGame
type StartGameInput struct {
	ChannelID string
	UserID    string
	Variant   games.Variant

	// Option selects a difficulty or word category, game-dependent;
	// empty picks the game's default
	Option string

	// Wager to stake, only meaningful for wagered games
	Wager int64
}

// StartGameOutput holds the result of StartGame
type StartGameOutput struct {
	SessionID string
	Snapshot  *games.Snapshot
	Wager     int64

	// Settled is true when the game resolved on the deal (blackjack
	// naturals); Settlement and level fields are populated as in
	// AdvanceOutput
	Settled    bool
	Settlement *games.Settlement
	LeveledUp  bool
	Level      int
}

// AdvanceInput holds parameters for Advance
type AdvanceInput struct {
	ChannelID string
	UserID    string

	// Input is the raw player text after the command word
	Input string
}

// AdvanceOutput holds the result of Advance
type AdvanceOutput struct {
	Snapshot *games.Snapshot
	Wager    int64

	// Settled is true when this input ended the game
	Settled    bool
	Settlement *games.Settlement

	// LeveledUp and Level report an XP level-up from the settlement
	LeveledUp bool
	Level     int
}

// ForfeitInput holds parameters for Forfeit
type ForfeitInput struct {
	ChannelID string
	UserID    string
}

// ForfeitOutput holds the result of Forfeit
type ForfeitOutput struct {
	Snapshot   *games.Snapshot
	Wager      int64
	Settlement *games.Settlement
}
