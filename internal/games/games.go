// Package games defines the lifecycle shared by every mini-game session.
// A session is constructed with its initial state already generated (deck
// shuffled, word picked, target drawn) and starts out Active; it advances
// one input at a time until it reaches a terminal status.
package games

// Variant identifies a game type
type Variant string

const (
	VariantTrivia      Variant = "trivia"
	VariantHangman     Variant = "hangman"
	VariantRPS         Variant = "rps"
	VariantNumberGuess Variant = "numguess"
	VariantMemoryMatch Variant = "memory"
	VariantBlackjack   Variant = "blackjack"
)

// Variants lists every playable game
var Variants = []Variant{
	VariantTrivia,
	VariantHangman,
	VariantRPS,
	VariantNumberGuess,
	VariantMemoryMatch,
	VariantBlackjack,
}

// Status is the lifecycle state of a session
type Status string

const (
	// StatusActive indicates the session is accepting input
	StatusActive Status = "active"

	// StatusWon indicates the player won
	StatusWon Status = "won"

	// StatusLost indicates the player lost
	StatusLost Status = "lost"

	// StatusCancelled indicates the session ended without a result
	StatusCancelled Status = "cancelled"

	// StatusExpired indicates the session was abandoned past the idle timeout
	StatusExpired Status = "expired"
)

// Terminal reports whether the status is absorbing
func (s Status) Terminal() bool {
	return s != StatusActive
}

// GameError is a custom error type for game input errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

const (
	// ErrInvalidState is returned when input arrives for a session that is
	// not Active
	ErrInvalidState GameError = "session is not accepting input"

	// ErrInvalidInput is returned for malformed or out-of-domain input; it
	// never consumes a turn or attempt
	ErrInvalidInput GameError = "input is not valid for this game"
)

// Settlement is what a terminal session owes the player. Payout already
// includes any stake refund, so the caller applies it as a single credit.
type Settlement struct {
	// Payout is the coin credit to apply, 0 for a plain loss
	Payout int64

	// Experience is the XP to award
	Experience int64
}

// Snapshot is a read-only view of a session for rendering. The core never
// formats text; Detail carries the variant's own view struct.
type Snapshot struct {
	Variant Variant
	Status  Status
	Round   int
	Detail  any
}

// Session is the interface every game variant implements
type Session interface {
	// Variant returns the game type
	Variant() Variant

	// Status returns the current lifecycle state
	Status() Status

	// Advance feeds one player input to the state machine
	Advance(input string) error

	// Cancel ends the session early; each variant decides the resulting
	// terminal status (forfeit may count as a loss)
	Cancel()

	// Expire marks the session abandoned
	Expire()

	// Snapshot returns a read-only view for the presentation layer
	Snapshot() *Snapshot

	// Settlement returns the payout owed once the session is terminal
	Settlement() *Settlement
}

// ParseVariant maps a command word to a Variant
func ParseVariant(s string) (Variant, bool) {
	for _, v := range Variants {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}
