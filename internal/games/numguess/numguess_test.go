package numguess

import (
	"testing"

	"github.com/playroom-bot/playroom/internal/games"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(&Config{
		Target:      42,
		Min:         1,
		Max:         100,
		MaxAttempts: 7,
		Reward:      100,
		Difficulty:  "normal",
	})
	require.NoError(t, err)
	return s
}

func TestHintsAndWin(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.Advance("50"))
	assert.Equal(t, HintLower, s.Snapshot().Detail.(*View).LastHint)

	require.NoError(t, s.Advance("25"))
	assert.Equal(t, HintHigher, s.Snapshot().Detail.(*View).LastHint)

	require.NoError(t, s.Advance("42"))
	assert.Equal(t, games.StatusWon, s.Status())

	view := s.Snapshot().Detail.(*View)
	assert.Equal(t, 3, view.Attempts)
	assert.Equal(t, 42, view.Target)
}

func TestExhaustedAttemptsLose(t *testing.T) {
	s, err := New(&Config{Target: 5, Min: 1, Max: 10, MaxAttempts: 2})
	require.NoError(t, err)

	require.NoError(t, s.Advance("1"))
	require.NoError(t, s.Advance("2"))

	assert.Equal(t, games.StatusLost, s.Status())
	assert.ErrorIs(t, s.Advance("5"), games.ErrInvalidState)
}

func TestOutOfRangeDoesNotConsumeAttempt(t *testing.T) {
	s := newTestSession(t)

	assert.ErrorIs(t, s.Advance("101"), games.ErrInvalidInput)
	assert.ErrorIs(t, s.Advance("0"), games.ErrInvalidInput)
	assert.ErrorIs(t, s.Advance("banana"), games.ErrInvalidInput)

	assert.Equal(t, 0, s.Snapshot().Detail.(*View).Attempts)
}

func TestSettlement(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Advance("42"))

	assert.Equal(t, int64(100), s.Settlement().Payout)

	lost, err := New(&Config{Target: 5, Min: 1, Max: 10, MaxAttempts: 1, Reward: 100})
	require.NoError(t, err)
	require.NoError(t, lost.Advance("1"))
	assert.Zero(t, lost.Settlement().Payout)
}

func TestNewValidation(t *testing.T) {
	_, err := New(&Config{Target: 11, Min: 1, Max: 10, MaxAttempts: 3})
	assert.Error(t, err)

	_, err = New(&Config{Target: 5, Min: 10, Max: 1, MaxAttempts: 3})
	assert.Error(t, err)

	_, err = New(nil)
	assert.Error(t, err)
}
