package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionIDRoundTrip(t *testing.T) {
	id := NewActionID(PhaseInGame, ActionHit, "482913")
	assert.Equal(t, ActionID("inGame hit 482913"), id)

	phase, action, gameID, err := ParseActionID(string(id))
	require.NoError(t, err)
	assert.Equal(t, PhaseInGame, phase)
	assert.Equal(t, ActionHit, action)
	assert.Equal(t, GameID("482913"), gameID)
}

func TestParseActionIDRejects(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected error
	}{
		{name: "too few parts", raw: "inGame hit", expected: ErrMalformedActionID},
		{name: "too many parts", raw: "inGame hit 1 2", expected: ErrMalformedActionID},
		{name: "unknown phase", raw: "lobby hit 123456", expected: ErrUnknownPhase},
		{name: "action from another phase", raw: "results hit 123456", expected: ErrUnknownAction},
		{name: "terminal phase", raw: "finished end 123456", expected: ErrUnknownAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := ParseActionID(tt.raw)
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestActionSetFor(t *testing.T) {
	assert.Equal(t, []ActionID{
		"bettingPhase betButton 7",
		"bettingPhase betModal 7",
		"bettingPhase leave 7",
		"bettingPhase end 7",
	}, ActionSetFor(PhaseBetting, "7"))

	assert.Empty(t, ActionSetFor(PhaseRegistered, "7"))
	assert.Empty(t, ActionSetFor(PhaseFinished, "7"))
}

func TestPhaseChangeUpdate(t *testing.T) {
	update := PhaseChangeUpdate("9", PhaseResults, PhaseBetting)
	assert.ElementsMatch(t, ActionSetFor(PhaseBetting, "9"), update.Subscribe)
	assert.ElementsMatch(t, ActionSetFor(PhaseResults, "9"), update.Unsubscribe)

	stale := StaleUpdate("inGame hit 9")
	assert.Empty(t, stale.Subscribe)
	assert.Equal(t, []ActionID{"inGame hit 9"}, stale.Unsubscribe)
	assert.False(t, stale.IsEmpty())
	assert.True(t, ListeningUpdate{}.IsEmpty())
}

func TestActionsForReturnsCopy(t *testing.T) {
	actions := ActionsFor(PhaseResults)
	actions[0] = ActionHit
	assert.Equal(t, ActionReadyUp, ActionsFor(PhaseResults)[0])
}
