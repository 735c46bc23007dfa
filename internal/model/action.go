package model

import (
	"fmt"
	"strings"
)

// Action names a user-triggerable operation on a game
type Action string

const (
	ActionJoin       Action = "join"
	ActionLeave      Action = "leave"
	ActionStart      Action = "start"
	ActionEnd        Action = "end"
	ActionBet        Action = "betButton"
	ActionBetSubmit  Action = "betModal"
	ActionHit        Action = "hit"
	ActionStand      Action = "stand"
	ActionDoubleDown Action = "doubleDown"
	ActionReadyUp    Action = "readyUp"
)

// phaseActions is the complete set of actions each phase listens for.
// Registered and Finished accept nothing.
var phaseActions = map[Phase][]Action{
	PhaseReady:   {ActionJoin, ActionLeave, ActionStart, ActionEnd},
	PhaseBetting: {ActionBet, ActionBetSubmit, ActionLeave, ActionEnd},
	PhaseInGame:  {ActionHit, ActionStand, ActionDoubleDown, ActionLeave, ActionEnd},
	PhaseResults: {ActionReadyUp, ActionLeave, ActionEnd},
}

// ActionsFor returns the actions accepted in the phase
func ActionsFor(phase Phase) []Action {
	actions := phaseActions[phase]
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

// IsFormSubmission reports whether the action carries free-form input
func (a Action) IsFormSubmission() bool {
	return a == ActionBetSubmit
}

// ActionID is the structured "<phaseTag> <action> <gameId>" identifier
type ActionID string

// NewActionID formats an identifier for the action in the phase of a game
func NewActionID(phase Phase, action Action, gameID GameID) ActionID {
	return ActionID(fmt.Sprintf("%s %s %s", phase.Tag(), action, gameID))
}

// ParseActionID splits an identifier into its phase, action and game id
func ParseActionID(raw string) (Phase, Action, GameID, error) {
	parts := strings.Fields(raw)
	if len(parts) != 3 {
		return "", "", "", fmt.Errorf("%w: %q", ErrMalformedActionID, raw)
	}

	phase, ok := PhaseFromTag(parts[0])
	if !ok {
		return "", "", "", fmt.Errorf("%w: %q", ErrUnknownPhase, parts[0])
	}

	action := Action(parts[1])
	if !phaseAccepts(phase, action) {
		return "", "", "", fmt.Errorf("%w: %q in %s", ErrUnknownAction, parts[1], phase)
	}

	return phase, action, GameID(parts[2]), nil
}

func phaseAccepts(phase Phase, action Action) bool {
	for _, a := range phaseActions[phase] {
		if a == action {
			return true
		}
	}
	return false
}

// ActionSetFor returns every identifier a game in the phase listens for
func ActionSetFor(phase Phase, gameID GameID) []ActionID {
	actions := phaseActions[phase]
	ids := make([]ActionID, 0, len(actions))
	for _, a := range actions {
		ids = append(ids, NewActionID(phase, a, gameID))
	}
	return ids
}

// ListeningUpdate is one combined instruction to stop listening for some
// identifiers and start listening for others.
type ListeningUpdate struct {
	Subscribe   []ActionID `json:"subscribe"`
	Unsubscribe []ActionID `json:"unsubscribe"`
}

// IsEmpty reports whether the update changes nothing
func (u ListeningUpdate) IsEmpty() bool {
	return len(u.Subscribe) == 0 && len(u.Unsubscribe) == 0
}

// PhaseChangeUpdate swaps the identifier set of one phase for another's.
// Both sets are computed before the value is handed out.
func PhaseChangeUpdate(gameID GameID, from, to Phase) ListeningUpdate {
	return ListeningUpdate{
		Subscribe:   ActionSetFor(to, gameID),
		Unsubscribe: ActionSetFor(from, gameID),
	}
}

// StaleUpdate unsubscribes a single identifier that is no longer valid
func StaleUpdate(id ActionID) ListeningUpdate {
	return ListeningUpdate{Unsubscribe: []ActionID{id}}
}

// Interaction is an inbound action event resolved against a game
type Interaction struct {
	Phase  Phase
	Action Action
	GameID GameID
	Player Player
	Input  string
}

// ID rebuilds the identifier the interaction was delivered on
func (i Interaction) ID() ActionID {
	return NewActionID(i.Phase, i.Action, i.GameID)
}
