// Package turn derives whose turn it is from the authoritative session
// record and mediates submission. There is no local transition logic:
// state is a pure function of the incoming record, the viewer id, and
// the clock.
package turn

import (
	"time"

	"turnroom/domain"
)

type State int

const (
	Inactive State = iota
	MyTurnReady
	MyTurnCooldown
	OthersTurnReady
	OthersTurnCooldown
)

func (s State) String() string {
	switch s {
	case MyTurnReady:
		return "my_turn.ready"
	case MyTurnCooldown:
		return "my_turn.cooldown"
	case OthersTurnReady:
		return "others_turn.ready"
	case OthersTurnCooldown:
		return "others_turn.cooldown"
	default:
		return "inactive"
	}
}

// Derive maps (session, viewer, now) to a display state. Varying now
// only toggles the cooldown sub-state; the turn holder comes from
// CurrentTurnUserID alone, never from the historical order fields.
func Derive(session *domain.TurnSession, viewerID string, now time.Time) State {
	if session == nil || !session.IsActive {
		return Inactive
	}

	mine := session.CurrentTurnUserID != "" && session.CurrentTurnUserID == viewerID
	cooling := session.InCooldown(now)

	switch {
	case mine && cooling:
		return MyTurnCooldown
	case mine:
		return MyTurnReady
	case cooling:
		return OthersTurnCooldown
	default:
		return OthersTurnReady
	}
}
