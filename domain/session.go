package domain

import "time"

type PromptType string

const (
	PromptText  PromptType = "text"
	PromptPhoto PromptType = "photo"
)

// TurnSession is the authoritative turn-game record, singleton per
// room, replaced wholesale on every session event.
//
// CurrentTurnUserID is the source of truth for whose turn it is.
// TurnOrder and CurrentTurnIndex survive from an earlier schema and are
// informational only: they must never be used to recompute the turn
// holder locally.
type TurnSession struct {
	RoomID            string     `json:"room_id"`
	PromptText        string     `json:"prompt_text"`
	PromptType        PromptType `json:"prompt_type"`
	TurnOrder         []string   `json:"turn_order"`
	CurrentTurnIndex  int        `json:"current_turn_index"`
	CurrentTurnUserID string     `json:"current_turn_user_id,omitempty"`
	TurnInstanceID    string     `json:"turn_instance_id,omitempty"`
	IsActive          bool       `json:"is_active"`
	WaitingUntil      *time.Time `json:"waiting_until,omitempty"`
}

// InCooldown reports whether the turn holder must still wait before
// acting.
func (s TurnSession) InCooldown(now time.Time) bool {
	return s.WaitingUntil != nil && s.WaitingUntil.After(now)
}
