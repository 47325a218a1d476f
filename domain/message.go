// Package domain contains core concepts of the room engine.
// This file defines Message records and related rules.
// Messages are immutable once inserted; only their position in
// derived groupings changes.
package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalIDPrefix marks optimistic entries. Ids carrying this prefix are
// never sent upstream; they exist only until the send is confirmed or
// discarded.
const LocalIDPrefix = "local-"

type MessageKind string

const (
	KindChat         MessageKind = "chat"
	KindTurnResponse MessageKind = "turn_response"
	KindSystem       MessageKind = "system"
	KindImage        MessageKind = "image"
)

// Message represents one timeline entry.
type Message struct {
	ID        string      `json:"id"`
	RoomID    string      `json:"room_id"`
	AuthorID  string      `json:"author_id,omitempty"` // empty for system messages
	Kind      MessageKind `json:"kind"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
	ReplyToID string      `json:"reply_to_id,omitempty"`
}

// NewLocalID mints an optimistic id.
func NewLocalID() string {
	return LocalIDPrefix + uuid.NewString()
}

// IsOptimistic reports whether the message is a local placeholder
// awaiting confirmation.
func (m Message) IsOptimistic() bool {
	return strings.HasPrefix(m.ID, LocalIDPrefix)
}

// IsSystem reports whether the message was emitted by the platform
// rather than a participant. System messages never group with their
// neighbors.
func (m Message) IsSystem() bool {
	return m.Kind == KindSystem
}

// PhotoPayload is the structured content of a photo turn response.
type PhotoPayload struct {
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption,omitempty"`
}

// PhotoContent attempts to read the message content as a photo payload.
// Turn responses carry either plain text or a JSON photo payload; the
// record shape does not distinguish them, so this is an explicit
// parse-or-fallback, never a type assumption.
func (m Message) PhotoContent() (PhotoPayload, bool) {
	if m.Kind != KindTurnResponse && m.Kind != KindImage {
		return PhotoPayload{}, false
	}
	var p PhotoPayload
	if err := json.Unmarshal([]byte(m.Content), &p); err != nil || p.ImageURL == "" {
		return PhotoPayload{}, false
	}
	return p, true
}
