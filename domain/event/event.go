// Package event defines the typed change notifications delivered by
// the backend event stream, one topic per concern. Streams are
// independent: no cross-topic ordering exists or is assumed.
package event

import (
	"turnroom/domain"
)

type Topic string

const (
	TopicMessages    Topic = "messages"
	TopicReactions   Topic = "reactions"
	TopicTurnSession Topic = "turn_session"
	TopicMembers     Topic = "members"
	TopicPresence    Topic = "presence"
)

// Kind is the raw change kind carried on the wire.
type Kind string

const (
	KindInsert Kind = "insert"
	KindUpdate Kind = "update"
	KindDelete Kind = "delete"
)

// StreamEvent is a decoded change notification.
type StreamEvent interface {
	Topic() Topic
}

type MessageInserted struct {
	Message domain.Message
}

func (MessageInserted) Topic() Topic { return TopicMessages }

type MessageDeleted struct {
	MessageID string
}

func (MessageDeleted) Topic() Topic { return TopicMessages }

type ReactionInserted struct {
	Reaction domain.Reaction
}

func (ReactionInserted) Topic() Topic { return TopicReactions }

type ReactionDeleted struct {
	Reaction domain.Reaction
}

func (ReactionDeleted) Topic() Topic { return TopicReactions }

// SessionChanged replaces the local turn session wholesale. A nil or
// inactive session clears it.
type SessionChanged struct {
	Session *domain.TurnSession
}

func (SessionChanged) Topic() Topic { return TopicTurnSession }

type MemberJoined struct {
	Member domain.Member
}

func (MemberJoined) Topic() Topic { return TopicMembers }

type MemberLeft struct {
	UserID string
}

func (MemberLeft) Topic() Topic { return TopicMembers }

// PresenceSynced carries the full online set; it replaces any previous
// set so stale entries cannot outlive a reconnect.
type PresenceSynced struct {
	UserIDs []string
}

func (PresenceSynced) Topic() Topic { return TopicPresence }

type PresenceJoined struct {
	UserID string
}

func (PresenceJoined) Topic() Topic { return TopicPresence }

type PresenceLeft struct {
	UserID string
}

func (PresenceLeft) Topic() Topic { return TopicPresence }
