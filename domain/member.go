package domain

import "time"

// User is the viewer identity supplied by the identity gateway.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Member is one roster entry for a room. The roster is durable and
// event-sourced; the online set lives in the presence tracker instead.
type Member struct {
	UserID      string    `json:"user_id"`
	RoomID      string    `json:"room_id"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	JoinedAt    time.Time `json:"joined_at"`
}

// Placeholder identity used while an author's profile fetch is still in
// flight.
func PlaceholderMember(userID, roomID string) Member {
	return Member{UserID: userID, RoomID: roomID, DisplayName: "Member"}
}

// SeenCount is one entry of the ephemeral seen cache.
type SeenCount struct {
	MessageID string `json:"message_id"`
	Count     int    `json:"count"`
}
