package domain

// Reaction is one (user, emoji) mark on a message. The same user may
// react with several distinct emoji; toggling an existing pair removes
// it.
type Reaction struct {
	ID        string `json:"id"`
	MessageID string `json:"message_id"`
	UserID    string `json:"user_id"`
	Emoji     string `json:"emoji"`
}

// Same reports whether two reactions denote the same logical mark,
// regardless of the server-assigned row id.
func (r Reaction) Same(other Reaction) bool {
	return r.MessageID == other.MessageID &&
		r.UserID == other.UserID &&
		r.Emoji == other.Emoji
}
