package projection

import (
	"time"

	"turnroom/domain"
)

// GroupPosition drives avatar/name suppression and bubble corners for
// one message relative to its visual group.
type GroupPosition string

const (
	GroupSingle GroupPosition = "single"
	GroupFirst  GroupPosition = "first"
	GroupMiddle GroupPosition = "middle"
	GroupLast   GroupPosition = "last"
)

// Two consecutive messages group together when the gap between them
// stays within this window.
const groupWindow = 5 * time.Minute

// sameGroup reports whether b visually continues a's group: same
// author, neither a system message, gap within the window.
func sameGroup(a, b domain.Message) bool {
	if a.IsSystem() || b.IsSystem() {
		return false
	}
	if a.AuthorID == "" || a.AuthorID != b.AuthorID {
		return false
	}
	return b.CreatedAt.Sub(a.CreatedAt) <= groupWindow
}

// GroupPositions computes the position of every message from its
// neighbors. Purely derived, recomputed on read, never stored.
func GroupPositions(msgs []domain.Message) []GroupPosition {
	out := make([]GroupPosition, len(msgs))
	for i := range msgs {
		joinsPrev := i > 0 && sameGroup(msgs[i-1], msgs[i])
		joinsNext := i < len(msgs)-1 && sameGroup(msgs[i], msgs[i+1])
		switch {
		case joinsPrev && joinsNext:
			out[i] = GroupMiddle
		case joinsNext:
			out[i] = GroupFirst
		case joinsPrev:
			out[i] = GroupLast
		default:
			out[i] = GroupSingle
		}
	}
	return out
}
