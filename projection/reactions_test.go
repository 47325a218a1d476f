package projection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"turnroom/domain"
)

func TestReactionSet_ToggleLocalAndReconcile(t *testing.T) {
	req := require.New(t)
	set := NewReactionSet(testLog, NewNotifier())

	echo := domain.Reaction{MessageID: "m1", UserID: "alice", Emoji: "🔥"}
	req.True(set.ToggleLocal(echo))
	req.Len(set.For("m1"), 1)

	// The authoritative event for the same mark adopts the row id
	// instead of duplicating.
	set.ApplyInsert(domain.Reaction{ID: "r1", MessageID: "m1", UserID: "alice", Emoji: "🔥"})
	marks := set.For("m1")
	req.Len(marks, 1)
	req.Equal("r1", marks[0].ID)

	// Toggling again removes, and the delete event is then a no-op.
	req.False(set.ToggleLocal(echo))
	set.ApplyDelete(domain.Reaction{ID: "r1", MessageID: "m1", UserID: "alice", Emoji: "🔥"})
	req.Empty(set.For("m1"))
}

func TestReactionSet_DistinctEmojiPerUser(t *testing.T) {
	set := NewReactionSet(testLog, NewNotifier())

	set.ApplyInsert(domain.Reaction{ID: "r1", MessageID: "m1", UserID: "alice", Emoji: "🔥"})
	set.ApplyInsert(domain.Reaction{ID: "r2", MessageID: "m1", UserID: "alice", Emoji: "❤️"})
	set.ApplyInsert(domain.Reaction{ID: "r3", MessageID: "m1", UserID: "bob", Emoji: "🔥"})

	require.Len(t, set.For("m1"), 3)
	require.Equal(t, []string{"🔥", "❤️"}, set.Emojis("m1"))
}

func TestReactionSet_DuplicateEventIgnored(t *testing.T) {
	set := NewReactionSet(testLog, NewNotifier())
	mark := domain.Reaction{ID: "r1", MessageID: "m1", UserID: "alice", Emoji: "🔥"}

	set.ApplyInsert(mark)
	set.ApplyInsert(mark)
	require.Len(t, set.For("m1"), 1)
}
