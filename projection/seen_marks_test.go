package projection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"turnroom/domain"
)

func TestSeenBoundaries_MarkerOnlyAtRunEnd(t *testing.T) {
	msgs := []domain.Message{
		msg("a", "user1", domain.KindChat, at(10, 0)),
		msg("b", "user1", domain.KindChat, at(10, 1)),
		msg("c", "user2", domain.KindChat, at(10, 2)),
		msg("d", "user2", domain.KindChat, at(10, 3)),
	}
	counts := map[string]int{"a": 3, "b": 3, "c": 3, "d": 1}
	countOf := func(id string) (int, bool) {
		c, ok := counts[id]
		return c, ok
	}

	// a and b share count 3 with c: one run a..c, marker at c only;
	// d starts a new run and is last.
	require.Equal(t, []bool{false, false, true, true}, SeenBoundaries(msgs, countOf))
}

func TestSeenBoundaries_UncachedMessagesShowNothing(t *testing.T) {
	msgs := []domain.Message{
		msg("a", "user1", domain.KindChat, at(10, 0)),
		msg("b", "user1", domain.KindChat, at(10, 1)),
	}
	countOf := func(string) (int, bool) { return 0, false }

	require.Equal(t, []bool{false, false}, SeenBoundaries(msgs, countOf))
}

func TestSeenBoundaries_GapInCacheEndsRun(t *testing.T) {
	msgs := []domain.Message{
		msg("a", "user1", domain.KindChat, at(10, 0)),
		msg("b", "user1", domain.KindChat, at(10, 1)),
		msg("c", "user1", domain.KindChat, at(10, 2)),
	}
	counts := map[string]int{"a": 2, "c": 2}
	countOf := func(id string) (int, bool) {
		c, ok := counts[id]
		return c, ok
	}

	require.Equal(t, []bool{true, false, true}, SeenBoundaries(msgs, countOf))
}

func TestAnnotate_CombinesProjections(t *testing.T) {
	msgs := []domain.Message{
		msg("a", "user1", domain.KindChat, at(10, 0)),
		msg("b", "user1", domain.KindChat, at(10, 1)),
	}
	counts := map[string]int{"a": 2, "b": 2}
	countOf := func(id string) (int, bool) {
		c, ok := counts[id]
		return c, ok
	}

	annotated := Annotate(msgs, countOf)
	require.Len(t, annotated, 2)
	require.Equal(t, GroupFirst, annotated[0].Position)
	require.Equal(t, GroupLast, annotated[1].Position)
	require.False(t, annotated[0].ShowSeen)
	require.True(t, annotated[1].ShowSeen)
	require.Equal(t, 2, annotated[1].SeenCount)
}
