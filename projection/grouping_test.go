package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"turnroom/domain"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 1, hour, minute, 0, 0, time.UTC)
}

func msg(id, author string, kind domain.MessageKind, created time.Time) domain.Message {
	return domain.Message{ID: id, RoomID: "room-1", AuthorID: author, Kind: kind, Content: id, CreatedAt: created}
}

func TestGroupPositions_SameAuthorWithinWindow(t *testing.T) {
	msgs := []domain.Message{
		msg("a", "user1", domain.KindChat, at(10, 0)),
		msg("b", "user1", domain.KindChat, at(10, 4)),
		msg("c", "user1", domain.KindChat, at(10, 8)),
	}
	require.Equal(t,
		[]GroupPosition{GroupFirst, GroupMiddle, GroupLast},
		GroupPositions(msgs))
}

func TestGroupPositions_SystemMessageBreaksGroup(t *testing.T) {
	msgs := []domain.Message{
		msg("a", "user1", domain.KindChat, at(10, 0)),
		msg("sys", "", domain.KindSystem, at(10, 2)),
		msg("b", "user1", domain.KindChat, at(10, 4)),
		msg("c", "user1", domain.KindChat, at(10, 8)),
	}
	require.Equal(t,
		[]GroupPosition{GroupSingle, GroupSingle, GroupFirst, GroupLast},
		GroupPositions(msgs))
}

func TestGroupPositions_TimeGapBreaksGroup(t *testing.T) {
	// A@10:00 and B@10:01 group; C@10:06 breaks on the five-minute gap.
	msgs := []domain.Message{
		msg("a", "user1", domain.KindChat, at(10, 0)),
		msg("b", "user1", domain.KindChat, at(10, 1)),
		msg("c", "user1", domain.KindChat, at(10, 6)),
	}
	require.Equal(t,
		[]GroupPosition{GroupFirst, GroupLast, GroupSingle},
		GroupPositions(msgs))
}

func TestGroupPositions_AuthorChangeBreaksGroup(t *testing.T) {
	msgs := []domain.Message{
		msg("a", "user1", domain.KindChat, at(10, 0)),
		msg("b", "user2", domain.KindChat, at(10, 1)),
		msg("c", "user2", domain.KindChat, at(10, 2)),
	}
	require.Equal(t,
		[]GroupPosition{GroupSingle, GroupFirst, GroupLast},
		GroupPositions(msgs))
}

func TestGroupPositions_Empty(t *testing.T) {
	require.Empty(t, GroupPositions(nil))
}
