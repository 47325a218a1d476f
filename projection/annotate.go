package projection

import "turnroom/domain"

// AnnotatedMessage is the read model handed to the presentation layer:
// the record plus its derived group position and seen marker.
type AnnotatedMessage struct {
	domain.Message
	Position  GroupPosition
	SeenCount int
	ShowSeen  bool
}

// Annotate combines the grouping and seen-boundary projections over an
// ordered message list. countOf resolves the ephemeral seen cache;
// messages without a cached count never show a marker.
func Annotate(msgs []domain.Message, countOf func(messageID string) (int, bool)) []AnnotatedMessage {
	positions := GroupPositions(msgs)
	boundaries := SeenBoundaries(msgs, countOf)

	out := make([]AnnotatedMessage, len(msgs))
	for i, m := range msgs {
		count, _ := countOf(m.ID)
		out[i] = AnnotatedMessage{
			Message:   m,
			Position:  positions[i],
			SeenCount: count,
			ShowSeen:  boundaries[i],
		}
	}
	return out
}
