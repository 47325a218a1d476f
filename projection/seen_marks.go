package projection

import "turnroom/domain"

// SeenBoundaries reports, per message, whether its "seen by N" marker
// should be rendered. A marker shows only at the last message of a
// contiguous run sharing the same seen count, so a stretch of messages
// all seen by the same people carries a single marker instead of one
// per bubble.
func SeenBoundaries(msgs []domain.Message, countOf func(messageID string) (int, bool)) []bool {
	out := make([]bool, len(msgs))
	for i, m := range msgs {
		count, ok := countOf(m.ID)
		if !ok || count == 0 {
			continue
		}
		if i == len(msgs)-1 {
			out[i] = true
			continue
		}
		next, nextOK := countOf(msgs[i+1].ID)
		out[i] = !nextOK || next != count
	}
	return out
}
