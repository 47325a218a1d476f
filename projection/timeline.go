// Package projection builds the local read models of a room from
// baseline fetches and observed stream events. It owns ordering,
// optimistic-entry bookkeeping, and deduplication. It does not emit
// events or talk to the backend itself.
package projection

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"turnroom/domain"
	"turnroom/errors"
)

// Timeline owns the ordered message list of one room.
//
// Invariants:
//   - messages are always sorted ascending by CreatedAt, ties broken by
//     arrival order (the sort is stable and recomputed on every
//     mutation, which makes out-of-order arrival harmless);
//   - at most one optimistic entry and one confirmed entry ever
//     represent the same logical send, and once confirmed the
//     optimistic entry is gone.
type Timeline struct {
	mu       sync.RWMutex
	log      *slog.Logger
	roomID   string
	pageSize int
	messages []domain.Message
	notifier *Notifier
}

func NewTimeline(log *slog.Logger, roomID string, pageSize int, notifier *Notifier) *Timeline {
	return &Timeline{
		log:      log,
		roomID:   roomID,
		pageSize: pageSize,
		messages: nil,
		notifier: notifier,
	}
}

// AppendOptimistic inserts a placeholder for a send in flight and
// returns its local id. Sends always happen at "now", so the entry
// lands at the end.
func (t *Timeline) AppendOptimistic(draft domain.Message) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	draft.ID = domain.NewLocalID()
	draft.RoomID = t.roomID
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = time.Now()
	}
	t.messages = append(t.messages, draft)
	t.resort()
	t.notifier.Notify()
	return draft.ID
}

// ConfirmOrReplace resolves a successful send against the realtime
// echo, whichever arrived first. If the stream already delivered the
// confirmed record, the optimistic entry (when still present) is
// dropped and the delivered record kept; otherwise the optimistic
// entry is replaced in place. When both are gone the completion is a
// late no-op.
func (t *Timeline) ConfirmOrReplace(localID string, record domain.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.indexOf(record.ID) >= 0 {
		if i := t.indexOf(localID); i >= 0 {
			t.remove(i)
			t.notifier.Notify()
		}
		return
	}

	i := t.indexOf(localID)
	if i < 0 {
		// Superseded (matched by an event and already replaced) or
		// explicitly deleted in the meantime.
		t.log.Debug("Send confirmation arrived for a gone optimistic entry", "local_id", localID)
		return
	}
	t.messages[i] = record
	t.resort()
	t.notifier.Notify()
}

// DiscardOptimistic rolls a failed send back to the pre-optimistic
// state. The failure itself is the caller's to surface; nothing is
// retried here.
func (t *Timeline) DiscardOptimistic(localID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(localID)
	if i < 0 {
		return errors.ErrUnknownOptimistic
	}
	t.remove(i)
	t.notifier.Notify()
	return nil
}

// ApplyRemoteInsert folds a stream-delivered message in. Covers
// messages from other participants, this user from another session,
// and the realtime echo of an own send racing its confirmation: an
// echo is matched against the oldest still-unconfirmed optimistic
// entry with the same content, author and room, and adopts its slot.
func (t *Timeline) ApplyRemoteInsert(record domain.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.indexOf(record.ID) >= 0 {
		// The feed may deliver the same event twice.
		return
	}
	if i := t.matchOptimistic(record); i >= 0 {
		t.messages[i] = record
	} else {
		t.messages = append(t.messages, record)
	}
	t.resort()
	t.notifier.Notify()
}

// ApplyRemoteDelete removes a message by id. Unknown ids are ignored.
func (t *Timeline) ApplyRemoteDelete(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		return
	}
	t.remove(i)
	t.notifier.Notify()
}

// PrependPage folds a page of older history in without disturbing
// existing entries (scroll anchoring is the caller's concern). Records
// already present are skipped, so re-fetching an overlapping page is
// idempotent. Reports whether a further page may exist, judged by
// whether this one came back full.
func (t *Timeline) PrependPage(older []domain.Message) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, record := range older {
		if t.indexOf(record.ID) >= 0 {
			continue
		}
		t.messages = append(t.messages, record)
	}
	t.resort()
	t.notifier.Notify()
	return len(older) >= t.pageSize
}

// Messages returns a copy of the ordered list.
func (t *Timeline) Messages() []domain.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]domain.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// IDs returns the confirmed message ids currently on the timeline,
// oldest first. Optimistic entries are excluded: they have no server
// identity yet.
func (t *Timeline) IDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var ids []string
	for _, m := range t.messages {
		if !m.IsOptimistic() {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

// Oldest returns the earliest confirmed timestamp, used as the cursor
// for the next history page.
func (t *Timeline) Oldest() (time.Time, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, m := range t.messages {
		if !m.IsOptimistic() {
			return m.CreatedAt, true
		}
	}
	return time.Time{}, false
}

func (t *Timeline) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}

// resort recomputes the total order. Stable, so equal timestamps keep
// their arrival order. Callers hold the write lock.
func (t *Timeline) resort() {
	sort.SliceStable(t.messages, func(i, j int) bool {
		return t.messages[i].CreatedAt.Before(t.messages[j].CreatedAt)
	})
}

func (t *Timeline) indexOf(id string) int {
	for i, m := range t.messages {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// matchOptimistic finds the oldest optimistic entry representing the
// same logical send as record. Content equality is a heuristic, not a
// strong identity; matching at most one entry (the oldest) keeps rapid
// repeated identical sends from collapsing into a single message.
func (t *Timeline) matchOptimistic(record domain.Message) int {
	for i, m := range t.messages {
		if m.IsOptimistic() &&
			m.Content == record.Content &&
			m.AuthorID == record.AuthorID &&
			m.RoomID == record.RoomID {
			return i
		}
	}
	return -1
}

func (t *Timeline) remove(i int) {
	t.messages = append(t.messages[:i], t.messages[i+1:]...)
}
