// Package presence maintains the best-effort online set of a room.
// The set is derived purely from live presence signals and is never
// durable: a reconnect delivers a fresh sync that replaces it in full,
// so stale entries cannot outlive one reconnect cycle.
package presence

import (
	"log/slog"
	"sort"
	"sync"

	"turnroom/projection"
)

type Tracker struct {
	mu       sync.RWMutex
	log      *slog.Logger
	online   map[string]struct{}
	notifier *projection.Notifier
}

func NewTracker(log *slog.Logger, notifier *projection.Notifier) *Tracker {
	return &Tracker{
		log:      log,
		online:   make(map[string]struct{}),
		notifier: notifier,
	}
}

// Sync replaces the whole set with the ids currently connected.
func (t *Tracker) Sync(userIDs []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.online = make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		t.online[id] = struct{}{}
	}
	t.notifier.Notify()
}

func (t *Tracker) Join(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.online[userID] = struct{}{}
	t.notifier.Notify()
}

func (t *Tracker) Leave(userID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.online, userID)
	t.notifier.Notify()
}

// Online returns the connected user ids, sorted for stable rendering.
func (t *Tracker) Online() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]string, 0, len(t.online))
	for id := range t.online {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

func (t *Tracker) IsOnline(userID string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.online[userID]
	return ok
}
