// Package seen coalesces message-visibility signals into periodic bulk
// acknowledgements. Visibility arrives in bursts while the user
// scrolls; batching trades one remote call per message for one per
// pause, keeping perceived latency under a second.
package seen

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"turnroom/contract"
	"turnroom/domain"
	"turnroom/projection"
)

const DefaultFlushDelay = 500 * time.Millisecond

// Batcher latches each message as seen at most once, debounces the
// pending set behind an idle timer, and merges returned counts into
// the ephemeral seen cache. The cache is not persisted across reloads.
type Batcher struct {
	mu       sync.Mutex
	log      *slog.Logger
	port     contract.IDataPort
	delay    time.Duration
	timer    *time.Timer
	pending  map[string]struct{}
	latched  map[string]struct{}
	counts   map[string]int
	notifier *projection.Notifier
}

func NewBatcher(log *slog.Logger, port contract.IDataPort, delay time.Duration, notifier *projection.Notifier) *Batcher {
	if delay <= 0 {
		delay = DefaultFlushDelay
	}
	return &Batcher{
		log:      log,
		port:     port,
		delay:    delay,
		pending:  make(map[string]struct{}),
		latched:  make(map[string]struct{}),
		counts:   make(map[string]int),
		notifier: notifier,
	}
}

// MarkVisible records that a message entered the viewport and restarts
// the idle timer. A message already latched is ignored: each one is
// signaled upstream at most once per session.
func (b *Batcher) MarkVisible(messageID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, done := b.latched[messageID]; done {
		return
	}
	b.latched[messageID] = struct{}{}
	b.pending[messageID] = struct{}{}

	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.delay, b.flush)
}

// Flush forces the pending set out immediately, for teardown.
func (b *Batcher) Flush() {
	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.mu.Unlock()
	b.flush()
}

// flush swaps the pending set out under the lock before issuing the
// remote call, so signals arriving mid-call start a fresh batch rather
// than being lost.
func (b *Batcher) flush() {
	b.mu.Lock()
	if len(b.pending) == 0 {
		b.mu.Unlock()
		return
	}
	batch := make([]string, 0, len(b.pending))
	for id := range b.pending {
		batch = append(batch, id)
	}
	b.pending = make(map[string]struct{})
	b.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := b.port.MarkSeen(ctx, batch); err != nil {
		b.log.Warn("Seen batch failed", "size", len(batch), "error", err)
		return
	}

	counts, err := b.port.GetSeenCounts(ctx, batch)
	if err != nil {
		b.log.Warn("Seen count refresh failed", "error", err)
		return
	}
	b.Merge(counts)
}

// Merge folds fetched counts into the cache. Also used by the baseline
// snapshot and by history paging.
func (b *Batcher) Merge(counts []domain.SeenCount) {
	b.mu.Lock()
	for _, c := range counts {
		b.counts[c.MessageID] = c.Count
	}
	b.mu.Unlock()
	b.notifier.Notify()
}

// Count resolves the cached seen count of one message.
func (b *Batcher) Count(messageID string) (int, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	c, ok := b.counts[messageID]
	return c, ok
}
