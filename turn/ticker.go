package turn

import (
	"context"
	"log/slog"
	"time"

	"turnroom/projection"
)

const defaultRecheckInterval = time.Minute

// CooldownTicker re-signals the render loop once per minute while a
// cooldown window is set, so eligibility is re-derived when the window
// expires. Expiry is time-based, not event-based: no stream event
// arrives when WaitingUntil passes.
type CooldownTicker struct {
	log      *slog.Logger
	holder   *SessionHolder
	interval time.Duration
	notifier *projection.Notifier
}

func NewCooldownTicker(log *slog.Logger, holder *SessionHolder, interval time.Duration, notifier *projection.Notifier) *CooldownTicker {
	if interval <= 0 {
		interval = defaultRecheckInterval
	}
	return &CooldownTicker{log: log, holder: holder, interval: interval, notifier: notifier}
}

func (t *CooldownTicker) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			session := t.holder.Current()
			if session == nil || session.WaitingUntil == nil {
				continue
			}
			t.notifier.Notify()
		}
	}
}
