package turn

import (
	"log/slog"
	"sync"

	"turnroom/domain"
	"turnroom/projection"
)

// SessionHolder keeps the authoritative session record for one room.
// Every session event replaces it wholesale; an inactive or absent
// record clears it. The holder also scopes the once-per-turn nudge
// latch to the current turn instance.
type SessionHolder struct {
	mu             sync.RWMutex
	log            *slog.Logger
	session        *domain.TurnSession
	nudgedInstance string
	notifier       *projection.Notifier
}

func NewSessionHolder(log *slog.Logger, notifier *projection.Notifier) *SessionHolder {
	return &SessionHolder{log: log, notifier: notifier}
}

// Replace installs the new record. Inactive sessions are treated as
// absent.
func (h *SessionHolder) Replace(session *domain.TurnSession) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if session == nil || !session.IsActive {
		h.session = nil
		h.notifier.Notify()
		return
	}
	copied := *session
	h.session = &copied
	h.notifier.Notify()
}

// Current returns a copy of the session, or nil when absent.
func (h *SessionHolder) Current() *domain.TurnSession {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.session == nil {
		return nil
	}
	copied := *h.session
	return &copied
}

// CanNudge reports whether the viewer may still nudge the turn holder
// within the current turn instance. Eligibility resets whenever the
// instance id changes.
func (h *SessionHolder) CanNudge() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.session != nil &&
		h.session.TurnInstanceID != "" &&
		h.session.TurnInstanceID != h.nudgedInstance
}

// MarkNudged latches the current turn instance.
func (h *SessionHolder) MarkNudged() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.session != nil {
		h.nudgedInstance = h.session.TurnInstanceID
	}
}
