package projection

import (
	"context"
	"log/slog"
	"sync"

	"turnroom/contract"
	"turnroom/domain"
)

// Roster holds the durable membership of a room. Authors unknown to
// the roster trigger an asynchronous profile fetch; until it lands,
// reads return a neutral placeholder so message display is never
// blocked on identity.
type Roster struct {
	mu       sync.RWMutex
	log      *slog.Logger
	roomID   string
	port     contract.IDataPort
	members  map[string]domain.Member
	pending  map[string]struct{}
	notifier *Notifier
}

func NewRoster(log *slog.Logger, roomID string, port contract.IDataPort, notifier *Notifier) *Roster {
	return &Roster{
		log:      log,
		roomID:   roomID,
		port:     port,
		members:  make(map[string]domain.Member),
		pending:  make(map[string]struct{}),
		notifier: notifier,
	}
}

// Load replaces the baseline membership.
func (r *Roster) Load(members []domain.Member) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range members {
		r.members[m.UserID] = m
	}
	r.notifier.Notify()
}

// Get resolves a user id to a roster entry, falling back to a
// placeholder while the profile is unknown.
func (r *Roster) Get(userID string) domain.Member {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if m, ok := r.members[userID]; ok {
		return m
	}
	return domain.PlaceholderMember(userID, r.roomID)
}

// Known reports whether the roster already carries a real entry.
func (r *Roster) Known(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.members[userID]
	return ok
}

// Members returns a copy of the roster.
func (r *Roster) Members() []domain.Member {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Member, 0, len(r.members))
	for _, m := range r.members {
		out = append(out, m)
	}
	return out
}

// ApplyJoin folds a membership insert event in.
func (r *Roster) ApplyJoin(m domain.Member) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.members[m.UserID] = m
	r.notifier.Notify()
}

// ApplyLeave removes a member.
func (r *Roster) ApplyLeave(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.members, userID)
	r.notifier.Notify()
}

// EnsureKnown starts an asynchronous profile fetch for an unknown user
// id. At most one fetch per id is in flight; a failed fetch is logged
// and the id becomes eligible again.
func (r *Roster) EnsureKnown(ctx context.Context, userID string) {
	if userID == "" {
		return
	}

	r.mu.Lock()
	if _, known := r.members[userID]; known {
		r.mu.Unlock()
		return
	}
	if _, inFlight := r.pending[userID]; inFlight {
		r.mu.Unlock()
		return
	}
	r.pending[userID] = struct{}{}
	r.mu.Unlock()

	go func() {
		member, err := r.port.FetchProfile(ctx, userID)

		r.mu.Lock()
		delete(r.pending, userID)
		if err != nil {
			r.mu.Unlock()
			r.log.Warn("Profile fetch failed", "user_id", userID, "error", err)
			return
		}
		member.RoomID = r.roomID
		r.members[userID] = member
		r.mu.Unlock()
		r.notifier.Notify()
	}()
}
