package projection

import (
	"log/slog"
	"sync"

	"github.com/samber/lo"

	"turnroom/domain"
)

// ReactionSet mirrors the reactions of a room. The remote toggle call
// is idempotent, so no optimistic phase is strictly required, but a
// local echo is supported and reconciles against the authoritative
// event without duplication.
type ReactionSet struct {
	mu        sync.RWMutex
	log       *slog.Logger
	byMessage map[string][]domain.Reaction
	notifier  *Notifier
}

func NewReactionSet(log *slog.Logger, notifier *Notifier) *ReactionSet {
	return &ReactionSet{
		log:       log,
		byMessage: make(map[string][]domain.Reaction),
		notifier:  notifier,
	}
}

// Load replaces the baseline for the given messages.
func (s *ReactionSet) Load(reactions []domain.Reaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range reactions {
		if s.find(r) < 0 {
			s.byMessage[r.MessageID] = append(s.byMessage[r.MessageID], r)
		}
	}
	s.notifier.Notify()
}

// ApplyInsert folds an authoritative insert in. A local echo of the
// same (message, user, emoji) mark adopts the server row id instead of
// duplicating.
func (s *ReactionSet) ApplyInsert(r domain.Reaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.find(r); i >= 0 {
		s.byMessage[r.MessageID][i] = r
	} else {
		s.byMessage[r.MessageID] = append(s.byMessage[r.MessageID], r)
	}
	s.notifier.Notify()
}

// ApplyDelete removes the matching mark, whether it was created by an
// event or by a local echo.
func (s *ReactionSet) ApplyDelete(r domain.Reaction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.find(r)
	if i < 0 {
		return
	}
	list := s.byMessage[r.MessageID]
	s.byMessage[r.MessageID] = append(list[:i], list[i+1:]...)
	if len(s.byMessage[r.MessageID]) == 0 {
		delete(s.byMessage, r.MessageID)
	}
	s.notifier.Notify()
}

// ToggleLocal applies the optimistic echo of a toggle and reports
// whether the mark is now present. The caller uses the same call to
// roll back on remote failure.
func (s *ReactionSet) ToggleLocal(r domain.Reaction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.find(r); i >= 0 {
		list := s.byMessage[r.MessageID]
		s.byMessage[r.MessageID] = append(list[:i], list[i+1:]...)
		s.notifier.Notify()
		return false
	}
	s.byMessage[r.MessageID] = append(s.byMessage[r.MessageID], r)
	s.notifier.Notify()
	return true
}

// For returns a copy of the reactions on one message.
func (s *ReactionSet) For(messageID string) []domain.Reaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list, ok := s.byMessage[messageID]
	if !ok {
		return nil
	}
	out := make([]domain.Reaction, len(list))
	copy(out, list)
	return out
}

// Emojis returns the distinct emoji on a message, insertion-ordered.
func (s *ReactionSet) Emojis(messageID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Uniq(lo.Map(s.byMessage[messageID], func(r domain.Reaction, _ int) string {
		return r.Emoji
	}))
}

// find matches by logical identity, not by row id: a local echo has no
// server id yet. Callers hold the lock.
func (s *ReactionSet) find(r domain.Reaction) int {
	for i, existing := range s.byMessage[r.MessageID] {
		if existing.Same(r) {
			return i
		}
	}
	return -1
}
