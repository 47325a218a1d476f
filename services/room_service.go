//go:generate go run go.uber.org/mock/mockgen -source=room_service.go -destination=../mocks/mock_room_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"

	"turnroom/contract"
	"turnroom/domain"
	"turnroom/errors"
	"turnroom/presence"
	"turnroom/projection"
	"turnroom/seen"
	"turnroom/turn"
)

// IRoomService is the imperative surface exposed to the presentation
// layer. Reads come from Snapshot/TurnState/Online; everything else is
// an action.
type IRoomService interface {
	Open(ctx context.Context) error
	Send(ctx context.Context, content, replyToID string) error
	React(ctx context.Context, messageID, emoji string) error
	SubmitText(ctx context.Context, text string) error
	SubmitPhoto(ctx context.Context, image []byte, imageURL string) error
	Nudge(ctx context.Context) error
	MarkVisible(messageID string)
	LoadOlderPage(ctx context.Context) (bool, error)
	Snapshot() []projection.AnnotatedMessage
	TurnState(now time.Time) turn.State
	Online() []string
	Changed() <-chan struct{}
	Close()
}

type sendRequest struct {
	Content string `validate:"required,max=4000"`
}

const maxImageBytes = 10 << 20

// RoomService coordinates the local stores and the data port for one
// open room view.
type RoomService struct {
	log      *slog.Logger
	user     domain.User
	roomID   string
	port     contract.IDataPort
	timeline *projection.Timeline
	reacts   *projection.ReactionSet
	roster   *projection.Roster
	session  *turn.SessionHolder
	presence *presence.Tracker
	batcher  *seen.Batcher
	notifier *projection.Notifier
	pageSize int
	hasMore  bool
	validate *validator.Validate
}

func NewRoomService(
	log *slog.Logger,
	user domain.User,
	roomID string,
	port contract.IDataPort,
	timeline *projection.Timeline,
	reacts *projection.ReactionSet,
	roster *projection.Roster,
	session *turn.SessionHolder,
	tracker *presence.Tracker,
	batcher *seen.Batcher,
	notifier *projection.Notifier,
	pageSize int,
) *RoomService {
	return &RoomService{
		log:      log,
		user:     user,
		roomID:   roomID,
		port:     port,
		timeline: timeline,
		reacts:   reacts,
		roster:   roster,
		session:  session,
		presence: tracker,
		batcher:  batcher,
		notifier: notifier,
		pageSize: pageSize,
		validate: validator.New(),
	}
}

// Open loads the baseline snapshot: latest message page, reactions and
// seen counts for that page, the roster, and the turn session. The
// snapshot is what makes no-retry stream failure acceptable.
func (s *RoomService) Open(ctx context.Context) error {
	page, err := s.port.FetchMessages(ctx, s.roomID, nil, s.pageSize)
	if err != nil {
		return fmt.Errorf("baseline message fetch: %w", err)
	}
	s.hasMore = s.timeline.PrependPage(page)

	ids := s.timeline.IDs()
	if len(ids) > 0 {
		if reactions, err := s.port.FetchReactions(ctx, ids); err == nil {
			s.reacts.Load(reactions)
		} else {
			s.log.Warn("Baseline reaction fetch failed", "error", err)
		}
		if counts, err := s.port.GetSeenCounts(ctx, ids); err == nil {
			s.batcher.Merge(counts)
		} else {
			s.log.Warn("Baseline seen-count fetch failed", "error", err)
		}
	}

	members, err := s.port.FetchMembers(ctx, s.roomID)
	if err != nil {
		return fmt.Errorf("baseline member fetch: %w", err)
	}
	s.roster.Load(members)

	session, err := s.port.FetchTurnSession(ctx, s.roomID)
	if err != nil {
		return fmt.Errorf("baseline session fetch: %w", err)
	}
	s.session.Replace(session)
	return nil
}

// Send posts a chat message through the optimistic lifecycle: insert a
// placeholder, call the backend, then confirm or roll back. Failure is
// surfaced to the caller, never retried automatically.
func (s *RoomService) Send(ctx context.Context, content, replyToID string) error {
	if err := s.checkContent(content); err != nil {
		return err
	}

	draft := domain.Message{
		RoomID:    s.roomID,
		AuthorID:  s.user.ID,
		Kind:      domain.KindChat,
		Content:   content,
		ReplyToID: replyToID,
		CreatedAt: time.Now(),
	}
	localID := s.timeline.AppendOptimistic(draft)

	record, err := s.port.SendMessage(ctx, draft)
	if err != nil {
		if dErr := s.timeline.DiscardOptimistic(localID); dErr != nil {
			s.log.Debug("Optimistic entry already gone on rollback", "local_id", localID)
		}
		return fmt.Errorf("send rejected: %w", err)
	}
	s.timeline.ConfirmOrReplace(localID, record)
	return nil
}

// React toggles an emoji with a local echo; the remote call is
// idempotent, and a failure rolls the echo back.
func (s *RoomService) React(ctx context.Context, messageID, emoji string) error {
	mark := domain.Reaction{MessageID: messageID, UserID: s.user.ID, Emoji: emoji}
	s.reacts.ToggleLocal(mark)

	if err := s.port.ToggleReaction(ctx, messageID, emoji); err != nil {
		s.reacts.ToggleLocal(mark)
		return fmt.Errorf("reaction rejected: %w", err)
	}
	return nil
}

// SubmitText answers a text prompt. Valid only in my_turn.ready;
// prompt-type mismatch is the backend's call to reject, not ours to
// pre-validate beyond UI affordance.
func (s *RoomService) SubmitText(ctx context.Context, text string) error {
	if err := s.requireMyTurn(); err != nil {
		return err
	}
	if err := s.checkContent(text); err != nil {
		return err
	}
	if err := s.port.SubmitTurn(ctx, s.roomID, text); err != nil {
		return fmt.Errorf("turn submission rejected: %w", err)
	}
	s.notifyNext(ctx)
	return nil
}

// SubmitPhoto answers a photo prompt with an already-uploaded image.
// The bytes are sniffed locally so a non-image never reaches the
// backend; the upload itself belongs to the object-storage layer.
func (s *RoomService) SubmitPhoto(ctx context.Context, image []byte, imageURL string) error {
	if err := s.requireMyTurn(); err != nil {
		return err
	}
	if len(image) > maxImageBytes {
		return errors.ErrImageTooLarge
	}
	if kind := mimetype.Detect(image); !strings.HasPrefix(kind.String(), "image/") {
		return errors.ErrNotAnImage
	}
	if err := s.port.SubmitPhotoTurn(ctx, s.roomID, imageURL); err != nil {
		return fmt.Errorf("photo turn rejected: %w", err)
	}
	s.notifyNext(ctx)
	return nil
}

// Nudge pokes the current turn holder, at most once per turn instance.
// Dispatch is advisory: a remote failure is swallowed, the latch holds
// either way.
func (s *RoomService) Nudge(ctx context.Context) error {
	session := s.session.Current()
	if session == nil {
		return errors.ErrNoActiveSession
	}
	if !s.session.CanNudge() {
		return errors.ErrAlreadyNudged
	}
	s.session.MarkNudged()

	if err := s.port.Nudge(ctx, s.roomID, session.CurrentTurnUserID); err != nil {
		s.log.Debug("Nudge dispatch failed", "error", err)
	}
	return nil
}

// MarkVisible reports a viewport intersection to the seen batcher.
func (s *RoomService) MarkVisible(messageID string) {
	s.batcher.MarkVisible(messageID)
}

// LoadOlderPage pages history in before the current earliest message
// and reports whether a further page may exist. Scroll anchoring by
// height delta stays with the caller.
func (s *RoomService) LoadOlderPage(ctx context.Context) (bool, error) {
	if !s.hasMore {
		return false, nil
	}
	before, ok := s.timeline.Oldest()
	if !ok {
		return false, nil
	}

	page, err := s.port.FetchMessages(ctx, s.roomID, &before, s.pageSize)
	if err != nil {
		return true, fmt.Errorf("history page fetch: %w", err)
	}
	s.hasMore = s.timeline.PrependPage(page)

	if ids := pageIDs(page); len(ids) > 0 {
		if reactions, err := s.port.FetchReactions(ctx, ids); err == nil {
			s.reacts.Load(reactions)
		}
		if counts, err := s.port.GetSeenCounts(ctx, ids); err == nil {
			s.batcher.Merge(counts)
		}
	}
	return s.hasMore, nil
}

// Snapshot returns the annotated, ordered read model.
func (s *RoomService) Snapshot() []projection.AnnotatedMessage {
	return projection.Annotate(s.timeline.Messages(), s.batcher.Count)
}

// TurnState derives the current display state for the viewer.
func (s *RoomService) TurnState(now time.Time) turn.State {
	return turn.Derive(s.session.Current(), s.user.ID, now)
}

// Online returns the presence set.
func (s *RoomService) Online() []string {
	return s.presence.Online()
}

// Member resolves an author id for display.
func (s *RoomService) Member(userID string) domain.Member {
	return s.roster.Get(userID)
}

// Reactions returns the marks on one message.
func (s *RoomService) Reactions(messageID string) []domain.Reaction {
	return s.reacts.For(messageID)
}

// Changed is the coalesced render signal.
func (s *RoomService) Changed() <-chan struct{} {
	return s.notifier.Wait()
}

// Close flushes what is still pending. Stream teardown is the
// supervisor's job.
func (s *RoomService) Close() {
	s.batcher.Flush()
}

func (s *RoomService) requireMyTurn() error {
	switch s.TurnState(time.Now()) {
	case turn.MyTurnReady:
		return nil
	case turn.MyTurnCooldown:
		return errors.ErrCooldownActive
	case turn.Inactive:
		return errors.ErrNoActiveSession
	default:
		return errors.ErrNotYourTurn
	}
}

func (s *RoomService) checkContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errors.ErrEmptyMessage
	}
	if err := s.validate.Struct(sendRequest{Content: content}); err != nil {
		return errors.ErrContentTooLong
	}
	return nil
}

// notifyNext fires the advisory next-turn notification. Failure is
// swallowed: the signal is not required for correctness.
func (s *RoomService) notifyNext(ctx context.Context) {
	if err := s.port.NotifyNextTurn(ctx, s.roomID); err != nil {
		s.log.Debug("Next-turn notification failed", "error", err)
	}
}

func pageIDs(page []domain.Message) []string {
	ids := make([]string, 0, len(page))
	for _, m := range page {
		ids = append(ids, m.ID)
	}
	return ids
}
