package runtime

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"turnroom/domain"
	"turnroom/domain/event"
	"turnroom/mocks"
	"turnroom/presence"
	"turnroom/projection"
	"turnroom/turn"
)

var testLog = slog.Default()

type fixture struct {
	reconciler *Reconciler
	timeline   *projection.Timeline
	reacts     *projection.ReactionSet
	roster     *projection.Roster
	session    *turn.SessionHolder
	tracker    *presence.Tracker
	feeds      map[event.Topic]chan event.StreamEvent
}

func newFixture(t *testing.T, port *mocks.MockIDataPort, stream *mocks.MockIEventStream) *fixture {
	t.Helper()
	notifier := projection.NewNotifier()

	f := &fixture{
		timeline: projection.NewTimeline(testLog, "room-1", 50, notifier),
		reacts:   projection.NewReactionSet(testLog, notifier),
		roster:   projection.NewRoster(testLog, "room-1", port, notifier),
		session:  turn.NewSessionHolder(testLog, notifier),
		tracker:  presence.NewTracker(testLog, notifier),
		feeds:    make(map[event.Topic]chan event.StreamEvent),
	}

	for _, topic := range []event.Topic{
		event.TopicMessages, event.TopicReactions, event.TopicTurnSession,
		event.TopicMembers, event.TopicPresence,
	} {
		ch := make(chan event.StreamEvent, 16)
		f.feeds[topic] = ch
		stream.EXPECT().
			Subscribe(gomock.Any(), topic, "room-1").
			Return((<-chan event.StreamEvent)(ch), nil)
	}

	f.reconciler = NewReconciler(testLog, stream, "room-1",
		f.timeline, f.reacts, f.roster, f.session, f.tracker)
	return f
}

func TestReconciler_FoldsEventsIntoStores(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	port := mocks.NewMockIDataPort(ctrl)
	stream := mocks.NewMockIEventStream(ctrl)

	port.EXPECT().
		FetchProfile(gomock.Any(), "alice").
		Return(domain.Member{UserID: "alice", DisplayName: "Alice"}, nil).
		AnyTimes()

	f := newFixture(t, port, stream)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- f.reconciler.Run(ctx) }()

	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	f.feeds[event.TopicMessages] <- event.MessageInserted{Message: domain.Message{
		ID: "m1", RoomID: "room-1", AuthorID: "alice", Kind: domain.KindChat,
		Content: "hi", CreatedAt: created,
	}}
	f.feeds[event.TopicReactions] <- event.ReactionInserted{Reaction: domain.Reaction{
		ID: "r1", MessageID: "m1", UserID: "bob", Emoji: "🔥",
	}}
	f.feeds[event.TopicTurnSession] <- event.SessionChanged{Session: &domain.TurnSession{
		RoomID: "room-1", CurrentTurnUserID: "alice", TurnInstanceID: "t1", IsActive: true,
	}}
	f.feeds[event.TopicMembers] <- event.MemberJoined{Member: domain.Member{UserID: "bob", DisplayName: "Bob"}}
	f.feeds[event.TopicPresence] <- event.PresenceSynced{UserIDs: []string{"alice", "bob"}}

	req.Eventually(func() bool {
		return f.timeline.Len() == 1 &&
			len(f.reacts.For("m1")) == 1 &&
			f.session.Current() != nil &&
			f.roster.Known("bob") &&
			len(f.tracker.Online()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	req.NoError(<-done)
}

func TestReconciler_DuplicateAndUnorderedDelivery(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	port := mocks.NewMockIDataPort(ctrl)
	stream := mocks.NewMockIEventStream(ctrl)

	port.EXPECT().FetchProfile(gomock.Any(), gomock.Any()).
		Return(domain.Member{}, nil).AnyTimes()

	f := newFixture(t, port, stream)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- f.reconciler.Run(ctx) }()

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	second := event.MessageInserted{Message: domain.Message{
		ID: "m2", RoomID: "room-1", AuthorID: "alice", Kind: domain.KindChat,
		Content: "second", CreatedAt: base.Add(time.Minute),
	}}
	first := event.MessageInserted{Message: domain.Message{
		ID: "m1", RoomID: "room-1", AuthorID: "alice", Kind: domain.KindChat,
		Content: "first", CreatedAt: base,
	}}

	// Later message first, then the earlier one, then a duplicate.
	f.feeds[event.TopicMessages] <- second
	f.feeds[event.TopicMessages] <- first
	f.feeds[event.TopicMessages] <- second

	req.Eventually(func() bool { return f.timeline.Len() == 2 }, 2*time.Second, 10*time.Millisecond)

	messages := f.timeline.Messages()
	req.Equal("m1", messages[0].ID)
	req.Equal("m2", messages[1].ID)

	cancel()
	req.NoError(<-done)
}

func TestReconciler_AllStreamsClosedEndsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	port := mocks.NewMockIDataPort(ctrl)
	stream := mocks.NewMockIEventStream(ctrl)

	f := newFixture(t, port, stream)

	done := make(chan error, 1)
	go func() { done <- f.reconciler.Run(context.Background()) }()

	// Dropped subscriptions are left disconnected; once every stream is
	// gone the worker terminates on purpose (nil, so no restart).
	for _, ch := range f.feeds {
		close(ch)
	}

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("reconciler did not stop after all streams closed")
	}
}
