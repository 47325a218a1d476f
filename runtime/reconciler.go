// Package runtime wires the event streams into the local read models.
// It orchestrates reconciliation without containing domain rules.
package runtime

import (
	"context"
	"log/slog"

	"turnroom/contract"
	"turnroom/domain/event"
	"turnroom/presence"
	"turnroom/projection"
	"turnroom/turn"
)

// Reconciler subscribes to the per-topic streams of one room and folds
// every incoming event into the timeline, reaction set, roster,
// session holder, and presence tracker.
//
// Streams are independent and each event is reconcilable in isolation;
// no cross-topic ordering is assumed. A dropped or erroring
// subscription is logged and left disconnected: the baseline snapshot
// taken at open time is correct, and a full room reload is the
// recovery path.
type Reconciler struct {
	log      *slog.Logger
	stream   contract.IEventStream
	roomID   string
	timeline *projection.Timeline
	reacts   *projection.ReactionSet
	roster   *projection.Roster
	session  *turn.SessionHolder
	presence *presence.Tracker
}

func NewReconciler(
	log *slog.Logger,
	stream contract.IEventStream,
	roomID string,
	timeline *projection.Timeline,
	reacts *projection.ReactionSet,
	roster *projection.Roster,
	session *turn.SessionHolder,
	tracker *presence.Tracker,
) *Reconciler {
	return &Reconciler{
		log:      log,
		stream:   stream,
		roomID:   roomID,
		timeline: timeline,
		reacts:   reacts,
		roster:   roster,
		session:  session,
		presence: tracker,
	}
}

// Run subscribes every topic and reconciles until the context ends or
// all streams are gone. Subscriptions never outlive Run: the caller's
// context teardown closes them all.
func (r *Reconciler) Run(ctx context.Context) error {
	topics := []event.Topic{
		event.TopicMessages,
		event.TopicReactions,
		event.TopicTurnSession,
		event.TopicMembers,
		event.TopicPresence,
	}

	channels := make([]<-chan event.StreamEvent, len(topics))
	for i, topic := range topics {
		ch, err := r.stream.Subscribe(ctx, topic, r.roomID)
		if err != nil {
			// Left disconnected on purpose: no automatic retry.
			r.log.Error("Subscription failed", "topic", topic, "room", r.roomID, "error", err)
			continue
		}
		channels[i] = ch
	}

	merged := make(chan event.StreamEvent)
	done := make(chan struct{}, len(channels))
	live := 0
	for i, ch := range channels {
		if ch == nil {
			continue
		}
		live++
		topic := topics[i]
		go func(ch <-chan event.StreamEvent) {
			for evt := range ch {
				select {
				case merged <- evt:
				case <-ctx.Done():
					return
				}
			}
			r.log.Warn("Stream closed, staying disconnected", "topic", topic, "room", r.roomID)
			done <- struct{}{}
		}(ch)
	}

	for live > 0 {
		select {
		case <-ctx.Done():
			return nil
		case <-done:
			live--
		case evt := <-merged:
			r.apply(ctx, evt)
		}
	}
	r.log.Warn("All streams disconnected", "room", r.roomID)
	return nil
}

// apply folds one event into the owning store. The reconciler is the
// only writer applying remote-origin changes.
func (r *Reconciler) apply(ctx context.Context, evt event.StreamEvent) {
	switch e := evt.(type) {
	case event.MessageInserted:
		r.timeline.ApplyRemoteInsert(e.Message)
		if !r.roster.Known(e.Message.AuthorID) {
			r.roster.EnsureKnown(ctx, e.Message.AuthorID)
		}
	case event.MessageDeleted:
		r.timeline.ApplyRemoteDelete(e.MessageID)
	case event.ReactionInserted:
		r.reacts.ApplyInsert(e.Reaction)
	case event.ReactionDeleted:
		r.reacts.ApplyDelete(e.Reaction)
	case event.SessionChanged:
		r.session.Replace(e.Session)
	case event.MemberJoined:
		r.roster.ApplyJoin(e.Member)
		r.roster.EnsureKnown(ctx, e.Member.UserID)
	case event.MemberLeft:
		r.roster.ApplyLeave(e.UserID)
	case event.PresenceSynced:
		r.presence.Sync(e.UserIDs)
	case event.PresenceJoined:
		r.presence.Join(e.UserID)
	case event.PresenceLeft:
		r.presence.Leave(e.UserID)
	default:
		r.log.Debug("Ignoring unknown stream event", "topic", evt.Topic())
	}
}
