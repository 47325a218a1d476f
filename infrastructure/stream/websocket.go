// Package stream is the push-channel adapter: one WebSocket connection
// to the backend realtime endpoint, multiplexing per-topic, per-room
// subscriptions. It implements contract.IEventStream.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"turnroom/contract"
	"turnroom/domain"
	"turnroom/domain/event"
)

// envelope is the wire shape of every frame, inbound and outbound.
type envelope struct {
	Action string          `json:"action,omitempty"` // subscribe | announce
	Topic  event.Topic     `json:"topic"`
	RoomID string          `json:"room_id"`
	Kind   event.Kind      `json:"kind,omitempty"`
	Record json.RawMessage `json:"record,omitempty"`
}

type subKey struct {
	topic  event.Topic
	roomID string
}

type WebsocketStream struct {
	mu       sync.Mutex
	log      *slog.Logger
	conn     *websocket.Conn
	viewerID string
	subs     map[subKey]chan event.StreamEvent
	bufSize  int
}

var _ contract.IEventStream = (*WebsocketStream)(nil)

// Dial connects to the realtime endpoint and starts the read pump. The
// viewer id is announced on the presence topic at subscribe time.
func Dial(ctx context.Context, log *slog.Logger, wsURL, token, viewerID string, bufSize int) (*WebsocketStream, error) {
	header := map[string][]string{"Authorization": {"Bearer " + token}}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		return nil, fmt.Errorf("realtime dial: %w", err)
	}

	s := &WebsocketStream{
		log:      log,
		conn:     conn,
		viewerID: viewerID,
		subs:     make(map[subKey]chan event.StreamEvent),
		bufSize:  bufSize,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error { return s.readPump(groupCtx) })
	group.Go(func() error {
		<-groupCtx.Done()
		return conn.Close()
	})
	go func() {
		if err := group.Wait(); err != nil && ctx.Err() == nil {
			log.Warn("Realtime connection ended", "error", err)
		}
		s.closeAll()
	}()

	return s, nil
}

// Subscribe registers a topic/room pair and sends the subscribe frame.
// The returned channel closes when the connection drops; the engine
// never resubscribes on its own.
func (s *WebsocketStream) Subscribe(ctx context.Context, topic event.Topic, roomID string) (<-chan event.StreamEvent, error) {
	s.mu.Lock()
	key := subKey{topic: topic, roomID: roomID}
	if _, exists := s.subs[key]; exists {
		s.mu.Unlock()
		return nil, fmt.Errorf("already subscribed to %s/%s", topic, roomID)
	}
	ch := make(chan event.StreamEvent, s.bufSize)
	s.subs[key] = ch
	s.mu.Unlock()

	if err := s.write(envelope{Action: "subscribe", Topic: topic, RoomID: roomID}); err != nil {
		s.drop(key)
		return nil, err
	}
	if topic == event.TopicPresence {
		// Announce the local user so peers see us online.
		announce := envelope{Action: "announce", Topic: topic, RoomID: roomID}
		announce.Record, _ = json.Marshal(map[string]string{"user_id": s.viewerID})
		if err := s.write(announce); err != nil {
			s.log.Warn("Presence announce failed", "error", err)
		}
	}
	return ch, nil
}

func (s *WebsocketStream) readPump(ctx context.Context) error {
	for {
		var frame envelope
		if err := s.conn.ReadJSON(&frame); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read frame: %w", err)
		}

		evt, err := decode(frame)
		if err != nil {
			s.log.Warn("Dropping undecodable frame", "topic", frame.Topic, "kind", frame.Kind, "error", err)
			continue
		}

		s.mu.Lock()
		ch, ok := s.subs[subKey{topic: frame.Topic, roomID: frame.RoomID}]
		s.mu.Unlock()
		if !ok {
			continue
		}
		select {
		case ch <- evt:
		default:
			// Slow consumer. The baseline snapshot plus a reload is the
			// documented recovery path, never blocking the pump.
			s.log.Warn("Subscriber buffer full, dropping event", "topic", frame.Topic)
		}
	}
}

// decode maps a wire frame to a typed stream event.
func decode(frame envelope) (event.StreamEvent, error) {
	switch frame.Topic {
	case event.TopicMessages:
		if frame.Kind == event.KindDelete {
			var rec struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(frame.Record, &rec); err != nil {
				return nil, err
			}
			return event.MessageDeleted{MessageID: rec.ID}, nil
		}
		var m domain.Message
		if err := json.Unmarshal(frame.Record, &m); err != nil {
			return nil, err
		}
		return event.MessageInserted{Message: m}, nil

	case event.TopicReactions:
		var r domain.Reaction
		if err := json.Unmarshal(frame.Record, &r); err != nil {
			return nil, err
		}
		if frame.Kind == event.KindDelete {
			return event.ReactionDeleted{Reaction: r}, nil
		}
		return event.ReactionInserted{Reaction: r}, nil

	case event.TopicTurnSession:
		if frame.Kind == event.KindDelete {
			return event.SessionChanged{Session: nil}, nil
		}
		var session domain.TurnSession
		if err := json.Unmarshal(frame.Record, &session); err != nil {
			return nil, err
		}
		return event.SessionChanged{Session: &session}, nil

	case event.TopicMembers:
		if frame.Kind == event.KindDelete {
			var rec struct {
				UserID string `json:"user_id"`
			}
			if err := json.Unmarshal(frame.Record, &rec); err != nil {
				return nil, err
			}
			return event.MemberLeft{UserID: rec.UserID}, nil
		}
		var m domain.Member
		if err := json.Unmarshal(frame.Record, &m); err != nil {
			return nil, err
		}
		return event.MemberJoined{Member: m}, nil

	case event.TopicPresence:
		var rec struct {
			UserID  string   `json:"user_id"`
			UserIDs []string `json:"user_ids"`
		}
		if err := json.Unmarshal(frame.Record, &rec); err != nil {
			return nil, err
		}
		switch frame.Kind {
		case event.KindDelete:
			return event.PresenceLeft{UserID: rec.UserID}, nil
		case event.KindUpdate:
			return event.PresenceSynced{UserIDs: rec.UserIDs}, nil
		default:
			return event.PresenceJoined{UserID: rec.UserID}, nil
		}
	}
	return nil, fmt.Errorf("unknown topic %q", frame.Topic)
}

func (s *WebsocketStream) write(frame envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(frame)
}

func (s *WebsocketStream) drop(key subKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, ok := s.subs[key]; ok {
		close(ch)
		delete(s.subs, key)
	}
}

func (s *WebsocketStream) closeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, ch := range s.subs {
		close(ch)
		delete(s.subs, key)
	}
}
