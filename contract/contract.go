//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"turnroom/domain"
	"turnroom/domain/event"
)

// IIdentityGateway exposes the platform identity of the viewer. Read
// once at startup; the engine never refreshes it.
type IIdentityGateway interface {
	CurrentUser(ctx context.Context) (domain.User, error)
}

// IDataPort is the request/response side of the managed backend:
// durable records plus the named remote procedures. Every call is an
// asynchronous completion; none blocks the reconciliation loop.
type IDataPort interface {
	FetchMessages(ctx context.Context, roomID string, before *time.Time, limit int) ([]domain.Message, error)
	FetchReactions(ctx context.Context, messageIDs []string) ([]domain.Reaction, error)
	FetchTurnSession(ctx context.Context, roomID string) (*domain.TurnSession, error)
	FetchMembers(ctx context.Context, roomID string) ([]domain.Member, error)
	FetchProfile(ctx context.Context, userID string) (domain.Member, error)

	SendMessage(ctx context.Context, draft domain.Message) (domain.Message, error)
	ToggleReaction(ctx context.Context, messageID, emoji string) error
	SubmitTurn(ctx context.Context, roomID, content string) error
	SubmitPhotoTurn(ctx context.Context, roomID, imageURL string) error
	NotifyNextTurn(ctx context.Context, roomID string) error
	Nudge(ctx context.Context, roomID, userID string) error
	MarkSeen(ctx context.Context, messageIDs []string) error
	GetSeenCounts(ctx context.Context, messageIDs []string) ([]domain.SeenCount, error)
}

// IEventStream is the push side: one subscription per topic and room.
// The returned channel closes when the subscription drops; the engine
// logs and leaves it disconnected, a room reload is the recovery path.
type IEventStream interface {
	Subscribe(ctx context.Context, topic event.Topic, roomID string) (<-chan event.StreamEvent, error)
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// initialization or lifecycle events, avoiding the need for manual
// naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
