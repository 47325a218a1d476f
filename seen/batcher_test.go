package seen

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"turnroom/domain"
	"turnroom/mocks"
	"turnroom/projection"
)

var testLog = slog.Default()

func TestBatcher_BurstProducesSingleBatch(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	port := mocks.NewMockIDataPort(ctrl)

	var calls atomic.Int32
	batched := make(chan []string, 1)
	port.EXPECT().
		MarkSeen(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ids []string) error {
			calls.Add(1)
			batched <- ids
			return nil
		})
	port.EXPECT().
		GetSeenCounts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ids []string) ([]domain.SeenCount, error) {
			counts := make([]domain.SeenCount, len(ids))
			for i, id := range ids {
				counts[i] = domain.SeenCount{MessageID: id, Count: 2}
			}
			return counts, nil
		})

	batcher := NewBatcher(testLog, port, 30*time.Millisecond, projection.NewNotifier())
	for i := 0; i < 10; i++ {
		batcher.MarkVisible(fmt.Sprintf("m%d", i))
	}

	select {
	case ids := <-batched:
		req.Len(ids, 10)
	case <-time.After(2 * time.Second):
		t.Fatal("batch never flushed")
	}
	req.Eventually(func() bool {
		c, ok := batcher.Count("m0")
		return ok && c == 2
	}, 2*time.Second, 10*time.Millisecond)
	req.Equal(int32(1), calls.Load())
}

func TestBatcher_IdleGapStartsSecondBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	port := mocks.NewMockIDataPort(ctrl)

	batched := make(chan []string, 2)
	port.EXPECT().
		MarkSeen(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ids []string) error {
			batched <- ids
			return nil
		}).
		Times(2)
	port.EXPECT().
		GetSeenCounts(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(2)

	batcher := NewBatcher(testLog, port, 20*time.Millisecond, projection.NewNotifier())

	batcher.MarkVisible("m1")
	first := <-batched

	// Well past the idle window: a fresh batch, not a lost signal.
	batcher.MarkVisible("m2")
	second := <-batched

	require.Equal(t, []string{"m1"}, first)
	require.Equal(t, []string{"m2"}, second)
}

func TestBatcher_VisibilityLatchedOncePerMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	port := mocks.NewMockIDataPort(ctrl)

	batched := make(chan []string, 1)
	port.EXPECT().
		MarkSeen(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ids []string) error {
			batched <- ids
			return nil
		}).
		Times(1)
	port.EXPECT().GetSeenCounts(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)

	batcher := NewBatcher(testLog, port, 20*time.Millisecond, projection.NewNotifier())

	batcher.MarkVisible("m1")
	batcher.MarkVisible("m1")
	require.Equal(t, []string{"m1"}, <-batched)

	// Scrolling back over the same message must not signal again.
	batcher.MarkVisible("m1")
	time.Sleep(60 * time.Millisecond)
}

func TestBatcher_MergeFeedsTheCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	port := mocks.NewMockIDataPort(ctrl)
	batcher := NewBatcher(testLog, port, time.Second, projection.NewNotifier())

	batcher.Merge([]domain.SeenCount{{MessageID: "m1", Count: 4}})
	c, ok := batcher.Count("m1")
	require.True(t, ok)
	require.Equal(t, 4, c)

	_, ok = batcher.Count("unknown")
	require.False(t, ok)
}
