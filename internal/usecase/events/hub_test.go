package events_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notify-hub/internal/usecase/dispatch"
	"notify-hub/internal/usecase/events"
)

func newTestHub() *events.Hub {
	return events.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHub_PublishReachesAllSubscribers(t *testing.T) {
	hub := newTestHub()
	defer func() { _ = hub.Shutdown(context.Background()) }()

	id1, ch1 := hub.Subscribe()
	id2, ch2 := hub.Subscribe()
	assert.NotEqual(t, id1, id2)

	result := &dispatch.Result{Status: dispatch.ResultCompleted}
	hub.Publish(result)

	select {
	case got := <-ch1:
		assert.Same(t, result, got)
	case <-time.After(time.Second):
		t.Fatal("subscriber 1 did not receive event")
	}
	select {
	case got := <-ch2:
		assert.Same(t, result, got)
	case <-time.After(time.Second):
		t.Fatal("subscriber 2 did not receive event")
	}
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := newTestHub()
	defer func() { _ = hub.Shutdown(context.Background()) }()

	id, ch := hub.Subscribe()
	hub.Unsubscribe(id)

	_, open := <-ch
	assert.False(t, open, "channel should be closed after unsubscribe")

	// 二重解除は無視される
	hub.Unsubscribe(id)
}

func TestHub_SlowSubscriberDoesNotBlockPublish(t *testing.T) {
	hub := newTestHub()
	defer func() { _ = hub.Shutdown(context.Background()) }()

	_, ch := hub.Subscribe()

	done := make(chan struct{})
	go func() {
		defer close(done)
		// バッファを超える分は破棄される
		for i := 0; i < 100; i++ {
			hub.Publish(&dispatch.Result{Status: dispatch.ResultCompleted})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}

	received := 0
	for {
		select {
		case <-ch:
			received++
		default:
			assert.LessOrEqual(t, received, 16)
			assert.Positive(t, received)
			return
		}
	}
}

func TestHub_ShutdownClosesSubscribers(t *testing.T) {
	hub := newTestHub()

	_, ch := hub.Subscribe()
	require.NoError(t, hub.Shutdown(context.Background()))

	_, open := <-ch
	assert.False(t, open, "channel should be closed after shutdown")

	// 停止後の操作は no-op
	hub.Publish(&dispatch.Result{Status: dispatch.ResultCompleted})
	require.NoError(t, hub.Shutdown(context.Background()))

	_, late := hub.Subscribe()
	_, open = <-late
	assert.False(t, open, "subscribe after shutdown returns a closed channel")
}
