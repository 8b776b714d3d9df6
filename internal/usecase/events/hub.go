// Package events provides the in-process fan-out of dispatch results to
// connected stream subscribers. The HTTP layer publishes each completed
// dispatch here and the streaming endpoint forwards events to clients.
package events

import (
	"context"
	"log/slog"
	"sync"

	"notify-hub/internal/usecase/dispatch"
)

// subscriberBuffer is the per-subscriber channel capacity. A slow consumer
// drops events rather than blocking dispatch handling.
const subscriberBuffer = 16

// Hub fans dispatch results out to subscribers.
// All methods are safe for concurrent use.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[int64]chan *dispatch.Result
	nextID      int64
	closed      bool
	logger      *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subscribers: make(map[int64]chan *dispatch.Result),
		logger:      logger,
	}
}

// Subscribe registers a new subscriber and returns its id and event channel.
// The channel is closed by Unsubscribe or Shutdown, never by the consumer.
func (h *Hub) Subscribe() (int64, <-chan *dispatch.Result) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	ch := make(chan *dispatch.Result, subscriberBuffer)
	if h.closed {
		close(ch)
		return id, ch
	}
	h.subscribers[id] = ch
	SetSubscribers(len(h.subscribers))
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.
// Unknown ids are ignored.
func (h *Hub) Unsubscribe(id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[id]; ok {
		delete(h.subscribers, id)
		close(ch)
		SetSubscribers(len(h.subscribers))
	}
}

// Publish delivers a dispatch result to every subscriber without blocking.
// Events for subscribers with a full buffer are dropped and counted.
func (h *Hub) Publish(result *dispatch.Result) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return
	}

	RecordPublished()
	for id, ch := range h.subscribers {
		select {
		case ch <- result:
		default:
			RecordDropped()
			h.logger.Warn("dispatch event dropped: subscriber buffer full",
				slog.Int64("subscriber_id", id))
		}
	}
}

// Shutdown closes the hub and all subscriber channels. Publish and Subscribe
// become no-ops afterwards. The context is accepted for interface symmetry
// with other shutdown hooks; closing is immediate.
func (h *Hub) Shutdown(_ context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	for id, ch := range h.subscribers {
		delete(h.subscribers, id)
		close(ch)
	}
	SetSubscribers(0)
	h.logger.Info("event hub shutdown complete")
	return nil
}
