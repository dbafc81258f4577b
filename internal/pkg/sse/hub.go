package sse

import (
	"sync"
)

// Event represents an SSE event to be sent to subscribers
type Event struct {
	Event string
	Data  interface{}
}

// Hub fans dashboard events out to every connected admin stream
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a new stream for an admin and returns the event channel and cleanup function
func (h *Hub) Subscribe(subscriberID string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)

	if h.subscribers[subscriberID] == nil {
		h.subscribers[subscriberID] = make(map[chan Event]struct{})
	}
	h.subscribers[subscriberID][ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subscribers[subscriberID], ch)
		close(ch)
		if len(h.subscribers[subscriberID]) == 0 {
			delete(h.subscribers, subscriberID)
		}
	}

	return ch, cleanup
}

// Broadcast sends an event to every open stream. Full channels are skipped.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, subs := range h.subscribers {
		for ch := range subs {
			select {
			case ch <- event:
			default:
			}
		}
	}
}

// TotalSubscribers returns the number of open streams
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, subs := range h.subscribers {
		total += len(subs)
	}
	return total
}
