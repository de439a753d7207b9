// Package notify fans "data changed" signals out to connected clients over
// Server-Sent Events.
package notify

import (
	"sync"

	"github.com/google/uuid"
)

const (
	EventConnected   = "connected"
	EventDataUpdated = "dataUpdated"
)

// clientBuffer bounds how many events may queue for one client before new
// events are dropped for it.
const clientBuffer = 16

type Event struct {
	Name string
	Data string
}

// Hub tracks connected clients. Sends never block: a client whose buffer is
// full misses the event.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]chan Event
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]chan Event)}
}

// Subscribe registers a new client and returns its id and event stream.
func (h *Hub) Subscribe() (string, <-chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := uuid.NewString()
	ch := make(chan Event, clientBuffer)
	h.clients[id] = ch
	return id, ch
}

// Unsubscribe removes the client and closes its stream. Unknown ids are ignored.
func (h *Hub) Unsubscribe(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if ch, ok := h.clients[id]; ok {
		close(ch)
		delete(h.clients, id)
	}
}

// Broadcast sends ev to every client except the one with id except and
// returns how many clients accepted it.
func (h *Hub) Broadcast(except string, ev Event) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	delivered := 0
	for id, ch := range h.clients {
		if id == except {
			continue
		}
		select {
		case ch <- ev:
			delivered++
		default:
		}
	}
	return delivered
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close ends every open stream. Clients subscribing afterwards are unaffected.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, ch := range h.clients {
		close(ch)
		delete(h.clients, id)
	}
}
