package services

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/jodavila/long-journey/internal/journal"
)

// SinkConn is the minimal interface a display connection must satisfy. The
// WebSocket handler wraps *websocket.Conn with this; tests use fakes.
type SinkConn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// ViewHub is the Display Sink: a registry of display connections that each
// receive the derived view state after every journal mutation. Delivery is
// one-way and best-effort; a slow or broken connection never blocks a
// mutation.
type ViewHub struct {
	mu    sync.RWMutex
	conns map[uuid.UUID]SinkConn
	last  *journal.ViewState
}

// NewViewHub returns an empty hub.
func NewViewHub() *ViewHub {
	return &ViewHub{conns: make(map[uuid.UUID]SinkConn)}
}

// Register adds a display connection and immediately sends it the latest
// snapshot, if one has been published, so a fresh client renders without
// waiting for the next mutation.
func (h *ViewHub) Register(conn SinkConn) uuid.UUID {
	id := uuid.New()

	h.mu.Lock()
	h.conns[id] = conn
	last := h.last
	h.mu.Unlock()

	if last != nil {
		if err := conn.WriteJSON(*last); err != nil {
			log.Printf("error writing view state to new display connection: %v", err)
		}
	}
	return id
}

// Unregister removes a display connection.
func (h *ViewHub) Unregister(id uuid.UUID) {
	h.mu.Lock()
	delete(h.conns, id)
	h.mu.Unlock()
}

// Publish fans the snapshot out to all registered connections. Implements
// journal.Sink.
func (h *ViewHub) Publish(state journal.ViewState) {
	h.mu.Lock()
	h.last = &state
	h.mu.Unlock()

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, conn := range h.conns {
		// Non-blocking best-effort send.
		go func(c SinkConn) {
			if err := c.WriteJSON(state); err != nil {
				log.Printf("error writing view state to display connection: %v", err)
			}
		}(conn)
	}
}
