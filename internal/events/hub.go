// Package events provides the in-process change feed for deal records.
// Subscribers register per pipeline and receive INSERT, UPDATE, and DELETE
// notifications after the corresponding write is persisted.
package events

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/example/dealboard/internal/ports/secondary"
)

// Handler receives a single deal change event. Handlers run synchronously on
// the publishing goroutine and must not block.
type Handler func(secondary.DealEvent)

// Hub fans deal change events out to per-pipeline subscribers.
type Hub struct {
	mu     sync.Mutex
	nextID int
	subs   map[string]map[int]Handler // pipelineID -> subscriber ID -> handler
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[int]Handler)}
}

// Subscription is a handle to an active subscription. Unsubscribe detaches
// the handler; it is safe to call more than once.
type Subscription struct {
	hub        *Hub
	pipelineID string
	id         int
	once       sync.Once
}

// Unsubscribe removes the handler from the hub. After it returns the handler
// will not be invoked again.
func (s *Subscription) Unsubscribe() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()
		if handlers, ok := s.hub.subs[s.pipelineID]; ok {
			delete(handlers, s.id)
			if len(handlers) == 0 {
				delete(s.hub.subs, s.pipelineID)
			}
		}
	})
}

// Subscribe registers a handler for deal changes on the given pipeline.
func (h *Hub) Subscribe(pipelineID string, handler Handler) *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	if h.subs[pipelineID] == nil {
		h.subs[pipelineID] = make(map[int]Handler)
	}
	h.subs[pipelineID][h.nextID] = handler

	log.WithFields(log.Fields{
		"component": "events",
		"pipeline":  pipelineID,
	}).Debug("subscriber attached")

	return &Subscription{hub: h, pipelineID: pipelineID, id: h.nextID}
}

// Publish delivers the event to every subscriber of its pipeline. Delivery
// order between subscribers is unspecified.
func (h *Hub) Publish(event secondary.DealEvent) {
	h.mu.Lock()
	handlers := make([]Handler, 0, len(h.subs[event.PipelineID]))
	for _, handler := range h.subs[event.PipelineID] {
		handlers = append(handlers, handler)
	}
	h.mu.Unlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// Ensure Hub implements the publisher port
var _ secondary.DealEventPublisher = (*Hub)(nil)
