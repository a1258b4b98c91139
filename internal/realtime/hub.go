// Package realtime fans change notifications out to every client currently
// watching a module, scoped per tenant. Delivery is at-most-once and
// best-effort: no replay, no persistence. Clients that miss an event stay
// stale until their next explicit refetch.
package realtime

import (
	"errors"
	"strings"
	"sync"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

const (
	ModuleHorses       = "horses"
	ModuleIncome       = "income"
	ModuleExpenses     = "expenses"
	ModuleCompetitions = "competitions"
	ModuleTraining     = "training"
	ModuleHealth       = "health"
)

const DefaultSubscriberBuffer = 16

// Event is the payload pushed to subscribers of one (tenant, module) stream.
// Payload is the full record for created/updated and {"id": ...} for deleted.
type Event struct {
	Module  string      `json:"module"`
	Action  string      `json:"action"`
	Payload interface{} `json:"data"`
}

type Hub struct {
	mu               sync.RWMutex
	streams          map[string]*stream
	subscriberBuffer int
	log              *zap.Logger
}

type stream struct {
	mu     sync.Mutex
	subs   map[uint64]chan Event
	nextID uint64
}

type Subscription struct {
	hub  *Hub
	key  string
	id   uint64
	ch   chan Event
	once sync.Once
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		streams:          make(map[string]*stream),
		subscriberBuffer: DefaultSubscriberBuffer,
		log:              log.Named("realtime.hub"),
	}
}

func streamKey(tenantID snowflake.ID, module string) string {
	return tenantID.String() + "/" + module
}

// Publish delivers event to every subscriber of (tenantID, module). The send
// is non-blocking: a subscriber whose buffer is full misses the event rather
// than stalling the publisher. Publish order is preserved per module stream.
//
// Sends happen under stream.mu. Unsubscribe closes the channel under the same
// lock, so a subscriber closing mid-publish can never panic the publisher.
func (h *Hub) Publish(tenantID snowflake.ID, module string, event Event) {
	if h == nil {
		return
	}
	module = strings.TrimSpace(module)
	if module == "" || tenantID == 0 {
		return
	}
	event.Module = module

	h.mu.RLock()
	stream := h.streams[streamKey(tenantID, module)]
	h.mu.RUnlock()
	if stream == nil {
		return
	}

	stream.mu.Lock()
	defer stream.mu.Unlock()
	for _, ch := range stream.subs {
		select {
		case ch <- event:
		default:
			h.log.Debug("subscriber buffer full, event dropped",
				zap.String("module", module),
				zap.String("action", event.Action),
			)
		}
	}
}

// Subscribe registers a channel subscriber for (tenantID, module).
func (h *Hub) Subscribe(tenantID snowflake.ID, module string) (*Subscription, error) {
	if h == nil {
		return nil, errors.New("hub_unavailable")
	}
	module = strings.TrimSpace(module)
	if module == "" || tenantID == 0 {
		return nil, errors.New("invalid_stream")
	}

	key := streamKey(tenantID, module)
	stream := h.ensureStream(key)

	stream.mu.Lock()
	id := stream.nextID
	stream.nextID++
	ch := make(chan Event, h.subscriberBuffer)
	stream.subs[id] = ch
	stream.mu.Unlock()

	return &Subscription{
		hub: h,
		key: key,
		id:  id,
		ch:  ch,
	}, nil
}

// SubscribeFunc registers a callback invoked on every future publish matching
// (tenantID, module). A panicking handler is recovered and logged; it never
// reaches the publisher or other subscribers. The returned func deregisters.
func (h *Hub) SubscribeFunc(tenantID snowflake.ID, module string, handler func(Event)) (func(), error) {
	sub, err := h.Subscribe(tenantID, module)
	if err != nil {
		return nil, err
	}

	go func() {
		for event := range sub.ch {
			h.invoke(handler, event)
		}
	}()

	return sub.Close, nil
}

func (h *Hub) invoke(handler func(Event), event Event) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error("subscriber handler panicked",
				zap.String("module", event.Module),
				zap.String("action", event.Action),
				zap.Any("panic", r),
			)
		}
	}()
	handler(event)
}

func (h *Hub) ensureStream(key string) *stream {
	h.mu.RLock()
	current := h.streams[key]
	h.mu.RUnlock()
	if current != nil {
		return current
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	current = h.streams[key]
	if current == nil {
		current = &stream{subs: make(map[uint64]chan Event)}
		h.streams[key] = current
	}
	return current
}

func (h *Hub) unsubscribe(key string, id uint64) {
	h.mu.RLock()
	stream := h.streams[key]
	h.mu.RUnlock()
	if stream == nil {
		return
	}

	// close under stream.mu: Publish sends while holding the same lock,
	// so no send can be in flight on ch here.
	stream.mu.Lock()
	ch, ok := stream.subs[id]
	delete(stream.subs, id)
	remaining := len(stream.subs)
	if ok {
		close(ch)
	}
	stream.mu.Unlock()
	if remaining != 0 {
		return
	}

	h.mu.Lock()
	current := h.streams[key]
	if current != stream {
		h.mu.Unlock()
		return
	}
	stream.mu.Lock()
	empty := len(stream.subs) == 0
	stream.mu.Unlock()
	if empty {
		delete(h.streams, key)
	}
	h.mu.Unlock()
}

func (s *Subscription) Events() <-chan Event {
	if s == nil {
		return nil
	}
	return s.ch
}

func (s *Subscription) Close() {
	if s == nil || s.hub == nil {
		return
	}
	s.once.Do(func() {
		s.hub.unsubscribe(s.key, s.id)
	})
}
