package auth

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/studio-booking/internal/metrics"
)

type EventType string

const (
	EventSignedIn  EventType = "SIGNED_IN"
	EventSignedOut EventType = "SIGNED_OUT"
)

// Event is an auth-state transition of one browser. Session is nil for
// EventSignedOut.
type Event struct {
	Type      EventType
	BrowserID string
	Session   *Session
	At        time.Time
}

type subscription struct {
	ch chan Event
}

// Hub fans auth events out to the subscribers of a browser id.
type Hub struct {
	mu     sync.RWMutex
	subs   map[string]map[*subscription]struct{}
	logger zerolog.Logger
}

func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		subs:   make(map[string]map[*subscription]struct{}),
		logger: logger,
	}
}

// Subscribe returns a channel of events for browserID and a cancel func that
// must be called once the subscriber is done.
func (h *Hub) Subscribe(browserID string) (<-chan Event, func()) {
	sub := &subscription{ch: make(chan Event, 8)}

	h.mu.Lock()
	if h.subs[browserID] == nil {
		h.subs[browserID] = make(map[*subscription]struct{})
	}
	h.subs[browserID][sub] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if set, ok := h.subs[browserID]; ok {
				delete(set, sub)
				if len(set) == 0 {
					delete(h.subs, browserID)
				}
			}
			close(sub.ch)
		})
	}

	return sub.ch, cancel
}

// Publish never blocks. A slow subscriber loses its oldest pending event so
// the newest state always gets through.
func (h *Hub) Publish(ev Event) {
	metrics.AuthEventsTotal.WithLabelValues(string(ev.Type)).Inc()

	if ev.BrowserID == "" {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[ev.BrowserID] {
		select {
		case sub.ch <- ev:
			continue
		default:
		}

		select {
		case <-sub.ch:
			h.logger.Warn().Str("browser_id", ev.BrowserID).Msg("auth event subscriber lagging, dropped oldest event")
		default:
		}
		select {
		case sub.ch <- ev:
		default:
		}
	}
}

func (h *Hub) SubscriberCount(browserID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[browserID])
}
