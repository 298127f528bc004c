package audit

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type Event struct {
	UserID   *uuid.UUID
	Action   string
	Entity   string
	EntityID *uuid.UUID
	Metadata any
}

// Sink persists one audit event.
type Sink interface {
	Log(ctx context.Context, ev Event) error
}

// Recorder accepts audit events without blocking the caller.
type Recorder interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	sink   Sink
	logger zerolog.Logger
	queue  chan Event

	once sync.Once
	done chan struct{}
}

func NewDispatcher(sink Sink, logger zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:   sink,
		logger: logger,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			d.logger.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

// Dispatch never blocks; a full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.logger.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close drains the queue and waits for the worker. Dispatch must not be
// called after Close.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.queue) })
	<-d.done
}
