package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type Event struct {
	OwnerID  uint
	UserID   *uint
	TurfID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink receives audit events. Dispatch must never block the caller.
type Sink interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
	wg     sync.WaitGroup
	once   sync.Once
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.logger.Log(ctx, ev); err != nil {
			slog.Warn("audit write failed", "action", ev.Action, "error", err)
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// a full queue drops the event; auditing never fails a request
		slog.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close stops accepting events and waits for queued ones to be written.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.queue) })
	d.wg.Wait()
}

// Discard drops every event.
type Discard struct{}

func (Discard) Dispatch(Event) {}
