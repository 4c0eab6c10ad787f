package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/mkaranasou/elevatorsim/internal/constants"
	"github.com/mkaranasou/elevatorsim/internal/infra/observability"
)

// Observed wraps an Engine so that an external watcher (the
// WebSocket tick feed in internal/http) can see each tick's snapshot
// as it is produced, without the engine's tick loop ever blocking on a
// slow or absent reader. Grounded on the teacher's
// switchOnChan/pushWithContext pattern in internal/elevator/elevator.go:
// a small buffered channel, a non-blocking send, and a dropped-push
// logged at debug rather than backpressure reaching the core loop.
type Observed struct {
	*Engine
	ticks chan TickSnapshot
}

// NewObserved wraps engine with a tick feed of the given buffer size.
func NewObserved(e *Engine, bufSize int) *Observed {
	return &Observed{
		Engine: e,
		ticks:  make(chan TickSnapshot, bufSize),
	}
}

// Ticks returns the channel live tick snapshots are published on.
// Closed when Run returns.
func (o *Observed) Ticks() <-chan TickSnapshot { return o.ticks }

// Run drives the wrapped engine's tick loop, publishing a copy of
// each tick's snapshot after it is recorded. It does not call
// Engine.Run: it repeats the same per-tick steps in the same order on
// the wrapped engine's state and only adds the publish after each
// snapshot, so the single-threaded tick semantics (spec.md §5) are
// unchanged.
func (o *Observed) Run(ctx context.Context) error {
	defer close(o.ticks)

	for o.hasWork() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		tickStart := time.Now()
		o.time++

		for o.nextArrival < len(o.requests) && o.requests[o.nextArrival].CallTime == o.time {
			r := o.requests[o.nextArrival]
			if err := o.dispatch(ctx, r); err != nil {
				return err
			}
			o.nextArrival++
		}

		for _, el := range o.elevators {
			el.Tick(o.time)
		}

		o.snapshot()
		o.recordCompletions()
		observability.RecordTickDuration(time.Since(tickStart).Seconds())
		o.publish(o.log[len(o.log)-1])
	}

	o.logger.Info("observed simulation complete", slog.Int("ticks", o.time+1))
	return nil
}

// publish pushes snapshot onto the tick channel without blocking the
// core loop if no one is reading.
func (o *Observed) publish(snapshot TickSnapshot) {
	select {
	case o.ticks <- snapshot:
	default:
		o.logger.Debug("tick feed is full, dropping snapshot",
			slog.String("component", constants.ComponentEngine),
			slog.Int("tick", snapshot.Tick))
	}
}
