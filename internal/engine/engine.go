// Package engine runs the tick loop of spec.md §4.4: dispatching
// arriving requests, advancing every elevator by one tick, and
// recording a log snapshot, until every request has arrived and every
// accepted request is complete. Grounded on the teacher's
// manager.Manager (owns the elevator collection, exposes
// GetElevators/GetStatus) generalized from a live request-driven
// manager to a tick loop driven by a time-indexed request stream, per
// _examples/original_source/building_elevator_engine.py
// (tick_time/run_simulation/update_elevator_log).
package engine

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/mkaranasou/elevatorsim/internal/constants"
	"github.com/mkaranasou/elevatorsim/internal/dispatcher"
	"github.com/mkaranasou/elevatorsim/internal/domain"
	"github.com/mkaranasou/elevatorsim/internal/elevator"
	"github.com/mkaranasou/elevatorsim/internal/infra/observability"
)

// ElevatorSnapshot is one elevator's recorded state at a tick.
type ElevatorSnapshot struct {
	Elevator   string
	Floor      int
	State      string
	Passengers []string
}

// TickSnapshot is the elevator log's row for a single tick, per
// spec.md §6's Elevator log.
type TickSnapshot struct {
	Tick      int
	Elevators []ElevatorSnapshot
}

// Engine owns the elevators and the master request list, per spec.md
// §5: "the elevator list and the master request list are owned by the
// engine."
type Engine struct {
	elevators  []*elevator.Elevator
	requests   []*domain.CallRequest
	dispatcher *dispatcher.Dispatcher
	logger     *slog.Logger

	time        int
	nextArrival int
	accepted    []*domain.CallRequest
	log         []TickSnapshot
	recorded    map[string]bool
}

// New creates an engine over elevators and requests. requests is
// sorted by CallTime (stable, so rows with the same call_time keep
// their original order — spec.md §4.4's "deterministic for a given
// input" processing order).
func New(elevators []*elevator.Elevator, requests []*domain.CallRequest, d *dispatcher.Dispatcher) *Engine {
	sorted := make([]*domain.CallRequest, len(requests))
	copy(sorted, requests)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CallTime < sorted[j].CallTime
	})

	return &Engine{
		elevators:  elevators,
		requests:   sorted,
		dispatcher: d,
		logger:     slog.With(slog.String("component", constants.ComponentEngine)),
		time:       -1,
		recorded:   make(map[string]bool),
	}
}

// Run drives the tick loop to completion, per spec.md §4.4.
// Cancellation is cooperative: ctx is checked once per tick boundary,
// never mid-dispatch, preserving the single-tick invariant of §5.
func (e *Engine) Run(ctx context.Context) error {
	for e.hasWork() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		tickStart := time.Now()
		e.time++

		for e.nextArrival < len(e.requests) && e.requests[e.nextArrival].CallTime == e.time {
			r := e.requests[e.nextArrival]
			if err := e.dispatch(ctx, r); err != nil {
				return err
			}
			e.nextArrival++
		}

		for _, el := range e.elevators {
			el.Tick(e.time)
		}

		e.snapshot()
		e.recordCompletions()
		observability.RecordTickDuration(time.Since(tickStart).Seconds())
	}

	e.logger.Info("simulation complete",
		slog.Int("ticks", e.time+1),
		slog.Int("requests", len(e.requests)))

	return nil
}

// dispatch obtains a winning elevator and candidate plan for r, writes
// the plan back, and stamps r's assigned elevator, per spec.md §4.4
// step 2.
func (e *Engine) dispatch(ctx context.Context, r *domain.CallRequest) error {
	winner, plan, err := e.dispatcher.Dispatch(ctx, e.elevators, r)
	if err != nil {
		return err
	}

	winner.ReplacePlan(plan)
	r.AssignedElevator = winner.Name()
	e.accepted = append(e.accepted, r)

	e.logger.Debug("request accepted",
		slog.String("request", r.ID),
		slog.String("elevator", winner.Name()),
		slog.Int("tick", e.time))

	return nil
}

// hasWork reports whether the loop must run another tick: either not
// every request has arrived yet, or some accepted request is still
// incomplete.
func (e *Engine) hasWork() bool {
	if e.nextArrival < len(e.requests) {
		return true
	}
	for _, r := range e.accepted {
		if !r.IsComplete() {
			return true
		}
	}
	return false
}

// snapshot records every elevator's (floor, state, passengers) at the
// current tick.
func (e *Engine) snapshot() {
	row := TickSnapshot{Tick: e.time, Elevators: make([]ElevatorSnapshot, len(e.elevators))}
	for i, el := range e.elevators {
		row.Elevators[i] = ElevatorSnapshot{
			Elevator:   el.Name(),
			Floor:      el.CurrentFloor().Value(),
			State:      el.State().String(),
			Passengers: el.Passengers(),
		}
	}
	e.log = append(e.log, row)
}

// recordCompletions observes wait/total metrics for requests that
// became complete during the tick just processed, exactly once each.
func (e *Engine) recordCompletions() {
	for _, r := range e.accepted {
		if !r.IsComplete() || e.recorded[r.ID] {
			continue
		}
		e.recorded[r.ID] = true
		observability.RecordRequestCompletion(r.WaitTime(), r.TotalTime())
	}
}

// ElevatorLog returns the recorded per-tick snapshots in tick order.
func (e *Engine) ElevatorLog() []TickSnapshot { return e.log }

// RequestLog returns every accepted request, in the order it was
// accepted.
func (e *Engine) RequestLog() []*domain.CallRequest {
	out := make([]*domain.CallRequest, len(e.accepted))
	copy(out, e.accepted)
	return out
}

// Elevators returns the engine's elevator collection.
func (e *Engine) Elevators() []*elevator.Elevator { return e.elevators }
