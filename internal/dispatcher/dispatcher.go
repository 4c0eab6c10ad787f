// Package dispatcher implements spec.md §4.3: for an incoming call
// request, build a candidate plan per elevator, score it, and pick the
// elevator with the least cost. Grounded on the teacher's
// manager.chooseElevator candidate-scan shape, generalized from
// "does a pending sweep reach this floor" reasoning to full
// candidate-plan construction, and on the authoritative sweep/insert
// algorithm in
// _examples/original_source/elevator_dispatcher.py.
package dispatcher

import (
	"context"
	"log/slog"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mkaranasou/elevatorsim/internal/constants"
	"github.com/mkaranasou/elevatorsim/internal/domain"
	"github.com/mkaranasou/elevatorsim/internal/elevator"
	"github.com/mkaranasou/elevatorsim/internal/geometry"
)

var tracer = otel.Tracer("elevator-simulator/dispatcher")

// Dispatcher selects an elevator and candidate plan for each incoming
// request. It holds no state of its own; all state lives on the
// elevators it is handed.
type Dispatcher struct {
	logger *slog.Logger
}

// New creates a dispatcher.
func New() *Dispatcher {
	return &Dispatcher{
		logger: slog.With(slog.String("component", constants.ComponentDispatcher)),
	}
}

// Dispatch chooses the least-cost elevator for r among elevators,
// returning the winning elevator and its fully updated candidate
// plan. Unavailable elevators are skipped. Ties are broken by
// iteration order: the first elevator with the strictly smallest cost
// wins (spec.md §4.3 Selection).
func (d *Dispatcher) Dispatch(ctx context.Context, elevators []*elevator.Elevator, r *domain.CallRequest) (*elevator.Elevator, []*domain.ElevatorStop, error) {
	ctx, span := tracer.Start(ctx, "dispatcher.dispatch")
	defer span.End()

	var (
		best     *elevator.Elevator
		bestPlan []*domain.ElevatorStop
		bestCost int
		foundAny bool
		fellBack bool
	)

	for _, e := range elevators {
		if !e.IsAvailable() {
			continue
		}

		candidate, usedFallback, err := d.buildCandidate(e, r)
		if err != nil {
			return nil, nil, err
		}

		cost, err := Cost(e.CurrentFloor(), candidate, r)
		if err != nil {
			return nil, nil, err
		}

		if !foundAny || cost < bestCost {
			best = e
			bestPlan = candidate
			bestCost = cost
			fellBack = usedFallback
			foundAny = true
		}
	}

	if !foundAny {
		return nil, nil, domain.NewDispatchInvariantError("no available elevator to dispatch request to", nil).
			WithContext("request", r.ID)
	}

	recordWinningCost(best.Name(), bestCost)
	if fellBack {
		incCapacityFallback(best.Name())
	}

	span.SetAttributes(
		attribute.String("elevator", best.Name()),
		attribute.Int("cost", bestCost),
		attribute.Bool("capacity_fallback", fellBack),
	)

	d.logger.Debug("dispatched request",
		slog.String("request", r.ID),
		slog.String("elevator", best.Name()),
		slog.Int("cost", bestCost),
		slog.Bool("capacity_fallback", fellBack))

	return best, bestPlan, nil
}

// buildCandidate runs spec.md §4.3's candidate construction for a
// single elevator, applying the capacity-check fallback at the end.
// usedFallback reports whether the tail-append fallback was used
// because in-sweep insertion would have exceeded capacity.
func (d *Dispatcher) buildCandidate(e *elevator.Elevator, r *domain.CallRequest) (candidate []*domain.ElevatorStop, usedFallback bool, err error) {
	primary, err := d.candidatePlan(e, r)
	if err != nil {
		return nil, false, err
	}

	if checkCapacity(e.PassengerCount(), e.Capacity(), primary) {
		return primary, false, nil
	}

	fallback := tailAppend(e.Plan(), r)
	return fallback, true, nil
}

// candidatePlan is spec.md §4.3 steps 1-4 (candidate construction
// without the capacity check, which step 5 layers on top).
func (d *Dispatcher) candidatePlan(e *elevator.Elevator, r *domain.CallRequest) ([]*domain.ElevatorStop, error) {
	plan := e.Plan()

	// Step 1: empty plan.
	if len(plan) == 0 {
		return []*domain.ElevatorStop{domain.PickupStop(r), domain.DropoffStop(r)}, nil
	}

	// Step 2: build the working plan, prepending a virtual stop at the
	// elevator's current floor when it differs from the plan's head.
	working := domain.ClonePlan(plan)
	virtualPrepended := false
	if e.CurrentFloor() != plan[0].Floor {
		virtualPrepended = true
		working = append([]*domain.ElevatorStop{domain.NewStop(e.CurrentFloor())}, working...)
	}

	// Step 3: single-stop plan, already standing on it.
	if len(working) == 1 {
		return tailAppend(plan, r), nil
	}

	// Step 4: split into monotone subplans and search for one that can
	// absorb the request without altering its direction.
	subplans, err := geometry.SplitMonotone(working)
	if err != nil {
		return nil, err
	}

	dir := r.Direction()
	matchIdx := -1
	for i, sp := range subplans {
		if geometry.DirectionOf(sp) == dir && geometry.Contains(sp, r.SourceFloor) && geometry.Contains(sp, r.TargetFloor) {
			matchIdx = i
			break
		}
	}

	if matchIdx == -1 {
		return tailAppend(plan, r), nil
	}

	subplans[matchIdx] = insertIntoSubplan(subplans[matchIdx], r, dir)
	candidate := geometry.Coalesce(geometry.Join(subplans))

	if virtualPrepended && len(candidate) > 0 && candidate[0].Floor != r.SourceFloor {
		candidate = candidate[1:]
	}

	return candidate, nil
}

// insertIntoSubplan appends r's pickup and dropoff stops to subplan,
// stable-sorts by floor in dir's direction, and coalesces, per
// spec.md §4.3 step 4.
func insertIntoSubplan(subplan []*domain.ElevatorStop, r *domain.CallRequest, dir domain.Direction) []*domain.ElevatorStop {
	merged := domain.ClonePlan(subplan)
	merged = append(merged, domain.PickupStop(r), domain.DropoffStop(r))

	sort.SliceStable(merged, func(i, j int) bool {
		if dir == domain.DirectionUp {
			return merged[i].Floor < merged[j].Floor
		}
		return merged[i].Floor > merged[j].Floor
	})

	return geometry.Coalesce(merged)
}

// tailAppend appends r's stops to the end of plan and coalesces, per
// spec.md §4.3 step 4's "not found" branch and step 5's fallback.
func tailAppend(plan []*domain.ElevatorStop, r *domain.CallRequest) []*domain.ElevatorStop {
	candidate := domain.ClonePlan(plan)
	candidate = append(candidate, domain.PickupStop(r), domain.DropoffStop(r))
	return geometry.Coalesce(candidate)
}

// checkCapacity walks candidate from startCount, rejecting if the
// running passenger count would ever exceed capacity, per spec.md
// §4.3's Capacity check.
func checkCapacity(startCount, capacity int, candidate []*domain.ElevatorStop) bool {
	count := startCount
	for _, s := range candidate {
		count += s.NetLoadChange()
		if count > capacity {
			return false
		}
	}
	return true
}
