// Package elevator implements the single-elevator state machine of
// spec.md §4.1: owning a stop plan and current floor, ticking one
// floor (or one dwell) per call, and recording passenger
// boarding/alighting. Grounded on the teacher's
// internal/elevator/elevator.go (constructor validation, slog.Logger
// field, Name/CurrentFloor/MinFloor/MaxFloor accessor shape),
// generalized from a goroutine-driven SCAN loop to the spec's
// synchronous Tick/InsertStop/ReplacePlan API — ticks never fail
// (spec.md §4.1), so there is no switchOnChan, timeout, or circuit
// breaker here.
package elevator

import (
	"log/slog"

	"github.com/mkaranasou/elevatorsim/internal/constants"
	"github.com/mkaranasou/elevatorsim/internal/domain"
	"github.com/mkaranasou/elevatorsim/internal/geometry"
)

// Elevator owns a stop plan and current floor/state, per spec.md §3.
type Elevator struct {
	name         string
	minFloor     domain.Floor
	maxFloor     domain.Floor
	capacity     int
	currentFloor domain.Floor
	state        State
	passengers   []string
	plan         []*domain.ElevatorStop
	logger       *slog.Logger
}

// New creates an elevator bounded by [minFloor, maxFloor] and starting
// at startFloor (spec.md §6: "all elevators start at floor 1 in state
// idle with zero passengers" — callers pass 1 as startFloor for a
// fresh simulation run).
func New(name string, startFloor, minFloor, maxFloor, capacity int) (*Elevator, error) {
	if name == "" {
		return nil, domain.NewValidationError("elevator name cannot be empty", nil)
	}
	if capacity <= 0 {
		return nil, domain.NewValidationError("capacity must be positive", nil).
			WithContext("capacity", capacity)
	}
	if minFloor > maxFloor {
		return nil, domain.NewValidationError("minFloor must not exceed maxFloor", nil).
			WithContext("min_floor", minFloor).
			WithContext("max_floor", maxFloor)
	}

	return &Elevator{
		name:         name,
		minFloor:     domain.NewFloor(minFloor),
		maxFloor:     domain.NewFloor(maxFloor),
		currentFloor: domain.NewFloor(startFloor),
		capacity:     capacity,
		state:        Idle,
		passengers:   nil,
		plan:         nil,
		logger: slog.With(
			slog.String("component", constants.ComponentElevator),
			slog.String("elevator_name", name),
		),
	}, nil
}

// Name returns the elevator's identity.
func (e *Elevator) Name() string { return e.name }

// CurrentFloor returns the elevator's current floor.
func (e *Elevator) CurrentFloor() domain.Floor { return e.currentFloor }

// MinFloor returns the lowest floor this elevator may serve.
func (e *Elevator) MinFloor() domain.Floor { return e.minFloor }

// MaxFloor returns the highest floor this elevator may serve.
func (e *Elevator) MaxFloor() domain.Floor { return e.maxFloor }

// Capacity returns the elevator's maximum passenger count.
func (e *Elevator) Capacity() int { return e.capacity }

// State returns the elevator's current tagged state.
func (e *Elevator) State() State { return e.state }

// Plan returns the elevator's current ordered stop list. Callers must
// not mutate the returned slice or its stops directly; use
// InsertStop/ReplacePlan.
func (e *Elevator) Plan() []*domain.ElevatorStop { return e.plan }

// Passengers returns the ids of currently boarded requests.
func (e *Elevator) Passengers() []string {
	out := make([]string, len(e.passengers))
	copy(out, e.passengers)
	return out
}

// PassengerCount returns the number of currently boarded passengers.
func (e *Elevator) PassengerCount() int { return len(e.passengers) }

// IsAvailable reports whether the elevator can accept new dispatch
// candidates; an Unavailable elevator is skipped by the dispatcher.
func (e *Elevator) IsAvailable() bool { return e.state != Unavailable }

// SetUnavailable takes the elevator out of service. Its existing plan
// is left untouched — accepted requests already on it still complete
// once the elevator is resumed. Supplements spec.md: the distilled
// spec never exercises the `unavailable` state it lists in §3, but
// _examples/original_source/models.py's ElevatorState.unavailable
// comment ("for maintenance or other special reasons") is implemented
// here.
func (e *Elevator) SetUnavailable() {
	e.state = Unavailable
	e.logger.Info("elevator taken out of service")
}

// Resume returns the elevator to service; its next Tick recomputes
// state from its plan as normal.
func (e *Elevator) Resume() {
	if e.state == Unavailable {
		e.state = Idle
	}
	e.logger.Info("elevator returned to service")
}

// Tick advances simulated time by one unit, per spec.md §4.1. An
// unavailable elevator does not move and does not service stops.
func (e *Elevator) Tick(tick int) {
	if e.state == Unavailable {
		return
	}

	if len(e.plan) == 0 {
		e.state = Idle
		return
	}

	target := e.plan[0].Floor
	switch {
	case e.currentFloor < target:
		e.currentFloor++
		e.state = MovingUp
	case e.currentFloor > target:
		e.currentFloor--
		e.state = MovingDown
	default:
		e.state = AtStop
		e.serviceHeadStop(tick)
	}
}

// serviceHeadStop processes pickups and dropoffs at plan[0] and
// removes it from the plan.
func (e *Elevator) serviceHeadStop(tick int) {
	stop := e.plan[0]

	for id, r := range stop.Pickups {
		r.MarkPickedUp(tick)
		e.passengers = append(e.passengers, id)
	}

	for id, r := range stop.Dropoffs {
		r.MarkDroppedOff(tick)
		if !e.removePassenger(id) {
			panic(domain.NewDispatchInvariantError(
				"dropoff for a request that is not currently boarded", nil).
				WithContext("elevator", e.name).
				WithContext("request", id).
				Error())
		}
	}

	e.plan = e.plan[1:]

	e.logger.Debug("serviced stop",
		slog.Int("floor", stop.Floor.Value()),
		slog.Int("tick", tick),
		slog.Int("pickups", len(stop.Pickups)),
		slog.Int("dropoffs", len(stop.Dropoffs)))
}

func (e *Elevator) removePassenger(id string) bool {
	for i, p := range e.passengers {
		if p == id {
			e.passengers = append(e.passengers[:i], e.passengers[i+1:]...)
			return true
		}
	}
	return false
}

// InsertStop inserts stop at index and coalesces any adjacent
// same-floor neighbors that result, per spec.md §4.1.
func (e *Elevator) InsertStop(stop *domain.ElevatorStop, index int) {
	plan := make([]*domain.ElevatorStop, 0, len(e.plan)+1)
	plan = append(plan, e.plan[:index]...)
	plan = append(plan, stop)
	plan = append(plan, e.plan[index:]...)
	e.plan = geometry.Coalesce(plan)
}

// ReplacePlan atomically swaps the elevator's plan, per spec.md §4.1.
// This is the dispatcher's sole write path onto a winning elevator.
func (e *Elevator) ReplacePlan(newPlan []*domain.ElevatorStop) {
	e.plan = newPlan
}
