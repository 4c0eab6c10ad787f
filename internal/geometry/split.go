// Package geometry implements the plan-geometry utilities spec.md §4.2
// describes: splitting an ordered stop list into monotone subplans at
// direction inflections, coalescing adjacent same-floor stops, and
// locating insertion points inside a monotone subplan. Grounded on
// the algorithm in _examples/original_source/elevator_dispatcher.py
// (split_plan_into_ordered_subplans / find_insertion_points_in_array),
// shaped into small single-concern files the way the teacher's
// internal/directions package is organized.
package geometry

import (
	"github.com/mkaranasou/elevatorsim/internal/domain"
)

// SplitMonotone splits an ordered stop list into maximal monotone
// subplans. Each subplan after the first shares its first element
// with the previous subplan's last element (the overlap spec.md §9
// calls the anchor of the direction change).
//
// Fails with ErrTypeDispatchInvariant if len(stops) < 2, per spec.md
// §4.2 ("plan too small to split" — callers must avoid this case by
// prepending the current floor when it differs from stops[0]).
func SplitMonotone(stops []*domain.ElevatorStop) ([][]*domain.ElevatorStop, error) {
	if len(stops) < 2 {
		return nil, domain.NewDispatchInvariantError("plan too small to split", nil).
			WithContext("length", len(stops))
	}

	dir := domain.SignOf(stops[0].Floor, stops[1].Floor)
	var cuts []int
	for i := 1; i < len(stops)-1; i++ {
		next := domain.SignOf(stops[i].Floor, stops[i+1].Floor)
		if next != dir {
			cuts = append(cuts, i+1)
			dir = next
		}
	}
	cuts = append(cuts, len(stops))

	subplans := make([][]*domain.ElevatorStop, 0, len(cuts))
	start := 0
	for _, cut := range cuts {
		subplans = append(subplans, stops[start:cut])
		start = cut - 1
	}
	return subplans, nil
}

// DirectionOf returns the monotone direction of a subplan (the sign
// from its first to its last stop).
func DirectionOf(subplan []*domain.ElevatorStop) domain.Direction {
	if len(subplan) < 2 {
		return domain.DirectionNone
	}
	return domain.SignOf(subplan[0].Floor, subplan[len(subplan)-1].Floor)
}

// Contains reports whether floor f lies within the subplan's closed
// range, in travel order (so a down subplan's "first" is its highest
// floor).
func Contains(subplan []*domain.ElevatorStop, f domain.Floor) bool {
	if len(subplan) == 0 {
		return false
	}
	lo, hi := subplan[0].Floor, subplan[len(subplan)-1].Floor
	if lo > hi {
		lo, hi = hi, lo
	}
	return f >= lo && f <= hi
}

// Join concatenates subplans back into a single stop list. It keeps
// both copies of the one-stop overlap SplitMonotone introduced between
// consecutive subplans — per spec.md §9, the pivot stop sits at both
// boundaries, and a request inserted at the pivot lands only in the
// copy belonging to the subplan it was inserted into; the caller's
// subsequent Coalesce unions the two copies back into one stop.
// Stripping either copy here would silently drop whichever one carries
// the inserted request's pickup or dropoff.
func Join(subplans [][]*domain.ElevatorStop) []*domain.ElevatorStop {
	if len(subplans) == 0 {
		return nil
	}
	joined := append([]*domain.ElevatorStop{}, subplans[0]...)
	for _, sp := range subplans[1:] {
		joined = append(joined, sp...)
	}
	return joined
}
