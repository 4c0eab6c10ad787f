package geometry

import "github.com/mkaranasou/elevatorsim/internal/domain"

// FindInsertionPoints locates where a source/target pair can be
// inserted into a monotone subplan without breaking its monotonicity.
// subplan must already be sorted according to dir (ascending for Up,
// descending for Down); source must lie weakly inside the subplan's
// range in the direction of travel, and target must lie weakly inside
// the range starting just before the source position.
//
// A direct, renamed port of
// _examples/original_source/elevator_dispatcher.py's
// find_insertion_points_in_array, with raised Exceptions translated
// to ErrTypeDispatchInvariant errors.
func FindInsertionPoints(subplan []*domain.ElevatorStop, source, target domain.Floor, dir domain.Direction) (sourceIndex, targetIndex int, err error) {
	if dir != domain.DirectionUp && dir != domain.DirectionDown {
		return 0, 0, domain.NewDispatchInvariantError("unknown direction for insertion search", nil).
			WithContext("direction", int(dir))
	}

	if err := checkSorted(subplan, dir); err != nil {
		return 0, 0, err
	}

	atOrBefore := atOrBeforeFunc(dir)
	strictlyBefore := strictlyBeforeFunc(dir)

	sourceIndex = -1
	sourceAlreadyInPlan := false
	for i, s := range subplan {
		if atOrBefore(source, s.Floor) {
			if i == 0 && strictlyBefore(source, s.Floor) {
				return 0, 0, domain.NewDispatchInvariantError("source floor outside subplan range", nil).
					WithContext("source", source.Value())
			}
			sourceIndex = i
			sourceAlreadyInPlan = source == s.Floor
			break
		}
	}
	if sourceIndex == -1 {
		return 0, 0, domain.NewDispatchInvariantError("source floor outside subplan range", nil).
			WithContext("source", source.Value())
	}

	targetIndex = -1
	start := sourceIndex - 1
	if start < 0 {
		start = 0
	}
	for i := start; i < len(subplan); i++ {
		if atOrBefore(target, subplan[i].Floor) {
			targetIndex = i
			break
		}
	}
	if targetIndex == -1 {
		return 0, 0, domain.NewDispatchInvariantError("target floor outside subplan range", nil).
			WithContext("target", target.Value())
	}

	if !sourceAlreadyInPlan {
		targetIndex++
	}

	return sourceIndex, targetIndex, nil
}

func checkSorted(subplan []*domain.ElevatorStop, dir domain.Direction) error {
	for i := 1; i < len(subplan); i++ {
		if dir == domain.DirectionUp && subplan[i].Floor < subplan[i-1].Floor {
			return domain.NewDispatchInvariantError("subplan is not sorted ascending", nil)
		}
		if dir == domain.DirectionDown && subplan[i].Floor > subplan[i-1].Floor {
			return domain.NewDispatchInvariantError("subplan is not sorted descending", nil)
		}
	}
	return nil
}

// atOrBeforeFunc returns the "<=" comparator for Up (a is at-or-before
// b when traveling up means a <= b) and the mirrored ">=" for Down.
func atOrBeforeFunc(dir domain.Direction) func(a, b domain.Floor) bool {
	if dir == domain.DirectionUp {
		return func(a, b domain.Floor) bool { return a <= b }
	}
	return func(a, b domain.Floor) bool { return a >= b }
}

func strictlyBeforeFunc(dir domain.Direction) func(a, b domain.Floor) bool {
	if dir == domain.DirectionUp {
		return func(a, b domain.Floor) bool { return a < b }
	}
	return func(a, b domain.Floor) bool { return a > b }
}
