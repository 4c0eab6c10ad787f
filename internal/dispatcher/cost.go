package dispatcher

import "github.com/mkaranasou/elevatorsim/internal/domain"

// Cost computes wait(r,E) + travel(r,E) for a candidate plan already
// built for elevator E, per spec.md §4.3's cost model. startFloor is
// E's current floor (not part of candidate). The full-plan variant is
// used rather than the index-only one, per spec.md §9's Open Question
// resolution: dwell ticks are counted for every intermediate stop
// traversed on the way to pickup and, separately, on the way to
// dropoff.
func Cost(startFloor domain.Floor, candidate []*domain.ElevatorStop, r *domain.CallRequest) (int, error) {
	sourceIdx, targetIdx := locate(candidate, r)
	if sourceIdx == -1 || targetIdx == -1 {
		return 0, domain.NewDispatchInvariantError(
			"candidate plan is missing the request's pickup or dropoff stop", nil).
			WithContext("request", r.ID)
	}

	wait := floorToFloor(startFloor, candidate[:sourceIdx+1])
	travel := floorToFloor(candidate[sourceIdx].Floor, candidate[sourceIdx+1:targetIdx+1])
	return wait + travel, nil
}

// locate returns the index of the stop carrying r's pickup and the
// index of the stop carrying r's dropoff within candidate.
func locate(candidate []*domain.ElevatorStop, r *domain.CallRequest) (sourceIdx, targetIdx int) {
	sourceIdx, targetIdx = -1, -1
	for i, s := range candidate {
		if _, ok := s.Pickups[r.ID]; ok && sourceIdx == -1 {
			sourceIdx = i
		}
		if _, ok := s.Dropoffs[r.ID]; ok && targetIdx == -1 {
			targetIdx = i
		}
	}
	return sourceIdx, targetIdx
}

// floorToFloor sums |floor-to-floor| movement from start through each
// stop in leg, plus one dwell tick per intermediate stop (every stop
// except the last one in leg).
func floorToFloor(start domain.Floor, leg []*domain.ElevatorStop) int {
	total := 0
	prev := start
	for i, s := range leg {
		total += prev.Distance(s.Floor)
		prev = s.Floor
		if i < len(leg)-1 {
			total++
		}
	}
	return total
}
