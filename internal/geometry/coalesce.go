package geometry

import "github.com/mkaranasou/elevatorsim/internal/domain"

// Coalesce merges each run of adjacent same-floor stops into one,
// unioning their pickup and dropoff sets. After Coalesce, no two
// adjacent stops share a floor. Coalescing an already-coalesced plan
// is the identity operation.
func Coalesce(stops []*domain.ElevatorStop) []*domain.ElevatorStop {
	if len(stops) == 0 {
		return nil
	}

	result := make([]*domain.ElevatorStop, 0, len(stops))
	result = append(result, stops[0].Clone())

	for _, s := range stops[1:] {
		last := result[len(result)-1]
		if s.Floor == last.Floor {
			s.MergeInto(last)
			continue
		}
		result = append(result, s.Clone())
	}

	return result
}
