package domain

// ElevatorStop is a single floor an elevator will visit, carrying the
// set of requests to pick up and the set to drop off there. Grounded
// on the ElevatorStop dataclass in
// _examples/original_source/models.py, generalized from request lists
// to request sets (keyed by request id) so that merging two stops at
// the same floor — and spec.md §3's "no duplicate request... across
// the plan" invariant — are plain map operations, the same way the
// teacher's internal/directions package represents pending floor sets
// as maps.
type ElevatorStop struct {
	Floor    Floor
	Pickups  map[string]*CallRequest
	Dropoffs map[string]*CallRequest
}

// NewStop creates an empty stop at floor.
func NewStop(floor Floor) *ElevatorStop {
	return &ElevatorStop{
		Floor:    floor,
		Pickups:  make(map[string]*CallRequest),
		Dropoffs: make(map[string]*CallRequest),
	}
}

// PickupStop creates a stop at r's source floor with r as its sole
// pickup.
func PickupStop(r *CallRequest) *ElevatorStop {
	s := NewStop(r.SourceFloor)
	s.Pickups[r.ID] = r
	return s
}

// DropoffStop creates a stop at r's target floor with r as its sole
// dropoff.
func DropoffStop(r *CallRequest) *ElevatorStop {
	s := NewStop(r.TargetFloor)
	s.Dropoffs[r.ID] = r
	return s
}

// MergeInto unions s's pickups and dropoffs into other, which must be
// at the same floor.
func (s *ElevatorStop) MergeInto(other *ElevatorStop) {
	for id, r := range s.Pickups {
		other.Pickups[id] = r
	}
	for id, r := range s.Dropoffs {
		other.Dropoffs[id] = r
	}
}

// Clone returns a shallow copy of s with independent pickup/dropoff
// maps, so callers can mutate a candidate plan without touching a
// stop still referenced by the elevator's live plan.
func (s *ElevatorStop) Clone() *ElevatorStop {
	c := NewStop(s.Floor)
	for id, r := range s.Pickups {
		c.Pickups[id] = r
	}
	for id, r := range s.Dropoffs {
		c.Dropoffs[id] = r
	}
	return c
}

// IsEmpty reports whether the stop has no pickups and no dropoffs.
func (s *ElevatorStop) IsEmpty() bool {
	return len(s.Pickups) == 0 && len(s.Dropoffs) == 0
}

// NetLoadChange returns len(Pickups) - len(Dropoffs), the change in
// passenger count produced by servicing this stop.
func (s *ElevatorStop) NetLoadChange() int {
	return len(s.Pickups) - len(s.Dropoffs)
}

// ClonePlan deep-clones (at the stop level) an ordered list of stops,
// so a candidate plan can be built and scored without mutating the
// elevator's currently committed plan.
func ClonePlan(plan []*ElevatorStop) []*ElevatorStop {
	clone := make([]*ElevatorStop, len(plan))
	for i, s := range plan {
		clone[i] = s.Clone()
	}
	return clone
}
