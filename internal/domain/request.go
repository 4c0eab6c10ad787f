package domain

// unset marks a lifecycle timestamp that has not yet been stamped.
const unset = -1

// CallRequest is a single passenger call, tracked from arrival through
// pickup and dropoff. Grounded on the CallRequest dataclass in
// _examples/original_source/models.py.
type CallRequest struct {
	ID               string
	CallTime         int
	SourceFloor      Floor
	TargetFloor      Floor
	PickupTime       int
	DropoffTime      int
	AssignedElevator string
}

// NewCallRequest creates a request with unset lifecycle timestamps.
func NewCallRequest(id string, callTime int, source, target Floor) *CallRequest {
	return &CallRequest{
		ID:          id,
		CallTime:    callTime,
		SourceFloor: source,
		TargetFloor: target,
		PickupTime:  unset,
		DropoffTime: unset,
	}
}

// Direction is the sweep direction this request travels in.
func (r *CallRequest) Direction() Direction {
	return SignOf(r.SourceFloor, r.TargetFloor)
}

// IsPickedUp reports whether the request has been picked up.
func (r *CallRequest) IsPickedUp() bool {
	return r.PickupTime != unset
}

// IsComplete reports whether both pickup and dropoff have occurred.
func (r *CallRequest) IsComplete() bool {
	return r.PickupTime != unset && r.DropoffTime != unset
}

// MarkPickedUp stamps the pickup time.
func (r *CallRequest) MarkPickedUp(tick int) {
	r.PickupTime = tick
}

// MarkDroppedOff stamps the dropoff time.
func (r *CallRequest) MarkDroppedOff(tick int) {
	r.DropoffTime = tick
}

// WaitTime returns PickupTime - CallTime. Only meaningful once picked up.
func (r *CallRequest) WaitTime() int {
	return r.PickupTime - r.CallTime
}

// TotalTime returns DropoffTime - CallTime. Only meaningful once complete.
func (r *CallRequest) TotalTime() int {
	return r.DropoffTime - r.CallTime
}
