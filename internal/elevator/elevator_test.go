package elevator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaranasou/elevatorsim/internal/domain"
)

func TestNew_ValidatesName(t *testing.T) {
	_, err := New("", 1, 1, 20, 5)
	require.Error(t, err)
	assert.True(t, domain.IsType(err, domain.ErrTypeValidation))
}

func TestNew_ValidatesCapacity(t *testing.T) {
	_, err := New("A", 1, 1, 20, 0)
	require.Error(t, err)
	assert.True(t, domain.IsType(err, domain.ErrTypeValidation))
}

func TestNew_ValidatesFloorBounds(t *testing.T) {
	_, err := New("A", 1, 20, 1, 5)
	require.Error(t, err)
	assert.True(t, domain.IsType(err, domain.ErrTypeValidation))
}

func TestNew_StartsIdleAtStartFloor(t *testing.T) {
	e, err := New("A", 1, 1, 20, 5)
	require.NoError(t, err)
	assert.Equal(t, domain.NewFloor(1), e.CurrentFloor())
	assert.Equal(t, domain.NewFloor(1), e.MinFloor())
	assert.Equal(t, domain.NewFloor(20), e.MaxFloor())
	assert.Equal(t, Idle, e.State())
	assert.Empty(t, e.Plan())
	assert.Zero(t, e.PassengerCount())
}

func TestTick_EmptyPlanStaysIdle(t *testing.T) {
	e, _ := New("A", 1, 1, 20, 5)
	e.Tick(1)
	assert.Equal(t, Idle, e.State())
	assert.Equal(t, domain.NewFloor(1), e.CurrentFloor())
}

func TestTick_MovesOneFloorTowardHeadStop(t *testing.T) {
	e, _ := New("A", 1, 1, 20, 5)
	e.ReplacePlan([]*domain.ElevatorStop{domain.NewStop(domain.NewFloor(4))})

	e.Tick(1)
	assert.Equal(t, MovingUp, e.State())
	assert.Equal(t, domain.NewFloor(2), e.CurrentFloor())

	e.Tick(2)
	assert.Equal(t, domain.NewFloor(3), e.CurrentFloor())

	e.Tick(3)
	assert.Equal(t, domain.NewFloor(4), e.CurrentFloor())

	e.Tick(4) // already at floor 4: services the head stop
	assert.Equal(t, domain.NewFloor(4), e.CurrentFloor())
	assert.Equal(t, AtStop, e.State())
	assert.Empty(t, e.Plan())
}

func TestTick_MovesDownTowardHeadStop(t *testing.T) {
	e, _ := New("A", 9, 1, 20, 5)
	e.ReplacePlan([]*domain.ElevatorStop{domain.NewStop(domain.NewFloor(7))})

	e.Tick(1)
	assert.Equal(t, MovingDown, e.State())
	assert.Equal(t, domain.NewFloor(8), e.CurrentFloor())
}

func TestTick_ServicesPickupAndDropoff(t *testing.T) {
	e, _ := New("A", 1, 1, 20, 5)
	r := domain.NewCallRequest("R1", 0, domain.NewFloor(1), domain.NewFloor(3))
	e.ReplacePlan([]*domain.ElevatorStop{
		domain.PickupStop(r),
		domain.DropoffStop(r),
	})

	e.Tick(1) // already at floor 1: services pickup stop
	assert.Equal(t, AtStop, e.State())
	assert.True(t, r.IsPickedUp())
	assert.Equal(t, 1, r.PickupTime)
	assert.Contains(t, e.Passengers(), "R1")
	require.Len(t, e.Plan(), 1)

	e.Tick(2)
	assert.Equal(t, domain.NewFloor(2), e.CurrentFloor())
	e.Tick(3)
	assert.Equal(t, domain.NewFloor(3), e.CurrentFloor())
	e.Tick(4) // already at floor 3: services the dropoff stop
	assert.Equal(t, AtStop, e.State())
	assert.True(t, r.IsComplete())
	assert.Equal(t, 4, r.DropoffTime)
	assert.NotContains(t, e.Passengers(), "R1")
	assert.Empty(t, e.Plan())
}

func TestInsertStop_CoalescesSameFloor(t *testing.T) {
	e, _ := New("A", 1, 1, 20, 5)
	r1 := domain.NewCallRequest("R1", 0, domain.NewFloor(1), domain.NewFloor(9))
	r2 := domain.NewCallRequest("R2", 0, domain.NewFloor(5), domain.NewFloor(9))
	e.ReplacePlan([]*domain.ElevatorStop{
		domain.PickupStop(r1),
		domain.DropoffStop(r1),
	})

	e.InsertStop(domain.PickupStop(r2), 1)
	e.InsertStop(domain.DropoffStop(r2), 2)

	require.Len(t, e.Plan(), 3)
	assert.Equal(t, domain.NewFloor(9), e.Plan()[2].Floor)
	assert.Len(t, e.Plan()[2].Dropoffs, 2)
}

func TestReplacePlan_SwapsAtomically(t *testing.T) {
	e, _ := New("A", 1, 1, 20, 5)
	newPlan := []*domain.ElevatorStop{domain.NewStop(domain.NewFloor(6))}
	e.ReplacePlan(newPlan)
	assert.Equal(t, newPlan, e.Plan())
}

func TestUnavailable_TickIsNoOp(t *testing.T) {
	e, _ := New("A", 1, 1, 20, 5)
	e.ReplacePlan([]*domain.ElevatorStop{domain.NewStop(domain.NewFloor(5))})
	e.SetUnavailable()

	e.Tick(1)
	assert.Equal(t, Unavailable, e.State())
	assert.Equal(t, domain.NewFloor(1), e.CurrentFloor())
	assert.False(t, e.IsAvailable())

	e.Resume()
	assert.Equal(t, Idle, e.State())
	e.Tick(2)
	assert.Equal(t, MovingUp, e.State())
}
