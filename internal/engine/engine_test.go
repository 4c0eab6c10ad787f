package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaranasou/elevatorsim/internal/dispatcher"
	"github.com/mkaranasou/elevatorsim/internal/domain"
	"github.com/mkaranasou/elevatorsim/internal/elevator"
)

func TestEngine_OneElevatorEmptyPlan(t *testing.T) {
	e, err := elevator.New("E1", 1, 1, 20, 5)
	require.NoError(t, err)

	a := domain.NewCallRequest("A", 0, domain.NewFloor(3), domain.NewFloor(7))
	eng := New([]*elevator.Elevator{e}, []*domain.CallRequest{a}, dispatcher.New())

	require.NoError(t, eng.Run(context.Background()))

	assert.Equal(t, 2, a.PickupTime)
	assert.Equal(t, 7, a.DropoffTime)
	assert.Equal(t, 2, a.WaitTime())
	assert.Equal(t, 7, a.TotalTime())
	assert.Equal(t, "E1", a.AssignedElevator)
}

func TestEngine_InDirectionPiggyback(t *testing.T) {
	e, err := elevator.New("E1", 1, 1, 20, 5)
	require.NoError(t, err)

	a := domain.NewCallRequest("A", 0, domain.NewFloor(3), domain.NewFloor(8))
	b := domain.NewCallRequest("B", 2, domain.NewFloor(5), domain.NewFloor(7))
	eng := New([]*elevator.Elevator{e}, []*domain.CallRequest{a, b}, dispatcher.New())

	require.NoError(t, eng.Run(context.Background()))

	assert.Equal(t, 2, a.PickupTime)
	assert.Equal(t, 10, a.DropoffTime)
	assert.Equal(t, 5, b.PickupTime)
	assert.Equal(t, 8, b.DropoffTime)
}

func TestEngine_TerminatesAndLogsEveryTick(t *testing.T) {
	e, err := elevator.New("E1", 1, 1, 20, 5)
	require.NoError(t, err)

	a := domain.NewCallRequest("A", 0, domain.NewFloor(1), domain.NewFloor(2))
	eng := New([]*elevator.Elevator{e}, []*domain.CallRequest{a}, dispatcher.New())

	require.NoError(t, eng.Run(context.Background()))

	log := eng.ElevatorLog()
	require.NotEmpty(t, log)
	assert.Equal(t, 0, log[0].Tick)
	for i, row := range log {
		assert.Equal(t, i, row.Tick)
	}

	assert.True(t, a.IsComplete())
	assert.Len(t, eng.RequestLog(), 1)
}

func TestEngine_RespectsContextCancellation(t *testing.T) {
	e, err := elevator.New("E1", 1, 1, 20, 5)
	require.NoError(t, err)

	a := domain.NewCallRequest("A", 0, domain.NewFloor(1), domain.NewFloor(50))
	eng := New([]*elevator.Elevator{e}, []*domain.CallRequest{a}, dispatcher.New())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = eng.Run(ctx)
	require.Error(t, err)
	assert.False(t, a.IsComplete())
}
