package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaranasou/elevatorsim/internal/domain"
)

func TestCoalesce_MergesAdjacentSameFloor(t *testing.T) {
	a := domain.NewCallRequest("A", 0, domain.NewFloor(3), domain.NewFloor(7))
	b := domain.NewCallRequest("B", 0, domain.NewFloor(5), domain.NewFloor(7))

	stops := []*domain.ElevatorStop{
		domain.PickupStop(a),
		domain.PickupStop(b),
		domain.DropoffStop(a),
		domain.DropoffStop(b),
	}
	// stops[0].Floor=3, stops[1].Floor=5, stops[2].Floor=7, stops[3].Floor=7 -> last two merge

	coalesced := Coalesce(stops)
	require.Len(t, coalesced, 3)
	last := coalesced[2]
	assert.Equal(t, domain.NewFloor(7), last.Floor)
	assert.Len(t, last.Dropoffs, 2)
	assert.Contains(t, last.Dropoffs, "A")
	assert.Contains(t, last.Dropoffs, "B")
}

func TestCoalesce_IdempotentOnCoalescedPlan(t *testing.T) {
	a := domain.NewCallRequest("A", 0, domain.NewFloor(3), domain.NewFloor(7))
	stops := []*domain.ElevatorStop{
		domain.PickupStop(a),
		domain.DropoffStop(a),
	}
	once := Coalesce(stops)
	twice := Coalesce(once)
	assert.Equal(t, floorsOf(once), floorsOf(twice))
	assert.Equal(t, len(once), len(twice))
}

func TestCoalesce_Empty(t *testing.T) {
	assert.Nil(t, Coalesce(nil))
}

func TestCoalesce_NoAdjacentDuplicates(t *testing.T) {
	stops := stopsAt(1, 3, 5)
	coalesced := Coalesce(stops)
	assert.Equal(t, []int{1, 3, 5}, floorsOf(coalesced))
}
