package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaranasou/elevatorsim/internal/domain"
)

func stopsAt(floors ...int) []*domain.ElevatorStop {
	stops := make([]*domain.ElevatorStop, len(floors))
	for i, f := range floors {
		stops[i] = domain.NewStop(domain.NewFloor(f))
	}
	return stops
}

func floorsOf(stops []*domain.ElevatorStop) []int {
	out := make([]int, len(stops))
	for i, s := range stops {
		out[i] = s.Floor.Value()
	}
	return out
}

func TestSplitMonotone_TooSmall(t *testing.T) {
	_, err := SplitMonotone(stopsAt(3))
	require.Error(t, err)
	assert.True(t, domain.IsType(err, domain.ErrTypeDispatchInvariant))
}

func TestSplitMonotone_SingleSweep(t *testing.T) {
	plan := stopsAt(1, 3, 5, 7)
	subplans, err := SplitMonotone(plan)
	require.NoError(t, err)
	require.Len(t, subplans, 1)
	assert.Equal(t, []int{1, 3, 5, 7}, floorsOf(subplans[0]))
}

func TestSplitMonotone_Inflection(t *testing.T) {
	// up to 9, then down to 2, then up to 4
	plan := stopsAt(1, 5, 9, 6, 2, 4)
	subplans, err := SplitMonotone(plan)
	require.NoError(t, err)
	require.Len(t, subplans, 3)
	assert.Equal(t, []int{1, 5, 9}, floorsOf(subplans[0]))
	assert.Equal(t, []int{9, 6, 2}, floorsOf(subplans[1]))
	assert.Equal(t, []int{2, 4}, floorsOf(subplans[2]))
}

func TestSplitThenJoin_Reconstructs(t *testing.T) {
	plan := stopsAt(1, 5, 9, 6, 2, 4)
	subplans, err := SplitMonotone(plan)
	require.NoError(t, err)
	rejoined := Coalesce(Join(subplans))
	assert.Equal(t, floorsOf(plan), floorsOf(rejoined))
}

// Join keeps both copies of a pivot floor rather than stripping one —
// a request inserted at the pivot in one subplan must survive into
// the joined plan even before Coalesce runs.
func TestJoin_KeepsBothPivotCopiesForCoalesceToMerge(t *testing.T) {
	plan := stopsAt(1, 5, 9, 6, 2, 4)
	subplans, err := SplitMonotone(plan)
	require.NoError(t, err)
	joined := Join(subplans)
	assert.Equal(t, []int{1, 5, 9, 9, 6, 2, 2, 4}, floorsOf(joined))
}

func TestSplitMonotone_AlreadyMonotoneYieldsOneSubplan(t *testing.T) {
	plan := stopsAt(9, 7, 5, 1)
	subplans, err := SplitMonotone(plan)
	require.NoError(t, err)
	require.Len(t, subplans, 1)
	assert.Equal(t, floorsOf(plan), floorsOf(subplans[0]))
}

func TestDirectionOf(t *testing.T) {
	assert.Equal(t, domain.DirectionUp, DirectionOf(stopsAt(1, 5)))
	assert.Equal(t, domain.DirectionDown, DirectionOf(stopsAt(5, 1)))
}

func TestContains(t *testing.T) {
	up := stopsAt(1, 5, 9)
	assert.True(t, Contains(up, domain.NewFloor(5)))
	assert.False(t, Contains(up, domain.NewFloor(10)))

	down := stopsAt(9, 5, 1)
	assert.True(t, Contains(down, domain.NewFloor(3)))
}
