package boarding

import (
	"errors"
	"testing"

	"github.com/limaJavier/boarding/pkg/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHybridComposition(t *testing.T) {
	//** Arrange
	grid := layout.DefaultGrid()
	classIndex := map[string]int{"A": 0, "F": 0, "B": 1, "E": 1, "C": 2, "D": 2}
	// Rows 28-34, 35-41, 42-48 from front to back
	sectionIndex := func(row int) int {
		switch {
		case row >= 42:
			return 0
		case row >= 35:
			return 1
		default:
			return 2
		}
	}

	//** Act
	assignment, err := NewHybridStrategy(3).Assign(grid)

	//** Assert
	require.NoError(t, err)
	for seat := range grid.All() {
		group, err := assignment.GroupOf(seat)
		require.NoError(t, err)
		assert.Equal(t, Group(3*classIndex[seat.Column]+sectionIndex(seat.Row)+1), group, seat.String())
	}
	assert.Equal(t, []Group{1, 2, 3, 4, 5, 6, 7, 8, 9}, assignment.BoardingOrder())
}

func TestHybridSectionsMatchBackToFrontZones(t *testing.T) {
	// With an uneven split the backmost section takes the remainder, exactly as back-to-front does
	grid, err := layout.NewSeatGrid(1, 11, layout.DefaultColumns, 3)
	require.NoError(t, err)

	hybrid, err := NewHybridStrategy(3).Assign(grid)
	require.NoError(t, err)
	zones, err := NewBackToFrontStrategy(3).Assign(grid)
	require.NoError(t, err)

	for seat := range grid.All() {
		zone, _ := zones.GroupOf(seat)
		group, _ := hybrid.GroupOf(seat)
		// zone 3 (back) -> section 0, zone 1 (front) -> section 2
		assert.Equal(t, int(3-zone), int(group-1)%3, seat.String())
	}
	assert.Len(t, hybrid.Members(1), 5*2) // rows 7-11, columns A and F
}

func TestHybridLabels(t *testing.T) {
	assignment, err := NewHybridStrategy(3).Assign(layout.DefaultGrid())
	require.NoError(t, err)

	expected := []string{
		"Back Window Seats", "Middle Window Seats", "Front Window Seats",
		"Back Middle Seats", "Middle Middle Seats", "Front Middle Seats",
		"Back Aisle Seats", "Middle Aisle Seats", "Front Aisle Seats",
	}
	for i, label := range expected {
		assert.Equal(t, label, assignment.Label(Group(i+1)))
	}
}

func TestHybridWithOtherSectionCounts(t *testing.T) {
	grid := layout.DefaultGrid()

	assignment, err := NewHybridStrategy(2).Assign(grid)

	require.NoError(t, err)
	assert.Equal(t, 6, assignment.Groups())
	group, err := assignment.GroupOf(layout.NewSeatId(48, "C"))
	require.NoError(t, err)
	assert.Equal(t, Group(5), group)
	assert.Equal(t, "Section 1 Aisle Seats", assignment.Label(5))
}

func TestHybridRejectsOutOfRangeSections(t *testing.T) {
	grid := layout.DefaultGrid()

	for _, sections := range []int{0, -1, 22} {
		_, err := NewHybridStrategy(sections).Assign(grid)

		assert.True(t, errors.Is(err, ErrInvalidConfiguration), "sections %d", sections)
	}
}
