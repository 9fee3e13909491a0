package layout

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSeatGridRejectsInvalidLayouts(t *testing.T) {
	scenarios := []struct {
		name       string
		rowMin     int
		rowMax     int
		columns    []string
		aisleSplit int
	}{
		{"inverted rows", 48, 28, DefaultColumns, 3},
		{"empty alphabet", 28, 48, []string{}, 0},
		{"nil alphabet", 28, 48, nil, 0},
		{"duplicate column", 28, 48, []string{"A", "B", "A"}, 1},
		{"empty column", 28, 48, []string{"A", "", "C"}, 1},
		{"aisle at the left wall", 28, 48, DefaultColumns, 0},
		{"aisle at the right wall", 28, 48, DefaultColumns, 6},
		{"single column without aisle", 1, 3, []string{"A"}, 0},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			grid, err := NewSeatGrid(scenario.rowMin, scenario.rowMax, scenario.columns, scenario.aisleSplit)

			assert.Nil(t, grid)
			assert.True(t, errors.Is(err, ErrInvalidLayout))
		})
	}
}

func TestSingleRowGridIsValid(t *testing.T) {
	grid, err := NewSeatGrid(7, 7, []string{"A", "B"}, 1)

	require.NoError(t, err)
	assert.Equal(t, 1, grid.RowCount())
	assert.Equal(t, []SeatId{{7, "A"}, {7, "B"}}, grid.Seats())
}

func TestCanonicalEnumerationOrder(t *testing.T) {
	//** Arrange
	grid, err := NewSeatGrid(1, 2, []string{"A", "B", "C"}, 1)
	require.NoError(t, err)

	//** Act
	seats := grid.Seats()

	//** Assert
	assert.Equal(t, []SeatId{
		{1, "A"}, {1, "B"}, {1, "C"},
		{2, "A"}, {2, "B"}, {2, "C"},
	}, seats)
}

func TestEnumerationIsRestartable(t *testing.T) {
	grid := DefaultGrid()

	first := grid.Seats()
	second := grid.Seats()

	assert.Equal(t, first, second)
	assert.Len(t, first, 21*6)
}

func TestEnumerationStopsEarly(t *testing.T) {
	grid := DefaultGrid()

	visited := 0
	for range grid.All() {
		visited++
		if visited == 4 {
			break
		}
	}

	assert.Equal(t, 4, visited)
}

func TestSeatsAreUnique(t *testing.T) {
	g := NewWithT(t)
	grid := DefaultGrid()

	seen := make(map[SeatId]bool)
	for seat := range grid.All() {
		g.Expect(seen).NotTo(HaveKey(seat))
		seen[seat] = true
	}
	g.Expect(seen).To(HaveLen(grid.Size()))
}

func TestIndexAndSeatAreInverse(t *testing.T) {
	grid := DefaultGrid()

	for i, seat := range grid.Seats() {
		index, ok := grid.Index(seat)
		assert.True(t, ok)
		assert.Equal(t, i, index)
		assert.Equal(t, seat, grid.Seat(index))
	}
}

func TestIndexRejectsForeignSeats(t *testing.T) {
	grid := DefaultGrid()

	for _, seat := range []SeatId{{27, "A"}, {49, "A"}, {30, "G"}, {30, "a"}} {
		_, ok := grid.Index(seat)
		assert.False(t, ok, seat.String())
		assert.False(t, grid.Contains(seat))
	}
}

func TestDefaultSeatClasses(t *testing.T) {
	grid := DefaultGrid()

	expected := map[string]SeatClass{
		"A": Window, "F": Window,
		"B": Middle, "E": Middle,
		"C": Aisle, "D": Aisle,
	}
	for column, class := range expected {
		actual, err := grid.ClassOf(column)
		require.NoError(t, err)
		assert.Equal(t, class, actual, column)
	}

	assert.Equal(t, []SeatClass{Window, Middle, Aisle}, grid.Classes())
	assert.Equal(t, []string{"A", "F"}, grid.ColumnsOf(Window))
	assert.Equal(t, []string{"B", "E"}, grid.ColumnsOf(Middle))
	assert.Equal(t, []string{"C", "D"}, grid.ColumnsOf(Aisle))
}

func TestSeatClassesOfOtherLayouts(t *testing.T) {
	g := NewWithT(t)

	// Regional jet: A C | D F
	regional, err := NewSeatGrid(1, 10, []string{"A", "C", "D", "F"}, 2)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(regional.Classes()).To(Equal([]SeatClass{Window, Aisle}))
	g.Expect(regional.ColumnsOf(Window)).To(ConsistOf("A", "F"))
	g.Expect(regional.ColumnsOf(Aisle)).To(ConsistOf("C", "D"))

	// Asymmetric: A | B C D
	asymmetric, err := NewSeatGrid(1, 10, []string{"A", "B", "C", "D"}, 1)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(asymmetric.ColumnsOf(Window)).To(ConsistOf("A", "D"))
	g.Expect(asymmetric.ColumnsOf(Middle)).To(ConsistOf("C"))
	g.Expect(asymmetric.ColumnsOf(Aisle)).To(ConsistOf("B"))
}

func TestClassOfUnknownColumn(t *testing.T) {
	_, err := DefaultGrid().ClassOf("Z")

	assert.Error(t, err)
}

func TestGridIsNotAliasedToCallerSlice(t *testing.T) {
	columns := []string{"A", "B", "C", "D"}
	grid, err := NewSeatGrid(1, 2, columns, 2)
	require.NoError(t, err)

	columns[0] = "Z"
	returned := grid.Columns()
	returned[1] = "Y"

	assert.Equal(t, []string{"A", "B", "C", "D"}, grid.Columns())
}

func TestRows(t *testing.T) {
	grid, err := NewSeatGrid(28, 31, DefaultColumns, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{28, 29, 30, 31}, grid.Rows())
	assert.Equal(t, 24, grid.Size())
}
