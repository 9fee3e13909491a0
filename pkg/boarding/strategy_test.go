package boarding

import (
	"errors"
	"testing"

	"github.com/limaJavier/boarding/pkg/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expectedGroupCounts = map[StrategyId]int{
	BackToFront: 6,
	OutsideIn:   3,
	Hybrid:      9,
}

func TestListStrategies(t *testing.T) {
	assert.Equal(t, []StrategyId{BackToFront, OutsideIn, Hybrid, Random}, ListStrategies())
}

func TestParseStrategyId(t *testing.T) {
	scenarios := map[string]StrategyId{
		"back-to-front": BackToFront,
		"Back_To_Front": BackToFront,
		"outside in":    OutsideIn,
		" HYBRID ":      Hybrid,
		"random":        Random,
	}
	for name, expected := range scenarios {
		id, err := ParseStrategyId(name)

		assert.NoError(t, err, name)
		assert.Equal(t, expected, id)
	}

	_, err := ParseStrategyId("front-to-back")
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
}

func TestTotality(t *testing.T) {
	grids := []*layout.SeatGrid{layout.DefaultGrid(), mustGrid(t, 1, 9, []string{"A", "B", "C", "D", "E", "F"}, 3), mustGrid(t, 10, 30, []string{"A", "C", "D", "E", "G", "H", "K"}, 2)}

	for _, grid := range grids {
		for _, id := range ListStrategies() {
			//** Act
			assignment, err := Assign(id, grid, Options{ZoneCount: 3, SectionCount: 3, Seed: 1})

			//** Assert
			require.NoError(t, err, "%v on %v", id, grid)
			assert.Equal(t, grid.Seats(), assignment.AllSeats())
			for seat := range grid.All() {
				if assignment.Continuous() {
					_, err = assignment.ValueOf(seat)
				} else {
					_, err = assignment.GroupOf(seat)
				}
				assert.NoError(t, err, "%v: %v", id, seat)

				_, err = assignment.Rank(seat)
				assert.NoError(t, err)
			}
			assert.NoError(t, assignment.Validate())
		}
	}
}

func TestGroupContiguity(t *testing.T) {
	grid := layout.DefaultGrid()

	for id, count := range expectedGroupCounts {
		assignment, err := Assign(id, grid, DefaultOptions())
		require.NoError(t, err)

		used := make(map[Group]bool)
		for seat := range grid.All() {
			group, err := assignment.GroupOf(seat)
			require.NoError(t, err)
			used[group] = true
		}

		assert.Len(t, used, count, string(id))
		for group := 1; group <= count; group++ {
			assert.True(t, used[Group(group)], "%v: group %d unused", id, group)
		}
		assert.Equal(t, count, assignment.Groups())
	}
}

func TestDeterminism(t *testing.T) {
	grid := layout.DefaultGrid()

	for _, id := range ListStrategies() {
		first, err := Assign(id, grid, DefaultOptions())
		require.NoError(t, err)
		second, err := Assign(id, grid, DefaultOptions())
		require.NoError(t, err)

		assert.Equal(t, first, second, string(id))
	}
}

func TestConfigurationBounds(t *testing.T) {
	grid := layout.DefaultGrid()

	_, err := Assign(BackToFront, grid, Options{ZoneCount: 0, SectionCount: 3, Seed: 42})
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))

	_, err = Assign(Hybrid, grid, Options{ZoneCount: 6, SectionCount: 0, Seed: 42})
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))

	_, err = Assign(StrategyId("unknown"), grid, DefaultOptions())
	assert.True(t, errors.Is(err, ErrUnknownStrategy))
}

func TestOptionsOnlyBindTheirStrategy(t *testing.T) {
	// Outside-in ignores counts, so invalid counts meant for other strategies do not fail it
	assignment, err := Assign(OutsideIn, layout.DefaultGrid(), Options{ZoneCount: 0, SectionCount: 0, Seed: -1})

	require.NoError(t, err)
	assert.Equal(t, 3, assignment.Groups())
}

func TestAssignAll(t *testing.T) {
	grid := layout.DefaultGrid()

	assignments, err := AssignAll(grid, DefaultOptions())

	require.NoError(t, err)
	require.Len(t, assignments, 4)
	for i, id := range ListStrategies() {
		assert.Equal(t, id, assignments[i].Strategy())

		expected, err := Assign(id, grid, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, expected, assignments[i])
	}
}

func TestAssignAllFailsAsAWhole(t *testing.T) {
	options := DefaultOptions()
	options.ZoneCount = 100

	assignments, err := AssignAll(layout.DefaultGrid(), options)

	assert.Nil(t, assignments)
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestTitles(t *testing.T) {
	assert.Equal(t, "Back-to-Front Boarding Strategy", BackToFront.Title())
	assert.Equal(t, "Random Boarding (Baseline)", Random.Title())
	assert.Equal(t, "custom", StrategyId("custom").Title())
}

func mustGrid(t *testing.T, rowMin, rowMax int, columns []string, aisleSplit int) *layout.SeatGrid {
	t.Helper()
	grid, err := layout.NewSeatGrid(rowMin, rowMax, columns, aisleSplit)
	require.NoError(t, err)
	return grid
}
