package boarding

import (
	"fmt"

	"github.com/limaJavier/boarding/pkg/layout"
)

type backToFrontStrategy struct {
	zones int
}

// NewBackToFrontStrategy splits rows into zones of equal width (the backmost zone also takes the remainder).
// Zone i (front to back) is group i+1 and the backmost zone boards first
func NewBackToFrontStrategy(zones int) Strategy {
	return &backToFrontStrategy{zones: zones}
}

func (strategy *backToFrontStrategy) Id() StrategyId { return BackToFront }

func (strategy *backToFrontStrategy) Assign(grid *layout.SeatGrid) (*Assignment, error) {
	if err := validateCount("zoneCount", strategy.zones, grid.RowCount()); err != nil {
		return nil, err
	}

	bands, err := grid.Bands(strategy.zones)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	groups := make([]Group, 0, grid.Size())
	labels := make(map[Group]string, len(bands))
	for _, band := range bands {
		group := Group(band.Index + 1)
		labels[group] = fmt.Sprintf("Rows %d-%d", band.First, band.Last)

		for range band.Size() * grid.ColumnCount() {
			groups = append(groups, group)
		}
	}

	// Back of the aircraft (highest group) boards first
	order := make([]Group, 0, len(bands))
	for group := len(bands); group >= 1; group-- {
		order = append(order, Group(group))
	}

	return newGroupedAssignment(BackToFront, grid, groups, order, labels)
}
