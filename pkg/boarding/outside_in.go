package boarding

import (
	"fmt"
	"strings"

	"github.com/limaJavier/boarding/pkg/layout"
)

type outsideInStrategy struct{}

// NewOutsideInStrategy groups seats by class only: window seats first, then middle, then aisle
func NewOutsideInStrategy() Strategy {
	return &outsideInStrategy{}
}

func (strategy *outsideInStrategy) Id() StrategyId { return OutsideIn }

func (strategy *outsideInStrategy) Assign(grid *layout.SeatGrid) (*Assignment, error) {
	classGroups, order := classGroups(grid)

	labels := make(map[Group]string, len(order))
	for class, group := range classGroups {
		labels[group] = fmt.Sprintf("%v Seats (%v)", class, strings.Join(grid.ColumnsOf(class), ", "))
	}

	groups := make([]Group, 0, grid.Size())
	for seat := range grid.All() {
		class, err := grid.ClassOf(seat.Column)
		if err != nil {
			return nil, err
		}
		groups = append(groups, classGroups[class])
	}

	return newGroupedAssignment(OutsideIn, grid, groups, order, labels)
}

// classGroups numbers the classes present in the grid consecutively from 1 in boarding-priority order
func classGroups(grid *layout.SeatGrid) (map[layout.SeatClass]Group, []Group) {
	classes := grid.Classes()
	groups := make(map[layout.SeatClass]Group, len(classes))
	order := make([]Group, 0, len(classes))
	for i, class := range classes {
		groups[class] = Group(i + 1)
		order = append(order, Group(i+1))
	}
	return groups, order
}
