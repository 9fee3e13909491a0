package boarding

import (
	"fmt"

	"github.com/limaJavier/boarding/pkg/layout"
	"github.com/samber/lo"
)

var threeSectionNames = []string{"Back", "Middle", "Front"}

type hybridStrategy struct {
	sections int
}

// NewHybridStrategy combines outside-in with back-to-front: rows are split into sections exactly like
// back-to-front zones, and within each seat class (window, middle, aisle) the sections board back to front.
// Group = classIndex*sections + sectionIndex + 1 where sectionIndex 0 is the backmost section
func NewHybridStrategy(sections int) Strategy {
	return &hybridStrategy{sections: sections}
}

func (strategy *hybridStrategy) Id() StrategyId { return Hybrid }

func (strategy *hybridStrategy) Assign(grid *layout.SeatGrid) (*Assignment, error) {
	if err := validateCount("sectionCount", strategy.sections, grid.RowCount()); err != nil {
		return nil, err
	}

	bandIndex, err := grid.BandIndex(strategy.sections)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}

	classes := grid.Classes()
	classIndex := lo.SliceToMap(classes, func(class layout.SeatClass) (layout.SeatClass, int) {
		return class, lo.IndexOf(classes, class)
	})

	groupOf := func(class layout.SeatClass, section int) Group {
		return Group(classIndex[class]*strategy.sections + section + 1)
	}

	//** Groups
	groups := make([]Group, 0, grid.Size())
	for seat := range grid.All() {
		class, err := grid.ClassOf(seat.Column)
		if err != nil {
			return nil, err
		}
		// Bands go front to back, sections go back to front
		section := strategy.sections - 1 - bandIndex[seat.Row-grid.RowMin()]
		groups = append(groups, groupOf(class, section))
	}

	//** Order and labels
	order := make([]Group, 0, len(classes)*strategy.sections)
	labels := make(map[Group]string, len(classes)*strategy.sections)
	for _, class := range classes {
		for section := range strategy.sections {
			group := groupOf(class, section)
			order = append(order, group)
			labels[group] = fmt.Sprintf("%v %v Seats", strategy.sectionName(section), class)
		}
	}

	return newGroupedAssignment(Hybrid, grid, groups, order, labels)
}

// sectionName names a section counted from the back of the aircraft
func (strategy *hybridStrategy) sectionName(section int) string {
	if strategy.sections == len(threeSectionNames) {
		return threeSectionNames[section]
	}
	return fmt.Sprintf("Section %d", section+1)
}
