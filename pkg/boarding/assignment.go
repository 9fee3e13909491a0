package boarding

import (
	"fmt"
	"slices"

	"github.com/limaJavier/boarding/pkg/layout"
	"github.com/samber/lo"
)

// Group is a boarding cohort; groups are numbered from 1
type Group int

// Assignment maps every seat of a grid to a boarding group (grouped strategies) or to a value
// in [0, 1) (random boarding). It is immutable once returned by a strategy
type Assignment struct {
	strategy StrategyId
	grid     *layout.SeatGrid
	groups   []Group   // Indexed by canonical seat index, nil for continuous assignments
	values   []float64 // Indexed by canonical seat index, nil for grouped assignments
	order    []Group
	labels   map[Group]string
}

func newGroupedAssignment(strategy StrategyId, grid *layout.SeatGrid, groups []Group, order []Group, labels map[Group]string) (*Assignment, error) {
	assignment := &Assignment{
		strategy: strategy,
		grid:     grid,
		groups:   groups,
		order:    order,
		labels:   labels,
	}
	if err := assignment.Validate(); err != nil {
		return nil, err
	}
	return assignment, nil
}

func newContinuousAssignment(strategy StrategyId, grid *layout.SeatGrid, values []float64) (*Assignment, error) {
	assignment := &Assignment{
		strategy: strategy,
		grid:     grid,
		values:   values,
	}
	if err := assignment.Validate(); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (assignment *Assignment) Strategy() StrategyId { return assignment.strategy }

func (assignment *Assignment) Grid() *layout.SeatGrid { return assignment.grid }

// Continuous reports whether seats carry a value instead of a discrete group
func (assignment *Assignment) Continuous() bool { return assignment.values != nil }

// AllSeats returns the seats of the originating grid in canonical order
func (assignment *Assignment) AllSeats() []layout.SeatId { return assignment.grid.Seats() }

func (assignment *Assignment) GroupOf(seat layout.SeatId) (Group, error) {
	index, err := assignment.index(seat)
	if err != nil {
		return 0, err
	} else if assignment.Continuous() {
		return 0, fmt.Errorf("%w: %v assigns values, not groups", ErrNotGrouped, assignment.strategy)
	}
	return assignment.groups[index], nil
}

func (assignment *Assignment) ValueOf(seat layout.SeatId) (float64, error) {
	index, err := assignment.index(seat)
	if err != nil {
		return 0, err
	} else if !assignment.Continuous() {
		return 0, fmt.Errorf("%w: %v assigns groups, not values", ErrNotGrouped, assignment.strategy)
	}
	return assignment.values[index], nil
}

// Rank returns the 1-based boarding position of the seat: the position of its group in the boarding
// order, or, for continuous assignments, the position of its value among all values (ties keep canonical order)
func (assignment *Assignment) Rank(seat layout.SeatId) (int, error) {
	index, err := assignment.index(seat)
	if err != nil {
		return 0, err
	}

	if assignment.Continuous() {
		value := assignment.values[index]
		rank := 1
		for other, otherValue := range assignment.values {
			if otherValue < value || (otherValue == value && other < index) {
				rank++
			}
		}
		return rank, nil
	}
	return slices.Index(assignment.order, assignment.groups[index]) + 1, nil
}

// BoardingOrder returns the groups in the order they board; it is empty for continuous assignments
func (assignment *Assignment) BoardingOrder() []Group {
	return slices.Clone(assignment.order)
}

// Groups returns the number of groups (0 for continuous assignments)
func (assignment *Assignment) Groups() int {
	return len(assignment.order)
}

// Members returns the seats of a group in canonical order
func (assignment *Assignment) Members(group Group) []layout.SeatId {
	seats := make([]layout.SeatId, 0)
	for index, seatGroup := range assignment.groups {
		if seatGroup == group {
			seats = append(seats, assignment.grid.Seat(index))
		}
	}
	return seats
}

// Label returns a human description of the group (e.g. "Back Window Seats")
func (assignment *Assignment) Label(group Group) string {
	return assignment.labels[group]
}

// Values returns the per-seat values in canonical order (nil for grouped assignments)
func (assignment *Assignment) Values() []float64 {
	return slices.Clone(assignment.values)
}

// Validate checks totality (every seat of the grid is mapped) and, for grouped assignments,
// that groups are exactly {1..K} and the boarding order is a permutation of them
func (assignment *Assignment) Validate() error {
	size := assignment.grid.Size()

	if assignment.Continuous() {
		if len(assignment.values) != size {
			return fmt.Errorf("%w: %d values for %d seats", ErrInvalidAssignment, len(assignment.values), size)
		} else if len(assignment.order) != 0 {
			return fmt.Errorf("%w: continuous assignment has a boarding order", ErrInvalidAssignment)
		}
		if lo.SomeBy(assignment.values, func(value float64) bool { return value < 0 || value >= 1 }) {
			return fmt.Errorf("%w: values must lie in [0, 1)", ErrInvalidAssignment)
		}
		return nil
	}

	if len(assignment.groups) != size {
		return fmt.Errorf("%w: %d groups for %d seats", ErrInvalidAssignment, len(assignment.groups), size)
	}

	used := lo.Uniq(assignment.groups)
	slices.Sort(used)
	for i, group := range used {
		if group != Group(i+1) {
			return fmt.Errorf("%w: groups %v are not contiguous from 1", ErrInvalidAssignment, used)
		}
	}

	order := slices.Clone(assignment.order)
	slices.Sort(order)
	if !slices.Equal(order, used) {
		return fmt.Errorf("%w: boarding order %v does not cover groups %v exactly once", ErrInvalidAssignment, assignment.order, used)
	}
	return nil
}

func (assignment *Assignment) index(seat layout.SeatId) (int, error) {
	index, ok := assignment.grid.Index(seat)
	if !ok {
		return 0, fmt.Errorf("%w: %v is not part of the grid (%v)", ErrUnknownSeat, seat, assignment.grid)
	}
	return index, nil
}
