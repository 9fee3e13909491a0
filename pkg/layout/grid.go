package layout

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/samber/lo"
)

// ErrInvalidLayout is returned when a grid cannot be built from the given parameters
var ErrInvalidLayout = errors.New("invalid layout")

const (
	DefaultRowMin     = 28
	DefaultRowMax     = 48
	DefaultAisleSplit = 3
)

var DefaultColumns = []string{"A", "B", "C", "D", "E", "F"}

// SeatGrid is the set of seats of a single-aisle cabin: contiguous rows crossed with an ordered column alphabet.
// Rows grow towards the back of the aircraft. A grid is never mutated after construction
type SeatGrid struct {
	rowMin     int
	rowMax     int
	columns    []string
	aisleSplit int // Columns with index < aisleSplit are left of the aisle
	classes    []SeatClass
	positions  map[string]int
}

func NewSeatGrid(rowMin, rowMax int, columns []string, aisleSplit int) (*SeatGrid, error) {
	if rowMax < rowMin {
		return nil, fmt.Errorf("%w: last row %d is smaller than first row %d", ErrInvalidLayout, rowMax, rowMin)
	} else if len(columns) == 0 {
		return nil, fmt.Errorf("%w: column alphabet is empty", ErrInvalidLayout)
	}

	positions := make(map[string]int, len(columns))
	for i, column := range columns {
		if column == "" {
			return nil, fmt.Errorf("%w: column %d has an empty symbol", ErrInvalidLayout, i)
		} else if _, ok := positions[column]; ok {
			return nil, fmt.Errorf("%w: column %q appears more than once", ErrInvalidLayout, column)
		}
		positions[column] = i
	}

	if len(columns) > 1 && (aisleSplit < 1 || aisleSplit > len(columns)-1) {
		return nil, fmt.Errorf("%w: aisle split %d must leave at least one column on each side (1..%d)", ErrInvalidLayout, aisleSplit, len(columns)-1)
	} else if len(columns) == 1 && aisleSplit != 1 {
		return nil, fmt.Errorf("%w: aisle split %d must be 1 for a single column", ErrInvalidLayout, aisleSplit)
	}

	return &SeatGrid{
		rowMin:     rowMin,
		rowMax:     rowMax,
		columns:    slices.Clone(columns),
		aisleSplit: aisleSplit,
		classes:    classifyColumns(len(columns), aisleSplit),
		positions:  positions,
	}, nil
}

// DefaultGrid returns the Boeing 737-800 rear cabin (rows 28 to 48, columns A to F, aisle between C and D)
func DefaultGrid() *SeatGrid {
	grid, err := NewSeatGrid(DefaultRowMin, DefaultRowMax, DefaultColumns, DefaultAisleSplit)
	if err != nil {
		panic(err) // Default parameters are valid
	}
	return grid
}

func (grid *SeatGrid) RowMin() int { return grid.rowMin }

func (grid *SeatGrid) RowMax() int { return grid.rowMax }

func (grid *SeatGrid) RowCount() int { return grid.rowMax - grid.rowMin + 1 }

func (grid *SeatGrid) ColumnCount() int { return len(grid.columns) }

func (grid *SeatGrid) AisleSplit() int { return grid.aisleSplit }

// Size returns the number of seats
func (grid *SeatGrid) Size() int { return grid.RowCount() * len(grid.columns) }

// Rows returns the row numbers front to back
func (grid *SeatGrid) Rows() []int {
	return lo.RangeFrom(grid.rowMin, grid.RowCount())
}

// Columns returns a copy of the column alphabet, left to right
func (grid *SeatGrid) Columns() []string {
	return slices.Clone(grid.columns)
}

// All enumerates every seat in canonical order: rows outer (front to back), columns inner (left to right).
// The sequence can be ranged over any number of times
func (grid *SeatGrid) All() iter.Seq[SeatId] {
	return func(yield func(SeatId) bool) {
		for row := grid.rowMin; row <= grid.rowMax; row++ {
			for _, column := range grid.columns {
				if !yield(SeatId{Row: row, Column: column}) {
					return
				}
			}
		}
	}
}

// Seats collects All into a slice
func (grid *SeatGrid) Seats() []SeatId {
	return slices.Collect(grid.All())
}

func (grid *SeatGrid) Contains(seat SeatId) bool {
	_, ok := grid.Index(seat)
	return ok
}

// Index returns the position of the seat in canonical order
func (grid *SeatGrid) Index(seat SeatId) (int, bool) {
	column, ok := grid.positions[seat.Column]
	if !ok || seat.Row < grid.rowMin || seat.Row > grid.rowMax {
		return 0, false
	}
	return (seat.Row-grid.rowMin)*len(grid.columns) + column, true
}

// Seat is the inverse of Index; the index must lie in [0, Size())
func (grid *SeatGrid) Seat(index int) SeatId {
	return SeatId{
		Row:    grid.rowMin + index/len(grid.columns),
		Column: grid.columns[index%len(grid.columns)],
	}
}

// ColumnIndex returns the left-to-right position of a column symbol
func (grid *SeatGrid) ColumnIndex(column string) (int, bool) {
	position, ok := grid.positions[column]
	return position, ok
}

// ClassOf returns the class of a column symbol
func (grid *SeatGrid) ClassOf(column string) (SeatClass, error) {
	position, ok := grid.positions[column]
	if !ok {
		return 0, fmt.Errorf("column %q is not part of the grid %v", column, grid.columns)
	}
	return grid.classes[position], nil
}

// Classes returns the classes present in the grid in boarding-priority order
func (grid *SeatGrid) Classes() []SeatClass {
	return lo.Filter(SeatClasses, func(class SeatClass, _ int) bool {
		return slices.Contains(grid.classes, class)
	})
}

// ColumnsOf returns the columns of the given class, left to right
func (grid *SeatGrid) ColumnsOf(class SeatClass) []string {
	return lo.Filter(grid.columns, func(_ string, i int) bool {
		return grid.classes[i] == class
	})
}

func (grid *SeatGrid) String() string {
	return fmt.Sprintf("rows %d-%d, columns %v, aisle after %s", grid.rowMin, grid.rowMax, grid.columns, grid.columns[grid.aisleSplit-1])
}
