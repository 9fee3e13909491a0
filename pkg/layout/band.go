package layout

import (
	"errors"
	"fmt"
)

var ErrInvalidBandCount = errors.New("invalid band count")

// Band is a contiguous range of rows [First, Last]
type Band struct {
	Index int
	First int
	Last  int
}

func (band Band) Size() int { return band.Last - band.First + 1 }

func (band Band) Contains(row int) bool { return row >= band.First && row <= band.Last }

// Bands splits the rows, front to back, into count contiguous bands of RowCount()/count rows;
// the last (backmost) band also takes the remainder of the division
func (grid *SeatGrid) Bands(count int) ([]Band, error) {
	rows := grid.RowCount()
	if count <= 0 || count > rows {
		return nil, fmt.Errorf("%w: %d bands requested for %d rows (must be between 1 and %d)", ErrInvalidBandCount, count, rows, rows)
	}

	size := rows / count
	bands := make([]Band, count)
	for i := range count {
		first := grid.rowMin + i*size
		last := first + size - 1
		if i == count-1 {
			last = grid.rowMax
		}
		bands[i] = Band{Index: i, First: first, Last: last}
	}
	return bands, nil
}

// BandIndex returns, for each row offset from RowMin(), the index of the band holding that row
func (grid *SeatGrid) BandIndex(count int) ([]int, error) {
	bands, err := grid.Bands(count)
	if err != nil {
		return nil, err
	}

	indices := make([]int, 0, grid.RowCount())
	for _, band := range bands {
		for range band.Size() {
			indices = append(indices, band.Index)
		}
	}
	return indices, nil
}
