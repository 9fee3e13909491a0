package layout

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// SeatId identifies exactly one physical seat of a grid
type SeatId struct {
	Row    int
	Column string
}

func NewSeatId(row int, column string) SeatId {
	return SeatId{Row: row, Column: column}
}

// String returns the label printed on the seat (e.g. "28A")
func (seat SeatId) String() string {
	return strconv.Itoa(seat.Row) + seat.Column
}

// ParseSeatId parses labels like "28A" (leading digits are the row, the rest is the column)
func ParseSeatId(label string) (SeatId, error) {
	label = strings.TrimSpace(label)
	split := strings.IndexFunc(label, func(r rune) bool { return !unicode.IsDigit(r) })
	if split <= 0 {
		return SeatId{}, fmt.Errorf("invalid seat label %q: missing row or column", label)
	}

	row, err := strconv.Atoi(label[:split])
	if err != nil {
		return SeatId{}, fmt.Errorf("invalid seat label %q: %w", label, err)
	}
	return SeatId{Row: row, Column: label[split:]}, nil
}
