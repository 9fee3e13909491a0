package layout

import "fmt"

// SeatClass is the position of a seat relative to the windows and the aisle
type SeatClass int

const (
	Window SeatClass = iota
	Middle
	Aisle
)

// SeatClasses lists every class in boarding-priority order (window first)
var SeatClasses = []SeatClass{Window, Middle, Aisle}

var seatClassNames = map[SeatClass]string{
	Window: "Window",
	Middle: "Middle",
	Aisle:  "Aisle",
}

func (class SeatClass) String() string {
	if name, ok := seatClassNames[class]; ok {
		return name
	}
	return fmt.Sprintf("SeatClass(%d)", int(class))
}

// classifyColumns computes the class of every column: within each block (left and right of the aisle)
// the outermost seat is a window seat, the seat next to the aisle is an aisle seat and the rest are middle seats
func classifyColumns(columns int, aisleSplit int) []SeatClass {
	classes := make([]SeatClass, columns)

	classifyBlock := func(outerToInner []int) {
		for position, column := range outerToInner {
			switch {
			case position == 0:
				classes[column] = Window
			case position == len(outerToInner)-1:
				classes[column] = Aisle
			default:
				classes[column] = Middle
			}
		}
	}

	// Left block goes from the left window towards the aisle
	left := make([]int, 0, aisleSplit)
	for column := 0; column < aisleSplit; column++ {
		left = append(left, column)
	}
	// Right block goes from the right window towards the aisle
	right := make([]int, 0, columns-aisleSplit)
	for column := columns - 1; column >= aisleSplit; column-- {
		right = append(right, column)
	}

	classifyBlock(left)
	classifyBlock(right)
	return classes
}
