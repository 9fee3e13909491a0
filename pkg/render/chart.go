package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/limaJavier/boarding/pkg/boarding"
	"github.com/limaJavier/boarding/pkg/layout"
	"github.com/samber/lo"
)

type LegendEntry struct {
	Color color.Color
	Label string
}

// Chart is everything a renderer needs to draw a seat map: colors and captions are indexed by canonical seat index
type Chart struct {
	Name     string // File stem (e.g. "hybrid_strategy")
	Title    string
	Grid     *layout.SeatGrid
	Fills    []color.Color
	Captions []string
	Marks    []string // Short per-seat text for text charts
	Legend   []LegendEntry
	Note     string // Boarding order line, empty when there is none
	ColorBar string // Label of the continuous scale, empty for discrete charts
}

var chartNames = map[boarding.StrategyId]string{
	boarding.BackToFront: "back_to_front_strategy",
	boarding.OutsideIn:   "outside_in_strategy",
	boarding.Hybrid:      "hybrid_strategy",
	boarding.Random:      "random_boarding",
}

// LayoutChart is the plain seating chart of a grid
func LayoutChart(grid *layout.SeatGrid, aircraft string) Chart {
	return Chart{
		Name:     "aircraft_layout",
		Title:    strings.TrimSpace(fmt.Sprintf("%s Seating Chart (Rows %d-%d)", aircraft, grid.RowMin(), grid.RowMax())),
		Grid:     grid,
		Fills:    lo.Times(grid.Size(), func(_ int) color.Color { return SeatBlue }),
		Captions: make([]string, grid.Size()),
		Marks:    lo.Map(grid.Seats(), func(seat layout.SeatId, _ int) string { return seat.String() }),
		Legend:   []LegendEntry{{Color: SeatBlue, Label: "Seat"}},
	}
}

// AssignmentChart colors every seat by its group (or value, for continuous assignments)
func AssignmentChart(assignment *boarding.Assignment) (Chart, error) {
	grid := assignment.Grid()
	chart := Chart{
		Name:     chartName(assignment.Strategy()),
		Title:    assignment.Strategy().Title(),
		Grid:     grid,
		Fills:    make([]color.Color, 0, grid.Size()),
		Captions: make([]string, 0, grid.Size()),
		Marks:    make([]string, 0, grid.Size()),
	}

	if assignment.Continuous() {
		for _, value := range assignment.Values() {
			chart.Fills = append(chart.Fills, Viridis(value))
			chart.Captions = append(chart.Captions, "")
			chart.Marks = append(chart.Marks, fmt.Sprintf("%.2f", value))
		}
		chart.ColorBar = "Random Boarding Order"
		return chart, nil
	}

	palette := Tab10
	if assignment.Strategy() == boarding.OutsideIn && assignment.Groups() <= len(Set1Three) {
		palette = Set1Three
	}
	groupColor := func(group boarding.Group) color.Color {
		return palette[(int(group)-1)%len(palette)]
	}

	for seat := range grid.All() {
		group, err := assignment.GroupOf(seat)
		if err != nil {
			return Chart{}, err
		}
		chart.Fills = append(chart.Fills, groupColor(group))
		chart.Captions = append(chart.Captions, fmt.Sprintf("Group %d", group))
		chart.Marks = append(chart.Marks, strconv.Itoa(int(group)))
	}

	for group := 1; group <= assignment.Groups(); group++ {
		label := fmt.Sprintf("Group %d", group)
		if description := assignment.Label(boarding.Group(group)); description != "" {
			label += ": " + description
		}
		chart.Legend = append(chart.Legend, LegendEntry{Color: groupColor(boarding.Group(group)), Label: label})
	}

	chart.Note = "Boarding Order: " + strings.Join(lo.Map(assignment.BoardingOrder(), func(group boarding.Group, _ int) string {
		return fmt.Sprint(int(group))
	}), "→")
	return chart, nil
}

// Fill returns the color of a seat; seats outside the grid are white
func (chart Chart) Fill(seat layout.SeatId) color.Color {
	index, ok := chart.Grid.Index(seat)
	if !ok || index >= len(chart.Fills) {
		return color.White
	}
	return chart.Fills[index]
}

// Caption returns the text printed under the seat label
func (chart Chart) Caption(seat layout.SeatId) string {
	index, ok := chart.Grid.Index(seat)
	if !ok || index >= len(chart.Captions) {
		return ""
	}
	return chart.Captions[index]
}

// Mark returns the short text of a seat
func (chart Chart) Mark(seat layout.SeatId) string {
	index, ok := chart.Grid.Index(seat)
	if !ok || index >= len(chart.Marks) {
		return ""
	}
	return chart.Marks[index]
}

func chartName(id boarding.StrategyId) string {
	if name, ok := chartNames[id]; ok {
		return name
	}
	return strings.ReplaceAll(string(id), "-", "_")
}
