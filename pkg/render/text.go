package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/limaJavier/boarding/pkg/layout"
	"github.com/samber/lo"
)

type textRenderer struct{}

// NewTextRenderer prints charts as a monospace seat map
func NewTextRenderer() Renderer {
	return &textRenderer{}
}

func (renderer *textRenderer) Extension() string { return "txt" }

func (renderer *textRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (renderer *textRenderer) Render(w io.Writer, chart Chart) error {
	grid := chart.Grid
	columns := grid.Columns()

	// Every cell is as wide as the widest mark (or column symbol)
	width := lo.Max(append(
		lo.Map(chart.Marks, func(mark string, _ int) int { return len(mark) }),
		lo.Map(columns, func(column string, _ int) int { return len(column) })...,
	))
	rowWidth := len(strconv.Itoa(grid.RowMax()))

	line := func(cells []string) string {
		left := strings.Join(cells[:grid.AisleSplit()], " ")
		right := strings.Join(cells[grid.AisleSplit():], " ")
		return left + " | " + right
	}
	pad := func(text string) string {
		return fmt.Sprintf("%*s", width, text)
	}

	out := bufio.NewWriter(w)
	fmt.Fprintln(out, chart.Title)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%*s  %s\n", rowWidth, "", line(lo.Map(columns, func(column string, _ int) string { return pad(column) })))
	fmt.Fprintf(out, "%*s  FRONT\n", rowWidth, "")
	for _, row := range grid.Rows() {
		cells := lo.Map(columns, func(column string, _ int) string {
			return pad(chart.Mark(layout.NewSeatId(row, column)))
		})
		fmt.Fprintf(out, "%*d  %s\n", rowWidth, row, line(cells))
	}
	fmt.Fprintf(out, "%*s  BACK\n", rowWidth, "")

	if len(chart.Legend) > 0 {
		fmt.Fprintln(out)
		for _, entry := range chart.Legend {
			fmt.Fprintf(out, "  %s\n", entry.Label)
		}
	}
	if chart.Note != "" {
		fmt.Fprintf(out, "  %s\n", chart.Note)
	}
	if chart.ColorBar != "" {
		fmt.Fprintf(out, "  %s: 0.00 boards first, 1.00 boards last\n", chart.ColorBar)
	}
	return out.Flush()
}
