package render

import (
	"bytes"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/limaJavier/boarding/pkg/boarding"
	"github.com/limaJavier/boarding/pkg/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestNewRenderer(t *testing.T) {
	for _, format := range Formats() {
		renderer, err := NewRenderer(format)

		require.NoError(t, err)
		assert.Equal(t, format, renderer.Extension())
		assert.NotEmpty(t, renderer.ContentType())
	}

	_, err := NewRenderer("svg")
	assert.Error(t, err)
}

func TestTextChart(t *testing.T) {
	//** Arrange
	chart := mustChart(t, boarding.BackToFront)
	var out bytes.Buffer

	//** Act
	err := NewTextRenderer().Render(&out, chart)

	//** Assert
	require.NoError(t, err)
	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "Back-to-Front Boarding Strategy", lines[0])
	assert.Contains(t, lines, "    A B C | D E F")
	assert.Contains(t, lines, "28  1 1 1 | 1 1 1")
	assert.Contains(t, lines, "48  6 6 6 | 6 6 6")
	assert.Contains(t, lines, "  Group 1: Rows 28-30")
	assert.Contains(t, lines, "  Boarding Order: 6→5→4→3→2→1")
}

func TestTextLayoutChartAlignsSeatLabels(t *testing.T) {
	var out bytes.Buffer

	err := NewTextRenderer().Render(&out, LayoutChart(layout.DefaultGrid(), ""))

	require.NoError(t, err)
	assert.Contains(t, out.String(), "\n35  35A 35B 35C | 35D 35E 35F\n")
	assert.Contains(t, out.String(), "\n      A   B   C |   D   E   F\n")
}

func TestPNGChartColorsSeats(t *testing.T) {
	//** Arrange
	chart := mustChart(t, boarding.BackToFront)
	var out bytes.Buffer

	//** Act
	err := NewPNGRenderer(DefaultUnit).Render(&out, chart)

	//** Assert
	require.NoError(t, err)
	image, err := png.Decode(&out)
	require.NoError(t, err)

	bounds := image.Bounds()
	assert.Greater(t, bounds.Dx(), 6*DefaultUnit)
	assert.Greater(t, bounds.Dy(), 21*DefaultUnit)

	// Top-left corner inside seat 28A (group 1) and 48F (group 6)
	assertColorNear(t, Tab10[0], image.At(80, 120))
	assertColorNear(t, Tab10[5], image.At(70+6*DefaultUnit-22, 110+20*DefaultUnit+10))
}

func TestWorkbookHasOneSheetPerChart(t *testing.T) {
	//** Arrange
	grid := layout.DefaultGrid()
	assignments, err := boarding.AssignAll(grid, boarding.DefaultOptions())
	require.NoError(t, err)

	charts := []Chart{LayoutChart(grid, "")}
	for _, assignment := range assignments {
		chart, err := AssignmentChart(assignment)
		require.NoError(t, err)
		charts = append(charts, chart)
	}
	var out bytes.Buffer

	//** Act
	err = WriteWorkbook(&out, charts)

	//** Assert
	require.NoError(t, err)
	file, err := excelize.OpenReader(&out)
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, []string{"aircraft_layout", "back_to_front_strategy", "outside_in_strategy", "hybrid_strategy", "random_boarding"}, file.GetSheetList())

	title, err := file.GetCellValue("hybrid_strategy", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Hybrid Boarding Strategy", title)

	// Column B holds seat column A, column E is the aisle, column F holds seat column D
	seat, err := file.GetCellValue("hybrid_strategy", "B4")
	require.NoError(t, err)
	assert.Equal(t, "28A\nGroup 3", seat)
	seat, err = file.GetCellValue("outside_in_strategy", "F24")
	require.NoError(t, err)
	assert.Equal(t, "48D\nGroup 3", seat)
	aisle, err := file.GetCellValue("outside_in_strategy", "E10")
	require.NoError(t, err)
	assert.Empty(t, aisle)

	row, err := file.GetCellValue("random_boarding", "A24")
	require.NoError(t, err)
	assert.Equal(t, "48", row)
	value, err := file.GetCellValue("random_boarding", "B4")
	require.NoError(t, err)
	assert.Equal(t, "28A\n0.37", value)
}

func TestWorkbookDeduplicatesSheetNames(t *testing.T) {
	chart := LayoutChart(layout.DefaultGrid(), "")
	var out bytes.Buffer

	err := WriteWorkbook(&out, []Chart{chart, chart})

	require.NoError(t, err)
	file, err := excelize.OpenReader(&out)
	require.NoError(t, err)
	defer file.Close()
	assert.Equal(t, []string{"aircraft_layout", "aircraft_layout_2"}, file.GetSheetList())
}

func TestWorkbookNeedsCharts(t *testing.T) {
	assert.Error(t, WriteWorkbook(&bytes.Buffer{}, nil))
}

func assertColorNear(t *testing.T, expected color.Color, actual color.Color) {
	t.Helper()
	er, eg, eb, _ := expected.RGBA()
	ar, ag, ab, _ := actual.RGBA()
	near := func(a, b uint32) bool {
		a, b = a>>8, b>>8
		return a+2 >= b && b+2 >= a
	}
	assert.True(t, near(er, ar) && near(eg, ag) && near(eb, ab), "expected %v, got %v", Hex(expected), Hex(actual))
}
