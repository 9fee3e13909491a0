package render

import (
	"image/color"
	"io"
	"strconv"

	"github.com/fogleman/gg"
)

// DefaultUnit is the side, in pixels, of the cell holding one seat
const DefaultUnit = 64

const (
	aisleGap     = 0.5 // Extra cells between the seat blocks
	seatFraction = 0.8 // Side of a seat relative to its cell
	legendWidth  = 340
)

type pngRenderer struct {
	unit float64
}

// NewPNGRenderer draws charts with seats of unit x unit pixels
func NewPNGRenderer(unit int) Renderer {
	if unit <= 0 {
		unit = DefaultUnit
	}
	return &pngRenderer{unit: float64(unit)}
}

func (renderer *pngRenderer) Extension() string { return "png" }

func (renderer *pngRenderer) ContentType() string { return "image/png" }

func (renderer *pngRenderer) Render(w io.Writer, chart Chart) error {
	return renderer.Draw(chart).EncodePNG(w)
}

// Draw paints the chart on a new context
func (renderer *pngRenderer) Draw(chart Chart) *gg.Context {
	unit := renderer.unit
	grid := chart.Grid
	rows := float64(grid.RowCount())
	cabinWidth := (float64(grid.ColumnCount()) + aisleGap) * unit

	left, top, bottom := 70.0, 110.0, 70.0
	width := int(left + cabinWidth + unit + legendWidth)
	height := int(top + rows*unit + bottom)

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	seatX := func(column int) float64 {
		x := float64(column) + 0.5
		if column >= grid.AisleSplit() {
			x += aisleGap
		}
		return left + x*unit
	}
	seatY := func(row int) float64 {
		return top + (float64(row-grid.RowMin())+0.5)*unit
	}

	//** Title and cabin ends
	dc.SetColor(color.Black)
	dc.DrawStringAnchored(chart.Title, float64(width)/2, 25, 0.5, 0.5)
	aisleX := left + (float64(grid.AisleSplit())+aisleGap/2)*unit
	dc.DrawStringAnchored("FRONT", aisleX, 55, 0.5, 0.5)
	dc.DrawStringAnchored("BACK", aisleX, top+rows*unit+35, 0.5, 0.5)

	//** Column and row labels
	for i, column := range grid.Columns() {
		dc.DrawStringAnchored(column, seatX(i), top-20, 0.5, 0.5)
	}
	for _, row := range grid.Rows() {
		dc.DrawStringAnchored(strconv.Itoa(row), left-15, seatY(row), 1, 0.5)
	}

	//** Seats
	side := seatFraction * unit
	for seat := range grid.All() {
		column, _ := grid.ColumnIndex(seat.Column)
		x, y := seatX(column), seatY(seat.Row)

		dc.DrawRectangle(x-side/2, y-side/2, side, side)
		dc.SetColor(chart.Fill(seat))
		dc.FillPreserve()
		dc.SetColor(color.Black)
		dc.SetLineWidth(1)
		dc.Stroke()

		caption := chart.Caption(seat)
		if caption == "" {
			dc.DrawStringAnchored(seat.String(), x, y, 0.5, 0.5)
		} else {
			dc.DrawStringAnchored(seat.String(), x, y-side/6, 0.5, 0.5)
			dc.DrawStringAnchored(caption, x, y+side/5, 0.5, 0.5)
		}
	}

	//** Aisle and outline
	dc.SetColor(color.Gray{Y: 0x80})
	dc.SetDash(6, 4)
	dc.DrawLine(aisleX, top, aisleX, top+rows*unit)
	dc.Stroke()
	dc.SetDash()
	dc.SetLineWidth(2)
	dc.DrawRectangle(left, top, cabinWidth, rows*unit)
	dc.Stroke()

	//** Legend
	legendX := left + cabinWidth + unit
	y := top
	for _, entry := range chart.Legend {
		dc.DrawRectangle(legendX, y, 16, 16)
		dc.SetColor(entry.Color)
		dc.FillPreserve()
		dc.SetColor(color.Black)
		dc.SetLineWidth(1)
		dc.Stroke()
		dc.DrawStringAnchored(entry.Label, legendX+24, y+8, 0, 0.5)
		y += 24
	}
	if chart.Note != "" {
		dc.DrawStringAnchored(chart.Note, legendX, y+8, 0, 0.5)
		y += 24
	}
	if chart.ColorBar != "" {
		y = renderer.drawColorBar(dc, chart.ColorBar, legendX, y)
	}

	//** Boarding direction
	arrowY := y + 40
	dc.SetLineWidth(2)
	dc.DrawLine(legendX+8, arrowY, legendX+8, arrowY+60)
	dc.Stroke()
	dc.MoveTo(legendX, arrowY+60)
	dc.LineTo(legendX+16, arrowY+60)
	dc.LineTo(legendX+8, arrowY+75)
	dc.ClosePath()
	dc.Fill()
	dc.DrawStringAnchored("Boarding Direction", legendX+24, arrowY+30, 0, 0.5)

	return dc
}

// drawColorBar draws a vertical viridis scale (0 at the bottom) and returns the y below it
func (renderer *pngRenderer) drawColorBar(dc *gg.Context, label string, x, y float64) float64 {
	const barHeight = 200.0
	const barWidth = 20.0

	dc.SetColor(color.Black)
	dc.DrawStringAnchored(label, x, y+8, 0, 0.5)
	y += 24

	for step := 0; step < int(barHeight); step++ {
		dc.SetColor(Viridis(1 - float64(step)/barHeight))
		dc.DrawRectangle(x, y+float64(step), barWidth, 1)
		dc.Fill()
	}
	dc.SetColor(color.Black)
	dc.SetLineWidth(1)
	dc.DrawRectangle(x, y, barWidth, barHeight)
	dc.Stroke()
	dc.DrawStringAnchored("1.0", x+barWidth+6, y, 0, 0.5)
	dc.DrawStringAnchored("0.5", x+barWidth+6, y+barHeight/2, 0, 0.5)
	dc.DrawStringAnchored("0.0", x+barWidth+6, y+barHeight, 0, 0.5)
	return y + barHeight + 8
}
