package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

const maxSheetName = 31

type workbookRenderer struct{}

// NewWorkbookRenderer writes charts as XLSX workbooks with one colored sheet per chart
func NewWorkbookRenderer() Renderer {
	return &workbookRenderer{}
}

func (renderer *workbookRenderer) Extension() string { return "xlsx" }

func (renderer *workbookRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (renderer *workbookRenderer) Render(w io.Writer, chart Chart) error {
	return WriteWorkbook(w, []Chart{chart})
}

// WriteWorkbook writes every chart on its own sheet, in order
func WriteWorkbook(w io.Writer, charts []Chart) error {
	if len(charts) == 0 {
		return fmt.Errorf("a workbook needs at least one chart")
	}

	file := excelize.NewFile()
	defer file.Close()

	defaultSheet := file.GetSheetName(0)
	used := make(map[string]int)
	for i, chart := range charts {
		name := sheetName(chart, i)
		if used[name]++; used[name] > 1 {
			suffix := fmt.Sprintf("_%d", used[name])
			name = name[:min(len(name), maxSheetName-len(suffix))] + suffix
		}
		if i == 0 {
			if err := file.SetSheetName(defaultSheet, name); err != nil {
				return fmt.Errorf("cannot rename sheet %q: %w", defaultSheet, err)
			}
		} else if _, err := file.NewSheet(name); err != nil {
			return fmt.Errorf("cannot create sheet %q: %w", name, err)
		}

		if err := writeSheet(file, name, chart); err != nil {
			return fmt.Errorf("cannot write sheet %q: %w", name, err)
		}
	}
	file.SetActiveSheet(0)

	return file.Write(w)
}

// writeSheet lays the seats out like the drawing: row labels in column A, one spreadsheet column
// per seat column, an empty spreadsheet column for the aisle and the legend below the map
func writeSheet(file *excelize.File, sheet string, chart Chart) error {
	grid := chart.Grid
	sheetColumn := func(column int) int {
		if column >= grid.AisleSplit() {
			return column + 3 // Skip row labels and aisle
		}
		return column + 2
	}
	cell := func(column, row int) string {
		name, _ := excelize.CoordinatesToCellName(column, row)
		return name
	}

	titleStyle, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return err
	}
	headerStyle, err := file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}

	//** Title and headers
	if err := file.SetCellValue(sheet, "A1", chart.Title); err != nil {
		return err
	}
	if err := file.SetCellStyle(sheet, "A1", "A1", titleStyle); err != nil {
		return err
	}
	for i, column := range grid.Columns() {
		if err := file.SetCellValue(sheet, cell(sheetColumn(i), 3), column); err != nil {
			return err
		}
	}
	lastColumn := sheetColumn(grid.ColumnCount() - 1)
	if err := file.SetCellStyle(sheet, cell(1, 3), cell(lastColumn, 3), headerStyle); err != nil {
		return err
	}
	if err := file.SetCellValue(sheet, cell(grid.AisleSplit()+2, 2), "FRONT"); err != nil {
		return err
	}

	//** Seats
	styles := make(map[string]int) // Fill color -> style id
	seatStyle := func(fill string) (int, error) {
		if style, ok := styles[fill]; ok {
			return style, nil
		}
		style, err := file.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{fill}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
			Border: []excelize.Border{
				{Type: "left", Color: "000000", Style: 1},
				{Type: "top", Color: "000000", Style: 1},
				{Type: "right", Color: "000000", Style: 1},
				{Type: "bottom", Color: "000000", Style: 1},
			},
		})
		styles[fill] = style
		return style, err
	}

	firstRow := 4
	for seat := range grid.All() {
		column, _ := grid.ColumnIndex(seat.Column)
		position := cell(sheetColumn(column), firstRow+seat.Row-grid.RowMin())

		value := seat.String()
		if caption := chart.Caption(seat); caption != "" {
			value += "\n" + caption
		} else if chart.ColorBar != "" {
			value += "\n" + chart.Mark(seat)
		}
		if err := file.SetCellValue(sheet, position, value); err != nil {
			return err
		}

		style, err := seatStyle(Hex(chart.Fill(seat)))
		if err != nil {
			return err
		}
		if err := file.SetCellStyle(sheet, position, position, style); err != nil {
			return err
		}
	}
	for _, row := range grid.Rows() {
		position := cell(1, firstRow+row-grid.RowMin())
		if err := file.SetCellValue(sheet, position, row); err != nil {
			return err
		}
		if err := file.SetCellStyle(sheet, position, position, headerStyle); err != nil {
			return err
		}
	}
	lastRow := firstRow + grid.RowCount() - 1
	if err := file.SetCellValue(sheet, cell(grid.AisleSplit()+2, lastRow+1), "BACK"); err != nil {
		return err
	}

	//** Legend
	legendRow := lastRow + 3
	for i, entry := range chart.Legend {
		swatch := cell(1, legendRow+i)
		style, err := seatStyle(Hex(entry.Color))
		if err != nil {
			return err
		}
		if err := file.SetCellStyle(sheet, swatch, swatch, style); err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, cell(2, legendRow+i), entry.Label); err != nil {
			return err
		}
	}
	notes := []string{chart.Note, chart.ColorBar}
	for i, note := range notes {
		if note == "" {
			continue
		}
		if err := file.SetCellValue(sheet, cell(2, legendRow+len(chart.Legend)+i), note); err != nil {
			return err
		}
	}

	//** Geometry
	lastName, _ := excelize.ColumnNumberToName(lastColumn)
	if err := file.SetColWidth(sheet, "A", lastName, 9); err != nil {
		return err
	}
	aisleName, _ := excelize.ColumnNumberToName(grid.AisleSplit() + 2)
	if err := file.SetColWidth(sheet, aisleName, aisleName, 3); err != nil {
		return err
	}
	for row := firstRow; row <= lastRow; row++ {
		if err := file.SetRowHeight(sheet, row, 30); err != nil {
			return err
		}
	}
	return nil
}

// sheetName derives a valid sheet name from the chart name
func sheetName(chart Chart, index int) string {
	name := chart.Name
	if name == "" {
		name = fmt.Sprintf("chart_%d", index+1)
	}
	name = strings.NewReplacer("[", "", "]", "", ":", "", "*", "", "?", "", "/", "", "\\", "").Replace(name)
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	return name
}
