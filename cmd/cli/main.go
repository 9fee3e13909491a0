package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/limaJavier/boarding/internal/config"
	"github.com/limaJavier/boarding/internal/logger"
	"github.com/limaJavier/boarding/pkg/boarding"
	"github.com/limaJavier/boarding/pkg/render"
	"github.com/samber/lo"
)

const workbookName = "boarding_strategies"

func main() {
	cfg, err := config.Load() // Loads .env before the logger reads LOG_LEVEL
	l := logger.Setup()
	if err != nil {
		fatal(l, "config_error", err)
	}

	// Define arguments
	strategyPtr := flag.String("strategy", "all", fmt.Sprintf("Strategy to chart. Allowed values are %v or \"all\", where \"all\" is the default", boarding.ListStrategies()))
	formatPtr := flag.String("format", "png", fmt.Sprintf("Chart format. Allowed values are %v, where \"png\" is the default", render.Formats()))
	outPtr := flag.String("out", cfg.OutputDir, "Directory where the charts will be written")
	zonesPtr := flag.Int("zones", cfg.ZoneCount, "Number of row zones used by back-to-front")
	sectionsPtr := flag.Int("sections", cfg.SectionCount, "Number of row sections used by hybrid")
	seedPtr := flag.Int64("seed", cfg.Seed, "Seed of the random strategy")
	aircraftPtr := flag.String("aircraft", cfg.Aircraft, "Aircraft name printed on the seating chart")
	printPtr := flag.Bool("print", false, "Print text charts to the Standard Output instead of writing files")
	flag.Parse()
	strategy := strings.ToLower(*strategyPtr)
	format := strings.ToLower(*formatPtr)
	outDir := *outPtr

	// Validate arguments
	ids := boarding.ListStrategies()
	if strategy != "all" {
		id, err := boarding.ParseStrategyId(strategy)
		if err != nil {
			fatal(l, "invalid_strategy", err)
		}
		ids = []boarding.StrategyId{id}
	}
	if !slices.Contains(render.Formats(), format) {
		fatal(l, "invalid_format", fmt.Errorf("%v is not a valid format", format))
	} else if outDir == "" && !*printPtr {
		fatal(l, "invalid_output", fmt.Errorf("an output directory must be specified"))
	}

	grid, err := cfg.Grid()
	if err != nil {
		fatal(l, "layout_error", err)
	}
	options := boarding.Options{ZoneCount: *zonesPtr, SectionCount: *sectionsPtr, Seed: *seedPtr}
	l.Debug("cli_start", "grid", grid.String(), "strategies", ids, "format", format)

	// Compute every requested assignment
	charts := make([]render.Chart, 0, len(ids)+1)
	if strategy == "all" {
		charts = append(charts, render.LayoutChart(grid, *aircraftPtr))
	}
	for _, id := range ids {
		assignment, err := boarding.Assign(id, grid, options)
		if err != nil {
			fatal(l, "assignment_error", err)
		}
		chart, err := render.AssignmentChart(assignment)
		if err != nil {
			fatal(l, "chart_error", err)
		}
		charts = append(charts, chart)
	}

	if *printPtr {
		renderer := render.NewTextRenderer()
		for _, chart := range charts {
			if err := renderer.Render(os.Stdout, chart); err != nil {
				fatal(l, "print_error", err)
			}
			fmt.Println()
		}
		return
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fatal(l, "output_error", err)
	}

	// A workbook keeps every chart in one file
	if format == "xlsx" {
		path := filepath.Join(outDir, workbookName+".xlsx")
		if err := writeFile(path, func(file *os.File) error { return render.WriteWorkbook(file, charts) }); err != nil {
			fatal(l, "write_error", err)
		}
		l.Info("chart_written", "path", path, "sheets", len(charts))
		return
	}

	renderer := lo.Must(render.NewRenderer(format))
	for _, chart := range charts {
		path := filepath.Join(outDir, chart.Name+"."+renderer.Extension())
		if err := writeFile(path, func(file *os.File) error { return renderer.Render(file, chart) }); err != nil {
			fatal(l, "write_error", err)
		}
		l.Info("chart_written", "path", path)
	}
}

func writeFile(path string, write func(*os.File) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %v: %w", path, err)
	}
	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("cannot write %v: %w", path, err)
	}
	return file.Close()
}

func fatal(l *slog.Logger, msg string, err error) {
	l.Error(msg, "err", err)
	os.Exit(1)
}
