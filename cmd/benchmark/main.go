package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/limaJavier/boarding/pkg/boarding"
	"github.com/limaJavier/boarding/pkg/layout"
	"github.com/samber/lo"
)

const repetitions = 50

// Cabins are written as "ROWMIN-ROWMAX:LEFT|RIGHT"
var defaultCabins = []string{
	"28-48:ABC|DEF",
	"1-30:ABC|DEF",
	"1-20:AC|DF",
	"1-12:A|C",
	"10-60:ABC|DEF",
}

type CabinMetadata struct {
	Name    string
	Rows    int
	Columns int
	Seats   int
}

type BenchmarkResult struct {
	Strategy     boarding.StrategyId
	Cabin        CabinMetadata
	Groups       int
	LargestGroup int
	Smallest     int
	Duration     time.Duration // Mean over repetitions
}

func main() {
	outPtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file where the results will be written")
	cabinsPtr := flag.String("cabins", strings.Join(defaultCabins, ","), "Comma separated cabins written as ROWMIN-ROWMAX:LEFT|RIGHT")
	flag.Parse()

	results := make([]BenchmarkResult, 0)
	for _, cabin := range strings.Split(*cabinsPtr, ",") {
		grid, err := parseCabin(cabin)
		if err != nil {
			log.Fatalf("invalid cabin %q: %v", cabin, err)
		}
		metadata := CabinMetadata{Name: cabin, Rows: grid.RowCount(), Columns: grid.ColumnCount(), Seats: grid.Size()}

		for _, id := range boarding.ListStrategies() {
			fmt.Printf("Benchmarking strategy \"%v\" on cabin \"%v\"\n", id, cabin)
			result, err := measure(id, grid)
			if err != nil {
				log.Fatalf("an error occurred while assigning cabin %q with strategy %q: %v", cabin, id, err)
			}
			result.Cabin = metadata
			results = append(results, result)
		}
	}

	toCsv(*outPtr, results)
}

// parseCabin builds a grid from "ROWMIN-ROWMAX:LEFT|RIGHT" (e.g. "28-48:ABC|DEF")
func parseCabin(cabin string) (*layout.SeatGrid, error) {
	rowsStr, columnsStr, ok := strings.Cut(strings.TrimSpace(cabin), ":")
	if !ok {
		return nil, fmt.Errorf("missing ':' between rows and columns")
	}
	minStr, maxStr, ok := strings.Cut(rowsStr, "-")
	if !ok {
		return nil, fmt.Errorf("missing '-' between first and last row")
	}
	rowMin, err := strconv.Atoi(minStr)
	if err != nil {
		return nil, err
	}
	rowMax, err := strconv.Atoi(maxStr)
	if err != nil {
		return nil, err
	}
	left, right, ok := strings.Cut(columnsStr, "|")
	if !ok {
		return nil, fmt.Errorf("missing '|' at the aisle")
	}

	columns := append(strings.Split(left, ""), strings.Split(right, "")...)
	return layout.NewSeatGrid(rowMin, rowMax, columns, len(left))
}

func measure(id boarding.StrategyId, grid *layout.SeatGrid) (BenchmarkResult, error) {
	options := boarding.DefaultOptions()
	options.ZoneCount = min(options.ZoneCount, grid.RowCount())
	options.SectionCount = min(options.SectionCount, grid.RowCount())

	var assignment *boarding.Assignment
	start := time.Now()
	for range repetitions {
		var err error
		if assignment, err = boarding.Assign(id, grid, options); err != nil {
			return BenchmarkResult{}, err
		}
	}
	duration := time.Since(start) / repetitions

	sizes := lo.Map(assignment.BoardingOrder(), func(group boarding.Group, _ int) int {
		return len(assignment.Members(group))
	})
	return BenchmarkResult{
		Strategy:     id,
		Groups:       assignment.Groups(),
		LargestGroup: lo.Max(sizes),
		Smallest:     lo.Min(sizes),
		Duration:     duration,
	}, nil
}

func toCsv(path string, results []BenchmarkResult) {
	file, err := os.Create(path)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Strategy", "Cabin", "Rows", "Columns", "Seats", "Groups", "Largest Group", "Smallest Group", "Duration(us)"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			string(result.Strategy),
			result.Cabin.Name,
			fmt.Sprintf("%d", result.Cabin.Rows),
			fmt.Sprintf("%d", result.Cabin.Columns),
			fmt.Sprintf("%d", result.Cabin.Seats),
			fmt.Sprintf("%d", result.Groups),
			fmt.Sprintf("%d", result.LargestGroup),
			fmt.Sprintf("%d", result.Smallest),
			fmt.Sprintf("%d", result.Duration.Microseconds()),
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}
