package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/limaJavier/boarding/pkg/boarding"
	"github.com/limaJavier/boarding/pkg/layout"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

const DefaultPath = "config.json"

type Config struct {
	Aircraft     string   `mapstructure:"aircraft"`
	RowMin       int      `mapstructure:"rowMin"`
	RowMax       int      `mapstructure:"rowMax"`
	Columns      []string `mapstructure:"columns"`
	AisleSplit   int      `mapstructure:"aisleSplit"`
	ZoneCount    int      `mapstructure:"zoneCount"`
	SectionCount int      `mapstructure:"sectionCount"`
	Seed         int64    `mapstructure:"seed"`
	Port         string   `mapstructure:"port"`
	OutputDir    string   `mapstructure:"outputDir"`
}

// Default is the Boeing 737-800 rear cabin with the default strategy options
func Default() Config {
	return Config{
		Aircraft:     "Boeing 737-800",
		RowMin:       layout.DefaultRowMin,
		RowMax:       layout.DefaultRowMax,
		Columns:      slices.Clone(layout.DefaultColumns),
		AisleSplit:   layout.DefaultAisleSplit,
		ZoneCount:    boarding.DefaultZoneCount,
		SectionCount: boarding.DefaultSectionCount,
		Seed:         boarding.DefaultSeed,
		Port:         "8080",
		OutputDir:    "visualizations",
	}
}

// Load reads .env, then the JSON file named by BOARDING_CONFIG (config.json when unset), then the environment.
// A missing default config file is not an error; a missing file named explicitly is
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	path, explicit := os.LookupEnv("BOARDING_CONFIG")
	if !explicit || path == "" {
		path = DefaultPath
	}

	config, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		config, err = Default(), nil
	}
	if err != nil {
		return Config{}, err
	}

	if err := config.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return config, nil
}

// LoadFile decodes a JSON config file on top of the defaults
func LoadFile(path string) (Config, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file %q: %w", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("cannot parse config file %q: %w", path, err)
	}

	config := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ZeroFields:       true, // Decoded columns replace the default alphabet instead of overwriting a prefix
		Result:           &config,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("cannot decode config file %q: %w", path, err)
	}
	return config, nil
}

func (config *Config) applyEnv(lookup func(string) (string, bool)) error {
	integers := map[string]*int{
		"BOARDING_ROW_MIN":     &config.RowMin,
		"BOARDING_ROW_MAX":     &config.RowMax,
		"BOARDING_AISLE_SPLIT": &config.AisleSplit,
		"BOARDING_ZONES":       &config.ZoneCount,
		"BOARDING_SECTIONS":    &config.SectionCount,
	}
	for name, target := range integers {
		value, ok := lookup(name)
		if !ok || value == "" {
			continue
		}
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s must be an integer: %q", name, value)
		}
		*target = parsed
	}

	if value, ok := lookup("BOARDING_SEED"); ok && value != "" {
		seed, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return fmt.Errorf("BOARDING_SEED must be an integer: %q", value)
		}
		config.Seed = seed
	}
	if value, ok := lookup("BOARDING_COLUMNS"); ok && value != "" {
		config.Columns = ParseColumns(value)
	}
	if value, ok := lookup("APP_PORT"); ok && value != "" {
		config.Port = value
	}
	if value, ok := lookup("OUTPUT_DIR"); ok && value != "" {
		config.OutputDir = value
	}
	return nil
}

// ParseColumns accepts "A,B,C,D,E,F" or "ABCDEF"
func ParseColumns(value string) []string {
	var columns []string
	if strings.Contains(value, ",") {
		columns = strings.Split(value, ",")
	} else {
		columns = strings.Split(value, "")
	}
	return lo.Compact(lo.Map(columns, func(column string, _ int) string { return strings.TrimSpace(column) }))
}

// Grid builds the configured seat grid
func (config Config) Grid() (*layout.SeatGrid, error) {
	return layout.NewSeatGrid(config.RowMin, config.RowMax, config.Columns, config.AisleSplit)
}

// Options returns the configured strategy options
func (config Config) Options() boarding.Options {
	return boarding.Options{
		ZoneCount:    config.ZoneCount,
		SectionCount: config.SectionCount,
		Seed:         config.Seed,
	}
}
