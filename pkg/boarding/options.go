package boarding

import (
	"fmt"
	"math"

	"github.com/mitchellh/mapstructure"
)

const (
	DefaultZoneCount    = 6
	DefaultSectionCount = 3
	DefaultSeed         = 42
)

// Options holds the parameters recognized by the strategies
type Options struct {
	ZoneCount    int   `mapstructure:"zoneCount"`    // Used by back-to-front
	SectionCount int   `mapstructure:"sectionCount"` // Used by hybrid
	Seed         int64 `mapstructure:"seed"`         // Used by random
}

func DefaultOptions() Options {
	return Options{
		ZoneCount:    DefaultZoneCount,
		SectionCount: DefaultSectionCount,
		Seed:         DefaultSeed,
	}
}

// OptionsFromMap decodes loosely typed options (JSON documents, query strings) on top of the defaults.
// Unrecognized keys are ignored; values are only range-checked by the strategy that uses them
func OptionsFromMap(raw map[string]any) (Options, error) {
	return DefaultOptions().With(raw)
}

// With decodes loosely typed options on top of a copy of options
func (options Options) With(raw map[string]any) (Options, error) {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &options,
	})
	if err != nil {
		return Options{}, err
	}

	if err := decoder.Decode(raw); err != nil {
		return Options{}, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	return options, nil
}

func validateCount(name string, count int, rows int) error {
	if count <= 0 || count > rows {
		return fmt.Errorf("%w: %s must be between 1 and the row count %d: %d", ErrInvalidConfiguration, name, rows, count)
	}
	return nil
}

func validateSeed(seed int64) error {
	if seed < 0 || seed > math.MaxUint32 {
		return fmt.Errorf("%w: seed must be between 0 and %d: %d", ErrInvalidConfiguration, uint32(math.MaxUint32), seed)
	}
	return nil
}
