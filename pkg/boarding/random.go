package boarding

import (
	"github.com/limaJavier/boarding/internal/mt19937"
	"github.com/limaJavier/boarding/pkg/layout"
)

// Source is a seeded stream of values in [0, 1)
type Source interface {
	Float64() float64
}

// SourceFactory builds a fresh source for a seed
type SourceFactory func(seed int64) Source

// LegacySource is the default factory: the 32-bit Mersenne Twister of the original figures
func LegacySource(seed int64) Source {
	return mt19937.New(uint32(seed))
}

type randomStrategy struct {
	seed   int64
	source SourceFactory
}

type RandomOption func(*randomStrategy)

// WithSource replaces the pseudorandom generator used for the draws
func WithSource(factory SourceFactory) RandomOption {
	return func(strategy *randomStrategy) {
		strategy.source = factory
	}
}

// NewRandomStrategy gives every seat an independent uniform value in [0, 1).
// Exactly one value is drawn per seat in canonical order, so the result only depends on seed and grid
func NewRandomStrategy(seed int64, options ...RandomOption) Strategy {
	strategy := &randomStrategy{
		seed:   seed,
		source: LegacySource,
	}
	for _, option := range options {
		option(strategy)
	}
	return strategy
}

func (strategy *randomStrategy) Id() StrategyId { return Random }

func (strategy *randomStrategy) Assign(grid *layout.SeatGrid) (*Assignment, error) {
	if err := validateSeed(strategy.seed); err != nil {
		return nil, err
	}

	// Fresh source per call: repeated calls on the same strategy draw the same values
	source := strategy.source(strategy.seed)
	values := make([]float64, 0, grid.Size())
	for range grid.All() {
		values = append(values, source.Float64())
	}

	return newContinuousAssignment(Random, grid, values)
}
