package boarding

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsFromMapDefaults(t *testing.T) {
	options, err := OptionsFromMap(nil)

	require.NoError(t, err)
	assert.Equal(t, Options{ZoneCount: 6, SectionCount: 3, Seed: 42}, options)
}

func TestOptionsFromMapOverrides(t *testing.T) {
	scenarios := []struct {
		raw      map[string]any
		expected Options
	}{
		{map[string]any{"zoneCount": 4}, Options{ZoneCount: 4, SectionCount: 3, Seed: 42}},
		{map[string]any{"sectionCount": float64(2), "seed": float64(7)}, Options{ZoneCount: 6, SectionCount: 2, Seed: 7}},
		{map[string]any{"zoneCount": "5", "seed": "11"}, Options{ZoneCount: 5, SectionCount: 3, Seed: 11}},
		{map[string]any{"zonecount": 2}, Options{ZoneCount: 2, SectionCount: 3, Seed: 42}},
		{map[string]any{"unknown": true, "color": "red"}, DefaultOptions()},
		{map[string]any{"zoneCount": 0}, Options{ZoneCount: 0, SectionCount: 3, Seed: 42}},
	}

	for _, scenario := range scenarios {
		options, err := OptionsFromMap(scenario.raw)

		require.NoError(t, err, "%v", scenario.raw)
		assert.Equal(t, scenario.expected, options)
	}
}

func TestOptionsFromMapRejectsMalformedValues(t *testing.T) {
	_, err := OptionsFromMap(map[string]any{"zoneCount": "many"})

	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestOptionsWithKeepsBase(t *testing.T) {
	base := Options{ZoneCount: 3, SectionCount: 2, Seed: 9}

	options, err := base.With(map[string]any{"seed": "10"})

	require.NoError(t, err)
	assert.Equal(t, Options{ZoneCount: 3, SectionCount: 2, Seed: 10}, options)
	assert.EqualValues(t, 9, base.Seed)
}
