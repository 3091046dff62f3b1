package clock

import (
	"testing"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets_AllLoad(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Presets() {
		assert.False(t, seen[p.Timezone], "duplicate preset %s", p.Timezone)
		seen[p.Timezone] = true

		_, err := LoadLocation(p.Timezone)
		require.NoError(t, err, "preset %s", p.Name)
	}
}

func TestPresetTimezones_Order(t *testing.T) {
	names := PresetTimezones()
	require.Len(t, names, len(Presets()))
	assert.Equal(t, "Local", names[0])
	assert.Equal(t, "UTC", names[1])
}
