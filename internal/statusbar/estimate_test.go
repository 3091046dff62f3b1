package statusbar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/clockbar/internal/model"
)

func allOptionCombinations() []model.DisplayOptions {
	var combos []model.DisplayOptions
	for mask := 0; mask < 16; mask++ {
		combos = append(combos, model.DisplayOptions{
			ShowDay:     mask&1 != 0,
			TwelveHour:  mask&2 != 0,
			ShowSeconds: mask&4 != 0,
			ShowDate:    mask&8 != 0,
		})
	}
	return combos
}

func boolWidth(flag bool, width int) float64 {
	if flag {
		return float64(width)
	}
	return 0
}

func TestEstimateBaselineWidth_Formula(t *testing.T) {
	for _, opts := range allOptionCombinations() {
		expected := 55 + boolWidth(opts.ShowDay, 12) + boolWidth(opts.TwelveHour, 20) +
			boolWidth(opts.ShowSeconds, 15) + boolWidth(opts.ShowDate, 20)
		assert.Equal(t, expected, EstimateBaselineWidth(opts), "options %+v", opts)
	}
}

func TestEstimateBaselineWidth_Monotonic(t *testing.T) {
	combos := allOptionCombinations()
	for i, a := range combos {
		for j, b := range combos {
			// b enables a superset of a's flags
			if i&j == i {
				assert.LessOrEqual(t, EstimateBaselineWidth(a), EstimateBaselineWidth(b), "%+v vs %+v", a, b)
			}
		}
	}
}

func TestEstimateBaselineWidth_IgnoresCompactAndPlace(t *testing.T) {
	plain := model.DisplayOptions{ShowDay: true}
	extra := model.DisplayOptions{ShowDay: true, CompactMode: true, ShowPlace: true}
	assert.Equal(t, EstimateBaselineWidth(plain), EstimateBaselineWidth(extra))
}

func TestEstimateWidth_UsesEntryFormat(t *testing.T) {
	entry := model.TimezoneEntry{TimezoneID: "UTC", Format: model.FormatTwentyFourHourWithSeconds}
	opts := model.DisplayOptions{TwelveHour: true}

	// No twelve-hour term, seconds term from the entry
	assert.Equal(t, float64(55+15), EstimateWidth(opts, entry))
}

func TestEstimateWidth_DayAndDateFromGlobalOptions(t *testing.T) {
	entry := model.TimezoneEntry{TimezoneID: "UTC", Format: model.FormatTwelveHour}

	assert.Equal(t, float64(55+20), EstimateWidth(model.DisplayOptions{}, entry))
	assert.Equal(t, float64(55+12+20+20), EstimateWidth(model.DisplayOptions{ShowDay: true, ShowDate: true}, entry))
	// Global seconds flag does not leak into a pinned format
	assert.Equal(t, float64(55+20), EstimateWidth(model.DisplayOptions{ShowSeconds: true}, entry))
}

func TestEstimateWidth_GlobalFormatMatchesBaseline(t *testing.T) {
	entry := model.TimezoneEntry{TimezoneID: "UTC", Format: model.FormatGlobal}
	for _, opts := range allOptionCombinations() {
		assert.Equal(t, EstimateBaselineWidth(opts), EstimateWidth(opts, entry), "options %+v", opts)
	}
}
