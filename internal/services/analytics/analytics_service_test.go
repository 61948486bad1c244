package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartNormalization(t *testing.T) {
	chart := NewAnalyticsService().Chart()

	assert.Equal(t, "Employment Outcomes by Month", chart.Title)
	require.Len(t, chart.Bars, 12)

	// The tallest value (97, December) renders at exactly the maximum height.
	tallest := chart.Bars[11]
	assert.Equal(t, 97, tallest.Value)
	assert.Equal(t, "D", tallest.Label)
	assert.InDelta(t, 200.0, tallest.HeightPx, 1e-9)

	// Every other bar scales linearly against the maximum.
	january := chart.Bars[0]
	assert.Equal(t, 65, january.Value)
	assert.InDelta(t, 65.0/97.0*200, january.HeightPx, 1e-9)

	for _, bar := range chart.Bars {
		assert.LessOrEqual(t, bar.HeightPx, 200.0)
		assert.Greater(t, bar.HeightPx, 0.0)
	}
}

func TestNormalizeBarsEdgeCases(t *testing.T) {
	assert.Empty(t, NormalizeBars(nil, nil))

	zeros := NormalizeBars([]int{0, 0}, []string{"a", "b"})
	require.Len(t, zeros, 2)
	assert.Zero(t, zeros[0].HeightPx)
	assert.Zero(t, zeros[1].HeightPx)

	// Labels shorter than the dataset leave trailing bars unlabeled.
	bars := NormalizeBars([]int{10, 20}, []string{"only"})
	assert.Equal(t, "only", bars[0].Label)
	assert.Empty(t, bars[1].Label)
	assert.InDelta(t, 100.0, bars[0].HeightPx, 1e-9)
}

func TestStats(t *testing.T) {
	stats := NewAnalyticsService().Stats()
	require.Len(t, stats, 3)
	assert.Equal(t, "Total Placements", stats[0].Label)
}
