package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatHours(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{0, "0h"},
		{-1, "0h"},
		{0.5, "30m"},
		{1, "1h"},
		{7.5, "7.5h"},
		{12, "12h"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatHours(tc.hours), "hours=%v", tc.hours)
	}
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "45m", FormatElapsed(45*time.Minute))
	assert.Equal(t, "2h 5m", FormatElapsed(125*time.Minute))
}

func TestHumanDateFrom(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "Today", HumanDateFrom(now.Add(-2*time.Hour), now))
	assert.Equal(t, "Yesterday", HumanDateFrom(now.AddDate(0, 0, -1), now))
	assert.Equal(t, "Jun 1", HumanDateFrom(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), now))
	assert.Equal(t, "Dec 31 2024", HumanDateFrom(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), now))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "a long ...", Truncate("a long note about things", 10))
}

func TestRenderChart_NotEmpty(t *testing.T) {
	out := RenderChart([]string{"Sun", "Mon"}, []float64{0, 4}, 12)
	assert.Contains(t, out, "Sun")
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "4h")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := RenderTable([]string{"A", "LONGER"}, [][]string{{"x", "y"}})
	assert.Contains(t, out, "A")
	assert.Contains(t, out, "LONGER")
	assert.Contains(t, out, "─")
}
