package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"

	chartBarWidth = 30
)

// RenderChart renders horizontal bars for a bucketed series, one row per
// bucket, scaled against yAxisMax so the visual proportions match the chart
// scaling contract.
func RenderChart(labels []string, buckets []float64, yAxisMax float64) string {
	if len(buckets) == 0 || yAxisMax <= 0 {
		return ""
	}

	labelWidth := 0
	for _, l := range labels {
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}

	var b strings.Builder
	for i, hours := range buckets {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}

		filled := int(hours / yAxisMax * chartBarWidth)
		if filled > chartBarWidth {
			filled = chartBarWidth
		}
		bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, chartBarWidth-filled)

		value := ""
		if hours > 0 {
			value = " " + FormatHours(hours)
		}

		fmt.Fprintf(&b, "%-*s %s%s\n",
			labelWidth, label,
			HoursStyle(hours).Render(bar),
			StyleFg.Render(value))
	}

	fmt.Fprintf(&b, "%s %s\n",
		strings.Repeat(" ", labelWidth),
		Dim(fmt.Sprintf("scale: 0–%s", FormatHours(yAxisMax))))

	return b.String()
}

// RenderStats renders the summary statistics line shown under a chart.
func RenderStats(total float64, workDays int, average, longest float64) string {
	return fmt.Sprintf("%s %s   %s %s   %s %s   %s %s",
		Dim("total"), Bold(FormatHours(total)),
		Dim("work days"), Bold(fmt.Sprintf("%d", workDays)),
		Dim("average"), Bold(FormatHours(average)),
		Dim("longest"), Bold(FormatHours(longest)))
}
