// Package aggregate is the pure session aggregation and filtering engine.
// It buckets work records into calendar periods, computes summary statistics,
// and filters by explicit date ranges. It holds no state: results are a
// function of the record snapshot, the window spec, the company filter, and
// the calendar.
package aggregate

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/mkallio/stint/internal/domain"
)

// Window selects the aggregation period.
type Window string

const (
	Weekly   Window = "weekly"
	BiWeekly Window = "biweekly"
	Monthly  Window = "monthly"
)

// ParseWindow parses a window spec from user input.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case Weekly, BiWeekly, Monthly:
		return Window(s), nil
	default:
		return "", fmt.Errorf("unknown window %q (want weekly, biweekly, or monthly)", s)
	}
}

// Stats are the derived statistics over a bucketed series, never over raw
// records: an overnight session still counts as one bucket's worth.
type Stats struct {
	Total    float64
	WorkDays int
	Average  float64
	Longest  float64
}

// Result is the aggregation output consumed by the presentation layer.
type Result struct {
	Window   Window
	Filter   CompanyFilter
	Buckets  []float64
	Labels   []string
	Stats    Stats
	YAxisMax float64
}

// Aggregate buckets the filtered records into the window's calendar slots.
// A record is attributed to exactly one bucket by its start time; sessions
// spanning bucket boundaries are never split.
func Aggregate(records []domain.WorkRecord, w Window, f CompanyFilter, cal Calendar) Result {
	now := cal.now()

	var buckets []float64
	var index func(r domain.WorkRecord) (int, bool)

	switch w {
	case BiWeekly:
		base := StartOfDay(now).AddDate(0, 0, -13)
		buckets = make([]float64, 14)
		index = func(r domain.WorkRecord) (int, bool) {
			off := civilDays(base, r.StartTime)
			return off, off >= 0 && off < 14
		}
	case Monthly:
		buckets = make([]float64, DaysInMonth(now))
		index = func(r domain.WorkRecord) (int, bool) {
			if r.StartTime.Year() != now.Year() || r.StartTime.Month() != now.Month() {
				return 0, false
			}
			return r.StartTime.Day() - 1, true
		}
	default: // Weekly
		weekStart := cal.StartOfWeek(now)
		buckets = make([]float64, 7)
		index = func(r domain.WorkRecord) (int, bool) {
			off := civilDays(weekStart, r.StartTime)
			// Buckets stay Sunday-indexed even when the week starts elsewhere.
			return int(r.StartTime.Weekday()), off >= 0 && off < 7
		}
	}

	for _, r := range f.Apply(records) {
		idx, ok := index(r)
		if !ok {
			continue
		}
		if r.TotalHours > 0 {
			buckets[idx] += r.TotalHours
		}
	}

	return Result{
		Window:   w,
		Filter:   f,
		Buckets:  buckets,
		Labels:   bucketLabels(w, cal, now),
		Stats:    CalculateStats(buckets),
		YAxisMax: YAxisMax(buckets),
	}
}

// CalculateStats derives summary statistics from a bucketed series.
func CalculateStats(buckets []float64) Stats {
	var s Stats
	for _, h := range buckets {
		s.Total += h
		if h > 0 {
			s.WorkDays++
		}
		if h > s.Longest {
			s.Longest = h
		}
	}
	if s.WorkDays > 0 {
		s.Average = s.Total / float64(s.WorkDays)
	}
	return s
}

// YAxisMax is the chart scaling contract: the axis is floored at 12 hours
// unless the data's maximum is below 1, in which case it is floored at 1.
func YAxisMax(buckets []float64) float64 {
	var m float64
	for _, h := range buckets {
		if h > m {
			m = h
		}
	}
	floor := 12.0
	if m < 1 {
		floor = 1
	}
	if m > floor {
		return m
	}
	return floor
}

func bucketLabels(w Window, cal Calendar, now time.Time) []string {
	switch w {
	case BiWeekly:
		base := StartOfDay(now).AddDate(0, 0, -13)
		labels := make([]string, 14)
		for i := range labels {
			labels[i] = base.AddDate(0, 0, i).Format("Jan 2")
		}
		return labels
	case Monthly:
		labels := make([]string, DaysInMonth(now))
		for i := range labels {
			labels[i] = strconv.Itoa(i + 1)
		}
		return labels
	default:
		return []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	}
}

// SortByStartDesc orders a record snapshot newest-first for display.
func SortByStartDesc(records []domain.WorkRecord) {
	sort.Slice(records, func(i, j int) bool {
		return records[i].StartTime.After(records[j].StartTime)
	})
}
