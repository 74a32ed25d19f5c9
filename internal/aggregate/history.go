package aggregate

import (
	"time"

	"github.com/mkallio/stint/internal/domain"
)

// FilterRange returns records whose start time falls within the inclusive
// [from, to] calendar-day range. Boundaries are start-of-day and end-of-day:
// a record started at 23:59 on the end date is included. This is the history
// view's filtering mode and involves no bucketing.
func FilterRange(records []domain.WorkRecord, from, to time.Time) []domain.WorkRecord {
	lo := StartOfDay(from)
	hi := StartOfDay(to).AddDate(0, 0, 1)

	var out []domain.WorkRecord
	for _, r := range records {
		if !r.StartTime.Before(lo) && r.StartTime.Before(hi) {
			out = append(out, r)
		}
	}
	return out
}

// RangeTotal sums total hours over the inclusive [from, to] range.
func RangeTotal(records []domain.WorkRecord, from, to time.Time) float64 {
	var total float64
	for _, r := range FilterRange(records, from, to) {
		total += r.TotalHours
	}
	return total
}
