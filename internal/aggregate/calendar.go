package aggregate

import "time"

// Calendar pins the bucketing rules that would otherwise depend on host
// locale state: the week-start weekday and the notion of "now". Tests inject
// a fixed Now for determinism.
type Calendar struct {
	WeekStart time.Weekday
	Now       func() time.Time
}

func (c Calendar) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the midnight starting the calendar week containing t.
func (c Calendar) StartOfWeek(t time.Time) time.Time {
	sod := StartOfDay(t)
	back := (int(sod.Weekday()) - int(c.WeekStart) + 7) % 7
	return sod.AddDate(0, 0, -back)
}

// DaysInMonth returns the number of days in t's month.
func DaysInMonth(t time.Time) int {
	y, m, _ := t.Date()
	// Day zero of the next month is the last day of this one.
	return time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// civilDays counts whole calendar days from a's date to b's date. Both dates
// are re-anchored in UTC so daylight-saving shifts cannot produce fractional
// day offsets.
func civilDays(a, b time.Time) int {
	ya, ma, da := a.Date()
	yb, mb, db := b.Date()
	ua := time.Date(ya, ma, da, 0, 0, 0, 0, time.UTC)
	ub := time.Date(yb, mb, db, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
