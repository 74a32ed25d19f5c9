package domain

import (
	"fmt"
	"strings"
	"time"
)

// NoteMaxWords caps the free-text note length. Truncation happens at the
// input boundary (CLI), not inside the Store.
const NoteMaxWords = 30

// LocationUnavailable is the placeholder label used when a record has no
// resolvable address.
const LocationUnavailable = "Unknown location"

// WorkRecord is one completed work session. Records are immutable values:
// edits replace the whole record, preserving only the ID.
type WorkRecord struct {
	ID            string
	StartTime     time.Time
	EndTime       time.Time
	TotalHours    float64
	LocationLabel string
	Latitude      *float64
	Longitude     *float64
	Note          string
	CompanyName   string
}

// HoursBetween computes the duration between start and end in hours.
// The stored TotalHours must always equal this recomputation.
func HoursBetween(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

// Validate checks the time-range invariant.
func (r *WorkRecord) Validate() error {
	if r.EndTime.Before(r.StartTime) {
		return fmt.Errorf("record %s: end %s before start %s", r.ID,
			r.EndTime.Format(time.RFC3339), r.StartTime.Format(time.RFC3339))
	}
	return nil
}

// TruncateNote limits a note to NoteMaxWords words.
func TruncateNote(note string) string {
	words := strings.Fields(note)
	if len(words) <= NoteMaxWords {
		return note
	}
	return strings.Join(words[:NoteMaxWords], " ")
}
