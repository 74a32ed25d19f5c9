package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/mkallio/stint/internal/domain"
)

// RecordOption customizes a test WorkRecord.
type RecordOption func(*domain.WorkRecord)

func WithNote(note string) RecordOption {
	return func(r *domain.WorkRecord) {
		r.Note = note
	}
}

func WithCompany(name string) RecordOption {
	return func(r *domain.WorkRecord) {
		r.CompanyName = name
	}
}

func WithLocation(label string, lat, lon float64) RecordOption {
	return func(r *domain.WorkRecord) {
		r.LocationLabel = label
		r.Latitude = &lat
		r.Longitude = &lon
	}
}

// NewTestRecord creates a record starting at start and lasting the given
// number of hours, with TotalHours already consistent.
func NewTestRecord(start time.Time, hours float64, opts ...RecordOption) domain.WorkRecord {
	r := domain.WorkRecord{
		ID:         uuid.New().String(),
		StartTime:  start,
		EndTime:    start.Add(time.Duration(hours * float64(time.Hour))),
		TotalHours: hours,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
