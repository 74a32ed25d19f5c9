package store

import (
	"time"

	"github.com/mkallio/stint/internal/domain"
)

// recordBlob is the JSON wire form of a WorkRecord. Timestamps serialize as
// RFC3339 via time.Time's default marshaling.
type recordBlob struct {
	ID            string    `json:"id"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	TotalHours    float64   `json:"total_hours"`
	LocationLabel string    `json:"location_label"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	Note          string    `json:"note"`
	CompanyName   string    `json:"company_name"`
}

// sessionBlob is the JSON wire form of an InProgressSession.
type sessionBlob struct {
	StartTime time.Time `json:"start_time"`
	IsWorking bool      `json:"is_working"`
}

func toBlob(r domain.WorkRecord) recordBlob {
	return recordBlob{
		ID:            r.ID,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		TotalHours:    r.TotalHours,
		LocationLabel: r.LocationLabel,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		Note:          r.Note,
		CompanyName:   r.CompanyName,
	}
}

func fromBlob(b recordBlob) domain.WorkRecord {
	return domain.WorkRecord{
		ID:            b.ID,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		TotalHours:    b.TotalHours,
		LocationLabel: b.LocationLabel,
		Latitude:      b.Latitude,
		Longitude:     b.Longitude,
		Note:          b.Note,
		CompanyName:   b.CompanyName,
	}
}

func toBlobs(records []domain.WorkRecord) []recordBlob {
	blobs := make([]recordBlob, len(records))
	for i, r := range records {
		blobs[i] = toBlob(r)
	}
	return blobs
}

func fromBlobs(blobs []recordBlob) []domain.WorkRecord {
	records := make([]domain.WorkRecord, len(blobs))
	for i, b := range blobs {
		records[i] = fromBlob(b)
	}
	return records
}
