package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestHoursBetween(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  float64
	}{
		{"ninety minutes", testNow, testNow.Add(90 * time.Minute), 1.5},
		{"zero length", testNow, testNow, 0},
		{"overnight", testNow, testNow.Add(26 * time.Hour), 26},
		{"sub-hour", testNow, testNow.Add(15 * time.Minute), 0.25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HoursBetween(tc.start, tc.end))
		})
	}
}

func TestValidate_EndBeforeStart(t *testing.T) {
	r := &WorkRecord{ID: "r1", StartTime: testNow, EndTime: testNow.Add(-time.Minute)}
	err := r.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "r1")
}

func TestValidate_EqualTimes(t *testing.T) {
	r := &WorkRecord{ID: "r1", StartTime: testNow, EndTime: testNow}
	assert.NoError(t, r.Validate())
}

func TestTruncateNote(t *testing.T) {
	short := "reviewed the quarterly numbers"
	assert.Equal(t, short, TruncateNote(short))

	long := strings.Repeat("word ", 40)
	got := TruncateNote(long)
	assert.Len(t, strings.Fields(got), NoteMaxWords)
}

func TestTruncateNote_ExactCap(t *testing.T) {
	note := strings.TrimSpace(strings.Repeat("w ", NoteMaxWords))
	assert.Equal(t, note, TruncateNote(note))
}
