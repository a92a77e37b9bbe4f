package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, value string) time.Time {
	t.Helper()

	ts, err := time.Parse("2006-01-02 15:04", value)
	require.NoError(t, err)

	return ts
}

func TestCheckScheduleConflict(t *testing.T) {
	// 120 minute movie at 13:30: runs until 15:30, break until 15:40
	existing := []Screening{
		{
			Movie:     Movie{Title: "Sátántangó", Runtime: 120},
			Room:      Room{Name: "R1"},
			StartTime: at(t, "2023-12-05 13:30"),
		},
	}

	tests := []struct {
		name       string
		start      string
		existing   []Screening
		wantReason ConflictReason
	}{
		{name: "empty room accepts anything", start: "2023-12-05 13:30"},
		{name: "same start overlaps", start: "2023-12-05 13:30", existing: existing, wantReason: ConflictOverlap},
		{name: "start during screening overlaps", start: "2023-12-05 14:30", existing: existing, wantReason: ConflictOverlap},
		{name: "last minute of screening overlaps", start: "2023-12-05 15:29", existing: existing, wantReason: ConflictOverlap},
		{name: "start exactly at end falls in break", start: "2023-12-05 15:30", existing: existing, wantReason: ConflictBreakPeriod},
		{name: "start inside break", start: "2023-12-05 15:35", existing: existing, wantReason: ConflictBreakPeriod},
		{name: "start when break ends is accepted", start: "2023-12-05 15:40", existing: existing},
		{name: "start before existing is accepted", start: "2023-12-05 11:00", existing: existing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckScheduleConflict(at(t, tt.start), tt.existing)

			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}

			var conflict *ScheduleConflictError
			require.ErrorAs(t, err, &conflict)
			assert.Equal(t, tt.wantReason, conflict.Reason)
			assert.True(t, errors.Is(err, ErrScheduleConflict))
		})
	}
}

func TestCheckScheduleConflictZeroRuntime(t *testing.T) {
	existing := []Screening{{Movie: Movie{Runtime: 0}, StartTime: at(t, "2023-12-05 10:00")}}

	err := CheckScheduleConflict(at(t, "2023-12-05 10:00"), existing)

	var conflict *ScheduleConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, ConflictBreakPeriod, conflict.Reason)

	assert.Error(t, CheckScheduleConflict(at(t, "2023-12-05 10:09"), existing))
	assert.NoError(t, CheckScheduleConflict(at(t, "2023-12-05 10:10"), existing))
}

func TestCheckScheduleConflictChecksEveryScreening(t *testing.T) {
	existing := []Screening{
		{Movie: Movie{Runtime: 60}, StartTime: at(t, "2023-12-05 10:00")},
		{Movie: Movie{Runtime: 90}, StartTime: at(t, "2023-12-05 18:00")},
	}

	err := CheckScheduleConflict(at(t, "2023-12-05 19:35"), existing)

	var conflict *ScheduleConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, ConflictBreakPeriod, conflict.Reason)

	assert.NoError(t, CheckScheduleConflict(at(t, "2023-12-05 14:00"), existing))
}

func TestScreeningTimes(t *testing.T) {
	s := Screening{Movie: Movie{Runtime: 95}, StartTime: at(t, "2024-01-01 20:00")}

	assert.Equal(t, at(t, "2024-01-01 21:35"), s.EndTime())
	assert.Equal(t, at(t, "2024-01-01 21:45"), s.BreakEnd())
}
