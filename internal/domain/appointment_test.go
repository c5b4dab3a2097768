package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_EndTime(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	a := &Appointment{ScheduledAt: start, DurationMinutes: 45}

	assert.Equal(t, start.Add(45*time.Minute), a.EndTime())
}

func TestAppointment_ConflictsWith(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	existing := &Appointment{ScheduledAt: at(10, 0), DurationMinutes: 60} // 10:00-11:00

	tests := []struct {
		name      string
		candidate time.Time
		duration  time.Duration
		buffer    time.Duration
		want      bool
	}{
		{"exact overlap", at(10, 0), 60 * time.Minute, 0, true},
		{"partial overlap from before", at(9, 30), 60 * time.Minute, 0, true},
		{"partial overlap from inside", at(10, 30), 60 * time.Minute, 0, true},
		{"back to back before", at(9, 0), 60 * time.Minute, 0, false},
		{"back to back after", at(11, 0), 60 * time.Minute, 0, false},
		{"buffer blocks adjacent before", at(9, 0), 60 * time.Minute, 15 * time.Minute, true},
		{"buffer blocks adjacent after", at(11, 0), 60 * time.Minute, 15 * time.Minute, true},
		{"clear of buffer", at(11, 15), 60 * time.Minute, 15 * time.Minute, false},
		{"far away", at(14, 0), 60 * time.Minute, 30 * time.Minute, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := existing.ConflictsWith(tt.candidate, tt.duration, tt.buffer)
			assert.Equal(t, tt.want, got)
		})
	}
}
