package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStampDate(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"single digit month and day", time.Date(2024, 3, 5, 10, 30, 0, 0, time.Local), "2024-03-05"},
		{"double digit month and day", time.Date(2024, 11, 23, 0, 0, 0, 0, time.Local), "2024-11-23"},
		{"double digit month, single day", time.Date(2024, 10, 5, 23, 59, 59, 0, time.Local), "2024-10-05"},
		{"single month, double day", time.Date(2025, 1, 31, 12, 0, 0, 0, time.Local), "2025-01-31"},
		{"year is never padded", time.Date(987, 6, 7, 0, 0, 0, 0, time.Local), "987-06-07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StampDate(tt.date))
		})
	}
}

func TestTodayRecomputes(t *testing.T) {
	assert.Equal(t, StampDate(time.Now()), Today())
}
