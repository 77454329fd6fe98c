package dostime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        time.Time
		wantDate  uint16
		wantClock uint16
	}{
		{
			name:      "typical timestamp",
			in:        time.Date(2024, 11, 2, 14, 30, 45, 0, time.UTC),
			wantDate:  0x5962,
			wantClock: 0x73D6,
		},
		{
			name:      "epoch boundary",
			in:        time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC),
			wantDate:  0x0021,
			wantClock: 0x0000,
		},
		{
			name:      "last representable second",
			in:        time.Date(2107, 12, 31, 23, 59, 58, 0, time.UTC),
			wantDate:  0xFF9F,
			wantClock: 0xBF7D,
		},
		{
			name:      "odd seconds round down",
			in:        time.Date(2000, 6, 15, 12, 0, 1, 0, time.UTC),
			wantDate:  0x28CF,
			wantClock: 0x6000,
		},
		{
			name:      "christmas 2023",
			in:        time.Date(2023, 12, 25, 14, 30, 45, 0, time.UTC),
			wantDate:  0x5799,
			wantClock: 0x73D6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			date, clock := FromTime(tt.in)
			assert.Equal(t, tt.wantDate, date)
			assert.Equal(t, tt.wantClock, clock)
		})
	}
}

func TestFromTimeClampsPre1980(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
	}{
		{name: "one second before the epoch", in: time.Date(1979, 12, 31, 23, 59, 59, 0, time.UTC)},
		{name: "unix epoch", in: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "nineteenth century", in: time.Date(1899, 7, 4, 12, 30, 15, 0, time.UTC)},
		{name: "zero time", in: time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			date, clock := FromTime(tt.in)
			assert.Equal(t, EpochDate, date, "date must clamp to 1980-01-01")
			assert.Equal(t, EpochTime, clock, "clock must clamp to 00:00:00")
		})
	}
}

func TestFromTimeUsesOwnLocation(t *testing.T) {
	t.Parallel()

	// The same instant in two zones yields different words; conversion
	// must read the wall clock of the value it was given.
	utc := time.Date(2024, 1, 1, 0, 30, 0, 0, time.UTC)
	behind := utc.In(time.FixedZone("UTC-1", -3600))

	utcDate, utcClock := FromTime(utc)
	behindDate, behindClock := FromTime(behind)

	assert.NotEqual(t, utcDate, behindDate)
	assert.NotEqual(t, utcClock, behindClock)
}
