// Package dostime converts timestamps to the 16-bit MS-DOS date and time
// words stored in ZIP headers.
package dostime

import "time"

// DOS dates count years from 1980; earlier times are not representable.
const epochYear = 1980

// Word values for 1980-01-01 00:00:00, the earliest DOS timestamp.
// Conversions of anything earlier clamp to these.
const (
	EpochDate uint16 = 1<<5 | 1
	EpochTime uint16 = 0
)

// FromTime converts t to DOS date and time words using t's own location.
//
// The date word packs (year-1980)<<9 | month<<5 | day and the time word
// packs hour<<11 | minute<<5 | second/2, so odd seconds round down. Times
// before 1980-01-01 clamp every field to the epoch.
func FromTime(t time.Time) (date, clock uint16) {
	if t.Year() < epochYear {
		return EpochDate, EpochTime
	}
	date = uint16(t.Year()-epochYear)<<9 | uint16(t.Month())<<5 | uint16(t.Day())
	clock = uint16(t.Hour())<<11 | uint16(t.Minute())<<5 | uint16(t.Second()/2)
	return date, clock
}
