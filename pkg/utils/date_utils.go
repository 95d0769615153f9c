// utils/dateutil.go
package utils

import (
	"strconv"
	"time"
)

// StampDate renders t as "year-month-day" in the server's local zone.
// Month and day are zero padded when their value is below 10; the year
// is emitted as-is. These stamps are API generated, not form generated,
// so the front end's date inputs rely on this exact shape.
func StampDate(t time.Time) string {
	return strconv.Itoa(t.Year()) +
		"-" + padDatePart(int(t.Month())) +
		"-" + padDatePart(t.Day())
}

func padDatePart(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Today recomputes on every call so a long-lived process never serves a
// stale stamp across midnight.
func Today() string {
	return StampDate(time.Now())
}
