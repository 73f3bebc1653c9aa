package utils

import (
	"time"

	"campuscare-service/internal/pkg/constvars"
	"campuscare-service/internal/pkg/exceptions"
)

func ParseDateKey(date string) (time.Time, error) {
	parsed, err := time.Parse(constvars.DateKeyLayout, date)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseDate(err)
	}
	return parsed, nil
}

func FormatDateKey(t time.Time) string {
	return t.Format(constvars.DateKeyLayout)
}

func TodayDateKey() string {
	return time.Now().Format(constvars.DateKeyLayout)
}

// CombineDateAndClock builds a concrete timestamp from a YYYY-MM-DD date key
// and an HH:MM clock value.
func CombineDateAndClock(date, clock string) (time.Time, error) {
	combined, err := time.Parse(constvars.DateKeyLayout+" "+constvars.ClockLayout, date+" "+clock)
	if err != nil {
		return time.Time{}, exceptions.ErrCannotParseClock(err)
	}
	return combined, nil
}
