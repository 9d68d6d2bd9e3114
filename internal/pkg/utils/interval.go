package utils

import (
	"fmt"
	"strings"
	"time"

	"medibook-service/internal/pkg/constvars"
)

// MinutesPerDay is the exclusive upper bound for FormatClockTime input.
const MinutesPerDay = 24 * 60

// ParseClockTime converts an "HH:mm" 24-hour clock string to minutes since
// midnight. Hours must be in [0,23] and minutes in [0,59].
func ParseClockTime(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid clock time %q: want HH:mm", s)
	}
	hour, err := parseTwoDigits(s[:2])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	minute, err := parseTwoDigits(s[3:])
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	if hour > 23 {
		return 0, fmt.Errorf("invalid clock time %q: hour out of range", s)
	}
	if minute > 59 {
		return 0, fmt.Errorf("invalid clock time %q: minute out of range", s)
	}
	return hour*60 + minute, nil
}

func parseTwoDigits(s string) (int, error) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, fmt.Errorf("non-digit in %q", s)
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), nil
}

// FormatClockTime renders minutes since midnight as "HH:mm". The input must
// be in [0, 1439]; anything else is a bug in the caller, not a runtime
// condition this function recovers from.
func FormatClockTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// TimeRangesOverlap reports whether the half-open intervals [aStart, aEnd)
// and [bStart, bEnd) intersect. Touching endpoints do not overlap.
func TimeRangesOverlap(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// TimeWithinRange reports whether point lies in the half-open interval
// [start, end): point == start is inside, point == end is not.
func TimeWithinRange(point, start, end int) bool {
	return point >= start && point < end
}

// ParseISODate parses a YYYY-MM-DD calendar date.
func ParseISODate(s string) (time.Time, error) {
	return time.Parse(constvars.DateLayoutISO, s)
}

// WeekdayOf returns the upper-case English weekday name for an ISO date.
// time.Weekday.String is a fixed English table, so the result does not
// depend on host locale or timezone.
func WeekdayOf(date string) (string, error) {
	t, err := ParseISODate(date)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(t.Weekday().String()), nil
}

// NextDate returns the ISO date one calendar day after the given ISO date.
// The input must already be a valid ISO date.
func NextDate(date string) string {
	t, _ := ParseISODate(date)
	return t.AddDate(0, 0, 1).Format(constvars.DateLayoutISO)
}

// TodayISO returns today's calendar date in the process-local timezone.
func TodayISO() string {
	return time.Now().Format(constvars.DateLayoutISO)
}
