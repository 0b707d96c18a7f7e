package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock splits an HH:MM wall-clock string into hour and minute.
func ParseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time format: %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time out of range: %q", s)
	}
	return hour, minute, nil
}

// IsOrdered reports whether timeOut is strictly later than timeIn on the
// same day. Equal timestamps are rejected; an entry must have positive
// duration. Unparseable input is rejected as well.
func IsOrdered(timeIn, timeOut string) bool {
	inH, inM, err := ParseClock(timeIn)
	if err != nil {
		return false
	}
	outH, outM, err := ParseClock(timeOut)
	if err != nil {
		return false
	}
	if outH < inH {
		return false
	}
	if outH == inH && outM <= inM {
		return false
	}
	return true
}
