package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/punchlog/internal/models"
)

// ErrTimeOrder is returned when the clock-out time does not come after the
// clock-in time.
var ErrTimeOrder = errors.New("Time Out must be after Time In")

// CheckEntry validates the field values of an in-progress entry before
// submission. The scope-dependent prioritization requirement mirrors the
// selector behavior: Personal time may leave it empty.
func CheckEntry(date, timeIn, timeOut, activity string, scope models.WorkScope, prioritization string) error {
	required := map[string]string{
		"Date":     date,
		"Time In":  timeIn,
		"Time Out": timeOut,
		"Activity": activity,
	}
	for _, label := range []string{"Date", "Time In", "Time Out", "Activity"} {
		if strings.TrimSpace(required[label]) == "" {
			return fmt.Errorf("%s is required", label)
		}
	}
	if scope == "" {
		return errors.New("Work Scope is required")
	}
	if scope.RequiresPrioritization() && strings.TrimSpace(prioritization) == "" {
		return errors.New("Prioritization is required")
	}
	if !IsOrdered(timeIn, timeOut) {
		return ErrTimeOrder
	}
	return nil
}
