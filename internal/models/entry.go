package models

import "fmt"

// WorkScope is the categorical bucket describing the nature of logged time.
type WorkScope string

const (
	ScopeCore     WorkScope = "Core"
	ScopeAdjacent WorkScope = "Adjacent"
	ScopePersonal WorkScope = "Personal"
)

// Scopes lists every work scope in selector display order.
func Scopes() []WorkScope {
	return []WorkScope{ScopeCore, ScopeAdjacent, ScopePersonal}
}

// ParseWorkScope converts a stored string back into a WorkScope.
func ParseWorkScope(s string) (WorkScope, error) {
	switch WorkScope(s) {
	case ScopeCore, ScopeAdjacent, ScopePersonal:
		return WorkScope(s), nil
	}
	return "", fmt.Errorf("invalid work scope: %q", s)
}

// RequiresPrioritization reports whether the prioritization field is
// mandatory under this scope. Personal time is exempt.
func (w WorkScope) RequiresPrioritization() bool {
	return w != ScopePersonal
}

// TimesheetEntry is one recorded timesheet row, assembled at submission
// time and immutable once built.
type TimesheetEntry struct {
	ID             string    `json:"id"`
	Date           string    `json:"date"`     // YYYY-MM-DD
	TimeIn         string    `json:"time_in"`  // HH:MM
	TimeOut        string    `json:"time_out"` // HH:MM
	Activity       string    `json:"activity"`
	WorkScope      WorkScope `json:"work_scope"`
	Energy         string    `json:"energy"`
	Engagement     string    `json:"engagement"`
	Prioritization string    `json:"prioritization"`
	Tags           string    `json:"tags"` // delimiter-joined
	Notes          string    `json:"notes"`
}

// Row returns the entry as an ordered cell list matching the sheet columns.
func (e TimesheetEntry) Row() []string {
	return []string{
		e.Date,
		e.TimeIn,
		e.TimeOut,
		e.Activity,
		string(e.WorkScope),
		e.Energy,
		e.Engagement,
		e.Prioritization,
		e.Tags,
		e.Notes,
	}
}
