package form

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/punchlog/internal/constants"
	"github.com/julianstephens/punchlog/internal/logger"
	"github.com/julianstephens/punchlog/internal/models"
	"github.com/julianstephens/punchlog/internal/validation"
)

// State tracks one entry's progress through submission.
type State int

const (
	StateEditing State = iota
	StateValidating
	StateSubmitting
	StateCompleted
	StateFailed
)

// Trigger identifies what initiated a submission attempt. Only the
// submit control and the override chord are accepted; confirm keys
// bubbling up from fields are ignored so a half-filled form cannot be
// submitted by accident.
type Trigger int

const (
	TriggerFieldConfirm Trigger = iota
	TriggerSubmitControl
	TriggerOverrideChord
)

// Cache is the persistent auxiliary-state collaborator. Reads return
// zero values for keys that have never been written.
type Cache interface {
	SavedTags(ctx context.Context) ([]string, error)
	SetSavedTags(ctx context.Context, tags []string) error
	RecentActivities(ctx context.Context) ([]string, error)
	SetRecentActivities(ctx context.Context, activities []string) error
	LastClockOut(ctx context.Context) (string, error)
	SetLastClockOut(ctx context.Context, t string) error
}

// Appender persists one assembled entry as a spreadsheet row.
type Appender interface {
	AppendRow(ctx context.Context, entry models.TimesheetEntry) error
}

// RemoteError wraps a failed append; Reason is surfaced to the user
// verbatim, prefixed to indicate the save step failed.
type RemoteError struct {
	Reason string
}

func (e *RemoteError) Error() string {
	return constants.SaveFailedPrefix + e.Reason
}

// Session orchestrates one complete timesheet entry. It owns the field
// values, the tag set and the selected scope, and coordinates validation,
// remote append and cache updates. A fresh Session is created per form;
// nothing is shared between sessions.
type Session struct {
	fields   []Field
	values   map[FieldID]string
	tags     *TagSet
	scope    models.WorkScope
	state    State
	message  string
	cache    Cache
	appender Appender
	entry    *models.TimesheetEntry

	// Now supplies the wall clock; tests replace it.
	Now func() time.Time
}

// NewSession creates an empty editing session.
func NewSession(cache Cache, appender Appender) *Session {
	return &Session{
		fields:   DefaultFields(),
		values:   make(map[FieldID]string),
		tags:     NewTagSet(),
		state:    StateEditing,
		cache:    cache,
		appender: appender,
		Now:      time.Now,
	}
}

// PrefillDate fills the date field with today when it is still empty.
func (s *Session) PrefillDate() {
	if s.values[FieldDate] == "" {
		s.values[FieldDate] = s.Now().Format(constants.DateFormat)
	}
}

// Fields returns the declared field list.
func (s *Session) Fields() []Field { return s.fields }

// Tags returns the session's tag set.
func (s *Session) Tags() *TagSet { return s.tags }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Message returns the last user-facing message, if any.
func (s *Session) Message() string { return s.message }

// Entry returns the assembled entry after a completed submission.
func (s *Session) Entry() *models.TimesheetEntry { return s.entry }

// Value returns a field's current value.
func (s *Session) Value(id FieldID) string { return s.values[id] }

// SetValue records a field mutation. Mutations keep the session in
// Editing.
func (s *Session) SetValue(id FieldID, v string) {
	s.values[id] = v
	if s.state != StateSubmitting {
		s.state = StateEditing
	}
}

// Scope returns the active work scope, empty before the first selection.
func (s *Session) Scope() models.WorkScope { return s.scope }

// SelectScope activates a work scope. Selecting the already-active scope
// is a no-op beyond reapplying the scope-dependent field requirement,
// which the caller reads back via Scope().RequiresPrioritization().
func (s *Session) SelectScope(scope models.WorkScope) {
	s.scope = scope
	s.values[FieldWorkScope] = string(scope)
}

// CurrentTime returns the wall-clock time formatted for a time field.
func (s *Session) CurrentTime() string {
	return s.Now().Format(constants.TimeFormat)
}

// LastClockOut reads the cached previous clock-out time; empty when
// never written or unavailable.
func (s *Session) LastClockOut(ctx context.Context) string {
	t, err := s.cache.LastClockOut(ctx)
	if err != nil {
		logger.Warn("reading last clock-out failed", "error", err)
		return ""
	}
	return t
}

// RecentActivities reads the cached most-recent-first activity list for
// suggestions; empty when unavailable.
func (s *Session) RecentActivities(ctx context.Context) []string {
	activities, err := s.cache.RecentActivities(ctx)
	if err != nil {
		logger.Warn("reading recent activities failed", "error", err)
		return nil
	}
	return activities
}

// Vocabulary reads the persisted cross-session tag vocabulary for
// suggestions; empty when unavailable.
func (s *Session) Vocabulary(ctx context.Context) []string {
	tags, err := s.cache.SavedTags(ctx)
	if err != nil {
		logger.Warn("reading tag vocabulary failed", "error", err)
		return nil
	}
	return tags
}

// Submit runs the full Validating -> Submitting pipeline. Submissions
// not initiated by the submit control or the override chord are ignored.
// Re-entrant triggers while an append is in flight are ignored as well.
// On success the three cached auxiliary values are all attempted before
// Completed is reported; cache failures are logged, never surfaced,
// because the entry is already recorded remotely.
func (s *Session) Submit(ctx context.Context, trigger Trigger) error {
	if trigger != TriggerSubmitControl && trigger != TriggerOverrideChord {
		return nil
	}
	if s.state == StateSubmitting {
		return nil
	}

	s.state = StateValidating
	if err := validation.CheckEntry(
		s.values[FieldDate],
		s.values[FieldTimeIn],
		s.values[FieldTimeOut],
		s.values[FieldActivity],
		s.scope,
		s.values[FieldPrioritization],
	); err != nil {
		s.state = StateEditing
		s.message = err.Error()
		return err
	}

	s.state = StateSubmitting
	entry := s.assemble()
	if err := s.appender.AppendRow(ctx, entry); err != nil {
		// Failed submissions are retryable: the session returns to
		// editing with the message set and no cache state touched.
		remote := &RemoteError{Reason: err.Error()}
		s.message = remote.Error()
		s.state = StateEditing
		return remote
	}

	s.updateCache(ctx, entry)
	s.entry = &entry
	s.state = StateCompleted
	s.message = ""
	return nil
}

// assemble builds the immutable outbound record from the current field
// values.
func (s *Session) assemble() models.TimesheetEntry {
	prioritization := s.values[FieldPrioritization]
	if prioritization == "" {
		prioritization = constants.PrioritizationNA
	}
	return models.TimesheetEntry{
		ID:             uuid.New().String(),
		Date:           s.values[FieldDate],
		TimeIn:         s.values[FieldTimeIn],
		TimeOut:        s.values[FieldTimeOut],
		Activity:       s.values[FieldActivity],
		WorkScope:      s.scope,
		Energy:         s.values[FieldEnergy],
		Engagement:     s.values[FieldEngagement],
		Prioritization: prioritization,
		Tags:           s.tags.Serialize(),
		Notes:          s.values[FieldNotes],
	}
}

// updateCache refreshes recent activities, last clock-out and the tag
// vocabulary. Each is an independent key; failures are logged and
// swallowed.
func (s *Session) updateCache(ctx context.Context, entry models.TimesheetEntry) {
	recent, err := s.cache.RecentActivities(ctx)
	if err != nil {
		logger.Warn("reading recent activities failed", "error", err)
	} else if !contains(recent, entry.Activity) {
		recent = append([]string{entry.Activity}, recent...)
		if len(recent) > constants.RecentActivitiesCap {
			recent = recent[:constants.RecentActivitiesCap]
		}
		if err := s.cache.SetRecentActivities(ctx, recent); err != nil {
			logger.Warn("saving recent activities failed", "error", err)
		}
	}

	if err := s.cache.SetLastClockOut(ctx, entry.TimeOut); err != nil {
		logger.Warn("saving last clock-out failed", "error", err)
	}

	vocab, err := s.cache.SavedTags(ctx)
	if err != nil {
		// Skip the write rather than clobber a vocabulary we could
		// not read.
		logger.Warn("reading tag vocabulary failed", "error", err)
		return
	}
	if err := s.cache.SetSavedTags(ctx, s.tags.Merge(vocab)); err != nil {
		logger.Warn("saving tag vocabulary failed", "error", err)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// String returns a short human label for a state, used in logs.
func (st State) String() string {
	switch st {
	case StateEditing:
		return "editing"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(st))
}
