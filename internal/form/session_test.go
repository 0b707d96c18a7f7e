package form

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/punchlog/internal/constants"
	"github.com/julianstephens/punchlog/internal/models"
)

// fakeCache is an in-memory Cache with injectable failures.
type fakeCache struct {
	savedTags        []string
	recentActivities []string
	lastClockOut     string
	failReads        bool
	failWrites       bool
}

var errCacheDown = errors.New("cache unavailable")

func (c *fakeCache) SavedTags(context.Context) ([]string, error) {
	if c.failReads {
		return nil, errCacheDown
	}
	return c.savedTags, nil
}

func (c *fakeCache) SetSavedTags(_ context.Context, tags []string) error {
	if c.failWrites {
		return errCacheDown
	}
	c.savedTags = tags
	return nil
}

func (c *fakeCache) RecentActivities(context.Context) ([]string, error) {
	if c.failReads {
		return nil, errCacheDown
	}
	return c.recentActivities, nil
}

func (c *fakeCache) SetRecentActivities(_ context.Context, activities []string) error {
	if c.failWrites {
		return errCacheDown
	}
	c.recentActivities = activities
	return nil
}

func (c *fakeCache) LastClockOut(context.Context) (string, error) {
	if c.failReads {
		return "", errCacheDown
	}
	return c.lastClockOut, nil
}

func (c *fakeCache) SetLastClockOut(_ context.Context, t string) error {
	if c.failWrites {
		return errCacheDown
	}
	c.lastClockOut = t
	return nil
}

// fakeAppender records appended entries or rejects them.
type fakeAppender struct {
	appended []models.TimesheetEntry
	err      error
}

func (a *fakeAppender) AppendRow(_ context.Context, entry models.TimesheetEntry) error {
	if a.err != nil {
		return a.err
	}
	a.appended = append(a.appended, entry)
	return nil
}

func newTestSession(cache *fakeCache, appender *fakeAppender) *Session {
	s := NewSession(cache, appender)
	s.Now = func() time.Time {
		return time.Date(2024, 3, 1, 17, 45, 0, 0, time.UTC)
	}
	return s
}

func fillValid(s *Session) {
	s.SetValue(FieldDate, "2024-03-01")
	s.SetValue(FieldTimeIn, "09:00")
	s.SetValue(FieldTimeOut, "17:30")
	s.SetValue(FieldActivity, "Design review")
	s.SelectScope(models.ScopeCore)
	s.SetValue(FieldPrioritization, "High")
	s.Tags().Add("review")
	s.Tags().Add("design")
}

func TestSession_DatePrefilled(t *testing.T) {
	s := newTestSession(&fakeCache{}, &fakeAppender{})
	s.PrefillDate()
	if got := s.Value(FieldDate); got != "2024-03-01" {
		t.Errorf("prefilled date = %q, want 2024-03-01", got)
	}

	// A date the user already typed is left alone.
	s.SetValue(FieldDate, "2024-02-14")
	s.PrefillDate()
	if got := s.Value(FieldDate); got != "2024-02-14" {
		t.Errorf("PrefillDate overwrote user value, got %q", got)
	}
}

func TestSession_SubmitSuccess(t *testing.T) {
	cache := &fakeCache{
		savedTags:        []string{"planning"},
		recentActivities: []string{"Standup"},
		lastClockOut:     "16:00",
	}
	appender := &fakeAppender{}
	s := newTestSession(cache, appender)
	fillValid(s)

	if err := s.Submit(context.Background(), TriggerSubmitControl); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if s.State() != StateCompleted {
		t.Errorf("state = %v, want completed", s.State())
	}

	if len(appender.appended) != 1 {
		t.Fatalf("expected 1 appended row, got %d", len(appender.appended))
	}
	entry := appender.appended[0]
	if entry.Tags != "review;design" {
		t.Errorf("entry tags = %q, want review;design", entry.Tags)
	}
	if entry.ID == "" {
		t.Error("entry ID should be assigned at assembly")
	}

	wantRecent := []string{"Design review", "Standup"}
	if !reflect.DeepEqual(cache.recentActivities, wantRecent) {
		t.Errorf("recent activities = %v, want %v", cache.recentActivities, wantRecent)
	}
	if cache.lastClockOut != "17:30" {
		t.Errorf("last clock-out = %q, want 17:30", cache.lastClockOut)
	}
	wantVocab := []string{"planning", "review", "design"}
	if !reflect.DeepEqual(cache.savedTags, wantVocab) {
		t.Errorf("tag vocabulary = %v, want %v", cache.savedTags, wantVocab)
	}
}

func TestSession_SubmitRemoteFailureTouchesNoCache(t *testing.T) {
	cache := &fakeCache{
		savedTags:        []string{"planning"},
		recentActivities: []string{"Standup"},
		lastClockOut:     "16:00",
	}
	appender := &fakeAppender{err: errors.New("network timeout")}
	s := newTestSession(cache, appender)
	fillValid(s)

	err := s.Submit(context.Background(), TriggerOverrideChord)
	if err == nil {
		t.Fatal("expected submit to fail")
	}
	var remote *RemoteError
	if !errors.As(err, &remote) {
		t.Fatalf("expected RemoteError, got %T", err)
	}
	if !strings.Contains(err.Error(), "network timeout") {
		t.Errorf("error %q should contain the remote reason", err)
	}
	if !strings.HasPrefix(err.Error(), constants.SaveFailedPrefix) {
		t.Errorf("error %q should carry the save-failed prefix", err)
	}
	if s.State() != StateEditing {
		t.Errorf("state = %v, want editing after failure", s.State())
	}
	if s.Message() == "" {
		t.Error("failure message should be surfaced")
	}

	// None of the three cache values may change.
	if !reflect.DeepEqual(cache.savedTags, []string{"planning"}) ||
		!reflect.DeepEqual(cache.recentActivities, []string{"Standup"}) ||
		cache.lastClockOut != "16:00" {
		t.Error("cache mutated despite remote failure")
	}
}

func TestSession_SubmitValidationFailure(t *testing.T) {
	appender := &fakeAppender{}
	s := newTestSession(&fakeCache{}, appender)
	fillValid(s)
	s.SetValue(FieldTimeOut, "08:00") // before time-in

	err := s.Submit(context.Background(), TriggerSubmitControl)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if s.State() != StateEditing {
		t.Errorf("state = %v, want editing", s.State())
	}
	if len(appender.appended) != 0 {
		t.Error("no append may be attempted when validation fails")
	}
}

func TestSession_SubmitGating(t *testing.T) {
	appender := &fakeAppender{}
	s := newTestSession(&fakeCache{}, appender)
	fillValid(s)

	// A confirm key bubbling up from a field must be ignored.
	if err := s.Submit(context.Background(), TriggerFieldConfirm); err != nil {
		t.Errorf("ignored trigger returned error: %v", err)
	}
	if s.State() != StateEditing {
		t.Errorf("state = %v, want editing after ignored trigger", s.State())
	}
	if len(appender.appended) != 0 {
		t.Error("ignored trigger must not submit")
	}
}

func TestSession_PersonalScopeDefaultsPrioritization(t *testing.T) {
	appender := &fakeAppender{}
	s := newTestSession(&fakeCache{}, appender)
	fillValid(s)
	s.SelectScope(models.ScopePersonal)
	s.SetValue(FieldPrioritization, "")

	if err := s.Submit(context.Background(), TriggerSubmitControl); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if got := appender.appended[0].Prioritization; got != constants.PrioritizationNA {
		t.Errorf("prioritization = %q, want %q", got, constants.PrioritizationNA)
	}
}

func TestSession_RecentActivityNotDuplicated(t *testing.T) {
	cache := &fakeCache{recentActivities: []string{"Design review"}}
	s := newTestSession(cache, &fakeAppender{})
	fillValid(s)

	if err := s.Submit(context.Background(), TriggerSubmitControl); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if !reflect.DeepEqual(cache.recentActivities, []string{"Design review"}) {
		t.Errorf("known activity should not be re-added, got %v", cache.recentActivities)
	}
}

func TestSession_RecentActivitiesCapped(t *testing.T) {
	var old []string
	for i := 0; i < constants.RecentActivitiesCap; i++ {
		old = append(old, string(rune('a'+i)))
	}
	cache := &fakeCache{recentActivities: old}
	s := newTestSession(cache, &fakeAppender{})
	fillValid(s)

	if err := s.Submit(context.Background(), TriggerSubmitControl); err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if len(cache.recentActivities) != constants.RecentActivitiesCap {
		t.Fatalf("recent activities length = %d, want %d",
			len(cache.recentActivities), constants.RecentActivitiesCap)
	}
	if cache.recentActivities[0] != "Design review" {
		t.Errorf("newest activity should be first, got %v", cache.recentActivities[0])
	}
	// Oldest evicted.
	for _, a := range cache.recentActivities {
		if a == old[len(old)-1] {
			t.Errorf("oldest activity %q should have been evicted", a)
		}
	}
}

func TestSession_CacheFailuresDoNotFailSubmission(t *testing.T) {
	cache := &fakeCache{failReads: true, failWrites: true}
	s := newTestSession(cache, &fakeAppender{})
	fillValid(s)

	if err := s.Submit(context.Background(), TriggerSubmitControl); err != nil {
		t.Errorf("cache failures must not surface as submission failure, got %v", err)
	}
	if s.State() != StateCompleted {
		t.Errorf("state = %v, want completed", s.State())
	}
}

func TestSession_LastClockOut(t *testing.T) {
	cache := &fakeCache{lastClockOut: "18:15"}
	s := newTestSession(cache, &fakeAppender{})
	if got := s.LastClockOut(context.Background()); got != "18:15" {
		t.Errorf("LastClockOut() = %q, want 18:15", got)
	}

	cache.failReads = true
	if got := s.LastClockOut(context.Background()); got != "" {
		t.Errorf("LastClockOut() with failing cache = %q, want empty", got)
	}
}

func TestSession_CurrentTime(t *testing.T) {
	s := newTestSession(&fakeCache{}, &fakeAppender{})
	if got := s.CurrentTime(); got != "17:45" {
		t.Errorf("CurrentTime() = %q, want 17:45", got)
	}
}
