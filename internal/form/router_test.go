package form

import (
	"testing"

	"github.com/julianstephens/punchlog/internal/models"
)

func route(t *testing.T, focused FieldID, value string, ev KeyEvent) Action {
	t.Helper()
	return Route(DefaultFields(), focused, value, ev)
}

func TestRoute_OverrideChordAlwaysSubmits(t *testing.T) {
	chord := KeyEvent{Key: "s", Ctrl: true}
	for _, focused := range Focusables(DefaultFields()) {
		act := route(t, focused, "anything", chord)
		if act.Kind != ActionSubmit {
			t.Errorf("chord on %s routed to %v, want ActionSubmit", focused, act.Kind)
		}
	}
}

func TestRoute_EnterOnActivityJumpsToScope(t *testing.T) {
	act := route(t, FieldActivity, "Design review", KeyEvent{Key: "enter"})
	if act.Kind != ActionFocus || act.Target != FieldWorkScope {
		t.Errorf("enter on activity = %+v, want focus work-scope", act)
	}
}

func TestRoute_EnterInScopeGroupCommits(t *testing.T) {
	act := route(t, FieldWorkScope, "", KeyEvent{Key: "enter"})
	if act.Kind != ActionCommitScope || act.Target != FieldPrioritization {
		t.Errorf("enter in scope group = %+v, want commit+prioritization", act)
	}
}

func TestRoute_EnterOnTagsCommitsWhenNonEmpty(t *testing.T) {
	act := route(t, FieldTags, "deep-work", KeyEvent{Key: "enter"})
	if act.Kind != ActionCommitTag {
		t.Errorf("enter on tags with content = %+v, want commit tag", act)
	}
}

func TestRoute_EnterOnEmptyTagsAdvances(t *testing.T) {
	for _, value := range []string{"", "   "} {
		act := route(t, FieldTags, value, KeyEvent{Key: "enter"})
		if act.Kind != ActionAdvance {
			t.Errorf("enter on tags with %q = %+v, want advance", value, act.Kind)
		}
	}
}

func TestRoute_EnterElsewhereAdvances(t *testing.T) {
	for _, focused := range []FieldID{FieldDate, FieldTimeIn, FieldEnergy, FieldNotes} {
		act := route(t, focused, "x", KeyEvent{Key: "enter"})
		if act.Kind != ActionAdvance {
			t.Errorf("enter on %s = %v, want advance", focused, act.Kind)
		}
	}
}

func TestRoute_ScopeLetters(t *testing.T) {
	cases := map[string]models.WorkScope{
		"c": models.ScopeCore,
		"a": models.ScopeAdjacent,
		"p": models.ScopePersonal,
	}
	for letter, want := range cases {
		act := route(t, FieldWorkScope, "", KeyEvent{Key: letter})
		if act.Kind != ActionSelectScope || act.Scope != want {
			t.Errorf("letter %q = %+v, want select %s", letter, act, want)
		}
		if act.Target != FieldPrioritization {
			t.Errorf("letter %q target = %s, want prioritization", letter, act.Target)
		}
	}
}

func TestRoute_ScopeLettersSuppressedWhileTyping(t *testing.T) {
	// A bare letter while a text, numeric, time or tag field holds
	// focus is ordinary typing, never a scope shortcut.
	for _, focused := range []FieldID{FieldActivity, FieldEnergy, FieldTimeIn, FieldTags, FieldNotes} {
		act := route(t, focused, "", KeyEvent{Key: "c"})
		if act.Kind != ActionNone {
			t.Errorf("letter on %s = %v, want fallthrough", focused, act.Kind)
		}
	}
}

func TestRoute_TimeAutofill(t *testing.T) {
	for _, focused := range []FieldID{FieldTimeIn, FieldTimeOut} {
		act := route(t, focused, "", KeyEvent{Key: "n", Alt: true})
		if act.Kind != ActionFillNow {
			t.Errorf("alt+n on %s = %v, want fill now", focused, act.Kind)
		}
	}

	act := route(t, FieldTimeIn, "", KeyEvent{Key: "l", Alt: true})
	if act.Kind != ActionFillLastOut {
		t.Errorf("alt+l on time-in = %v, want fill last clock-out", act.Kind)
	}
	// Last clock-out autofill is time-in only.
	act = route(t, FieldTimeOut, "", KeyEvent{Key: "l", Alt: true})
	if act.Kind == ActionFillLastOut {
		t.Error("alt+l on time-out must not autofill last clock-out")
	}
}

func TestRoute_UnmatchedFallsThrough(t *testing.T) {
	cases := []struct {
		focused FieldID
		ev      KeyEvent
	}{
		{FieldActivity, KeyEvent{Key: "x"}},
		{FieldNotes, KeyEvent{Key: " "}},
		{FieldSubmit, KeyEvent{Key: "z"}},
		{FieldDate, KeyEvent{Key: "n", Alt: true}}, // alt+n outside time fields
	}
	for _, tc := range cases {
		act := route(t, tc.focused, "", tc.ev)
		if act.Kind != ActionNone {
			t.Errorf("Route(%s, %+v) = %v, want ActionNone", tc.focused, tc.ev, act.Kind)
		}
	}
}
