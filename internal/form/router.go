package form

import (
	"strings"

	"github.com/julianstephens/punchlog/internal/models"
)

// KeyEvent is a normalized keyboard event, decoupled from any particular
// terminal input layer.
type KeyEvent struct {
	Key  string // "enter", "c", "n", ...
	Ctrl bool
	Alt  bool
}

// ActionKind enumerates what the router decided to do with a key event.
type ActionKind int

const (
	// ActionNone lets the event fall through to ordinary text entry.
	ActionNone ActionKind = iota
	// ActionSubmit triggers form submission (override chord only).
	ActionSubmit
	// ActionFocus moves focus directly to Target.
	ActionFocus
	// ActionAdvance moves focus to the next field in tab order.
	ActionAdvance
	// ActionCommitScope commits the highlighted scope and focuses
	// prioritization.
	ActionCommitScope
	// ActionSelectScope selects Scope directly and focuses prioritization.
	ActionSelectScope
	// ActionCommitTag commits the tag field content and keeps focus there.
	ActionCommitTag
	// ActionFillNow autofills the focused time field with the current
	// wall-clock time and advances.
	ActionFillNow
	// ActionFillLastOut autofills time-in with the cached last clock-out
	// and advances.
	ActionFillLastOut
)

// Action is the router's verdict for one key event.
type Action struct {
	Kind   ActionKind
	Target FieldID
	Scope  models.WorkScope
}

// Rule pairs a predicate over (focused field, field content, key event)
// with the action it produces. Rules are consulted in table order, first
// match wins.
type Rule struct {
	Name  string
	Match func(focused Field, value string, ev KeyEvent) bool
	Act   func(focused Field, ev KeyEvent) Action
}

var scopeLetters = map[string]models.WorkScope{
	"c": models.ScopeCore,
	"a": models.ScopeAdjacent,
	"p": models.ScopePersonal,
}

func plainEnter(ev KeyEvent) bool {
	return ev.Key == "enter" && !ev.Ctrl && !ev.Alt
}

// Rules returns the shortcut table in priority order. The submission
// override chord always wins; it is the only keyboard path that may
// submit the form. The time autofill chords sit above the plain-enter
// rules so they are evaluated first for the same fields.
func Rules() []Rule {
	return []Rule{
		{
			Name: "submit-chord",
			Match: func(_ Field, _ string, ev KeyEvent) bool {
				return ev.Ctrl && ev.Key == "s"
			},
			Act: func(Field, KeyEvent) Action {
				return Action{Kind: ActionSubmit}
			},
		},
		{
			Name: "time-fill-now",
			Match: func(f Field, _ string, ev KeyEvent) bool {
				return f.Kind == KindTime && ev.Alt && ev.Key == "n"
			},
			Act: func(Field, KeyEvent) Action {
				return Action{Kind: ActionFillNow}
			},
		},
		{
			Name: "time-fill-last-out",
			Match: func(f Field, _ string, ev KeyEvent) bool {
				return f.ID == FieldTimeIn && ev.Alt && ev.Key == "l"
			},
			Act: func(Field, KeyEvent) Action {
				return Action{Kind: ActionFillLastOut}
			},
		},
		{
			Name: "enter-on-activity",
			Match: func(f Field, _ string, ev KeyEvent) bool {
				return f.ID == FieldActivity && plainEnter(ev)
			},
			Act: func(Field, KeyEvent) Action {
				return Action{Kind: ActionFocus, Target: FieldWorkScope}
			},
		},
		{
			Name: "enter-in-scope-group",
			Match: func(f Field, _ string, ev KeyEvent) bool {
				return f.Kind == KindScope && plainEnter(ev)
			},
			Act: func(Field, KeyEvent) Action {
				return Action{Kind: ActionCommitScope, Target: FieldPrioritization}
			},
		},
		{
			Name: "enter-on-tags",
			Match: func(f Field, value string, ev KeyEvent) bool {
				return f.Kind == KindTag && plainEnter(ev) && strings.TrimSpace(value) != ""
			},
			Act: func(Field, KeyEvent) Action {
				return Action{Kind: ActionCommitTag}
			},
		},
		{
			Name: "enter-advances",
			Match: func(_ Field, _ string, ev KeyEvent) bool {
				return plainEnter(ev)
			},
			Act: func(Field, KeyEvent) Action {
				return Action{Kind: ActionAdvance}
			},
		},
		{
			Name: "scope-letter",
			Match: func(f Field, _ string, ev KeyEvent) bool {
				if f.AcceptsTyping() || ev.Ctrl || ev.Alt {
					return false
				}
				_, ok := scopeLetters[ev.Key]
				return ok
			},
			Act: func(_ Field, ev KeyEvent) Action {
				return Action{
					Kind:   ActionSelectScope,
					Scope:  scopeLetters[ev.Key],
					Target: FieldPrioritization,
				}
			},
		},
	}
}

// Route interprets a key event against the currently focused field and
// its current content, returning the first matching rule's action.
// Events nothing matches fall through with ActionNone so default text
// entry proceeds.
func Route(fields []Field, focused FieldID, value string, ev KeyEvent) Action {
	f, ok := fieldByID(fields, focused)
	if !ok {
		f = Field{ID: focused, Kind: KindButton}
	}
	for _, r := range Rules() {
		if r.Match(f, value, ev) {
			return r.Act(f, ev)
		}
	}
	return Action{Kind: ActionNone}
}
