package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/punchlog/internal/form"
	"github.com/julianstephens/punchlog/internal/models"
)

// Model drives the timesheet entry form: a set of text inputs in the
// declared field order, the scope selector group, and the submit
// control. All shortcut interpretation is delegated to the form
// package's rule table; this model only translates terminal key events
// and applies the resulting actions.
type Model struct {
	session *form.Session
	fields  []form.Field
	inputs  map[form.FieldID]*textinput.Model

	focus    form.FieldID
	scopeIdx int // highlighted option inside the scope selector

	keys KeyMap
	help help.Model

	errMsg     string
	submitting bool
	quitting   bool
	width      int
	height     int
}

// textFieldIDs lists the fields rendered as text inputs, in order.
var textFieldIDs = []form.FieldID{
	form.FieldDate,
	form.FieldTimeIn,
	form.FieldTimeOut,
	form.FieldActivity,
	form.FieldEnergy,
	form.FieldEngagement,
	form.FieldPrioritization,
	form.FieldTags,
	form.FieldNotes,
}

// NewModel builds the form UI around a fresh session.
func NewModel(session *form.Session) Model {
	session.PrefillDate()

	inputs := make(map[form.FieldID]*textinput.Model, len(textFieldIDs))
	for _, id := range textFieldIDs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		switch id {
		case form.FieldDate:
			ti.Placeholder = "YYYY-MM-DD"
			ti.CharLimit = 10
		case form.FieldTimeIn, form.FieldTimeOut:
			ti.Placeholder = "HH:MM"
			ti.CharLimit = 5
		case form.FieldEnergy, form.FieldEngagement:
			ti.Placeholder = "1-5"
			ti.CharLimit = 2
		case form.FieldTags:
			ti.Placeholder = "tag, enter to add"
		}
		if id == form.FieldActivity || id == form.FieldTags {
			ti.ShowSuggestions = true
		}
		inputs[id] = &ti
	}
	inputs[form.FieldDate].SetValue(session.Value(form.FieldDate))

	m := Model{
		session: session,
		fields:  session.Fields(),
		inputs:  inputs,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
	// The clock-in field gets initial focus; the date is prefilled.
	m.setFocus(form.FieldTimeIn)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadSuggestions)
}

// setFocus blurs every input and focuses the target field. The
// suggestion accept binding is rebound away from tab, which advances
// fields here.
func (m *Model) setFocus(id form.FieldID) {
	m.focus = id
	for fid, ti := range m.inputs {
		if fid == id {
			ti.Focus()
			ti.KeyMap.AcceptSuggestion = m.keys.Suggestion
		} else {
			ti.Blur()
		}
	}
	if id == form.FieldWorkScope {
		m.syncScopeHighlight()
	}
}

// syncScopeHighlight moves the selector highlight onto the active scope
// when one is already selected.
func (m *Model) syncScopeHighlight() {
	for i, scope := range models.Scopes() {
		if scope == m.session.Scope() {
			m.scopeIdx = i
			return
		}
	}
}

// highlightedScope is the selector option the highlight currently sits
// on.
func (m Model) highlightedScope() models.WorkScope {
	scopes := models.Scopes()
	if m.scopeIdx < 0 || m.scopeIdx >= len(scopes) {
		return scopes[0]
	}
	return scopes[m.scopeIdx]
}

// syncSessionValue copies a text input's content into the session so
// validation and assembly see what the user sees.
func (m *Model) syncSessionValue(id form.FieldID) {
	if ti, ok := m.inputs[id]; ok {
		m.session.SetValue(id, ti.Value())
	}
}

// syncAllValues pushes every input into the session before submission.
func (m *Model) syncAllValues() {
	for _, id := range textFieldIDs {
		if id == form.FieldTags {
			// The tag entry buffer is not a field value; committed
			// tags live in the session's tag set.
			continue
		}
		m.syncSessionValue(id)
	}
}
