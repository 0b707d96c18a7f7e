package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/punchlog/internal/form"
	"github.com/julianstephens/punchlog/internal/models"
)

// suggestionsMsg delivers cached suggestion lists at startup.
type suggestionsMsg struct {
	recent []string
	vocab  []string
}

// lastClockOutMsg delivers the cached clock-out time for autofill.
type lastClockOutMsg struct {
	t string
}

// submitResultMsg reports the outcome of an in-flight submission.
type submitResultMsg struct {
	err error
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case suggestionsMsg:
		m.inputs[form.FieldActivity].SetSuggestions(msg.recent)
		m.inputs[form.FieldTags].SetSuggestions(msg.vocab)
		return m, nil

	case lastClockOutMsg:
		if msg.t == "" {
			return m, nil
		}
		m.inputs[form.FieldTimeIn].SetValue(msg.t)
		m.syncSessionValue(form.FieldTimeIn)
		m.advance()
		return m, nil

	case submitResultMsg:
		m.submitting = false
		if msg.err == nil {
			// Entry recorded and caches refreshed; close the form.
			m.quitting = true
			return m, tea.Quit
		}
		m.errMsg = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		// A single session instance: no edits or re-triggers while an
		// append is in flight.
		if m.submitting {
			return m, nil
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes one key event through the shortcut table and applies
// the verdict.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	var value string
	if ti, ok := m.inputs[m.focus]; ok {
		value = ti.Value()
	}

	act := form.Route(m.fields, m.focus, value, keyEvent(msg))
	switch act.Kind {
	case form.ActionSubmit:
		return m.startSubmit(form.TriggerOverrideChord)

	case form.ActionFocus:
		m.syncSessionValue(m.focus)
		m.setFocus(act.Target)
		return m, nil

	case form.ActionAdvance:
		m.syncSessionValue(m.focus)
		m.advance()
		return m, nil

	case form.ActionCommitScope:
		m.session.SelectScope(m.highlightedScope())
		m.setFocus(act.Target)
		return m, nil

	case form.ActionSelectScope:
		m.session.SelectScope(act.Scope)
		m.syncScopeHighlight()
		m.setFocus(act.Target)
		return m, nil

	case form.ActionCommitTag:
		ti := m.inputs[form.FieldTags]
		m.session.Tags().Add(ti.Value())
		ti.SetValue("")
		return m, nil

	case form.ActionFillNow:
		m.inputs[m.focus].SetValue(m.session.CurrentTime())
		m.syncSessionValue(m.focus)
		m.advance()
		return m, nil

	case form.ActionFillLastOut:
		return m, m.fillLastOut
	}

	return m.handleUnrouted(msg)
}

// handleUnrouted covers interactions below the shortcut table: tab
// movement, scope highlight navigation, submit control activation, tag
// chip removal and plain text entry.
func (m Model) handleUnrouted(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.syncSessionValue(m.focus)
		m.advance()
		return m, nil
	case "shift+tab":
		m.syncSessionValue(m.focus)
		m.retreat()
		return m, nil
	}

	if m.focus == form.FieldWorkScope {
		switch msg.String() {
		case "left", "h", "up", "k":
			if m.scopeIdx > 0 {
				m.scopeIdx--
			}
			return m, nil
		case "right", "l", "down", "j":
			if m.scopeIdx < len(models.Scopes())-1 {
				m.scopeIdx++
			}
			return m, nil
		case " ":
			m.session.SelectScope(m.highlightedScope())
			m.setFocus(form.FieldPrioritization)
			return m, nil
		}
		return m, nil
	}

	if m.focus == form.FieldSubmit {
		// Space is the submit control's direct activation, the
		// counterpart of clicking the button.
		if msg.String() == " " {
			return m.startSubmit(form.TriggerSubmitControl)
		}
		return m, nil
	}

	ti, ok := m.inputs[m.focus]
	if !ok {
		return m, nil
	}

	// Backspace on an empty tag entry removes the newest chip.
	if m.focus == form.FieldTags && msg.String() == "backspace" && ti.Value() == "" {
		tags := m.session.Tags().Items()
		if len(tags) > 0 {
			m.session.Tags().Remove(tags[len(tags)-1])
		}
		return m, nil
	}

	updated, cmd := ti.Update(msg)
	*ti = updated
	return m, cmd
}

// advance moves focus to the next field; on the last field focus stays
// put.
func (m *Model) advance() {
	if next, ok := form.Next(m.fields, m.focus); ok {
		m.setFocus(next)
	}
}

// retreat moves focus to the previous field in tab order.
func (m *Model) retreat() {
	order := form.Focusables(m.fields)
	for i, id := range order {
		if id == m.focus && i > 0 {
			m.setFocus(order[i-1])
			return
		}
	}
}

// startSubmit pushes the current inputs into the session and runs the
// submission pipeline off the update loop. The form stays locked until
// the result message arrives.
func (m Model) startSubmit(trigger form.Trigger) (Model, tea.Cmd) {
	m.syncAllValues()
	m.errMsg = ""
	m.submitting = true
	session := m.session
	return m, func() tea.Msg {
		return submitResultMsg{err: session.Submit(context.Background(), trigger)}
	}
}

// fillLastOut reads the cached clock-out time off the update loop.
func (m Model) fillLastOut() tea.Msg {
	return lastClockOutMsg{t: m.session.LastClockOut(context.Background())}
}

// loadSuggestions reads the cached suggestion lists off the update loop.
func (m Model) loadSuggestions() tea.Msg {
	ctx := context.Background()
	return suggestionsMsg{
		recent: m.session.RecentActivities(ctx),
		vocab:  m.session.Vocabulary(ctx),
	}
}

// keyEvent normalizes a terminal key message into the form package's
// event shape.
func keyEvent(msg tea.KeyMsg) form.KeyEvent {
	s := msg.String()
	var ev form.KeyEvent
	for {
		switch {
		case strings.HasPrefix(s, "ctrl+"):
			ev.Ctrl = true
			s = strings.TrimPrefix(s, "ctrl+")
		case strings.HasPrefix(s, "alt+"):
			ev.Alt = true
			s = strings.TrimPrefix(s, "alt+")
		default:
			ev.Key = s
			return ev
		}
	}
}
