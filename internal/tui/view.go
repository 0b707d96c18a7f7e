package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/punchlog/internal/form"
	"github.com/julianstephens/punchlog/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var rows []string
	rows = append(rows, titleStyle.Render("New Timesheet Entry"), "")

	for _, f := range m.fields {
		switch f.ID {
		case form.FieldWorkScope:
			rows = append(rows, m.viewLabeled(f, m.viewScopeSelector()))
		case form.FieldTags:
			rows = append(rows, m.viewLabeled(f, m.inputs[f.ID].View()))
			if chips := m.viewTagChips(); chips != "" {
				rows = append(rows, labelStyle.Render("")+chips)
			}
		case form.FieldTagsHidden:
			// storage-only, never rendered
		case form.FieldSubmit:
			rows = append(rows, "", m.viewSubmit(f))
		default:
			rows = append(rows, m.viewLabeled(f, m.inputs[f.ID].View()))
		}
	}

	if m.errMsg != "" {
		rows = append(rows, "", errorStyle.Render(m.errMsg))
	}
	if m.submitting {
		rows = append(rows, "", hintStyle.Render("Saving entry..."))
	}
	rows = append(rows, "", m.help.View(m.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// viewLabeled renders one "Label  content" row, marking required fields
// and highlighting the focused one.
func (m Model) viewLabeled(f form.Field, content string) string {
	label := f.Label
	if m.isRequired(f.ID) {
		label += requiredStyle.Render("*")
	}
	style := labelStyle
	if m.focus == f.ID {
		style = focusedLabelStyle
	}
	return style.Render(label) + content
}

// isRequired mirrors the scope-dependent requirement: prioritization is
// optional only for Personal time.
func (m Model) isRequired(id form.FieldID) bool {
	switch id {
	case form.FieldDate, form.FieldTimeIn, form.FieldTimeOut, form.FieldActivity, form.FieldWorkScope:
		return true
	case form.FieldPrioritization:
		scope := m.session.Scope()
		return scope == "" || scope.RequiresPrioritization()
	}
	return false
}

// viewScopeSelector renders the three mutually exclusive scope options.
// The active scope is filled; the highlight marks where enter or space
// would commit.
func (m Model) viewScopeSelector() string {
	var opts []string
	for i, scope := range models.Scopes() {
		label := string(scope)
		switch {
		case scope == m.session.Scope():
			opts = append(opts, scopeActiveStyle.Render(label))
		case m.focus == form.FieldWorkScope && i == m.scopeIdx:
			opts = append(opts, scopeHighlightStyle.Render(label))
		default:
			opts = append(opts, scopeStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, opts...)
}

// viewTagChips renders the committed tags as chips.
func (m Model) viewTagChips() string {
	tags := m.session.Tags().Items()
	if len(tags) == 0 {
		return ""
	}
	chips := make([]string, len(tags))
	for i, t := range tags {
		chips[i] = tagChipStyle.Render(t)
	}
	return strings.Join(chips, "")
}

// viewSubmit renders the submit control.
func (m Model) viewSubmit(f form.Field) string {
	style := submitStyle
	if m.focus == f.ID {
		style = submitFocusedStyle
	}
	label := f.Label
	if m.submitting {
		label = "Saving..."
	}
	return labelStyle.Render("") + style.Render(label)
}
