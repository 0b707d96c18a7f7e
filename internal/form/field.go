package form

// FieldID identifies one form field.
type FieldID string

const (
	FieldDate           FieldID = "date"
	FieldTimeIn         FieldID = "time-in"
	FieldTimeOut        FieldID = "time-out"
	FieldActivity       FieldID = "activity"
	FieldWorkScope      FieldID = "work-scope"
	FieldEnergy         FieldID = "energy"
	FieldEngagement     FieldID = "engagement"
	FieldPrioritization FieldID = "prioritization"
	FieldTags           FieldID = "tags-input"
	FieldTagsHidden     FieldID = "tags"
	FieldNotes          FieldID = "notes"
	FieldSubmit         FieldID = "submit"
)

// FieldKind categorizes a field for shortcut routing. Scope-letter
// shortcuts are suppressed while a text or numeric field holds focus.
type FieldKind int

const (
	KindText FieldKind = iota
	KindNumber
	KindTime
	KindScope
	KindTag
	KindButton
	KindHidden
)

// Field declares one form field for focus ordering and shortcut routing.
type Field struct {
	ID    FieldID
	Kind  FieldKind
	Label string
}

// AcceptsTyping reports whether ordinary key presses are consumed by the
// field as text entry.
func (f Field) AcceptsTyping() bool {
	switch f.Kind {
	case KindText, KindNumber, KindTime, KindTag:
		return true
	}
	return false
}

// focusable reports whether the field participates in tab order. Hidden
// storage fields and unlabeled controls are excluded.
func (f Field) focusable() bool {
	return f.Kind != KindHidden && f.Label != ""
}

// DefaultFields returns the timesheet form's field list in document order.
func DefaultFields() []Field {
	return []Field{
		{ID: FieldDate, Kind: KindText, Label: "Date"},
		{ID: FieldTimeIn, Kind: KindTime, Label: "Time In"},
		{ID: FieldTimeOut, Kind: KindTime, Label: "Time Out"},
		{ID: FieldActivity, Kind: KindText, Label: "Activity"},
		{ID: FieldWorkScope, Kind: KindScope, Label: "Work Scope"},
		{ID: FieldEnergy, Kind: KindNumber, Label: "Energy"},
		{ID: FieldEngagement, Kind: KindNumber, Label: "Engagement"},
		{ID: FieldPrioritization, Kind: KindText, Label: "Prioritization"},
		{ID: FieldTags, Kind: KindTag, Label: "Tags"},
		{ID: FieldTagsHidden, Kind: KindHidden},
		{ID: FieldNotes, Kind: KindText, Label: "Notes"},
		{ID: FieldSubmit, Kind: KindButton, Label: "Save Entry"},
	}
}
