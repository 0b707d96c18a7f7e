package form

// Focusables returns the IDs of every field eligible for tab order,
// recomputed fresh from the field list so dynamically hidden fields are
// reflected immediately.
func Focusables(fields []Field) []FieldID {
	var out []FieldID
	for _, f := range fields {
		if f.focusable() {
			out = append(out, f.ID)
		}
	}
	return out
}

// Next returns the field immediately following current in the focus
// order. It reports false when current is the last focusable field or is
// not focusable at all; focus stays put in either case. There is no
// wraparound.
func Next(fields []Field, current FieldID) (FieldID, bool) {
	order := Focusables(fields)
	for i, id := range order {
		if id == current {
			if i+1 < len(order) {
				return order[i+1], true
			}
			return "", false
		}
	}
	return "", false
}

// fieldByID looks a field up in the declared list.
func fieldByID(fields []Field, id FieldID) (Field, bool) {
	for _, f := range fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}
