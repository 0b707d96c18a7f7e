package form

import (
	"strings"

	"github.com/julianstephens/punchlog/internal/constants"
)

// TagSet is a deduplicated, insertion-ordered collection of tag labels.
// A fresh TagSet is owned by each FormSession; tags never leak across
// sessions.
type TagSet struct {
	order []string
	seen  map[string]struct{}
}

// NewTagSet returns an empty tag set.
func NewTagSet() *TagSet {
	return &TagSet{seen: make(map[string]struct{})}
}

// Add appends a tag after trimming whitespace. Empty and duplicate tags
// are ignored. It reports whether the tag was actually added.
func (ts *TagSet) Add(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	if _, ok := ts.seen[text]; ok {
		return false
	}
	ts.seen[text] = struct{}{}
	ts.order = append(ts.order, text)
	return true
}

// Remove deletes a tag if present. Removing an absent tag is a no-op.
func (ts *TagSet) Remove(text string) {
	if _, ok := ts.seen[text]; !ok {
		return
	}
	delete(ts.seen, text)
	for i, t := range ts.order {
		if t == text {
			ts.order = append(ts.order[:i], ts.order[i+1:]...)
			break
		}
	}
}

// Has reports whether the tag is present.
func (ts *TagSet) Has(text string) bool {
	_, ok := ts.seen[text]
	return ok
}

// Len returns the number of tags.
func (ts *TagSet) Len() int {
	return len(ts.order)
}

// Items returns the tags in insertion order. The returned slice is a copy.
func (ts *TagSet) Items() []string {
	out := make([]string, len(ts.order))
	copy(out, ts.order)
	return out
}

// Serialize joins the tags with the sheet cell delimiter, in insertion
// order. Tag text containing the delimiter is not escaped.
func (ts *TagSet) Serialize() string {
	return strings.Join(ts.order, constants.TagDelimiter)
}

// Merge returns the deduplicated union of an existing vocabulary and the
// current tags, preserving vocabulary order first. The caller is
// responsible for writing the result back to the cache.
func (ts *TagSet) Merge(vocabulary []string) []string {
	seen := make(map[string]struct{}, len(vocabulary)+len(ts.order))
	merged := make([]string, 0, len(vocabulary)+len(ts.order))
	for _, t := range vocabulary {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		merged = append(merged, t)
	}
	for _, t := range ts.order {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		merged = append(merged, t)
	}
	return merged
}
