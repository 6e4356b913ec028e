package easel

import "strings"

// tagSet holds a shape's tags. Order carries no meaning; duplicates and the
// empty string are never stored.
type tagSet []string

func (t tagSet) has(tag string) bool {
	for _, s := range t {
		if s == tag {
			return true
		}
	}
	return false
}

func (t *tagSet) add(tag string) {
	if tag == "" || t.has(tag) {
		return
	}
	*t = append(*t, tag)
}

// replace swaps the whole set in one step. The caller's slice is never retained.
func (t *tagSet) replace(tags []string) {
	next := make(tagSet, 0, len(tags))
	for _, tag := range tags {
		next.add(tag)
	}
	*t = next
}

func (t tagSet) clone() []string {
	out := make([]string, len(t))
	copy(out, t)
	return out
}

// ParseTags splits raw text on whitespace into tags, dropping empty tokens.
func ParseTags(raw string) []string {
	return strings.Fields(raw)
}

// soloTag extracts the tag solo mode filters on: the first whitespace-separated
// token of the filter text, or "" when the text is blank.
func soloTag(filterText string) string {
	fields := strings.Fields(filterText)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
