package core

import "strings"

// BuildMessage joins the description of every item, each followed by sep.
// Absent values are replaced by null. The separator after the last item is
// kept: joined calls rely on it to read as one line.
func BuildMessage(items []any, sep, null string) string {
	var b strings.Builder
	for _, it := range items {
		if IsNull(it) {
			b.WriteString(null)
		} else {
			b.WriteString(Describe(it))
		}
		b.WriteString(sep)
	}
	return b.String()
}
