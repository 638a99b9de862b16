package formatter

import (
	"strings"
	"time"
)

// icuTokens maps ICU date pattern letters to Go layout elements, longest
// run first.
var icuTokens = []struct {
	icu    string
	layout string
}{
	{"yyyy", "2006"},
	{"yy", "06"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"dd", "02"},
	{"d", "2"},
	{"EEEE", "Monday"},
	{"EEE", "Mon"},
	{"HH", "15"},
	{"hh", "03"},
	{"h", "3"},
	{"mm", "04"},
	{"m", "4"},
	{"ss", "05"},
	{"s", "5"},
	{"SSSSSS", "000000"},
	{"SSS", "000"},
	{"SS", "00"},
	{"S", "0"},
	{"a", "PM"},
	{"ZZZZZ", "Z07:00"},
	{"Z", "-0700"},
	{"z", "MST"},
}

// DateLayout converts an ICU style date pattern such as
// "yyyy-MM-dd HH:mm:ss.SSS" into a Go time layout. Text between single
// quotes is copied literally; '' is a literal quote. Letters without a
// mapping are copied as they are.
func DateLayout(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		c := pattern[i]
		if c == '\'' {
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				b.WriteByte('\'')
				i += 2
				continue
			}
			end := strings.IndexByte(pattern[i+1:], '\'')
			if end < 0 {
				b.WriteString(pattern[i+1:])
				break
			}
			b.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
			continue
		}
		matched := false
		for _, t := range icuTokens {
			if strings.HasPrefix(pattern[i:], t.icu) {
				b.WriteString(t.layout)
				i += len(t.icu)
				matched = true
				break
			}
		}
		if !matched {
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// dateCodec formats and parses timestamps with one pattern.
type dateCodec struct {
	layout string
}

func newDateCodec(pattern, fallback string) dateCodec {
	if pattern == "" {
		pattern = fallback
	}
	return dateCodec{layout: DateLayout(pattern)}
}

func (d dateCodec) format(t time.Time) string {
	return t.Format(d.layout)
}

func (d dateCodec) parse(s string) (time.Time, error) {
	return time.ParseInLocation(d.layout, s, time.Local)
}
