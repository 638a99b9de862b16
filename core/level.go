package core

import "strings"

// Level is the severity of a log entry. Its numeric value is its rank;
// levels are totally ordered by rank, smallest first.
type Level int8

const (
	NoneLevel Level = iota
	InfoLevel
	// DebugLevel is the default level of a log call
	DebugLevel
	LowLevel
	MidLevel
	HighLevel
	MarkLevel
	CommentLevel
	DoneLevel
	BlueLevel
	GreenLevel
	YellowLevel
	OrangeLevel
	RedLevel
	NullLevel
	WarningLevel
	ErrorLevel
	CrashLevel
)

// DefaultLevel is used when a call does not name a level.
const DefaultLevel = DebugLevel

var levelNames = [...]string{
	NoneLevel:    "none",
	InfoLevel:    "info",
	DebugLevel:   "debug",
	LowLevel:     "low",
	MidLevel:     "mid",
	HighLevel:    "high",
	MarkLevel:    "mark",
	CommentLevel: "comment",
	DoneLevel:    "done",
	BlueLevel:    "blue",
	GreenLevel:   "green",
	YellowLevel:  "yellow",
	OrangeLevel:  "orange",
	RedLevel:     "red",
	NullLevel:    "null",
	WarningLevel: "warning",
	ErrorLevel:   "error",
	CrashLevel:   "crash",
}

var levelIcons = [...]string{
	MarkLevel:    "🔘",
	CommentLevel: "💬",
	DoneLevel:    "✅",
	BlueLevel:    "🔵",
	GreenLevel:   "🟢",
	YellowLevel:  "🟡",
	OrangeLevel:  "🟠",
	RedLevel:     "🔴",
	NullLevel:    "🚫",
	WarningLevel: "⚠️",
	ErrorLevel:   "⛔️",
	CrashLevel:   "📛",
}

// Levels returns every level, smallest rank first.
func Levels() []Level {
	out := make([]Level, 0, len(levelNames))
	for i := range levelNames {
		out = append(out, Level(i))
	}
	return out
}

// Valid reports whether l is one of the registered levels.
func (l Level) Valid() bool {
	return l >= NoneLevel && l <= CrashLevel
}

// Rank returns the position of the level in the registry.
func (l Level) Rank() int {
	return int(l)
}

// Icon returns the display icon of the level. Low ranks have none.
func (l Level) Icon() string {
	if !l.Valid() || int(l) >= len(levelIcons) {
		return ""
	}
	return levelIcons[l]
}

// String returns the level name
func (l Level) String() string {
	if !l.Valid() {
		return "unknown"
	}
	return levelNames[l]
}

// Compare returns -1, 0 or +1 depending on whether l ranks below, equal to
// or above other.
func (l Level) Compare(other Level) int {
	switch {
	case l < other:
		return -1
	case l > other:
		return 1
	default:
		return 0
	}
}

// LevelFromRank maps a rank back onto a level. Unknown ranks map to
// NoneLevel and ok is false.
func LevelFromRank(rank int) (Level, bool) {
	if rank < int(NoneLevel) || rank > int(CrashLevel) {
		return NoneLevel, false
	}
	return Level(rank), true
}

// ParseLevel converts a level name (case-insensitive) to a Level.
// "warn" is accepted as an alias of "warning".
func ParseLevel(s string) (Level, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warn" {
		return WarningLevel, true
	}
	for i, n := range levelNames {
		if n == name {
			return Level(i), true
		}
	}
	return DefaultLevel, false
}
