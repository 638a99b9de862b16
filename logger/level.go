package logger

import "github.com/Philipp01105/tracelog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	NoneLevel    = core.NoneLevel
	InfoLevel    = core.InfoLevel
	DebugLevel   = core.DebugLevel
	LowLevel     = core.LowLevel
	MidLevel     = core.MidLevel
	HighLevel    = core.HighLevel
	MarkLevel    = core.MarkLevel
	CommentLevel = core.CommentLevel
	DoneLevel    = core.DoneLevel
	BlueLevel    = core.BlueLevel
	GreenLevel   = core.GreenLevel
	YellowLevel  = core.YellowLevel
	OrangeLevel  = core.OrangeLevel
	RedLevel     = core.RedLevel
	NullLevel    = core.NullLevel
	WarningLevel = core.WarningLevel
	ErrorLevel   = core.ErrorLevel
	CrashLevel   = core.CrashLevel
)

// Indent directives
const (
	IndentNone     = core.IndentNone
	IndentIncrease = core.IndentIncrease
	IndentDecrease = core.IndentDecrease
	IndentReset    = core.IndentReset
)

// ParseLevel converts a level name to a Level, falling back to the
// default level for unknown names.
func ParseLevel(s string) Level {
	l, _ := core.ParseLevel(s)
	return l
}
