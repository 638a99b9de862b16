package core

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// JoinSerial is the serial carried by entries produced in join mode.
const JoinSerial = -1

// Entry is one logged record. Entries are values and are never modified
// after the write lane builds them; every receiver owns its copy.
type Entry struct {
	// Serial is strictly positive for ordinary records and JoinSerial for
	// joined text.
	Serial int
	Time   time.Time
	// File is the full source path, empty when unknown
	File string
	// Line is the source line, zero when unknown
	Line   int
	Sender string
	// Indent is the cursor depth, in indent units, captured when the entry
	// was built
	Indent  int
	Group   string
	Level   Level
	Message string
}

// Joined reports whether the entry was produced by a join call.
func (e Entry) Joined() bool {
	return e.Serial == JoinSerial
}

// BaseName returns the basename of the source file, or "".
func (e Entry) BaseName() string {
	if e.File == "" {
		return ""
	}
	return filepath.Base(e.File)
}

// String returns a debugging representation of every attribute.
func (e Entry) String() string {
	return fmt.Sprintf("%d %s %s %s %d %s %d %s %s",
		e.Serial, e.Time.Format(time.RFC3339Nano), e.Group, e.File, e.Line, e.Sender, e.Indent, e.Level, e.Message)
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File     string
	Line     int
	Function string
	// Sender is the short call-site name, e.g. "Server.Start()"
	Sender  string
	Defined bool
}

// GetCaller retrieves caller information. skip counts frames above
// GetCaller itself.
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:     file,
		Line:     line,
		Function: funcName,
		Sender:   SenderName(funcName),
		Defined:  true,
	}
}

// SenderName shortens a fully qualified Go function name to the form
// used in log records: the package path is dropped, pointer receivers lose
// their decoration and "()" is appended.
//
//	github.com/acme/app/server.(*Server).Start -> Server.Start()
//	main.main                                  -> main()
func SenderName(funcName string) string {
	if funcName == "" {
		return ""
	}
	name := funcName
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.NewReplacer("(*", "", "(", "", ")", "").Replace(name)
	return name + "()"
}
