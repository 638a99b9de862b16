package core

import (
	"strings"
	"testing"
)

func TestGetCaller(t *testing.T) {
	caller := GetCaller(1)
	if !caller.Defined {
		t.Fatal("GetCaller() returned undefined CallerInfo")
	}

	if !strings.HasSuffix(caller.File, "entry_test.go") {
		t.Errorf("Expected entry_test.go, got %q", caller.File)
	}
	if caller.Line == 0 {
		t.Error("Expected non-zero line number")
	}
	if caller.Function == "" {
		t.Error("Expected non-empty function name")
	}
	if caller.Sender != "TestGetCaller()" {
		t.Errorf("Sender = %q, want TestGetCaller()", caller.Sender)
	}
}

func TestSenderName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"github.com/acme/app/server.(*Server).Start", "Server.Start()"},
		{"github.com/acme/app/server.Server.Stop", "Server.Stop()"},
		{"main.main", "main()"},
		{"github.com/acme/app.run.func1", "run.func1()"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := SenderName(tt.in); got != tt.want {
				t.Errorf("SenderName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEntry_Joined(t *testing.T) {
	if !(Entry{Serial: JoinSerial}).Joined() {
		t.Error("Expected join serial to report Joined")
	}
	if (Entry{Serial: 1}).Joined() {
		t.Error("Ordinary entry reported Joined")
	}
}

func TestEntry_BaseName(t *testing.T) {
	e := Entry{File: "/src/app/server.go"}
	if got := e.BaseName(); got != "server.go" {
		t.Errorf("BaseName() = %q, want server.go", got)
	}
	if got := (Entry{}).BaseName(); got != "" {
		t.Errorf("BaseName() of empty file = %q", got)
	}
}
