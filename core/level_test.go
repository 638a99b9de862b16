package core

import "testing"

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{NoneLevel, "none"},
		{DebugLevel, "debug"},
		{CommentLevel, "comment"},
		{WarningLevel, "warning"},
		{ErrorLevel, "error"},
		{CrashLevel, "crash"},
		{Level(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Icon(t *testing.T) {
	if got := NoneLevel.Icon(); got != "" {
		t.Errorf("NoneLevel.Icon() = %q, want empty", got)
	}
	if got := HighLevel.Icon(); got != "" {
		t.Errorf("HighLevel.Icon() = %q, want empty", got)
	}
	if got := DoneLevel.Icon(); got != "✅" {
		t.Errorf("DoneLevel.Icon() = %q", got)
	}
	if got := CrashLevel.Icon(); got != "📛" {
		t.Errorf("CrashLevel.Icon() = %q", got)
	}
	if got := Level(-3).Icon(); got != "" {
		t.Errorf("invalid level icon = %q", got)
	}
}

func TestLevel_Order(t *testing.T) {
	levels := Levels()
	if len(levels) != 18 {
		t.Fatalf("len(Levels()) = %d, want 18", len(levels))
	}
	for i := 1; i < len(levels); i++ {
		if levels[i-1].Compare(levels[i]) != -1 {
			t.Errorf("%v should rank below %v", levels[i-1], levels[i])
		}
		if levels[i].Rank() != i {
			t.Errorf("%v.Rank() = %d, want %d", levels[i], levels[i].Rank(), i)
		}
	}
	if DefaultLevel.Compare(DebugLevel) != 0 {
		t.Errorf("DefaultLevel = %v, want debug", DefaultLevel)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"ERROR", ErrorLevel, true},
		{" done ", DoneLevel, true},
		{"warn", WarningLevel, true},
		{"none", NoneLevel, true},
		{"bogus", DefaultLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseLevel(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestLevelFromRank(t *testing.T) {
	if l, ok := LevelFromRank(15); !ok || l != WarningLevel {
		t.Errorf("LevelFromRank(15) = %v, %v", l, ok)
	}
	if l, ok := LevelFromRank(99); ok || l != NoneLevel {
		t.Errorf("LevelFromRank(99) = %v, %v", l, ok)
	}
	if _, ok := LevelFromRank(-1); ok {
		t.Error("LevelFromRank(-1) reported ok")
	}
	// 261 wraps to a valid int8 rank
	if l, ok := LevelFromRank(261); ok || l != NoneLevel {
		t.Errorf("LevelFromRank(261) = %v, %v", l, ok)
	}
}
