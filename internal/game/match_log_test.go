package game

import (
	"strings"
	"testing"
)

func TestMatchLogFilter(t *testing.T) {
	ml := NewMatchLog(false)
	ml.Add(1, "phase", "change", "waiting → spawning", 0)
	ml.Add(10, "tile", "warning", "2,-1", 0)
	ml.Add(70, "tile", "fallen", "2,-1", 0)
	ml.Add(70, "player", "eliminated", "P1", 1.15)

	if got := len(ml.Filter("tile", "")); got != 2 {
		t.Errorf("Filter(tile,) = %d entries, want 2", got)
	}
	if got := len(ml.Filter("", "warning")); got != 1 {
		t.Errorf("Filter(,warning) = %d entries, want 1", got)
	}
	if got := len(ml.Filter("tile", "eliminated")); got != 0 {
		t.Errorf("Filter(tile,eliminated) = %d entries, want 0", got)
	}
	if got := len(ml.FilterTickRange(10, 70)); got != 3 {
		t.Errorf("FilterTickRange(10,70) = %d entries, want 3", got)
	}
}

func TestMatchLogVerboseGate(t *testing.T) {
	ml := NewMatchLog(false)
	ml.AddVerbose(1, "player", "position", "P0 (0.0,0.0)", 0)
	if len(ml.Entries()) != 0 {
		t.Fatal("verbose entry recorded with verbose off")
	}

	ml = NewMatchLog(true)
	ml.AddVerbose(1, "player", "position", "P0 (0.0,0.0)", 0)
	if len(ml.Entries()) != 1 {
		t.Fatal("verbose entry dropped with verbose on")
	}
}

func TestMatchLogNilReceiver(t *testing.T) {
	var ml *MatchLog
	ml.Add(1, "tile", "warning", "0,0", 0) // must not panic
	ml.AddVerbose(1, "tile", "warning", "0,0", 0)
	if ml.Entries() != nil {
		t.Fatal("nil log returned entries")
	}
	if ml.Tail(5) != "" {
		t.Fatal("nil log returned a tail")
	}
}

func TestMatchLogTail(t *testing.T) {
	ml := NewMatchLog(false)
	for i := 0; i < 10; i++ {
		ml.Add(i, "tile", "warning", "0,0", 0)
	}
	tail := ml.Tail(3)
	lines := strings.Split(strings.TrimRight(tail, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Tail(3) = %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[2], "[T=0009]") {
		t.Errorf("last tail line = %q, want tick 9", lines[2])
	}
}

func TestMatchLogEntryString(t *testing.T) {
	e := MatchLogEntry{Tick: 42, Category: "tile", Key: "warning", Value: "3,-2"}
	if got := e.String(); got != "[T=0042] tile    warning      3,-2" {
		t.Errorf("String() = %q", got)
	}
}
