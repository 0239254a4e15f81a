package game

import (
	"fmt"
	"strings"
)

// MatchLogEntry is one recorded event during a match.
type MatchLogEntry struct {
	Tick     int
	Category string  // phase, tile, fall, player
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] tile    warning      3,-2
func (e MatchLogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-7s %-12s %s", e.Tick, e.Category, e.Key, e.Value)
}

// MatchLog collects structured events during a match. It is unbounded
// and machine-readable — the consumers are tests and the headless
// reporter, not the HUD.
type MatchLog struct {
	entries []MatchLogEntry
	verbose bool
}

// NewMatchLog creates a MatchLog. If verbose is true, per-tick player
// position/speed entries are also recorded.
func NewMatchLog(verbose bool) *MatchLog {
	return &MatchLog{verbose: verbose}
}

// Add records a new entry.
func (ml *MatchLog) Add(tick int, category, key, value string, numVal float64) {
	if ml == nil {
		return
	}
	ml.entries = append(ml.entries, MatchLogEntry{
		Tick:     tick,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (ml *MatchLog) AddVerbose(tick int, category, key, value string, numVal float64) {
	if ml == nil || !ml.verbose {
		return
	}
	ml.Add(tick, category, key, value, numVal)
}

// Entries returns all recorded entries.
func (ml *MatchLog) Entries() []MatchLogEntry {
	if ml == nil {
		return nil
	}
	return ml.entries
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (ml *MatchLog) Filter(category, key string) []MatchLogEntry {
	var out []MatchLogEntry
	for _, e := range ml.Entries() {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (ml *MatchLog) FilterTickRange(fromTick, toTick int) []MatchLogEntry {
	var out []MatchLogEntry
	for _, e := range ml.Entries() {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// Tail formats the last n entries as one block, for debug reports.
func (ml *MatchLog) Tail(n int) string {
	entries := ml.Entries()
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
