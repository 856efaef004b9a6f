package session

import (
	"time"

	"ethToolBox/internal/model"
)

// ResultLog is an append-only, numbered sequence of result lines. Append
// returns a new log and never touches the receiver's entries.
type ResultLog struct {
	entries []model.LogEntry
}

// Append returns a copy of the log with one more entry.
func (l ResultLog) Append(sessionID, line string, failed bool, at time.Time) ResultLog {
	entries := make([]model.LogEntry, len(l.entries), len(l.entries)+1)
	copy(entries, l.entries)
	entries = append(entries, model.LogEntry{
		SessionID: sessionID,
		Seq:       len(l.entries) + 1,
		Line:      line,
		Failed:    failed,
		At:        at.UTC().Format(time.RFC3339Nano),
	})
	return ResultLog{entries: entries}
}

func (l ResultLog) Len() int {
	return len(l.entries)
}

// Entries returns the entries in append order.
func (l ResultLog) Entries() []model.LogEntry {
	return l.Since(0)
}

// Since returns the entries appended after the first n.
func (l ResultLog) Since(n int) []model.LogEntry {
	if n < 0 {
		n = 0
	}
	if n >= len(l.entries) {
		return nil
	}
	out := make([]model.LogEntry, len(l.entries)-n)
	copy(out, l.entries[n:])
	return out
}

// Last returns the most recent entry.
func (l ResultLog) Last() (model.LogEntry, bool) {
	if len(l.entries) == 0 {
		return model.LogEntry{}, false
	}
	return l.entries[len(l.entries)-1], true
}
