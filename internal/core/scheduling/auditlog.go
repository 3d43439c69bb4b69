package scheduling

import (
	v1 "github.com/horizon-lab/project-horizon/internal/api/v1"
)

// AuditLog is an append-only change history. The zero value is an empty log.
// Values never share backing arrays with their callers, so an AuditLog
// handed out cannot be rewritten from outside.
type AuditLog struct {
	entries []v1.LogEntry
}

// NewAuditLog wraps an existing history, oldest entry first.
func NewAuditLog(entries []v1.LogEntry) AuditLog {
	return AuditLog{entries: append([]v1.LogEntry(nil), entries...)}
}

// Append returns a log with entries added after the existing ones, in the given order.
func (l AuditLog) Append(entries ...v1.LogEntry) AuditLog {
	out := make([]v1.LogEntry, 0, len(l.entries)+len(entries))
	out = append(out, l.entries...)
	out = append(out, entries...)
	return AuditLog{entries: out}
}

// Entries returns a copy of the full history in append order.
func (l AuditLog) Entries() []v1.LogEntry {
	out := make([]v1.LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l AuditLog) Len() int {
	return len(l.entries)
}
