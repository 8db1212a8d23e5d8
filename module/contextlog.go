package module

// ContextLog is the ordered, append-only record log a chain threads through
// its transforms. Transforms may append records as an observability side
// channel; the API deliberately has no way to remove or reorder entries.
type ContextLog struct {
	records []any
}

// Append adds a record to the end of the log.
func (l *ContextLog) Append(record any) {
	l.records = append(l.records, record)
}

// Records returns a copy of the log contents in append order.
func (l *ContextLog) Records() []any {
	out := make([]any, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records in the log.
func (l *ContextLog) Len() int {
	return len(l.records)
}
