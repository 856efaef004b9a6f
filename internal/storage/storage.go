package storage

import (
	"context"

	"ethToolBox/internal/model"
)

// Sink receives appended result log entries. Sinks are write-only; nothing
// reads a transcript back into a session.
type Sink interface {
	PutEntryBatch(ctx context.Context, entries []model.LogEntry) error
}

// Multi fans a batch out to several sinks, stopping at the first error.
type Multi []Sink

func (m Multi) PutEntryBatch(ctx context.Context, entries []model.LogEntry) error {
	for _, sink := range m {
		if err := sink.PutEntryBatch(ctx, entries); err != nil {
			return err
		}
	}
	return nil
}
