package inmemory

import (
	"context"
	"sync"

	"github.com/leofalp/calcgo/providers/history"
	"github.com/leofalp/calcgo/providers/observability"
)

// ArrayHistory is a simple, concurrency-safe in-memory record store.
// It uses RWMutex to guard access and is efficient for read-heavy workloads.
type ArrayHistory struct {
	mu      sync.RWMutex
	records []history.Record
}

// New returns a new, empty [ArrayHistory] ready for immediate use.
func New() *ArrayHistory {
	return &ArrayHistory{
		records: []history.Record{},
	}
}

// Ensure ArrayHistory implements history.Store at compile time.
var _ history.Store = (*ArrayHistory)(nil)

// Append stores record at the end of the history.
// When an observability span is present in ctx, an event is recorded with the
// record ID, and the running total record count is set as a span attribute so
// callers can track history growth through tracing.
func (h *ArrayHistory) Append(ctx context.Context, record history.Record) {
	span := observability.SpanFromContext(ctx)

	if span != nil {
		span.AddEvent(observability.EventHistoryAppend,
			observability.String(observability.AttrHistoryRecordID, record.ID.String()),
			observability.String(observability.AttrOperationName, record.Operation),
		)
	}

	h.mu.Lock()
	h.records = append(h.records, record)
	total := len(h.records)
	h.mu.Unlock()

	if span != nil {
		span.SetAttributes(
			observability.Int(observability.AttrHistoryTotalRecords, total),
		)
	}
}

// All returns a copy of all records, oldest first, to avoid external mutation
// of internal state. The context parameter is accepted for interface
// compliance but is not used by the in-memory implementation. The returned
// error is always nil.
func (h *ArrayHistory) All(_ context.Context) ([]history.Record, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.records) == 0 {
		return []history.Record{}, nil
	}
	out := make([]history.Record, len(h.records))
	copy(out, h.records)
	return out, nil
}

// Count returns the number of records stored.
// The context parameter is accepted for interface compliance but is not used
// by the in-memory implementation. The returned error is always nil.
func (h *ArrayHistory) Count(_ context.Context) (int, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.records), nil
}

// Clear removes all records while retaining the underlying slice capacity,
// so subsequent appends do not immediately trigger a reallocation.
// When an observability span is present in ctx, a clear event is recorded
// before the store is reset.
func (h *ArrayHistory) Clear(ctx context.Context) {
	span := observability.SpanFromContext(ctx)

	if span != nil {
		span.AddEvent(observability.EventHistoryClear)
	}

	h.mu.Lock()
	h.records = h.records[:0]
	h.mu.Unlock()
}
