package logger

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Closer flushes and stops a log handler.
type Closer interface {
	Close()
}

type nopCloser struct{}

func (nopCloser) Close() {}

// AsyncHandler hands records to a pool of writers through a bounded queue.
// Records are dropped, not blocked on, when the queue is full.
type AsyncHandler struct {
	next    slog.Handler
	queue   chan asyncRecord
	workers *sync.WaitGroup
	dropped *atomic.Int64
}

// asyncRecord pairs a record with the handler that must write it, so that
// WithAttrs/WithGroup derivatives can share one queue.
type asyncRecord struct {
	h   slog.Handler
	rec slog.Record
}

// NewAsyncHandler starts workers goroutines draining a queue of size capacity.
func NewAsyncHandler(next slog.Handler, capacity, workers int) *AsyncHandler {
	h := &AsyncHandler{
		next:    next,
		queue:   make(chan asyncRecord, capacity),
		workers: &sync.WaitGroup{},
		dropped: &atomic.Int64{},
	}
	for range workers {
		h.workers.Add(1)
		go h.drain()
	}
	return h
}

func (h *AsyncHandler) drain() {
	defer h.workers.Done()
	for item := range h.queue {
		_ = item.h.Handle(context.Background(), item.rec)
	}
}

// Enabled delegates to the wrapped handler.
func (h *AsyncHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle enqueues a clone of rec.
func (h *AsyncHandler) Handle(_ context.Context, rec slog.Record) error { //nolint:gocritic // slog.Handler interface requires value receiver
	select {
	case h.queue <- asyncRecord{h: h.next, rec: rec.Clone()}:
	default:
		h.dropped.Add(1)
	}
	return nil
}

// WithAttrs returns a handler that shares the queue and workers.
func (h *AsyncHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.derive(h.next.WithAttrs(attrs))
}

// WithGroup returns a handler that shares the queue and workers.
func (h *AsyncHandler) WithGroup(name string) slog.Handler {
	return h.derive(h.next.WithGroup(name))
}

func (h *AsyncHandler) derive(next slog.Handler) *AsyncHandler {
	return &AsyncHandler{next: next, queue: h.queue, workers: h.workers, dropped: h.dropped}
}

// Dropped reports how many records were discarded because the queue was full.
func (h *AsyncHandler) Dropped() int64 {
	return h.dropped.Load()
}

// Close stops accepting records and waits until the queue is drained.
func (h *AsyncHandler) Close() {
	close(h.queue)
	h.workers.Wait()
}
