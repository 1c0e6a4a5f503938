// Package clicks persists click events off the redirect response path.
//
// The redirect handler enqueues a raw ClickEvent into a buffered channel
// and returns; a small pool of workers drains the channel, enriches each
// event and appends it to storage. Recording is best-effort: when the
// buffer is full the event is dropped, and a failed insert is logged and
// forgotten. Nothing here can surface an error to a response that has
// already been sent.
package clicks

import (
	"context"
	"sync"
	"time"

	"github.com/zipplink/zipp/internal/enrich"
	"github.com/zipplink/zipp/internal/model"
	"go.uber.org/zap"
)

// recordTimeout bounds the enrichment plus insert of a single event so
// a stuck worker cannot hold a pool connection forever.
const recordTimeout = 10 * time.Second

// ClickStore is the storage slice the recorder needs.
type ClickStore interface {
	SaveClick(ctx context.Context, click *model.Click) error
}

// VisitorEnricher derives device/location labels for one event.
type VisitorEnricher interface {
	Enrich(ctx context.Context, rawUA, clientIP string) enrich.Visitor
}

// Recorder runs the click worker pool.
type Recorder struct {
	events   chan model.ClickEvent
	store    ClickStore
	enricher VisitorEnricher
	logger   *zap.Logger
	workers  int
	wg       sync.WaitGroup
}

// NewRecorder creates a Recorder with the given buffer size and worker
// count. Call Start before enqueueing.
func NewRecorder(store ClickStore, enricher VisitorEnricher, bufferSize, workers int, logger *zap.Logger) *Recorder {
	return &Recorder{
		events:   make(chan model.ClickEvent, bufferSize),
		store:    store,
		enricher: enricher,
		logger:   logger,
		workers:  workers,
	}
}

// Start launches the worker goroutines.
func (r *Recorder) Start() {
	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker()
	}
	r.logger.Info("click recorder started", zap.Int("workers", r.workers), zap.Int("buffer", cap(r.events)))
}

// Enqueue hands an event to the pool without blocking. It reports false
// when the buffer is full and the event was dropped.
func (r *Recorder) Enqueue(ev model.ClickEvent) bool {
	select {
	case r.events <- ev:
		return true
	default:
		r.logger.Warn("click buffer full, dropping event", zap.Uint("url_id", ev.URLID))
		return false
	}
}

// Close stops accepting events and waits for the workers to drain what
// is already buffered. Events still in flight during process exit are
// lost; that is accepted.
func (r *Recorder) Close() {
	close(r.events)
	r.wg.Wait()
}

func (r *Recorder) worker() {
	defer r.wg.Done()
	for ev := range r.events {
		r.record(ev)
	}
}

// record enriches and persists one event. A panic anywhere below must
// not take the worker down with it.
func (r *Recorder) record(ev model.ClickEvent) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("click worker recovered from panic", zap.Any("panic", rec), zap.Uint("url_id", ev.URLID))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()

	visitor := r.enricher.Enrich(ctx, ev.UserAgent, ev.ClientIP)

	click := &model.Click{
		URLID:   ev.URLID,
		City:    visitor.City,
		Device:  visitor.Device,
		Country: visitor.Country,
	}

	if err := r.store.SaveClick(ctx, click); err != nil {
		r.logger.Error("click lost",
			zap.Uint("url_id", ev.URLID),
			zap.String("device", visitor.Device),
			zap.Error(err))
	}
}
