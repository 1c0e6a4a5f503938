package clicks

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zipplink/zipp/internal/enrich"
	"github.com/zipplink/zipp/internal/model"
	"go.uber.org/zap"
)

type fakeStore struct {
	mu     sync.Mutex
	clicks []*model.Click
	err    error
	panics bool
	saved  chan struct{}
}

func newFakeStore(buf int) *fakeStore {
	return &fakeStore{saved: make(chan struct{}, buf)}
}

func (f *fakeStore) SaveClick(ctx context.Context, click *model.Click) error {
	f.mu.Lock()
	panics, err := f.panics, f.err
	if !panics {
		f.clicks = append(f.clicks, click)
	}
	f.mu.Unlock()
	if panics {
		panic("storage exploded")
	}
	f.saved <- struct{}{}
	return err
}

func (f *fakeStore) set(panics bool, err error) {
	f.mu.Lock()
	f.panics, f.err = panics, err
	f.mu.Unlock()
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clicks)
}

type fixedEnricher struct {
	visitor enrich.Visitor
	delay   time.Duration
}

func (f fixedEnricher) Enrich(ctx context.Context, rawUA, clientIP string) enrich.Visitor {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
		}
	}
	return f.visitor
}

func TestRecorder_PersistsEnrichedClick(t *testing.T) {
	store := newFakeStore(1)
	e := fixedEnricher{visitor: enrich.Visitor{Device: "Windows", City: "Berlin", Country: "Germany"}}

	r := NewRecorder(store, e, 10, 2, zap.NewNop())
	r.Start()

	ok := r.Enqueue(model.ClickEvent{URLID: 42, UserAgent: "ua", ClientIP: ""})
	require.True(t, ok)

	select {
	case <-store.saved:
	case <-time.After(2 * time.Second):
		t.Fatal("click was never persisted")
	}
	r.Close()

	require.Equal(t, 1, store.count())
	click := store.clicks[0]
	assert.Equal(t, uint(42), click.URLID)
	assert.Equal(t, "Windows", click.Device)
	assert.Equal(t, "Berlin", click.City)
	assert.Equal(t, "Germany", click.Country)
}

func TestRecorder_EnqueueNeverBlocks(t *testing.T) {
	store := newFakeStore(16)
	// Workers not started: the buffer is the only capacity.
	r := NewRecorder(store, fixedEnricher{}, 2, 1, zap.NewNop())

	assert.True(t, r.Enqueue(model.ClickEvent{URLID: 1}))
	assert.True(t, r.Enqueue(model.ClickEvent{URLID: 2}))

	done := make(chan bool, 1)
	go func() { done <- r.Enqueue(model.ClickEvent{URLID: 3}) }()

	select {
	case ok := <-done:
		assert.False(t, ok, "a full buffer must drop, not block")
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full buffer")
	}
}

func TestRecorder_StorageFailureIsSwallowed(t *testing.T) {
	store := newFakeStore(4)
	store.set(false, errors.New("connection reset"))

	r := NewRecorder(store, fixedEnricher{visitor: enrich.Visitor{Device: "Unknown", City: "Unknown", Country: "Unknown"}}, 4, 1, zap.NewNop())
	r.Start()

	require.True(t, r.Enqueue(model.ClickEvent{URLID: 9}))
	<-store.saved

	// The worker must survive the failed insert and keep consuming.
	store.set(false, nil)
	require.True(t, r.Enqueue(model.ClickEvent{URLID: 10}))

	select {
	case <-store.saved:
	case <-time.After(2 * time.Second):
		t.Fatal("worker died after a storage failure")
	}
	r.Close()
}

func TestRecorder_PanicDoesNotKillWorker(t *testing.T) {
	store := newFakeStore(4)
	store.set(true, nil)

	r := NewRecorder(store, fixedEnricher{}, 4, 1, zap.NewNop())
	r.Start()

	require.True(t, r.Enqueue(model.ClickEvent{URLID: 1}))

	// Give the worker time to hit the panic, then stop panicking.
	time.Sleep(50 * time.Millisecond)
	store.set(false, nil)

	require.True(t, r.Enqueue(model.ClickEvent{URLID: 2}))

	select {
	case <-store.saved:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not survive a panic")
	}
	r.Close()
}

func TestRecorder_CloseDrainsBufferedEvents(t *testing.T) {
	store := newFakeStore(8)

	r := NewRecorder(store, fixedEnricher{}, 8, 2, zap.NewNop())
	for i := 0; i < 5; i++ {
		require.True(t, r.Enqueue(model.ClickEvent{URLID: uint(i + 1)}))
	}

	r.Start()
	r.Close()

	assert.Equal(t, 5, store.count())
}
