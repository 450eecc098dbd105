package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"recipes/internal/domain/shoppinglist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errRejected = errors.New("rejected")

// scriptedSyncer answers each call from a script of results and records the calls.
type scriptedSyncer struct {
	mu      sync.Mutex
	calls   []string
	results map[string][]error
	release chan struct{}
	gates   map[string]chan struct{}
}

func (s *scriptedSyncer) call(key string) error {
	if s.release != nil {
		<-s.release
	}
	if gate, ok := s.gates[key]; ok {
		<-gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, key)
	if q := s.results[key]; len(q) > 0 {
		s.results[key] = q[1:]
		return q[0]
	}
	return nil
}

func (s *scriptedSyncer) Toggle(_ context.Context, id int64, _ string, checked bool) error {
	return s.call(fmt.Sprintf("toggle %d %t", id, checked))
}

func (s *scriptedSyncer) Delete(_ context.Context, id int64, _ string) error {
	return s.call(fmt.Sprintf("delete %d", id))
}

func (s *scriptedSyncer) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

type errorSink struct {
	mu   sync.Mutex
	errs []error
}

func (e *errorSink) add(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.errs = append(e.errs, err)
}

func (e *errorSink) len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.errs)
}

func threeItems() []shoppinglist.Item {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []shoppinglist.Item{
		{ID: 1, UserID: "u1", Ingredient: "eggs", CreatedAt: base},
		{ID: 2, UserID: "u1", Ingredient: "milk", CreatedAt: base.Add(time.Second)},
		{ID: 3, UserID: "u1", Ingredient: "flour", CreatedAt: base.Add(2 * time.Second)},
	}
}

func newTestReconciler(syncer *scriptedSyncer) (*Reconciler, *errorSink) {
	sink := &errorSink{}
	r := NewReconciler(context.Background(), syncer, "u1", threeItems())
	r.OnError = sink.add
	return r, sink
}

func ids(items []shoppinglist.Item) []int64 {
	out := make([]int64, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestToggleSucceeds(t *testing.T) {
	syncer := &scriptedSyncer{}
	r, sink := newTestReconciler(syncer)

	require.NoError(t, r.Toggle(2))
	assert.Equal(t, 1, r.Items()[1].IsChecked, "applied before the server answers")

	r.Flush()
	assert.Equal(t, 1, r.Items()[1].IsChecked)
	assert.Equal(t, Synced, r.State(2))
	assert.Equal(t, []string{"toggle 2 true"}, syncer.Calls())
	assert.Zero(t, sink.len())
}

func TestToggleFailureReverts(t *testing.T) {
	syncer := &scriptedSyncer{results: map[string][]error{"toggle 2 true": {errRejected}}}
	r, sink := newTestReconciler(syncer)

	require.NoError(t, r.Toggle(2))
	r.Flush()

	assert.Equal(t, 0, r.Items()[1].IsChecked)
	assert.Equal(t, Synced, r.State(2))
	require.Equal(t, 1, sink.len())
	assert.ErrorIs(t, sink.errs[0], errRejected)
}

func TestSupersededToggleFailureDoesNotRevert(t *testing.T) {
	syncer := &scriptedSyncer{
		results: map[string][]error{"toggle 1 true": {errRejected, nil}},
		release: make(chan struct{}),
	}
	r, sink := newTestReconciler(syncer)

	require.NoError(t, r.Toggle(1)) // 0 -> 1, fails
	require.NoError(t, r.Toggle(1)) // 1 -> 0
	require.NoError(t, r.Toggle(1)) // 0 -> 1
	assert.Equal(t, PendingToggle, r.State(1))
	close(syncer.release)
	r.Flush()

	assert.Equal(t, []string{"toggle 1 true", "toggle 1 false", "toggle 1 true"}, syncer.Calls())
	assert.Equal(t, 1, r.Items()[0].IsChecked)
	assert.Equal(t, Synced, r.State(1))
	assert.Equal(t, 1, sink.len())
}

func TestLatestToggleFailureFallsBackToConfirmed(t *testing.T) {
	syncer := &scriptedSyncer{
		results: map[string][]error{"toggle 1 false": {errRejected}},
		release: make(chan struct{}),
	}
	r, _ := newTestReconciler(syncer)

	require.NoError(t, r.Toggle(1)) // 0 -> 1, ok
	require.NoError(t, r.Toggle(1)) // 1 -> 0, fails
	close(syncer.release)
	r.Flush()

	assert.Equal(t, 1, r.Items()[0].IsChecked)
}

func TestDeleteSucceeds(t *testing.T) {
	syncer := &scriptedSyncer{}
	r, sink := newTestReconciler(syncer)

	require.NoError(t, r.Delete(2))
	assert.Equal(t, []int64{1, 3}, ids(r.Items()))
	r.Flush()

	assert.Equal(t, []int64{1, 3}, ids(r.Items()))
	assert.Equal(t, Deleted, r.State(2))
	assert.ErrorIs(t, r.Toggle(2), ErrItemNotFound)
	assert.ErrorIs(t, r.Delete(2), ErrItemNotFound)
	assert.Zero(t, sink.len())
}

func TestDeleteFailureRestoresOnlyThatItem(t *testing.T) {
	syncer := &scriptedSyncer{
		results: map[string][]error{"delete 2": {errRejected}},
		release: make(chan struct{}),
	}
	r, sink := newTestReconciler(syncer)

	require.NoError(t, r.Delete(2))
	assert.Equal(t, PendingDelete, r.State(2))
	require.NoError(t, r.Toggle(3))
	close(syncer.release)
	r.Flush()

	items := r.Items()
	assert.Equal(t, []int64{1, 2, 3}, ids(items))
	assert.Equal(t, 1, items[2].IsChecked, "toggle on another item survives the revert")
	assert.Equal(t, Synced, r.State(2))
	assert.Equal(t, 1, sink.len())
}

func TestOperationsOnOneItemRunInOrder(t *testing.T) {
	syncer := &scriptedSyncer{
		results: map[string][]error{"delete 1": {errRejected}},
		release: make(chan struct{}),
	}
	r, _ := newTestReconciler(syncer)

	require.NoError(t, r.Toggle(1))
	require.NoError(t, r.Delete(1))
	assert.Equal(t, PendingDelete, r.State(1))
	close(syncer.release)
	r.Flush()

	assert.Equal(t, []string{"toggle 1 true", "delete 1"}, syncer.Calls())
	items := r.Items()
	require.Equal(t, []int64{1, 2, 3}, ids(items))
	assert.Equal(t, 1, items[0].IsChecked, "restored with the confirmed toggle")
}

func TestToggleUnknownItem(t *testing.T) {
	r, _ := newTestReconciler(&scriptedSyncer{})
	assert.ErrorIs(t, r.Toggle(99), ErrItemNotFound)
}

func TestToggleFromErrorCallback(t *testing.T) {
	syncer := &scriptedSyncer{results: map[string][]error{"toggle 1 true": {errRejected}}}
	r := NewReconciler(context.Background(), syncer, "u1", threeItems())

	var once sync.Once
	var retryErr error
	r.OnError = func(error) {
		once.Do(func() { retryErr = r.Toggle(1) })
	}

	require.NoError(t, r.Toggle(1))
	r.Flush()

	require.NoError(t, retryErr)
	assert.Equal(t, []string{"toggle 1 true", "toggle 1 true"}, syncer.Calls())
	assert.Equal(t, 1, r.Items()[0].IsChecked)
	assert.Equal(t, Synced, r.State(1))
}

func TestFailedDeletesRestoreListOrder(t *testing.T) {
	for _, first := range []int64{1, 2} {
		t.Run(fmt.Sprintf("delete %d answers first", first), func(t *testing.T) {
			syncer := &scriptedSyncer{
				results: map[string][]error{"delete 1": {errRejected}, "delete 2": {errRejected}},
				gates:   map[string]chan struct{}{"delete 1": make(chan struct{}), "delete 2": make(chan struct{})},
			}
			r, sink := newTestReconciler(syncer)

			require.NoError(t, r.Delete(1))
			require.NoError(t, r.Delete(2))
			assert.Equal(t, []int64{3}, ids(r.Items()))

			second := int64(3 - first)
			close(syncer.gates[fmt.Sprintf("delete %d", first)])
			require.Eventually(t, func() bool { return r.State(first) == Synced }, time.Second, time.Millisecond)
			close(syncer.gates[fmt.Sprintf("delete %d", second)])
			r.Flush()

			assert.Equal(t, []int64{1, 2, 3}, ids(r.Items()))
			assert.Equal(t, 2, sink.len())
		})
	}
}
