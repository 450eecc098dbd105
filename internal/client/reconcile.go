package client

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"recipes/internal/domain/shoppinglist"
)

type ItemState int

const (
	Synced ItemState = iota
	PendingToggle
	PendingDelete
	Deleted
)

func (s ItemState) String() string {
	switch s {
	case Synced:
		return "synced"
	case PendingToggle:
		return "pending-toggle"
	case PendingDelete:
		return "pending-delete"
	case Deleted:
		return "deleted"
	}
	return fmt.Sprintf("ItemState(%d)", int(s))
}

// ItemSyncer is the server side of the list; *ShoppingList implements it.
type ItemSyncer interface {
	Toggle(ctx context.Context, id int64, userID string, checked bool) error
	Delete(ctx context.Context, id int64, userID string) error
}

type opKind int

const (
	opToggle opKind = iota
	opDelete
)

type op struct {
	kind    opKind
	id      int64
	checked bool
	seq     uint64
	item    shoppinglist.Item
}

// Reconciler keeps a local copy of a user's shopping list that changes
// immediately on toggle and delete, while the matching requests run in the
// background. Requests for one item run one at a time in the order they were
// made. A failed request puts the affected item back the way the server last
// confirmed it and is reported to OnError; nothing is retried.
type Reconciler struct {
	ctx    context.Context
	api    ItemSyncer
	userID string

	// OnError receives every failed request. It is called outside the lock.
	OnError func(error)

	mu        sync.Mutex
	items     []shoppinglist.Item
	states    map[int64]ItemState
	confirmed map[int64]int
	seq       map[int64]uint64
	queues    map[int64][]op
	wg        sync.WaitGroup
}

// NewReconciler starts from items as last loaded from the server. ctx bounds
// every background request.
func NewReconciler(ctx context.Context, api ItemSyncer, userID string, items []shoppinglist.Item) *Reconciler {
	r := &Reconciler{
		ctx:       ctx,
		api:       api,
		userID:    userID,
		items:     append([]shoppinglist.Item(nil), items...),
		states:    make(map[int64]ItemState, len(items)),
		confirmed: make(map[int64]int, len(items)),
		seq:       make(map[int64]uint64),
		queues:    make(map[int64][]op),
	}
	for _, item := range items {
		r.states[item.ID] = Synced
		r.confirmed[item.ID] = item.IsChecked
	}
	return r
}

// Items returns a snapshot of the local list.
func (r *Reconciler) Items() []shoppinglist.Item {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]shoppinglist.Item{}, r.items...)
}

func (r *Reconciler) State(id int64) ItemState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.states[id]
}

// Toggle flips the item's checked flag locally and queues the update.
func (r *Reconciler) Toggle(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("toggle %d: %w", id, ErrItemNotFound)
	}

	checked := r.items[idx].IsChecked == 0
	r.items[idx].IsChecked = 0
	if checked {
		r.items[idx].IsChecked = 1
	}

	r.seq[id]++
	r.enqueue(op{kind: opToggle, id: id, checked: checked, seq: r.seq[id]})
	return nil
}

// Delete removes the item locally and queues the delete.
func (r *Reconciler) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("delete %d: %w", id, ErrItemNotFound)
	}

	item := r.items[idx]
	r.items = append(r.items[:idx], r.items[idx+1:]...)

	r.seq[id]++
	r.enqueue(op{kind: opDelete, id: id, seq: r.seq[id], item: item})
	return nil
}

// Flush blocks until every queued request has finished and been reconciled.
func (r *Reconciler) Flush() {
	r.wg.Wait()
}

func (r *Reconciler) indexOf(id int64) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

// enqueue must be called with r.mu held.
func (r *Reconciler) enqueue(o op) {
	r.wg.Add(1)
	q := r.queues[o.id]
	r.queues[o.id] = append(q, o)
	r.states[o.id] = pendingState(o.kind)
	if len(q) == 0 {
		go r.drain(o.id)
	}
}

func pendingState(kind opKind) ItemState {
	if kind == opDelete {
		return PendingDelete
	}
	return PendingToggle
}

// drain runs the queued requests of one item. The running op stays at the
// head of the queue, and the queue leaves the map in the same critical section
// that empties it, so a non-empty queue always has exactly one worker.
func (r *Reconciler) drain(id int64) {
	for {
		r.mu.Lock()
		o := r.queues[id][0]
		r.mu.Unlock()

		err := r.send(o)

		r.mu.Lock()
		rest := r.queues[id][1:]
		if len(rest) == 0 {
			delete(r.queues, id)
		} else {
			r.queues[id] = rest
		}
		r.settle(o, err)
		onError := r.OnError
		r.mu.Unlock()

		if err != nil && onError != nil {
			onError(err)
		}
		r.wg.Done()

		if len(rest) == 0 {
			return
		}
	}
}

func (r *Reconciler) send(o op) error {
	switch o.kind {
	case opToggle:
		if err := r.api.Toggle(r.ctx, o.id, r.userID, o.checked); err != nil {
			return fmt.Errorf("update item %d: %w", o.id, err)
		}
	case opDelete:
		if err := r.api.Delete(r.ctx, o.id, r.userID); err != nil {
			return fmt.Errorf("delete item %d: %w", o.id, err)
		}
	}
	return nil
}

// settle must be called with r.mu held.
func (r *Reconciler) settle(o op, err error) {
	switch o.kind {
	case opToggle:
		if err == nil {
			r.confirmed[o.id] = boolToInt(o.checked)
		} else if r.seq[o.id] == o.seq {
			// no later local change; fall back to what the server has
			if idx := r.indexOf(o.id); idx >= 0 {
				r.items[idx].IsChecked = r.confirmed[o.id]
			}
		}

	case opDelete:
		if err == nil {
			r.states[o.id] = Deleted
			delete(r.confirmed, o.id)
			return
		}
		item := o.item
		item.IsChecked = r.confirmed[o.id]
		r.restore(item)
	}

	if next := r.queues[o.id]; len(next) > 0 {
		r.states[o.id] = pendingState(next[0].kind)
	} else {
		r.states[o.id] = Synced
	}
}

// restore puts item back where the server lists it: by creation time, then id.
func (r *Reconciler) restore(item shoppinglist.Item) {
	idx := slices.IndexFunc(r.items, func(other shoppinglist.Item) bool {
		return listedAfter(other, item)
	})
	if idx < 0 {
		idx = len(r.items)
	}
	r.items = slices.Insert(r.items, idx, item)
}

func listedAfter(a, b shoppinglist.Item) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
