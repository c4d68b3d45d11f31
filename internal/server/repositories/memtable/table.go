// Package memtable is the in-memory row store behind the catalog
// repositories: rows keyed by sequential ids, kept in insertion order.
package memtable

import "sync"

// Table holds rows of type T. Ids start at 1, grow by one per successful
// insert, and are never handed out twice. All methods are safe for
// concurrent use.
type Table[T any] struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]T
	order  []int64
}

func New[T any]() *Table[T] {
	return &Table[T]{nextID: 1, rows: make(map[int64]T)}
}

// Insert builds a row under the next id and stores it. If conflicts is non-nil
// and reports true for any existing row, nothing is stored, no id is consumed
// and ok is false.
func (t *Table[T]) Insert(build func(id int64) T, conflicts func(existing T) bool) (row T, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if conflicts != nil {
		for _, id := range t.order {
			if conflicts(t.rows[id]) {
				return row, false
			}
		}
	}

	id := t.nextID
	t.nextID++

	row = build(id)
	t.rows[id] = row
	t.order = append(t.order, id)
	return row, true
}

func (t *Table[T]) Get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

// Find returns the first row, in insertion order, matching pred.
func (t *Table[T]) Find(pred func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, id := range t.order {
		if row := t.rows[id]; pred(row) {
			return row, true
		}
	}
	var zero T
	return zero, false
}

// Filter returns every row matching pred in insertion order. The result is
// never nil.
func (t *Table[T]) Filter(pred func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		if row := t.rows[id]; pred == nil || pred(row) {
			out = append(out, row)
		}
	}
	return out
}

func (t *Table[T]) All() []T {
	return t.Filter(nil)
}

// Update replaces the row stored under id with fn(row).
func (t *Table[T]) Update(id int64, fn func(T) T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	row, ok := t.rows[id]
	if !ok {
		return row, false
	}
	row = fn(row)
	t.rows[id] = row
	return row, true
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.order)
}
