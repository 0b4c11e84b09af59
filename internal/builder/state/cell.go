package state

import (
	"sort"
	"sync"
)

// Source is anything a derived value can depend on.
type Source interface {
	// Version increases every time the observable value changes.
	Version() uint64
	// watch registers fn to run after every change and returns a cancel func.
	watch(fn func()) func()
}

// listeners is a registration table shared by cells and derived values.
// Callbacks run in registration order.
type listeners struct {
	mu   sync.Mutex
	next int
	fns  map[int]func()
}

func (l *listeners) add(fn func()) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = make(map[int]func())
	}
	id := l.next
	l.next++
	l.fns[id] = fn
	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.fns, id)
			l.mu.Unlock()
		})
	}
}

func (l *listeners) snapshot() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	ids := make([]int, 0, len(l.fns))
	for id := range l.fns {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]func(), len(ids))
	for i, id := range ids {
		out[i] = l.fns[id]
	}
	return out
}

func (l *listeners) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}

func (l *listeners) notify() {
	for _, fn := range l.snapshot() {
		fn()
	}
}

// Cell holds one value of the domain store.
type Cell[T any] struct {
	name    string
	mu      sync.RWMutex
	value   T
	version uint64
	subs    listeners
}

func NewCell[T any](name string, initial T) *Cell[T] {
	return &Cell[T]{name: name, value: initial, version: 1}
}

func (c *Cell[T]) Name() string { return c.name }

// Read returns the current snapshot.
func (c *Cell[T]) Read() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

func (c *Cell[T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Set replaces the value.
func (c *Cell[T]) Set(v T) {
	c.Update(func(T) T { return v })
}

// Update applies fn to the current value and stores the result. fn must not
// modify its argument in place. Watchers and subscribers run after the new
// value is visible and before Update returns.
func (c *Cell[T]) Update(fn func(T) T) T {
	c.mu.Lock()
	next := fn(c.value)
	c.value = next
	c.version++
	c.mu.Unlock()

	c.subs.notify()
	return next
}

// Subscribe calls fn with the new value after every update.
func (c *Cell[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	return c.subs.add(func() { fn(c.Read()) })
}

func (c *Cell[T]) watch(fn func()) func() {
	return c.subs.add(fn)
}
