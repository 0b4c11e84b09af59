package state

import "sync"

// Observer is told about every recomputation of a named derived value.
type Observer interface {
	OnRecompute(name string)
}

// Derived is a memoized pure function of its declared inputs.
type Derived[T any] struct {
	name     string
	compute  func() T
	inputs   []Source
	observer Observer

	mu       sync.Mutex
	value    T
	seen     []uint64
	valid    bool
	version  uint64
	notified uint64

	subs    listeners
	cancels []func()
	wired   bool
}

// Derive declares a derived value over inputs. compute must only read the
// declared inputs (directly or through other derived values built on them).
func Derive[T any](name string, compute func() T, inputs ...Source) *Derived[T] {
	return &Derived[T]{
		name:    name,
		compute: compute,
		inputs:  inputs,
		seen:    make([]uint64, len(inputs)),
	}
}

// WithObserver attaches an observer and returns d.
func (d *Derived[T]) WithObserver(o Observer) *Derived[T] {
	d.mu.Lock()
	d.observer = o
	d.mu.Unlock()
	return d
}

func (d *Derived[T]) Name() string { return d.name }

// Read returns the memoized value, recomputing first when any input moved.
func (d *Derived[T]) Read() T {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.refreshLocked()
	return d.value
}

// Version refreshes d and reports its version; it only moves when d was
// actually recomputed.
func (d *Derived[T]) Version() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.refreshLocked()
	return d.version
}

func (d *Derived[T]) refreshLocked() bool {
	stale := !d.valid
	current := make([]uint64, len(d.inputs))
	for i, in := range d.inputs {
		current[i] = in.Version()
		if current[i] != d.seen[i] {
			stale = true
		}
	}
	if !stale {
		return false
	}
	d.value = d.compute()
	d.seen = current
	d.valid = true
	d.version++
	if d.observer != nil {
		d.observer.OnRecompute(d.name)
	}
	return true
}

// Subscribe calls fn with the new value whenever an input change produced a
// recomputation. While d has subscribers it recomputes eagerly, on the same
// call stack as the triggering update.
func (d *Derived[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	cancel := d.watch(func() { fn(d.Read()) })
	return cancel
}

func (d *Derived[T]) watch(fn func()) func() {
	d.mu.Lock()
	if !d.wired {
		d.wired = true
		for _, in := range d.inputs {
			d.cancels = append(d.cancels, in.watch(d.onInputChanged))
		}
		d.refreshLocked()
		d.notified = d.version
	}
	d.mu.Unlock()

	cancel := d.subs.add(fn)
	return func() {
		cancel()
		d.unwireIfIdle()
	}
}

func (d *Derived[T]) onInputChanged() {
	d.mu.Lock()
	d.refreshLocked()
	changed := d.version != d.notified
	d.notified = d.version
	d.mu.Unlock()

	if changed {
		d.subs.notify()
	}
}

// unwireIfIdle detaches from the inputs once nobody listens, falling back to
// lazy recomputation on read.
func (d *Derived[T]) unwireIfIdle() {
	if d.subs.len() > 0 {
		return
	}
	d.mu.Lock()
	cancels := d.cancels
	d.cancels = nil
	d.wired = false
	d.mu.Unlock()
	for _, c := range cancels {
		c()
	}
}
