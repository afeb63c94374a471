package state

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of edits keyed by table number into a
// single delayed write. Scheduling a key with a timer still pending
// cancels the old one, so at most one write per key is ever in
// flight and only the final value of a burst is persisted.
type Debouncer struct {
	mu     sync.Mutex
	delay  time.Duration
	timers map[int]*time.Timer
	fns    map[int]func()
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:  delay,
		timers: map[int]*time.Timer{},
		fns:    map[int]func(){},
	}
}

// Schedule queues fn to run after the quiet period, replacing any
// pending task for the same key.
func (d *Debouncer) Schedule(key int, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, ok := d.timers[key]; ok {
		t.Stop()
	}
	d.fns[key] = fn
	d.timers[key] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		delete(d.timers, key)
		delete(d.fns, key)
		d.mu.Unlock()
		fn()
	})
}

// Flush runs every pending task immediately.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	fns := make([]func(), 0, len(d.fns))
	for key, t := range d.timers {
		t.Stop()
		fns = append(fns, d.fns[key])
	}
	d.timers = map[int]*time.Timer{}
	d.fns = map[int]func(){}
	d.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
