package watcher

import (
	"sync"
	"time"
)

// DefaultDebounceWindow is the default time window for coalescing file
// events. Editors commonly emit several events per save.
const DefaultDebounceWindow = 250 * time.Millisecond

// Debouncer coalesces rapid file system events into one callback per burst.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[string]struct{}
	timer    *time.Timer
	window   time.Duration
	callback func(paths []string)
}

// NewDebouncer creates a debouncer with the given window and callback.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Debouncer{
		pending:  make(map[string]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add records a changed path and restarts the debounce window.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[path] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire runs when the window expires.
func (d *Debouncer) fire() {
	paths := d.takePending(false)
	if len(paths) > 0 && d.callback != nil {
		go d.callback(paths)
	}
}

// Flush delivers pending paths immediately and synchronously. Used on
// shutdown so the last change is not lost.
func (d *Debouncer) Flush() {
	paths := d.takePending(true)
	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
}

// takePending drains the pending set. When stopping the timer, an
// already-fired timer wins and the drain yields nothing, so a burst is
// never delivered twice.
func (d *Debouncer) takePending(stopTimer bool) []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if stopTimer && d.timer != nil {
		if !d.timer.Stop() {
			return nil
		}
	}
	d.timer = nil

	if len(d.pending) == 0 {
		return nil
	}

	paths := make([]string, 0, len(d.pending))
	for path := range d.pending {
		paths = append(paths, path)
	}
	d.pending = make(map[string]struct{})

	return paths
}
