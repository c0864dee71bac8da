// Package telemetry provides adapters for collecting and forwarding
// telemetry data to the progress reporters.
package telemetry

import (
	"bytes"
	"errors"
	"sync"
	"time"
)

const (
	// DefaultFlushBytes is the buffer size that forces a flush.
	DefaultFlushBytes = 4096
	// DefaultFlushInterval is the longest data sits buffered before a flush.
	DefaultFlushInterval = 50 * time.Millisecond
)

// Batcher coalesces small writes and hands them to a callback once a size
// or time limit is reached. It is safe for concurrent use.
type Batcher struct {
	flushBytes    int
	flushInterval time.Duration
	onFlush       func([]byte)

	mu     sync.Mutex
	buffer bytes.Buffer
	ticker *time.Ticker
	done   chan struct{}
	closed bool
}

// NewBatcher returns a running Batcher. Zero limits pick the defaults.
// Call Close to stop the background flusher.
func NewBatcher(flushBytes int, flushInterval time.Duration, onFlush func([]byte)) *Batcher {
	if flushBytes <= 0 {
		flushBytes = DefaultFlushBytes
	}
	if flushInterval <= 0 {
		flushInterval = DefaultFlushInterval
	}

	b := &Batcher{
		flushBytes:    flushBytes,
		flushInterval: flushInterval,
		onFlush:       onFlush,
		done:          make(chan struct{}),
	}

	b.ticker = time.NewTicker(flushInterval)
	go b.run()

	return b
}

// Write buffers data, flushing when the size limit is crossed.
func (b *Batcher) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, errors.New("batcher is closed")
	}

	n, err := b.buffer.Write(p)
	if err != nil {
		return n, err
	}

	if b.buffer.Len() >= b.flushBytes {
		b.flushLocked()
		// A full-buffer flush restarts the clock.
		b.ticker.Reset(b.flushInterval)
	}

	return n, nil
}

// Flush hands any buffered data to the callback immediately.
func (b *Batcher) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.flushLocked()
}

// Close stops the background flusher after a final flush. Idempotent.
func (b *Batcher) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}

	b.closed = true
	close(b.done)
	b.flushLocked()
	return nil
}

func (b *Batcher) run() {
	for {
		select {
		case <-b.ticker.C:
			b.Flush()
		case <-b.done:
			b.ticker.Stop()
			return
		}
	}
}

// flushLocked must be called with mu held. The callback runs under the lock
// to preserve chunk order; it must be fast (a reporter call).
func (b *Batcher) flushLocked() {
	if b.buffer.Len() == 0 {
		return
	}

	data := make([]byte, b.buffer.Len())
	copy(data, b.buffer.Bytes())
	b.buffer.Reset()

	if b.onFlush != nil {
		b.onFlush(data)
	}
}
