// Package telemetry connects build spans to OpenTelemetry and to the terminal renderer.
package telemetry

import (
	"bytes"
	"sync"
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultBatchSize is the number of buffered bytes that forces a flush.
	DefaultBatchSize = 4096
	// DefaultBatchInterval is how long output may sit in the buffer.
	DefaultBatchInterval = 50 * time.Millisecond
)

// ErrBatcherClosed is returned when writing to a closed Batcher.
var ErrBatcherClosed = zerr.New("output batcher is closed")

// Batcher groups small writes of compiler output into larger chunks.
// Chunks are delivered in write order. Batcher is safe for concurrent use.
type Batcher struct {
	size     int
	interval time.Duration
	deliver  func([]byte)

	mu     sync.Mutex
	buf    bytes.Buffer
	timer  *time.Ticker
	done   chan struct{}
	closed bool
}

// NewBatcher starts a Batcher. Non-positive size or interval select the defaults.
// Close must be called to stop the background flusher.
func NewBatcher(size int, interval time.Duration, deliver func([]byte)) *Batcher {
	if size <= 0 {
		size = DefaultBatchSize
	}
	if interval <= 0 {
		interval = DefaultBatchInterval
	}

	b := &Batcher{
		size:     size,
		interval: interval,
		deliver:  deliver,
		timer:    time.NewTicker(interval),
		done:     make(chan struct{}),
	}
	go b.loop()
	return b
}

// Write buffers p, delivering the buffer once it reaches the size limit.
func (b *Batcher) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, ErrBatcherClosed
	}

	n, _ := b.buf.Write(p)
	if b.buf.Len() >= b.size {
		b.deliverLocked()
		b.timer.Reset(b.interval)
	}
	return n, nil
}

// Flush delivers whatever is buffered.
func (b *Batcher) Flush() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		b.deliverLocked()
	}
}

// Close delivers the remaining output and stops the flusher. It is idempotent.
func (b *Batcher) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	close(b.done)
	b.deliverLocked()
	return nil
}

func (b *Batcher) loop() {
	defer b.timer.Stop()
	for {
		select {
		case <-b.timer.C:
			b.Flush()
		case <-b.done:
			return
		}
	}
}

// deliverLocked requires b.mu.
func (b *Batcher) deliverLocked() {
	if b.buf.Len() == 0 || b.deliver == nil {
		b.buf.Reset()
		return
	}
	chunk := bytes.Clone(b.buf.Bytes())
	b.buf.Reset()
	b.deliver(chunk)
}
