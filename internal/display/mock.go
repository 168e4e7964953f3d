package display

import (
	"sync"

	"gocv.io/x/gocv"
)

// MockDisplay records shown frames and replays scripted key presses.
type MockDisplay struct {
	mu      sync.Mutex
	keys    []int
	shown   int
	last    gocv.Mat
	hasLast bool
	closed  bool
}

// NewMockDisplay creates a display that returns keys in order, one per
// PollKey call, and NoKey once they run out.
func NewMockDisplay(keys ...int) *MockDisplay {
	return &MockDisplay{keys: keys}
}

func (d *MockDisplay) Show(frame gocv.Mat) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrClosed
	}
	if d.hasLast {
		d.last.Close()
	}
	d.last = frame.Clone()
	d.hasLast = true
	d.shown++
	return nil
}

func (d *MockDisplay) PollKey() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.keys) == 0 {
		return NoKey
	}
	key := d.keys[0]
	d.keys = d.keys[1:]
	return key
}

func (d *MockDisplay) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.hasLast {
		d.last.Close()
		d.hasLast = false
	}
	d.closed = true
	return nil
}

// Shown returns the number of frames shown.
func (d *MockDisplay) Shown() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.shown
}

// Last returns a copy of the most recent frame. The caller must close it.
func (d *MockDisplay) Last() (gocv.Mat, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.hasLast {
		return gocv.NewMat(), false
	}
	return d.last.Clone(), true
}

// Closed reports whether Close was called.
func (d *MockDisplay) Closed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}
