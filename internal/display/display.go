// Package display shows composed frames and reports key presses.
package display

import (
	"errors"

	"gocv.io/x/gocv"
)

// WindowTitle is the title of the preview window.
const WindowTitle = "Hand Writing App"

// NoKey is returned by PollKey when nothing was pressed.
const NoKey = -1

// ErrClosed is returned when showing a frame on a closed display.
var ErrClosed = errors.New("display is closed")

// Display presents frames to the user.
type Display interface {
	Show(frame gocv.Mat) error
	// PollKey waits briefly for a key press and returns its low byte, or NoKey.
	PollKey() int
	Close() error
}

// Window is a HighGUI window.
type Window struct {
	win *gocv.Window
}

// NewWindow opens the preview window.
func NewWindow(title string) *Window {
	return &Window{win: gocv.NewWindow(title)}
}

func (w *Window) Show(frame gocv.Mat) error {
	if w.win == nil {
		return ErrClosed
	}
	w.win.IMShow(frame)
	return nil
}

func (w *Window) PollKey() int {
	if w.win == nil {
		return NoKey
	}
	key := w.win.WaitKey(1)
	if key < 0 {
		return NoKey
	}
	return key & 0xFF
}

func (w *Window) Close() error {
	if w.win == nil {
		return nil
	}
	err := w.win.Close()
	w.win = nil
	return err
}
