// Package canvas holds the persistent ink layer drawn by the index finger.
package canvas

import (
	"errors"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Defaults for a fresh canvas.
const (
	DefaultBrushSize  = 7
	DefaultEraserSize = 20
)

// DefaultColor is the initial ink color (green).
var DefaultColor = color.RGBA{R: 0, G: 255, B: 0, A: 255}

// ErrSizeMismatch is returned when compositing onto a frame of another size or type.
var ErrSizeMismatch = errors.New("frame does not match canvas size")

// Mode selects what AddPoint does with the segment it is given.
type Mode int

const (
	// ModeDraw strokes lines in the current color.
	ModeDraw Mode = iota
	// ModeErase stamps empty circles.
	ModeErase
)

// String returns the label shown in the mode indicator.
func (m Mode) String() string {
	if m == ModeErase {
		return "Erase"
	}
	return "Draw"
}

// Canvas is a BGR raster that accumulates ink across frames.
// Black pixels are empty; any other value is ink.
type Canvas struct {
	mat        gocv.Mat
	width      int
	height     int
	prev       image.Point
	hasPrev    bool
	color      color.RGBA
	brushSize  int
	eraserSize int
	mode       Mode
}

// New creates an empty canvas. Its size never changes afterwards.
func New(width, height int) *Canvas {
	return &Canvas{
		mat:        blank(width, height),
		width:      width,
		height:     height,
		color:      DefaultColor,
		brushSize:  DefaultBrushSize,
		eraserSize: DefaultEraserSize,
		mode:       ModeDraw,
	}
}

func blank(width, height int) gocv.Mat {
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), height, width, gocv.MatTypeCV8UC3)
}

// AddPoint extends the current stroke to (x, y).
//
// The first point after a reset only registers the position. After that,
// draw mode strokes a line from the previous point, while erase mode stamps
// a filled circle of the eraser radius centred on (x, y).
func (c *Canvas) AddPoint(x, y int) {
	p := image.Pt(x, y)
	if c.hasPrev {
		switch c.mode {
		case ModeDraw:
			gocv.Line(&c.mat, c.prev, p, c.color, c.brushSize)
		case ModeErase:
			gocv.Circle(&c.mat, p, c.eraserSize, color.RGBA{A: 255}, -1)
		}
	}
	c.prev = p
	c.hasPrev = true
}

// ResetPreviousPoint lifts the pen so the next point starts a new stroke.
func (c *Canvas) ResetPreviousPoint() {
	c.hasPrev = false
	c.prev = image.Point{}
}

// PreviousPoint returns the last registered point, if the pen is down.
func (c *Canvas) PreviousPoint() (image.Point, bool) {
	return c.prev, c.hasPrev
}

// Clear removes all ink.
func (c *Canvas) Clear() {
	c.mat.SetTo(gocv.NewScalar(0, 0, 0, 0))
}

// SetColor sets the ink color for later strokes.
func (c *Canvas) SetColor(col color.RGBA) {
	col.A = 255
	c.color = col
}

// Color returns the current ink color.
func (c *Canvas) Color() color.RGBA {
	return c.color
}

// SetBrushSize sets the stroke thickness. Non-positive sizes are ignored.
func (c *Canvas) SetBrushSize(size int) {
	if size <= 0 {
		return
	}
	c.brushSize = size
}

// BrushSize returns the stroke thickness.
func (c *Canvas) BrushSize() int {
	return c.brushSize
}

// SetEraserSize sets the eraser radius. Non-positive sizes are ignored.
func (c *Canvas) SetEraserSize(size int) {
	if size <= 0 {
		return
	}
	c.eraserSize = size
}

// EraserSize returns the eraser radius.
func (c *Canvas) EraserSize() int {
	return c.eraserSize
}

// ToggleMode flips between draw and erase. The previous point is kept;
// callers lift the pen themselves.
func (c *Canvas) ToggleMode() {
	if c.mode == ModeDraw {
		c.mode = ModeErase
	} else {
		c.mode = ModeDraw
	}
}

// Mode returns the current mode.
func (c *Canvas) Mode() Mode {
	return c.mode
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() image.Point {
	return image.Pt(c.width, c.height)
}

// Snapshot returns a copy of the ink layer. The caller must close it.
func (c *Canvas) Snapshot() gocv.Mat {
	return c.mat.Clone()
}

// Composite copies every ink pixel onto frame and leaves the rest of the
// frame untouched.
func (c *Canvas) Composite(frame *gocv.Mat) error {
	if frame == nil || frame.Rows() != c.height || frame.Cols() != c.width || frame.Type() != c.mat.Type() {
		return ErrSizeMismatch
	}

	// A pixel is ink unless all three channels are zero.
	black := gocv.NewMat()
	defer black.Close()
	zero := gocv.NewScalar(0, 0, 0, 0)
	gocv.InRangeWithScalar(c.mat, zero, zero, &black)

	mask := gocv.NewMat()
	defer mask.Close()
	gocv.BitwiseNot(black, &mask)

	c.mat.CopyToWithMask(frame, mask)
	return nil
}

// Close releases the raster.
func (c *Canvas) Close() error {
	return c.mat.Close()
}
