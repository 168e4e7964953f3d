// Package capture reads frames from a webcam using GoCV (OpenCV).
package capture

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"
)

// Requested capture resolution.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
)

var (
	// ErrCameraNotOpen is returned when reading from a camera that is not open.
	ErrCameraNotOpen = errors.New("camera is not open")
	// ErrEndOfStream is returned when no further frame can be produced.
	ErrEndOfStream = errors.New("end of frame stream")
)

// Camera is a source of BGR frames.
type Camera interface {
	Open() error
	Close() error
	ReadFrame() (*gocv.Mat, error)
	IsOpen() bool
}

type webcam struct {
	deviceID int
	width    int
	height   int
	dev      *gocv.VideoCapture
	mu       sync.Mutex
	open     bool
}

// NewCamera creates a Camera for the given device. Non-positive dimensions
// fall back to 1280x720. The device may deliver a different resolution.
func NewCamera(deviceID, width, height int) Camera {
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}
	return &webcam{
		deviceID: deviceID,
		width:    width,
		height:   height,
	}
}

// Open opens the device and requests the configured resolution.
func (c *webcam) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open {
		return nil
	}

	dev, err := gocv.OpenVideoCapture(c.deviceID)
	if err != nil {
		return fmt.Errorf("open camera %d: %w", c.deviceID, err)
	}
	if !dev.IsOpened() {
		dev.Close()
		return fmt.Errorf("open camera %d: %w", c.deviceID, ErrCameraNotOpen)
	}

	dev.Set(gocv.VideoCaptureFrameWidth, float64(c.width))
	dev.Set(gocv.VideoCaptureFrameHeight, float64(c.height))

	c.dev = dev
	c.open = true
	return nil
}

// Close releases the device.
func (c *webcam) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open || c.dev == nil {
		c.open = false
		return nil
	}

	err := c.dev.Close()
	c.dev = nil
	c.open = false
	return err
}

// ReadFrame reads a single frame. A failed or empty read means the device
// has stopped producing frames and yields ErrEndOfStream.
// The caller is responsible for closing the returned Mat.
func (c *webcam) ReadFrame() (*gocv.Mat, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open || c.dev == nil {
		return nil, ErrCameraNotOpen
	}

	mat := gocv.NewMat()
	if ok := c.dev.Read(&mat); !ok || mat.Empty() {
		mat.Close()
		return nil, ErrEndOfStream
	}

	return &mat, nil
}

// IsOpen reports whether the camera is open.
func (c *webcam) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.open
}

// Mirror flips frame horizontally in place so the preview behaves like a mirror.
func Mirror(frame *gocv.Mat) error {
	if frame == nil || frame.Empty() {
		return ErrEndOfStream
	}
	gocv.Flip(*frame, frame, 1)
	return nil
}

// FitTo resizes frame in place to size when its dimensions differ.
func FitTo(frame *gocv.Mat, size image.Point) {
	if frame == nil || frame.Empty() {
		return
	}
	if frame.Cols() == size.X && frame.Rows() == size.Y {
		return
	}
	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(*frame, &resized, size, 0, 0, gocv.InterpolationLinear)
	resized.CopyTo(frame)
}
