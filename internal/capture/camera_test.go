package capture

import (
	"errors"
	"image"
	"testing"

	"gocv.io/x/gocv"
)

func TestNewCamera(t *testing.T) {
	tests := []struct {
		name       string
		deviceID   int
		width      int
		height     int
		wantWidth  int
		wantHeight int
	}{
		{
			name:       "default device",
			deviceID:   0,
			width:      1280,
			height:     720,
			wantWidth:  1280,
			wantHeight: 720,
		},
		{
			name:       "custom resolution",
			deviceID:   1,
			width:      640,
			height:     480,
			wantWidth:  640,
			wantHeight: 480,
		},
		{
			name:       "zero size falls back to default",
			deviceID:   2,
			wantWidth:  DefaultWidth,
			wantHeight: DefaultHeight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(tt.deviceID, tt.width, tt.height)

			impl, ok := cam.(*webcam)
			if !ok {
				t.Fatalf("NewCamera returned %T", cam)
			}
			if impl.width != tt.wantWidth || impl.height != tt.wantHeight {
				t.Errorf("resolution = %dx%d, want %dx%d", impl.width, impl.height, tt.wantWidth, tt.wantHeight)
			}

			if cam.IsOpen() {
				t.Error("camera should start closed")
			}
		})
	}
}

func TestCamera_OpenClose_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	cam := NewCamera(0, DefaultWidth, DefaultHeight)

	if err := cam.Open(); err != nil {
		t.Skipf("skipping test - camera not available: %v", err)
	}

	if !cam.IsOpen() {
		t.Error("IsOpen() should return true after Open()")
	}

	mat, err := cam.ReadFrame()
	if err != nil {
		t.Errorf("ReadFrame() failed: %v", err)
	} else {
		if mat.Cols() != DefaultWidth || mat.Rows() != DefaultHeight {
			t.Logf("Frame dimensions: %dx%d (camera may not support %dx%d)", mat.Cols(), mat.Rows(), DefaultWidth, DefaultHeight)
		}
		mat.Close()
	}

	if err := cam.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}

	if cam.IsOpen() {
		t.Error("IsOpen() should return false after Close()")
	}
}

func TestCamera_ReadFrame_NotOpened(t *testing.T) {
	cam := NewCamera(0, 0, 0)

	if _, err := cam.ReadFrame(); !errors.Is(err, ErrCameraNotOpen) {
		t.Errorf("ReadFrame() error = %v, want ErrCameraNotOpen", err)
	}
}

func TestCamera_Close_NotOpened(t *testing.T) {
	cam := NewCamera(0, 0, 0)

	if err := cam.Close(); err != nil {
		t.Errorf("Close() on not opened camera should return nil, got: %v", err)
	}
}

func TestMirror(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	frame := gocv.NewMatWithSize(10, 20, gocv.MatTypeCV8UC3)
	defer frame.Close()
	frame.SetUCharAt(0, 0, 255) // blue channel of (0,0)

	if err := Mirror(&frame); err != nil {
		t.Fatalf("Mirror() error = %v", err)
	}

	if v := frame.GetVecbAt(0, 19); v[0] != 255 {
		t.Errorf("pixel (19,0) = %v, want mirrored blue", v)
	}
	if v := frame.GetVecbAt(0, 0); v[0] != 0 {
		t.Errorf("pixel (0,0) = %v, want empty", v)
	}

	if err := Mirror(nil); !errors.Is(err, ErrEndOfStream) {
		t.Errorf("Mirror(nil) error = %v, want ErrEndOfStream", err)
	}
}

func TestFitTo(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	tests := []struct {
		name string
		rows int
		cols int
	}{
		{name: "smaller frame", rows: 480, cols: 640},
		{name: "larger frame", rows: 1080, cols: 1920},
		{name: "matching frame", rows: 720, cols: 1280},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := gocv.NewMatWithSize(tt.rows, tt.cols, gocv.MatTypeCV8UC3)
			defer frame.Close()

			FitTo(&frame, image.Pt(1280, 720))

			if frame.Cols() != 1280 || frame.Rows() != 720 {
				t.Errorf("size = %dx%d, want 1280x720", frame.Cols(), frame.Rows())
			}
			if frame.Type() != gocv.MatTypeCV8UC3 {
				t.Errorf("type changed to %v", frame.Type())
			}
		})
	}
}
