package e2e

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/ayusman/handwriting/internal/app"
	"github.com/ayusman/handwriting/internal/canvas"
	"github.com/ayusman/handwriting/internal/capture"
	"github.com/ayusman/handwriting/internal/detector"
	"github.com/ayusman/handwriting/internal/display"
	"github.com/ayusman/handwriting/internal/store"
	"gocv.io/x/gocv"
)

// stepClock advances by a fixed step every time it is read.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func hands(h ...detector.HandLandmarks) []detector.HandLandmarks {
	return h
}

func pinchAt(x, y float64) detector.HandLandmarks {
	return detector.PinchLandmarks().WithIndexTipAt(x, y)
}

func TestE2E_DrawingSession(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping e2e test")
	}

	s, err := store.New(filepath.Join(t.TempDir(), "data.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	defer s.Close()

	cfg := app.DefaultConfig()
	cfg.Store = s
	application := app.New(cfg)
	defer application.Close()

	// The detector sees the mirrored frame, so coordinates are already
	// in display space.
	script := [][]detector.HandLandmarks{
		hands(pinchAt(0.05, 0.18)), // select red
		hands(detector.PointingLandmarks().WithIndexTipAt(0.40, 0.50)),
		hands(detector.PointingLandmarks().WithIndexTipAt(0.60, 0.50)),
		hands(detector.PointingLandmarks().WithIndexTipAt(0.80, 0.50)),
		nil, // hand leaves
		hands(detector.MiddleFingerLandmarks()), // erase mode
		hands(detector.PointingLandmarks().WithIndexTipAt(0.50, 0.50)),
		hands(detector.PointingLandmarks().WithIndexTipAt(0.50, 0.50)),
		nil, // hand leaves so the last frame carries no skeleton
	}
	mock := detector.NewMockDetector()
	mock.SetSequence(script...)
	application.SetDetector(mock)
	application.SetClock((&stepClock{t: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC), step: 40 * time.Millisecond}).Now)

	frames := make([]*gocv.Mat, len(script))
	for i := range frames {
		m := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(90, 90, 90, 0), 720, 1280, gocv.MatTypeCV8UC3)
		frames[i] = &m
		defer m.Close()
	}
	application.SetCamera(capture.NewMockCamera(frames, false))

	disp := display.NewMockDisplay()
	application.SetDisplay(disp)

	if err := application.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	t.Run("ShowsEveryFrame", func(t *testing.T) {
		if disp.Shown() != len(script) {
			t.Errorf("frames shown = %d, want %d", disp.Shown(), len(script))
		}
	})

	t.Run("InkComposited", func(t *testing.T) {
		last, ok := disp.Last()
		if !ok {
			t.Fatal("no frame shown")
		}
		defer last.Close()

		// Red stroke survives away from the eraser.
		if v := last.GetVecbAt(360, 870); v[0] != 0 || v[1] != 0 || v[2] != 255 {
			t.Errorf("stroke pixel = %v, want red", v)
		}
		// Eraser restored the camera pixels at (640, 360).
		if v := last.GetVecbAt(360, 640); v[0] != 90 || v[1] != 90 || v[2] != 90 {
			t.Errorf("erased pixel = %v, want camera gray", v)
		}
	})

	t.Run("FinalState", func(t *testing.T) {
		if application.Canvas().Mode() != canvas.ModeErase {
			t.Errorf("mode = %v, want Erase", application.Canvas().Mode())
		}
		stats := application.Stats()
		if stats.Strokes != 2 || stats.ModeToggles != 1 || stats.Frames != len(script) {
			t.Errorf("stats = %+v", stats)
		}
	})

	t.Run("Persisted", func(t *testing.T) {
		prefs, err := s.Settings().LoadPreferences()
		if err != nil {
			t.Fatalf("LoadPreferences() error = %v", err)
		}
		if prefs.ColorIndex != 0 || !prefs.MenuVisible {
			t.Errorf("preferences = %+v, want red with menu visible", prefs)
		}

		sessions, err := s.Sessions().List(10)
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(sessions) != 1 || sessions[0].EndedAt == nil {
			t.Fatalf("sessions = %+v, want one finished session", sessions)
		}
		if sessions[0].Strokes != 2 || sessions[0].ModeToggles != 1 {
			t.Errorf("journal = %+v", sessions[0])
		}
	})
}
