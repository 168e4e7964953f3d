// Package app wires the camera, hand detector, gesture interpreter, canvas
// and selection panel into the air drawing loop.
package app

import (
	"errors"
	"log"
	"time"

	"github.com/ayusman/handwriting/internal/canvas"
	"github.com/ayusman/handwriting/internal/capture"
	"github.com/ayusman/handwriting/internal/detector"
	"github.com/ayusman/handwriting/internal/display"
	"github.com/ayusman/handwriting/internal/gesture"
	"github.com/ayusman/handwriting/internal/store"
	"github.com/ayusman/handwriting/internal/ui"
)

// Config holds configuration options for the application.
type Config struct {
	// Store enables saved preferences and the session journal when non-nil.
	Store          *store.Store
	CameraID       int
	Width          int
	Height         int
	PinchThreshold float64
	Detector       detector.Config
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		CameraID:       0,
		Width:          capture.DefaultWidth,
		Height:         capture.DefaultHeight,
		PinchThreshold: gesture.PinchThreshold,
		Detector:       detector.DefaultConfig(),
	}
}

// Stats counts what happened during a run.
type Stats struct {
	Frames      int
	Strokes     int
	Clears      int
	ModeToggles int
}

// App is the air drawing application. It is driven from a single goroutine.
type App struct {
	config   Config
	camera   capture.Camera
	detector detector.Detector
	display  display.Display
	canvas   *canvas.Canvas
	panel    *ui.Panel

	modeCooldown  *gesture.Cooldown
	clearCooldown *gesture.Cooldown
	menuCooldown  *gesture.Cooldown

	drawing bool
	stats   Stats
	now     func() time.Time
	session *store.Session
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	defaults := DefaultConfig()
	if config.Width <= 0 || config.Height <= 0 {
		config.Width, config.Height = defaults.Width, defaults.Height
	}
	if config.PinchThreshold <= 0 {
		config.PinchThreshold = defaults.PinchThreshold
	}
	if config.Detector.MaxHands <= 0 {
		config.Detector = defaults.Detector
	}

	a := &App{
		config:        config,
		camera:        capture.NewCamera(config.CameraID, config.Width, config.Height),
		canvas:        canvas.New(config.Width, config.Height),
		panel:         ui.NewPanel(),
		modeCooldown:  gesture.NewCooldown(gesture.ModeToggleCooldown),
		clearCooldown: gesture.NewCooldown(gesture.ClearCooldown),
		menuCooldown:  gesture.NewCooldown(gesture.MenuToggleCooldown),
		now:           time.Now,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(config.Detector); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.detector = d
}

// SetCamera replaces the frame source.
func (a *App) SetCamera(c capture.Camera) {
	a.camera = c
}

// SetDisplay replaces the preview window.
func (a *App) SetDisplay(d display.Display) {
	a.display = d
}

// SetClock replaces the clock used by the gesture cooldowns.
func (a *App) SetClock(now func() time.Time) {
	a.now = now
}

// Canvas returns the ink layer.
func (a *App) Canvas() *canvas.Canvas {
	return a.canvas
}

// Panel returns the selection panel.
func (a *App) Panel() *ui.Panel {
	return a.panel
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	return a.detector
}

// Drawing reports whether the last frame extended a stroke.
func (a *App) Drawing() bool {
	return a.drawing
}

// Stats returns the counters for the current run.
func (a *App) Stats() Stats {
	return a.stats
}

// Session returns the journal entry for the current run, if any.
func (a *App) Session() *store.Session {
	return a.session
}

// loadPreferences restores the saved panel selection.
func (a *App) loadPreferences() {
	if a.config.Store == nil {
		return
	}

	prefs, err := a.config.Store.Settings().LoadPreferences()
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("Failed to load preferences: %v", err)
		}
		return
	}

	a.panel.Select(prefs.ColorIndex, prefs.BrushIndex, a.canvas)
	a.panel.SetVisible(prefs.MenuVisible)
	log.Printf("Restored preferences: color %s, brush %d, menu %v",
		a.panel.Swatch().Name, a.panel.BrushSize(), a.panel.Visible())
}

// savePreferences stores the current panel selection.
func (a *App) savePreferences() {
	if a.config.Store == nil {
		return
	}

	prefs := store.Preferences{
		ColorIndex:  a.panel.SelectedColor(),
		BrushIndex:  a.panel.SelectedBrush(),
		MenuVisible: a.panel.Visible(),
	}
	if err := a.config.Store.Settings().SavePreferences(prefs); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}

// startSession opens a journal entry for this run.
func (a *App) startSession() {
	if a.config.Store == nil {
		return
	}

	sess, err := a.config.Store.Sessions().Start(a.now())
	if err != nil {
		log.Printf("Failed to start session: %v", err)
		return
	}
	a.session = sess
	log.Printf("Session %s started", sess.ID)
}

// finishSession records the run statistics.
func (a *App) finishSession() {
	if a.config.Store == nil || a.session == nil {
		return
	}

	stats := store.SessionStats{
		Frames:      a.stats.Frames,
		Strokes:     a.stats.Strokes,
		Clears:      a.stats.Clears,
		ModeToggles: a.stats.ModeToggles,
	}
	if err := a.config.Store.Sessions().Finish(a.session.ID, a.now(), stats); err != nil {
		log.Printf("Failed to finish session %s: %v", a.session.ID, err)
		return
	}
	log.Printf("Session %s finished: %d frames, %d strokes, %d clears, %d mode toggles",
		a.session.ID, stats.Frames, stats.Strokes, stats.Clears, stats.ModeToggles)
}

// Close releases the canvas and panel resources.
func (a *App) Close() error {
	a.panel.Close()
	return a.canvas.Close()
}
