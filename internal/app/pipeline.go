package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"

	"github.com/ayusman/handwriting/internal/capture"
	"github.com/ayusman/handwriting/internal/detector"
	"github.com/ayusman/handwriting/internal/display"
	"github.com/ayusman/handwriting/internal/gesture"
	"github.com/ayusman/handwriting/internal/ui"
	"gocv.io/x/gocv"
)

// ModeLabelOrigin is where the mode indicator is drawn.
var ModeLabelOrigin = image.Pt(320, 40)

var labelColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Run drives the drawing loop until the camera stops delivering frames,
// the user presses q, or ctx is cancelled.
//
// Loop per iteration:
// 1. Check for cancellation
// 2. Read a frame; a failed read ends the run
// 3. Process the frame (detect, interpret, draw, compose)
// 4. Show it and handle the pressed key
//
// The camera, detector and display are released before Run returns.
func (a *App) Run(ctx context.Context) error {
	if err := a.camera.Open(); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}
	if a.display == nil {
		a.display = display.NewWindow(display.WindowTitle)
	}

	a.loadPreferences()
	a.startSession()
	defer a.shutdown()

	log.Println("Drawing loop started")

	for {
		select {
		case <-ctx.Done():
			log.Println("Interrupted, stopping")
			return nil
		default:
		}

		frame, err := a.camera.ReadFrame()
		if err != nil {
			if errors.Is(err, capture.ErrEndOfStream) {
				log.Println("Camera stream ended")
			} else {
				log.Printf("Error reading frame: %v", err)
			}
			return nil
		}

		err = a.ProcessFrame(frame)
		if err == nil {
			err = a.display.Show(*frame)
		}
		frame.Close()
		if err != nil {
			return err
		}

		if a.HandleKey(a.display.PollKey()) {
			log.Println("Quit requested")
			return nil
		}
	}
}

// shutdown persists the run and releases the devices.
func (a *App) shutdown() {
	a.savePreferences()
	a.finishSession()

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}
	if a.display != nil {
		if err := a.display.Close(); err != nil {
			log.Printf("Error closing display: %v", err)
		}
	}

	log.Println("Drawing loop stopped")
}

// ProcessFrame runs one iteration of the pipeline on frame in place:
// mirror, fit to the canvas size, detect, update state, then draw the
// tracked hands, the panel, the ink and the mode label.
func (a *App) ProcessFrame(frame *gocv.Mat) error {
	if err := capture.Mirror(frame); err != nil {
		return err
	}
	capture.FitTo(frame, a.canvas.Size())

	hands, err := a.detector.Detect(frame)
	if err != nil {
		log.Printf("Error detecting hands: %v", err)
		hands = nil
	}

	a.Update(hands)

	size := a.canvas.Size()
	for i := range hands {
		detector.DrawHand(frame, hands[i].Pixels(size.X, size.Y))
	}

	if err := a.panel.Render(frame); err != nil {
		return fmt.Errorf("render panel: %w", err)
	}
	if err := a.canvas.Composite(frame); err != nil {
		return fmt.Errorf("composite canvas: %w", err)
	}
	gocv.PutText(frame, "Mode: "+a.canvas.Mode().String(), ModeLabelOrigin,
		gocv.FontHersheySimplex, 1, labelColor, 2)

	a.stats.Frames++
	return nil
}

// Update applies the gestures of the first detected hand.
//
// A pinch is checked first and only selects from the panel. Otherwise the
// raised index finger draws outside the panel. Mode toggle, clear and menu
// toggle are evaluated independently, each behind its own cooldown.
func (a *App) Update(hands []detector.HandLandmarks) {
	var landmarks []image.Point
	if len(hands) > 0 {
		size := a.canvas.Size()
		landmarks = hands[0].Pixels(size.X, size.Y)
	}

	s := gesture.Interpret(landmarks, a.config.PinchThreshold)
	if !s.Present {
		a.stopDrawing()
		return
	}

	switch {
	case s.Pinched:
		a.selectAt(s.Tip)
		a.stopDrawing()
	case s.Draws(ui.PanelWidth):
		if !a.drawing {
			a.stats.Strokes++
		}
		a.drawing = true
		a.canvas.AddPoint(s.Tip.X, s.Tip.Y)
	default:
		a.stopDrawing()
	}

	now := a.now()
	if s.TogglesMode() && a.modeCooldown.Fire(now) {
		a.toggleMode()
	}
	if s.Clears() && a.clearCooldown.Fire(now) {
		a.clear()
	}
	if s.TogglesMenu() && a.menuCooldown.Fire(now) {
		a.toggleMenu()
	}
}

// HandleKey applies a keyboard shortcut and reports whether to quit.
func (a *App) HandleKey(key int) bool {
	switch key {
	case 'q':
		return true
	case 'c':
		a.clear()
	case 'm':
		a.toggleMode()
	case 'u':
		a.toggleMenu()
	}
	return false
}

func (a *App) selectAt(tip image.Point) {
	prevColor, prevBrush := a.panel.SelectedColor(), a.panel.SelectedBrush()
	if !a.panel.CheckInteraction(tip.X, tip.Y, a.canvas) {
		return
	}
	if a.panel.SelectedColor() != prevColor {
		log.Printf("Selected color %s", a.panel.Swatch().Name)
	}
	if a.panel.SelectedBrush() != prevBrush {
		log.Printf("Selected brush size %d", a.panel.BrushSize())
	}
}

func (a *App) stopDrawing() {
	a.drawing = false
	a.canvas.ResetPreviousPoint()
}

func (a *App) toggleMode() {
	a.canvas.ToggleMode()
	a.stopDrawing()
	a.stats.ModeToggles++
	log.Printf("Mode: %s", a.canvas.Mode())
}

func (a *App) clear() {
	a.canvas.Clear()
	a.stats.Clears++
	log.Println("Canvas cleared")
}

func (a *App) toggleMenu() {
	visible := a.panel.ToggleVisible()
	log.Printf("Menu visible: %v", visible)
}
