package detector

import "gocv.io/x/gocv"

// Detector finds hands in a BGR frame.
type Detector interface {
	// Detect returns the hands found in frame, best first. No hands is a
	// nil or empty slice with a nil error.
	Detect(frame *gocv.Mat) ([]HandLandmarks, error)
	Close() error
}

// Config tunes the landmark model.
type Config struct {
	MaxHands        int
	MinConfidence   float64 // detection threshold, 0..1
	MinTrackingConf float64 // tracking threshold, 0..1
}

// DefaultConfig returns the single-hand configuration used for drawing.
func DefaultConfig() Config {
	return Config{
		MaxHands:        1,
		MinConfidence:   0.7,
		MinTrackingConf: 0.7,
	}
}
