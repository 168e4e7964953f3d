// Package gesture turns per-frame hand landmarks into drawing signals.
package gesture

import (
	"image"
	"math"

	"github.com/ayusman/handwriting/internal/detector"
)

// PinchThreshold is the thumb-to-index distance, in pixels at 1280x720,
// below which the hand is read as a selection pinch.
const PinchThreshold = 50.0

// Finger pairs a fingertip landmark with its proximal interphalangeal joint.
type Finger struct {
	Tip int
	PIP int
}

// The four non-thumb fingers.
var (
	Index  = Finger{Tip: detector.IndexTip, PIP: detector.IndexPIP}
	Middle = Finger{Tip: detector.MiddleTip, PIP: detector.MiddlePIP}
	Ring   = Finger{Tip: detector.RingTip, PIP: detector.RingPIP}
	Pinky  = Finger{Tip: detector.PinkyTip, PIP: detector.PinkyPIP}
)

// Fingertip returns the landmark at id, or false when the hand is absent
// or the id is outside the landmark set.
func Fingertip(landmarks []image.Point, id int) (image.Point, bool) {
	if id < 0 || id >= len(landmarks) {
		return image.Point{}, false
	}
	return landmarks[id], true
}

// IsFingerUp reports whether the tip sits above its PIP joint in image
// coordinates (smaller Y is higher). Missing landmarks read as down.
func IsFingerUp(landmarks []image.Point, tipID, pipID int) bool {
	tip, ok := Fingertip(landmarks, tipID)
	if !ok {
		return false
	}
	pip, ok := Fingertip(landmarks, pipID)
	if !ok {
		return false
	}
	return tip.Y < pip.Y
}

// PinchDistance returns the Euclidean distance between thumb tip and index tip.
func PinchDistance(landmarks []image.Point) (float64, bool) {
	thumb, ok := Fingertip(landmarks, detector.ThumbTip)
	if !ok {
		return 0, false
	}
	index, ok := Fingertip(landmarks, detector.IndexTip)
	if !ok {
		return 0, false
	}
	return distance(thumb, index), true
}

func distance(a, b image.Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Signals is everything the drawing loop needs to know about one frame.
type Signals struct {
	Present bool // a hand was detected

	IndexUp  bool
	MiddleUp bool
	RingUp   bool
	PinkyUp  bool

	Tip    image.Point // index fingertip
	HasTip bool

	PinchDistance float64
	Pinched       bool
}

// Interpret derives the frame's signals from a landmark set. A nil or
// empty set yields the zero Signals, in which every gesture is inert.
func Interpret(landmarks []image.Point, pinchThreshold float64) Signals {
	if len(landmarks) == 0 {
		return Signals{}
	}

	s := Signals{
		Present:  true,
		IndexUp:  IsFingerUp(landmarks, Index.Tip, Index.PIP),
		MiddleUp: IsFingerUp(landmarks, Middle.Tip, Middle.PIP),
		RingUp:   IsFingerUp(landmarks, Ring.Tip, Ring.PIP),
		PinkyUp:  IsFingerUp(landmarks, Pinky.Tip, Pinky.PIP),
	}
	s.Tip, s.HasTip = Fingertip(landmarks, detector.IndexTip)

	if d, ok := PinchDistance(landmarks); ok {
		s.PinchDistance = d
		s.Pinched = d < pinchThreshold
	}

	return s
}

// Draws reports the drawing pose: index up, middle down, and the tip to the
// right of minX.
func (s Signals) Draws(minX int) bool {
	return s.HasTip && s.IndexUp && !s.MiddleUp && s.Tip.X > minX
}

// TogglesMode reports the draw/erase toggle pose: middle up, index down.
func (s Signals) TogglesMode() bool {
	return s.Present && s.MiddleUp && !s.IndexUp
}

// Clears reports the clear pose: middle, ring and pinky all up.
func (s Signals) Clears() bool {
	return s.Present && s.MiddleUp && s.RingUp && s.PinkyUp
}

// TogglesMenu reports the open hand: all four non-thumb fingers up.
func (s Signals) TogglesMenu() bool {
	return s.Present && s.IndexUp && s.MiddleUp && s.RingUp && s.PinkyUp
}
