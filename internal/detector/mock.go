package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands    []HandLandmarks
	sequence [][]HandLandmarks
	err      error
	calls    int
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands ...HandLandmarks) {
	m.hands = hands
}

// SetSequence scripts per-call results. Each Detect call consumes one
// entry; once the script is exhausted Detect falls back to SetHands.
func (m *MockDetector) SetSequence(steps ...[]HandLandmarks) {
	m.sequence = steps
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Calls reports how many times Detect has been invoked.
func (m *MockDetector) Calls() int {
	return m.calls
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	if len(m.sequence) > 0 {
		step := m.sequence[0]
		m.sequence = m.sequence[1:]
		return step, nil
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// Finger layout for the synthetic poses, in normalized coordinates.
var (
	fingerColumns = [4]float64{0.58, 0.55, 0.52, 0.49} // index, middle, ring, pinky
	fingerJoints  = [4]int{IndexMCP, MiddleMCP, RingMCP, PinkyMCP}
)

// PoseLandmarks builds a right hand facing the camera with the given
// non-thumb fingers extended upward and the rest curled into the palm.
// The thumb rests to the side, well away from the index tip.
func PoseLandmarks(index, middle, ring, pinky bool) HandLandmarks {
	landmarks := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	landmarks.Points[Wrist] = Point3D{X: 0.54, Y: 0.85}

	landmarks.Points[ThumbCMC] = Point3D{X: 0.60, Y: 0.80}
	landmarks.Points[ThumbMCP] = Point3D{X: 0.64, Y: 0.76}
	landmarks.Points[ThumbIP] = Point3D{X: 0.67, Y: 0.72}
	landmarks.Points[ThumbTip] = Point3D{X: 0.69, Y: 0.68}

	up := [4]bool{index, middle, ring, pinky}
	for f, mcp := range fingerJoints {
		x := fingerColumns[f]
		landmarks.Points[mcp] = Point3D{X: x, Y: 0.65}
		if up[f] {
			landmarks.Points[mcp+1] = Point3D{X: x, Y: 0.55}
			landmarks.Points[mcp+2] = Point3D{X: x, Y: 0.47}
			landmarks.Points[mcp+3] = Point3D{X: x, Y: 0.40}
		} else {
			landmarks.Points[mcp+1] = Point3D{X: x, Y: 0.58, Z: -0.05}
			landmarks.Points[mcp+2] = Point3D{X: x - 0.01, Y: 0.63, Z: -0.04}
			landmarks.Points[mcp+3] = Point3D{X: x - 0.02, Y: 0.66, Z: -0.02}
		}
	}

	return landmarks
}

// PointingLandmarks returns the drawing pose: index extended, others curled.
func PointingLandmarks() HandLandmarks {
	return PoseLandmarks(true, false, false, false)
}

// PinchLandmarks returns the pointing pose with the thumb tip touching the
// index tip, the selection gesture.
func PinchLandmarks() HandLandmarks {
	landmarks := PointingLandmarks()
	tip := landmarks.Points[IndexTip]
	landmarks.Points[ThumbIP] = Point3D{X: tip.X + 0.03, Y: tip.Y + 0.06}
	landmarks.Points[ThumbTip] = Point3D{X: tip.X + 0.01, Y: tip.Y + 0.01}
	return landmarks
}

// MiddleFingerLandmarks returns the mode toggle pose: middle extended, index curled.
func MiddleFingerLandmarks() HandLandmarks {
	return PoseLandmarks(false, true, false, false)
}

// ThreeFingerLandmarks returns middle, ring and pinky extended with the index curled.
func ThreeFingerLandmarks() HandLandmarks {
	return PoseLandmarks(false, true, true, true)
}

// OpenPalmLandmarks returns all four fingers extended.
func OpenPalmLandmarks() HandLandmarks {
	return PoseLandmarks(true, true, true, true)
}

// FistLandmarks returns every finger curled.
func FistLandmarks() HandLandmarks {
	return PoseLandmarks(false, false, false, false)
}

// WithIndexTipAt shifts the whole hand so the index tip lands on (x, y),
// given in normalized coordinates.
func (h HandLandmarks) WithIndexTipAt(x, y float64) HandLandmarks {
	tip := h.Points[IndexTip]
	return h.Translate(x-tip.X, y-tip.Y)
}
