package detector

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

var (
	boneColor  = color.RGBA{R: 224, G: 224, B: 224, A: 255}
	jointColor = color.RGBA{R: 255, A: 255}
)

const (
	boneThickness = 2
	jointRadius   = 4
)

// DrawHand draws the tracked hand skeleton onto frame. points are pixel
// positions indexed by landmark id, as returned by Pixels. Anything short
// of a full landmark set draws nothing.
func DrawHand(frame *gocv.Mat, points []image.Point) {
	if frame == nil || frame.Empty() || len(points) < NumLandmarks {
		return
	}

	for _, bone := range HandConnections {
		gocv.Line(frame, points[bone[0]], points[bone[1]], boneColor, boneThickness)
	}
	for _, p := range points[:NumLandmarks] {
		gocv.Circle(frame, p, jointRadius, jointColor, -1)
	}
}
