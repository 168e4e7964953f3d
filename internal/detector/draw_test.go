package detector

import (
	"image"
	"testing"

	"gocv.io/x/gocv"
)

func TestHandConnections(t *testing.T) {
	if len(HandConnections) != 21 {
		t.Errorf("got %d connections, want 21", len(HandConnections))
	}

	touched := make(map[int]bool)
	for _, bone := range HandConnections {
		for _, id := range bone {
			if id < 0 || id >= NumLandmarks {
				t.Fatalf("connection %v references landmark %d", bone, id)
			}
			touched[id] = true
		}
	}
	if len(touched) != NumLandmarks {
		t.Errorf("connections reach %d landmarks, want %d", len(touched), NumLandmarks)
	}
}

func TestDrawHand(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	hand := PointingLandmarks()
	points := hand.Pixels(640, 480)

	t.Run("joints and bones", func(t *testing.T) {
		frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
		defer frame.Close()

		DrawHand(&frame, points)

		// Joints are red in BGR.
		for _, id := range []int{Wrist, ThumbTip, IndexTip, PinkyMCP} {
			p := points[id]
			v := frame.GetVecbAt(p.Y, p.X)
			if v[0] != 0 || v[1] != 0 || v[2] != 255 {
				t.Errorf("landmark %d at %v = %v, want red", id, p, v)
			}
		}

		// Index finger bone between PIP and DIP, clear of both joints.
		pip, dip := points[IndexPIP], points[IndexDIP]
		mid := image.Pt((pip.X+dip.X)/2, (pip.Y+dip.Y)/2)
		if v := frame.GetVecbAt(mid.Y, mid.X); v[0] != 224 || v[1] != 224 || v[2] != 224 {
			t.Errorf("bone pixel at %v = %v, want (224,224,224)", mid, v)
		}
	})

	t.Run("incomplete landmarks draw nothing", func(t *testing.T) {
		frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
		defer frame.Close()

		DrawHand(&frame, points[:5])
		DrawHand(&frame, nil)

		gray := gocv.NewMat()
		defer gray.Close()
		gocv.CvtColor(frame, &gray, gocv.ColorBGRToGray)
		if n := gocv.CountNonZero(gray); n != 0 {
			t.Errorf("%d pixels drawn, want 0", n)
		}
	})

	t.Run("nil frame", func(t *testing.T) {
		DrawHand(nil, points)
	})
}
