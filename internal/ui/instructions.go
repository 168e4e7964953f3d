package ui

import (
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"gocv.io/x/gocv"
	"golang.org/x/image/font/gofont/goregular"
)

// InstructionsHeight is the height of the controls block at the bottom of the panel.
const InstructionsHeight = 90

var instructionLines = []string{
	"Index: Draw/Erase",
	"Thumb+Index: Select",
	"Keys: q quit  c clear  m mode  u menu",
}

// renderInstructions rasterizes the static controls block with the Go
// Regular font and returns it as a BGR Mat. The caller owns the Mat.
func renderInstructions(width, height int) (gocv.Mat, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return gocv.NewMat(), err
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetRGB(1, 1, 1)

	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 16}))
	dc.DrawString("Controls:", 20, 20)

	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 12}))
	y := 40.0
	for _, line := range instructionLines {
		dc.DrawString(line, 20, y)
		y += 18
	}

	return gocv.ImageToMatRGB(dc.Image())
}
