// Package ui draws the selection panel on the left edge of the frame and
// resolves pinch taps against it.
package ui

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Panel layout in frame pixels.
const (
	PanelWidth      = 300
	RowHeight       = 40
	ColorTop        = 120
	BrushTop        = 430
	InstructionsTop = 630
	SwatchSize      = 30
)

// Blend weights for the frame and the panel overlay.
const (
	frameWeight   = 0.3
	overlayWeight = 0.7
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	green = color.RGBA{G: 255, A: 255}
)

// Swatch is a named ink color.
type Swatch struct {
	Name  string
	Color color.RGBA
}

// DefaultSwatches is the palette, one row per 40px band starting at ColorTop.
var DefaultSwatches = []Swatch{
	{Name: "Red", Color: color.RGBA{R: 255, A: 255}},
	{Name: "Green", Color: color.RGBA{G: 255, A: 255}},
	{Name: "Blue", Color: color.RGBA{B: 255, A: 255}},
	{Name: "Cyan", Color: color.RGBA{G: 255, B: 255, A: 255}},
	{Name: "Magenta", Color: color.RGBA{R: 255, B: 255, A: 255}},
}

// DefaultBrushSizes are the selectable stroke widths.
var DefaultBrushSizes = []int{3, 5, 7, 10, 15}

// Initial selection: green ink, 7px brush.
const (
	DefaultColorIndex = 1
	DefaultBrushIndex = 2
)

// BrushTarget receives selections made on the panel.
type BrushTarget interface {
	SetColor(c color.RGBA)
	SetBrushSize(size int)
}

// Panel holds the selection state and renders it.
type Panel struct {
	swatches      []Swatch
	brushSizes    []int
	selectedColor int
	selectedBrush int
	visible       bool
	instructions  gocv.Mat
	rendered      bool
}

// NewPanel creates a visible panel with the default palette and sizes.
func NewPanel() *Panel {
	return &Panel{
		swatches:      DefaultSwatches,
		brushSizes:    DefaultBrushSizes,
		selectedColor: DefaultColorIndex,
		selectedBrush: DefaultBrushIndex,
		visible:       true,
	}
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool {
	return p.visible
}

// SetVisible shows or hides the panel.
func (p *Panel) SetVisible(visible bool) {
	p.visible = visible
}

// ToggleVisible flips visibility and returns the new state.
func (p *Panel) ToggleVisible() bool {
	p.visible = !p.visible
	return p.visible
}

// SelectedColor returns the selected palette index.
func (p *Panel) SelectedColor() int {
	return p.selectedColor
}

// SelectedBrush returns the selected brush size index.
func (p *Panel) SelectedBrush() int {
	return p.selectedBrush
}

// Swatch returns the selected swatch.
func (p *Panel) Swatch() Swatch {
	return p.swatches[p.selectedColor]
}

// BrushSize returns the selected brush size.
func (p *Panel) BrushSize() int {
	return p.brushSizes[p.selectedBrush]
}

// Select restores a selection and pushes it to target. Out of range indices
// leave the corresponding selection unchanged.
func (p *Panel) Select(colorIndex, brushIndex int, target BrushTarget) {
	if colorIndex >= 0 && colorIndex < len(p.swatches) {
		p.selectedColor = colorIndex
	}
	if brushIndex >= 0 && brushIndex < len(p.brushSizes) {
		p.selectedBrush = brushIndex
	}
	if target != nil {
		target.SetColor(p.Swatch().Color)
		target.SetBrushSize(p.BrushSize())
	}
}

// colorBand returns the vertical extent of the color rows.
func (p *Panel) colorBand() (int, int) {
	return ColorTop, ColorTop + len(p.swatches)*RowHeight
}

// brushBand returns the vertical extent of the brush rows.
func (p *Panel) brushBand() (int, int) {
	return BrushTop, BrushTop + len(p.brushSizes)*RowHeight
}

// CheckInteraction resolves a tap at (x, y). A tap on a color or brush row
// of the visible panel updates the selection, forwards it to target and
// returns true. Anything else returns false and changes nothing.
func (p *Panel) CheckInteraction(x, y int, target BrushTarget) bool {
	if !p.visible || x < 0 || x >= PanelWidth {
		return false
	}

	if top, bottom := p.colorBand(); y >= top && y < bottom {
		p.selectedColor = (y - top) / RowHeight
		if target != nil {
			target.SetColor(p.Swatch().Color)
		}
		return true
	}

	if top, bottom := p.brushBand(); y >= top && y < bottom {
		p.selectedBrush = (y - top) / RowHeight
		if target != nil {
			target.SetBrushSize(p.BrushSize())
		}
		return true
	}

	return false
}

// Render blends the panel over the left edge of frame. A hidden panel
// leaves the frame untouched.
func (p *Panel) Render(frame *gocv.Mat) error {
	if !p.visible || frame == nil || frame.Empty() {
		return nil
	}

	if !p.rendered {
		instructions, err := renderInstructions(PanelWidth, InstructionsHeight)
		if err != nil {
			return fmt.Errorf("render instructions: %w", err)
		}
		p.instructions = instructions
		p.rendered = true
	}

	width := min(PanelWidth, frame.Cols())
	height := frame.Rows()

	overlay := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), height, width, gocv.MatTypeCV8UC3)
	defer overlay.Close()

	p.drawOverlay(&overlay)

	region := frame.Region(image.Rect(0, 0, width, height))
	defer region.Close()

	gocv.AddWeighted(region, frameWeight, overlay, overlayWeight, 0, &region)
	return nil
}

func (p *Panel) drawOverlay(overlay *gocv.Mat) {
	gocv.PutText(overlay, "Hand Writing App", image.Pt(20, 40), gocv.FontHersheySimplex, 1, white, 2)

	gocv.PutText(overlay, "Colors:", image.Pt(20, 90), gocv.FontHersheySimplex, 0.7, white, 1)
	for i, s := range p.swatches {
		y := ColorTop + i*RowHeight
		rect := image.Rect(20, y, 20+SwatchSize, y+SwatchSize)
		gocv.Rectangle(overlay, rect, s.Color, -1)
		if i == p.selectedColor {
			gocv.Rectangle(overlay, rect, white, 2)
		}
		gocv.PutText(overlay, s.Name, image.Pt(70, y+20), gocv.FontHersheySimplex, 0.6, white, 1)
	}

	gocv.PutText(overlay, "Brush Size:", image.Pt(20, BrushTop-30), gocv.FontHersheySimplex, 0.7, white, 1)
	for i, size := range p.brushSizes {
		y := BrushTop + i*RowHeight
		gocv.Circle(overlay, image.Pt(40, y), size, white, -1)
		if i == p.selectedBrush {
			gocv.Circle(overlay, image.Pt(40, y), size+2, green, 2)
		}
		gocv.PutText(overlay, fmt.Sprintf("Size %d", size), image.Pt(70, y+5), gocv.FontHersheySimplex, 0.6, white, 1)
	}

	p.pasteInstructions(overlay)
}

// pasteInstructions copies the instructions block below the brush rows
// when the frame is tall and wide enough to hold it.
func (p *Panel) pasteInstructions(overlay *gocv.Mat) {
	if !p.rendered || p.instructions.Empty() {
		return
	}
	w, h := p.instructions.Cols(), p.instructions.Rows()
	if overlay.Cols() < w || overlay.Rows() < InstructionsTop+h {
		return
	}

	dst := overlay.Region(image.Rect(0, InstructionsTop, w, InstructionsTop+h))
	defer dst.Close()
	p.instructions.CopyTo(&dst)
}

// Close releases the cached instructions block.
func (p *Panel) Close() error {
	if !p.rendered {
		return nil
	}
	p.rendered = false
	return p.instructions.Close()
}
