// Package render defines the drawing surface the game renders into. The game
// only ever strokes and fills rectangles, draws lines and writes text, so any
// backend that can do those four things can host it.
package render

import (
	"image/color"

	"github.com/milk9111/platformer/common"
)

//go:generate go tool mockgen -destination=./mocks/surface_mock.go -package=mocks . Surface

type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Surface receives draw commands in screen pixels.
type Surface interface {
	FillRect(r common.Rect, c color.Color)
	StrokeRect(r common.Rect, width float32, c color.Color)
	StrokeLine(x0, y0, x1, y1 float64, width float32, c color.Color)
	// Text draws s with its baseline at y. x is the left edge for AlignLeft
	// and the right edge for AlignRight.
	Text(s string, x, y float64, align Align, c color.Color)
}
