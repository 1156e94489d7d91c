package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs/render"
	"golang.org/x/image/font/basicfont"
)

// hudTextScale blows the 7x13 bitmap font up to a readable HUD size.
const hudTextScale = 3

// ebitenSurface draws render commands onto the current ebiten screen.
type ebitenSurface struct {
	screen *ebiten.Image
	face   text.Face
}

func newEbitenSurface() *ebitenSurface {
	return &ebitenSurface{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (s *ebitenSurface) FillRect(r common.Rect, c color.Color) {
	vector.FillRect(s.screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func (s *ebitenSurface) StrokeRect(r common.Rect, width float32, c color.Color) {
	vector.StrokeRect(s.screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, c, false)
}

func (s *ebitenSurface) StrokeLine(x0, y0, x1, y1 float64, width float32, c color.Color) {
	vector.StrokeLine(s.screen, float32(x0), float32(y0), float32(x1), float32(y1), width, c, true)
}

func (s *ebitenSurface) Text(str string, x, y float64, align render.Align, c color.Color) {
	op := &text.DrawOptions{}
	if align == render.AlignRight {
		op.LayoutOptions.PrimaryAlign = text.AlignEnd
	}
	// text/v2 places the top of the line at the origin; shift to the baseline.
	op.GeoM.Translate(0, -s.face.Metrics().HAscent)
	op.GeoM.Scale(hudTextScale, hudTextScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.screen, str, s.face, op)
}
