package system

import (
	"image/color"
	"strconv"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/render"
	"github.com/milk9111/platformer/prefabs"
)

const (
	lineWidth   = 2
	hudMarginX  = 10
	hudBaseline = 50
)

type Palette struct {
	Background color.Color
	Player     color.Color
	Enemy      color.Color
	Platform   color.Color
	Coin       color.Color
	JumpCoin   color.Color
	Projectile color.Color
	HUD        color.Color
}

func PaletteFromSet(set *prefabs.Set) Palette {
	return Palette{
		Background: render.Color(set.World.Background),
		Player:     render.Color(set.Player.Color),
		Enemy:      render.Color(set.Enemy.Color),
		Platform:   render.Color(set.World.PlatformColor),
		Coin:       render.Color(set.Pickups.Coin.Color),
		JumpCoin:   render.Color(set.Pickups.JumpCoin.Color),
		Projectile: render.Color(set.Projectile.Color),
		HUD:        render.Color(set.World.HUDColor),
	}
}

// RenderSystem draws the world as stroked outlines and the HUD strip below
// the play field.
type RenderSystem struct {
	Palette   Palette
	HUDHeight float64
	// Title names the level section for a scroll distance.
	Title func(scroll float64) string
}

func NewRenderSystem(p Palette, title func(scroll float64) string) *RenderSystem {
	return &RenderSystem{Palette: p, HUDHeight: common.HUDHeight, Title: title}
}

func (r *RenderSystem) Draw(w *ecs.World, s render.Surface) {
	if r == nil || w == nil || s == nil {
		return
	}

	cam := activeCamera(w)
	if cam == nil {
		return
	}
	scroll := cam.Scroll

	s.FillRect(common.Rect{W: cam.ViewWidth, H: cam.ViewHeight + r.HUDHeight}, r.Palette.Background)

	ecs.ForEach(w, component.PlatformComponent.Kind(), func(_ ecs.Entity, p *component.Platform) {
		rect := p.Rect
		if !p.Bound {
			rect = rect.Translate(scroll, 0)
		}
		s.StrokeRect(rect, lineWidth, r.Palette.Platform)
	})

	ecs.ForEach(w, component.PickupComponent.Kind(), func(_ ecs.Entity, p *component.Pickup) {
		if p.Collected {
			return
		}
		c := r.Palette.Coin
		if p.Kind == component.PickupJumpCoin {
			c = r.Palette.JumpCoin
		}
		s.StrokeRect(p.Rect.Translate(scroll, 0), lineWidth, c)
	})

	ecs.ForEach(w, component.ProjectileComponent.Kind(), func(_ ecs.Entity, p *component.Projectile) {
		s.StrokeRect(p.Rect.Translate(scroll, 0), lineWidth, r.Palette.Projectile)
	})

	ecs.ForEach(w, component.EnemyComponent.Kind(), func(_ ecs.Entity, e *component.Enemy) {
		if e.Alive {
			s.StrokeRect(e.Rect.Translate(scroll, 0), lineWidth, r.Palette.Enemy)
		}
	})

	if p, ok := findPlayer(w); ok {
		s.StrokeRect(p.body.Rect, lineWidth, r.Palette.Player)
		if p.player.HatCoins > 0 && p.player.Coins >= p.player.HatCoins {
			r.drawHat(s, p.body.Rect)
		}
	}

	ecs.ForEach(w, component.ArrowComponent.Kind(), func(_ ecs.Entity, a *component.Arrow) {
		drawArrow(s, scroll+a.X, a.Y, a.Height, render.Color(a.Color))
	})

	r.drawHUD(w, s, cam)
}

func (r *RenderSystem) drawHat(s render.Surface, b common.Rect) {
	s.StrokeRect(common.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H / 3}, lineWidth, r.Palette.Coin)
	brim := b.Y + b.H/3
	s.StrokeLine(b.X-5, brim, b.Right()+5, brim, lineWidth, r.Palette.Coin)
}

// drawArrow strokes a right-pointing chevron whose top-left corner is (x, y).
func drawArrow(s render.Surface, x, y, h float64, c color.Color) {
	pts := []common.Point{
		{X: 0, Y: 0},
		{X: h / 4, Y: h / 2},
		{X: 0, Y: h},
		{X: h / 4, Y: h},
		{X: h / 2, Y: h / 2},
		{X: h / 4, Y: 0},
	}
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		s.StrokeLine(x+a.X, y+a.Y, x+b.X, y+b.Y, lineWidth, c)
	}
}

func (r *RenderSystem) drawHUD(w *ecs.World, s render.Surface, cam *component.Camera) {
	baseline := cam.ViewHeight + hudBaseline
	if r.Title != nil {
		s.Text(r.Title(cam.Scroll), hudMarginX, baseline, render.AlignLeft, r.Palette.HUD)
	}
	score := 0
	if p, ok := findPlayer(w); ok {
		score = p.player.Score
	}
	s.Text(strconv.Itoa(score), cam.ViewWidth-hudMarginX, baseline, render.AlignRight, r.Palette.HUD)
}
