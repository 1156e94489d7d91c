package system

import (
	"image/color"
	"testing"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/render"
	"github.com/milk9111/platformer/ecs/render/mocks"
	"go.uber.org/mock/gomock"
)

var testPalette = Palette{
	Background: color.RGBA{A: 255},
	Player:     color.RGBA{R: 1, A: 255},
	Enemy:      color.RGBA{R: 2, A: 255},
	Platform:   color.RGBA{R: 3, A: 255},
	Coin:       color.RGBA{R: 4, A: 255},
	JumpCoin:   color.RGBA{R: 5, A: 255},
	Projectile: color.RGBA{R: 6, A: 255},
	HUD:        color.RGBA{R: 7, A: 255},
}

func TestRenderDraw(t *testing.T) {
	f := newFixture(t)
	f.cam.Scroll = -50

	f.addPlatform(t, common.Rect{X: 100, Y: 400, W: 100, H: 20}, false)
	f.addPlatform(t, common.Rect{X: 0, Y: 479, W: 853, H: 205}, true)
	dead := f.addEnemy(t, 500, 480, 0)
	dead.Alive = false
	f.addEnemy(t, 600, 480, 0)

	coin := ecs.CreateEntity(f.w)
	_ = ecs.Add(f.w, coin, component.PickupComponent.Kind(), &component.Pickup{
		Kind: component.PickupJumpCoin, Rect: common.Rect{X: 300, Y: 200, W: 10, H: 10},
	})
	taken := ecs.CreateEntity(f.w)
	_ = ecs.Add(f.w, taken, component.PickupComponent.Kind(), &component.Pickup{
		Kind: component.PickupCoin, Rect: common.Rect{X: 320, Y: 200, W: 10, H: 10}, Collected: true,
	})
	arrow := ecs.CreateEntity(f.w)
	_ = ecs.Add(f.w, arrow, component.ArrowComponent.Kind(), &component.Arrow{X: 200, Y: 24, Height: 72, Color: "red"})
	f.player.player.Score = 300

	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)
	s.EXPECT().FillRect(common.Rect{W: 853, H: 480 + common.HUDHeight}, testPalette.Background).Times(1)
	s.EXPECT().StrokeRect(common.Rect{X: 50, Y: 400, W: 100, H: 20}, float32(lineWidth), testPalette.Platform).Times(1)
	s.EXPECT().StrokeRect(common.Rect{X: 0, Y: 479, W: 853, H: 205}, float32(lineWidth), testPalette.Platform).Times(1)
	s.EXPECT().StrokeRect(common.Rect{X: 250, Y: 200, W: 10, H: 10}, float32(lineWidth), testPalette.JumpCoin).Times(1)
	s.EXPECT().StrokeRect(common.Rect{X: 550, Y: 450, W: 30, H: 30}, float32(lineWidth), testPalette.Enemy).Times(1)
	s.EXPECT().StrokeRect(common.Rect{X: 150, Y: 450, W: 30, H: 30}, float32(lineWidth), testPalette.Player).Times(1)
	s.EXPECT().StrokeLine(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), float32(lineWidth), render.Color("red")).Times(6)
	s.EXPECT().Text("2. Watch Out!", float64(hudMarginX), 480.0+hudBaseline, render.AlignLeft, testPalette.HUD).Times(1)
	s.EXPECT().Text("300", 853.0-hudMarginX, 480.0+hudBaseline, render.AlignRight, testPalette.HUD).Times(1)

	sys := NewRenderSystem(testPalette, func(scroll float64) string {
		if scroll != -50 {
			t.Errorf("title asked for scroll %v", scroll)
		}
		return "2. Watch Out!"
	})
	sys.Draw(f.w, s)
}

func TestRenderHat(t *testing.T) {
	f := newFixture(t)
	f.player.player.Coins = f.player.player.HatCoins

	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)
	s.EXPECT().FillRect(gomock.Any(), gomock.Any()).AnyTimes()
	s.EXPECT().Text(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.EXPECT().StrokeRect(common.Rect{X: 150, Y: 450, W: 30, H: 30}, gomock.Any(), testPalette.Player).Times(1)
	s.EXPECT().StrokeRect(common.Rect{X: 150, Y: 450, W: 30, H: 10}, gomock.Any(), testPalette.Coin).Times(1)
	s.EXPECT().StrokeLine(145.0, 460.0, 185.0, 460.0, gomock.Any(), testPalette.Coin).Times(1)

	NewRenderSystem(testPalette, nil).Draw(f.w, s)
}

func TestRenderWithoutCamera(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)
	// No camera means nothing to frame: no calls at all.
	NewRenderSystem(testPalette, nil).Draw(ecs.NewWorld(), s)
	NewRenderSystem(testPalette, nil).Draw(nil, s)
}

func TestPaletteFromSet(t *testing.T) {
	f := newFixture(t)
	p := PaletteFromSet(f.set)
	if p.Player != render.Color(f.set.Player.Color) || p.HUD != render.Color(f.set.World.HUDColor) {
		t.Fatalf("palette = %+v", p)
	}
}
