package levels

import (
	"fmt"
	"math"

	"github.com/milk9111/platformer/common"
)

// Level is the authored description of a level. Horizontal values are in
// screen widths and vertical values in screen heights, so a level scales with
// the view it is built for.
type Level struct {
	Name string `yaml:"name"`
	// WidthScreens is how far the world may scroll, in screen widths.
	WidthScreens float64      `yaml:"width_screens"`
	Spawn        *SpawnSpec   `yaml:"spawn"`
	ScreenBounds bool         `yaml:"screen_bounds"`
	Platforms    []RectSpec   `yaml:"platforms"`
	Enemies      []PointSpec  `yaml:"enemies"`
	Coins        []PointSpec  `yaml:"coins"`
	JumpCoins    []PointSpec  `yaml:"jump_coins"`
	Arrows       []ArrowSpec  `yaml:"arrows"`
	Sections     []SectionDef `yaml:"sections"`
	FinalTitle   string       `yaml:"final_title"`
}

// SpawnSpec places the player: X in pixels from the left edge, Bottom as the
// fraction of the view height its feet rest on.
type SpawnSpec struct {
	X      float64 `yaml:"x"`
	Bottom float64 `yaml:"bottom"`
}

type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// PointSpec anchors an object. Enemies rest on Bottom; pickups use Y as
// their top edge.
type PointSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Bottom float64 `yaml:"bottom"`
}

type ArrowSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color"`
}

// SectionDef titles the stretch of the level scrolled before Until screens.
type SectionDef struct {
	Until float64 `yaml:"until"`
	Title string  `yaml:"title"`
}

// Layout is a level resolved to pixels for one view size.
type Layout struct {
	Name       string
	ViewWidth  float64
	ViewHeight float64
	LevelWidth float64

	SpawnX      float64
	SpawnBottom float64

	Platforms []Platform
	Enemies   []common.Point
	Coins     []common.Point
	JumpCoins []common.Point
	Arrows    []Arrow
	Sections  []Section

	FinalTitle string
}

type Platform struct {
	Rect  common.Rect
	Bound bool
}

// Arrow is in world pixels.
type Arrow struct {
	X, Y   float64
	Height float64
	Color  string
}

type Section struct {
	Until float64
	Title string
}

// Build resolves the level against a view of w by h pixels. Platform
// coordinates are floored to whole pixels.
func (l *Level) Build(w, h float64) (*Layout, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: view %vx%v", ErrInvalidSize, w, h)
	}
	if l.WidthScreens < 0 {
		return nil, fmt.Errorf("%w: level %s width %v", ErrInvalidSize, l.Name, l.WidthScreens)
	}
	if l.Spawn == nil {
		return nil, fmt.Errorf("level %s: %w", l.Name, ErrNoPlayerSpawn)
	}

	out := &Layout{
		Name:        l.Name,
		ViewWidth:   w,
		ViewHeight:  h,
		LevelWidth:  l.WidthScreens * w,
		SpawnX:      l.Spawn.X,
		SpawnBottom: l.Spawn.Bottom * h,
		FinalTitle:  l.FinalTitle,
	}

	if l.ScreenBounds {
		out.Platforms = append(out.Platforms, screenBounds(w, h)...)
	}
	for i, p := range l.Platforms {
		r := common.Rect{
			X: math.Floor(p.X * w),
			Y: math.Floor(p.Y * h),
			W: math.Floor(p.W * w),
			H: math.Floor(p.H * h),
		}
		if r.W <= 0 || r.H <= 0 {
			return nil, fmt.Errorf("%w: level %s platform %d is %vx%v", ErrInvalidSize, l.Name, i, r.W, r.H)
		}
		out.Platforms = append(out.Platforms, Platform{Rect: r})
	}

	for _, e := range l.Enemies {
		out.Enemies = append(out.Enemies, common.Point{X: e.X * w, Y: e.Bottom * h})
	}
	for _, c := range l.Coins {
		out.Coins = append(out.Coins, common.Point{X: c.X * w, Y: c.Y * h})
	}
	for _, c := range l.JumpCoins {
		out.JumpCoins = append(out.JumpCoins, common.Point{X: c.X * w, Y: c.Y * h})
	}
	for _, a := range l.Arrows {
		out.Arrows = append(out.Arrows, Arrow{X: a.X * w, Y: a.Y * h, Height: a.Height * h, Color: a.Color})
	}
	for _, s := range l.Sections {
		out.Sections = append(out.Sections, Section{Until: s.Until * w, Title: s.Title})
	}
	return out, nil
}

// screenBounds walls in the view. The floor reaches below the canvas so the
// HUD strip never counts as open space.
func screenBounds(w, h float64) []Platform {
	return []Platform{
		{Rect: common.Rect{X: 0, Y: -49, W: w, H: 50}, Bound: true},
		{Rect: common.Rect{X: -5, Y: h - 1, W: w + 10, H: 205}, Bound: true},
		{Rect: common.Rect{X: w - 1, Y: 0, W: 50, H: h}, Bound: true},
		{Rect: common.Rect{X: -49, Y: 0, W: 50, H: h}, Bound: true},
	}
}

// Title returns the section title for a scroll distance.
func (l *Layout) Title(scroll float64) string {
	travelled := -scroll
	for _, s := range l.Sections {
		if travelled < s.Until {
			return s.Title
		}
	}
	return l.FinalTitle
}
