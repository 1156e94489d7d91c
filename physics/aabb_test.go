package physics

import (
	"testing"

	"github.com/milk9111/platformer/common"
	"pgregory.net/rapid"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name     string
		a        common.Rect
		b        common.Rect
		wantSide Side
		wantA    common.Rect
	}{
		{
			name:     "landing_on_platform",
			a:        common.Rect{X: 0, Y: 0, W: 30, H: 30},
			b:        common.Rect{X: 0, Y: 25, W: 100, H: 10},
			wantSide: SideBottom,
			wantA:    common.Rect{X: 0, Y: -5, W: 30, H: 30},
		},
		{
			name:     "head_under_ceiling",
			a:        common.Rect{X: 10, Y: 8, W: 30, H: 30},
			b:        common.Rect{X: 0, Y: 0, W: 100, H: 10},
			wantSide: SideTop,
			wantA:    common.Rect{X: 10, Y: 10, W: 30, H: 30},
		},
		{
			name:     "walking_into_wall_from_left",
			a:        common.Rect{X: 72, Y: 40, W: 30, H: 30},
			b:        common.Rect{X: 100, Y: 0, W: 50, H: 200},
			wantSide: SideRight,
			wantA:    common.Rect{X: 70, Y: 40, W: 30, H: 30},
		},
		{
			name:     "walking_into_wall_from_right",
			a:        common.Rect{X: 147, Y: 40, W: 30, H: 30},
			b:        common.Rect{X: 100, Y: 0, W: 50, H: 200},
			wantSide: SideLeft,
			wantA:    common.Rect{X: 150, Y: 40, W: 30, H: 30},
		},
		{
			name:     "edge_contact_below",
			a:        common.Rect{X: 0, Y: -5, W: 30, H: 30},
			b:        common.Rect{X: 0, Y: 25, W: 100, H: 10},
			wantSide: SideNone,
			wantA:    common.Rect{X: 0, Y: -5, W: 30, H: 30},
		},
		{
			name:     "edge_contact_beside",
			a:        common.Rect{X: 70, Y: 40, W: 30, H: 30},
			b:        common.Rect{X: 100, Y: 0, W: 50, H: 200},
			wantSide: SideNone,
			wantA:    common.Rect{X: 70, Y: 40, W: 30, H: 30},
		},
		{
			name:     "corner_touch",
			a:        common.Rect{X: 70, Y: -30, W: 30, H: 30},
			b:        common.Rect{X: 100, Y: 0, W: 50, H: 50},
			wantSide: SideNone,
			wantA:    common.Rect{X: 70, Y: -30, W: 30, H: 30},
		},
		{
			name:     "centered_overlap_pushes_up",
			a:        common.Rect{X: 0, Y: 0, W: 10, H: 10},
			b:        common.Rect{X: 0, Y: 0, W: 10, H: 10},
			wantSide: SideBottom,
			wantA:    common.Rect{X: 0, Y: -10, W: 10, H: 10},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := c.a
			b := c.b
			got := Resolve(&a, b)
			if got != c.wantSide {
				t.Fatalf("side = %v, want %v", got, c.wantSide)
			}
			if a != c.wantA {
				t.Fatalf("a = %+v, want %+v", a, c.wantA)
			}
			if b != c.b {
				t.Fatalf("b was modified: %+v", b)
			}
		})
	}
}

func TestResolveNil(t *testing.T) {
	if got := Resolve(nil, common.Rect{W: 1, H: 1}); got != SideNone {
		t.Fatalf("expected none for nil rect, got %v", got)
	}
}

func TestResolveScrolled(t *testing.T) {
	platform := common.Rect{X: 300, Y: 25, W: 100, H: 10}

	t.Run("scrolled_platform_collides", func(t *testing.T) {
		a := common.Rect{X: 100, Y: 0, W: 30, H: 30}
		if got := ResolveScrolled(&a, platform, false, -250); got != SideBottom {
			t.Fatalf("side = %v, want bottom", got)
		}
		if a.Bottom() != 25 {
			t.Fatalf("bottom = %v, want 25", a.Bottom())
		}
	})

	t.Run("bound_ignores_scroll", func(t *testing.T) {
		a := common.Rect{X: 100, Y: 0, W: 30, H: 30}
		if got := ResolveScrolled(&a, platform, true, -250); got != SideNone {
			t.Fatalf("side = %v, want none", got)
		}
	})
}

func TestSideString(t *testing.T) {
	for side, want := range map[Side]string{
		SideNone:   "none",
		SideTop:    "top",
		SideBottom: "bottom",
		SideLeft:   "left",
		SideRight:  "right",
	} {
		if side.String() != want {
			t.Errorf("%d.String() = %q, want %q", side, side.String(), want)
		}
	}
}

func drawRect(t *rapid.T, label string) common.Rect {
	return common.Rect{
		X: float64(rapid.IntRange(-500, 500).Draw(t, label+"_x")),
		Y: float64(rapid.IntRange(-500, 500).Draw(t, label+"_y")),
		W: float64(rapid.IntRange(1, 200).Draw(t, label+"_w")),
		H: float64(rapid.IntRange(1, 200).Draw(t, label+"_h")),
	}
}

func TestResolveSeparatedProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := drawRect(t, "b")
		a := drawRect(t, "a")
		gap := float64(rapid.IntRange(0, 50).Draw(t, "gap"))
		switch rapid.IntRange(0, 3).Draw(t, "placement") {
		case 0:
			a.X = b.Right() + gap
		case 1:
			a.X = b.X - a.W - gap
		case 2:
			a.Y = b.Bottom() + gap
		default:
			a.Y = b.Y - a.H - gap
		}

		before := a
		if Overlaps(a, b) {
			t.Fatalf("separated rects reported as overlapping: a=%+v b=%+v", a, b)
		}
		if side := Resolve(&a, b); side != SideNone {
			t.Fatalf("side = %v for separated rects a=%+v b=%+v", side, before, b)
		}
		if a != before {
			t.Fatalf("a moved from %+v to %+v", before, a)
		}
	})
}

func TestResolveOverlappingProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := drawRect(t, "b")
		a := drawRect(t, "a")
		a.X = float64(rapid.IntRange(int(b.X-a.W)+1, int(b.Right())-1).Draw(t, "overlap_x"))
		a.Y = float64(rapid.IntRange(int(b.Y-a.H)+1, int(b.Bottom())-1).Draw(t, "overlap_y"))
		if !Overlaps(a, b) {
			t.Fatalf("expected overlap: a=%+v b=%+v", a, b)
		}

		before := a
		side := Resolve(&a, b)
		switch side {
		case SideTop:
			if a.Y != b.Bottom() || a.X != before.X {
				t.Fatalf("top: a=%+v b=%+v", a, b)
			}
		case SideBottom:
			if a.Bottom() != b.Y || a.X != before.X {
				t.Fatalf("bottom: a=%+v b=%+v", a, b)
			}
		case SideLeft:
			if a.X != b.Right() || a.Y != before.Y {
				t.Fatalf("left: a=%+v b=%+v", a, b)
			}
		case SideRight:
			if a.Right() != b.X || a.Y != before.Y {
				t.Fatalf("right: a=%+v b=%+v", a, b)
			}
		default:
			t.Fatalf("no side for overlapping rects a=%+v b=%+v", before, b)
		}
		if Overlaps(a, b) {
			t.Fatalf("still overlapping after %v: a=%+v b=%+v", side, a, b)
		}
	})
}
