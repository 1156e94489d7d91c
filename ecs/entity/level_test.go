package entity

import (
	"testing"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

func loadTutorial(t *testing.T) (*levels.Layout, *prefabs.Set) {
	t.Helper()
	set, err := prefabs.LoadSet()
	if err != nil {
		t.Fatalf("LoadSet: %v", err)
	}
	lvl, err := levels.Load("tutorial")
	if err != nil {
		t.Fatalf("levels.Load: %v", err)
	}
	layout, err := lvl.Build(common.BaseWidth, common.BaseHeight)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return layout, set
}

func count[T any](w *ecs.World, kind component.ComponentKind[T]) int {
	n := 0
	ecs.ForEach(w, kind, func(ecs.Entity, *T) { n++ })
	return n
}

func TestLoadLevelToWorld(t *testing.T) {
	layout, set := loadTutorial(t)
	w := ecs.NewWorld()

	player, err := LoadLevelToWorld(w, layout, set)
	if err != nil {
		t.Fatalf("LoadLevelToWorld: %v", err)
	}

	if got, ok := ecs.First(w, component.PlayerTagComponent.Kind()); !ok || got != player {
		t.Fatalf("player tag on %v, want %v", got, player)
	}

	cases := []struct {
		name string
		got  int
		want int
	}{
		{"platforms", count(w, component.PlatformComponent.Kind()), len(layout.Platforms)},
		{"enemies", count(w, component.EnemyComponent.Kind()), len(layout.Enemies)},
		{"pickups", count(w, component.PickupComponent.Kind()), len(layout.Coins) + len(layout.JumpCoins)},
		{"arrows", count(w, component.ArrowComponent.Kind()), len(layout.Arrows)},
		{"cameras", count(w, component.CameraComponent.Kind()), 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.got != c.want {
				t.Fatalf("got %d, want %d", c.got, c.want)
			}
		})
	}

	body, ok := ecs.Get(w, player, component.BodyComponent.Kind())
	if !ok {
		t.Fatal("player has no body")
	}
	want := common.Rect{X: 150, Y: 450, W: 30, H: 30}
	if body.Rect != want || body.Speed != 5 {
		t.Fatalf("player body = %+v speed %v", body.Rect, body.Speed)
	}

	gravity, _ := ecs.Get(w, player, component.GravityScaleComponent.Kind())
	if gravity.Scale != 1 || gravity.FlipFrames != 40 {
		t.Fatalf("gravity = %+v", gravity)
	}

	enemy, _ := ecs.First(w, component.EnemyComponent.Kind())
	e, _ := ecs.Get(w, enemy, component.EnemyComponent.Kind())
	if e.Rect.Y != 450 || e.Speed != 3 || !e.Alive {
		t.Fatalf("enemy = %+v", e)
	}
}

func TestNewPickupUnknownKind(t *testing.T) {
	_, set := loadTutorial(t)
	if _, err := NewPickup(ecs.NewWorld(), set.Pickups, "gem", 0, 0); err == nil {
		t.Fatalf("expected error for unknown pickup kind")
	}
}

func TestLoadLevelToWorldNilInput(t *testing.T) {
	if _, err := LoadLevelToWorld(ecs.NewWorld(), nil, nil); err == nil {
		t.Fatalf("expected error for nil input")
	}
}
