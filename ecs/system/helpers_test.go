package system

import (
	"testing"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/prefabs"
)

type fixture struct {
	w      *ecs.World
	set    *prefabs.Set
	player playerRefs
	cam    *component.Camera
}

// newFixture builds a world with a camera and a player standing at (150, 480)
// on an 853x480 view.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	set, err := prefabs.LoadSet()
	if err != nil {
		t.Fatalf("load prefabs: %v", err)
	}
	w := ecs.NewWorld()
	if _, err := entity.NewCamera(w, set.World.ScrollMargin, common.BaseWidth, common.BaseHeight, 12*common.BaseWidth); err != nil {
		t.Fatalf("camera: %v", err)
	}
	if _, err := entity.NewPlayer(w, set.Player, set.Projectile, 150, common.BaseHeight); err != nil {
		t.Fatalf("player: %v", err)
	}
	p, ok := findPlayer(w)
	if !ok {
		t.Fatalf("player not found")
	}
	return &fixture{w: w, set: set, player: p, cam: activeCamera(w)}
}

func (f *fixture) addPlatform(t *testing.T, r common.Rect, bound bool) {
	t.Helper()
	e := ecs.CreateEntity(f.w)
	if err := ecs.Add(f.w, e, component.PlatformComponent.Kind(), &component.Platform{Rect: r, Bound: bound}); err != nil {
		t.Fatalf("platform: %v", err)
	}
}

func (f *fixture) addEnemy(t *testing.T, x, bottom, speed float64) *component.Enemy {
	t.Helper()
	spec := f.set.Enemy
	spec.Speed = speed
	e, err := entity.NewEnemy(f.w, spec, x, bottom)
	if err != nil {
		t.Fatalf("enemy: %v", err)
	}
	enemy, _ := ecs.Get(f.w, e, component.EnemyComponent.Kind())
	return enemy
}

func drainKinds(w *ecs.World) []ecs.EventKind {
	var kinds []ecs.EventKind
	for _, evt := range w.Events().Drain() {
		kinds = append(kinds, evt.Kind)
	}
	return kinds
}

func countEntities[T any](w *ecs.World, kind component.ComponentKind[T]) int {
	n := 0
	ecs.ForEach(w, kind, func(ecs.Entity, *T) { n++ })
	return n
}
