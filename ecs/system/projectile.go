package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/logger"
	"github.com/milk9111/platformer/physics"
	"go.uber.org/zap"
)

// ProjectileSystem fires the player's gun and moves every shot. A shot that
// reaches a live enemy kills it; one that reaches a world platform is spent.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	p, havePlayer := findPlayer(w)
	if havePlayer {
		s.fire(w, p)
	}

	ecs.ForEach(w, component.ProjectileComponent.Kind(), func(e ecs.Entity, shot *component.Projectile) {
		shot.Rect.X += shot.Speed

		hit := false
		ecs.ForEach(w, component.EnemyComponent.Kind(), func(enemyEntity ecs.Entity, enemy *component.Enemy) {
			if hit || !enemy.Alive || !physics.Overlaps(shot.Rect, enemy.Rect) {
				return
			}
			hit = true
			enemy.Alive = false
			enemy.Speed = 0
			if havePlayer {
				p.player.Score += shot.Points
			}
			w.Events().Push(ecs.Event{Kind: ecs.EventEnemyShot, Entity: enemyEntity, Value: shot.Points})
		})
		if !hit {
			ecs.ForEach(w, component.PlatformComponent.Kind(), func(_ ecs.Entity, platform *component.Platform) {
				if !hit && !platform.Bound && physics.Overlaps(shot.Rect, platform.Rect) {
					hit = true
				}
			})
		}
		if hit {
			ecs.DestroyEntity(w, e)
		}
	})
}

func (s *ProjectileSystem) fire(w *ecs.World, p playerRefs) {
	if !p.player.Alive || !p.input.Shoot {
		return
	}
	gun, ok := ecs.Get(w, p.entity, component.GunComponent.Kind())
	if !ok {
		return
	}
	cd, ok := ecs.Get(w, p.entity, component.ShootCooldownComponent.Kind())
	if !ok || !cd.Ready() {
		return
	}

	speed := gun.Speed
	if p.player.FacingLeft {
		speed = -speed
	}
	b := p.body.Rect
	x := b.CenterX() - scrollOf(w)
	y := b.CenterY() - gun.Size/2
	shot, err := entity.NewProjectile(w, *gun, x, y, speed)
	if err != nil {
		logger.Warn("projectile: spawn failed", zap.Error(err))
		return
	}
	cd.Frames = gun.Delay
	w.Events().Push(ecs.Event{Kind: ecs.EventProjectileFired, Entity: shot})
}
