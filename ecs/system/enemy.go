package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/logger"
	"github.com/milk9111/platformer/physics"
	"go.uber.org/zap"
)

// EnemySystem walks every live enemy, settles its contact with the player and
// turns it around at walls. Bound platforms only constrain the player.
type EnemySystem struct {
	scripts map[string]*EnemyScript
}

func NewEnemySystem() *EnemySystem {
	return &EnemySystem{scripts: map[string]*EnemyScript{}}
}

// RegisterScript compiles src and makes it available to enemies naming it.
func (s *EnemySystem) RegisterScript(name, src string) error {
	script, err := CompileEnemyScript(name, src)
	if err != nil {
		return err
	}
	s.scripts[name] = script
	return nil
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	p, havePlayer := findPlayer(w)
	scroll := scrollOf(w)

	ecs.ForEach(w, component.EnemyComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy) {
		if !enemy.Alive {
			return
		}
		enemy.Rect.X -= enemy.Speed

		if havePlayer && p.player.Alive {
			side := physics.Resolve(&p.body.Rect, enemy.Rect.Translate(scroll, 0))
			if side != physics.SideNone {
				s.touchPlayer(w, e, enemy, p)
			}
		}

		ecs.ForEach(w, component.PlatformComponent.Kind(), func(_ ecs.Entity, platform *component.Platform) {
			if platform.Bound || !enemy.Alive {
				return
			}
			side := physics.Resolve(&enemy.Rect, platform.Rect)
			if side.Horizontal() {
				enemy.Speed = s.turn(enemy, side)
			}
		})
	})
}

// touchPlayer applies the contact rule: moving along gravity at stomp speed
// or faster kills the enemy and bounces the player, anything else kills the
// player.
func (s *EnemySystem) touchPlayer(w *ecs.World, e ecs.Entity, enemy *component.Enemy, p playerRefs) {
	b := &p.body.Body
	if b.VY*p.gravity.Scale >= p.player.StompVelocity {
		b.VY = -b.VY * p.player.StompBounce
		enemy.Alive = false
		enemy.Speed = 0
		p.player.Score += enemy.Points
		w.Events().Push(ecs.Event{Kind: ecs.EventEnemyStomped, Entity: e, Value: enemy.Points})
		return
	}
	p.player.Alive = false
	w.Events().Push(ecs.Event{Kind: ecs.EventPlayerDied, Entity: p.entity})
}

func (s *EnemySystem) turn(enemy *component.Enemy, side physics.Side) float64 {
	script, ok := s.scripts[enemy.Script]
	if !ok {
		return -enemy.Speed
	}
	speed, err := script.Turn(enemy.Speed, side, enemy.Rect.X)
	if err != nil {
		logger.Warn("enemy: script failed, reversing", zap.String("script", enemy.Script), zap.Error(err))
		return -enemy.Speed
	}
	return speed
}
