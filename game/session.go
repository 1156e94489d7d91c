// Package game runs one play-through of a level: it owns the ECS world, steps
// the systems at a fixed rate and moves between the Running, Dead and Over
// modes.
package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/render"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/logger"
	"github.com/milk9111/platformer/prefabs"
	"go.uber.org/zap"
)

type Mode int

const (
	ModeRunning Mode = iota
	ModeDead
	ModeOver
)

func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "running"
	case ModeDead:
		return "dead"
	case ModeOver:
		return "over"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// FrameResult summarises the frames run by one Step or Advance call.
type FrameResult struct {
	Frames int
	Mode   Mode
	Score  int
	Scroll float64
	Events []ecs.Event
}

type Options struct {
	// TPS is the fixed update rate. Zero means 60.
	TPS int
	// HUDHeight is the strip below the play field. Zero means the default.
	HUDHeight float64
}

// Session is not safe for concurrent use.
type Session struct {
	layout   *levels.Layout
	set      *prefabs.Set
	keys     *input.KeyState
	bindings input.Bindings
	opts     Options

	world   *ecs.World
	player  ecs.Entity
	input   *system.InputSystem
	running *ecs.Scheduler
	dead    *ecs.Scheduler
	render  *system.RenderSystem

	mode    Mode
	frame   int
	step    time.Duration
	acc     time.Duration
	deadFor time.Duration
	prev    input.Snapshot

	runID string
	log   *zap.Logger
}

var ErrNilKeyState = errors.New("game: nil key state")

// NewSession builds a fresh world for layout. keys is read once per frame; the
// caller keeps feeding it key events.
func NewSession(layout *levels.Layout, set *prefabs.Set, keys *input.KeyState, bindings input.Bindings, opts Options) (*Session, error) {
	if keys == nil {
		return nil, ErrNilKeyState
	}
	if bindings == nil {
		bindings = input.DefaultBindings()
	}
	if opts.TPS <= 0 {
		opts.TPS = 60
	}
	if opts.HUDHeight <= 0 {
		opts.HUDHeight = common.HUDHeight
	}

	w := ecs.NewWorld()
	player, err := entity.LoadLevelToWorld(w, layout, set)
	if err != nil {
		return nil, fmt.Errorf("game: load level %s: %w", layoutName(layout), err)
	}

	enemies := system.NewEnemySystem()
	for name, src := range set.Scripts {
		if err := enemies.RegisterScript(name, src); err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
	}

	s := &Session{
		layout:   layout,
		set:      set,
		keys:     keys,
		bindings: bindings,
		opts:     opts,
		world:    w,
		player:   player,
		input:    system.NewInputSystem(),
		step:     time.Second / time.Duration(opts.TPS),
		runID:    uuid.NewString(),
	}
	s.running = ecs.NewScheduler(
		s.input,
		system.NewGravitySystem(),
		system.NewCooldownSystem(component.FlipCooldownComponent),
		system.NewPlayerControllerSystem(),
		system.NewPickupCollectSystem(),
		system.NewProjectileSystem(),
		system.NewCooldownSystem(component.ShootCooldownComponent),
		system.NewTTLSystem(),
		enemies,
		system.NewPlatformCollisionSystem(),
		system.NewMovementSystem(),
	)
	s.dead = ecs.NewScheduler(system.NewDeathSystem())

	s.render = system.NewRenderSystem(system.PaletteFromSet(set), layout.Title)
	s.render.HUDHeight = opts.HUDHeight

	s.log = logger.ForRun(s.runID, layout.Name)
	s.log.Info("session started", zap.Int("entities", w.Len()), zap.Int("tps", opts.TPS))
	return s, nil
}

func layoutName(l *levels.Layout) string {
	if l == nil {
		return "<nil>"
	}
	return l.Name
}

// Restart builds a new session for the same level and prefabs.
func (s *Session) Restart() (*Session, error) {
	s.log.Info("session restarted", zap.Int("frame", s.frame), zap.Int("score", s.Score()))
	return NewSession(s.layout, s.set, s.keys, s.bindings, s.opts)
}

func (s *Session) Mode() Mode { return s.mode }
func (s *Session) Frame() int { return s.frame }
func (s *Session) RunID() string { return s.runID }
func (s *Session) World() *ecs.World { return s.world }
func (s *Session) Player() ecs.Entity { return s.player }
func (s *Session) Layout() *levels.Layout { return s.layout }

// StepDuration is the simulated time covered by one Step.
func (s *Session) StepDuration() time.Duration { return s.step }

func (s *Session) Score() int {
	if p, ok := ecs.Get(s.world, s.player, component.PlayerComponent.Kind()); ok {
		return p.Score
	}
	return 0
}

func (s *Session) Scroll() float64 {
	e, ok := ecs.First(s.world, component.CameraComponent.Kind())
	if !ok {
		return 0
	}
	cam, _ := ecs.Get(s.world, e, component.CameraComponent.Kind())
	return cam.Scroll
}

// Advance runs every whole step dt covers, carrying the remainder into the
// next call.
func (s *Session) Advance(dt time.Duration) FrameResult {
	s.acc += dt
	res := FrameResult{Mode: s.mode}
	for s.acc >= s.step {
		s.acc -= s.step
		r := s.Step()
		res.Frames += r.Frames
		res.Events = append(res.Events, r.Events...)
	}
	res.Mode = s.mode
	res.Score = s.Score()
	res.Scroll = s.Scroll()
	return res
}

// Step runs exactly one frame.
func (s *Session) Step() FrameResult {
	snap := s.keys.Snapshot(s.bindings, s.prev)
	s.prev = snap

	switch s.mode {
	case ModeRunning:
		s.input.SetSnapshot(snap)
		s.running.Update(s.world)
		if !s.playerAlive() {
			s.die()
		}
	case ModeDead:
		s.deadFor += s.step
		if s.deadFor >= s.set.Player.DeathPause() {
			s.dead.Update(s.world)
			if s.offCanvas() {
				s.mode = ModeOver
				s.log.Info("game over", zap.Int("frame", s.frame), zap.Int("score", s.Score()))
			}
		}
	case ModeOver:
	}
	s.frame++

	events := s.world.Events().Drain()
	for _, evt := range events {
		s.log.Debug("event", zap.String("kind", string(evt.Kind)), zap.Stringer("entity", evt.Entity), zap.Int("value", evt.Value))
	}
	return FrameResult{
		Frames: 1,
		Mode:   s.mode,
		Score:  s.Score(),
		Scroll: s.Scroll(),
		Events: events,
	}
}

func (s *Session) playerAlive() bool {
	p, ok := ecs.Get(s.world, s.player, component.PlayerComponent.Kind())
	return ok && p.Alive
}

func (s *Session) die() {
	s.mode = ModeDead
	s.deadFor = 0
	p, ok := ecs.Get(s.world, s.player, component.PlayerComponent.Kind())
	if !ok {
		s.log.Warn("player missing, ending run", zap.Int("frame", s.frame))
		s.mode = ModeOver
		return
	}
	if body, ok := ecs.Get(s.world, s.player, component.BodyComponent.Kind()); ok {
		body.VX = 0
		body.VY = p.DeathDropSpeed
	}
	s.log.Info("player died", zap.Int("frame", s.frame), zap.Int("score", p.Score), zap.Float64("scroll", s.Scroll()))
}

func (s *Session) offCanvas() bool {
	body, ok := ecs.Get(s.world, s.player, component.BodyComponent.Kind())
	if !ok {
		return true
	}
	return body.Y > s.layout.ViewHeight+s.opts.HUDHeight
}

// Draw renders the current frame.
func (s *Session) Draw(surface render.Surface) {
	s.render.Draw(s.world, surface)
	if s.mode == ModeOver {
		msg := "GAME OVER"
		if keys := s.bindings[input.ActionRestart]; len(keys) > 0 {
			msg = fmt.Sprintf("GAME OVER: press %s to restart", keys[0])
		}
		surface.Text(msg, 10, s.layout.ViewHeight+100, render.AlignLeft, s.render.Palette.HUD)
	}
}
