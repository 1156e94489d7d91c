package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/input"
)

func TestInputSystemCopiesSnapshot(t *testing.T) {
	f := newFixture(t)
	sys := NewInputSystem()
	sys.SetSnapshot(input.Snapshot{Left: true, Jump: true, JumpPressed: true, Shoot: true})
	sys.Update(f.w)

	in := f.player.input
	if in.MoveX != -1 || !in.Left || in.Right || !in.Jump || !in.JumpPressed || !in.Shoot || in.Flip {
		t.Fatalf("input = %+v", in)
	}
}

func TestControllerFacing(t *testing.T) {
	f := newFixture(t)
	sys := NewPlayerControllerSystem()

	f.player.input.MoveX, f.player.input.Left = -1, true
	sys.Update(f.w)
	if !f.player.player.FacingLeft || f.player.body.VX >= 0 {
		t.Fatalf("facing left=%v vx=%v", f.player.player.FacingLeft, f.player.body.VX)
	}

	// Releasing every key keeps the last facing.
	*f.player.input = component.Input{}
	sys.Update(f.w)
	if !f.player.player.FacingLeft {
		t.Fatalf("facing flipped without input")
	}
}

func TestControllerClearsGroundedAndAppliesGravity(t *testing.T) {
	f := newFixture(t)
	f.player.body.Grounded = true
	NewPlayerControllerSystem().Update(f.w)
	if f.player.body.Grounded {
		t.Fatalf("grounded should be cleared until contacts run")
	}
	if f.player.body.VY != f.set.Player.Gravity {
		t.Fatalf("vy = %v, want %v", f.player.body.VY, f.set.Player.Gravity)
	}
}

func TestControllerSkipsDeadPlayer(t *testing.T) {
	f := newFixture(t)
	f.player.player.Alive = false
	f.player.input.Right = true
	NewPlayerControllerSystem().Update(f.w)
	if f.player.body.VX != 0 || f.player.body.VY != 0 {
		t.Fatalf("dead player moved: vx=%v vy=%v", f.player.body.VX, f.player.body.VY)
	}
}

func TestDoubleJump(t *testing.T) {
	cases := []struct {
		name       string
		airFrames  int
		jumps      int
		pressed    bool
		wantJumps  int
		wantDouble bool
	}{
		{name: "airborne_press_spends_one", airFrames: 5, jumps: 2, pressed: true, wantJumps: 1, wantDouble: true},
		{name: "held_key_does_not_retrigger", airFrames: 5, jumps: 1, wantJumps: 1},
		{name: "none_left", airFrames: 5, pressed: true},
		{name: "one_frame_off_the_floor_is_not_a_fall", airFrames: 0, jumps: 1, pressed: true, wantJumps: 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			b := f.player.body
			b.Jumping = true
			b.FloatTimer = 0
			b.VY = 4
			f.player.player.AirFrames = c.airFrames
			f.player.player.DoubleJumps = c.jumps
			f.player.input.Jump = true
			f.player.input.JumpPressed = c.pressed

			NewPlayerControllerSystem().Update(f.w)

			if f.player.player.DoubleJumps != c.wantJumps {
				t.Fatalf("double jumps = %d, want %d", f.player.player.DoubleJumps, c.wantJumps)
			}
			events := f.w.Events().Drain()
			if c.wantDouble {
				if len(events) != 1 || events[0].Kind != ecs.EventDoubleJump {
					t.Fatalf("events = %v", events)
				}
				want := -f.set.Player.JumpSpeed + f.set.Player.Gravity
				if b.VY != want {
					t.Fatalf("vy = %v, want %v", b.VY, want)
				}
				return
			}
			if len(events) != 0 {
				t.Fatalf("unexpected events %v", events)
			}
		})
	}
}

func TestGravityFlipCooldown(t *testing.T) {
	f := newFixture(t)
	gravity := NewGravitySystem()
	cooldown := NewCooldownSystem(component.FlipCooldownComponent)
	f.player.input.Flip = true

	flips := 0
	for frame := 1; frame <= 50; frame++ {
		gravity.Update(f.w)
		cooldown.Update(f.w)
		for _, evt := range f.w.Events().Drain() {
			if evt.Kind == ecs.EventGravityFlipped {
				flips++
				if frame != 2 && frame != 2+f.set.Player.GravityFlipFrames+1 {
					t.Fatalf("flip on frame %d", frame)
				}
			}
		}
	}
	if flips != 2 {
		t.Fatalf("flips = %d, want 2", flips)
	}
	if f.player.gravity.Scale != 1 {
		t.Fatalf("scale = %v after two flips", f.player.gravity.Scale)
	}
}

func TestPickupCollect(t *testing.T) {
	f := newFixture(t)
	f.cam.Scroll = -1000

	add := func(kind component.PickupKind, x, y float64) *component.Pickup {
		e := ecs.CreateEntity(f.w)
		values := f.set.Pickups.Coin
		if kind == component.PickupJumpCoin {
			values = f.set.Pickups.JumpCoin
		}
		p := &component.Pickup{Kind: kind, Score: values.Score, DoubleJumps: values.DoubleJumps}
		p.Rect.X, p.Rect.Y, p.Rect.W, p.Rect.H = x, y, 10, 10
		_ = ecs.Add(f.w, e, component.PickupComponent.Kind(), p)
		return p
	}
	// World x 1160 is screen x 160.
	coin := add(component.PickupCoin, 1160, 460)
	jump := add(component.PickupJumpCoin, 1150, 455)
	far := add(component.PickupCoin, 160, 460)

	sys := NewPickupCollectSystem()
	sys.Update(f.w)
	sys.Update(f.w)

	if !coin.Collected || !jump.Collected || far.Collected {
		t.Fatalf("collected coin=%v jump=%v far=%v", coin.Collected, jump.Collected, far.Collected)
	}
	p := f.player.player
	if p.Score != 100 || p.Coins != 1 || p.DoubleJumps != 1 {
		t.Fatalf("player = %+v", p)
	}
	if n := f.w.Events().Len(); n != 2 {
		t.Fatalf("events = %d, want 2", n)
	}
}

func TestDeathSystemFalls(t *testing.T) {
	f := newFixture(t)
	sys := NewDeathSystem()

	sys.Update(f.w)
	if f.player.body.Y != 450 {
		t.Fatalf("living player moved to %v", f.player.body.Y)
	}

	f.player.player.Alive = false
	f.player.body.VY = -10
	sys.Update(f.w)
	sys.Update(f.w)
	if f.player.body.Y != 450-10-9 || f.player.body.VY != -8 {
		t.Fatalf("y=%v vy=%v", f.player.body.Y, f.player.body.VY)
	}
}
