package prefabs

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name              string  `yaml:"name"`
	Size              float64 `yaml:"size"`
	WalkSpeed         float64 `yaml:"walk_speed"`
	RunSpeed          float64 `yaml:"run_speed"`
	Acceleration      float64 `yaml:"acceleration"`
	JumpSpeed         float64 `yaml:"jump_speed"`
	Gravity           float64 `yaml:"gravity"`
	Friction          float64 `yaml:"friction"`
	FloatFrames       int     `yaml:"float_frames"`
	StompVelocity     float64 `yaml:"stomp_velocity"`
	StompBounce       float64 `yaml:"stomp_bounce"`
	DeathDropSpeed    float64 `yaml:"death_drop_speed"`
	DeathGravity      float64 `yaml:"death_gravity"`
	DeathPauseMillis  int     `yaml:"death_pause_ms"`
	GravityFlipFrames int     `yaml:"gravity_flip_frames"`
	HatCoins          int     `yaml:"hat_coins"`
	Color             string  `yaml:"color"`
}

// DeathPause is the time the player freezes before the death fall.
func (s PlayerSpec) DeathPause() time.Duration {
	return time.Duration(s.DeathPauseMillis) * time.Millisecond
}

func (s PlayerSpec) validate() error {
	if s.Size <= 0 {
		return fmt.Errorf("%w: player size %v", ErrInvalidSpec, s.Size)
	}
	if s.WalkSpeed <= 0 || s.RunSpeed < s.WalkSpeed {
		return fmt.Errorf("%w: player walk %v / run %v", ErrInvalidSpec, s.WalkSpeed, s.RunSpeed)
	}
	if s.Friction < 0 || s.Friction > 1 {
		return fmt.Errorf("%w: player friction %v", ErrInvalidSpec, s.Friction)
	}
	return nil
}

type EnemySpec struct {
	Name   string  `yaml:"name"`
	Size   float64 `yaml:"size"`
	Speed  float64 `yaml:"speed"`
	Points int     `yaml:"points"`
	Script string  `yaml:"script"`
	Color  string  `yaml:"color"`
}

func (s EnemySpec) validate() error {
	if s.Size <= 0 {
		return fmt.Errorf("%w: enemy size %v", ErrInvalidSpec, s.Size)
	}
	return nil
}

type ProjectileSpec struct {
	Name      string  `yaml:"name"`
	Size      float64 `yaml:"size"`
	Speed     float64 `yaml:"speed"`
	Delay     int     `yaml:"delay_frames"`
	TTLFrames int     `yaml:"ttl_frames"`
	Points    int     `yaml:"points"`
	Color     string  `yaml:"color"`
}

func (s ProjectileSpec) validate() error {
	if s.Size <= 0 || s.TTLFrames <= 0 {
		return fmt.Errorf("%w: projectile size %v ttl %d", ErrInvalidSpec, s.Size, s.TTLFrames)
	}
	return nil
}

type PickupSpec struct {
	Score       int    `yaml:"score"`
	DoubleJumps int    `yaml:"double_jumps"`
	Color       string `yaml:"color"`
}

type PickupsSpec struct {
	Size     float64    `yaml:"size"`
	Coin     PickupSpec `yaml:"coin"`
	JumpCoin PickupSpec `yaml:"jump_coin"`
}

// WorldSpec holds the colours and scroll margin shared by the whole scene.
type WorldSpec struct {
	ScrollMargin  float64 `yaml:"scroll_margin"`
	PlatformColor string  `yaml:"platform_color"`
	HUDColor      string  `yaml:"hud_color"`
	Background    string  `yaml:"background"`
}

// Set is every prefab a session needs, plus the scripts they name.
type Set struct {
	Player     PlayerSpec
	Enemy      EnemySpec
	Projectile ProjectileSpec
	Pickups    PickupsSpec
	World      WorldSpec
	Scripts    map[string]string
	// Overrides lists the spec files read from Dir instead of the embedded
	// defaults.
	Overrides  []string
}

var specFiles = []string{"player.yaml", "enemy.yaml", "projectile.yaml", "pickups.yaml", "world.yaml"}

// LoadSet reads all prefab files and the scripts they reference.
func LoadSet() (*Set, error) {
	var (
		set Set
		err error
	)
	if set.Player, err = LoadSpec[PlayerSpec]("player.yaml"); err != nil {
		return nil, err
	}
	if set.Enemy, err = LoadSpec[EnemySpec]("enemy.yaml"); err != nil {
		return nil, err
	}
	if set.Projectile, err = LoadSpec[ProjectileSpec]("projectile.yaml"); err != nil {
		return nil, err
	}
	if set.Pickups, err = LoadSpec[PickupsSpec]("pickups.yaml"); err != nil {
		return nil, err
	}
	if set.World, err = LoadSpec[WorldSpec]("world.yaml"); err != nil {
		return nil, err
	}

	for _, v := range []interface{ validate() error }{set.Player, set.Enemy, set.Projectile} {
		if err := v.validate(); err != nil {
			return nil, err
		}
	}

	for _, name := range specFiles {
		if Overridden(name) {
			set.Overrides = append(set.Overrides, name)
		}
	}

	set.Scripts = map[string]string{}
	if name := strings.TrimSpace(set.Enemy.Script); name != "" {
		src, err := LoadScript(name)
		if err != nil {
			return nil, fmt.Errorf("prefabs: load script %s: %w", name, err)
		}
		set.Scripts[name] = string(src)
	}
	return &set, nil
}
