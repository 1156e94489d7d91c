package system

import (
	"context"
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/physics"
)

// scriptTimeout bounds one wall-contact run.
const scriptTimeout = 20 * time.Millisecond

// EnemyScript is a compiled tengo program that picks an enemy's new speed
// after it touches a wall. The script sees speed, side and x and must leave
// the new value in speed.
type EnemyScript struct {
	name     string
	compiled *tengo.Compiled
}

func CompileEnemyScript(name, src string) (*EnemyScript, error) {
	script := tengo.NewScript([]byte(src))
	script.SetImports(stdlib.GetModuleMap("math"))
	_ = script.Add("speed", 0.0)
	_ = script.Add("side", "")
	_ = script.Add("x", 0.0)

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("enemy script %s: compile: %w", name, err)
	}
	return &EnemyScript{name: name, compiled: compiled}, nil
}

// Turn runs the script for one wall contact.
func (s *EnemyScript) Turn(speed float64, side physics.Side, x float64) (float64, error) {
	if s == nil || s.compiled == nil {
		return -speed, nil
	}
	if err := s.compiled.Set("speed", speed); err != nil {
		return 0, err
	}
	if err := s.compiled.Set("side", side.String()); err != nil {
		return 0, err
	}
	if err := s.compiled.Set("x", x); err != nil {
		return 0, err
	}
	// RunContext turns VM panics, such as an integer division by zero, into
	// errors and aborts scripts that never finish.
	ctx, cancel := context.WithTimeout(context.Background(), scriptTimeout)
	defer cancel()
	if err := s.compiled.RunContext(ctx); err != nil {
		return 0, fmt.Errorf("enemy script %s: run: %w", s.name, err)
	}
	return s.compiled.Get("speed").Float(), nil
}
