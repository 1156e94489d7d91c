// Package input keeps the held-key state fed by key-down/key-up events and
// turns it into one immutable snapshot per frame.
package input

import (
	"fmt"
	"sort"
)

// Key identifies a physical key by name, e.g. "ArrowLeft" or "Space".
type Key string

// KeyState is the set of keys currently held. It is mutated by key events and
// read once per frame through Snapshot.
type KeyState struct {
	held map[Key]bool
}

func NewKeyState() *KeyState {
	return &KeyState{held: make(map[Key]bool)}
}

// Press records a key-down event.
func (k *KeyState) Press(key Key) {
	if k.held == nil {
		k.held = make(map[Key]bool)
	}
	k.held[key] = true
}

// Release records a key-up event.
func (k *KeyState) Release(key Key) {
	if k.held == nil {
		return
	}
	delete(k.held, key)
}

// Held reports whether key is down.
func (k *KeyState) Held(key Key) bool {
	if k == nil {
		return false
	}
	return k.held[key]
}

// Reset releases every key.
func (k *KeyState) Reset() {
	clear(k.held)
}

// Keys returns the held keys in sorted order.
func (k *KeyState) Keys() []Key {
	if k == nil {
		return nil
	}
	out := make([]Key, 0, len(k.held))
	for key := range k.held {
		out = append(out, key)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Action is a game command a key can be bound to.
type Action string

const (
	ActionLeft    Action = "left"
	ActionRight   Action = "right"
	ActionJump    Action = "jump"
	ActionRun     Action = "run"
	ActionShoot   Action = "shoot"
	ActionFlip    Action = "flip_gravity"
	ActionRestart Action = "restart"
	ActionPause   Action = "pause"
)

var actions = []Action{
	ActionLeft,
	ActionRight,
	ActionJump,
	ActionRun,
	ActionShoot,
	ActionFlip,
	ActionRestart,
	ActionPause,
}

// Bindings maps each action to the keys that trigger it.
type Bindings map[Action][]Key

// DefaultBindings mirrors the arrow-key layout: arrows move, up or space
// jumps, shift runs, D shoots and S flips gravity.
func DefaultBindings() Bindings {
	return Bindings{
		ActionLeft:    {"ArrowLeft"},
		ActionRight:   {"ArrowRight"},
		ActionJump:    {"ArrowUp", "Space"},
		ActionRun:     {"ShiftLeft", "ShiftRight"},
		ActionShoot:   {"D"},
		ActionFlip:    {"S"},
		ActionRestart: {"R"},
		ActionPause:   {"Escape", "P"},
	}
}

// ParseBindings converts a name-keyed table (as read from config) into
// Bindings. Actions missing from raw keep their defaults.
func ParseBindings(raw map[string][]string) (Bindings, error) {
	b := DefaultBindings()
	for name, keys := range raw {
		action := Action(name)
		if !knownAction(action) {
			return nil, fmt.Errorf("input: unknown action %q", name)
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("input: action %q has no keys", name)
		}
		bound := make([]Key, 0, len(keys))
		for _, k := range keys {
			bound = append(bound, Key(k))
		}
		b[action] = bound
	}
	return b, nil
}

func knownAction(a Action) bool {
	for _, known := range actions {
		if known == a {
			return true
		}
	}
	return false
}

// Active reports whether any key bound to action is held.
func (b Bindings) Active(k *KeyState, action Action) bool {
	for _, key := range b[action] {
		if k.Held(key) {
			return true
		}
	}
	return false
}
