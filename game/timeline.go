package game

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/input"
	"gopkg.in/yaml.v3"
)

var ErrInvalidTimeline = errors.New("game: invalid timeline")

// InputStep presses and releases keys at the start of a frame.
type InputStep struct {
	Frame   int      `yaml:"frame"`
	Press   []string `yaml:"press"`
	Release []string `yaml:"release"`
}

// Timeline is a scripted key sequence ordered by frame.
type Timeline []InputStep

func ParseTimeline(data []byte) (Timeline, error) {
	var tl Timeline
	if err := yaml.Unmarshal(data, &tl); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeline, err)
	}
	for i, step := range tl {
		if step.Frame < 0 {
			return nil, fmt.Errorf("%w: step %d has negative frame %d", ErrInvalidTimeline, i, step.Frame)
		}
	}
	sort.SliceStable(tl, func(i, j int) bool { return tl[i].Frame < tl[j].Frame })
	return tl, nil
}

// Summary is the outcome of a replay.
type Summary struct {
	Frames int
	Mode   Mode
	Score  int
	Scroll float64
	// DiedAt is the frame the player died on, or -1.
	DiedAt int
	Events map[ecs.EventKind]int
}

// Replay steps s through tl until maxFrames have run or the game is over.
func Replay(s *Session, tl Timeline, maxFrames int) Summary {
	sum := Summary{DiedAt: -1, Events: map[ecs.EventKind]int{}}
	next := 0
	for sum.Frames < maxFrames && s.Mode() != ModeOver {
		for next < len(tl) && tl[next].Frame <= s.Frame() {
			apply(s.keys, tl[next])
			next++
		}
		res := s.Step()
		sum.Frames++
		for _, evt := range res.Events {
			sum.Events[evt.Kind]++
			if evt.Kind == ecs.EventPlayerDied && sum.DiedAt < 0 {
				sum.DiedAt = s.Frame() - 1
			}
		}
	}
	sum.Mode = s.Mode()
	sum.Score = s.Score()
	sum.Scroll = s.Scroll()
	return sum
}

func apply(keys *input.KeyState, step InputStep) {
	for _, k := range step.Release {
		keys.Release(input.Key(k))
	}
	for _, k := range step.Press {
		keys.Press(input.Key(k))
	}
}
