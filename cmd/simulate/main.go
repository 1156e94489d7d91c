// Command simulate plays a level headless from a scripted input timeline and
// prints the outcome. It is handy for checking level and prefab edits without
// opening a window.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/game"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/logger"
	"github.com/milk9111/platformer/prefabs"
	"go.uber.org/zap"
)

// defaultTimeline runs right for the whole level.
const defaultTimeline = `
- {frame: 0, press: [ArrowRight, ShiftRight]}
`

func main() {
	levelName := flag.String("level", "tutorial", "level to play")
	timelinePath := flag.String("timeline", "", "YAML input timeline (default: hold run right)")
	frames := flag.Int("frames", 60*60, "maximum frames to simulate")
	logLevel := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	if err := logger.Init(*logLevel, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(*levelName, *timelinePath, *frames); err != nil {
		logger.Error("simulation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(levelName, timelinePath string, frames int) error {
	data := []byte(defaultTimeline)
	if timelinePath != "" {
		var err error
		if data, err = os.ReadFile(timelinePath); err != nil {
			return err
		}
	}
	tl, err := game.ParseTimeline(data)
	if err != nil {
		return err
	}

	lvl, err := levels.Load(levelName)
	if err != nil {
		return err
	}
	layout, err := lvl.Build(common.BaseWidth, common.BaseHeight)
	if err != nil {
		return err
	}
	set, err := prefabs.LoadSet()
	if err != nil {
		return err
	}
	s, err := game.NewSession(layout, set, input.NewKeyState(), input.DefaultBindings(), game.Options{})
	if err != nil {
		return err
	}

	sum := game.Replay(s, tl, frames)

	fmt.Printf("level:   %s\n", layout.Name)
	fmt.Printf("frames:  %d (%s simulated)\n", sum.Frames, s.StepDuration()*time.Duration(sum.Frames))
	fmt.Printf("mode:    %s\n", sum.Mode)
	fmt.Printf("score:   %d\n", sum.Score)
	fmt.Printf("scroll:  %.1f / %.1f (%s)\n", -sum.Scroll, layout.LevelWidth, layout.Title(sum.Scroll))
	if sum.DiedAt >= 0 {
		fmt.Printf("died at: frame %d\n", sum.DiedAt)
	}

	kinds := make([]string, 0, len(sum.Events))
	for k := range sum.Events {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	for _, k := range kinds {
		fmt.Printf("  %-20s %d\n", k, sum.Events[ecs.EventKind(k)])
	}
	return nil
}
