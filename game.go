package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/game"
	"github.com/milk9111/platformer/input"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/logger"
	"github.com/milk9111/platformer/prefabs"
	"go.uber.org/zap"
)

// Game adapts a game.Session to ebiten: it feeds key events into the shared
// key state, handles pause and restart and reloads prefabs in debug mode.
type Game struct {
	cfg      *config.Config
	bindings input.Bindings
	keys     *input.KeyState
	prev     input.Snapshot

	session *game.Session
	surface *ebitenSurface

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher

	keyBuf []ebiten.Key
}

func NewGame(cfg *config.Config) (*Game, error) {
	bindings, err := cfg.Bindings()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      cfg,
		bindings: bindings,
		keys:     input.NewKeyState(),
		surface:  newEbitenSurface(),
	}
	if g.session, err = g.newSession(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if cfg.Game.HotReload {
		w, err := prefabs.NewWatcher(prefabs.Dir, levels.Dir)
		if err != nil {
			logger.Warn("hot reload disabled", zap.Error(err))
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) newSession() (*game.Session, error) {
	lvl, err := levels.Load(g.cfg.Game.Level)
	if err != nil {
		return nil, err
	}
	layout, err := lvl.Build(float64(g.cfg.Display.Width), float64(g.cfg.Display.Height))
	if err != nil {
		return nil, err
	}
	set, err := prefabs.LoadSet()
	if err != nil {
		return nil, err
	}
	logger.Info("level loaded",
		zap.String(logger.LevelNameKey, layout.Name),
		zap.Int("platforms", len(layout.Platforms)),
		zap.Int("enemies", len(layout.Enemies)),
		zap.Float64("width", layout.LevelWidth),
		zap.Strings("prefab_overrides", set.Overrides))

	return game.NewSession(layout, set, g.keys, g.bindings, game.Options{
		TPS:       g.cfg.Display.TPS,
		HUDHeight: float64(g.cfg.Display.HUDHeight),
	})
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.drainWatcher()
	g.readKeys()

	snap := g.keys.Snapshot(g.bindings, g.prev)
	g.prev = snap

	if snap.PausePressed && g.session.Mode() != game.ModeOver {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if snap.RestartPressed && g.session.Mode() == game.ModeOver {
		g.restart()
		return nil
	}

	g.session.Step()
	return nil
}

func (g *Game) readKeys() {
	if !ebiten.IsFocused() {
		g.keys.Reset()
		return
	}
	g.keyBuf = inpututil.AppendJustPressedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		g.keys.Press(input.Key(k.String()))
	}
	g.keyBuf = inpututil.AppendJustReleasedKeys(g.keyBuf[:0])
	for _, k := range g.keyBuf {
		g.keys.Release(input.Key(k.String()))
	}
}

func (g *Game) restart() {
	next, err := g.session.Restart()
	if err != nil {
		logger.Error("restart failed", zap.Error(err))
		return
	}
	g.session = next
	g.paused = false
}

// reload rebuilds the session from the files on disk. A broken edit keeps the
// current session running.
func (g *Game) reload(change prefabs.Change) {
	next, err := g.newSession()
	if err != nil {
		logger.Warn("reload failed", zap.String("path", change.Path), zap.Error(err))
		return
	}
	logger.Info("reloaded", zap.String("path", change.Path))
	g.session = next
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(change)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			logger.Warn("watcher error", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.screen = screen
	g.session.Draw(g.surface)

	if g.cfg.Game.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frame: %d    FPS: %.2f    Mode: %s", g.session.Frame(), ebiten.ActualFPS(), g.session.Mode()))
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Display.Width, g.cfg.Display.Height + g.cfg.Display.HUDHeight
}
