package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/logger"
	"go.uber.org/zap"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("config: %+v", cfg)

	game, err := NewGame(cfg)
	if err != nil {
		logger.Fatal("failed to create game", zap.Error(err))
	}
	defer game.Close()

	d := cfg.Display
	ebiten.SetWindowSize(int(float64(d.Width)*d.Scale), int(float64(d.Height+d.HUDHeight)*d.Scale))
	ebiten.SetWindowTitle(d.Title)
	ebiten.SetTPS(d.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game error", zap.Error(err))
		return
	}
	logger.Info("game closed normally")
}
