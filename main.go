// ClickChess - an interactive chessboard built with Ebitengine
package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"clickchess/internal/config"
	"clickchess/internal/logx"
	"clickchess/internal/ui"

	"go.uber.org/zap"
)

func main() {
	logx.InitFromEnv()
	defer logx.Sync()

	cfg := config.Load()
	logx.L().Info("starting clickchess",
		zap.String("theme", cfg.Theme),
		zap.Float64("window_scale", cfg.WindowScale),
		zap.Bool("sound", cfg.Sound))

	game := ui.NewGame(cfg)

	ebiten.SetWindowSize(int(float64(ui.ScreenWidth)*cfg.WindowScale), int(float64(ui.ScreenHeight)*cfg.WindowScale))
	ebiten.SetWindowTitle("ClickChess")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	err := ebiten.RunGame(game)
	game.Close()
	if err != nil {
		logx.L().Fatal("game loop exited", zap.Error(err))
	}
}
