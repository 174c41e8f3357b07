package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/lanedefense/pkg/app"
	"github.com/gonewx/lanedefense/pkg/utils"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	level := flag.Int("level", 0, "Level to start (0 = highest unlocked)")
	configDir := flag.String("config", "", "Directory with catalog.yaml / round.yaml / spawn_rules.yaml overrides")
	profile := flag.String("profile", "default", "Local profile id")
	flag.Parse()

	game, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		Level:     *level,
		ConfigDir: *configDir,
		ProfileID: *profile,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(utils.ScreenWidth, utils.ScreenHeight)
	ebiten.SetWindowTitle("Lane Defense")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// RunGame 阻塞直到窗口关闭
	runErr := ebiten.RunGame(game)
	if err := game.Close(); err != nil {
		log.Printf("[App] Warning: Failed to save on exit: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
