package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Norlock/space-fighters/pkg/app"
	"github.com/Norlock/space-fighters/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	configPath := flag.String("config", "", "Path to a game config YAML (default: embedded data/space_fighters.yaml)")
	seed := flag.Int64("seed", 0, "Random seed for enemy spawn positions (0 = time based)")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
		Mute:       *mute,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	window := gameApp.WindowConfig()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)

	err = ebiten.RunGame(gameApp)
	gameApp.Shutdown()
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏异常退出: %v\n", err)
		os.Exit(1)
	}
}
