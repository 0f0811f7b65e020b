// fluffy 是一个 2D 横版平台射击小游戏
//
// 用法:
//
//	fluffy                       启动游戏（默认关卡 meadow）
//	fluffy --level my.yaml       从文件加载关卡
//	fluffy --placeholders        贴图缺失时使用占位图
//	fluffy levels                列出内置关卡
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/fluffy/pkg/app"
	"github.com/decker502/fluffy/pkg/embedded"
)

var opts app.Config

func main() {
	embedded.Init(dataFS)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fluffy",
	Short: "Fluffy Fiesta - a small side-scrolling platform shooter",
	Long: `Fluffy Fiesta: walk with A/D or the arrow keys, jump with W/Up/Space,
shoot arrows toward the mouse with the left button.

F1 toggles the debug overlay, R restarts the level, F11 toggles fullscreen.`,
	SilenceUsage: true,
	RunE:         runGame,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List built-in levels",
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := embedded.LevelIDs()
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")
	f.StringVar(&opts.ConfigPath, "config", "", "Game config file (default: embedded data/config.yaml)")
	f.StringVar(&opts.Level, "level", app.DefaultLevel, "Level ID or level YAML file")
	f.StringVar(&opts.AssetsDir, "assets", "", "Sprite directory (default: from config or resources.yaml)")
	f.BoolVar(&opts.Placeholders, "placeholders", false, "Generate placeholder frames for missing sprites")
	f.BoolVar(&opts.Debug, "debug", false, "Start with the debug overlay on")

	rootCmd.AddCommand(levelsCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	game, err := app.NewApp(opts)
	if err != nil {
		return err
	}
	defer game.GetSceneManager().Shutdown()

	game.ApplyWindowSettings()

	log.Info("[Main] starting game loop", "level", game.GetSceneManager().CurrentLevel())
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}
