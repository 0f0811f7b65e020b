// levelview 在终端中预览关卡布局
//
// 用法:
//
//	levelview [level.yaml]          预览指定关卡文件
//	levelview --builtin             预览内置的默认关卡
//	levelview --bottom 600 a.yaml   指定世界底部（默认取游戏配置的屏幕高度）
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/decker502/fluffy/pkg/config"
	"github.com/decker502/fluffy/pkg/level"
)

var (
	flagBuiltin bool
	flagBottom  float64
	flagConfig  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "levelview [level.yaml]",
	Short: "Preview a Fluffy Fiesta level in the terminal",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runView,
}

func init() {
	rootCmd.Flags().BoolVar(&flagBuiltin, "builtin", false, "Preview the built-in default level")
	rootCmd.Flags().Float64Var(&flagBottom, "bottom", 0, "World bottom Y (0 = screen height from game config)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Game config file used for the screen height")
}

func runView(cmd *cobra.Command, args []string) error {
	var (
		lvl *config.LevelConfig
		err error
	)

	switch {
	case flagBuiltin:
		lvl = config.DefaultLevelConfig()
	case len(args) == 1:
		lvl, err = config.LoadLevelConfig(args[0])
	default:
		lvl, err = config.LoadLevelConfig("data/levels/meadow.yaml")
	}
	if err != nil {
		return err
	}

	bottom := flagBottom
	if bottom <= 0 {
		cfg := config.DefaultGameConfig()
		if flagConfig != "" {
			if cfg, err = config.LoadGameConfig(flagConfig); err != nil {
				return err
			}
		}
		bottom = float64(cfg.Screen.Height)
	}

	log.Debug("[LevelView] rendering", "level", lvl.Name, "bottom", bottom)
	fmt.Println(level.Preview(lvl, bottom))
	return nil
}
