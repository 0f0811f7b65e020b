package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/decker502/fluffy/pkg/config"
	"github.com/decker502/fluffy/pkg/embedded"
	"github.com/decker502/fluffy/pkg/game"
)

// 嵌入资源中的默认路径
const (
	embeddedConfigPath    = "data/config.yaml"
	embeddedResourcesPath = "data/resources.yaml"
	embeddedLevelDir      = "data/levels"

	// DefaultLevel 未指定 --level 时加载的关卡
	DefaultLevel = "meadow"
)

// loadGameConfig 加载游戏配置
//
// path 非空时从磁盘读取；否则读取嵌入的 data/config.yaml；
// 嵌入资源不可用时退回 DefaultGameConfig。
func loadGameConfig(path string) (*config.GameConfig, error) {
	if path != "" {
		cfg, err := config.LoadGameConfig(path)
		if err != nil {
			return nil, err
		}
		log.Info("[Config] game config loaded", "path", path)
		return cfg, nil
	}

	if !embedded.IsInitialized() {
		log.Warn("[Config] embedded data unavailable, using built-in defaults")
		return config.DefaultGameConfig(), nil
	}

	data, err := embedded.ReadFile(embeddedConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded game config: %w", err)
	}
	return config.ParseGameConfig(data)
}

// loadResourceConfig 读取嵌入的资源清单
func loadResourceConfig() (*game.ResourceConfig, error) {
	data, err := embedded.ReadFile(embeddedResourcesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource config: %w", err)
	}
	return game.ParseResourceConfig(data)
}

// isLevelFile 判断 --level 参数是文件路径还是关卡 ID
func isLevelFile(arg string) bool {
	return strings.HasSuffix(arg, ".yaml") || strings.HasSuffix(arg, ".yml") || strings.ContainsAny(arg, `/\`)
}

// loadLevel 加载关卡
//
// 参数:
//   - arg: 关卡 ID（如 "meadow"，对应嵌入的 data/levels/meadow.yaml）或 YAML 文件路径；
//     为空时加载 DefaultLevel
func loadLevel(arg string) (*config.LevelConfig, error) {
	if arg == "" {
		arg = DefaultLevel
	}

	if isLevelFile(arg) {
		return config.LoadLevelConfig(arg)
	}

	if !embedded.IsInitialized() {
		if arg == DefaultLevel {
			log.Warn("[Config] embedded data unavailable, using built-in level", "level", arg)
			return config.DefaultLevelConfig(), nil
		}
		return nil, fmt.Errorf("level %q not available: %w", arg, embedded.ErrNotInitialized)
	}

	path := embeddedLevelDir + "/" + arg + ".yaml"
	data, err := embedded.ReadFile(path)
	if err != nil {
		ids, _ := embedded.LevelIDs()
		return nil, fmt.Errorf("unknown level %q (available: %s): %w", arg, strings.Join(ids, ", "), err)
	}
	return config.ParseLevelConfig(data)
}

// resolveAssetDir 贴图目录：命令行 > 配置文件 > 资源清单的 base_path
func resolveAssetDir(flagDir string, cfg *config.GameConfig, res *game.ResourceConfig) string {
	switch {
	case flagDir != "":
		return flagDir
	case cfg.Assets.Dir != "":
		return cfg.Assets.Dir
	case res.BasePath != "":
		return res.BasePath
	default:
		return "."
	}
}

// loadAssets 加载全部贴图并检查实体所需的分组齐全
func loadAssets(dir string, placeholders bool, res *game.ResourceConfig, required []string) (*game.AssetTable, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}

	if _, statErr := os.Stat(dir); statErr != nil && !placeholders {
		return nil, fmt.Errorf("asset directory %s not found (use --placeholders to run without sprites): %w", abs, statErr)
	}
	log.Info("[App] loading assets", "dir", abs, "placeholders", placeholders)

	rm := game.NewResourceManager(os.DirFS(dir), res)
	rm.SetPlaceholders(placeholders)

	table, err := rm.LoadAll()
	if err != nil {
		return nil, err
	}
	if err := game.RequireGroups(table, required...); err != nil {
		return nil, err
	}
	return table, nil
}
