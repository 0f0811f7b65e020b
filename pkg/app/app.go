// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：加载配置、关卡与贴图，
// 创建场景管理器，并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/fluffy/pkg/config"
	"github.com/decker502/fluffy/pkg/entities"
	"github.com/decker502/fluffy/pkg/game"
	"github.com/decker502/fluffy/pkg/input"
	"github.com/decker502/fluffy/pkg/scenes"
)

// settingsAppName gdata 存储使用的应用名
const settingsAppName = "fluffy_fiesta"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用调试级别日志
	Verbose bool
	// ConfigPath 游戏配置文件路径，为空时使用嵌入的 data/config.yaml
	ConfigPath string
	// Level 关卡 ID 或关卡文件路径，为空时加载 DefaultLevel
	Level string
	// AssetsDir 贴图目录，为空时依次使用配置文件和资源清单中的目录
	AssetsDir string
	// Placeholders 贴图缺失时使用占位图
	Placeholders bool
	// Debug 启动时打开调试描边（不写入偏好设置）
	Debug bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	cfg          *config.GameConfig
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	input        input.Source
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// ConfigureLogging 设置全局日志级别
func ConfigureLogging(verbose bool) {
	if verbose {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
		return
	}
	log.SetLevel(log.InfoLevel)
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，应先调用 embedded.Init() 初始化嵌入资源。
func NewApp(opts Config) (*App, error) {
	ConfigureLogging(opts.Verbose)

	cfg, err := loadGameConfig(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("game config: %w", err)
	}

	res, err := loadResourceConfig()
	if err != nil {
		return nil, fmt.Errorf("resource config: %w", err)
	}

	placeholders := opts.Placeholders || cfg.Assets.Placeholders
	assetDir := resolveAssetDir(opts.AssetsDir, cfg, res)
	assets, err := loadAssets(assetDir, placeholders, res, entities.RequiredAssetGroups())
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}

	settings, _ := game.NewSettingsManager(game.OpenSettingsStore(settingsAppName))
	if opts.Debug {
		settings.SetDebugOverlay(true)
	}

	a := &App{
		cfg:          cfg,
		sceneManager: game.NewSceneManager(),
		settings:     settings,
		input:        input.NewEbitenSource(),
		verbose:      opts.Verbose,
	}

	a.sceneManager.SetSceneFactory(func(levelID string) (game.Scene, error) {
		lvl, err := loadLevel(levelID)
		if err != nil {
			return nil, err
		}
		world, err := scenes.NewWorld(cfg, lvl, assets, a.input)
		if err != nil {
			return nil, err
		}
		return scenes.NewGameScene(world, a.input, a.sceneManager, settings), nil
	})

	levelID := opts.Level
	if levelID == "" {
		levelID = DefaultLevel
	}
	if err := a.sceneManager.LoadLevel(levelID); err != nil {
		return nil, err
	}

	return a, nil
}

// ApplyWindowSettings 设置窗口尺寸、标题和保存的全屏状态
// 必须在 ebiten.RunGame 之前调用
func (a *App) ApplyWindowSettings() {
	ebiten.SetWindowSize(a.cfg.Screen.Width, a.cfg.Screen.Height)
	ebiten.SetWindowTitle(a.cfg.Screen.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(a.settings.GetSettings().Fullscreen)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次，dt 固定为 1/TPS
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.cfg.Screen.Width, a.cfg.Screen.Height)
			log.Debug("[App] delayed SetWindowSize", "width", a.cfg.Screen.Width, "height", a.cfg.Screen.Height)
			a.pendingWindowSizeReset = false
		}
	}

	if a.input.IsKeyPressed(input.KeyFullscreen) {
		a.toggleFullscreen()
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// toggleFullscreen F11 切换全屏并保存偏好
func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settings.SetFullscreen(ebiten.IsFullscreen())
	if err := a.settings.Save(); err != nil {
		log.Warn("[App] failed to save fullscreen preference", "err", err)
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时左右留黑边，并用线性滤波缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Screen.Width, a.cfg.Screen.Height
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存偏好
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
