package scenes

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/decker502/fluffy/pkg/game"
	"github.com/decker502/fluffy/pkg/input"
	"github.com/decker502/fluffy/pkg/render"
)

// 背景色（天空）
var backgroundColor = color.RGBA{R: 135, G: 196, B: 235, A: 255}

// GameScene represents the main gameplay screen.
// 它把一个 World 接到 Ebitengine：每帧读取输入、推进模拟、绘制，
// 并处理调试描边开关（F1，持久化）和重开关卡（R）。
type GameScene struct {
	world    *World
	input    input.Source
	renderer *render.EbitenRenderer

	sceneManager *game.SceneManager
	settings     *game.SettingsManager

	// showHUD 调试描边开启时在左上角显示统计信息
	showHUD bool
}

// NewGameScene 创建游戏场景
//
// 参数:
//   - world: 已创建好的关卡世界
//   - src: 输入来源（与 world 内角色系统使用的是同一个）
//   - sm: 场景管理器，用于重开关卡；可为 nil
//   - settings: 偏好设置，可为 nil
func NewGameScene(world *World, src input.Source, sm *game.SceneManager, settings *game.SettingsManager) *GameScene {
	if src == nil {
		src = input.None{}
	}

	s := &GameScene{
		world:        world,
		input:        src,
		renderer:     render.NewEbitenRenderer(),
		sceneManager: sm,
		settings:     settings,
	}

	if settings != nil && settings.GetSettings().DebugOverlay {
		s.setDebug(true)
	}

	return s
}

// Update 处理场景级按键后推进一帧
func (s *GameScene) Update(deltaTime float64) {
	if s.input.IsKeyPressed(input.KeyDebug) {
		s.toggleDebug()
	}

	if s.input.IsKeyPressed(input.KeyRestart) && s.sceneManager != nil {
		log.Info("[GameScene] restart requested", "level", s.sceneManager.CurrentLevel())
		s.sceneManager.RequestRestart()
	}

	s.world.Step(deltaTime)
}

// toggleDebug 切换调试描边并保存偏好
func (s *GameScene) toggleDebug() {
	enabled := !s.world.Debug()
	s.setDebug(enabled)
	log.Info("[GameScene] debug overlay toggled", "enabled", enabled)

	if s.settings == nil {
		return
	}
	s.settings.SetDebugOverlay(enabled)
	if err := s.settings.Save(); err != nil {
		log.Warn("[GameScene] failed to save settings", "err", err)
	}
}

func (s *GameScene) setDebug(enabled bool) {
	s.world.SetDebug(enabled)
	s.showHUD = enabled
}

// Draw 绘制背景、世界以及调试信息
func (s *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	s.renderer.SetTarget(screen)
	s.world.Draw(s.renderer)

	if s.showHUD {
		s.drawHUD(screen)
	}
}

// drawHUD 左上角的调试统计
func (s *GameScene) drawHUD(screen *ebiten.Image) {
	st := s.world.Stats()
	msg := fmt.Sprintf("TPS %.0f  FPS %.0f\nentities %d  arrows %d  enemies %d\ncamera (%.0f, %.0f)\nF1 debug  R restart  F11 fullscreen",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		st.Entities, st.Arrows, st.Enemies,
		st.CameraX, st.CameraY)
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}

// World 返回场景的关卡世界
func (s *GameScene) World() *World {
	return s.world
}

// SaveOnExit 退出或被替换时保存偏好设置
func (s *GameScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	if err := s.settings.Save(); err != nil {
		log.Warn("[GameScene] failed to save settings on exit", "err", err)
		return false
	}
	return true
}
