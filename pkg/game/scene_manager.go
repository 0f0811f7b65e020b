package game

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 用于创建指定ID的关卡场景，避免 game 与 scenes 之间的循环依赖
type SceneFactory func(levelID string) (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	currentLevel string
	sceneFactory SceneFactory // 场景工厂函数，用于创建新场景

	// pendingLevel 非空时在下一次 Update 开始前切换关卡
	// 场景在自己的 Update 中请求重开，不能立即替换自己
	pendingLevel string
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo or LoadLevel to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
// The previous scene gets a chance to save through Saveable.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if saveable, ok := sm.currentScene.(Saveable); ok && sm.currentScene != scene {
		saveable.SaveOnExit()
	}
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// CurrentLevel 返回当前关卡 ID
func (sm *SceneManager) CurrentLevel() string {
	return sm.currentLevel
}

// LoadLevel 立即加载指定ID的关卡场景
// 创建失败时保留当前场景并返回错误
func (sm *SceneManager) LoadLevel(levelID string) error {
	log.Info("[SceneManager] loading level", "level", levelID)

	if sm.sceneFactory == nil {
		return fmt.Errorf("scene factory not set")
	}

	newScene, err := sm.sceneFactory(levelID)
	if err != nil {
		return fmt.Errorf("failed to create scene for level %s: %w", levelID, err)
	}
	if newScene == nil {
		return fmt.Errorf("scene factory returned nil for level %s", levelID)
	}

	sm.SwitchTo(newScene)
	sm.currentLevel = levelID
	log.Debug("[SceneManager] switched to level", "level", levelID)
	return nil
}

// RequestRestart 请求在下一帧开始时重新加载当前关卡
func (sm *SceneManager) RequestRestart() {
	sm.pendingLevel = sm.currentLevel
}

// Update 先处理挂起的关卡切换，再更新当前场景
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.pendingLevel != "" {
		level := sm.pendingLevel
		sm.pendingLevel = ""
		if err := sm.LoadLevel(level); err != nil {
			log.Error("[SceneManager] restart failed", "level", level, "err", err)
		}
	}

	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Shutdown 在程序退出前让当前场景保存
func (sm *SceneManager) Shutdown() {
	if saveable, ok := sm.currentScene.(Saveable); ok {
		saveable.SaveOnExit()
	}
}
