package scenes

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/decker502/fluffy/pkg/config"
	"github.com/decker502/fluffy/pkg/ecs"
	"github.com/decker502/fluffy/pkg/entities"
	"github.com/decker502/fluffy/pkg/input"
	"github.com/decker502/fluffy/pkg/level"
	"github.com/decker502/fluffy/pkg/render"
	"github.com/decker502/fluffy/pkg/systems"
)

// World 一个关卡的全部实体与系统
//
// 与 Ebitengine 无关：输入来自 input.Source，绘制交给 render.Renderer，
// 因此可以在测试中逐帧驱动。
type World struct {
	entityManager *ecs.EntityManager
	tilemap       *level.Tilemap

	characterSystem *systems.CharacterSystem
	arrowSystem     *systems.ArrowSystem
	enemySystem     *systems.EnemySystem
	collisionSystem *systems.TileCollisionSystem
	animationSystem *systems.AnimationSystem
	cameraSystem    *systems.CameraSystem
	renderSystem    *systems.RenderSystem

	player ecs.EntityID
}

// WorldStats 调试信息
type WorldStats struct {
	Entities int
	Arrows   int
	Enemies  int
	CameraX  float64
	CameraY  float64
}

// NewWorld 根据配置、关卡和贴图表创建关卡世界
//
// 参数:
//   - cfg: 已验证的游戏配置
//   - lvl: 已验证的关卡配置
//   - assets: 贴图来源（需包含 entities.RequiredAssetGroups 的全部分组）
//   - src: 输入来源，nil 表示无人操作
//
// 返回:
//   - error: 缺少角色或敌人贴图时返回错误
func NewWorld(cfg *config.GameConfig, lvl *config.LevelConfig, assets entities.AssetSource, src input.Source) (*World, error) {
	screenW := float64(cfg.Screen.Width)
	screenH := float64(cfg.Screen.Height)

	w := &World{
		entityManager: ecs.NewEntityManager(),
		tilemap:       level.NewTilemap(lvl, screenH),
	}
	em := w.entityManager
	worldWidth := w.tilemap.Width()

	w.characterSystem = systems.NewCharacterSystem(em, src, cfg.Player, assets.Image(entities.AssetArrow), worldWidth, screenH)
	w.arrowSystem = systems.NewArrowSystem(em, cfg.Arrow, worldWidth, screenH)
	w.enemySystem = systems.NewEnemySystem(em)
	w.collisionSystem = systems.NewTileCollisionSystem(em, w.tilemap, w.arrowSystem, w.enemySystem, cfg.Arrow)
	w.animationSystem = systems.NewAnimationSystem(em)
	w.cameraSystem = systems.NewCameraSystem(em, worldWidth, w.tilemap.Height(), screenW, screenH, cfg.Camera.Smoothing)
	w.renderSystem = systems.NewRenderSystem(em, w.tilemap, assets.Image(entities.AssetTileGrass), w.cameraSystem, cfg.Player)

	player, err := entities.NewCharacterEntity(em, assets, cfg, lvl.Player.X, lvl.Player.Y)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	w.player = player

	// 敌人只在屏幕宽度内往返
	for i, spawn := range lvl.Enemies {
		if _, err := entities.NewEnemyEntity(em, assets, cfg.Enemy, spawn.X, spawn.Y, screenW); err != nil {
			return nil, fmt.Errorf("failed to create enemy %d: %w", i, err)
		}
	}

	log.Info("[World] level ready",
		"level", lvl.Name,
		"tiles", w.tilemap.SolidCount(),
		"enemies", len(lvl.Enemies),
		"size", fmt.Sprintf("%.0fx%.0f", worldWidth, w.tilemap.Height()))

	return w, nil
}

// Step 推进一帧
//
// 顺序固定：角色 → 箭矢 → 敌人 → 碰撞（含清理标记）→ 删除实体 → 动画 → 摄像机。
func (w *World) Step(dt float64) {
	w.characterSystem.Update(dt)
	w.arrowSystem.Update(dt)
	w.enemySystem.Update(dt)
	w.collisionSystem.Update()

	if removed := w.entityManager.RemoveMarkedEntities(); removed > 0 {
		log.Debug("[World] removed entities", "count", removed)
	}

	w.animationSystem.Update(dt)
	w.cameraSystem.Update(dt)
}

// Draw 绘制一帧
func (w *World) Draw(r render.Renderer) {
	w.renderSystem.Draw(r)
}

// SetDebug 开关碰撞盒与瓦片描边
func (w *World) SetDebug(enabled bool) {
	w.renderSystem.SetDebug(enabled)
}

// Debug 返回描边是否开启
func (w *World) Debug() bool {
	return w.renderSystem.Debug()
}

// Player 返回玩家实体
func (w *World) Player() ecs.EntityID {
	return w.player
}

// EntityManager 返回实体管理器
func (w *World) EntityManager() *ecs.EntityManager {
	return w.entityManager
}

// Tilemap 返回关卡网格
func (w *World) Tilemap() *level.Tilemap {
	return w.tilemap
}

// Stats 返回当前帧的调试统计
func (w *World) Stats() WorldStats {
	camX, camY := w.cameraSystem.Offset()
	return WorldStats{
		Entities: w.entityManager.EntityCount(),
		Arrows:   len(w.arrowSystem.Arrows()),
		Enemies:  len(w.enemySystem.Enemies()),
		CameraX:  camX,
		CameraY:  camY,
	}
}
