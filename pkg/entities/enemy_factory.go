package entities

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/decker502/fluffy/pkg/components"
	"github.com/decker502/fluffy/pkg/config"
	"github.com/decker502/fluffy/pkg/ecs"
	"github.com/decker502/fluffy/pkg/render"
)

// NewEnemyEntity 创建飞行敌人实体
// 敌人以 Fly 状态出生，向右飞行，碰到巡逻边界时掉头
//
// 参数:
//   - em: 实体管理器
//   - assets: 贴图来源
//   - cfg: 敌人配置
//   - spawnX, spawnY: 出生点（碰撞盒左上角，世界坐标）
//   - patrolMaxX: 巡逻区域右边界（通常为屏幕宽度）
//
// 返回:
//   - ecs.EntityID: 创建的敌人实体ID，如果失败返回 0
//   - error: 缺少飞行动画帧时返回错误
func NewEnemyEntity(em *ecs.EntityManager, assets AssetSource, cfg config.EnemyConfig, spawnX, spawnY, patrolMaxX float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if assets == nil {
		return 0, fmt.Errorf("asset source cannot be nil")
	}

	flyFrames := assets.Frames(AssetEnemyFly)
	if len(flyFrames) == 0 || flyFrames[0] == nil {
		return 0, fmt.Errorf("enemy has no %s frames", AssetEnemyFly)
	}
	frameW, frameH := render.Size(flyFrames[0])

	// 死亡动画只播放一次，播完停在最后一帧
	die := components.NewAnimation(assets.Frames(AssetEnemyDie), cfg.DieFrameTime)
	die.SetLooping(false)

	animations := map[string]*components.Animation{
		components.EnemyFly.String(): components.NewAnimation(flyFrames, cfg.FlyFrameTime),
		components.EnemyHit.String(): components.NewAnimation(assets.Frames(AssetEnemyHit), cfg.HitFrameTime),
		components.EnemyDie.String(): die,
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{X: spawnX, Y: spawnY})
	em.AddComponent(entityID, &components.VelocityComponent{VX: cfg.Speed})
	em.AddComponent(entityID, &components.CollisionComponent{
		Width:  frameW - cfg.BoxInsetX,
		Height: frameH,
	})
	em.AddComponent(entityID, components.NewAnimationSet(components.EnemyFly.String(), animations))
	em.AddComponent(entityID, &components.EnemyComponent{
		State:       components.EnemyFly,
		Lives:       cfg.Lives,
		ResetLives:  cfg.ResetLives,
		Speed:       cfg.Speed,
		Facing:      components.DirectionRight,
		StoredVX:    cfg.Speed,
		HitDuration: cfg.HitDuration(),
		DieDuration: cfg.DieDuration(),
		SpawnX:      spawnX,
		SpawnY:      spawnY,
		PatrolMinX:  0,
		PatrolMaxX:  patrolMaxX,
	})

	log.Debug("[EnemyFactory] enemy created", "entity", entityID, "x", spawnX, "y", spawnY, "lives", cfg.Lives)

	return entityID, nil
}
