package entities

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/decker502/fluffy/pkg/components"
	"github.com/decker502/fluffy/pkg/config"
	"github.com/decker502/fluffy/pkg/ecs"
	"github.com/decker502/fluffy/pkg/render"
)

// NewCharacterEntity 创建玩家角色实体
//
// 每个状态对应一段动画，按 CharacterState.String() 存入 AnimationSetComponent；
// JumpAttack 与 Attack 使用同一组帧，但各自维护播放进度。
// 碰撞盒宽度为首帧宽度减去 BoxInsetX，高度为首帧高度。
//
// 参数:
//   - em: 实体管理器
//   - assets: 贴图来源
//   - cfg: 游戏配置
//   - spawnX, spawnY: 出生点（碰撞盒左上角，世界坐标）
//
// 返回:
//   - ecs.EntityID: 创建的角色实体ID，如果失败返回 0
//   - error: 缺少待机动画帧时返回错误
func NewCharacterEntity(em *ecs.EntityManager, assets AssetSource, cfg *config.GameConfig, spawnX, spawnY float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if assets == nil {
		return 0, fmt.Errorf("asset source cannot be nil")
	}

	idleFrames := assets.Frames(AssetCharacterIdle)
	if len(idleFrames) == 0 || idleFrames[0] == nil {
		return 0, fmt.Errorf("character has no %s frames", AssetCharacterIdle)
	}
	frameW, frameH := render.Size(idleFrames[0])

	timings := cfg.Animations
	attackFrames := assets.Frames(AssetCharacterAttack)
	animations := map[string]*components.Animation{
		components.CharacterIdle.String():       components.NewAnimation(idleFrames, timings.Idle),
		components.CharacterWalk.String():       components.NewAnimation(assets.Frames(AssetCharacterWalk), timings.Walk),
		components.CharacterJump.String():       components.NewAnimation(assets.Frames(AssetCharacterJump), timings.Jump),
		components.CharacterAttack.String():     components.NewAnimation(attackFrames, timings.Attack),
		components.CharacterJumpAttack.String(): components.NewAnimation(attackFrames, timings.Attack),
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.PositionComponent{X: spawnX, Y: spawnY})
	em.AddComponent(entityID, &components.VelocityComponent{})
	em.AddComponent(entityID, &components.CollisionComponent{
		Width:  frameW - cfg.Player.BoxInsetX,
		Height: frameH,
	})
	em.AddComponent(entityID, &components.BodyComponent{OnGround: true})
	em.AddComponent(entityID, components.NewAnimationSet(components.CharacterIdle.String(), animations))
	em.AddComponent(entityID, &components.CharacterComponent{
		State:         components.CharacterIdle,
		Facing:        components.DirectionRight,
		ShootDuration: cfg.Player.ShootDuration,
		Bow:           components.NewAnimation(assets.Frames(AssetBow), timings.Bow),
	})

	log.Debug("[CharacterFactory] character created", "entity", entityID, "x", spawnX, "y", spawnY,
		"box", fmt.Sprintf("%.0fx%.0f", frameW-cfg.Player.BoxInsetX, frameH))

	return entityID, nil
}
