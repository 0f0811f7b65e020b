package systems

import (
	"github.com/charmbracelet/log"

	"github.com/decker502/fluffy/pkg/components"
	"github.com/decker502/fluffy/pkg/ecs"
)

// AnimationSystem 推进所有实体当前状态的帧动画
//
// 每个实体只推进 AnimationSetComponent.Current 指向的那一段；
// Frozen 的集合（例如播放完毕的死亡动画）保持不动。
// 角色的弓动画只在可见时推进。
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

// Update 更新所有动画实体的帧
func (s *AnimationSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.AnimationSetComponent](s.entityManager)

	for _, id := range entities {
		set, ok := ecs.GetComponent[*components.AnimationSetComponent](s.entityManager, id)
		if !ok || set.Frozen {
			continue
		}

		anim := set.Active()
		if anim == nil {
			continue
		}

		wasFinished := anim.IsFinished
		anim.Update(deltaTime)
		if !wasFinished && anim.IsFinished {
			log.Debug("[AnimationSystem] animation finished", "entity", id, "anim", set.Current, "frames", anim.FrameCount())
		}
	}

	characters := ecs.GetEntitiesWith1[*components.CharacterComponent](s.entityManager)
	for _, id := range characters {
		char, ok := ecs.GetComponent[*components.CharacterComponent](s.entityManager, id)
		if !ok || !char.ShowBow || char.Bow == nil {
			continue
		}
		char.Bow.Update(deltaTime)
	}
}
