package entities

import (
	"github.com/decker502/fluffy/pkg/components"
	"github.com/decker502/fluffy/pkg/ecs"
	"github.com/decker502/fluffy/pkg/render"
)

// NewArrowEntity 创建箭矢实体
// 箭矢从 (startX, startY) 出发，碰撞盒尺寸等于贴图尺寸
//
// 参数:
//   - em: 实体管理器
//   - img: 箭矢贴图（可以为 nil，此时碰撞盒为 0 尺寸）
//   - owner: 发射者实体ID
//   - startX, startY: 碰撞盒左上角的世界坐标
//   - vx, vy: 初速度（像素/秒）
//
// 返回:
//   - ecs.EntityID: 创建的箭矢实体ID
func NewArrowEntity(em *ecs.EntityManager, img render.Image, owner ecs.EntityID, startX, startY, vx, vy float64) ecs.EntityID {
	w, h := render.Size(img)

	entityID := em.CreateEntity()
	em.AddComponent(entityID, &components.PositionComponent{X: startX, Y: startY})
	em.AddComponent(entityID, &components.VelocityComponent{VX: vx, VY: vy})
	em.AddComponent(entityID, &components.CollisionComponent{Width: w, Height: h})
	em.AddComponent(entityID, &components.ArrowComponent{
		Owner: owner,
		Image: img,
	})

	return entityID
}
