package components

import "github.com/decker502/fluffy/pkg/utils"

// CollisionComponent 定义实体的碰撞盒尺寸
// 碰撞盒左上角与 PositionComponent 重合
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}

// Box 返回实体在世界坐标中的碰撞盒
func (c *CollisionComponent) Box(pos *PositionComponent) utils.Rect {
	return utils.NewRect(pos.X, pos.Y, c.Width, c.Height)
}
