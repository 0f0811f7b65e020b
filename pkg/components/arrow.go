package components

import (
	"github.com/decker502/fluffy/pkg/ecs"
	"github.com/decker502/fluffy/pkg/render"
)

// ArrowComponent 箭矢的状态
//
// Stuck 之后速度归零，位置不再改变；
// StuckTimer 达到寿命后 ShouldRemove 置位，由帧驱动统一清除。
type ArrowComponent struct {
	Stuck        bool
	StuckAngle   float64 // 插入时的飞行角度（弧度）
	StuckTimer   float64
	ShouldRemove bool

	// Owner 发射者实体（0 表示无主）
	Owner ecs.EntityID

	Image render.Image
}
