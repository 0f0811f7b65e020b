package components

import "github.com/decker502/fluffy/pkg/ecs"

// CharacterState 玩家角色的行为状态
type CharacterState int

const (
	CharacterIdle CharacterState = iota
	CharacterWalk
	CharacterJump
	CharacterAttack
	CharacterJumpAttack
)

// String 返回状态名，同时作为 AnimationSetComponent 中的动画键
func (s CharacterState) String() string {
	switch s {
	case CharacterWalk:
		return "walk"
	case CharacterJump:
		return "jump"
	case CharacterAttack:
		return "attack"
	case CharacterJumpAttack:
		return "jump_attack"
	default:
		return "idle"
	}
}

// CharacterComponent 玩家角色的状态数据
//
// 位置、速度、碰撞盒与落地标记分别存放在
// PositionComponent / VelocityComponent / CollisionComponent / BodyComponent 中。
// 各状态动画存放在 AnimationSetComponent，键为 CharacterState.String()。
type CharacterComponent struct {
	State  CharacterState
	Facing Direction

	// 射击计时器独立于显示状态运行
	IsShooting    bool
	ShootTimer    float64
	ShootDuration float64

	// BowAngle 最近一次成功射击的瞄准角（弧度）
	BowAngle float64
	ShowBow  bool
	Bow      *Animation

	// Arrows 角色发射的、仍存活的箭矢实体
	Arrows []ecs.EntityID

	// CameraOffsetX/Y 由摄像机写入，用于把鼠标屏幕坐标换算到世界坐标
	CameraOffsetX, CameraOffsetY float64
}

// IsAirborne 判断当前状态是否属于空中状态
func (c *CharacterComponent) IsAirborne() bool {
	return c.State == CharacterJump || c.State == CharacterJumpAttack
}

// SetBowVisibility 显式设置弓是否可见
func (c *CharacterComponent) SetBowVisibility(visible bool) {
	c.ShowBow = visible
}

// ToggleBow 切换弓的可见性
func (c *CharacterComponent) ToggleBow() {
	c.ShowBow = !c.ShowBow
}

// SetShootDuration 修改射击姿态持续时间（秒）
func (c *CharacterComponent) SetShootDuration(duration float64) {
	c.ShootDuration = duration
}

// RemoveArrow 从角色持有的箭矢列表中移除指定实体，保持其余顺序不变
func (c *CharacterComponent) RemoveArrow(id ecs.EntityID) {
	kept := c.Arrows[:0]
	for _, arrowID := range c.Arrows {
		if arrowID != id {
			kept = append(kept, arrowID)
		}
	}
	c.Arrows = kept
}
