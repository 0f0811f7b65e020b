package components

// PositionComponent 实体位置（碰撞盒左上角，世界坐标）
type PositionComponent struct {
	X, Y float64
}

// VelocityComponent 实体速度（像素/秒，Y 轴向下为正）
type VelocityComponent struct {
	VX, VY float64
}

// Direction 实体朝向
type Direction int

const (
	DirectionRight Direction = iota
	DirectionLeft
)

// String 返回朝向名称
func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// BodyComponent 受瓦片碰撞约束的实体
// OnGround 只由碰撞解析（瓦片顶部或地面）置为 true
type BodyComponent struct {
	OnGround  bool
	IsJumping bool
}
