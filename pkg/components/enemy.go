package components

// EnemyState 飞行敌人的状态
type EnemyState int

const (
	EnemyFly EnemyState = iota
	EnemyHit
	EnemyDie
)

// String 返回状态名，同时作为 AnimationSetComponent 中的动画键
func (s EnemyState) String() string {
	switch s {
	case EnemyHit:
		return "hit"
	case EnemyDie:
		return "die"
	default:
		return "fly"
	}
}

// EnemyComponent 飞行敌人的状态数据
//
// Die 为终止状态，进入后不会再离开。
// 受击与死亡计时器独立于动画自身的播放进度。
type EnemyComponent struct {
	State  EnemyState
	Lives  int
	Speed  float64
	Facing Direction

	// ResetLives 重置时恢复的生命数
	ResetLives int

	// 受击期间暂存的速度，恢复 Fly 时还原
	StoredVX, StoredVY float64

	HitTimer    float64
	HitDuration float64
	DieTimer    float64
	DieDuration float64

	// 出生点，ResetPosition 使用
	SpawnX, SpawnY float64

	// PatrolMinX/MaxX 水平巡逻边界（碰到即掉头）
	PatrolMinX, PatrolMaxX float64

	Debug bool
}
