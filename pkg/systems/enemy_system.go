package systems

import (
	"github.com/charmbracelet/log"

	"github.com/decker502/fluffy/pkg/components"
	"github.com/decker502/fluffy/pkg/ecs"
	"github.com/decker502/fluffy/pkg/utils"
)

// EnemySystem 驱动飞行敌人的 Fly / Hit / Die 状态机
//
// Fly:  水平飞行，碰到巡逻边界掉头
// Hit:  速度清零并暂存，计时结束后恢复飞行
// Die:  终止状态，计时结束后动画冻结并判定死亡
type EnemySystem struct {
	entityManager *ecs.EntityManager
}

// NewEnemySystem 创建敌人系统
func NewEnemySystem(em *ecs.EntityManager) *EnemySystem {
	return &EnemySystem{entityManager: em}
}

// enemyParts 敌人实体的组件集合
type enemyParts struct {
	enemy *components.EnemyComponent
	pos   *components.PositionComponent
	vel   *components.VelocityComponent
	col   *components.CollisionComponent
	anim  *components.AnimationSetComponent
}

func (s *EnemySystem) parts(id ecs.EntityID) (enemyParts, bool) {
	var p enemyParts
	var ok bool
	if p.enemy, ok = ecs.GetComponent[*components.EnemyComponent](s.entityManager, id); !ok {
		return p, false
	}
	if p.pos, ok = ecs.GetComponent[*components.PositionComponent](s.entityManager, id); !ok {
		return p, false
	}
	if p.vel, ok = ecs.GetComponent[*components.VelocityComponent](s.entityManager, id); !ok {
		return p, false
	}
	if p.col, ok = ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); !ok {
		return p, false
	}
	if p.anim, ok = ecs.GetComponent[*components.AnimationSetComponent](s.entityManager, id); !ok {
		return p, false
	}
	return p, true
}

// Enemies 返回所有敌人实体（按ID升序）
func (s *EnemySystem) Enemies() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager)
}

// Update 推进所有敌人的状态机
func (s *EnemySystem) Update(deltaTime float64) {
	for _, id := range s.Enemies() {
		p, ok := s.parts(id)
		if !ok {
			continue
		}

		switch p.enemy.State {
		case components.EnemyFly:
			s.updateFly(p, deltaTime)
		case components.EnemyHit:
			s.updateHit(id, p, deltaTime)
		case components.EnemyDie:
			s.updateDie(id, p, deltaTime)
		}
	}
}

func (s *EnemySystem) updateFly(p enemyParts, dt float64) {
	e, pos, vel := p.enemy, p.pos, p.vel

	if vel.VX > 0 {
		e.Facing = components.DirectionRight
	} else if vel.VX < 0 {
		e.Facing = components.DirectionLeft
	}

	pos.X += vel.VX * dt

	if pos.X <= e.PatrolMinX {
		pos.X = e.PatrolMinX
		vel.VX = e.Speed
		e.Facing = components.DirectionRight
	} else if pos.X+p.col.Width >= e.PatrolMaxX {
		pos.X = e.PatrolMaxX - p.col.Width
		vel.VX = -e.Speed
		e.Facing = components.DirectionLeft
	}
}

func (s *EnemySystem) updateHit(id ecs.EntityID, p enemyParts, dt float64) {
	e := p.enemy
	e.HitTimer += dt
	if e.HitTimer < e.HitDuration {
		return
	}

	e.State = components.EnemyFly
	e.HitTimer = 0
	p.vel.VX, p.vel.VY = e.StoredVX, e.StoredVY
	if hit := p.anim.Get(components.EnemyHit.String()); hit != nil {
		hit.Reset()
	}
	p.anim.Play(components.EnemyFly.String())

	log.Debug("[EnemySystem] recovered from hit", "entity", id, "lives", e.Lives)
}

func (s *EnemySystem) updateDie(id ecs.EntityID, p enemyParts, dt float64) {
	e := p.enemy
	e.DieTimer += dt
	if e.DieTimer >= e.DieDuration && !p.anim.Frozen {
		p.anim.Frozen = true
		log.Debug("[EnemySystem] enemy dead", "entity", id)
	}
}

// Hit 敌人被命中
//
// Die 状态下无效；仍有生命时扣一条命并进入 Hit；
// 生命为 0 时进入 Die。
func (s *EnemySystem) Hit(id ecs.EntityID) {
	p, ok := s.parts(id)
	if !ok {
		return
	}
	e := p.enemy

	if e.State == components.EnemyDie {
		return
	}

	if e.Lives == 0 {
		e.State = components.EnemyDie
		p.vel.VX, p.vel.VY = 0, 0
		e.StoredVX, e.StoredVY = 0, 0
		e.DieTimer = 0
		s.playFromStart(p.anim, components.EnemyDie.String())
		log.Debug("[EnemySystem] enemy dying", "entity", id)
		return
	}

	e.Lives--
	e.State = components.EnemyHit
	e.StoredVX, e.StoredVY = p.vel.VX, p.vel.VY
	p.vel.VX, p.vel.VY = 0, 0
	e.HitTimer = 0
	s.playFromStart(p.anim, components.EnemyHit.String())
	log.Debug("[EnemySystem] enemy hit", "entity", id, "lives", e.Lives)
}

func (s *EnemySystem) playFromStart(set *components.AnimationSetComponent, name string) {
	if anim := set.Get(name); anim != nil {
		anim.Reset()
	}
	set.Play(name)
}

// state 返回敌人状态；实体不存在时 ok=false
func (s *EnemySystem) state(id ecs.EntityID) (*components.EnemyComponent, bool) {
	return ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
}

// CanBeHit 只有飞行中的敌人可以被命中
func (s *EnemySystem) CanBeHit(id ecs.EntityID) bool {
	e, ok := s.state(id)
	return ok && e.State == components.EnemyFly
}

// IsDead 死亡动画计时结束
func (s *EnemySystem) IsDead(id ecs.EntityID) bool {
	e, ok := s.state(id)
	return ok && e.State == components.EnemyDie && e.DieTimer >= e.DieDuration
}

// IsDying 处于 Die 状态（无论计时是否结束）
func (s *EnemySystem) IsDying(id ecs.EntityID) bool {
	e, ok := s.state(id)
	return ok && e.State == components.EnemyDie
}

// IsHit 处于 Hit 状态
func (s *EnemySystem) IsHit(id ecs.EntityID) bool {
	e, ok := s.state(id)
	return ok && e.State == components.EnemyHit
}

// ResetPosition 把敌人送回出生点并恢复飞行
func (s *EnemySystem) ResetPosition(id ecs.EntityID) {
	p, ok := s.parts(id)
	if !ok {
		return
	}
	e := p.enemy

	p.pos.X, p.pos.Y = e.SpawnX, e.SpawnY
	p.vel.VX, p.vel.VY = e.Speed, 0
	e.StoredVX, e.StoredVY = e.Speed, 0
	e.Facing = components.DirectionRight
	e.State = components.EnemyFly
	e.Lives = e.ResetLives
	e.HitTimer = 0
	e.DieTimer = 0

	p.anim.Frozen = false
	for _, anim := range p.anim.Animations {
		anim.Reset()
	}
	p.anim.Play(components.EnemyFly.String())
}

// ReverseDirection 反转水平速度与朝向，并同步暂存速度
func (s *EnemySystem) ReverseDirection(id ecs.EntityID) {
	p, ok := s.parts(id)
	if !ok {
		return
	}
	e := p.enemy

	p.vel.VX = -p.vel.VX
	if p.vel.VX > 0 {
		e.Facing = components.DirectionRight
	} else {
		e.Facing = components.DirectionLeft
	}
	e.StoredVX, e.StoredVY = p.vel.VX, p.vel.VY
}

// IsAtEdge 碰撞盒是否触及巡逻边界
func (s *EnemySystem) IsAtEdge(id ecs.EntityID) bool {
	p, ok := s.parts(id)
	if !ok {
		return false
	}
	return p.pos.X <= p.enemy.PatrolMinX || p.pos.X+p.col.Width >= p.enemy.PatrolMaxX
}

// SetDebug 开关敌人所有动画的调试描边
func (s *EnemySystem) SetDebug(id ecs.EntityID, enabled bool) {
	p, ok := s.parts(id)
	if !ok {
		return
	}
	p.enemy.Debug = enabled
	p.anim.SetDebug(enabled)
}

// SyncCollisionToAnimation 把碰撞盒尺寸设为当前状态动画的最大帧尺寸
// 左上角保持不变
func (s *EnemySystem) SyncCollisionToAnimation(id ecs.EntityID) {
	p, ok := s.parts(id)
	if !ok {
		return
	}
	anim := p.anim.Active()
	if anim == nil {
		return
	}
	p.col.Width, p.col.Height = anim.MaxFrameSize()
}

// AnimationInfo 当前动画的播放信息
type AnimationInfo struct {
	Frame      int
	FrameCount int
	MaxWidth   float64
	MaxHeight  float64
}

// CurrentAnimationInfo 返回当前状态动画的帧号、帧数与最大帧尺寸
func (s *EnemySystem) CurrentAnimationInfo(id ecs.EntityID) (AnimationInfo, bool) {
	p, ok := s.parts(id)
	if !ok {
		return AnimationInfo{}, false
	}
	anim := p.anim.Active()
	if anim == nil {
		return AnimationInfo{}, false
	}
	w, h := anim.MaxFrameSize()
	return AnimationInfo{
		Frame:      anim.CurrentFrame,
		FrameCount: anim.FrameCount(),
		MaxWidth:   w,
		MaxHeight:  h,
	}, true
}

// Box 返回敌人碰撞盒
func (s *EnemySystem) Box(id ecs.EntityID) (utils.Rect, bool) {
	p, ok := s.parts(id)
	if !ok {
		return utils.Rect{}, false
	}
	return p.col.Box(p.pos), true
}
