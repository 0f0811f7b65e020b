package systems

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/decker502/fluffy/pkg/components"
	"github.com/decker502/fluffy/pkg/config"
	"github.com/decker502/fluffy/pkg/ecs"
	"github.com/decker502/fluffy/pkg/entities"
	"github.com/decker502/fluffy/pkg/input"
	"github.com/decker502/fluffy/pkg/render"
	"github.com/decker502/fluffy/pkg/utils"
)

// CharacterSystem 处理玩家角色的输入、状态切换与物理积分
//
// 每帧顺序：射击计时 → 水平移动 → 跳跃 → 射击 → 重力与位置积分 → 边界约束。
// 落地标记在积分前清除，由地面约束或瓦片碰撞重新置位。
type CharacterSystem struct {
	entityManager *ecs.EntityManager
	input         input.Source
	cfg           config.PlayerConfig

	arrowImage render.Image

	// 世界边界
	worldWidth  float64
	worldBottom float64
}

// NewCharacterSystem 创建角色系统
//
// 参数:
//   - em: 实体管理器
//   - src: 输入来源
//   - cfg: 玩家参数
//   - arrowImage: 箭矢贴图
//   - worldWidth: 世界宽度（角色水平方向的活动范围）
//   - worldBottom: 地面 Y 坐标
func NewCharacterSystem(em *ecs.EntityManager, src input.Source, cfg config.PlayerConfig, arrowImage render.Image, worldWidth, worldBottom float64) *CharacterSystem {
	if src == nil {
		src = input.None{}
	}
	return &CharacterSystem{
		entityManager: em,
		input:         src,
		cfg:           cfg,
		arrowImage:    arrowImage,
		worldWidth:    worldWidth,
		worldBottom:   worldBottom,
	}
}

// characterParts 角色实体的组件集合
type characterParts struct {
	char *components.CharacterComponent
	pos  *components.PositionComponent
	vel  *components.VelocityComponent
	col  *components.CollisionComponent
	body *components.BodyComponent
	anim *components.AnimationSetComponent
}

func (s *CharacterSystem) parts(id ecs.EntityID) (characterParts, bool) {
	var p characterParts
	var ok bool
	if p.char, ok = ecs.GetComponent[*components.CharacterComponent](s.entityManager, id); !ok {
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
	if p.body, ok = ecs.GetComponent[*components.BodyComponent](s.entityManager, id); !ok {
		return p, false
	}
	// 动画集合可选
	p.anim, _ = ecs.GetComponent[*components.AnimationSetComponent](s.entityManager, id)
	return p, true
}

// Update 处理所有角色本帧的输入与物理
func (s *CharacterSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.CharacterComponent](s.entityManager) {
		p, ok := s.parts(id)
		if !ok {
			continue
		}
		s.handleInput(id, p, deltaTime)
		s.integrate(p, deltaTime)
		s.syncAnimation(p)
	}
}

// handleInput 根据输入切换状态并设置速度
func (s *CharacterSystem) handleInput(id ecs.EntityID, p characterParts, dt float64) {
	char, vel, body := p.char, p.vel, p.body

	if char.IsShooting {
		char.ShootTimer += dt
		if char.ShootTimer >= char.ShootDuration {
			char.IsShooting = false
			char.ShootTimer = 0
			char.ShowBow = false
			if body.OnGround {
				char.State = components.CharacterIdle
			} else {
				char.State = components.CharacterJump
			}
		}
	}

	switch {
	case s.input.IsKeyDown(input.KeyLeft):
		vel.VX = -s.cfg.Speed
		char.Facing = components.DirectionLeft
		if body.OnGround && !char.IsShooting {
			char.State = components.CharacterWalk
		}
	case s.input.IsKeyDown(input.KeyRight):
		vel.VX = s.cfg.Speed
		char.Facing = components.DirectionRight
		if body.OnGround && !char.IsShooting {
			char.State = components.CharacterWalk
		}
	default:
		vel.VX = 0
		if body.OnGround && !char.IsShooting {
			char.State = components.CharacterIdle
		}
	}

	if s.input.IsKeyPressed(input.KeyJump) && body.OnGround {
		vel.VY = -s.cfg.JumpPower
		body.OnGround = false
		body.IsJumping = true
		if !char.IsShooting {
			char.State = components.CharacterJump
		}
	}

	if s.input.IsMouseButtonPressed(input.MouseButtonLeft) {
		mx, my := s.input.MousePosition()
		if s.Shoot(id, mx+char.CameraOffsetX, my+char.CameraOffsetY) {
			if body.OnGround {
				char.State = components.CharacterAttack
			} else {
				char.State = components.CharacterJumpAttack
			}
		}
	}
}

// integrate 重力与位置积分，然后应用地面和水平边界
func (s *CharacterSystem) integrate(p characterParts, dt float64) {
	char, pos, vel, col, body := p.char, p.pos, p.vel, p.col, p.body

	vel.VY += s.cfg.Gravity * dt
	pos.X += vel.VX * dt
	pos.Y += vel.VY * dt

	body.OnGround = false

	if pos.Y+col.Height >= s.worldBottom {
		pos.Y = s.worldBottom - col.Height
		vel.VY = 0
		body.OnGround = true
		body.IsJumping = false
		switch char.State {
		case components.CharacterJump:
			char.State = components.CharacterIdle
		case components.CharacterJumpAttack:
			char.State = components.CharacterAttack
		}
	}

	maxX := math.Max(0, s.worldWidth-col.Width)
	pos.X = utils.Clamp(pos.X, 0, maxX)
}

// syncAnimation 让动画集合指向当前状态
func (s *CharacterSystem) syncAnimation(p characterParts) {
	if p.anim == nil {
		return
	}
	name := p.char.State.String()
	if p.anim.Current != name {
		if next := p.anim.Get(name); next != nil {
			next.Reset()
		}
		p.anim.Play(name)
	}
}

// MuzzlePoint 返回箭矢出射点（碰撞盒中心加上朝向相关的偏移）
func (s *CharacterSystem) MuzzlePoint(id ecs.EntityID) (float64, float64, bool) {
	p, ok := s.parts(id)
	if !ok {
		return 0, 0, false
	}
	cx, cy := p.col.Box(p.pos).Center()
	off := s.cfg.MuzzleOffsetRight
	if p.char.Facing == components.DirectionLeft {
		off = s.cfg.MuzzleOffsetLeft
	}
	return cx + off.X, cy + off.Y, true
}

// canShoot 检查瞄准角是否在朝向允许的 ±90° 扇区内
// 朝右允许 [-π/2, π/2]，朝左允许 [π/2, π] ∪ [-π, -π/2]
func canShoot(facing components.Direction, angle float64) bool {
	if facing == components.DirectionLeft {
		return angle >= math.Pi/2 || angle <= -math.Pi/2
	}
	return angle >= -math.Pi/2 && angle <= math.Pi/2
}

// Shoot 朝世界坐标 (targetX, targetY) 射出一支箭
//
// 瞄准方向落在身后扇区或为零向量时拒绝：不改变任何状态，不生成箭矢。
// 成功时进入射击姿态并把新箭加入角色的箭矢列表。
//
// 返回:
//   - bool: 是否成功射出
func (s *CharacterSystem) Shoot(id ecs.EntityID, targetX, targetY float64) bool {
	p, ok := s.parts(id)
	if !ok {
		return false
	}
	startX, startY, _ := s.MuzzlePoint(id)

	dirX, dirY, ok := utils.Normalize(targetX-startX, targetY-startY)
	if !ok {
		return false
	}
	angle := utils.Angle(dirX, dirY)
	if !canShoot(p.char.Facing, angle) {
		log.Debug("[CharacterSystem] shot rejected", "entity", id, "facing", p.char.Facing, "angle", angle)
		return false
	}

	char := p.char
	char.IsShooting = true
	char.ShowBow = true
	char.ShootTimer = 0
	char.BowAngle = angle
	if char.Bow != nil {
		char.Bow.Reset()
	}

	arrowID := entities.NewArrowEntity(s.entityManager, s.arrowImage, id, startX, startY,
		dirX*s.cfg.ArrowSpeed, dirY*s.cfg.ArrowSpeed)
	char.Arrows = append(char.Arrows, arrowID)

	log.Debug("[CharacterSystem] arrow fired", "entity", id, "arrow", arrowID, "angle", angle)
	return true
}

// BowPoint 返回弓的绘制中心（世界坐标）
func (s *CharacterSystem) BowPoint(id ecs.EntityID) (float64, float64, bool) {
	p, ok := s.parts(id)
	if !ok {
		return 0, 0, false
	}
	x, y := bowPoint(s.cfg, p.char.Facing, p.col.Box(p.pos))
	return x, y, true
}

func bowPoint(cfg config.PlayerConfig, facing components.Direction, box utils.Rect) (float64, float64) {
	cx, cy := box.Center()
	off := cfg.BowOffsetRight
	if facing == components.DirectionLeft {
		off = cfg.BowOffsetLeft
	}
	return cx + off.X, cy + off.Y
}
