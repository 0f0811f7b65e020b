package systems

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/decker502/fluffy/pkg/components"
	"github.com/decker502/fluffy/pkg/config"
	"github.com/decker502/fluffy/pkg/ecs"
	"github.com/decker502/fluffy/pkg/utils"
)

// ArrowSystem 处理箭矢的飞行、插入与过期
//
// 飞行中的箭矢受重力影响；插入（Stuck）后速度归零、位置冻结，
// 只推进插入计时器，到期后置 ShouldRemove，由碰撞系统统一清理。
type ArrowSystem struct {
	entityManager *ecs.EntityManager
	cfg           config.ArrowConfig

	// 世界范围，飞出左右或下方边界超过 OffWorldMargin 的箭矢被移除
	worldWidth  float64
	worldBottom float64
}

// NewArrowSystem 创建箭矢系统
func NewArrowSystem(em *ecs.EntityManager, cfg config.ArrowConfig, worldWidth, worldBottom float64) *ArrowSystem {
	return &ArrowSystem{
		entityManager: em,
		cfg:           cfg,
		worldWidth:    worldWidth,
		worldBottom:   worldBottom,
	}
}

// arrowParts 箭矢实体的组件集合
type arrowParts struct {
	arrow *components.ArrowComponent
	pos   *components.PositionComponent
	vel   *components.VelocityComponent
	col   *components.CollisionComponent
}

func (s *ArrowSystem) parts(id ecs.EntityID) (arrowParts, bool) {
	var p arrowParts
	var ok bool
	if p.arrow, ok = ecs.GetComponent[*components.ArrowComponent](s.entityManager, id); !ok {
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
	return p, true
}

// Arrows 返回所有箭矢实体（按ID升序）
func (s *ArrowSystem) Arrows() []ecs.EntityID {
	return ecs.GetEntitiesWith1[*components.ArrowComponent](s.entityManager)
}

// Update 推进所有箭矢
func (s *ArrowSystem) Update(deltaTime float64) {
	for _, id := range s.Arrows() {
		p, ok := s.parts(id)
		if !ok {
			continue
		}

		if p.arrow.Stuck {
			p.arrow.StuckTimer += deltaTime
			if p.arrow.StuckTimer >= s.cfg.StuckLifetime {
				p.arrow.ShouldRemove = true
			}
			continue
		}

		p.vel.VY += s.cfg.Gravity * deltaTime
		p.pos.X += p.vel.VX * deltaTime
		p.pos.Y += p.vel.VY * deltaTime

		if s.isOffWorld(p.pos) {
			p.arrow.ShouldRemove = true
			log.Debug("[ArrowSystem] arrow left the world", "entity", id, "x", p.pos.X, "y", p.pos.Y)
		}
	}
}

// isOffWorld 上方不设界：向上射出的箭会被重力拉回
func (s *ArrowSystem) isOffWorld(pos *components.PositionComponent) bool {
	m := s.cfg.OffWorldMargin
	return pos.X < -m || pos.X > s.worldWidth+m || pos.Y > s.worldBottom+m
}

// FlightAngle 返回箭矢当前的飞行角度
// 插入后为冻结的 StuckAngle，否则为实时速度方向
func FlightAngle(arrow *components.ArrowComponent, vel *components.VelocityComponent) float64 {
	if arrow.Stuck {
		return arrow.StuckAngle
	}
	return utils.Angle(vel.VX, vel.VY)
}

// TipPoint 返回箭尖的世界坐标：碰撞盒中心沿飞行角前移 TipFactor × 宽度
func (s *ArrowSystem) TipPoint(id ecs.EntityID) (float64, float64, bool) {
	p, ok := s.parts(id)
	if !ok {
		return 0, 0, false
	}
	x, y := s.tipPoint(p)
	return x, y, true
}

func (s *ArrowSystem) tipPoint(p arrowParts) (float64, float64) {
	angle := FlightAngle(p.arrow, p.vel)
	cx, cy := p.col.Box(p.pos).Center()
	dist := p.col.Width * s.cfg.TipFactor
	return cx + math.Cos(angle)*dist, cy + math.Sin(angle)*dist
}

// CheckCollisionAndEmbed 检查箭尖是否落在 tile 内
// 命中时沿飞行角再前进 depth，使箭矢看起来插进瓦片，并返回 true。
// 冻结箭矢（Stick）由调用方负责。
func (s *ArrowSystem) CheckCollisionAndEmbed(id ecs.EntityID, tile utils.Rect, depth float64) bool {
	p, ok := s.parts(id)
	if !ok {
		return false
	}

	tipX, tipY := s.tipPoint(p)
	if !tile.Contains(tipX, tipY) {
		return false
	}

	angle := FlightAngle(p.arrow, p.vel)
	p.pos.X += math.Cos(angle) * depth
	p.pos.Y += math.Sin(angle) * depth
	return true
}

// Stick 冻结箭矢：记录当前飞行角，速度归零，计时器设为 timer
// timer 越接近寿命，箭矢消失得越早
func (s *ArrowSystem) Stick(id ecs.EntityID, timer float64) {
	p, ok := s.parts(id)
	if !ok || p.arrow.Stuck {
		return
	}
	p.arrow.StuckAngle = utils.Angle(p.vel.VX, p.vel.VY)
	p.vel.VX, p.vel.VY = 0, 0
	p.arrow.Stuck = true
	p.arrow.StuckTimer = timer
}

// Box 返回箭矢碰撞盒
func (s *ArrowSystem) Box(id ecs.EntityID) (utils.Rect, bool) {
	p, ok := s.parts(id)
	if !ok {
		return utils.Rect{}, false
	}
	return p.col.Box(p.pos), true
}

// IsLive 箭矢存在、未插入且未被标记移除
func (s *ArrowSystem) IsLive(id ecs.EntityID) bool {
	p, ok := s.parts(id)
	return ok && !p.arrow.Stuck && !p.arrow.ShouldRemove
}
