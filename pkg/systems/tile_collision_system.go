package systems

import (
	"github.com/charmbracelet/log"

	"github.com/decker502/fluffy/pkg/components"
	"github.com/decker502/fluffy/pkg/config"
	"github.com/decker502/fluffy/pkg/ecs"
	"github.com/decker502/fluffy/pkg/level"
	"github.com/decker502/fluffy/pkg/utils"
)

// PenetrationAxis 最小穿透方向
type PenetrationAxis int

const (
	PenetrationNone PenetrationAxis = iota
	PenetrationLeft
	PenetrationRight
	PenetrationTop
	PenetrationBottom
)

// String 返回方向名
func (a PenetrationAxis) String() string {
	switch a {
	case PenetrationLeft:
		return "left"
	case PenetrationRight:
		return "right"
	case PenetrationTop:
		return "top"
	case PenetrationBottom:
		return "bottom"
	default:
		return "none"
	}
}

// MinimumPenetration 计算 body 与 tile 在四个方向上的穿透深度，返回最小的方向
//
//	fromLeft   = body.right  - tile.left
//	fromRight  = tile.right  - body.left
//	fromTop    = body.bottom - tile.top
//	fromBottom = tile.bottom - body.top
//
// 深度相同时按 left、right、top、bottom 的顺序取第一个。
// 两者不重叠时返回 PenetrationNone。
func MinimumPenetration(body, tile utils.Rect) (PenetrationAxis, float64) {
	if !body.Overlaps(tile) {
		return PenetrationNone, 0
	}

	depths := [...]struct {
		axis  PenetrationAxis
		depth float64
	}{
		{PenetrationLeft, body.Right() - tile.Left()},
		{PenetrationRight, tile.Right() - body.Left()},
		{PenetrationTop, body.Bottom() - tile.Top()},
		{PenetrationBottom, tile.Bottom() - body.Top()},
	}

	best := depths[0]
	for _, d := range depths[1:] {
		if d.depth < best.depth {
			best = d
		}
	}
	return best.axis, best.depth
}

// TileCollisionSystem 瓦片碰撞解析与每帧的清理
//
// 每帧顺序：
//  1. 箭矢与敌人：每支飞行中的箭与第一个可被命中的重叠敌人结算
//  2. 按行优先遍历实心瓦片：飞行中的箭矢插入第一个命中的瓦片；
//     与瓦片重叠的刚体沿最小穿透方向推出
//  3. 清理：移除已过期的箭矢和已死亡的敌人
type TileCollisionSystem struct {
	entityManager *ecs.EntityManager
	tilemap       *level.Tilemap
	arrows        *ArrowSystem
	enemies       *EnemySystem
	cfg           config.ArrowConfig
}

// NewTileCollisionSystem 创建瓦片碰撞系统
func NewTileCollisionSystem(em *ecs.EntityManager, tm *level.Tilemap, arrows *ArrowSystem, enemies *EnemySystem, cfg config.ArrowConfig) *TileCollisionSystem {
	return &TileCollisionSystem{
		entityManager: em,
		tilemap:       tm,
		arrows:        arrows,
		enemies:       enemies,
		cfg:           cfg,
	}
}

// Update 执行本帧的碰撞解析与清理
func (s *TileCollisionSystem) Update() {
	s.resolveArrowEnemyHits()
	s.resolveTiles()
	s.purge()
}

// resolveArrowEnemyHits 箭矢命中敌人：敌人受击，箭矢以更接近寿命的计时器冻结
func (s *TileCollisionSystem) resolveArrowEnemyHits() {
	enemies := s.enemies.Enemies()
	if len(enemies) == 0 {
		return
	}

	for _, arrowID := range s.arrows.Arrows() {
		if !s.arrows.IsLive(arrowID) {
			continue
		}
		arrowBox, ok := s.arrows.Box(arrowID)
		if !ok {
			continue
		}

		for _, enemyID := range enemies {
			if !s.enemies.CanBeHit(enemyID) {
				continue
			}
			enemyBox, ok := s.enemies.Box(enemyID)
			if !ok || !enemyBox.Overlaps(arrowBox) {
				continue
			}

			s.enemies.Hit(enemyID)
			s.arrows.Stick(arrowID, s.cfg.EnemyHitStuckTimer)
			log.Debug("[TileCollisionSystem] arrow hit enemy", "arrow", arrowID, "enemy", enemyID)
			break
		}
	}
}

// resolveTiles 按行优先顺序处理箭矢插入与刚体推出
func (s *TileCollisionSystem) resolveTiles() {
	if s.tilemap == nil {
		return
	}

	arrows := s.arrows.Arrows()
	bodies := ecs.GetEntitiesWith4[
		*components.BodyComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
		*components.CollisionComponent,
	](s.entityManager)

	s.tilemap.ForEachSolid(func(col, row int, tile utils.Rect) bool {
		for _, arrowID := range arrows {
			if !s.arrows.IsLive(arrowID) {
				continue
			}
			if s.arrows.CheckCollisionAndEmbed(arrowID, tile, s.cfg.EmbedDepth) {
				s.arrows.Stick(arrowID, 0)
				log.Debug("[TileCollisionSystem] arrow stuck", "arrow", arrowID, "col", col, "row", row)
			}
		}

		for _, id := range bodies {
			s.resolveBody(id, tile)
		}
		return true
	})
}

// resolveBody 把刚体沿最小穿透方向推出 tile，并清零该方向的速度
func (s *TileCollisionSystem) resolveBody(id ecs.EntityID, tile utils.Rect) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
	col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	body, _ := ecs.GetComponent[*components.BodyComponent](s.entityManager, id)
	if vel == nil || col == nil || body == nil {
		return
	}

	axis, _ := MinimumPenetration(col.Box(pos), tile)
	switch axis {
	case PenetrationLeft:
		pos.X = tile.Left() - col.Width
		vel.VX = 0
	case PenetrationRight:
		pos.X = tile.Right()
		vel.VX = 0
	case PenetrationTop:
		pos.Y = tile.Top() - col.Height
		vel.VY = 0
		body.OnGround = true
		body.IsJumping = false
	case PenetrationBottom:
		pos.Y = tile.Bottom()
		vel.VY = 0
	}
}

// purge 标记删除过期箭矢和死亡敌人，并从角色的箭矢列表中移除
// 实体在帧末 RemoveMarkedEntities 时才真正删除
func (s *TileCollisionSystem) purge() {
	for _, arrowID := range s.arrows.Arrows() {
		arrow, ok := ecs.GetComponent[*components.ArrowComponent](s.entityManager, arrowID)
		if !ok || !arrow.ShouldRemove {
			continue
		}
		if owner, ok := ecs.GetComponent[*components.CharacterComponent](s.entityManager, arrow.Owner); ok {
			owner.RemoveArrow(arrowID)
		}
		s.entityManager.DestroyEntity(arrowID)
	}

	for _, enemyID := range s.enemies.Enemies() {
		if s.enemies.IsDead(enemyID) {
			s.entityManager.DestroyEntity(enemyID)
			log.Info("[TileCollisionSystem] enemy removed", "entity", enemyID)
		}
	}
}
