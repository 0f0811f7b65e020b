package systems

import (
	"math"

	"github.com/decker502/fluffy/pkg/components"
	"github.com/decker502/fluffy/pkg/config"
	"github.com/decker502/fluffy/pkg/ecs"
	"github.com/decker502/fluffy/pkg/level"
	"github.com/decker502/fluffy/pkg/render"
	"github.com/decker502/fluffy/pkg/utils"
)

// RenderSystem 绘制游戏世界
//
// 渲染顺序（从底到顶）：瓦片 → 敌人 → 角色 → 弓 → 箭矢 → 调试描边。
// 所有世界坐标先减去摄像机偏移再交给 Renderer。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	tilemap       *level.Tilemap
	tileImage     render.Image
	camera        *CameraSystem
	playerCfg     config.PlayerConfig

	// debug 为 true 时绘制瓦片和碰撞盒描边
	debug bool
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, tm *level.Tilemap, tileImage render.Image, camera *CameraSystem, playerCfg config.PlayerConfig) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		tilemap:       tm,
		tileImage:     tileImage,
		camera:        camera,
		playerCfg:     playerCfg,
	}
}

// SetDebug 开关调试描边
func (s *RenderSystem) SetDebug(enabled bool) {
	s.debug = enabled
}

// Debug 返回调试描边是否开启
func (s *RenderSystem) Debug() bool {
	return s.debug
}

// Draw 绘制一帧
func (s *RenderSystem) Draw(r render.Renderer) {
	if r == nil {
		return
	}

	var camX, camY float64
	if s.camera != nil {
		camX, camY = s.camera.Offset()
	}

	s.drawTiles(r, camX, camY)
	s.drawEnemies(r, camX, camY)
	s.drawCharacters(r, camX, camY)
	s.drawArrows(r, camX, camY)
}

// drawTiles 只绘制与视口相交的瓦片
func (s *RenderSystem) drawTiles(r render.Renderer, camX, camY float64) {
	if s.tilemap == nil {
		return
	}

	var view utils.Rect
	cullable := false
	if s.camera != nil {
		if cam := s.camera.camera(); cam != nil && cam.ScreenWidth > 0 && cam.ScreenHeight > 0 {
			view = utils.NewRect(camX, camY, cam.ScreenWidth, cam.ScreenHeight)
			cullable = true
		}
	}

	s.tilemap.ForEachSolid(func(col, row int, tile utils.Rect) bool {
		if cullable && !view.Overlaps(tile) {
			return true
		}
		x, y := tile.X-camX, tile.Y-camY
		if s.tileImage != nil {
			r.DrawImage(s.tileImage, render.DrawOptions{X: x, Y: y, DestWidth: tile.W, DestHeight: tile.H})
		}
		if s.debug {
			r.DrawRectOutline(x, y, tile.W, tile.H, 1, debugTileColor)
		}
		return true
	})
}

// drawEnemies 敌人贴图底边对齐碰撞盒底边
func (s *RenderSystem) drawEnemies(r render.Renderer, camX, camY float64) {
	ids := ecs.GetEntitiesWith4[
		*components.EnemyComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
		*components.AnimationSetComponent,
	](s.entityManager)

	for _, id := range ids {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		set, _ := ecs.GetComponent[*components.AnimationSetComponent](s.entityManager, id)

		box := screenBox(col.Box(pos), camX, camY)
		DrawBottomAligned(r, set.Active(), box, enemy.Facing)
		s.drawBox(r, box, enemy.Debug)
	}
}

// drawCharacters 角色动画居中于碰撞盒，射击时叠加旋转的弓
func (s *RenderSystem) drawCharacters(r render.Renderer, camX, camY float64) {
	ids := ecs.GetEntitiesWith4[
		*components.CharacterComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
		*components.AnimationSetComponent,
	](s.entityManager)

	for _, id := range ids {
		char, _ := ecs.GetComponent[*components.CharacterComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		set, _ := ecs.GetComponent[*components.AnimationSetComponent](s.entityManager, id)

		box := screenBox(col.Box(pos), camX, camY)
		DrawCentered(r, set.Active(), box, char.Facing)

		if char.ShowBow && char.Bow != nil {
			bx, by := bowPoint(s.playerCfg, char.Facing, box)
			DrawRotated(r, char.Bow, bx, by, char.BowAngle, char.Facing)
		}

		s.drawBox(r, box, false)
	}
}

// drawArrows 箭矢按飞行角旋转（插入后保持插入时的角度）
func (s *RenderSystem) drawArrows(r render.Renderer, camX, camY float64) {
	ids := ecs.GetEntitiesWith4[
		*components.ArrowComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
		*components.CollisionComponent,
	](s.entityManager)

	for _, id := range ids {
		arrow, _ := ecs.GetComponent[*components.ArrowComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)

		box := screenBox(col.Box(pos), camX, camY)
		if arrow.Image != nil {
			r.DrawImage(arrow.Image, render.DrawOptions{
				X:          box.X,
				Y:          box.Y,
				DestWidth:  box.W,
				DestHeight: box.H,
				Rotation:   FlightAngle(arrow, vel),
			})
		}
		s.drawBox(r, box, false)
	}
}

// drawBox 调试模式（全局或实体自身）下描出碰撞盒
func (s *RenderSystem) drawBox(r render.Renderer, box utils.Rect, entityDebug bool) {
	if !s.debug && !entityDebug {
		return
	}
	r.DrawRectOutline(math.Round(box.X), math.Round(box.Y), box.W, box.H, 1, debugBoxColor)
}

// screenBox 把世界坐标矩形换算到屏幕坐标
func screenBox(box utils.Rect, camX, camY float64) utils.Rect {
	return utils.NewRect(box.X-camX, box.Y-camY, box.W, box.H)
}
