package systems

import (
	"math"

	"github.com/decker502/fluffy/pkg/components"
	"github.com/decker502/fluffy/pkg/ecs"
	"github.com/decker502/fluffy/pkg/utils"
)

// CameraSystem 管理跟随玩家的世界摄像机。
// 每帧把视口中心平滑地移向角色碰撞盒中心，并把偏移写回角色，
// 供下一帧把鼠标屏幕坐标换算为世界坐标。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID // 镜头实体ID
}

// NewCameraSystem 创建镜头系统。
//
// 参数:
//   - em: 实体管理器
//   - mapWidth, mapHeight: 地图尺寸
//   - screenWidth, screenHeight: 视口尺寸
//   - smoothing: 平滑系数
func NewCameraSystem(em *ecs.EntityManager, mapWidth, mapHeight, screenWidth, screenHeight, smoothing float64) *CameraSystem {
	cs := &CameraSystem{entityManager: em}

	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{
		Smoothing:    smoothing,
		MapWidth:     mapWidth,
		MapHeight:    mapHeight,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	})

	return cs
}

// camera 返回镜头组件
func (cs *CameraSystem) camera() *components.CameraComponent {
	cam, _ := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	return cam
}

// Update 跟随第一个角色实体，并把镜头偏移写回所有角色
func (cs *CameraSystem) Update(dt float64) {
	characters := ecs.GetEntitiesWith3[
		*components.CharacterComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](cs.entityManager)
	if len(characters) == 0 {
		return
	}

	target := characters[0]
	pos, _ := ecs.GetComponent[*components.PositionComponent](cs.entityManager, target)
	col, _ := ecs.GetComponent[*components.CollisionComponent](cs.entityManager, target)
	tx, ty := col.Box(pos).Center()
	cs.FollowTarget(tx, ty, dt)

	x, y := cs.Offset()
	for _, id := range characters {
		if char, ok := ecs.GetComponent[*components.CharacterComponent](cs.entityManager, id); ok {
			char.CameraOffsetX, char.CameraOffsetY = x, y
		}
	}
}

// FollowTarget 把镜头平滑地移向以 (targetX, targetY) 为中心的位置。
//
// 期望位置 = 目标 - 屏幕尺寸/2，水平方向限制在 [0, max(0, 地图宽-屏幕宽)]，
// 垂直方向只限制上界 min(0, 地图高-屏幕高)。
// 插值因子 smoothing·dt 限制在 [0, 1]，因此单步再大也不会越过期望位置。
func (cs *CameraSystem) FollowTarget(targetX, targetY, dt float64) {
	cam := cs.camera()
	if cam == nil {
		return
	}

	cam.TargetX, cam.TargetY = targetX, targetY

	desiredX := targetX - cam.ScreenWidth*0.5
	desiredY := targetY - cam.ScreenHeight*0.5

	maxX := math.Max(0, cam.MapWidth-cam.ScreenWidth)
	maxY := math.Min(0, cam.MapHeight-cam.ScreenHeight)

	clampedX := utils.Clamp(desiredX, 0, maxX)
	clampedY := utils.Clamp(desiredY, math.Inf(-1), maxY)

	t := utils.Clamp(cam.Smoothing*dt, 0, 1)
	cam.X = utils.Lerp(cam.X, clampedX, t)
	cam.Y = utils.Lerp(cam.Y, clampedY, t)
}

// Offset 返回视口左上角的世界坐标
func (cs *CameraSystem) Offset() (float64, float64) {
	cam := cs.camera()
	if cam == nil {
		return 0, 0
	}
	return cam.X, cam.Y
}

// SetPosition 立即把镜头放到指定位置（不经过平滑）
func (cs *CameraSystem) SetPosition(x, y float64) {
	if cam := cs.camera(); cam != nil {
		cam.X, cam.Y = x, y
	}
}

// Entity 返回镜头实体ID
func (cs *CameraSystem) Entity() ecs.EntityID {
	return cs.cameraEntity
}
