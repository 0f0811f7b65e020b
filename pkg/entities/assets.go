package entities

import "github.com/decker502/fluffy/pkg/render"

// 资源分组 ID（与 data/resources.yaml 中的分组名一致）
const (
	AssetCharacterIdle   = "character_idle"
	AssetCharacterWalk   = "character_walk"
	AssetCharacterJump   = "character_jump"
	AssetCharacterAttack = "character_attack"
	AssetBow             = "bow"
	AssetArrow           = "arrow"
	AssetEnemyFly        = "enemy_fly"
	AssetEnemyHit        = "enemy_hit"
	AssetEnemyDie        = "enemy_die"
	AssetTileGrass       = "tile_grass"
)

// AssetSource 提供预加载好的贴图句柄
// 生产代码中由 game.AssetTable 实现，测试中可用内存图片代替
type AssetSource interface {
	// Frames 返回某个动画分组的全部帧（按文件顺序）
	Frames(group string) []render.Image

	// Image 返回单张图片分组的图片（分组的第一帧）
	Image(id string) render.Image
}

// RequiredAssetGroups 返回创建关卡实体所需的全部分组
func RequiredAssetGroups() []string {
	return []string{
		AssetCharacterIdle,
		AssetCharacterWalk,
		AssetCharacterJump,
		AssetCharacterAttack,
		AssetBow,
		AssetArrow,
		AssetEnemyFly,
		AssetEnemyHit,
		AssetEnemyDie,
		AssetTileGrass,
	}
}
