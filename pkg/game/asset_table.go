package game

import (
	"sort"

	"github.com/decker502/fluffy/pkg/render"
)

// AssetTable 预加载的贴图表：分组名 → 帧列表
//
// 实体只持有表中的图片句柄，不负责加载；表在关卡生命周期内不变。
type AssetTable struct {
	groups map[string][]render.Image
	ids    map[string]render.Image
}

// NewAssetTable 创建空的贴图表
func NewAssetTable() *AssetTable {
	return &AssetTable{
		groups: make(map[string][]render.Image),
		ids:    make(map[string]render.Image),
	}
}

// Set 设置分组的帧列表
func (t *AssetTable) Set(group string, frames []render.Image) {
	t.groups[group] = frames
}

// SetImage 按图片 ID 登记单张图片
func (t *AssetTable) SetImage(id string, img render.Image) {
	t.ids[id] = img
}

// Frames 返回分组的帧列表；分组不存在时返回 nil
func (t *AssetTable) Frames(group string) []render.Image {
	return t.groups[group]
}

// Image 返回分组的第一帧；没有同名分组时按图片 ID 查找
func (t *AssetTable) Image(id string) render.Image {
	if frames := t.groups[id]; len(frames) > 0 {
		return frames[0]
	}
	return t.ids[id]
}

// Groups 返回按名称排序的分组列表
func (t *AssetTable) Groups() []string {
	names := make([]string, 0, len(t.groups))
	for name := range t.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len 分组数量
func (t *AssetTable) Len() int {
	return len(t.groups)
}
