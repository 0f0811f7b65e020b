// Package render 定义模拟核心使用的绘制接口
//
// 模拟核心（动画、角色、箭矢、敌人、瓦片）只依赖本包的接口，
// 不直接依赖 Ebitengine；ebiten.go 提供基于 Ebitengine 的实现。
package render

import (
	"image"
	"image/color"
)

// Image 表示一张可绘制的图片句柄
//
// *ebiten.Image 与标准库 image.Image 都满足该接口，
// 核心逻辑只会查询其尺寸。
type Image interface {
	Bounds() image.Rectangle
}

// Size 返回图片宽高（像素）
// img 为 nil 时返回 (0, 0)
func Size(img Image) (float64, float64) {
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// DrawOptions 描述一次贴图绘制
type DrawOptions struct {
	// X, Y 目标矩形左上角（屏幕坐标）
	X, Y float64

	// DestWidth, DestHeight 目标尺寸，0 表示使用源图尺寸
	// 负值表示在该轴上镜像：目标矩形覆盖 [X-|W|, X]
	DestWidth, DestHeight float64

	// Rotation 绕目标矩形中心旋转的角度（弧度）
	Rotation float64

	// Source 源图中的子区域，nil 表示整张图
	Source *image.Rectangle
}

// Renderer 是核心绘制接口
type Renderer interface {
	// DrawImage 绘制贴图
	DrawImage(img Image, opts DrawOptions)

	// DrawRectOutline 绘制矩形描边（调试用）
	DrawRectOutline(x, y, w, h, thickness float64, clr color.Color)
}

// SourceSize 返回绘制时实际使用的源尺寸
func SourceSize(img Image, src *image.Rectangle) (float64, float64) {
	if src != nil {
		return float64(src.Dx()), float64(src.Dy())
	}
	return Size(img)
}
