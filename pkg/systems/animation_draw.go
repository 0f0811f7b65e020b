package systems

import (
	"image/color"

	"github.com/decker502/fluffy/pkg/components"
	"github.com/decker502/fluffy/pkg/render"
	"github.com/decker502/fluffy/pkg/utils"
)

// 调试描边颜色
var (
	debugFrameColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	debugBoxColor   = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	debugTileColor  = color.RGBA{R: 255, G: 255, B: 0, A: 160}
)

// 以下几个函数是 Animation 的各种摆放方式，共享当前帧的选取逻辑，
// 区别只在于如何由目标位置和当前帧尺寸计算绘制原点。
// 所有坐标均为屏幕坐标（调用方已减去摄像机偏移）。
// 没有可用帧时什么都不画。

// DrawAnimation 以 (x, y) 为左上角绘制当前帧
// 朝左时水平镜像：目标宽度取负，锚点右移一个帧宽
func DrawAnimation(r render.Renderer, anim *components.Animation, x, y float64, dir components.Direction) {
	drawFrame(r, anim, x, y, dir, 0, false)
}

// DrawAnchored 把当前帧的锚点 (anchorX, anchorY) 放到 (px, py) 上
// 锚点为帧尺寸的比例：(0,0) 左上角，(0.5,1) 底边中点
func DrawAnchored(r render.Renderer, anim *components.Animation, px, py, anchorX, anchorY float64, dir components.Direction) {
	if anim == nil {
		return
	}
	w, h := anim.CurrentSize()
	drawFrame(r, anim, px-anchorX*w, py-anchorY*h, dir, 0, false)
}

// DrawCentered 在以 box 中心为中心、最大帧尺寸为大小的区域内居中绘制当前帧
func DrawCentered(r render.Renderer, anim *components.Animation, box utils.Rect, dir components.Direction) {
	if anim == nil {
		return
	}
	maxW, maxH := anim.MaxFrameSize()
	w, h := anim.CurrentSize()
	cx, cy := box.Center()

	left := cx - maxW/2 + (maxW-w)/2
	top := cy - maxH/2 + (maxH-h)/2
	drawFrame(r, anim, left, top, dir, 0, false)
}

// DrawBottomAligned 使当前帧底边落在 box 底边上，并在最大帧宽内水平居中
// 各帧高度不同也不会出现上浮或下沉
func DrawBottomAligned(r render.Renderer, anim *components.Animation, box utils.Rect, dir components.Direction) {
	if anim == nil {
		return
	}
	maxW, _ := anim.MaxFrameSize()
	w, h := anim.CurrentSize()
	cx, _ := box.Center()

	left := cx - maxW/2 + (maxW-w)/2
	drawFrame(r, anim, left, box.Bottom()-h, dir, 0, false)
}

// DrawRotated 以 (cx, cy) 为中心、绕中心旋转 angle 绘制当前帧
// 朝左时垂直镜像，使旋转到左半平面的贴图不会上下颠倒
func DrawRotated(r render.Renderer, anim *components.Animation, cx, cy, angle float64, dir components.Direction) {
	if anim == nil {
		return
	}
	w, h := anim.CurrentSize()
	drawFrame(r, anim, cx-w/2, cy-h/2, dir, angle, true)
}

// drawFrame 绘制当前帧（叠加逐帧偏移）
// rotated 为 true 时朝左表现为垂直镜像，否则为水平镜像
func drawFrame(r render.Renderer, anim *components.Animation, x, y float64, dir components.Direction, angle float64, rotated bool) {
	if r == nil || anim == nil {
		return
	}

	img, src, ok := anim.Current()
	if !ok {
		return
	}

	w, h := render.SourceSize(img, src)
	off := anim.CurrentOffset()
	x += off.X
	y += off.Y

	opts := render.DrawOptions{
		X:          x,
		Y:          y,
		DestWidth:  w,
		DestHeight: h,
		Rotation:   angle,
		Source:     src,
	}

	if dir == components.DirectionLeft {
		if rotated {
			opts.DestHeight = -h
			opts.Y = y + h
		} else {
			opts.DestWidth = -w
			opts.X = x + w
		}
	}

	r.DrawImage(img, opts)

	if anim.Debug {
		r.DrawRectOutline(x, y, w, h, 1, debugFrameColor)
	}
}
