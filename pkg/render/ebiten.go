package render

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenRenderer 使用 Ebitengine 实现 Renderer 接口
//
// 每帧通过 SetTarget 绑定当前屏幕；所有坐标均为屏幕坐标。
type EbitenRenderer struct {
	target *ebiten.Image

	// 记录已警告过的非 ebiten 图片，避免每帧刷日志
	warned bool
}

// NewEbitenRenderer 创建 Ebitengine 渲染器
func NewEbitenRenderer() *EbitenRenderer {
	return &EbitenRenderer{}
}

// SetTarget 设置绘制目标（通常为 Draw 回调传入的 screen）
func (r *EbitenRenderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

// DrawImage 绘制贴图
//
// 变换顺序：缩放（含镜像）→ 平移到以目标中心为原点 → 旋转 → 平移到目标中心。
// 镜像时目标矩形中心仍为 X + W/2，因此负宽度会覆盖 [X-|W|, X]。
func (r *EbitenRenderer) DrawImage(img Image, opts DrawOptions) {
	if r.target == nil || img == nil {
		return
	}

	src, ok := img.(*ebiten.Image)
	if !ok {
		if !r.warned {
			log.Warn("[EbitenRenderer] skipping non-ebiten image", "type", fmt.Sprintf("%T", img))
			r.warned = true
		}
		return
	}

	if opts.Source != nil {
		sub, ok := src.SubImage(*opts.Source).(*ebiten.Image)
		if !ok {
			return
		}
		src = sub
	}

	srcW, srcH := Size(src)
	if srcW == 0 || srcH == 0 {
		return
	}

	destW, destH := opts.DestWidth, opts.DestHeight
	if destW == 0 {
		destW = srcW
	}
	if destH == 0 {
		destH = srcH
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(destW/srcW, destH/srcH)
	if opts.Rotation != 0 {
		op.GeoM.Translate(-destW/2, -destH/2)
		op.GeoM.Rotate(opts.Rotation)
		op.GeoM.Translate(destW/2, destH/2)
	}
	op.GeoM.Translate(opts.X, opts.Y)
	op.Filter = ebiten.FilterNearest

	r.target.DrawImage(src, op)
}

// DrawRectOutline 绘制矩形描边
func (r *EbitenRenderer) DrawRectOutline(x, y, w, h, thickness float64, clr color.Color) {
	if r.target == nil {
		return
	}
	vector.StrokeRect(r.target, float32(x), float32(y), float32(w), float32(h), float32(thickness), clr, false)
}
