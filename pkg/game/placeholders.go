package game

import (
	"image"
	"image/color"
	"image/draw"
)

// 占位帧的默认颜色（清单没有指定 color 时使用）
var (
	placeholderFill   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	placeholderBorder = color.RGBA{R: 40, G: 40, B: 45, A: 255}
	placeholderMarker = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// GeneratePlaceholderFrames 按描述生成一组纯色占位帧
//
// 每帧是带 1 像素边框的色块，另有一条随帧序号右移的竖线，
// 使动画在没有真实贴图时也能看出在播放。
// frames <= 0 时生成 1 帧。
func GeneratePlaceholderFrames(spec PlaceholderSpec) []image.Image {
	fill := placeholderFill
	if spec.Color != "" {
		if c, err := parseHexColor(spec.Color); err == nil {
			fill = c
		}
	}

	n := spec.Frames
	if n <= 0 {
		n = 1
	}

	frames := make([]image.Image, n)
	for i := range frames {
		frames[i] = createPlaceholderFrame(spec.Width, spec.Height, fill, i, n)
	}
	return frames
}

// createPlaceholderFrame 生成第 index 帧
func createPlaceholderFrame(w, h int, fill color.RGBA, index, total int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: placeholderBorder}, image.Point{}, draw.Src)

	if w > 2 && h > 2 {
		inner := image.Rect(1, 1, w-1, h-1)
		draw.Draw(img, inner, &image.Uniform{C: fill}, image.Point{}, draw.Src)
	}

	if total > 1 && w > 2 {
		x := 1 + index*(w-2)/total
		draw.Draw(img, image.Rect(x, 1, x+1, h-1), &image.Uniform{C: placeholderMarker}, image.Point{}, draw.Src)
	}

	return img
}
