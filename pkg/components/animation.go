package components

import (
	"image"

	"github.com/decker502/fluffy/pkg/render"
)

// FrameOffset 单帧的像素偏移（绘制时叠加到目标位置上）
type FrameOffset struct {
	X, Y float64
}

// Animation 管理一段帧动画
//
// 帧来源有两种：
//   - Frames: 每帧一张独立图片（各帧尺寸可以不同）
//   - Sheet + SheetFrames: 一张横向排列的 spritesheet，等宽切分
//
// 不变量：CurrentFrame < FrameCount()；非循环动画播放完毕后停在最后一帧。
type Animation struct {
	Frames      []render.Image // 动画的所有帧图片
	Sheet       render.Image   // 横向 spritesheet（与 Frames 二选一）
	SheetFrames int            // spritesheet 的帧数

	FrameSpeed   float64 // 每帧持续时间(秒)
	FrameCounter float64 // 当前帧计时器(秒)
	CurrentFrame int     // 当前显示的帧索引(0-based)
	IsLooping    bool    // 是否循环播放
	IsFinished   bool    // 动画是否已完成(仅对非循环动画有效)

	Offsets []FrameOffset // 每帧的像素偏移(可选)，长度可短于帧数
	Debug   bool          // 绘制时是否描出帧边框
}

// NewAnimation 由独立帧图片创建循环动画
func NewAnimation(frames []render.Image, frameSpeed float64) *Animation {
	return &Animation{
		Frames:     frames,
		FrameSpeed: frameSpeed,
		IsLooping:  true,
	}
}

// NewSheetAnimation 由横向 spritesheet 创建循环动画
func NewSheetAnimation(sheet render.Image, frameCount int, frameSpeed float64) *Animation {
	return &Animation{
		Sheet:       sheet,
		SheetFrames: frameCount,
		FrameSpeed:  frameSpeed,
		IsLooping:   true,
	}
}

// FrameCount 返回帧数
func (a *Animation) FrameCount() int {
	if len(a.Frames) > 0 {
		return len(a.Frames)
	}
	if a.Sheet != nil && a.SheetFrames > 0 {
		return a.SheetFrames
	}
	return 0
}

// Update 推进动画计时器
//
// 计时器达到 FrameSpeed 时归零并前进一帧：
// 循环动画回到第 0 帧；非循环动画停在最后一帧并标记 IsFinished。
func (a *Animation) Update(dt float64) {
	count := a.FrameCount()
	if count == 0 || a.IsFinished {
		return
	}

	a.FrameCounter += dt
	if a.FrameCounter < a.FrameSpeed {
		return
	}

	a.FrameCounter = 0
	a.CurrentFrame++

	if a.CurrentFrame >= count {
		if a.IsLooping {
			a.CurrentFrame = 0
		} else {
			a.CurrentFrame = count - 1
			a.IsFinished = true
		}
	}
}

// Reset 回到第 0 帧并清除计时器与完成标记
func (a *Animation) Reset() {
	a.CurrentFrame = 0
	a.FrameCounter = 0
	a.IsFinished = false
}

// SetLooping 设置是否循环；重新开启循环会清除完成标记
func (a *Animation) SetLooping(looping bool) {
	a.IsLooping = looping
	if looping {
		a.IsFinished = false
	}
}

// Frame 返回第 i 帧的图片与源矩形
// 越界或没有帧时返回 ok=false
func (a *Animation) Frame(i int) (img render.Image, src *image.Rectangle, ok bool) {
	if i < 0 || i >= a.FrameCount() {
		return nil, nil, false
	}

	if len(a.Frames) > 0 {
		if a.Frames[i] == nil {
			return nil, nil, false
		}
		return a.Frames[i], nil, true
	}

	b := a.Sheet.Bounds()
	frameW := b.Dx() / a.SheetFrames
	rect := image.Rect(b.Min.X+i*frameW, b.Min.Y, b.Min.X+(i+1)*frameW, b.Max.Y)
	return a.Sheet, &rect, true
}

// Current 返回当前帧的图片与源矩形
func (a *Animation) Current() (render.Image, *image.Rectangle, bool) {
	return a.Frame(a.CurrentFrame)
}

// FrameSize 返回第 i 帧的尺寸
func (a *Animation) FrameSize(i int) (float64, float64) {
	img, src, ok := a.Frame(i)
	if !ok {
		return 0, 0
	}
	return render.SourceSize(img, src)
}

// CurrentSize 返回当前帧的尺寸
func (a *Animation) CurrentSize() (float64, float64) {
	return a.FrameSize(a.CurrentFrame)
}

// MaxFrameSize 返回所有帧中的最大宽度和最大高度
func (a *Animation) MaxFrameSize() (float64, float64) {
	var maxW, maxH float64
	for i := 0; i < a.FrameCount(); i++ {
		w, h := a.FrameSize(i)
		if w > maxW {
			maxW = w
		}
		if h > maxH {
			maxH = h
		}
	}
	return maxW, maxH
}

// CurrentOffset 返回当前帧的像素偏移
func (a *Animation) CurrentOffset() FrameOffset {
	if a.CurrentFrame >= 0 && a.CurrentFrame < len(a.Offsets) {
		return a.Offsets[a.CurrentFrame]
	}
	return FrameOffset{}
}

// AnimationSetComponent 按状态名存储实体的多段动画
//
// 每帧只推进和绘制 Current 指向的那一段。
// Frozen 为 true 时 AnimationSystem 不再推进（例如死亡动画播放完毕后）。
type AnimationSetComponent struct {
	Animations map[string]*Animation
	Current    string
	Frozen     bool
}

// NewAnimationSet 创建动画集合
func NewAnimationSet(initial string, animations map[string]*Animation) *AnimationSetComponent {
	return &AnimationSetComponent{
		Animations: animations,
		Current:    initial,
	}
}

// Active 返回当前动画；不存在时返回 nil
func (s *AnimationSetComponent) Active() *Animation {
	return s.Animations[s.Current]
}

// Get 返回指定状态的动画；不存在时返回 nil
func (s *AnimationSetComponent) Get(name string) *Animation {
	return s.Animations[name]
}

// Play 切换到指定状态的动画，不重置目标动画的进度
func (s *AnimationSetComponent) Play(name string) {
	s.Current = name
}

// SetDebug 为集合内所有动画设置调试描边
func (s *AnimationSetComponent) SetDebug(enabled bool) {
	for _, a := range s.Animations {
		a.Debug = enabled
	}
}
