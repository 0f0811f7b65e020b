package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings 每个抽象按键对应的物理按键，任意一个满足即可
var keyBindings = map[Key][]ebiten.Key{
	KeyLeft:       {ebiten.KeyA, ebiten.KeyArrowLeft},
	KeyRight:      {ebiten.KeyD, ebiten.KeyArrowRight},
	KeyJump:       {ebiten.KeyW, ebiten.KeySpace, ebiten.KeyArrowUp},
	KeyDebug:      {ebiten.KeyF1},
	KeyRestart:    {ebiten.KeyR},
	KeyFullscreen: {ebiten.KeyF11},
}

var mouseBindings = map[MouseButton]ebiten.MouseButton{
	MouseButtonLeft:  ebiten.MouseButtonLeft,
	MouseButtonRight: ebiten.MouseButtonRight,
}

// EbitenSource 使用 Ebitengine 实现 Source
type EbitenSource struct{}

// NewEbitenSource 创建 Ebitengine 输入源
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// IsKeyDown 按键当前是否按住
func (s *EbitenSource) IsKeyDown(key Key) bool {
	for _, k := range keyBindings[key] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// IsKeyPressed 按键是否在本帧刚被按下
func (s *EbitenSource) IsKeyPressed(key Key) bool {
	for _, k := range keyBindings[key] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// IsMouseButtonPressed 鼠标按键是否在本帧刚被按下
// 触摸设备上，新的触摸等同于鼠标左键点击
func (s *EbitenSource) IsMouseButtonPressed(button MouseButton) bool {
	if button == MouseButtonLeft && len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	b, ok := mouseBindings[button]
	if !ok {
		return false
	}
	return inpututil.IsMouseButtonJustPressed(b)
}

// MousePosition 返回指针的屏幕坐标（优先触摸位置）
func (s *EbitenSource) MousePosition() (float64, float64) {
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return float64(x), float64(y)
	}
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}
