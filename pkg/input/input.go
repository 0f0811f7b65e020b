// Package input 定义模拟核心读取玩家输入的接口
package input

// Key 抽象按键（与具体引擎解耦）
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyJump
	KeyDebug
	KeyRestart
	KeyFullscreen
)

// MouseButton 抽象鼠标按键
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
)

// Source 是每帧查询的输入来源
type Source interface {
	// IsKeyDown 按键当前是否按住
	IsKeyDown(key Key) bool

	// IsKeyPressed 按键是否在本帧刚被按下（边沿触发）
	IsKeyPressed(key Key) bool

	// IsMouseButtonPressed 鼠标按键是否在本帧刚被按下（边沿触发）
	IsMouseButtonPressed(button MouseButton) bool

	// MousePosition 返回鼠标的屏幕坐标
	MousePosition() (float64, float64)
}

// None 是不产生任何输入的 Source，用于无人操作的场景与测试
type None struct{}

func (None) IsKeyDown(Key) bool                    { return false }
func (None) IsKeyPressed(Key) bool                 { return false }
func (None) IsMouseButtonPressed(MouseButton) bool { return false }
func (None) MousePosition() (float64, float64)     { return 0, 0 }
