package components

// CameraComponent 管理世界摄像机的位置与跟随参数。
// X/Y 为视口左上角的世界坐标，渲染与鼠标换算都以它为偏移。
type CameraComponent struct {
	// X, Y 当前视口左上角（世界坐标）
	X, Y float64

	// TargetX, TargetY 最近一次跟随的目标点（世界坐标）
	TargetX, TargetY float64

	// Smoothing 平滑系数，每帧插值因子 = Smoothing × dt（上限 1）
	Smoothing float64

	// MapWidth, MapHeight 地图尺寸，用于限制视口范围
	MapWidth, MapHeight float64

	// ScreenWidth, ScreenHeight 视口尺寸
	ScreenWidth, ScreenHeight float64
}
