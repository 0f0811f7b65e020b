package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig 游戏运行参数
//
// 包含屏幕尺寸、角色/箭矢/敌人的物理参数、摄像机平滑系数和动画帧时长。
// 所有长度单位为像素，时间单位为秒。
//
// 配置文件位置: data/config.yaml
type GameConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Player     PlayerConfig     `yaml:"player"`
	Arrow      ArrowConfig      `yaml:"arrow"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Camera     CameraConfig     `yaml:"camera"`
	Animations AnimationTimings `yaml:"animations"`
	Assets     AssetsConfig     `yaml:"assets"`
}

// ScreenConfig 屏幕（逻辑分辨率）配置
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Offset 二维偏移量
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// PlayerConfig 玩家角色参数
type PlayerConfig struct {
	// Speed 水平移动速度（像素/秒）
	Speed float64 `yaml:"speed"`

	// JumpPower 起跳时的向上初速度（像素/秒）
	JumpPower float64 `yaml:"jumpPower"`

	// Gravity 重力加速度（像素/秒²，向下为正）
	Gravity float64 `yaml:"gravity"`

	// ShootDuration 射击姿态持续时间（秒），期间显示弓
	ShootDuration float64 `yaml:"shootDuration"`

	// ArrowSpeed 箭矢初速度（像素/秒）
	ArrowSpeed float64 `yaml:"arrowSpeed"`

	// BoxInsetX 碰撞盒相对首帧宽度的收缩量
	BoxInsetX float64 `yaml:"boxInsetX"`

	// 箭矢出射点相对碰撞盒中心的偏移（按朝向区分）
	MuzzleOffsetRight Offset `yaml:"muzzleOffsetRight"`
	MuzzleOffsetLeft  Offset `yaml:"muzzleOffsetLeft"`

	// 弓的绘制位置相对碰撞盒中心的偏移（按朝向区分）
	BowOffsetRight Offset `yaml:"bowOffsetRight"`
	BowOffsetLeft  Offset `yaml:"bowOffsetLeft"`
}

// ArrowConfig 箭矢参数
type ArrowConfig struct {
	Gravity    float64 `yaml:"gravity"`
	EmbedDepth float64 `yaml:"embedDepth"`

	// TipFactor 箭尖距中心的距离（以箭矢宽度为单位）
	TipFactor float64 `yaml:"tipFactor"`

	// StuckLifetime 插入后多久移除（秒）
	StuckLifetime float64 `yaml:"stuckLifetime"`

	// EnemyHitStuckTimer 命中敌人时计时器的初始值，使其比插在地形上的箭更早消失
	EnemyHitStuckTimer float64 `yaml:"enemyHitStuckTimer"`

	// OffWorldMargin 箭矢飞出世界边界多远后被移除
	OffWorldMargin float64 `yaml:"offWorldMargin"`
}

// EnemyConfig 飞行敌人参数
type EnemyConfig struct {
	Speed      float64 `yaml:"speed"`
	Lives      int     `yaml:"lives"`
	ResetLives int     `yaml:"resetLives"`
	BoxInsetX  float64 `yaml:"boxInsetX"`

	FlyFrameTime float64 `yaml:"flyFrameTime"`
	HitFrameTime float64 `yaml:"hitFrameTime"`
	HitFrames    int     `yaml:"hitFrames"`
	DieFrameTime float64 `yaml:"dieFrameTime"`
	DieFrames    int     `yaml:"dieFrames"`
}

// HitDuration 受击状态持续时间 = 帧数 × 帧时长
func (e EnemyConfig) HitDuration() float64 {
	return float64(e.HitFrames) * e.HitFrameTime
}

// DieDuration 死亡状态持续时间 = 帧数 × 帧时长
func (e EnemyConfig) DieDuration() float64 {
	return float64(e.DieFrames) * e.DieFrameTime
}

// CameraConfig 摄像机参数
type CameraConfig struct {
	// Smoothing 平滑系数，每帧插值因子 = Smoothing × dt（上限 1）
	Smoothing float64 `yaml:"smoothing"`
}

// AnimationTimings 角色各状态动画的帧时长（秒）
type AnimationTimings struct {
	Idle   float64 `yaml:"idle"`
	Walk   float64 `yaml:"walk"`
	Jump   float64 `yaml:"jump"`
	Attack float64 `yaml:"attack"`
	Bow    float64 `yaml:"bow"`
}

// AssetsConfig 资源加载配置
type AssetsConfig struct {
	// Dir 贴图根目录
	Dir string `yaml:"dir"`

	// Placeholders 贴图缺失时使用纯色占位图代替（而不是报错退出）
	Placeholders bool `yaml:"placeholders"`
}

// DefaultGameConfig 返回默认配置（与 data/config.yaml 一致）
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Screen: ScreenConfig{Width: 800, Height: 600, Title: "Fluffy Fiesta"},
		Player: PlayerConfig{
			Speed:             150,
			JumpPower:         450,
			Gravity:           980,
			ShootDuration:     0.2,
			ArrowSpeed:        400,
			BoxInsetX:         10,
			MuzzleOffsetRight: Offset{X: -5, Y: 4},
			MuzzleOffsetLeft:  Offset{X: 0, Y: 1},
			BowOffsetRight:    Offset{X: 0, Y: 4},
			BowOffsetLeft:     Offset{X: 10, Y: 0},
		},
		Arrow: ArrowConfig{
			Gravity:            200,
			EmbedDepth:         15,
			TipFactor:          0.8,
			StuckLifetime:      3.0,
			EnemyHitStuckTimer: 2.9,
			OffWorldMargin:     50,
		},
		Enemy: EnemyConfig{
			Speed:        150,
			Lives:        1,
			ResetLives:   3,
			BoxInsetX:    10,
			FlyFrameTime: 0.125,
			HitFrameTime: 0.15,
			HitFrames:    4,
			DieFrameTime: 0.08,
			DieFrames:    16,
		},
		Camera: CameraConfig{Smoothing: 5.0},
		Animations: AnimationTimings{
			Idle:   0.2,
			Walk:   0.166,
			Jump:   0.1,
			Attack: 0.08,
			Bow:    0.04,
		},
		Assets: AssetsConfig{Dir: "assets"},
	}
}

// LoadGameConfig 从文件加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/config.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig 解析 YAML 格式的游戏配置
//
// 未出现在 YAML 中的字段保留 DefaultGameConfig 的值，
// 因此配置文件只需写出需要覆盖的部分。
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}

	positives := []struct {
		name  string
		value float64
	}{
		{"player.speed", c.Player.Speed},
		{"player.jumpPower", c.Player.JumpPower},
		{"player.shootDuration", c.Player.ShootDuration},
		{"player.arrowSpeed", c.Player.ArrowSpeed},
		{"arrow.stuckLifetime", c.Arrow.StuckLifetime},
		{"arrow.tipFactor", c.Arrow.TipFactor},
		{"enemy.speed", c.Enemy.Speed},
		{"enemy.flyFrameTime", c.Enemy.FlyFrameTime},
		{"enemy.hitFrameTime", c.Enemy.HitFrameTime},
		{"enemy.dieFrameTime", c.Enemy.DieFrameTime},
		{"camera.smoothing", c.Camera.Smoothing},
		{"animations.idle", c.Animations.Idle},
		{"animations.walk", c.Animations.Walk},
		{"animations.jump", c.Animations.Jump},
		{"animations.attack", c.Animations.Attack},
		{"animations.bow", c.Animations.Bow},
	}
	for _, p := range positives {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive, got %.3f", p.name, p.value)
		}
	}

	if c.Player.Gravity < 0 || c.Arrow.Gravity < 0 {
		return fmt.Errorf("gravity must not be negative (player %.1f, arrow %.1f)", c.Player.Gravity, c.Arrow.Gravity)
	}

	if c.Arrow.EnemyHitStuckTimer < 0 || c.Arrow.EnemyHitStuckTimer > c.Arrow.StuckLifetime {
		return fmt.Errorf("arrow.enemyHitStuckTimer must be within [0, stuckLifetime], got %.2f", c.Arrow.EnemyHitStuckTimer)
	}

	if c.Enemy.Lives < 0 || c.Enemy.ResetLives < 0 {
		return fmt.Errorf("enemy lives must not be negative")
	}

	if c.Enemy.HitFrames <= 0 || c.Enemy.DieFrames <= 0 {
		return fmt.Errorf("enemy hit/die frame counts must be positive, got %d/%d", c.Enemy.HitFrames, c.Enemy.DieFrames)
	}

	return nil
}
