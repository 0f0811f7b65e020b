package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// TileSolid 关卡文本中的实心瓦片
	TileSolid = '#'
	// TileEmpty 关卡文本中的空格子
	TileEmpty = '.'
)

// LevelConfig 关卡配置
//
// 地图以字符串行描述：'#' 为实心瓦片，'.' 为空。
// 所有行长度必须一致。最后一行对齐到世界底部。
//
// 配置文件位置: data/levels/<name>.yaml
type LevelConfig struct {
	Name     string       `yaml:"name"`
	TileSize float64      `yaml:"tileSize"`
	Rows     []string     `yaml:"rows"`
	Player   SpawnPoint   `yaml:"player"`
	Enemies  []SpawnPoint `yaml:"enemies"`
}

// SpawnPoint 出生点（碰撞盒左上角，世界坐标）
type SpawnPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Cols 返回地图列数
func (c *LevelConfig) Cols() int {
	if len(c.Rows) == 0 {
		return 0
	}
	return len(c.Rows[0])
}

// LoadLevelConfig 从文件加载关卡配置
func LoadLevelConfig(path string) (*LevelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config: %w", err)
	}
	return ParseLevelConfig(data)
}

// ParseLevelConfig 解析 YAML 格式的关卡配置
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var cfg LevelConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse level config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level config: %w", err)
	}

	return &cfg, nil
}

// Validate 验证关卡配置
//
// 检查内容：
//   - 瓦片尺寸为正
//   - 至少一行，且所有行等长
//   - 只包含 '#' 与 '.'
func (c *LevelConfig) Validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("tileSize must be positive, got %.1f", c.TileSize)
	}
	if len(c.Rows) == 0 {
		return fmt.Errorf("level %q has no rows", c.Name)
	}

	width := len(c.Rows[0])
	if width == 0 {
		return fmt.Errorf("level %q has an empty first row", c.Name)
	}

	for i, row := range c.Rows {
		if len(row) != width {
			return fmt.Errorf("row %d has %d columns, expected %d", i, len(row), width)
		}
		if idx := strings.IndexFunc(row, func(r rune) bool {
			return r != TileSolid && r != TileEmpty
		}); idx >= 0 {
			return fmt.Errorf("row %d column %d: unknown tile %q", i, idx, row[idx])
		}
	}

	return nil
}

// DefaultLevelConfig 返回内置的草地关卡（20 行 × 50 列）
//
// 与 data/levels/meadow.yaml 内容一致，在嵌入资源不可用时作为兜底。
func DefaultLevelConfig() *LevelConfig {
	const rows, cols = 20, 50

	grid := make([][]byte, rows)
	for r := range grid {
		grid[r] = []byte(strings.Repeat(string(TileEmpty), cols))
		grid[r][0] = TileSolid
		grid[r][cols-1] = TileSolid
	}

	fill := func(row int, colsToFill ...int) {
		for _, c := range colsToFill {
			grid[row][c] = TileSolid
		}
	}
	span := func(row, from, to int) {
		for c := from; c < to; c++ {
			grid[row][c] = TileSolid
		}
	}

	span(13, 10, 13)
	span(13, 44, 47)
	fill(15, 3, 4, 6, 7)
	span(15, 31, 34)
	span(16, 8, 12)
	span(16, 13, 15)
	fill(17, 2, 17, 22)
	span(18, 20, 28)
	span(19, 0, cols)

	lines := make([]string, rows)
	for r := range grid {
		lines[r] = string(grid[r])
	}

	return &LevelConfig{
		Name:     "meadow",
		TileSize: 32,
		Rows:     lines,
		Player:   SpawnPoint{X: 52, Y: 400},
		Enemies:  []SpawnPoint{{X: 10, Y: 100}},
	}
}
