package level

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/decker502/fluffy/pkg/config"
)

// 预览用的样式
var (
	solidStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#5fa83a"))
	emptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3a3a3a"))
	playerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f0c040")).Bold(true)
	enemyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e05050")).Bold(true)
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// 预览中的字符
const (
	glyphSolid  = "█"
	glyphEmpty  = "·"
	glyphPlayer = "P"
	glyphEnemy  = "E"
)

// Stats 关卡统计信息
type Stats struct {
	Name        string
	Cols, Rows  int
	TileSize    float64
	SolidTiles  int
	EmptyTiles  int
	Width       float64
	Height      float64
	EnemyCount  int
	PlayerCell  [2]int
	OutOfBounds int // 落在网格外的出生点数
}

// spawnCell 出生点所在的格子（相对网格顶部）
func spawnCell(tm *Tilemap, p config.SpawnPoint) (int, int) {
	col := int(p.X / tm.TileSize())
	row := int((p.Y - tm.YOffset()) / tm.TileSize())
	if p.X < 0 {
		col = -1
	}
	if p.Y < tm.YOffset() {
		row = -1
	}
	return col, row
}

func inGrid(tm *Tilemap, col, row int) bool {
	return col >= 0 && row >= 0 && col < tm.Cols() && row < tm.Rows()
}

// ComputeStats 统计关卡的瓦片和出生点
//
// worldBottom 与 NewTilemap 相同，决定出生点落在哪一行。
func ComputeStats(cfg *config.LevelConfig, worldBottom float64) Stats {
	tm := NewTilemap(cfg, worldBottom)

	s := Stats{
		Name:       cfg.Name,
		Cols:       tm.Cols(),
		Rows:       tm.Rows(),
		TileSize:   tm.TileSize(),
		SolidTiles: tm.SolidCount(),
		Width:      tm.Width(),
		Height:     tm.Height(),
		EnemyCount: len(cfg.Enemies),
	}
	s.EmptyTiles = s.Cols*s.Rows - s.SolidTiles

	col, row := spawnCell(tm, cfg.Player)
	s.PlayerCell = [2]int{col, row}
	if !inGrid(tm, col, row) {
		s.OutOfBounds++
	}
	for _, e := range cfg.Enemies {
		if c, r := spawnCell(tm, e); !inGrid(tm, c, r) {
			s.OutOfBounds++
		}
	}
	return s
}

// RenderGrid 将关卡渲染为彩色字符网格
// 出生点覆盖所在格子，玩家优先于敌人
func RenderGrid(cfg *config.LevelConfig, worldBottom float64) string {
	tm := NewTilemap(cfg, worldBottom)

	marks := make(map[[2]int]string)
	for _, e := range cfg.Enemies {
		c, r := spawnCell(tm, e)
		marks[[2]int{c, r}] = enemyStyle.Render(glyphEnemy)
	}
	c, r := spawnCell(tm, cfg.Player)
	marks[[2]int{c, r}] = playerStyle.Render(glyphPlayer)

	var b strings.Builder
	for row := 0; row < tm.Rows(); row++ {
		for col := 0; col < tm.Cols(); col++ {
			if m, ok := marks[[2]int{col, row}]; ok {
				b.WriteString(m)
				continue
			}
			if tm.IsSolid(col, row) {
				b.WriteString(solidStyle.Render(glyphSolid))
			} else {
				b.WriteString(emptyStyle.Render(glyphEmpty))
			}
		}
		if row < tm.Rows()-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// RenderStats 渲染统计信息面板
func RenderStats(s Stats) string {
	lines := []string{
		titleStyle.Render(s.Name),
		fmt.Sprintf("grid:     %d x %d (tile %.0f)", s.Cols, s.Rows, s.TileSize),
		fmt.Sprintf("world:    %.0f x %.0f", s.Width, s.Height),
		fmt.Sprintf("solid:    %d", s.SolidTiles),
		fmt.Sprintf("empty:    %d", s.EmptyTiles),
		fmt.Sprintf("player:   col %d row %d", s.PlayerCell[0], s.PlayerCell[1]),
		fmt.Sprintf("enemies:  %d", s.EnemyCount),
	}
	if s.OutOfBounds > 0 {
		lines = append(lines, enemyStyle.Render(fmt.Sprintf("warning:  %d spawn(s) outside the grid", s.OutOfBounds)))
	}
	return statsStyle.Render(strings.Join(lines, "\n"))
}

// Preview 网格与统计面板左右拼接
func Preview(cfg *config.LevelConfig, worldBottom float64) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		RenderGrid(cfg, worldBottom),
		"  ",
		RenderStats(ComputeStats(cfg, worldBottom)),
	)
}
