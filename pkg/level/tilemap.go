// Package level 提供关卡的瓦片网格
package level

import (
	"github.com/decker502/fluffy/pkg/config"
	"github.com/decker502/fluffy/pkg/utils"
)

// TileID 瓦片类型标识，0 表示空格子
type TileID uint16

const (
	TileNone  TileID = 0
	TileGrass TileID = 1
)

// Tilemap 不可变的瓦片网格
//
// 单元格以一维数组存储，索引为 row*cols+col。
// 网格底行对齐到世界底部：YOffset = worldBottom - rows*tileSize。
type Tilemap struct {
	cols, rows int
	tileSize   float64
	yOffset    float64
	cells      []TileID
}

// NewTilemap 根据关卡配置创建瓦片网格
//
// 参数:
//   - cfg: 已验证的关卡配置
//   - worldBottom: 世界底部的 Y 坐标（通常为屏幕高度）
func NewTilemap(cfg *config.LevelConfig, worldBottom float64) *Tilemap {
	rows := len(cfg.Rows)
	cols := cfg.Cols()

	tm := &Tilemap{
		cols:     cols,
		rows:     rows,
		tileSize: cfg.TileSize,
		yOffset:  worldBottom - float64(rows)*cfg.TileSize,
		cells:    make([]TileID, rows*cols),
	}

	for r, line := range cfg.Rows {
		for c := 0; c < cols && c < len(line); c++ {
			if line[c] == config.TileSolid {
				tm.cells[r*cols+c] = TileGrass
			}
		}
	}

	return tm
}

// NewTilemapFromCells 直接由单元格数组创建网格（len(cells) 必须等于 rows*cols）
func NewTilemapFromCells(cols, rows int, tileSize, yOffset float64, cells []TileID) *Tilemap {
	copied := make([]TileID, cols*rows)
	copy(copied, cells)
	return &Tilemap{cols: cols, rows: rows, tileSize: tileSize, yOffset: yOffset, cells: copied}
}

// Cols 列数
func (t *Tilemap) Cols() int { return t.cols }

// Rows 行数
func (t *Tilemap) Rows() int { return t.rows }

// TileSize 单元格边长
func (t *Tilemap) TileSize() float64 { return t.tileSize }

// YOffset 网格顶部的世界 Y 坐标
func (t *Tilemap) YOffset() float64 { return t.yOffset }

// Width 地图宽度（世界单位）
func (t *Tilemap) Width() float64 { return float64(t.cols) * t.tileSize }

// Height 地图高度（世界单位）
func (t *Tilemap) Height() float64 { return float64(t.rows) * t.tileSize }

// At 返回 (col, row) 处的瓦片；越界返回 TileNone
func (t *Tilemap) At(col, row int) TileID {
	if col < 0 || row < 0 || col >= t.cols || row >= t.rows {
		return TileNone
	}
	return t.cells[row*t.cols+col]
}

// IsSolid 检查 (col, row) 是否为实心瓦片
func (t *Tilemap) IsSolid(col, row int) bool {
	return t.At(col, row) != TileNone
}

// TileRect 返回 (col, row) 单元格的世界坐标矩形
func (t *Tilemap) TileRect(col, row int) utils.Rect {
	return utils.NewRect(
		float64(col)*t.tileSize,
		t.yOffset+float64(row)*t.tileSize,
		t.tileSize,
		t.tileSize,
	)
}

// SolidCount 返回实心瓦片数量
func (t *Tilemap) SolidCount() int {
	n := 0
	for _, id := range t.cells {
		if id != TileNone {
			n++
		}
	}
	return n
}

// ForEachSolid 按行优先顺序遍历所有实心瓦片
// fn 返回 false 时提前结束遍历
func (t *Tilemap) ForEachSolid(fn func(col, row int, rect utils.Rect) bool) {
	for row := 0; row < t.rows; row++ {
		for col := 0; col < t.cols; col++ {
			if t.cells[row*t.cols+col] == TileNone {
				continue
			}
			if !fn(col, row, t.TileRect(col, row)) {
				return
			}
		}
	}
}
