// Package utils 提供游戏开发中常用的工具函数
//
// geometry.go 提供轴对齐矩形（AABB）与二维向量的基础运算。
//
// # 坐标系统
//
//   - 世界坐标：原点为地图左上角，Y 轴向下
//   - 屏幕坐标：世界坐标减去摄像机偏移
//   - 实体位置：PositionComponent.X/Y 表示碰撞盒左上角
package utils

import "math"

// Rect 轴对齐矩形（左上角 + 宽高）
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect 创建矩形
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left 返回左边界
func (r Rect) Left() float64 { return r.X }

// Right 返回右边界
func (r Rect) Right() float64 { return r.X + r.W }

// Top 返回上边界
func (r Rect) Top() float64 { return r.Y }

// Bottom 返回下边界
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center 返回矩形中心点
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps 检查两个矩形是否重叠
// 边缘接触（面积为 0 的交集）不算重叠
func (r Rect) Overlaps(other Rect) bool {
	return r.Left() < other.Right() &&
		r.Right() > other.Left() &&
		r.Top() < other.Bottom() &&
		r.Bottom() > other.Top()
}

// Contains 检查点是否在矩形内（含左上边界，不含右下边界）
func (r Rect) Contains(px, py float64) bool {
	return px >= r.Left() && px < r.Right() &&
		py >= r.Top() && py < r.Bottom()
}

// Clamp 将 v 限制在 [lo, hi] 区间内
// lo 可以为 -Inf，表示不限制下界
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lerp 线性插值：t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Normalize 归一化二维向量
// 零向量返回 (0, 0, false)
func Normalize(x, y float64) (float64, float64, bool) {
	length := math.Hypot(x, y)
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return 0, 0, false
	}
	return x / length, y / length, true
}

// Angle 返回向量 (x, y) 的角度（弧度，范围 [-π, π]）
func Angle(x, y float64) float64 {
	return math.Atan2(y, x)
}
