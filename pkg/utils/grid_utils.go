// Package utils 提供展示层使用的坐标换算和输入工具
package utils

import "github.com/gonewx/lanedefense/pkg/config"

// 桌面窗口与草坪网格布局（逻辑像素）
const (
	ScreenWidth  = 960
	ScreenHeight = 600

	GridStartX = 140.0 // 网格起始X坐标（第 0 列左边界，即僵尸的终点）
	GridStartY = 100.0 // 网格起始Y坐标
	CellWidth  = 80.0  // 每格宽度
	CellHeight = 90.0  // 每格高度
)

// GridEndX 网格右边界（僵尸出生处）
func GridEndX() float64 {
	return GridStartX + config.GridColumns*CellWidth
}

// GridEndY 网格下边界
func GridEndY() float64 {
	return GridStartY + config.GridRows*CellHeight
}

// MouseToGridCoords 将鼠标屏幕坐标转换为草坪网格坐标
// 参数:
//   - mouseX, mouseY: 鼠标的屏幕坐标
//
// 返回:
//   - row: 行索引 (0-4)
//   - col: 列索引 (0-8)
//   - isValid: 是否在有效网格范围内
func MouseToGridCoords(mouseX, mouseY int) (row, col int, isValid bool) {
	x := float64(mouseX)
	y := float64(mouseY)

	if x < GridStartX || x >= GridEndX() || y < GridStartY || y >= GridEndY() {
		return 0, 0, false
	}

	col = int((x - GridStartX) / CellWidth)
	row = int((y - GridStartY) / CellHeight)

	// 防止浮点误差越界
	col = min(max(col, 0), config.GridColumns-1)
	row = min(max(row, 0), config.GridRows-1)

	return row, col, true
}

// GridToScreenCoords 将草坪网格坐标转换为格子中心的屏幕坐标
func GridToScreenCoords(row, col int) (centerX, centerY float64) {
	centerX = GridStartX + float64(col)*CellWidth + CellWidth/2
	centerY = GridStartY + float64(row)*CellHeight + CellHeight/2
	return centerX, centerY
}

// LaneToScreenX 将连续列坐标（僵尸、子弹的位置）转换为屏幕X坐标
// 位置 0 对应网格左边界，位置 9 对应右边界
func LaneToScreenX(position float64) float64 {
	return GridStartX + position*CellWidth
}

// RowCenterY 行中心的屏幕Y坐标
func RowCenterY(row int) float64 {
	return GridStartY + float64(row)*CellHeight + CellHeight/2
}
