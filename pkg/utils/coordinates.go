// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供世界坐标与屏幕坐标之间的转换。
//
// # 坐标系统
//
//   - **世界坐标**：原点在窗口中心，X 轴向右，Y 轴向上（玩法系统使用）
//   - **屏幕坐标**：原点在窗口左上角，X 轴向右，Y 轴向下（Ebiten 绘制使用）
//   - **终端坐标**：以字符格为单位的屏幕坐标（终端前端使用）
//
// 实体坐标代表实体的视觉中心。
package utils

import "math"

// WorldToScreen 将世界坐标转换为屏幕坐标
//
//	screenX = worldX + width/2
//	screenY = height/2 - worldY
func WorldToScreen(worldX, worldY float64, screenWidth, screenHeight int) (float64, float64) {
	return worldX + float64(screenWidth)/2, float64(screenHeight)/2 - worldY
}

// WorldToCell 将世界坐标映射到 cols×rows 的字符网格
// 返回的格子坐标可能超出网格，调用方负责裁剪
func WorldToCell(worldX, worldY float64, worldWidth, worldHeight, cols, rows int) (int, int) {
	if worldWidth <= 0 || worldHeight <= 0 {
		return 0, 0
	}
	sx, sy := WorldToScreen(worldX, worldY, worldWidth, worldHeight)
	col := int(math.Floor(sx * float64(cols) / float64(worldWidth)))
	row := int(math.Floor(sy * float64(rows) / float64(worldHeight)))
	return col, row
}
