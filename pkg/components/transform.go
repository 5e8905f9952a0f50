package components

import "math"

// TransformComponent 存储实体的世界坐标和缩放
// 坐标原点在窗口中心，Y 轴向上
type TransformComponent struct {
	X, Y   float64 // 中心点世界坐标
	ScaleX float64 // 水平缩放
	ScaleY float64 // 垂直缩放，负值表示上下翻转（敌机激光）
}

// AbsScale 返回缩放的绝对值，用于计算碰撞盒
func (t *TransformComponent) AbsScale() (float64, float64) {
	return math.Abs(t.ScaleX), math.Abs(t.ScaleY)
}
