package components

// LaserComponent 描述激光的飞行方向
type LaserComponent struct {
	DirY   float64 // +1 向上（玩家激光），-1 向下（敌机激光）
	DriftX float64 // 每帧固定的水平漂移
}
