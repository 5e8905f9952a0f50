package components

// AnimationComponent 管理基于精灵表的逐帧动画
// 只向前推进：CurrentFrame 从 0 走到 FrameCount-1，推进到 FrameCount 时实体被销毁
type AnimationComponent struct {
	FrameCount   int // 精灵表总帧数
	CurrentFrame int // 当前显示的帧索引(0-based)
}
