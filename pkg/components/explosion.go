package components

// ExplosionRequestComponent 爆炸请求
// 由碰撞系统创建，记录目标被销毁前的位置，同一帧内被爆炸生成系统消费
type ExplosionRequestComponent struct {
	X, Y float64
}
