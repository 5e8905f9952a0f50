package components

// TimerComponent 通用计时器组件
// 用于处理需要时间间隔的行为（如爆炸动画的逐帧推进）
type TimerComponent struct {
	Duration  float64 // 周期（秒）
	Elapsed   float64 // 当前周期内已过时间（秒）
	Repeating bool    // 到期后是否自动开始下一个周期
	Finished  bool    // 非循环计时器是否已经到期
}

// Tick 推进计时器并返回本次到期的次数
// 循环计时器在一次较长的 Tick 中可能多次到期
func (t *TimerComponent) Tick(deltaTime float64) int {
	if t.Finished || t.Duration <= 0 {
		return 0
	}

	t.Elapsed += deltaTime
	times := 0
	for t.Elapsed >= t.Duration {
		t.Elapsed -= t.Duration
		times++
		if !t.Repeating {
			t.Finished = true
			t.Elapsed = 0
			break
		}
	}
	return times
}
