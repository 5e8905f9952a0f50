package systems

// timestepEpsilon 吸收浮点累加误差，使 60 个 1/60 秒的帧恰好凑满 1 秒
const timestepEpsilon = 1e-9

// FixedTimestep 固定步长调度器
// 把逐帧的 deltaTime 累加起来，按固定的 Step 切分成离散的"到期次数"
type FixedTimestep struct {
	Step        float64 // 步长（秒）
	accumulator float64
}

// NewFixedTimestep 创建固定步长调度器
func NewFixedTimestep(step float64) *FixedTimestep {
	return &FixedTimestep{Step: step}
}

// Advance 推进 deltaTime 秒并返回本次到期的步数
// Step <= 0 时永远不到期
func (ft *FixedTimestep) Advance(deltaTime float64) int {
	if ft.Step <= 0 {
		return 0
	}

	ft.accumulator += deltaTime
	steps := 0
	for ft.accumulator+timestepEpsilon >= ft.Step {
		ft.accumulator -= ft.Step
		steps++
	}
	return steps
}

// Reset 清空累加器
func (ft *FixedTimestep) Reset() {
	ft.accumulator = 0
}
