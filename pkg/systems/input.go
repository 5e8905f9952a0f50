package systems

// PlayerInput 玩家操作的来源
// 桌面端由键盘实现，终端前端和测试各有自己的实现
type PlayerInput interface {
	// MoveAxis 返回水平移动方向，-1 向左，+1 向右，0 不动
	MoveAxis() float64
	// FirePressed 返回开火键当前是否按下
	FirePressed() bool
}

// NoInput 没有任何操作的输入，用于无人值守的模拟
type NoInput struct{}

func (NoInput) MoveAxis() float64 { return 0 }
func (NoInput) FirePressed() bool { return false }
