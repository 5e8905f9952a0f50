package utils

// AxisFromKeys 把左右两个按键合成一个方向
// 同时按下时相互抵消
func AxisFromKeys(left, right bool) float64 {
	axis := 0.0
	if left {
		axis--
	}
	if right {
		axis++
	}
	return axis
}
