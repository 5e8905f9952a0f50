package components

// SpeedComponent 实体的标量速度（像素/秒）
// 生成时附加，之后不再修改
type SpeedComponent struct {
	Value float64
}
