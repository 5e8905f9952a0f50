package components

// BoundingBox 轴对齐碰撞盒（中心对齐）
type BoundingBox struct {
	CenterX float64
	CenterY float64
	Width   float64
	Height  float64
}

// BoundsOf 由实体的变换和贴图尺寸计算碰撞盒
// 碰撞盒 = 贴图尺寸 × |缩放|，中心为实体坐标
func BoundsOf(tf *TransformComponent, sprite *SpriteComponent) BoundingBox {
	sx, sy := tf.AbsScale()
	return BoundingBox{
		CenterX: tf.X,
		CenterY: tf.Y,
		Width:   sprite.Width * sx,
		Height:  sprite.Height * sy,
	}
}
