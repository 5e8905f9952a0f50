package components

// SpriteKind 标识实体使用哪一张贴图
// 渲染层根据它选择具体的图像资源
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteEnemy
	SpritePlayerLaser
	SpriteEnemyLaser
	SpriteExplosion
)

// SpriteComponent 存储实体的视觉尺寸（未缩放的贴图尺寸）
// 碰撞盒 = 贴图尺寸 × |缩放|，以 TransformComponent 的坐标为中心
type SpriteComponent struct {
	Kind   SpriteKind
	Width  float64
	Height float64
}
