package entities

import (
	"fmt"

	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/Norlock/space-fighters/pkg/ecs"
)

// NewExplosionRequest 在被击毁目标的位置创建爆炸请求
// 请求只携带坐标，同一帧内由爆炸生成系统消费
func NewExplosionRequest(em *ecs.EntityManager, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, fmt.Errorf("entity manager cannot be nil")
	}

	id := em.CreateEntity()
	em.AddTag(id, components.TagExplosionRequest)
	em.AddComponent(id, &components.ExplosionRequestComponent{X: x, Y: y})
	return id, nil
}

// NewExplosion 创建爆炸动画实体
// 动画从第 0 帧开始，每 FrameDuration 秒前进一帧
func NewExplosion(em *ecs.EntityManager, cfg *config.GameConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return ecs.InvalidEntity, fmt.Errorf("game config cannot be nil")
	}

	ec := cfg.Explosion
	id := em.CreateEntity()
	em.AddTag(id, components.TagExplosion)
	em.AddComponent(id, &components.TransformComponent{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	em.AddComponent(id, &components.SpriteComponent{
		Kind:   components.SpriteExplosion,
		Width:  float64(ec.TileSize),
		Height: float64(ec.TileSize),
	})
	em.AddComponent(id, &components.AnimationComponent{FrameCount: ec.FrameCount()})
	em.AddComponent(id, &components.TimerComponent{
		Duration:  ec.FrameDuration,
		Repeating: true,
	})
	return id, nil
}
