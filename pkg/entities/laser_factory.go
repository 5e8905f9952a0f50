package entities

import (
	"fmt"

	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/Norlock/space-fighters/pkg/ecs"
)

// NewPlayerLaser 创建一道玩家激光
// 激光向上直线飞行，没有水平漂移
func NewPlayerLaser(em *ecs.EntityManager, cfg *config.GameConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return ecs.InvalidEntity, fmt.Errorf("game config cannot be nil")
	}

	id := em.CreateEntity()
	em.AddTag(id, components.TagPlayerLaser)
	em.AddComponent(id, &components.TransformComponent{
		X:      x,
		Y:      y,
		ScaleX: cfg.Gameplay.Scale,
		ScaleY: cfg.Gameplay.Scale,
	})
	em.AddComponent(id, &components.SpeedComponent{Value: cfg.Gameplay.Speed})
	em.AddComponent(id, &components.LaserComponent{DirY: 1})
	em.AddComponent(id, &components.SpriteComponent{
		Kind:   components.SpritePlayerLaser,
		Width:  cfg.Sprites.Laser.Width,
		Height: cfg.Sprites.Laser.Height,
	})
	return id, nil
}

// NewPlayerLaserPair 在玩家两侧机翼各创建一道激光
func NewPlayerLaserPair(em *ecs.EntityManager, cfg *config.GameConfig, x, y float64) ([2]ecs.EntityID, error) {
	var ids [2]ecs.EntityID
	for i, offset := range []float64{-config.PlayerLaserOffsetX, config.PlayerLaserOffsetX} {
		id, err := NewPlayerLaser(em, cfg, x+offset, y)
		if err != nil {
			return ids, err
		}
		ids[i] = id
	}
	return ids, nil
}

// NewEnemyLaser 在敌机下方创建一道敌机激光
// 贴图上下翻转，激光向下飞行并带有固定的水平漂移
//
// 参数:
//   - enemyX, enemyY: 开火敌机的坐标，激光出生在其下方 EnemyLaserOffsetY 处
func NewEnemyLaser(em *ecs.EntityManager, cfg *config.GameConfig, enemyX, enemyY float64) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return ecs.InvalidEntity, fmt.Errorf("game config cannot be nil")
	}

	id := em.CreateEntity()
	em.AddTag(id, components.TagEnemyLaser)
	em.AddComponent(id, &components.TransformComponent{
		X:      enemyX,
		Y:      enemyY - config.EnemyLaserOffsetY,
		ScaleX: cfg.Gameplay.Scale,
		ScaleY: -cfg.Gameplay.Scale,
	})
	em.AddComponent(id, &components.SpeedComponent{Value: cfg.Gameplay.Speed})
	em.AddComponent(id, &components.LaserComponent{DirY: -1, DriftX: cfg.Gameplay.EnemyLaserDriftX})
	em.AddComponent(id, &components.SpriteComponent{
		Kind:   components.SpriteEnemyLaser,
		Width:  cfg.Sprites.Laser.Width,
		Height: cfg.Sprites.Laser.Height,
	})
	return id, nil
}
