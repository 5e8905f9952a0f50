package entities

import (
	"fmt"
	"log"

	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/Norlock/space-fighters/pkg/ecs"
)

// PlayerSpawnPosition 返回玩家的出生点
// 水平居中，机身底部距离窗口底边 PlayerBottomMargin
func PlayerSpawnPosition(cfg *config.GameConfig) (float64, float64) {
	bottom := -float64(cfg.Window.Height) / 2
	halfHeight := cfg.Sprites.Player.Height * cfg.Gameplay.Scale / 2
	return 0, bottom + halfHeight + config.PlayerBottomMargin
}

// EnemySpawnPosition 返回敌机的固定出生点（左上角内缩）
func EnemySpawnPosition(cfg *config.GameConfig) (float64, float64) {
	return -float64(cfg.Window.Width)/2 + config.EnemySpawnInset,
		float64(cfg.Window.Height)/2 - config.EnemySpawnInset
}

// NewPlayer 创建玩家实体
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置（出生点、速度、贴图尺寸）
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
//   - error: 参数为 nil 时返回错误
func NewPlayer(em *ecs.EntityManager, cfg *config.GameConfig) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return ecs.InvalidEntity, fmt.Errorf("game config cannot be nil")
	}

	x, y := PlayerSpawnPosition(cfg)
	id := em.CreateEntity()
	em.AddTag(id, components.TagPlayer)
	em.AddComponent(id, &components.TransformComponent{
		X:      x,
		Y:      y,
		ScaleX: cfg.Gameplay.Scale,
		ScaleY: cfg.Gameplay.Scale,
	})
	em.AddComponent(id, &components.SpeedComponent{Value: cfg.Gameplay.Speed})
	em.AddComponent(id, &components.SpriteComponent{
		Kind:   components.SpritePlayer,
		Width:  cfg.Sprites.Player.Width,
		Height: cfg.Sprites.Player.Height,
	})

	log.Printf("[FighterFactory] Player %d spawned at (%.1f, %.1f)", id, x, y)
	return id, nil
}

// NewEnemy 创建敌机实体
func NewEnemy(em *ecs.EntityManager, cfg *config.GameConfig, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return ecs.InvalidEntity, fmt.Errorf("entity manager cannot be nil")
	}
	if cfg == nil {
		return ecs.InvalidEntity, fmt.Errorf("game config cannot be nil")
	}

	id := em.CreateEntity()
	em.AddTag(id, components.TagEnemy)
	em.AddComponent(id, &components.TransformComponent{
		X:      x,
		Y:      y,
		ScaleX: cfg.Gameplay.Scale,
		ScaleY: cfg.Gameplay.Scale,
	})
	em.AddComponent(id, &components.SpeedComponent{Value: cfg.Gameplay.Speed})
	em.AddComponent(id, &components.SpriteComponent{
		Kind:   components.SpriteEnemy,
		Width:  cfg.Sprites.Enemy.Width,
		Height: cfg.Sprites.Enemy.Height,
	})
	return id, nil
}
