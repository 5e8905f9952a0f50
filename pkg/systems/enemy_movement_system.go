package systems

import (
	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/Norlock/space-fighters/pkg/ecs"
)

// EnemyMovementSystem 敌机蛇形移动
// 敌机一直向右移动；x 到达窗口宽度时回到 0 并下降一行。只向右换行，不向左
type EnemyMovementSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
}

// NewEnemyMovementSystem 创建敌机移动系统
func NewEnemyMovementSystem(em *ecs.EntityManager, cfg *config.GameConfig) *EnemyMovementSystem {
	return &EnemyMovementSystem{
		entityManager: em,
		config:        cfg,
	}
}

// Update 移动所有敌机
func (s *EnemyMovementSystem) Update(deltaTime float64) {
	g := s.config.Gameplay
	winWidth := float64(s.config.Window.Width)

	for _, id := range s.entityManager.EntitiesWithTag(components.TagEnemy) {
		tf, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if !ok {
			continue
		}
		speed, ok := ecs.GetComponent[*components.SpeedComponent](s.entityManager, id)
		if !ok {
			continue
		}

		tf.X += g.EnemySpeedFactor * speed.Value * deltaTime
		if tf.X >= winWidth {
			tf.X = 0
			tf.Y -= g.EnemyRowHeight
		}
	}
}
