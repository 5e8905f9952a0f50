package systems

import (
	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/Norlock/space-fighters/pkg/ecs"
)

// LaserMovementSystem 移动所有激光，飞出上下边界一定距离后销毁
type LaserMovementSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
}

// NewLaserMovementSystem 创建激光移动系统
func NewLaserMovementSystem(em *ecs.EntityManager, cfg *config.GameConfig) *LaserMovementSystem {
	return &LaserMovementSystem{
		entityManager: em,
		config:        cfg,
	}
}

// Update 移动激光并销毁越界的激光
func (s *LaserMovementSystem) Update(deltaTime float64) {
	limit := float64(s.config.Window.Height)/2 + s.config.Gameplay.LaserDespawnMargin

	lasers := ecs.GetEntitiesWith3[
		*components.LaserComponent,
		*components.TransformComponent,
		*components.SpeedComponent,
	](s.entityManager)

	for _, id := range lasers {
		laser, _ := ecs.GetComponent[*components.LaserComponent](s.entityManager, id)
		tf, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		speed, _ := ecs.GetComponent[*components.SpeedComponent](s.entityManager, id)

		tf.Y += laser.DirY * speed.Value * deltaTime
		tf.X += laser.DriftX

		if tf.Y > limit || tf.Y < -limit {
			s.entityManager.DestroyEntity(id)
		}
	}
}
