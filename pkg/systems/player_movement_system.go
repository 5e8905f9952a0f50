package systems

import (
	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/Norlock/space-fighters/pkg/ecs"
)

// PlayerMovementSystem 根据输入水平移动玩家，玩家不会移出窗口
type PlayerMovementSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
	input         PlayerInput
}

// NewPlayerMovementSystem 创建玩家移动系统
func NewPlayerMovementSystem(em *ecs.EntityManager, cfg *config.GameConfig, input PlayerInput) *PlayerMovementSystem {
	return &PlayerMovementSystem{
		entityManager: em,
		config:        cfg,
		input:         input,
	}
}

// Update 移动玩家
// 没有玩家实体（重生等待中）时什么都不做
func (s *PlayerMovementSystem) Update(deltaTime float64) {
	if s.input == nil {
		return
	}
	axis := s.input.MoveAxis()
	if axis == 0 {
		return
	}

	playerID, ok := s.entityManager.FirstWithTag(components.TagPlayer)
	if !ok {
		return
	}
	tf, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, playerID)
	if !ok {
		return
	}
	speed, ok := ecs.GetComponent[*components.SpeedComponent](s.entityManager, playerID)
	if !ok {
		return
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, playerID)
	if !ok {
		return
	}

	tf.X += axis * speed.Value * deltaTime

	// 限制在窗口内
	halfWidth := components.BoundsOf(tf, sprite).Width / 2
	limit := float64(s.config.Window.Width)/2 - halfWidth
	if tf.X < -limit {
		tf.X = -limit
	} else if tf.X > limit {
		tf.X = limit
	}
}
