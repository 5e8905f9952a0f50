package systems

import (
	"log"

	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/Norlock/space-fighters/pkg/ecs"
	"github.com/Norlock/space-fighters/pkg/entities"
	"github.com/Norlock/space-fighters/pkg/game"
)

// EnemyFireSystem 按固定间隔让每架存活的敌机发射一道激光
// 玩家不在场（重生等待中）时不开火
type EnemyFireSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.GameConfig
	timestep      *FixedTimestep
	sound         game.SoundPlayer
}

// NewEnemyFireSystem 创建敌机开火系统
func NewEnemyFireSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.GameConfig) *EnemyFireSystem {
	return &EnemyFireSystem{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
		timestep:      NewFixedTimestep(cfg.Gameplay.EnemyFireInterval),
	}
}

// SetSoundPlayer 设置音效播放器，nil 表示静音
func (s *EnemyFireSystem) SetSoundPlayer(sp game.SoundPlayer) {
	s.sound = sp
}

// Update 推进开火计时器
func (s *EnemyFireSystem) Update(deltaTime float64) {
	steps := s.timestep.Advance(deltaTime)
	for i := 0; i < steps; i++ {
		s.fireVolley()
	}
}

// fireVolley 每架敌机发射一道激光，返回发射数量
func (s *EnemyFireSystem) fireVolley() int {
	if !s.gameState.Player.On {
		return 0
	}

	fired := 0
	for _, id := range s.entityManager.EntitiesWithTag(components.TagEnemy) {
		if s.entityManager.IsMarked(id) {
			continue
		}
		tf, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if _, err := entities.NewEnemyLaser(s.entityManager, s.config, tf.X, tf.Y); err != nil {
			log.Printf("[EnemyFireSystem] Failed to spawn laser for enemy %d: %v", id, err)
			continue
		}
		fired++
	}

	if fired > 0 && s.sound != nil {
		s.sound.PlaySound(game.SoundEnemyLaser)
	}
	return fired
}
