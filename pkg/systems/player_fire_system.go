package systems

import (
	"log"

	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/Norlock/space-fighters/pkg/ecs"
	"github.com/Norlock/space-fighters/pkg/entities"
	"github.com/Norlock/space-fighters/pkg/game"
)

// PlayerFireSystem 玩家开火
// 每次按下开火键发射一对激光；必须松开后才能再次开火
type PlayerFireSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.GameConfig
	input         PlayerInput
	sound         game.SoundPlayer
	readyFire     bool
}

// NewPlayerFireSystem 创建玩家开火系统
func NewPlayerFireSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.GameConfig, input PlayerInput) *PlayerFireSystem {
	return &PlayerFireSystem{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
		input:         input,
		readyFire:     true,
	}
}

// SetSoundPlayer 设置音效播放器，nil 表示静音
func (s *PlayerFireSystem) SetSoundPlayer(sp game.SoundPlayer) {
	s.sound = sp
}

// Update 读取开火键并发射激光
func (s *PlayerFireSystem) Update(deltaTime float64) {
	if s.input == nil {
		return
	}

	if !s.input.FirePressed() {
		s.readyFire = true
		return
	}
	if !s.readyFire || !s.gameState.Player.On {
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

	if _, err := entities.NewPlayerLaserPair(s.entityManager, s.config, tf.X, tf.Y+config.PlayerLaserOffsetY); err != nil {
		log.Printf("[PlayerFireSystem] Failed to fire: %v", err)
		return
	}
	s.readyFire = false

	if s.sound != nil {
		s.sound.PlaySound(game.SoundPlayerLaser)
	}
}
