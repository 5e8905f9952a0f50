package systems

import (
	"log"

	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/Norlock/space-fighters/pkg/ecs"
	"github.com/Norlock/space-fighters/pkg/entities"
	"github.com/Norlock/space-fighters/pkg/game"
)

// PlayerSpawnSystem 玩家生成与重生
//
// 开局时立即生成玩家；玩家被击落后等待 RespawnDelay 秒再重生。
// 它是 PlayerState.Spawned 唯一的调用方。
type PlayerSpawnSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.GameConfig
}

// NewPlayerSpawnSystem 创建玩家重生系统
func NewPlayerSpawnSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.GameConfig) *PlayerSpawnSystem {
	return &PlayerSpawnSystem{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
	}
}

// Update 检查是否需要生成玩家
func (s *PlayerSpawnSystem) Update(deltaTime float64) {
	player := &s.gameState.Player
	if player.On || s.gameState.IsGameOver() {
		return
	}

	// LastShot < 0 表示开局，还没被击落过
	if player.LastShot >= 0 && s.gameState.Time-player.LastShot < s.config.Gameplay.RespawnDelay {
		return
	}

	// 被击落的玩家实体要到本帧末尾才真正移除
	for _, id := range s.entityManager.EntitiesWithTag(components.TagPlayer) {
		if !s.entityManager.IsMarked(id) {
			log.Printf("[PlayerSpawnSystem] Player %d still alive, skip respawn", id)
			player.Spawned()
			return
		}
	}

	if _, err := entities.NewPlayer(s.entityManager, s.config); err != nil {
		log.Printf("[PlayerSpawnSystem] Failed to spawn player: %v", err)
		return
	}
	player.Spawned()
}
