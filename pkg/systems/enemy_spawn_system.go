package systems

import (
	"log"
	"math/rand"

	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/Norlock/space-fighters/pkg/ecs"
	"github.com/Norlock/space-fighters/pkg/entities"
	"github.com/Norlock/space-fighters/pkg/game"
)

// EnemySpawnSystem 按固定间隔生成敌机
// 同时存活的敌机数不超过 MaxEnemies；它是 ActiveEnemies 唯一的递增方
type EnemySpawnSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	config        *config.GameConfig
	timestep      *FixedTimestep
	rng           *rand.Rand
}

// NewEnemySpawnSystem 创建敌机生成系统
//
// 参数:
//   - em: 实体管理器
//   - gs: 本局游戏状态
//   - cfg: 游戏配置（生成间隔、上限、出生点模式）
//   - rng: 随机出生点使用的随机源；为 nil 时使用固定种子
func NewEnemySpawnSystem(em *ecs.EntityManager, gs *game.GameState, cfg *config.GameConfig, rng *rand.Rand) *EnemySpawnSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &EnemySpawnSystem{
		entityManager: em,
		gameState:     gs,
		config:        cfg,
		timestep:      NewFixedTimestep(cfg.Gameplay.EnemySpawnInterval),
		rng:           rng,
	}
}

// Update 推进生成计时器，每个到期的间隔尝试生成一架敌机
func (s *EnemySpawnSystem) Update(deltaTime float64) {
	steps := s.timestep.Advance(deltaTime)
	for i := 0; i < steps; i++ {
		s.spawnOnce()
	}
}

// spawnOnce 在未达到上限时生成一架敌机
// 返回是否真的生成了
func (s *EnemySpawnSystem) spawnOnce() bool {
	if s.gameState.ActiveEnemies >= s.config.Gameplay.MaxEnemies {
		return false
	}

	x, y := s.spawnPosition()
	id, err := entities.NewEnemy(s.entityManager, s.config, x, y)
	if err != nil {
		log.Printf("[EnemySpawnSystem] Failed to spawn enemy: %v", err)
		return false
	}

	s.gameState.EnemySpawned()
	log.Printf("[EnemySpawnSystem] Enemy %d spawned at (%.1f, %.1f), active=%d",
		id, x, y, s.gameState.ActiveEnemies)
	return true
}

// spawnPosition 返回出生点
// 默认固定在左上角；配置 randomSpawn 时在顶部一行随机取 x
func (s *EnemySpawnSystem) spawnPosition() (float64, float64) {
	x, y := entities.EnemySpawnPosition(s.config)
	if !s.config.Gameplay.RandomSpawn {
		return x, y
	}

	span := float64(s.config.Window.Width) - 2*config.EnemySpawnInset
	if span <= 0 {
		return x, y
	}
	return x + s.rng.Float64()*span, y
}
