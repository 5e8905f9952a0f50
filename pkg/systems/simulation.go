package systems

import (
	"math/rand"

	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/Norlock/space-fighters/pkg/ecs"
	"github.com/Norlock/space-fighters/pkg/game"
)

// Simulation 一局游戏的完整模拟
//
// 持有实体管理器、游戏状态和全部玩法系统，并按固定顺序每帧运行它们。
// 桌面场景、终端前端和无界面模拟共用同一个 Simulation。
//
// 每帧的系统顺序：
//  1. 玩家重生、移动、开火
//  2. 敌机生成、开火（固定间隔）
//  3. 敌机和激光移动
//  4. 碰撞检测
//  5. 爆炸动画推进，然后把本帧的爆炸请求转换为动画
//  6. 统一移除本帧标记销毁的实体
type Simulation struct {
	EntityManager *ecs.EntityManager
	GameState     *game.GameState
	Config        *config.GameConfig

	playerSpawn        *PlayerSpawnSystem
	playerMovement     *PlayerMovementSystem
	playerFire         *PlayerFireSystem
	enemySpawn         *EnemySpawnSystem
	enemyFire          *EnemyFireSystem
	enemyMovement      *EnemyMovementSystem
	laserMovement      *LaserMovementSystem
	collision          *CollisionSystem
	explosionAnimation *ExplosionAnimationSystem
	explosionSpawn     *ExplosionSpawnSystem
}

// NewSimulation 创建一局新游戏
//
// 参数:
//   - cfg: 游戏配置
//   - input: 玩家输入，可为 nil（无人操作）
//   - rng: 敌机随机出生点使用的随机源，可为 nil
func NewSimulation(cfg *config.GameConfig, input PlayerInput, rng *rand.Rand) *Simulation {
	if input == nil {
		input = NoInput{}
	}

	em := ecs.NewEntityManager()
	gs := game.NewGameState(cfg.Gameplay.EnemiesLeft, cfg.Gameplay.LivesLeft)

	return &Simulation{
		EntityManager:      em,
		GameState:          gs,
		Config:             cfg,
		playerSpawn:        NewPlayerSpawnSystem(em, gs, cfg),
		playerMovement:     NewPlayerMovementSystem(em, cfg, input),
		playerFire:         NewPlayerFireSystem(em, gs, cfg, input),
		enemySpawn:         NewEnemySpawnSystem(em, gs, cfg, rng),
		enemyFire:          NewEnemyFireSystem(em, gs, cfg),
		enemyMovement:      NewEnemyMovementSystem(em, cfg),
		laserMovement:      NewLaserMovementSystem(em, cfg),
		collision:          NewCollisionSystem(em, gs),
		explosionAnimation: NewExplosionAnimationSystem(em),
		explosionSpawn:     NewExplosionSpawnSystem(em, cfg),
	}
}

// SetSoundPlayer 为所有会发声的系统设置音效播放器
func (s *Simulation) SetSoundPlayer(sp game.SoundPlayer) {
	s.playerFire.SetSoundPlayer(sp)
	s.enemyFire.SetSoundPlayer(sp)
	s.collision.SetSoundPlayer(sp)
}

// Start 从主菜单进入游戏
func (s *Simulation) Start() bool {
	return s.GameState.TransitionTo(game.AppStateInGame)
}

// TogglePause 在游戏中和暂停之间切换，返回切换后是否处于暂停
func (s *Simulation) TogglePause() bool {
	switch s.GameState.AppState() {
	case game.AppStateInGame:
		s.GameState.TransitionTo(game.AppStatePaused)
	case game.AppStatePaused:
		s.GameState.TransitionTo(game.AppStateInGame)
	}
	return s.GameState.AppState() == game.AppStatePaused
}

// Update 推进一帧
// 只有处于 InGame 状态时才运行；暂停、菜单和结束状态下游戏时间不前进
func (s *Simulation) Update(deltaTime float64) {
	if s.GameState.AppState() != game.AppStateInGame {
		return
	}
	s.GameState.Time += deltaTime

	s.playerSpawn.Update(deltaTime)
	s.playerMovement.Update(deltaTime)
	s.playerFire.Update(deltaTime)

	s.enemySpawn.Update(deltaTime)
	s.enemyFire.Update(deltaTime)

	s.enemyMovement.Update(deltaTime)
	s.laserMovement.Update(deltaTime)

	s.collision.Update(deltaTime)

	s.explosionAnimation.Update(deltaTime)
	s.explosionSpawn.Update(deltaTime)

	s.EntityManager.RemoveMarkedEntities()
}

// PlayerPosition 返回玩家的世界坐标；玩家不在场时 ok 为 false
func (s *Simulation) PlayerPosition() (x, y float64, ok bool) {
	id, ok := s.EntityManager.FirstWithTag(components.TagPlayer)
	if !ok {
		return 0, 0, false
	}
	tf, ok := ecs.GetComponent[*components.TransformComponent](s.EntityManager, id)
	if !ok {
		return 0, 0, false
	}
	return tf.X, tf.Y, true
}
