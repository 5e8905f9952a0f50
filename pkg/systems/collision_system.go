package systems

import (
	"log"

	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/ecs"
	"github.com/Norlock/space-fighters/pkg/entities"
	"github.com/Norlock/space-fighters/pkg/game"
)

// CollisionSystem 处理激光命中
//
// 检测两组碰撞：玩家激光 × 敌机、敌机激光 × 玩家。
// 命中时激光总是被销毁；同一帧内一个目标最多被销毁并计数一次，
// 即使有多道激光同时命中它。每次目标销毁生成一个爆炸请求。
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	gameState     *game.GameState
	sound         game.SoundPlayer
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器，用于查询和销毁实体
//   - gs: 本局游戏状态，碰撞系统是计数器的写入方
//
// 返回:
//   - *CollisionSystem: 碰撞系统实例
func NewCollisionSystem(em *ecs.EntityManager, gs *game.GameState) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		gameState:     gs,
	}
}

// SetSoundPlayer 设置音效播放器，nil 表示静音
func (s *CollisionSystem) SetSoundPlayer(sp game.SoundPlayer) {
	s.sound = sp
}

// CheckAABBCollision 检查两个AABB（轴对齐边界框）是否重叠
// 两个轴上的重叠长度都必须大于 0；边界刚好接触不算碰撞
func CheckAABBCollision(a, b components.BoundingBox) bool {
	overlapX := min(a.CenterX+a.Width/2, b.CenterX+b.Width/2) - max(a.CenterX-a.Width/2, b.CenterX-b.Width/2)
	overlapY := min(a.CenterY+a.Height/2, b.CenterY+b.Height/2) - max(a.CenterY-a.Height/2, b.CenterY-b.Height/2)
	return overlapX > 0 && overlapY > 0
}

// target 碰撞检测中的一个目标
type target struct {
	id  ecs.EntityID
	box components.BoundingBox
}

// Update 检测并处理本帧的所有命中
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒），本系统不使用
func (s *CollisionSystem) Update(deltaTime float64) {
	// 本帧已经被销毁的目标
	seen := make(map[ecs.EntityID]struct{})

	enemies := s.collectTargets(components.TagEnemy)
	s.resolve(components.TagPlayerLaser, enemies, seen, s.destroyEnemy)

	// 玩家不在场是正常情况（重生等待中），跳过这一半检测
	players := s.collectTargets(components.TagPlayer)
	if len(players) == 0 {
		return
	}
	s.resolve(components.TagEnemyLaser, players, seen, s.destroyPlayer)
}

// collectTargets 收集带指定标签、未被标记销毁的实体及其碰撞盒
func (s *CollisionSystem) collectTargets(tag ecs.Tag) []target {
	ids := s.entityManager.EntitiesWithTag(tag)
	targets := make([]target, 0, len(ids))
	for _, id := range ids {
		if s.entityManager.IsMarked(id) {
			continue
		}
		box, ok := s.boundsOf(id)
		if !ok {
			continue
		}
		targets = append(targets, target{id: id, box: box})
	}
	return targets
}

// resolve 检测 laserTag 的所有激光与 targets 的碰撞
// 一道激光会销毁它重叠的所有目标，然后自身被销毁
func (s *CollisionSystem) resolve(laserTag ecs.Tag, targets []target, seen map[ecs.EntityID]struct{}, destroy func(target)) {
	for _, laserID := range s.entityManager.EntitiesWithTag(laserTag) {
		if s.entityManager.IsMarked(laserID) {
			continue
		}
		laserBox, ok := s.boundsOf(laserID)
		if !ok {
			continue
		}

		hit := false
		for _, t := range targets {
			if !CheckAABBCollision(laserBox, t.box) {
				continue
			}
			hit = true

			if _, done := seen[t.id]; done {
				continue
			}
			seen[t.id] = struct{}{}
			destroy(t)
		}

		if hit {
			s.entityManager.DestroyEntity(laserID)
		}
	}
}

// destroyEnemy 销毁敌机并更新计数
func (s *CollisionSystem) destroyEnemy(t target) {
	s.requestExplosion(t)
	s.entityManager.DestroyEntity(t.id)
	s.gameState.EnemyDestroyed()

	log.Printf("[CollisionSystem] Enemy %d destroyed, enemies left=%d", t.id, s.gameState.EnemiesLeft)
	if s.sound != nil {
		s.sound.PlaySound(game.SoundExplosion)
	}
}

// destroyPlayer 销毁玩家并扣除生命
func (s *CollisionSystem) destroyPlayer(t target) {
	s.requestExplosion(t)
	s.entityManager.DestroyEntity(t.id)
	s.gameState.PlayerDestroyed()

	log.Printf("[CollisionSystem] Player %d shot, lives left=%d", t.id, s.gameState.LivesLeft)
	if s.sound != nil {
		s.sound.PlaySound(game.SoundPlayerHit)
	}
}

// requestExplosion 在目标当前位置生成爆炸请求
func (s *CollisionSystem) requestExplosion(t target) {
	if _, err := entities.NewExplosionRequest(s.entityManager, t.box.CenterX, t.box.CenterY); err != nil {
		log.Printf("[CollisionSystem] Failed to request explosion: %v", err)
	}
}

// boundsOf 返回实体的碰撞盒
func (s *CollisionSystem) boundsOf(id ecs.EntityID) (components.BoundingBox, bool) {
	tf, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
	if !ok {
		return components.BoundingBox{}, false
	}
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok {
		return components.BoundingBox{}, false
	}
	return components.BoundsOf(tf, sprite), true
}
