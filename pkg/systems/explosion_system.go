package systems

import (
	"log"

	"github.com/Norlock/space-fighters/pkg/components"
	"github.com/Norlock/space-fighters/pkg/config"
	"github.com/Norlock/space-fighters/pkg/ecs"
	"github.com/Norlock/space-fighters/pkg/entities"
)

// ExplosionSpawnSystem 把爆炸请求转换为爆炸动画实体
// 请求在同一帧内被消费
type ExplosionSpawnSystem struct {
	entityManager *ecs.EntityManager
	config        *config.GameConfig
}

// NewExplosionSpawnSystem 创建爆炸生成系统
func NewExplosionSpawnSystem(em *ecs.EntityManager, cfg *config.GameConfig) *ExplosionSpawnSystem {
	return &ExplosionSpawnSystem{
		entityManager: em,
		config:        cfg,
	}
}

// Update 消费所有爆炸请求
func (s *ExplosionSpawnSystem) Update(deltaTime float64) {
	for _, id := range s.entityManager.EntitiesWithTag(components.TagExplosionRequest) {
		if s.entityManager.IsMarked(id) {
			continue
		}
		req, ok := ecs.GetComponent[*components.ExplosionRequestComponent](s.entityManager, id)
		if ok {
			if _, err := entities.NewExplosion(s.entityManager, s.config, req.X, req.Y); err != nil {
				log.Printf("[ExplosionSpawnSystem] Failed to spawn explosion: %v", err)
			}
		}
		s.entityManager.DestroyEntity(id)
	}
}

// ExplosionAnimationSystem 推进爆炸动画
// 计时器每到期一次前进一帧；帧索引到达总帧数时销毁实体，最后一帧之后不再显示任何帧
type ExplosionAnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewExplosionAnimationSystem 创建爆炸动画系统
func NewExplosionAnimationSystem(em *ecs.EntityManager) *ExplosionAnimationSystem {
	return &ExplosionAnimationSystem{
		entityManager: em,
	}
}

// Update 更新所有爆炸动画
func (s *ExplosionAnimationSystem) Update(deltaTime float64) {
	explosions := ecs.GetEntitiesWith2[
		*components.AnimationComponent,
		*components.TimerComponent,
	](s.entityManager)

	for _, id := range explosions {
		if s.entityManager.IsMarked(id) {
			continue
		}
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		timer, _ := ecs.GetComponent[*components.TimerComponent](s.entityManager, id)

		for elapsed := timer.Tick(deltaTime); elapsed > 0; elapsed-- {
			anim.CurrentFrame++
			if anim.CurrentFrame >= anim.FrameCount {
				s.entityManager.DestroyEntity(id)
				break
			}
		}
	}
}
