package components

import "github.com/Norlock/space-fighters/pkg/ecs"

// 实体角色标签
// 一个实体可以带零个或多个标签，系统通过 EntityManager.EntitiesWithTag 查询
const (
	TagPlayer ecs.Tag = iota + 1
	TagEnemy
	TagPlayerLaser
	TagEnemyLaser
	TagExplosion
	TagExplosionRequest
)
