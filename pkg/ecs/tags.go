package ecs

// Tag 是实体的角色标签（玩家、敌机、激光等）
// 每个标签维护一个显式的槽位索引集合，在添加标签和清理实体时增量更新
type Tag uint8

// AddTag 为实体添加一个或多个标签
func (em *EntityManager) AddTag(id EntityID, tags ...Tag) {
	if !em.IsAlive(id) {
		return
	}
	for _, tag := range tags {
		set, exists := em.tags[tag]
		if !exists {
			set = make(map[uint32]struct{})
			em.tags[tag] = set
		}
		set[id.Index()] = struct{}{}
	}
}

// HasTag 检查实体是否带有指定标签
func (em *EntityManager) HasTag(id EntityID, tag Tag) bool {
	if !em.IsAlive(id) {
		return false
	}
	_, found := em.tags[tag][id.Index()]
	return found
}

// EntitiesWithTag 返回带有指定标签的所有存活实体，按槽位索引排序
func (em *EntityManager) EntitiesWithTag(tag Tag) []EntityID {
	set := em.tags[tag]
	result := make([]EntityID, 0, len(set))
	for index := range set {
		result = append(result, em.handleOf(index))
	}
	sortByIndex(result)
	return result
}

// CountWithTag 返回带有指定标签的实体数量
func (em *EntityManager) CountWithTag(tag Tag) int {
	return len(em.tags[tag])
}

// FirstWithTag 返回第一个带有指定标签的实体
// 用于玩家这类单例实体；不存在时返回 false 而不是 panic
func (em *EntityManager) FirstWithTag(tag Tag) (EntityID, bool) {
	ids := em.EntitiesWithTag(tag)
	if len(ids) == 0 {
		return InvalidEntity, false
	}
	return ids[0], true
}
