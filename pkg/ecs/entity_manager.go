package ecs

import (
	"reflect"
	"sort"
)

// EntityID 是实体的代际句柄
// 低 32 位是槽位索引，高 32 位是代数（generation）
// 槽位被回收时代数递增，旧句柄随之失效；0 保留为无效ID
type EntityID uint64

// InvalidEntity 表示"没有实体"
const InvalidEntity EntityID = 0

// newEntityID 由槽位索引和代数拼出句柄
func newEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

// Index 返回句柄的槽位索引
func (id EntityID) Index() uint32 {
	return uint32(id)
}

// Generation 返回句柄的代数
func (id EntityID) Generation() uint32 {
	return uint32(id >> 32)
}

// slot 记录一个槽位的当前代数和存活状态
type slot struct {
	generation uint32
	alive      bool
}

// EntityManager 管理所有实体和组件
type EntityManager struct {
	slots    []slot
	freeList []uint32

	// 组件存储: ComponentType -> 槽位索引 -> Component实例
	components map[reflect.Type]map[uint32]interface{}
	// 标签索引: Tag -> 槽位索引集合
	tags map[Tag]map[uint32]struct{}

	// 待删除的实体（去重）
	entitiesToDestroy []EntityID
	marked            map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		// 槽位 0 永不分配，保证 InvalidEntity 不会命中
		slots:             []slot{{generation: 0, alive: false}},
		freeList:          make([]uint32, 0),
		components:        make(map[reflect.Type]map[uint32]interface{}),
		tags:              make(map[Tag]map[uint32]struct{}),
		entitiesToDestroy: make([]EntityID, 0),
		marked:            make(map[EntityID]struct{}),
	}
}

// CreateEntity 创建新实体并返回代际句柄
// 优先复用已回收的槽位
func (em *EntityManager) CreateEntity() EntityID {
	if n := len(em.freeList); n > 0 {
		index := em.freeList[n-1]
		em.freeList = em.freeList[:n-1]
		em.slots[index].alive = true
		return newEntityID(index, em.slots[index].generation)
	}

	index := uint32(len(em.slots))
	em.slots = append(em.slots, slot{generation: 1, alive: true})
	return newEntityID(index, 1)
}

// IsAlive 检查句柄是否仍指向一个存活的实体
// 代数已前进的旧句柄视为不存在
func (em *EntityManager) IsAlive(id EntityID) bool {
	index := id.Index()
	if index == 0 || int(index) >= len(em.slots) {
		return false
	}
	s := em.slots[index]
	return s.alive && s.generation == id.Generation()
}

// DestroyEntity 标记实体待删除(不立即删除)
// 同一实体重复标记只记录一次；失效句柄直接忽略
func (em *EntityManager) DestroyEntity(id EntityID) {
	if !em.IsAlive(id) {
		return
	}
	if _, ok := em.marked[id]; ok {
		return
	}
	em.marked[id] = struct{}{}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// IsMarked 返回实体是否已被标记待删除
func (em *EntityManager) IsMarked(id EntityID) bool {
	_, ok := em.marked[id]
	return ok
}

// AddComponent 为实体添加组件
// 同类型组件会被覆盖
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	if !em.IsAlive(id) {
		return
	}
	componentType := reflect.TypeOf(component)
	store, exists := em.components[componentType]
	if !exists {
		store = make(map[uint32]interface{})
		em.components[componentType] = store
	}
	store[id.Index()] = component
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if !em.IsAlive(id) {
		return
	}
	if store, exists := em.components[componentType]; exists {
		delete(store, id.Index())
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if !em.IsAlive(id) {
		return nil, false
	}
	if store, exists := em.components[componentType]; exists {
		if comp, found := store[id.Index()]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, found := em.GetComponent(id, componentType)
	return found
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 清理后槽位代数递增并放回空闲列表
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		if !em.IsAlive(id) {
			continue
		}
		index := id.Index()
		for _, store := range em.components {
			delete(store, index)
		}
		for _, set := range em.tags {
			delete(set, index)
		}
		em.slots[index].alive = false
		em.slots[index].generation++
		em.freeList = append(em.freeList, index)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0] // 清空切片
	clear(em.marked)
}

// EntityCount 返回当前存活的实体数量（包含已标记但未清理的）
func (em *EntityManager) EntityCount() int {
	return len(em.slots) - 1 - len(em.freeList)
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表，按槽位索引排序
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)
	if len(componentTypes) == 0 {
		return result
	}

	// 从第一个组件类型的存储开始过滤
	first, exists := em.components[componentTypes[0]]
	if !exists {
		return result
	}

	for index := range first {
		hasAll := true
		for _, ct := range componentTypes[1:] {
			store, ok := em.components[ct]
			if !ok {
				hasAll = false
				break
			}
			if _, found := store[index]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, em.handleOf(index))
		}
	}

	sortByIndex(result)
	return result
}

// handleOf 返回槽位当前代数对应的句柄
func (em *EntityManager) handleOf(index uint32) EntityID {
	return newEntityID(index, em.slots[index].generation)
}

// sortByIndex 保证查询结果的迭代顺序稳定
func sortByIndex(ids []EntityID) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].Index() < ids[j].Index()
	})
}
