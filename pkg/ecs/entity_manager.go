package ecs

// EntityID 是实体的唯一标识符，0 保留为无效ID
type EntityID uint64

// Entity 可以被 EntityManager 标记删除的实体
type Entity interface {
	EntityID() EntityID
}

// EntityManager 分配实体ID并管理延迟删除
//
// 与逐帧删除不同，系统在遍历过程中只调用 DestroyEntity 标记，
// 遍历结束后统一由 Sweep / ClearMarks 清理，避免边遍历边修改切片
type EntityManager struct {
	nextID uint64
	// 待删除的实体ID集合
	entitiesToDestroy map[EntityID]struct{}
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		entitiesToDestroy: make(map[EntityID]struct{}),
	}
}

// CreateEntity 分配新的唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	return id
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy[id] = struct{}{}
}

// IsMarked 检查实体是否已被标记删除
func (em *EntityManager) IsMarked(id EntityID) bool {
	_, marked := em.entitiesToDestroy[id]
	return marked
}

// PendingCount 返回待删除实体数量
func (em *EntityManager) PendingCount() int {
	return len(em.entitiesToDestroy)
}

// ClearMarks 清空所有删除标记
func (em *EntityManager) ClearMarks() {
	clear(em.entitiesToDestroy)
}

// Reset 清空删除标记（新的一局开始时调用）
//
// ID 计数不回退：上一局快照里的ID在新的一局中不会指向别的实体
func (em *EntityManager) Reset() {
	em.ClearMarks()
}

// Clone 复制 EntityManager（用于快照）
func (em *EntityManager) Clone() *EntityManager {
	c := &EntityManager{
		nextID:            em.nextID,
		entitiesToDestroy: make(map[EntityID]struct{}, len(em.entitiesToDestroy)),
	}
	for id := range em.entitiesToDestroy {
		c.entitiesToDestroy[id] = struct{}{}
	}
	return c
}

// Sweep 从切片中移除所有已标记的实体，原地压缩并保持顺序
// 不清除标记：同一批标记可能分布在多个切片中，全部清理后再调用 ClearMarks
func Sweep[T Entity](em *EntityManager, items []T) []T {
	if len(em.entitiesToDestroy) == 0 {
		return items
	}
	kept := items[:0]
	for _, item := range items {
		if !em.IsMarked(item.EntityID()) {
			kept = append(kept, item)
		}
	}
	// 清零尾部，避免残留引用
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}
