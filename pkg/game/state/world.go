package state

import (
	"maps"
	"slices"
	"time"

	"github.com/gonewx/lanedefense/pkg/components"
	"github.com/gonewx/lanedefense/pkg/config"
	"github.com/gonewx/lanedefense/pkg/ecs"
	"github.com/gonewx/lanedefense/pkg/types"
)

// World 一局游戏的全部可变状态
//
// 不变量：
//   - 每个格子最多一株植物（种植时检查）
//   - 每次结算结束后，存储的生命值都大于 0（<= 0 的实体已被移除）
//   - 阳光不会为负：花费不足时拒绝而不是截断
type World struct {
	Entities *ecs.EntityManager

	Plants      []components.PlacedPlant
	Zombies     []components.ActiveZombie
	Projectiles []components.Projectile
	Suns        []components.SunPickup

	Sun    int // 当前阳光数量
	MaxSun int // 阳光上限

	Kills   int // 本局击杀数
	Spawned int // 本局已生成僵尸数

	// Now 本局模拟时间，仅在运行状态下前进
	Now time.Duration

	// Cooldowns 植物类型 -> 可再次种植的模拟时间
	Cooldowns map[types.PlantType]time.Duration
	// GloveReadyAt 手套可再次使用的模拟时间
	GloveReadyAt time.Duration
}

// NewWorld 创建空的世界
func NewWorld(startingSun, maxSun int) *World {
	w := &World{
		Entities:  ecs.NewEntityManager(),
		Cooldowns: make(map[types.PlantType]time.Duration),
	}
	w.Reset(startingSun, maxSun)
	return w
}

// Reset 清空所有实体和计数器，回到开局状态
func (w *World) Reset(startingSun, maxSun int) {
	w.Entities.Reset()
	w.Plants = w.Plants[:0]
	w.Zombies = w.Zombies[:0]
	w.Projectiles = w.Projectiles[:0]
	w.Suns = w.Suns[:0]
	w.Sun = startingSun
	w.MaxSun = maxSun
	w.Kills = 0
	w.Spawned = 0
	w.Now = 0
	clear(w.Cooldowns)
	w.GloveReadyAt = 0
}

// Clone 深拷贝世界状态（用于结算快照和对外查询）
func (w *World) Clone() *World {
	c := *w
	c.Entities = w.Entities.Clone()
	c.Plants = slices.Clone(w.Plants)
	c.Zombies = slices.Clone(w.Zombies)
	c.Projectiles = slices.Clone(w.Projectiles)
	c.Suns = slices.Clone(w.Suns)
	c.Cooldowns = maps.Clone(w.Cooldowns)
	if c.Cooldowns == nil {
		c.Cooldowns = make(map[types.PlantType]time.Duration)
	}
	return &c
}

// AddSun 增加阳光，带上限检查
//
// 低于上限时恰好增加 amount；跨过上限时截断到 MaxSun（例如 9980 收集 50 只得到 10）
func (w *World) AddSun(amount int) {
	w.Sun += amount
	if w.MaxSun > 0 && w.Sun > w.MaxSun {
		w.Sun = w.MaxSun
	}
}

// SpendSun 扣除阳光，如果阳光不足返回 false
// 只有当阳光充足时才会扣除，否则返回false表示操作失败
func (w *World) SpendSun(amount int) bool {
	if w.Sun < amount {
		return false
	}
	w.Sun -= amount
	return true
}

// InBounds 检查格子坐标是否在草坪范围内
func InBounds(row, col int) bool {
	return row >= 0 && row < config.GridRows && col >= 0 && col < config.GridColumns
}

// PlantAt 返回指定格子上的植物
func (w *World) PlantAt(row, col int) (*components.PlacedPlant, bool) {
	for i := range w.Plants {
		p := &w.Plants[i]
		if p.GridRow == row && p.GridCol == col && !w.Entities.IsMarked(p.ID) {
			return p, true
		}
	}
	return nil, false
}

// IsCellOccupied 格子是否已有植物
func (w *World) IsCellOccupied(row, col int) bool {
	_, ok := w.PlantAt(row, col)
	return ok
}

// SpawnPlant 在格子上创建满血植物，调用方负责检查占用
func (w *World) SpawnPlant(def *config.PlantDef, row, col int) *components.PlacedPlant {
	w.Plants = append(w.Plants, components.PlacedPlant{
		ID:              w.Entities.CreateEntity(),
		Type:            def.Type,
		GridRow:         row,
		GridCol:         col,
		HealthComponent: components.NewHealth(def.Health),
	})
	return &w.Plants[len(w.Plants)-1]
}

// RestorePlant 把搬运中的植物放回草坪（保留生命值和计时器，重新分配ID）
func (w *World) RestorePlant(p components.PlacedPlant, row, col int) *components.PlacedPlant {
	p.ID = w.Entities.CreateEntity()
	p.GridRow = row
	p.GridCol = col
	w.Plants = append(w.Plants, p)
	return &w.Plants[len(w.Plants)-1]
}

// TakePlant 立即从草坪移除植物并返回其副本
func (w *World) TakePlant(id ecs.EntityID) (components.PlacedPlant, bool) {
	for i, p := range w.Plants {
		if p.ID == id {
			w.Plants = slices.Delete(w.Plants, i, i+1)
			return p, true
		}
	}
	return components.PlacedPlant{}, false
}

// SpawnZombie 在指定行的出生位置创建僵尸
func (w *World) SpawnZombie(def *config.ZombieDef, row int) *components.ActiveZombie {
	w.Zombies = append(w.Zombies, components.ActiveZombie{
		ID:              w.Entities.CreateEntity(),
		Type:            def.Type,
		Row:             row,
		Position:        config.ZombieSpawnPosition,
		Speed:           def.Speed,
		HealthComponent: components.NewHealth(def.Health),
	})
	w.Spawned++
	return &w.Zombies[len(w.Zombies)-1]
}

// SpawnProjectile 创建子弹
func (w *World) SpawnProjectile(source types.PlantType, row int, position float64, damage int) *components.Projectile {
	w.Projectiles = append(w.Projectiles, components.Projectile{
		ID:       w.Entities.CreateEntity(),
		Row:      row,
		Position: position,
		Damage:   damage,
		Source:   source,
	})
	return &w.Projectiles[len(w.Projectiles)-1]
}

// SpawnSunPickup 创建可收集的阳光
func (w *World) SpawnSunPickup(row, col, value int, bonus bool, lifetime time.Duration) *components.SunPickup {
	w.Suns = append(w.Suns, components.SunPickup{
		ID:        w.Entities.CreateEntity(),
		GridRow:   row,
		GridCol:   col,
		Value:     value,
		IsBonus:   bonus,
		ExpiresAt: w.Now + lifetime,
	})
	return &w.Suns[len(w.Suns)-1]
}

// TakeSunPickup 立即移除阳光并返回其副本，不存在时返回 false
func (w *World) TakeSunPickup(id ecs.EntityID) (components.SunPickup, bool) {
	for i, s := range w.Suns {
		if s.ID == id && !w.Entities.IsMarked(id) {
			w.Suns = slices.Delete(w.Suns, i, i+1)
			return s, true
		}
	}
	return components.SunPickup{}, false
}

// FindSunPickup 按ID查找阳光
func (w *World) FindSunPickup(id ecs.EntityID) (*components.SunPickup, bool) {
	for i := range w.Suns {
		if w.Suns[i].ID == id && !w.Entities.IsMarked(id) {
			return &w.Suns[i], true
		}
	}
	return nil, false
}

// FindZombie 按ID查找僵尸
func (w *World) FindZombie(id ecs.EntityID) (*components.ActiveZombie, bool) {
	for i := range w.Zombies {
		if w.Zombies[i].ID == id {
			return &w.Zombies[i], true
		}
	}
	return nil, false
}

// FindPlant 按ID查找植物
func (w *World) FindPlant(id ecs.EntityID) (*components.PlacedPlant, bool) {
	for i := range w.Plants {
		if w.Plants[i].ID == id {
			return &w.Plants[i], true
		}
	}
	return nil, false
}

// ZombieCount 场上存活的僵尸数量
func (w *World) ZombieCount() int {
	n := 0
	for _, z := range w.Zombies {
		if !w.Entities.IsMarked(z.ID) {
			n++
		}
	}
	return n
}

// CooldownRemaining 植物类型剩余冷却时间，就绪时返回 0
func (w *World) CooldownRemaining(pt types.PlantType) time.Duration {
	readyAt, ok := w.Cooldowns[pt]
	if !ok || readyAt <= w.Now {
		return 0
	}
	return readyAt - w.Now
}

// StartCooldown 开始植物类型的种植冷却
func (w *World) StartCooldown(pt types.PlantType, d time.Duration) {
	if d <= 0 {
		return
	}
	w.Cooldowns[pt] = w.Now + d
}

// GloveCooldownRemaining 手套剩余冷却时间
func (w *World) GloveCooldownRemaining() time.Duration {
	if w.GloveReadyAt <= w.Now {
		return 0
	}
	return w.GloveReadyAt - w.Now
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (w *World) RemoveMarkedEntities() {
	if w.Entities.PendingCount() == 0 {
		return
	}
	w.Plants = ecs.Sweep(w.Entities, w.Plants)
	w.Zombies = ecs.Sweep(w.Entities, w.Zombies)
	w.Projectiles = ecs.Sweep(w.Entities, w.Projectiles)
	w.Suns = ecs.Sweep(w.Entities, w.Suns)
	w.Entities.ClearMarks()
}
