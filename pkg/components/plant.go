package components

import (
	"time"

	"github.com/gonewx/lanedefense/pkg/ecs"
	"github.com/gonewx/lanedefense/pkg/types"
)

// PlacedPlant 已种植在草坪上的植物
//
// 时间戳均为模拟时间（本局开始后经过的运行时间），暂停期间不前进
type PlacedPlant struct {
	ID   ecs.EntityID
	Type types.PlantType
	// GridRow 所在草坪行 (0-4, 从上到下)
	GridRow int
	// GridCol 所在草坪列 (0-8, 从左到右)
	GridCol int

	HealthComponent

	// LastAttackAt 上次发射子弹的时间，HasAttacked 为 false 表示从未攻击
	LastAttackAt time.Duration
	HasAttacked  bool

	// LastProducedAt 上次生产阳光的时间，HasProduced 为 false 表示从未生产
	LastProducedAt time.Duration
	HasProduced    bool
}

// EntityID 实现 ecs.Entity
func (p PlacedPlant) EntityID() ecs.EntityID { return p.ID }

// AttackReady 攻击间隔是否已过
func (p *PlacedPlant) AttackReady(now, interval time.Duration) bool {
	return !p.HasAttacked || now-p.LastAttackAt >= interval
}

// ProduceReady 生产间隔是否已过（从未生产视为就绪）
func (p *PlacedPlant) ProduceReady(now, interval time.Duration) bool {
	return !p.HasProduced || now-p.LastProducedAt >= interval
}

// MarkAttack 记录攻击时间
func (p *PlacedPlant) MarkAttack(now time.Duration) {
	p.LastAttackAt = now
	p.HasAttacked = true
}

// MarkProduce 记录生产时间
func (p *PlacedPlant) MarkProduce(now time.Duration) {
	p.LastProducedAt = now
	p.HasProduced = true
}
