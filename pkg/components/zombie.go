package components

import (
	"github.com/gonewx/lanedefense/pkg/ecs"
	"github.com/gonewx/lanedefense/pkg/types"
)

// ActiveZombie 场上的僵尸
//
// Position 是连续的列坐标：出生在最远边界（9.0），向 0 递减
type ActiveZombie struct {
	ID       ecs.EntityID
	Type     types.ZombieType
	Row      int
	Position float64
	Speed    float64 // 列/秒，出生时从图鉴复制

	HealthComponent

	// IsEating 被同行相邻植物阻挡，停止前进并啃食
	IsEating bool
	// EatingTarget 正在啃食的植物，未啃食时为 0
	EatingTarget ecs.EntityID
}

// EntityID 实现 ecs.Entity
func (z ActiveZombie) EntityID() ecs.EntityID { return z.ID }
