package components

import (
	"github.com/gonewx/lanedefense/pkg/ecs"
	"github.com/gonewx/lanedefense/pkg/types"
)

// Projectile 飞行中的子弹，Position 向右递增
type Projectile struct {
	ID       ecs.EntityID
	Row      int
	Position float64
	Damage   int
	Source   types.PlantType // 发射者类型（仅用于展示）
}

// EntityID 实现 ecs.Entity
func (p Projectile) EntityID() ecs.EntityID { return p.ID }
