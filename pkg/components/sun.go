package components

import (
	"time"

	"github.com/gonewx/lanedefense/pkg/ecs"
)

// SunPickup 可点击收集的阳光（资源拾取物）
type SunPickup struct {
	ID      ecs.EntityID
	GridRow int
	GridCol int
	Value   int
	IsBonus bool // 大阳光（数值更高，展示更大）
	// ExpiresAt 未被收集时自动消失的模拟时间
	ExpiresAt time.Duration
}

// EntityID 实现 ecs.Entity
func (s SunPickup) EntityID() ecs.EntityID { return s.ID }

// Expired 是否已超过存在时间
func (s *SunPickup) Expired(now time.Duration) bool {
	return now >= s.ExpiresAt
}
