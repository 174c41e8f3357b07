package systems

import (
	"math"

	"github.com/gonewx/lanedefense/pkg/components"
	"github.com/gonewx/lanedefense/pkg/config"
	"github.com/gonewx/lanedefense/pkg/event"
	"github.com/gonewx/lanedefense/pkg/game/state"
)

// updateProjectiles 子弹阶段
//
// 只有 tick 开始前就存在的子弹会移动和碰撞。碰撞先于出界判定，
// 因此刚出生在最远边界的僵尸也能被命中
func (s *BehaviorSystem) updateProjectiles(snapshot *state.World) {
	w := s.gameState.World
	combat := s.config.Round.Combat

	for i := range len(snapshot.Projectiles) {
		pr := &w.Projectiles[i]
		pr.Position += combat.ProjectileStep

		if target := s.findCollision(snapshot, pr, combat.CollisionTolerance); target != nil {
			w.Entities.DestroyEntity(pr.ID)
			s.hitZombie(target, pr.Damage)
			continue
		}

		if pr.Position > float64(config.GridColumns) {
			w.Entities.DestroyEntity(pr.ID)
		}
	}
}

// findCollision 查找子弹命中的僵尸
// 同行、存活（生命值 > 0 且未被标记）、快照位置与子弹距离小于容差；
// 多个候选时选最近的一个，距离相同选ID较小的
func (s *BehaviorSystem) findCollision(snapshot *state.World, pr *components.Projectile, tolerance float64) *components.ActiveZombie {
	w := s.gameState.World

	var (
		best     *components.ActiveZombie
		bestDist float64
	)
	for i := range w.Zombies {
		z := &w.Zombies[i]
		if z.Row != pr.Row || z.IsDead() || w.Entities.IsMarked(z.ID) {
			continue
		}
		dist := math.Abs(snapshot.Zombies[i].Position - pr.Position)
		if dist >= tolerance {
			continue
		}
		if best == nil || dist < bestDist || (dist == bestDist && z.ID < best.ID) {
			best = z
			bestDist = dist
		}
	}
	return best
}

// hitZombie 对僵尸造成伤害，致死时移除并计入击杀
func (s *BehaviorSystem) hitZombie(z *components.ActiveZombie, damage int) {
	w := s.gameState.World
	dead := z.TakeDamage(damage)

	data := event.ZombieData{Type: z.Type, Row: z.Row, Health: z.CurrentHealth}
	s.sink.Emit(event.Event{Type: event.ZombieHit, Data: data})

	if dead {
		w.Entities.DestroyEntity(z.ID)
		w.Kills++
		s.sink.Emit(event.Event{Type: event.ZombieKilled, Data: data})
	}
}
