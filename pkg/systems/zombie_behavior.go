package systems

import (
	"math"

	"github.com/gonewx/lanedefense/pkg/components"
	"github.com/gonewx/lanedefense/pkg/config"
	"github.com/gonewx/lanedefense/pkg/ecs"
	"github.com/gonewx/lanedefense/pkg/event"
	"github.com/gonewx/lanedefense/pkg/game/state"
)

// updateZombies 僵尸阶段，返回是否有僵尸到达边界
//
// 快照与实时世界的僵尸切片在 tick 内一一对应：
// 僵尸只由生成计时器添加，不会在 tick 中途出现
func (s *BehaviorSystem) updateZombies(snapshot *state.World) bool {
	w := s.gameState.World
	bite := s.config.Round.Combat.BiteDamage
	dt := s.tickSeconds()

	for i := range w.Zombies {
		z := &w.Zombies[i]
		snapPos := snapshot.Zombies[i].Position

		if target, ok := findBlockingPlant(snapshot, z.Row, snapPos); ok {
			if !z.IsEating {
				s.sink.Emit(event.Event{
					Type: event.ZombieStartEat,
					Data: event.ZombieData{Type: z.Type, Row: z.Row, Health: z.CurrentHealth},
				})
			}
			z.IsEating = true
			z.EatingTarget = target

			if plant, found := w.FindPlant(target); found {
				plant.TakeDamage(bite)
			}
			continue
		}

		z.IsEating = false
		z.EatingTarget = 0
		z.Position -= z.Speed * dt

		if z.Position <= config.HomeBoundary {
			// 第一个到达边界的僵尸直接结束本局，其余僵尸不再处理
			return true
		}
	}
	return false
}

// findBlockingPlant 查找阻挡僵尸的植物
//
// 僵尸四舍五入后的位置为 r，同行中列号在 [r-1, r] 内的植物会阻挡它；
// 多株时选择最近的一株（列号最大）
func findBlockingPlant(snapshot *state.World, row int, position float64) (ecs.EntityID, bool) {
	rounded := int(math.Round(position))

	var best *components.PlacedPlant
	for i := range snapshot.Plants {
		p := &snapshot.Plants[i]
		if p.GridRow != row || p.IsDead() {
			continue
		}
		if p.GridCol < rounded-1 || p.GridCol > rounded {
			continue
		}
		if best == nil || p.GridCol > best.GridCol {
			best = p
		}
	}
	if best == nil {
		return 0, false
	}
	return best.ID, true
}
