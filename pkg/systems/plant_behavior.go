package systems

import (
	"log"

	"github.com/gonewx/lanedefense/pkg/components"
	"github.com/gonewx/lanedefense/pkg/event"
	"github.com/gonewx/lanedefense/pkg/game/state"
)

// removeEatenPlants 标记本 tick 被啃食致死的植物
//
// 僵尸到达边界而中止 tick 时也必须调用，保证结算后不留下生命值 <= 0 的植物
func (s *BehaviorSystem) removeEatenPlants() {
	w := s.gameState.World
	for i := range w.Plants {
		p := &w.Plants[i]
		if !p.IsDead() || w.Entities.IsMarked(p.ID) {
			continue
		}
		w.Entities.DestroyEntity(p.ID)
		log.Printf("[BehaviorSystem] Plant %s at (%d,%d) was eaten", p.Type, p.GridRow, p.GridCol)
		s.sink.Emit(event.Event{
			Type: event.PlantDestroyed,
			Data: event.PlantData{Type: p.Type, Row: p.GridRow, Col: p.GridCol},
		})
	}
}

// updatePlants 植物阶段
func (s *BehaviorSystem) updatePlants(snapshot *state.World) {
	w := s.gameState.World
	s.removeEatenPlants()

	// 本阶段会追加子弹，只遍历阶段开始前已有的植物
	n := len(w.Plants)
	for i := 0; i < n; i++ {
		p := &w.Plants[i]
		if w.Entities.IsMarked(p.ID) {
			continue
		}

		def, ok := s.config.Catalog.Plant(p.Type)
		if !ok {
			continue
		}

		if def.IsGenerator() && p.ProduceReady(w.Now, def.ProduceInterval()) {
			w.AddSun(def.ProduceValue)
			p.MarkProduce(w.Now)
			s.sink.Emit(event.Event{
				Type: event.SunProduced,
				Data: event.SunData{Amount: def.ProduceValue, Row: p.GridRow, Col: p.GridCol},
			})
		}

		if def.IsAttacker() && p.AttackReady(w.Now, def.AttackInterval()) && hasZombieAhead(snapshot, p) {
			row, col, damage, source := p.GridRow, p.GridCol, def.Damage, p.Type
			p.MarkAttack(w.Now)
			// SpawnProjectile 不会改动植物切片，p 仍然有效
			w.SpawnProjectile(source, row, float64(col+1), damage)
			s.sink.Emit(event.Event{
				Type: event.ProjectileFired,
				Data: event.PlantData{Type: source, Row: row, Col: col},
			})
		}
	}
}

// hasZombieAhead 快照中同行是否有位于植物右侧的存活僵尸
func hasZombieAhead(snapshot *state.World, p *components.PlacedPlant) bool {
	col := float64(p.GridCol)
	for i := range snapshot.Zombies {
		z := &snapshot.Zombies[i]
		if z.Row == p.GridRow && z.Position > col && !z.IsDead() {
			return true
		}
	}
	return false
}
