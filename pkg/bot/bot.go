// Package bot 提供无界面的自动玩家，用于批量模拟和数值平衡检查
package bot

import (
	"cmp"
	"slices"

	"github.com/gonewx/lanedefense/pkg/config"
	"github.com/gonewx/lanedefense/pkg/simulation"
	"github.com/gonewx/lanedefense/pkg/types"
)

// sunflowerColumn 向日葵种在最靠近家的一列
const sunflowerColumn = 0

// Greedy 贪心策略：
//  1. 收集场上所有阳光
//  2. 有僵尸但没有攻击植物的行，优先补一株攻击植物
//  3. 每行一株向日葵
//  4. 可用时在有僵尸的行前方放坚果墙
//  5. 剩余阳光继续加攻击植物，僵尸多的行优先
//
// 每次 Act 最多种一株植物
type Greedy struct {
	sim     *simulation.Simulation
	catalog *config.Catalog
}

// NewGreedy 创建贪心策略
func NewGreedy(sim *simulation.Simulation) *Greedy {
	return &Greedy{sim: sim, catalog: sim.Config().Catalog}
}

// Act 根据当前状态做一次决策，返回执行成功的命令数
func (g *Greedy) Act() int {
	actions := 0

	snap := g.sim.Snapshot()
	if snap.Status != simulation.StatusRunning || snap.Paused {
		return 0
	}
	for _, sun := range snap.Suns {
		if g.sim.CollectPickup(sun.ID) {
			actions++
		}
	}
	if actions > 0 {
		snap = g.sim.Snapshot()
	}

	if g.plantOnce(snap) {
		actions++
	}
	return actions
}

func (g *Greedy) plantOnce(snap *simulation.Snapshot) bool {
	threat := zombiesPerRow(snap)
	attacker := g.bestAttacker(snap)

	// 受威胁且无防守的行
	if attacker != types.PlantUnknown {
		for _, row := range rowsByThreat(threat) {
			if hasAttacker(g.catalog, snap, row) {
				continue
			}
			if col, ok := firstEmpty(snap, row, 1, config.GridColumns/2); ok && g.tryPlant(snap, attacker, row, col) {
				return true
			}
		}
	}

	for row := range config.GridRows {
		if _, occupied := snap.PlantAt(row, sunflowerColumn); !occupied {
			if g.tryPlant(snap, types.PlantSunflower, row, sunflowerColumn) {
				return true
			}
			break
		}
	}

	// 坚果墙放在第 6 列，给射手留出射击距离
	for _, row := range rowsByThreat(threat) {
		if _, occupied := snap.PlantAt(row, 6); !occupied && g.tryPlant(snap, types.PlantWallnut, row, 6) {
			return true
		}
	}

	if attacker == types.PlantUnknown {
		return false
	}
	rows := rowsByThreat(threat)
	for row := range config.GridRows {
		if threat[row] == 0 {
			rows = append(rows, row)
		}
	}
	for _, row := range rows {
		if col, ok := firstEmpty(snap, row, 1, 5); ok && g.tryPlant(snap, attacker, row, col) {
			return true
		}
	}
	return false
}

// bestAttacker 当前可用的伤害最高的攻击植物
func (g *Greedy) bestAttacker(snap *simulation.Snapshot) types.PlantType {
	best := types.PlantUnknown
	bestDamage := 0
	for _, def := range g.catalog.PlantsForLevel(snap.Level) {
		if def.IsAttacker() && def.Damage > bestDamage {
			best, bestDamage = def.Type, def.Damage
		}
	}
	return best
}

// tryPlant 条件满足时选择并种植，返回是否成功
func (g *Greedy) tryPlant(snap *simulation.Snapshot, pt types.PlantType, row, col int) bool {
	def, ok := g.catalog.Plant(pt)
	if !ok || def.UnlockLevel > snap.Level {
		return false
	}
	if !snap.PlantReady(pt) || snap.Sun < def.Cost {
		return false
	}
	return g.sim.SelectPlantType(pt) && g.sim.PlaceAt(row, col)
}

func zombiesPerRow(snap *simulation.Snapshot) [config.GridRows]int {
	var counts [config.GridRows]int
	for _, z := range snap.Zombies {
		if z.Row >= 0 && z.Row < config.GridRows {
			counts[z.Row]++
		}
	}
	return counts
}

// rowsByThreat 有僵尸的行，按僵尸数量降序（数量相同按行号）
func rowsByThreat(counts [config.GridRows]int) []int {
	var rows []int
	for row, n := range counts {
		if n > 0 {
			rows = append(rows, row)
		}
	}
	slices.SortStableFunc(rows, func(a, b int) int {
		return cmp.Compare(counts[b], counts[a])
	})
	return rows
}

func hasAttacker(catalog *config.Catalog, snap *simulation.Snapshot, row int) bool {
	for _, p := range snap.Plants {
		if p.GridRow != row {
			continue
		}
		if def, ok := catalog.Plant(p.Type); ok && def.IsAttacker() {
			return true
		}
	}
	return false
}

// firstEmpty 行内 [from, to] 范围的第一个空格
func firstEmpty(snap *simulation.Snapshot, row, from, to int) (int, bool) {
	for col := from; col <= to; col++ {
		if _, occupied := snap.PlantAt(row, col); !occupied {
			return col, true
		}
	}
	return 0, false
}
