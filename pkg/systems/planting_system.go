package systems

import (
	"log"

	"github.com/gonewx/lanedefense/pkg/config"
	"github.com/gonewx/lanedefense/pkg/event"
	"github.com/gonewx/lanedefense/pkg/game/state"
	"github.com/gonewx/lanedefense/pkg/types"
)

// PlantingSystem 处理植物选择与种植命令
//
// 所有不满足条件的命令都被静默拒绝：返回 false，不修改任何状态
type PlantingSystem struct {
	gameState *state.GameState
	catalog   *config.Catalog
	sink      EventSink
}

// NewPlantingSystem 创建种植系统
func NewPlantingSystem(gs *state.GameState, cfg *config.GameConfig, sink EventSink) *PlantingSystem {
	return &PlantingSystem{
		gameState: gs,
		catalog:   cfg.Catalog,
		sink:      sinkOrDiscard(sink),
	}
}

// SelectPlantType 选择要种植的植物
// 要求：本局运行中、植物已在当前关卡解锁。阳光和冷却留给 PlaceAt 检查，可以提前选择
func (s *PlantingSystem) SelectPlantType(pt types.PlantType) bool {
	gs := s.gameState
	if !gs.IsRunning() {
		return false
	}

	def, ok := s.catalog.Plant(pt)
	if !ok {
		log.Printf("[PlantingSystem] Reject select: unknown plant %s", pt)
		return false
	}
	if def.UnlockLevel > gs.Level {
		log.Printf("[PlantingSystem] Reject select: %s unlocks at level %d", pt, def.UnlockLevel)
		return false
	}

	gs.EnterPlantingMode(pt)
	s.sink.Emit(event.Event{Type: event.ToolSelected, Data: types.ToolPlant})
	return true
}

// PlaceAt 在格子上种植当前选择的植物
//
// 条件：种植工具、已选择植物、格子在范围内且空闲、冷却结束、阳光足够。
// 成功后扣除阳光、创建满血植物、开始冷却并清除选择
func (s *PlantingSystem) PlaceAt(row, col int) bool {
	gs := s.gameState
	w := gs.World
	if !gs.IsRunning() || gs.Tool != types.ToolPlant {
		return false
	}

	selected, pt := gs.GetPlantingMode()
	if !selected {
		return false
	}
	if !state.InBounds(row, col) {
		return false
	}
	if w.IsCellOccupied(row, col) {
		log.Printf("[PlantingSystem] Reject place: cell (%d,%d) occupied", row, col)
		return false
	}

	def, ok := s.catalog.Plant(pt)
	if !ok {
		return false
	}
	if remaining := w.CooldownRemaining(pt); remaining > 0 {
		log.Printf("[PlantingSystem] Reject place: %s cooling down (%v left)", pt, remaining)
		return false
	}
	// 最后扣费：前面任何一步失败都不会改变阳光
	if !w.SpendSun(def.Cost) {
		log.Printf("[PlantingSystem] Reject place: %s costs %d, have %d", pt, def.Cost, w.Sun)
		return false
	}

	w.SpawnPlant(def, row, col)
	w.StartCooldown(pt, def.Cooldown())
	gs.ExitPlantingMode()

	log.Printf("[PlantingSystem] Planted %s at (%d,%d), sun left %d", pt, row, col, w.Sun)
	s.sink.Emit(event.Event{
		Type: event.PlantPlaced,
		Data: event.PlantData{Type: pt, Row: row, Col: col},
	})
	return true
}
