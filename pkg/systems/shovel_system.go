package systems

import (
	"log"

	"github.com/gonewx/lanedefense/pkg/event"
	"github.com/gonewx/lanedefense/pkg/game/state"
	"github.com/gonewx/lanedefense/pkg/types"
)

// ShovelSystem 铲子：移除植物（不返还阳光）
type ShovelSystem struct {
	gameState *state.GameState
	sink      EventSink
}

// NewShovelSystem 创建铲子系统
func NewShovelSystem(gs *state.GameState, sink EventSink) *ShovelSystem {
	return &ShovelSystem{gameState: gs, sink: sinkOrDiscard(sink)}
}

// RemoveAt 移除格子上的植物，成功后工具切回种植
func (s *ShovelSystem) RemoveAt(row, col int) bool {
	gs := s.gameState
	if !gs.IsRunning() || gs.Tool != types.ToolShovel {
		return false
	}

	plant, ok := gs.World.PlantAt(row, col)
	if !ok {
		return false
	}
	removed, _ := gs.World.TakePlant(plant.ID)
	gs.Tool = types.ToolPlant

	log.Printf("[ShovelSystem] Removed %s at (%d,%d)", removed.Type, row, col)
	s.sink.Emit(event.Event{
		Type: event.PlantRemoved,
		Data: event.PlantData{Type: removed.Type, Row: row, Col: col},
	})
	return true
}
