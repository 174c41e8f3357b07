package systems

import (
	"log"

	"github.com/gonewx/lanedefense/pkg/ecs"
	"github.com/gonewx/lanedefense/pkg/event"
	"github.com/gonewx/lanedefense/pkg/game/state"
)

// SunCollectionSystem 处理点击收集阳光
// 收集不受距离限制：直接点击拾取物即可
type SunCollectionSystem struct {
	gameState *state.GameState
	sink      EventSink
}

// NewSunCollectionSystem 创建阳光收集系统
func NewSunCollectionSystem(gs *state.GameState, sink EventSink) *SunCollectionSystem {
	return &SunCollectionSystem{gameState: gs, sink: sinkOrDiscard(sink)}
}

// CollectPickup 收集指定阳光，未知或已移除的ID不做任何事
func (s *SunCollectionSystem) CollectPickup(id ecs.EntityID) bool {
	gs := s.gameState
	if !gs.IsRunning() {
		return false
	}

	sun, ok := gs.World.TakeSunPickup(id)
	if !ok {
		return false
	}
	gs.World.AddSun(sun.Value)

	log.Printf("[SunCollectionSystem] Collected sun %d (+%d), total %d", id, sun.Value, gs.World.Sun)
	s.sink.Emit(event.Event{
		Type: event.PickupCollected,
		Data: event.SunData{Amount: sun.Value, Row: sun.GridRow, Col: sun.GridCol},
	})
	return true
}
