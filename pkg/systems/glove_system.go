package systems

import (
	"log"
	"time"

	"github.com/gonewx/lanedefense/pkg/config"
	"github.com/gonewx/lanedefense/pkg/event"
	"github.com/gonewx/lanedefense/pkg/game/state"
	"github.com/gonewx/lanedefense/pkg/types"
)

// GloveSystem 手套：两步搬运植物
//
//  1. 空手时点击有植物的格子（手套冷却结束）：拿起植物，离开草坪
//  2. 拿着植物时点击空格子：放下植物，保留生命值和计时器，开始手套冷却，工具切回种植
type GloveSystem struct {
	gameState *state.GameState
	cooldown  time.Duration
	sink      EventSink
}

// NewGloveSystem 创建手套系统
func NewGloveSystem(gs *state.GameState, cfg *config.GameConfig, sink EventSink) *GloveSystem {
	return &GloveSystem{
		gameState: gs,
		cooldown:  cfg.Round.GloveCooldown(),
		sink:      sinkOrDiscard(sink),
	}
}

// RelocateAt 根据是否拿着植物执行拿起或放下
func (s *GloveSystem) RelocateAt(row, col int) bool {
	gs := s.gameState
	if !gs.IsRunning() || gs.Tool != types.ToolGlove || !state.InBounds(row, col) {
		return false
	}
	if gs.Held == nil {
		return s.lift(row, col)
	}
	return s.drop(row, col)
}

func (s *GloveSystem) lift(row, col int) bool {
	gs := s.gameState
	w := gs.World

	if remaining := w.GloveCooldownRemaining(); remaining > 0 {
		log.Printf("[GloveSystem] Reject lift: glove cooling down (%v left)", remaining)
		return false
	}
	plant, ok := w.PlantAt(row, col)
	if !ok {
		return false
	}

	taken, _ := w.TakePlant(plant.ID)
	gs.Held = &state.HeldPlant{Plant: taken, OriginRow: row, OriginCol: col}

	log.Printf("[GloveSystem] Lifted %s from (%d,%d)", taken.Type, row, col)
	s.sink.Emit(event.Event{
		Type: event.PlantLifted,
		Data: event.PlantData{Type: taken.Type, Row: row, Col: col},
	})
	return true
}

func (s *GloveSystem) drop(row, col int) bool {
	gs := s.gameState
	w := gs.World

	if w.IsCellOccupied(row, col) {
		return false
	}

	held := gs.Held
	w.RestorePlant(held.Plant, row, col)
	gs.Held = nil
	w.GloveReadyAt = w.Now + s.cooldown
	gs.Tool = types.ToolPlant

	log.Printf("[GloveSystem] Dropped %s at (%d,%d), health %d", held.Plant.Type, row, col, held.Plant.CurrentHealth)
	s.sink.Emit(event.Event{
		Type: event.PlantDropped,
		Data: event.PlantData{Type: held.Plant.Type, Row: row, Col: col},
	})
	return true
}

// ReturnHeld 把拿着的植物放回原位（不触发冷却），返回是否有植物被放回
func (s *GloveSystem) ReturnHeld() bool {
	gs := s.gameState
	if gs.Held == nil {
		return false
	}
	held := gs.Held
	gs.Held = nil

	if gs.World.IsCellOccupied(held.OriginRow, held.OriginCol) {
		// 原位被占用时植物丢失；拿起期间只能使用手套，正常流程不会发生
		log.Printf("[GloveSystem] Origin (%d,%d) occupied, %s discarded", held.OriginRow, held.OriginCol, held.Plant.Type)
		return false
	}
	gs.World.RestorePlant(held.Plant, held.OriginRow, held.OriginCol)
	log.Printf("[GloveSystem] Returned %s to (%d,%d)", held.Plant.Type, held.OriginRow, held.OriginCol)
	return true
}
