package systems

import (
	"log"

	"github.com/gonewx/lanedefense/pkg/event"
	"github.com/gonewx/lanedefense/pkg/game/state"
	"github.com/gonewx/lanedefense/pkg/types"
)

// InputSystem 工具切换与格子点击分发
type InputSystem struct {
	gameState *state.GameState
	planting  *PlantingSystem
	shovel    *ShovelSystem
	glove     *GloveSystem
	sink      EventSink
}

// NewInputSystem 创建输入分发系统
func NewInputSystem(gs *state.GameState, planting *PlantingSystem, shovel *ShovelSystem, glove *GloveSystem, sink EventSink) *InputSystem {
	return &InputSystem{
		gameState: gs,
		planting:  planting,
		shovel:    shovel,
		glove:     glove,
		sink:      sinkOrDiscard(sink),
	}
}

// SelectTool 切换工具
// 从手套切走时，手里的植物放回原位
func (s *InputSystem) SelectTool(tool types.ToolType) bool {
	gs := s.gameState
	if !gs.IsRunning() {
		return false
	}
	if tool < types.ToolNone || tool > types.ToolGlove {
		return false
	}

	if gs.Tool == types.ToolGlove && tool != types.ToolGlove {
		s.glove.ReturnHeld()
	}
	gs.Tool = tool

	log.Printf("[InputSystem] Tool selected: %s", tool)
	s.sink.Emit(event.Event{Type: event.ToolSelected, Data: tool})
	return true
}

// ClickCell 按当前工具处理格子点击
func (s *InputSystem) ClickCell(row, col int) bool {
	switch s.gameState.Tool {
	case types.ToolPlant:
		return s.planting.PlaceAt(row, col)
	case types.ToolShovel:
		return s.shovel.RemoveAt(row, col)
	case types.ToolGlove:
		return s.glove.RelocateAt(row, col)
	default:
		return false
	}
}
