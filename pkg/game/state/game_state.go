package state

import (
	"github.com/gonewx/lanedefense/pkg/components"
	"github.com/gonewx/lanedefense/pkg/types"
)

// RoundStatus 单局状态机
//
//	Idle -> Running -> {GameOver | LevelComplete}
//
// GameOver 和 LevelComplete 是终态，只有新的开局命令才能重新进入 Running
type RoundStatus int

const (
	StatusIdle RoundStatus = iota
	StatusRunning
	StatusGameOver
	StatusLevelComplete
)

// String 返回状态名称
func (s RoundStatus) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game_over"
	case StatusLevelComplete:
		return "level_complete"
	default:
		return "idle"
	}
}

// IsTerminal 是否为终态
func (s RoundStatus) IsTerminal() bool {
	return s == StatusGameOver || s == StatusLevelComplete
}

// HeldPlant 手套搬运中的植物
type HeldPlant struct {
	Plant     components.PlacedPlant
	OriginRow int
	OriginCol int
}

// GameState 存储一局游戏的状态
// 不是全局单例：由 Simulation 持有并在锁内访问
type GameState struct {
	Status RoundStatus
	Paused bool

	Level            int // 当前关卡
	MaxUnlockedLevel int // 已解锁的最高关卡（单调不减）
	CoinsEarned      int // 本次会话获得的过关奖励

	Tool          types.ToolType
	SelectedPlant types.PlantType // PlantUnknown 表示未选择
	Held          *HeldPlant      // 手套搬运中的植物，nil 表示空手

	World *World
}

// NewGameState 创建处于 Idle 状态的游戏状态
func NewGameState(startingSun, maxSun, maxUnlockedLevel int) *GameState {
	if maxUnlockedLevel < 1 {
		maxUnlockedLevel = 1
	}
	return &GameState{
		Status:           StatusIdle,
		Level:            1,
		MaxUnlockedLevel: maxUnlockedLevel,
		Tool:             types.ToolPlant,
		World:            NewWorld(startingSun, maxSun),
	}
}

// IsRunning 本局是否正在运行（非暂停、非终态）
func (gs *GameState) IsRunning() bool {
	return gs.Status == StatusRunning && !gs.Paused
}

// EnterPlantingMode 选择要种植的植物
func (gs *GameState) EnterPlantingMode(plantType types.PlantType) {
	gs.SelectedPlant = plantType
}

// ExitPlantingMode 清除植物选择
func (gs *GameState) ExitPlantingMode() {
	gs.SelectedPlant = types.PlantUnknown
}

// GetPlantingMode 获取当前种植选择
// 返回是否选择了植物以及选择的植物类型
func (gs *GameState) GetPlantingMode() (bool, types.PlantType) {
	return gs.SelectedPlant != types.PlantUnknown, gs.SelectedPlant
}

// UnlockLevel 解锁关卡：max(当前, level)，不超过 maxLevel
// 返回是否发生了变化
func (gs *GameState) UnlockLevel(level, maxLevel int) bool {
	if level > maxLevel {
		level = maxLevel
	}
	if level <= gs.MaxUnlockedLevel {
		return false
	}
	gs.MaxUnlockedLevel = level
	return true
}
