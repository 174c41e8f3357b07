package systems

import (
	"log"

	"github.com/gonewx/lanedefense/pkg/config"
	"github.com/gonewx/lanedefense/pkg/event"
	"github.com/gonewx/lanedefense/pkg/game/state"
	"github.com/gonewx/lanedefense/pkg/types"
)

// LevelSystem 单局状态机与胜负判定
//
// 状态流转：Idle -> Running -> {GameOver | LevelComplete}
//   - 失败：有僵尸到达边界
//   - 胜利：击杀数达到目标且场上没有僵尸
//
// 终态只会进入一次，重复判定不会重复发放奖励
type LevelSystem struct {
	gameState *state.GameState
	config    *config.GameConfig
	sink      EventSink
}

// NewLevelSystem 创建关卡管理系统
func NewLevelSystem(gs *state.GameState, cfg *config.GameConfig, sink EventSink) *LevelSystem {
	return &LevelSystem{
		gameState: gs,
		config:    cfg,
		sink:      sinkOrDiscard(sink),
	}
}

// StartRound 开始（或重新开始）一局
//
// level <= 0 表示沿用当前关卡；超过最大关卡时截断。
// 无论之前处于什么状态，都会清空所有实体并重置阳光、击杀数、冷却和工具
func (s *LevelSystem) StartRound(level int) int {
	gs := s.gameState
	round := s.config.Round

	if level <= 0 {
		level = gs.Level
	}
	level = max(1, min(level, round.MaxLevel))

	gs.World.Reset(round.StartingSun, round.MaxSun)
	gs.Level = level
	gs.Status = state.StatusRunning
	gs.Paused = false
	gs.Tool = types.ToolPlant
	gs.Held = nil
	gs.ExitPlantingMode()

	log.Printf("[LevelSystem] Round started: level=%d, sun=%d, quota=%d", level, gs.World.Sun, round.KillQuota)
	s.sink.Emit(event.Event{Type: event.RoundStarted, Data: event.RoundData{Level: level}})
	return level
}

// Pause 暂停本局，仅在运行中有效
func (s *LevelSystem) Pause() bool {
	gs := s.gameState
	if gs.Status != state.StatusRunning || gs.Paused {
		return false
	}
	gs.Paused = true
	log.Printf("[LevelSystem] Paused at t=%v", gs.World.Now)
	s.sink.Emit(event.Event{Type: event.RoundPaused})
	return true
}

// Resume 恢复本局，仅在暂停中有效
func (s *LevelSystem) Resume() bool {
	gs := s.gameState
	if gs.Status != state.StatusRunning || !gs.Paused {
		return false
	}
	gs.Paused = false
	log.Printf("[LevelSystem] Resumed at t=%v", gs.World.Now)
	s.sink.Emit(event.Event{Type: event.RoundResumed})
	return true
}

// Evaluate 根据 tick 结果判定胜负，返回状态是否发生了变化
func (s *LevelSystem) Evaluate(result TickResult) bool {
	gs := s.gameState
	if gs.Status != state.StatusRunning {
		return false
	}

	// 失败优先于胜利
	if result.ZombieReachedHome {
		s.enterGameOver()
		return true
	}

	if s.isVictory() {
		s.enterLevelComplete()
		return true
	}
	return false
}

func (s *LevelSystem) isVictory() bool {
	w := s.gameState.World
	return w.Kills >= s.config.Round.KillQuota && w.ZombieCount() == 0
}

func (s *LevelSystem) enterGameOver() {
	gs := s.gameState
	gs.Status = state.StatusGameOver
	log.Printf("[LevelSystem] Game over on level %d (kills=%d)", gs.Level, gs.World.Kills)
	s.sink.Emit(event.Event{
		Type: event.GameOver,
		Data: event.RoundData{Level: gs.Level, Kills: gs.World.Kills},
	})
}

func (s *LevelSystem) enterLevelComplete() {
	gs := s.gameState
	round := s.config.Round

	gs.Status = state.StatusLevelComplete
	gs.UnlockLevel(gs.Level+1, round.MaxLevel)
	gs.CoinsEarned += round.CompletionReward

	log.Printf("[LevelSystem] Level %d complete, reward=%d, unlocked=%d",
		gs.Level, round.CompletionReward, gs.MaxUnlockedLevel)
	s.sink.Emit(event.Event{
		Type: event.LevelComplete,
		Data: event.LevelCompleteData{
			Level:            gs.Level,
			Reward:           round.CompletionReward,
			MaxUnlockedLevel: gs.MaxUnlockedLevel,
		},
	})
}
