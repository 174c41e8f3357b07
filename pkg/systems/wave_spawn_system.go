package systems

import (
	"log"
	"time"

	"github.com/gonewx/lanedefense/pkg/config"
	"github.com/gonewx/lanedefense/pkg/event"
	"github.com/gonewx/lanedefense/pkg/game/state"
	"github.com/gonewx/lanedefense/pkg/types"
)

// WaveSpawnSystem 僵尸生成系统
//
// 由模拟时钟的独立计时器驱动（不在 tick 内）。每次尝试：
//  1. 已生成数量达到击杀目标时停止生成
//  2. 以 spawnChance 的概率通过
//  3. 用一次均匀抽样从生成表选择类型，随机选择行
type WaveSpawnSystem struct {
	gameState *state.GameState
	config    *config.GameConfig
	rng       RandSource
	sink      EventSink
}

// NewWaveSpawnSystem 创建僵尸生成系统
func NewWaveSpawnSystem(gs *state.GameState, cfg *config.GameConfig, rng RandSource, sink EventSink) *WaveSpawnSystem {
	return &WaveSpawnSystem{
		gameState: gs,
		config:    cfg,
		rng:       rng,
		sink:      sinkOrDiscard(sink),
	}
}

// Interval 当前关卡的生成尝试间隔
func (s *WaveSpawnSystem) Interval() time.Duration {
	return s.config.Round.ZombieSpawn.Interval(s.gameState.Level)
}

// Exhausted 本局是否已生成足够的僵尸
func (s *WaveSpawnSystem) Exhausted() bool {
	return s.gameState.World.Spawned >= s.config.Round.KillQuota
}

// TrySpawn 执行一次生成尝试，返回是否生成了僵尸
func (s *WaveSpawnSystem) TrySpawn() bool {
	if !s.gameState.IsRunning() || s.Exhausted() {
		return false
	}

	if s.rng.Float64() >= s.config.Round.ZombieSpawn.SpawnChance {
		return false
	}

	zombieType := s.config.SpawnRules.Pick(s.gameState.Level, s.rng.Float64())
	row := s.rng.IntN(config.GridRows)
	return s.SpawnZombie(zombieType, row)
}

// SpawnZombie 在指定行生成指定类型的僵尸（不经过概率判定）
func (s *WaveSpawnSystem) SpawnZombie(zombieType types.ZombieType, row int) bool {
	if row < 0 || row >= config.GridRows {
		return false
	}
	def, ok := s.config.Catalog.Zombie(zombieType)
	if !ok {
		log.Printf("[WaveSpawnSystem] Unknown zombie type %s", zombieType)
		return false
	}

	z := s.gameState.World.SpawnZombie(def, row)
	log.Printf("[WaveSpawnSystem] Spawned %s in row %d (%d/%d)",
		z.Type, row, s.gameState.World.Spawned, s.config.Round.KillQuota)
	s.sink.Emit(event.Event{
		Type: event.ZombieSpawned,
		Data: event.ZombieData{Type: z.Type, Row: row, Health: z.CurrentHealth},
	})
	return true
}
