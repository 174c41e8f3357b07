package systems

import (
	"log"
	"time"

	"github.com/gonewx/lanedefense/pkg/config"
	"github.com/gonewx/lanedefense/pkg/event"
	"github.com/gonewx/lanedefense/pkg/game/state"
)

// SunSpawnSystem 管理天降阳光的定时生成和过期清理
type SunSpawnSystem struct {
	gameState *state.GameState
	config    *config.SunSpawnConfig
	rng       RandSource
	sink      EventSink
}

// NewSunSpawnSystem 创建一个新的阳光生成系统
func NewSunSpawnSystem(gs *state.GameState, cfg *config.GameConfig, rng RandSource, sink EventSink) *SunSpawnSystem {
	ss := &cfg.Round.SunSpawn
	log.Printf("[SunSpawnSystem] Initialized with interval=%d-%dms, lifetime=%dms",
		ss.MinIntervalMs, ss.MaxIntervalMs, ss.LifetimeMs)
	return &SunSpawnSystem{
		gameState: gs,
		config:    ss,
		rng:       rng,
		sink:      sinkOrDiscard(sink),
	}
}

// NextInterval 下一次生成的间隔，在 [min, max] 毫秒内均匀分布
func (s *SunSpawnSystem) NextInterval() time.Duration {
	span := s.config.MaxIntervalMs - s.config.MinIntervalMs
	ms := s.config.MinIntervalMs
	if span > 0 {
		ms += s.rng.IntN(span + 1)
	}
	return time.Duration(ms) * time.Millisecond
}

// Spawn 在随机格子生成一个阳光，返回是否生成
func (s *SunSpawnSystem) Spawn() bool {
	if !s.gameState.IsRunning() {
		return false
	}

	row := s.rng.IntN(config.GridRows)
	col := s.rng.IntN(config.GridColumns)
	bonus := s.rng.Float64() < s.config.BonusChance
	value := s.config.Value
	if bonus {
		value = s.config.BonusValue
	}

	sun := s.gameState.World.SpawnSunPickup(row, col, value, bonus, s.config.Lifetime())
	log.Printf("[SunSpawnSystem] Spawned sun %d (value=%d) at (%d,%d)", sun.ID, value, row, col)
	s.sink.Emit(event.Event{
		Type: event.PickupSpawned,
		Data: event.SunData{Amount: value, Row: row, Col: col},
	})
	return true
}

// SweepExpired 移除已过期的阳光，返回移除数量
// 可重复调用：已被收集或已移除的阳光不会再次处理
func (s *SunSpawnSystem) SweepExpired() int {
	w := s.gameState.World
	removed := 0
	for i := range w.Suns {
		sun := &w.Suns[i]
		if w.Entities.IsMarked(sun.ID) || !sun.Expired(w.Now) {
			continue
		}
		w.Entities.DestroyEntity(sun.ID)
		removed++
		s.sink.Emit(event.Event{
			Type: event.PickupExpired,
			Data: event.SunData{Amount: sun.Value, Row: sun.GridRow, Col: sun.GridCol},
		})
	}
	if removed > 0 {
		w.RemoveMarkedEntities()
	}
	return removed
}
