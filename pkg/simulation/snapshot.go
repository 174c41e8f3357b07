package simulation

import (
	"slices"
	"time"

	"github.com/gonewx/lanedefense/pkg/components"
	"github.com/gonewx/lanedefense/pkg/game/state"
	"github.com/gonewx/lanedefense/pkg/types"
)

// Snapshot 某一时刻的只读状态副本，与模拟不共享任何存储
type Snapshot struct {
	Status RoundStatus
	Paused bool

	Level            int
	MaxUnlockedLevel int
	CoinsEarned      int

	Sun       int
	Kills     int
	KillQuota int
	Spawned   int
	Now       time.Duration

	Tool          types.ToolType
	SelectedPlant types.PlantType
	Held          *state.HeldPlant

	Plants      []components.PlacedPlant
	Zombies     []components.ActiveZombie
	Projectiles []components.Projectile
	Suns        []components.SunPickup

	// Cooldowns 每种植物剩余的种植冷却，0 表示就绪
	Cooldowns map[types.PlantType]time.Duration
	// GloveCooldown 手套剩余冷却，0 表示就绪
	GloveCooldown time.Duration
}

// RoundStatus 单局状态（与 state.RoundStatus 相同）
type RoundStatus = state.RoundStatus

const (
	StatusIdle          = state.StatusIdle
	StatusRunning       = state.StatusRunning
	StatusGameOver      = state.StatusGameOver
	StatusLevelComplete = state.StatusLevelComplete
)

// PlantReady 植物类型是否已冷却完毕
func (s *Snapshot) PlantReady(pt types.PlantType) bool {
	return s.Cooldowns[pt] == 0
}

// GloveReady 手套是否可用
func (s *Snapshot) GloveReady() bool {
	return s.GloveCooldown == 0
}

// PlantAt 返回格子上的植物
func (s *Snapshot) PlantAt(row, col int) (components.PlacedPlant, bool) {
	for _, p := range s.Plants {
		if p.GridRow == row && p.GridCol == col {
			return p, true
		}
	}
	return components.PlacedPlant{}, false
}

// Snapshot 返回当前状态的深拷贝
func (s *Simulation) Snapshot() *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	gs := s.state
	w := gs.World

	snap := &Snapshot{
		Status:           gs.Status,
		Paused:           gs.Paused,
		Level:            gs.Level,
		MaxUnlockedLevel: gs.MaxUnlockedLevel,
		CoinsEarned:      gs.CoinsEarned,
		Sun:              w.Sun,
		Kills:            w.Kills,
		KillQuota:        s.config.Round.KillQuota,
		Spawned:          w.Spawned,
		Now:              w.Now,
		Tool:             gs.Tool,
		SelectedPlant:    gs.SelectedPlant,
		Plants:           slices.Clone(w.Plants),
		Zombies:          slices.Clone(w.Zombies),
		Projectiles:      slices.Clone(w.Projectiles),
		Suns:             slices.Clone(w.Suns),
		Cooldowns:        make(map[types.PlantType]time.Duration, len(s.config.Catalog.Plants)),
		GloveCooldown:    w.GloveCooldownRemaining(),
	}
	if gs.Held != nil {
		held := *gs.Held
		snap.Held = &held
	}
	for _, def := range s.config.Catalog.Plants {
		snap.Cooldowns[def.Type] = w.CooldownRemaining(def.Type)
	}
	return snap
}
