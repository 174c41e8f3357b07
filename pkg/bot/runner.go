package bot

import (
	"log"
	"time"

	"github.com/gonewx/lanedefense/pkg/config"
	"github.com/gonewx/lanedefense/pkg/event"
	"github.com/gonewx/lanedefense/pkg/simulation"
	"github.com/gonewx/lanedefense/pkg/telemetry"
)

// RoundOptions 单局自动模拟参数
type RoundOptions struct {
	Level int
	Seed  uint64
	// Step 每次决策之间推进的模拟时间
	Step time.Duration
	// MaxDuration 模拟时间上限，超过后记为超时
	MaxDuration time.Duration
}

// DefaultRoundOptions 默认参数：100ms 决策间隔，最长 15 分钟
func DefaultRoundOptions(level int, seed uint64) RoundOptions {
	return RoundOptions{
		Level:       level,
		Seed:        seed,
		Step:        100 * time.Millisecond,
		MaxDuration: 15 * time.Minute,
	}
}

// roundStats 从事件流统计本局数据
type roundStats struct {
	placed, lost, produced, collected, shots int
}

func (s *roundStats) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlantPlaced:
		s.placed++
	case event.PlantDestroyed:
		s.lost++
	case event.ProjectileFired:
		s.shots++
	case event.SunProduced:
		if d, ok := e.Data.(event.SunData); ok {
			s.produced += d.Amount
		}
	case event.PickupCollected:
		if d, ok := e.Data.(event.SunData); ok {
			s.collected += d.Amount
		}
	}
}

// PlayRound 用贪心策略完整模拟一局
func PlayRound(cfg *config.GameConfig, opts RoundOptions) telemetry.RoundRecord {
	if opts.Step <= 0 {
		opts.Step = cfg.Round.Tick()
	}

	sim := simulation.New(cfg,
		simulation.WithSeed(opts.Seed),
		simulation.WithMaxUnlockedLevel(cfg.Round.MaxLevel),
	)
	stats := &roundStats{}
	sim.Events().SubscribeAll(stats)

	level := sim.StartRound(opts.Level)
	player := NewGreedy(sim)

	snap := sim.Snapshot()
	for snap.Status == simulation.StatusRunning && snap.Now < opts.MaxDuration {
		player.Act()
		sim.Advance(opts.Step)
		snap = sim.Snapshot()
	}

	outcome := telemetry.OutcomeTimeout
	switch snap.Status {
	case simulation.StatusLevelComplete:
		outcome = telemetry.OutcomeWin
	case simulation.StatusGameOver:
		outcome = telemetry.OutcomeLoss
	}

	log.Printf("[Bot] Round seed=%d level=%d: %s after %v (kills %d/%d)",
		opts.Seed, level, outcome, snap.Now, snap.Kills, snap.KillQuota)

	return telemetry.RoundRecord{
		Seed:         opts.Seed,
		Level:        level,
		Outcome:      outcome,
		DurationSec:  snap.Now.Seconds(),
		Kills:        snap.Kills,
		Spawned:      snap.Spawned,
		PlantsPlaced: stats.placed,
		PlantsLost:   stats.lost,
		SunProduced:  stats.produced,
		SunCollected: stats.collected,
		ShotsFired:   stats.shots,
		FinalSun:     snap.Sun,
	}
}
