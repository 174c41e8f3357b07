package bot

import (
	"testing"
	"time"

	"github.com/gonewx/lanedefense/pkg/config"
	"github.com/gonewx/lanedefense/pkg/simulation"
	"github.com/gonewx/lanedefense/pkg/telemetry"
	"github.com/gonewx/lanedefense/pkg/types"
)

func TestGreedyOpening(t *testing.T) {
	sim := simulation.New(config.Default(), simulation.WithSeed(1))
	sim.StartRound(1)
	player := NewGreedy(sim)

	if got := player.Act(); got != 1 {
		t.Fatalf("first Act() = %d, want 1", got)
	}
	snap := sim.Snapshot()
	if p, ok := snap.PlantAt(0, 0); !ok || p.Type != types.PlantSunflower {
		t.Errorf("first plant = %+v (ok=%v), want sunflower at (0,0)", p, ok)
	}

	// 向日葵冷却中，剩余 100 阳光正好够一株豌豆射手
	if got := player.Act(); got != 1 {
		t.Fatalf("second Act() = %d, want 1", got)
	}
	snap = sim.Snapshot()
	if p, ok := snap.PlantAt(0, 1); !ok || p.Type != types.PlantPeashooter {
		t.Errorf("second plant = %+v (ok=%v), want peashooter at (0,1)", p, ok)
	}
	if snap.Sun != 0 {
		t.Errorf("Sun = %d, want 0", snap.Sun)
	}

	if got := player.Act(); got != 0 {
		t.Errorf("broke Act() = %d, want 0", got)
	}
}

func TestGreedyIdleRound(t *testing.T) {
	sim := simulation.New(config.Default())
	if got := NewGreedy(sim).Act(); got != 0 {
		t.Errorf("Act() before StartRound = %d, want 0", got)
	}
}

func TestPlayRoundDeterministic(t *testing.T) {
	cfg := config.Default()
	opts := DefaultRoundOptions(1, 42)
	opts.MaxDuration = 3 * time.Minute

	first := PlayRound(cfg, opts)
	second := PlayRound(cfg, opts)
	if first != second {
		t.Errorf("same seed produced different rounds:\n%+v\n%+v", first, second)
	}

	switch first.Outcome {
	case telemetry.OutcomeWin, telemetry.OutcomeLoss, telemetry.OutcomeTimeout:
	default:
		t.Errorf("Outcome = %q", first.Outcome)
	}
	if first.Level != 1 || first.Seed != 42 {
		t.Errorf("Level/Seed = %d/%d, want 1/42", first.Level, first.Seed)
	}
	if first.Kills > first.Spawned {
		t.Errorf("Kills %d > Spawned %d", first.Kills, first.Spawned)
	}
	if first.PlantsPlaced == 0 {
		t.Error("bot placed no plants")
	}
	if first.DurationSec > opts.MaxDuration.Seconds()+1 {
		t.Errorf("DurationSec = %v exceeds cap", first.DurationSec)
	}
}
