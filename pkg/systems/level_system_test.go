package systems

import (
	"testing"
	"time"

	"github.com/gonewx/lanedefense/pkg/event"
	"github.com/gonewx/lanedefense/pkg/game/state"
	"github.com/gonewx/lanedefense/pkg/types"
)

func TestLevelCompleteExactlyOnce(t *testing.T) {
	f := newFixture(t, 3)
	f.world().Kills = f.cfg.Round.KillQuota

	if !f.level.Evaluate(TickResult{}) {
		t.Fatal("Evaluate() should transition to level complete")
	}
	if f.gs.Status != state.StatusLevelComplete {
		t.Fatalf("Status = %v, want level_complete", f.gs.Status)
	}
	if f.gs.MaxUnlockedLevel != 4 {
		t.Errorf("MaxUnlockedLevel = %d, want 4", f.gs.MaxUnlockedLevel)
	}
	if f.gs.CoinsEarned != f.cfg.Round.CompletionReward {
		t.Errorf("CoinsEarned = %d, want %d", f.gs.CoinsEarned, f.cfg.Round.CompletionReward)
	}

	// 再次判定不会重复发放奖励
	if f.level.Evaluate(TickResult{}) {
		t.Error("second Evaluate() should not transition")
	}
	if f.gs.CoinsEarned != f.cfg.Round.CompletionReward {
		t.Errorf("CoinsEarned after second check = %d", f.gs.CoinsEarned)
	}
	if n := f.sink.count(event.LevelComplete); n != 1 {
		t.Fatalf("LevelComplete emitted %d times, want 1", n)
	}
	data := f.sink.events[len(f.sink.events)-1].Data.(event.LevelCompleteData)
	if data.Level != 3 || data.Reward != f.cfg.Round.CompletionReward || data.MaxUnlockedLevel != 4 {
		t.Errorf("LevelCompleteData = %+v", data)
	}
}

func TestNoWinWhileZombiesRemain(t *testing.T) {
	f := newFixture(t, 1)
	f.world().Kills = f.cfg.Round.KillQuota
	f.zombie(t, types.ZombieBasic, 0, 8.0)

	if f.level.Evaluate(TickResult{}) {
		t.Error("round should not complete while zombies are active")
	}
	if f.gs.Status != state.StatusRunning {
		t.Errorf("Status = %v, want running", f.gs.Status)
	}
}

func TestUnlockNeverDecreases(t *testing.T) {
	f := newFixture(t, 1)
	f.gs.MaxUnlockedLevel = 6
	f.level.StartRound(2)
	f.world().Kills = f.cfg.Round.KillQuota

	f.level.Evaluate(TickResult{})

	if f.gs.MaxUnlockedLevel != 6 {
		t.Errorf("MaxUnlockedLevel = %d, want 6", f.gs.MaxUnlockedLevel)
	}
}

func TestUnlockCappedAtMaxLevel(t *testing.T) {
	f := newFixture(t, 1)
	last := f.cfg.Round.MaxLevel
	f.gs.MaxUnlockedLevel = last
	f.level.StartRound(last)
	f.world().Kills = f.cfg.Round.KillQuota

	f.level.Evaluate(TickResult{})

	if f.gs.MaxUnlockedLevel != last {
		t.Errorf("MaxUnlockedLevel = %d, want %d", f.gs.MaxUnlockedLevel, last)
	}
}

func TestLossTakesPriority(t *testing.T) {
	f := newFixture(t, 1)
	f.world().Kills = f.cfg.Round.KillQuota

	f.level.Evaluate(TickResult{ZombieReachedHome: true})

	if f.gs.Status != state.StatusGameOver {
		t.Errorf("Status = %v, want game_over", f.gs.Status)
	}
	if f.gs.CoinsEarned != 0 {
		t.Error("no reward on loss")
	}
}

func TestStartRoundResets(t *testing.T) {
	for _, terminal := range []state.RoundStatus{state.StatusGameOver, state.StatusLevelComplete, state.StatusRunning} {
		t.Run(terminal.String(), func(t *testing.T) {
			f := newFixture(t, 1)
			w := f.world()
			f.plant(t, types.PlantSunflower, 0, 0)
			f.zombie(t, types.ZombieBasic, 1, 4.0)
			w.SpawnProjectile(types.PlantPeashooter, 1, 2.0, 20)
			w.SpawnSunPickup(2, 2, 25, false, time.Second)
			w.Sun = 10
			w.Kills = 7
			w.Now = time.Minute
			w.StartCooldown(types.PlantSunflower, time.Hour)
			f.gs.Tool = types.ToolShovel
			f.gs.Status = terminal

			f.level.StartRound(0)

			if len(w.Plants)+len(w.Zombies)+len(w.Projectiles)+len(w.Suns) != 0 {
				t.Error("collections not cleared")
			}
			if w.Sun != f.cfg.Round.StartingSun {
				t.Errorf("Sun = %d, want %d", w.Sun, f.cfg.Round.StartingSun)
			}
			if w.Kills != 0 {
				t.Errorf("Kills = %d, want 0", w.Kills)
			}
			if w.CooldownRemaining(types.PlantSunflower) != 0 {
				t.Error("cooldowns not cleared")
			}
			if f.gs.Status != state.StatusRunning || f.gs.Tool != types.ToolPlant || f.gs.Level != 1 {
				t.Errorf("status=%v tool=%v level=%d", f.gs.Status, f.gs.Tool, f.gs.Level)
			}
		})
	}
}

func TestStartRoundClampsLevel(t *testing.T) {
	f := newFixture(t, 1)
	if got := f.level.StartRound(99); got != f.cfg.Round.MaxLevel {
		t.Errorf("StartRound(99) = %d, want %d", got, f.cfg.Round.MaxLevel)
	}
	if got := f.level.StartRound(0); got != f.cfg.Round.MaxLevel {
		t.Errorf("StartRound(0) = %d, want current level %d", got, f.cfg.Round.MaxLevel)
	}
}

func TestPauseResume(t *testing.T) {
	f := newFixture(t, 1)

	if f.level.Resume() {
		t.Error("Resume() on a running round should be rejected")
	}
	if !f.level.Pause() {
		t.Fatal("Pause() = false")
	}
	if f.level.Pause() {
		t.Error("second Pause() should be rejected")
	}
	if f.gs.IsRunning() {
		t.Error("paused round reports running")
	}
	if !f.level.Resume() {
		t.Error("Resume() = false")
	}

	f.gs.Status = state.StatusGameOver
	if f.level.Pause() {
		t.Error("Pause() after game over should be rejected")
	}
}
