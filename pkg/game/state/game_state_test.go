package state

import (
	"testing"

	"github.com/gonewx/lanedefense/pkg/types"
)

func TestNewGameState(t *testing.T) {
	gs := NewGameState(150, 9990, 0)

	if gs.Status != StatusIdle {
		t.Errorf("Status = %v, want idle", gs.Status)
	}
	if gs.MaxUnlockedLevel != 1 {
		t.Errorf("MaxUnlockedLevel = %d, want 1", gs.MaxUnlockedLevel)
	}
	if gs.Tool != types.ToolPlant {
		t.Errorf("Tool = %v, want plant", gs.Tool)
	}
	if gs.World.Sun != 150 {
		t.Errorf("Sun = %d, want 150", gs.World.Sun)
	}
	if gs.IsRunning() {
		t.Error("idle state should not be running")
	}
}

func TestRoundStatus(t *testing.T) {
	tests := []struct {
		status   RoundStatus
		name     string
		terminal bool
	}{
		{StatusIdle, "idle", false},
		{StatusRunning, "running", false},
		{StatusGameOver, "game_over", true},
		{StatusLevelComplete, "level_complete", true},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.status.IsTerminal(); got != tt.terminal {
			t.Errorf("%s.IsTerminal() = %v, want %v", tt.name, got, tt.terminal)
		}
	}
}

func TestIsRunningRespectsPause(t *testing.T) {
	gs := NewGameState(150, 9990, 1)
	gs.Status = StatusRunning
	if !gs.IsRunning() {
		t.Fatal("running state should be running")
	}
	gs.Paused = true
	if gs.IsRunning() {
		t.Error("paused state should not be running")
	}
}

func TestPlantingMode(t *testing.T) {
	gs := NewGameState(150, 9990, 1)

	if active, _ := gs.GetPlantingMode(); active {
		t.Error("no plant should be selected initially")
	}

	gs.EnterPlantingMode(types.PlantPeashooter)
	active, pt := gs.GetPlantingMode()
	if !active || pt != types.PlantPeashooter {
		t.Errorf("GetPlantingMode() = %v, %v", active, pt)
	}

	gs.ExitPlantingMode()
	if active, _ := gs.GetPlantingMode(); active {
		t.Error("selection should be cleared")
	}
}

func TestUnlockLevel(t *testing.T) {
	tests := []struct {
		name        string
		current     int
		level       int
		maxLevel    int
		wantChanged bool
		wantLevel   int
	}{
		{"解锁下一关", 1, 2, 10, true, 2},
		{"不会降低", 5, 3, 10, false, 5},
		{"相同不变", 4, 4, 10, false, 4},
		{"不超过上限", 10, 11, 10, false, 10},
		{"截断到上限", 8, 12, 10, true, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := NewGameState(150, 9990, tt.current)
			if got := gs.UnlockLevel(tt.level, tt.maxLevel); got != tt.wantChanged {
				t.Errorf("UnlockLevel() = %v, want %v", got, tt.wantChanged)
			}
			if gs.MaxUnlockedLevel != tt.wantLevel {
				t.Errorf("MaxUnlockedLevel = %d, want %d", gs.MaxUnlockedLevel, tt.wantLevel)
			}
		})
	}
}
