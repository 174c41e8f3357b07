package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gonewx/lanedefense/pkg/types"
)

func TestDefaultRoundConfig(t *testing.T) {
	round := Default().Round

	if round.StartingSun != 150 {
		t.Errorf("StartingSun: got %d, want 150", round.StartingSun)
	}
	if round.Tick() != 100*time.Millisecond {
		t.Errorf("Tick: got %v, want 100ms", round.Tick())
	}
	if round.SunSpawn.BonusValue != 50 {
		t.Errorf("SunSpawn.BonusValue: got %d, want 50", round.SunSpawn.BonusValue)
	}
}

func TestZombieSpawnInterval(t *testing.T) {
	zs := ZombieSpawnConfig{BaseIntervalMs: 6000, IntervalStepMs: 400, MinIntervalMs: 2000}

	tests := []struct {
		level int
		want  time.Duration
	}{
		{0, 6 * time.Second},
		{1, 6 * time.Second},
		{2, 5600 * time.Millisecond},
		{11, 2 * time.Second},
		{50, 2 * time.Second},
	}
	for _, tt := range tests {
		if got := zs.Interval(tt.level); got != tt.want {
			t.Errorf("Interval(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestLoad_EmptyDirUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Round.KillQuota != Default().Round.KillQuota {
		t.Errorf("KillQuota: got %d, want default %d", cfg.Round.KillQuota, Default().Round.KillQuota)
	}
}

func TestLoad_OverridesSpawnRules(t *testing.T) {
	dir := t.TempDir()
	content := `
baseline: conehead
table:
  - zombie: buckethead
    minLevel: 1
    probability: 1.0
`
	if err := os.WriteFile(filepath.Join(dir, "spawn_rules.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write override: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SpawnRules.Baseline != types.ZombieConehead {
		t.Errorf("Baseline: got %s, want conehead", cfg.SpawnRules.Baseline)
	}
	if got := cfg.SpawnRules.Pick(1, 0.99); got != types.ZombieBuckethead {
		t.Errorf("Pick: got %s, want buckethead", got)
	}
	// 未覆盖的文件保持默认
	if cfg.Round.StartingSun != 150 {
		t.Errorf("StartingSun: got %d, want 150", cfg.Round.StartingSun)
	}
}

func TestLoad_InvalidRoundOverride(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "round.yaml"), []byte("startingSun: -5\n"), 0644); err != nil {
		t.Fatalf("failed to write override: %v", err)
	}

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for invalid round override")
	}
	if !strings.Contains(err.Error(), "startingSun cannot be negative") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGameConfigValidate_MissingZombie(t *testing.T) {
	cfg := Default()
	catalog, err := ParseCatalog([]byte(`
plants:
  - id: peashooter
    cost: 100
    damage: 20
    health: 300
    attackIntervalMs: 1350
zombies:
  - id: basic
    health: 100
    speed: 0.3
`))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	cfg.Catalog = catalog

	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error: spawn table references zombies missing from catalog")
	}
}
