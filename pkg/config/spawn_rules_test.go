package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonewx/lanedefense/pkg/types"
)

func TestLoadSpawnRules(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *SpawnRulesConfig)
	}{
		{
			name: "valid config",
			yamlContent: `
baseline: basic
table:
  - zombie: buckethead
    minLevel: 4
    probability: 0.15
  - zombie: conehead
    minLevel: 2
    probability: 0.3
`,
			validate: func(t *testing.T, cfg *SpawnRulesConfig) {
				if cfg.Baseline != types.ZombieBasic {
					t.Errorf("expected baseline basic, got %s", cfg.Baseline)
				}
				if len(cfg.Table) != 2 {
					t.Fatalf("expected 2 entries, got %d", len(cfg.Table))
				}
				if cfg.Table[0].Zombie != types.ZombieBuckethead || cfg.Table[0].MinLevel != 4 {
					t.Errorf("unexpected first entry: %+v", cfg.Table[0])
				}
			},
		},
		{
			name: "unknown baseline",
			yamlContent: `
baseline: gargantuar
table: []
`,
			wantErr:     true,
			errContains: "baseline zombie must be a known type",
		},
		{
			name: "probability out of range",
			yamlContent: `
baseline: basic
table:
  - zombie: conehead
    minLevel: 2
    probability: 1.5
`,
			wantErr:     true,
			errContains: "probability must be in (0, 1]",
		},
		{
			name: "ascending strength order",
			yamlContent: `
baseline: basic
table:
  - zombie: conehead
    minLevel: 2
    probability: 0.3
  - zombie: buckethead
    minLevel: 4
    probability: 0.1
`,
			wantErr:     true,
			errContains: "descending strength",
		},
		{
			name: "mass above one",
			yamlContent: `
baseline: basic
table:
  - zombie: buckethead
    minLevel: 1
    probability: 0.6
  - zombie: conehead
    minLevel: 1
    probability: 0.6
`,
			wantErr:     true,
			errContains: "sum of probabilities",
		},
		{
			name: "invalid min level",
			yamlContent: `
baseline: basic
table:
  - zombie: conehead
    minLevel: 0
    probability: 0.3
`,
			wantErr:     true,
			errContains: "minLevel must be >= 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "spawn_rules.yaml")
			if err := os.WriteFile(path, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write temp file: %v", err)
			}

			cfg, err := LoadSpawnRules(path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadSpawnRules_MissingFile(t *testing.T) {
	_, err := LoadSpawnRules(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

// TestSpawnRulesPick 验证按关卡过滤后的累计概率抽样
func TestSpawnRulesPick(t *testing.T) {
	rules := Default().SpawnRules

	tests := []struct {
		name  string
		level int
		r     float64
		want  types.ZombieType
	}{
		{"第1关只有普通僵尸", 1, 0.0, types.ZombieBasic},
		{"第2关低抽样命中路障", 2, 0.1, types.ZombieConehead},
		{"第2关超出路障质量", 2, 0.35, types.ZombieBasic},
		{"第3关优先撑杆", 3, 0.1, types.ZombiePolevaulter},
		{"第3关累计到路障", 3, 0.45, types.ZombieConehead},
		{"第3关落到基线", 3, 0.55, types.ZombieBasic},
		{"第4关优先铁桶", 4, 0.05, types.ZombieBuckethead},
		{"第4关撑杆区间", 4, 0.3, types.ZombiePolevaulter},
		{"第4关路障区间", 4, 0.6, types.ZombieConehead},
		{"第4关基线区间", 4, 0.7, types.ZombieBasic},
		{"高关卡同样适用", 9, 0.14, types.ZombieBuckethead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.Pick(tt.level, tt.r); got != tt.want {
				t.Errorf("Pick(level=%d, r=%v) = %s, want %s", tt.level, tt.r, got, tt.want)
			}
		})
	}
}
