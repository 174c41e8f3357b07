package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// 草坪网格常量
const (
	GridRows    = 5 // 行数（僵尸通道数）
	GridColumns = 9 // 列数

	// ZombieSpawnPosition 僵尸出生位置（场地最远边界）
	ZombieSpawnPosition = float64(GridColumns)
	// HomeBoundary 僵尸到达即判负的位置
	HomeBoundary = 0.0
)

// RoundConfig 单局规则配置
type RoundConfig struct {
	StartingSun      int `yaml:"startingSun"`
	MaxSun           int `yaml:"maxSun"`
	KillQuota        int `yaml:"killQuota"`        // 过关所需击杀数
	CompletionReward int `yaml:"completionReward"` // 过关奖励金币
	MaxLevel         int `yaml:"maxLevel"`
	TickMs           int `yaml:"tickMs"`
	GloveCooldownMs  int `yaml:"gloveCooldownMs"`

	Combat      CombatConfig      `yaml:"combat"`
	ZombieSpawn ZombieSpawnConfig `yaml:"zombieSpawn"`
	SunSpawn    SunSpawnConfig    `yaml:"sunSpawn"`
}

// CombatConfig 战斗常量
type CombatConfig struct {
	BiteDamage         int     `yaml:"biteDamage"`
	ProjectileStep     float64 `yaml:"projectileStep"`
	CollisionTolerance float64 `yaml:"collisionTolerance"`
}

// ZombieSpawnConfig 僵尸生成节奏
type ZombieSpawnConfig struct {
	BaseIntervalMs int     `yaml:"baseIntervalMs"`
	IntervalStepMs int     `yaml:"intervalStepMs"`
	MinIntervalMs  int     `yaml:"minIntervalMs"`
	SpawnChance    float64 `yaml:"spawnChance"`
}

// SunSpawnConfig 天降阳光配置
type SunSpawnConfig struct {
	MinIntervalMs int     `yaml:"minIntervalMs"`
	MaxIntervalMs int     `yaml:"maxIntervalMs"`
	Value         int     `yaml:"value"`
	BonusValue    int     `yaml:"bonusValue"`
	BonusChance   float64 `yaml:"bonusChance"`
	LifetimeMs    int     `yaml:"lifetimeMs"`
}

// Tick 固定时间步长
func (c *RoundConfig) Tick() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

// GloveCooldown 手套冷却时长
func (c *RoundConfig) GloveCooldown() time.Duration {
	return time.Duration(c.GloveCooldownMs) * time.Millisecond
}

// Interval 返回指定关卡的僵尸生成尝试间隔
// 公式: max(min, base - step*(level-1))
func (z ZombieSpawnConfig) Interval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	ms := z.BaseIntervalMs - z.IntervalStepMs*(level-1)
	if ms < z.MinIntervalMs {
		ms = z.MinIntervalMs
	}
	return time.Duration(ms) * time.Millisecond
}

// Lifetime 阳光存在时长
func (s SunSpawnConfig) Lifetime() time.Duration {
	return time.Duration(s.LifetimeMs) * time.Millisecond
}

// ParseRoundConfig 解析 YAML 单局规则并校验
func ParseRoundConfig(data []byte) (*RoundConfig, error) {
	var cfg RoundConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse round config YAML: %w", err)
	}

	if err := validateRoundConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid round config: %w", err)
	}

	return &cfg, nil
}

// LoadRoundConfig 从文件加载单局规则
func LoadRoundConfig(path string) (*RoundConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read round config file %s: %w", path, err)
	}
	return ParseRoundConfig(data)
}

func validateRoundConfig(c *RoundConfig) error {
	if c.StartingSun < 0 {
		return fmt.Errorf("startingSun cannot be negative, got %d", c.StartingSun)
	}
	if c.MaxSun < c.StartingSun {
		return fmt.Errorf("maxSun (%d) must be >= startingSun (%d)", c.MaxSun, c.StartingSun)
	}
	if c.KillQuota < 1 {
		return fmt.Errorf("killQuota must be at least 1, got %d", c.KillQuota)
	}
	if c.MaxLevel < 1 {
		return fmt.Errorf("maxLevel must be at least 1, got %d", c.MaxLevel)
	}
	if c.TickMs <= 0 {
		return fmt.Errorf("tickMs must be positive, got %d", c.TickMs)
	}
	if c.GloveCooldownMs < 0 {
		return fmt.Errorf("gloveCooldownMs cannot be negative, got %d", c.GloveCooldownMs)
	}

	if c.Combat.BiteDamage < 0 {
		return fmt.Errorf("combat.biteDamage cannot be negative, got %d", c.Combat.BiteDamage)
	}
	if c.Combat.ProjectileStep <= 0 {
		return fmt.Errorf("combat.projectileStep must be positive, got %v", c.Combat.ProjectileStep)
	}
	if c.Combat.CollisionTolerance <= 0 {
		return fmt.Errorf("combat.collisionTolerance must be positive, got %v", c.Combat.CollisionTolerance)
	}

	zs := c.ZombieSpawn
	if zs.MinIntervalMs <= 0 || zs.BaseIntervalMs < zs.MinIntervalMs {
		return fmt.Errorf("zombieSpawn: need 0 < minIntervalMs <= baseIntervalMs, got %d/%d", zs.MinIntervalMs, zs.BaseIntervalMs)
	}
	if zs.IntervalStepMs < 0 {
		return fmt.Errorf("zombieSpawn.intervalStepMs cannot be negative, got %d", zs.IntervalStepMs)
	}
	if zs.SpawnChance <= 0 || zs.SpawnChance > 1 {
		return fmt.Errorf("zombieSpawn.spawnChance must be in (0, 1], got %v", zs.SpawnChance)
	}

	ss := c.SunSpawn
	if ss.MinIntervalMs <= 0 || ss.MaxIntervalMs < ss.MinIntervalMs {
		return fmt.Errorf("sunSpawn: need 0 < minIntervalMs <= maxIntervalMs, got %d/%d", ss.MinIntervalMs, ss.MaxIntervalMs)
	}
	if ss.Value <= 0 || ss.BonusValue <= 0 {
		return fmt.Errorf("sunSpawn: values must be positive, got %d/%d", ss.Value, ss.BonusValue)
	}
	if ss.BonusChance < 0 || ss.BonusChance > 1 {
		return fmt.Errorf("sunSpawn.bonusChance must be in [0, 1], got %v", ss.BonusChance)
	}
	if ss.LifetimeMs <= 0 {
		return fmt.Errorf("sunSpawn.lifetimeMs must be positive, got %d", ss.LifetimeMs)
	}

	return nil
}
