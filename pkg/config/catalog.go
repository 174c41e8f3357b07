package config

import (
	"fmt"
	"os"
	"time"

	"github.com/gonewx/lanedefense/pkg/types"
	"gopkg.in/yaml.v3"
)

// PlantDef 单个植物类型的静态定义（不可变）
type PlantDef struct {
	Type              types.PlantType `yaml:"id"`
	Name              string          `yaml:"name"`
	Cost              int             `yaml:"cost"`              // 阳光花费
	Damage            int             `yaml:"damage"`            // 攻击伤害，0 表示不攻击
	Health            int             `yaml:"health"`            // 最大生命值
	AttackIntervalMs  int             `yaml:"attackIntervalMs"`  // 攻击间隔，非攻击型为 0
	CooldownMs        int             `yaml:"cooldownMs"`        // 种植冷却，0 表示无冷却
	ProduceValue      int             `yaml:"produceValue"`      // 每次生产的阳光，0 表示不生产
	ProduceIntervalMs int             `yaml:"produceIntervalMs"` // 生产间隔
	UnlockLevel       int             `yaml:"unlockLevel"`       // 从第几关开始可用
}

// IsAttacker 是否为攻击型植物
func (d *PlantDef) IsAttacker() bool {
	return d.Damage > 0 && d.AttackIntervalMs > 0
}

// IsGenerator 是否为资源生产型植物（向日葵类）
func (d *PlantDef) IsGenerator() bool {
	return d.ProduceValue > 0 && d.ProduceIntervalMs > 0
}

// AttackInterval 攻击间隔
func (d *PlantDef) AttackInterval() time.Duration {
	return time.Duration(d.AttackIntervalMs) * time.Millisecond
}

// Cooldown 种植冷却时长
func (d *PlantDef) Cooldown() time.Duration {
	return time.Duration(d.CooldownMs) * time.Millisecond
}

// ProduceInterval 生产间隔
func (d *PlantDef) ProduceInterval() time.Duration {
	return time.Duration(d.ProduceIntervalMs) * time.Millisecond
}

// ZombieDef 单个僵尸类型的静态定义（不可变）
type ZombieDef struct {
	Type   types.ZombieType `yaml:"id"`
	Name   string           `yaml:"name"`
	Health int              `yaml:"health"`
	Speed  float64          `yaml:"speed"` // 列/秒，一个 100ms tick 移动 Speed*0.1 列
}

// Catalog 植物与僵尸图鉴
type Catalog struct {
	Plants  []PlantDef  `yaml:"plants"`
	Zombies []ZombieDef `yaml:"zombies"`

	plantIndex  map[types.PlantType]*PlantDef
	zombieIndex map[types.ZombieType]*ZombieDef
}

// ParseCatalog 解析 YAML 图鉴数据并校验
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	if err := validateCatalog(&catalog); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	catalog.buildIndex()
	return &catalog, nil
}

// LoadCatalog 从文件加载图鉴
// 参数：
//
//	path - 配置文件路径（相对或绝对路径）
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// validateCatalog 验证图鉴的完整性和合法性
func validateCatalog(c *Catalog) error {
	if len(c.Plants) == 0 {
		return fmt.Errorf("at least one plant type is required")
	}
	if len(c.Zombies) == 0 {
		return fmt.Errorf("at least one zombie type is required")
	}

	seenPlants := make(map[types.PlantType]bool)
	for i, p := range c.Plants {
		if p.Type == types.PlantUnknown {
			return fmt.Errorf("plant #%d: unknown plant id", i)
		}
		if seenPlants[p.Type] {
			return fmt.Errorf("plant %s: duplicated", p.Type)
		}
		seenPlants[p.Type] = true

		if p.Cost < 0 {
			return fmt.Errorf("plant %s: cost cannot be negative, got %d", p.Type, p.Cost)
		}
		if p.Health <= 0 {
			return fmt.Errorf("plant %s: health must be positive, got %d", p.Type, p.Health)
		}
		if p.Damage < 0 {
			return fmt.Errorf("plant %s: damage cannot be negative, got %d", p.Type, p.Damage)
		}
		if p.Damage > 0 && p.AttackIntervalMs <= 0 {
			return fmt.Errorf("plant %s: attacking plant requires attackIntervalMs", p.Type)
		}
		if p.CooldownMs < 0 {
			return fmt.Errorf("plant %s: cooldownMs cannot be negative, got %d", p.Type, p.CooldownMs)
		}
		if p.ProduceValue > 0 && p.ProduceIntervalMs <= 0 {
			return fmt.Errorf("plant %s: producing plant requires produceIntervalMs", p.Type)
		}
	}

	seenZombies := make(map[types.ZombieType]bool)
	for i, z := range c.Zombies {
		if z.Type == types.ZombieUnknown {
			return fmt.Errorf("zombie #%d: unknown zombie id", i)
		}
		if seenZombies[z.Type] {
			return fmt.Errorf("zombie %s: duplicated", z.Type)
		}
		seenZombies[z.Type] = true

		if z.Health <= 0 {
			return fmt.Errorf("zombie %s: health must be positive, got %d", z.Type, z.Health)
		}
		if z.Speed < 0 {
			return fmt.Errorf("zombie %s: speed cannot be negative, got %v", z.Type, z.Speed)
		}
	}

	return nil
}

func (c *Catalog) buildIndex() {
	c.plantIndex = make(map[types.PlantType]*PlantDef, len(c.Plants))
	for i := range c.Plants {
		c.plantIndex[c.Plants[i].Type] = &c.Plants[i]
	}
	c.zombieIndex = make(map[types.ZombieType]*ZombieDef, len(c.Zombies))
	for i := range c.Zombies {
		c.zombieIndex[c.Zombies[i].Type] = &c.Zombies[i]
	}
}

// Plant 获取指定植物类型的定义
// 如果类型不存在，返回 nil 和 false
func (c *Catalog) Plant(pt types.PlantType) (*PlantDef, bool) {
	def, ok := c.plantIndex[pt]
	return def, ok
}

// Zombie 获取指定僵尸类型的定义
func (c *Catalog) Zombie(zt types.ZombieType) (*ZombieDef, bool) {
	def, ok := c.zombieIndex[zt]
	return def, ok
}

// PlantsForLevel 返回指定关卡已解锁的植物，保持图鉴顺序
func (c *Catalog) PlantsForLevel(level int) []PlantDef {
	result := make([]PlantDef, 0, len(c.Plants))
	for _, p := range c.Plants {
		if p.UnlockLevel <= level {
			result = append(result, p)
		}
	}
	return result
}
