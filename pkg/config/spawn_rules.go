package config

import (
	"fmt"
	"os"

	"github.com/gonewx/lanedefense/pkg/types"
	"gopkg.in/yaml.v3"
)

// SpawnEntry 生成表中的一条规则
type SpawnEntry struct {
	Zombie      types.ZombieType `yaml:"zombie"`
	MinLevel    int              `yaml:"minLevel"`    // 从该关卡开始可生成
	Probability float64          `yaml:"probability"` // 固定概率质量
}

// SpawnRulesConfig 僵尸生成规则配置
// Table 按强度从高到低排列；一次随机抽样按顺序累加可用条目的概率质量，
// 第一个累计值超过抽样值的条目生效，全部未命中时生成 Baseline
type SpawnRulesConfig struct {
	Baseline types.ZombieType `yaml:"baseline"`
	Table    []SpawnEntry     `yaml:"table"`
}

// ParseSpawnRules 解析 YAML 生成规则并校验
func ParseSpawnRules(data []byte) (*SpawnRulesConfig, error) {
	var cfg SpawnRulesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse spawn rules YAML: %w", err)
	}

	if err := validateSpawnRules(&cfg); err != nil {
		return nil, fmt.Errorf("invalid spawn rules config: %w", err)
	}

	return &cfg, nil
}

// LoadSpawnRules 从 YAML 文件加载僵尸生成规则配置
func LoadSpawnRules(filePath string) (*SpawnRulesConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read spawn rules file: %w", err)
	}
	return ParseSpawnRules(data)
}

// validateSpawnRules 验证配置的有效性
func validateSpawnRules(config *SpawnRulesConfig) error {
	if config.Baseline == types.ZombieUnknown {
		return fmt.Errorf("baseline zombie must be a known type")
	}

	total := 0.0
	prevTier := 0
	for i, entry := range config.Table {
		if entry.Zombie == types.ZombieUnknown {
			return fmt.Errorf("table[%d]: unknown zombie type", i)
		}
		if entry.MinLevel < 1 {
			return fmt.Errorf("table[%d]: minLevel must be >= 1, got %d", i, entry.MinLevel)
		}
		if entry.Probability <= 0 || entry.Probability > 1 {
			return fmt.Errorf("table[%d]: probability must be in (0, 1], got %v", i, entry.Probability)
		}
		if i > 0 && entry.Zombie.Tier() > prevTier {
			return fmt.Errorf("table[%d]: entries must be ordered by descending strength (%s after tier %d)", i, entry.Zombie, prevTier)
		}
		prevTier = entry.Zombie.Tier()
		total += entry.Probability
	}

	if total > 1.0+1e-9 {
		return fmt.Errorf("sum of probabilities must be <= 1, got %v", total)
	}

	return nil
}

// Pick 按关卡与一次 [0,1) 均匀抽样选择僵尸类型
func (c *SpawnRulesConfig) Pick(level int, r float64) types.ZombieType {
	cumulative := 0.0
	for _, entry := range c.Table {
		if level < entry.MinLevel {
			continue
		}
		cumulative += entry.Probability
		if r < cumulative {
			return entry.Zombie
		}
	}
	return c.Baseline
}
