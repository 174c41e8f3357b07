// Package config 提供图鉴与单局规则的加载和访问
//
// 默认配置通过 go:embed 内置在二进制中，可以用同名文件覆盖：
//   - catalog.yaml     植物与僵尸图鉴
//   - round.yaml       单局规则、战斗常量、生成节奏
//   - spawn_rules.yaml 僵尸生成表
package config

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

const (
	catalogFile    = "catalog.yaml"
	roundFile      = "round.yaml"
	spawnRulesFile = "spawn_rules.yaml"
)

// GameConfig 一局游戏所需的全部静态配置
type GameConfig struct {
	Catalog    *Catalog
	Round      *RoundConfig
	SpawnRules *SpawnRulesConfig
}

// Default 返回内置默认配置
// 内置配置在构建时已经确定，解析失败属于编程错误，直接 panic
func Default() *GameConfig {
	cfg, err := loadFrom(defaultsFS, "defaults")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load 加载配置：dir 中存在的文件覆盖对应的内置默认值
// dir 为空时等价于 Default()
func Load(dir string) (*GameConfig, error) {
	cfg := Default()
	if dir == "" {
		return cfg, nil
	}

	if path := filepath.Join(dir, catalogFile); fileExists(path) {
		catalog, err := LoadCatalog(path)
		if err != nil {
			return nil, err
		}
		cfg.Catalog = catalog
		log.Printf("[Config] 覆盖图鉴: %s", path)
	}

	if path := filepath.Join(dir, roundFile); fileExists(path) {
		round, err := LoadRoundConfig(path)
		if err != nil {
			return nil, err
		}
		cfg.Round = round
		log.Printf("[Config] 覆盖单局规则: %s", path)
	}

	if path := filepath.Join(dir, spawnRulesFile); fileExists(path) {
		rules, err := LoadSpawnRules(path)
		if err != nil {
			return nil, err
		}
		cfg.SpawnRules = rules
		log.Printf("[Config] 覆盖生成表: %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 交叉校验：生成表中的僵尸必须在图鉴中存在
func (c *GameConfig) Validate() error {
	if _, ok := c.Catalog.Zombie(c.SpawnRules.Baseline); !ok {
		return fmt.Errorf("spawn rules baseline %s is missing from catalog", c.SpawnRules.Baseline)
	}
	for _, entry := range c.SpawnRules.Table {
		if _, ok := c.Catalog.Zombie(entry.Zombie); !ok {
			return fmt.Errorf("spawn rules zombie %s is missing from catalog", entry.Zombie)
		}
	}
	return nil
}

func loadFrom(fsys fs.FS, dir string) (*GameConfig, error) {
	read := func(name string) ([]byte, error) {
		return fs.ReadFile(fsys, dir+"/"+name)
	}

	data, err := read(catalogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", catalogFile, err)
	}
	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, err
	}

	data, err = read(roundFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", roundFile, err)
	}
	round, err := ParseRoundConfig(data)
	if err != nil {
		return nil, err
	}

	data, err = read(spawnRulesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", spawnRulesFile, err)
	}
	rules, err := ParseSpawnRules(data)
	if err != nil {
		return nil, err
	}

	cfg := &GameConfig{Catalog: catalog, Round: round, SpawnRules: rules}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
