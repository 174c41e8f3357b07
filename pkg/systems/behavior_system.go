package systems

import (
	"log"

	"github.com/gonewx/lanedefense/pkg/config"
	"github.com/gonewx/lanedefense/pkg/game/state"
)

// TickResult 一次 tick 结算的结果，交给 LevelSystem 判定胜负
type TickResult struct {
	// ZombieReachedHome 有僵尸到达边界（本 tick 在该僵尸处中止）
	ZombieReachedHome bool
	// Kills 本 tick 的击杀数
	Kills int
}

// BehaviorSystem 战斗与移动结算系统
//
// 每个 tick 按顺序执行三个阶段：
//  1. 僵尸：啃食判定 / 前进 / 到达边界
//  2. 植物：生产阳光 / 发射子弹 / 移除死亡植物
//  3. 子弹：前进 / 碰撞 / 飞出场地
//
// 所有阶段的交叉查询（僵尸位置、格子占用）都读取 tick 开始时的快照，
// 写入则作用于实时世界。因此本 tick 新发射的子弹不会在本 tick 移动，
// 植物的索敌也看到的是僵尸移动前的位置
type BehaviorSystem struct {
	gameState *state.GameState
	config    *config.GameConfig
	sink      EventSink
}

// NewBehaviorSystem 创建战斗与移动结算系统
func NewBehaviorSystem(gs *state.GameState, cfg *config.GameConfig, sink EventSink) *BehaviorSystem {
	return &BehaviorSystem{
		gameState: gs,
		config:    cfg,
		sink:      sinkOrDiscard(sink),
	}
}

// Tick 执行一次固定步长的结算
// 非运行状态（暂停、未开始、已结束）下不做任何修改
func (s *BehaviorSystem) Tick() TickResult {
	if !s.gameState.IsRunning() {
		return TickResult{}
	}

	w := s.gameState.World
	snapshot := w.Clone()
	killsBefore := w.Kills

	var result TickResult
	if s.updateZombies(snapshot) {
		result.ZombieReachedHome = true
		s.removeEatenPlants()
	} else {
		s.updatePlants(snapshot)
		s.updateProjectiles(snapshot)
	}

	w.RemoveMarkedEntities()
	result.Kills = w.Kills - killsBefore

	if result.ZombieReachedHome {
		log.Printf("[BehaviorSystem] Zombie reached home at t=%v", w.Now)
	}
	return result
}

// tickSeconds 一个 tick 的秒数（移动速度单位为 列/秒）
func (s *BehaviorSystem) tickSeconds() float64 {
	return s.config.Round.Tick().Seconds()
}
