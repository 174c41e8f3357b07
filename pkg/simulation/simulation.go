// Package simulation 提供单局模拟的对外接口
//
// Simulation 持有世界状态和模拟时钟，所有命令、查询和时间推进都在同一把锁内完成，
// 因此一个 tick 的三个结算阶段不会与命令交错。事件在锁内排队，
// 释放锁后再分发给监听器，监听器可以安全地回调 Simulation
package simulation

import (
	"context"
	"log"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gonewx/lanedefense/pkg/config"
	"github.com/gonewx/lanedefense/pkg/ecs"
	"github.com/gonewx/lanedefense/pkg/event"
	"github.com/gonewx/lanedefense/pkg/game/state"
	"github.com/gonewx/lanedefense/pkg/systems"
	"github.com/gonewx/lanedefense/pkg/types"
)

// Simulation 单局模拟
type Simulation struct {
	mu sync.Mutex

	config     *config.GameConfig
	state      *state.GameState
	clock      *Clock
	queue      systems.EventQueue
	dispatcher *event.Dispatcher

	behavior *systems.BehaviorSystem
	waves    *systems.WaveSpawnSystem
	suns     *systems.SunSpawnSystem
	level    *systems.LevelSystem
	planting *systems.PlantingSystem
	shovel   *systems.ShovelSystem
	glove    *systems.GloveSystem
	collect  *systems.SunCollectionSystem
	input    *systems.InputSystem
}

type options struct {
	rng              systems.RandSource
	dispatcher       *event.Dispatcher
	maxUnlockedLevel int
	maxStep          time.Duration
}

// Option 配置 Simulation
type Option func(*options)

// WithRand 注入随机数源（测试中用于固定生成结果）
func WithRand(rng systems.RandSource) Option {
	return func(o *options) { o.rng = rng }
}

// WithSeed 使用固定种子的 PCG 随机数源
func WithSeed(seed uint64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithDispatcher 使用外部的事件分发器
func WithDispatcher(d *event.Dispatcher) Option {
	return func(o *options) { o.dispatcher = d }
}

// WithMaxUnlockedLevel 设置初始已解锁的最高关卡（通常来自玩家档案）
func WithMaxUnlockedLevel(level int) Option {
	return func(o *options) { o.maxUnlockedLevel = level }
}

// WithMaxStep 设置单次 Advance 的最大时间
func WithMaxStep(d time.Duration) Option {
	return func(o *options) { o.maxStep = d }
}

// New 创建处于 Idle 状态的模拟
func New(cfg *config.GameConfig, opts ...Option) *Simulation {
	o := options{maxUnlockedLevel: 1}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		seed := uint64(time.Now().UnixNano())
		o.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if o.dispatcher == nil {
		o.dispatcher = event.NewDispatcher()
	}

	round := cfg.Round
	s := &Simulation{
		config:     cfg,
		state:      state.NewGameState(round.StartingSun, round.MaxSun, o.maxUnlockedLevel),
		clock:      NewClock(o.maxStep),
		dispatcher: o.dispatcher,
	}

	gs, sink := s.state, &s.queue
	s.behavior = systems.NewBehaviorSystem(gs, cfg, sink)
	s.waves = systems.NewWaveSpawnSystem(gs, cfg, o.rng, sink)
	s.suns = systems.NewSunSpawnSystem(gs, cfg, o.rng, sink)
	s.level = systems.NewLevelSystem(gs, cfg, sink)
	s.planting = systems.NewPlantingSystem(gs, cfg, sink)
	s.shovel = systems.NewShovelSystem(gs, sink)
	s.glove = systems.NewGloveSystem(gs, cfg, sink)
	s.collect = systems.NewSunCollectionSystem(gs, sink)
	s.input = systems.NewInputSystem(gs, s.planting, s.shovel, s.glove, sink)

	log.Printf("[Simulation] Created (tick=%v, quota=%d, maxLevel=%d)", round.Tick(), round.KillQuota, round.MaxLevel)
	return s
}

// Events 返回事件分发器，用于订阅提示音和生命周期事件
func (s *Simulation) Events() *event.Dispatcher {
	return s.dispatcher
}

// Config 返回只读的游戏配置
func (s *Simulation) Config() *config.GameConfig {
	return s.config
}

// locked 在锁内执行 fn，释放锁后分发排队的事件
func (s *Simulation) locked(fn func() bool) bool {
	s.mu.Lock()
	ok := fn()
	events := s.queue.Drain()
	s.mu.Unlock()

	s.dispatcher.DispatchAll(events)
	return ok
}

// StartRound 开始新的一局，level <= 0 表示沿用当前关卡；返回实际开始的关卡
func (s *Simulation) StartRound(level int) int {
	var started int
	s.locked(func() bool {
		started = s.level.StartRound(level)
		s.clock.Reset()
		s.startTimers()
		return true
	})
	return started
}

// PauseRound 暂停：停止所有计时器，模拟时间冻结
func (s *Simulation) PauseRound() bool {
	return s.locked(func() bool {
		if !s.level.Pause() {
			return false
		}
		s.clock.Stop()
		return true
	})
}

// ResumeRound 恢复：计时器从当前模拟时间重新开始，不补偿暂停期间
func (s *Simulation) ResumeRound() bool {
	return s.locked(func() bool {
		if !s.level.Resume() {
			return false
		}
		s.startTimers()
		return true
	})
}

func (s *Simulation) startTimers() {
	s.clock.Start()
	s.clock.Schedule(TimerTick, s.config.Round.Tick())
	s.clock.Schedule(TimerZombieSpawn, s.waves.Interval())
	s.clock.Schedule(TimerSunSpawn, s.suns.NextInterval())
}

// SelectTool 切换工具
func (s *Simulation) SelectTool(tool types.ToolType) bool {
	return s.locked(func() bool { return s.input.SelectTool(tool) })
}

// SelectPlantType 选择要种植的植物
func (s *Simulation) SelectPlantType(pt types.PlantType) bool {
	return s.locked(func() bool { return s.planting.SelectPlantType(pt) })
}

// PlaceAt 种植当前选择的植物
func (s *Simulation) PlaceAt(row, col int) bool {
	return s.locked(func() bool { return s.planting.PlaceAt(row, col) })
}

// RemoveAt 用铲子移除植物
func (s *Simulation) RemoveAt(row, col int) bool {
	return s.locked(func() bool { return s.shovel.RemoveAt(row, col) })
}

// RelocateAt 用手套拿起或放下植物
func (s *Simulation) RelocateAt(row, col int) bool {
	return s.locked(func() bool { return s.glove.RelocateAt(row, col) })
}

// ClickCell 按当前工具处理格子点击
func (s *Simulation) ClickCell(row, col int) bool {
	return s.locked(func() bool { return s.input.ClickCell(row, col) })
}

// CollectPickup 收集阳光
func (s *Simulation) CollectPickup(id ecs.EntityID) bool {
	return s.locked(func() bool { return s.collect.CollectPickup(id) })
}

// Advance 推进 dt 的墙钟时间，返回触发的计时器次数
// 非运行状态下不做任何事
func (s *Simulation) Advance(dt time.Duration) int {
	var fired int
	s.locked(func() bool {
		if !s.state.IsRunning() {
			return false
		}
		fired = s.clock.Advance(dt, s.fire)
		s.state.World.Now = s.clock.Now()
		return true
	})
	return fired
}

// fire 计时器回调（锁内）
func (s *Simulation) fire(id TimerID) {
	s.state.World.Now = s.clock.Now()

	switch id {
	case TimerTick:
		result := s.behavior.Tick()
		s.suns.SweepExpired()
		s.level.Evaluate(result)
		if !s.state.IsRunning() {
			// 终态：取消所有计时器
			s.clock.Stop()
			return
		}
		s.clock.Schedule(TimerTick, s.config.Round.Tick())

	case TimerZombieSpawn:
		s.waves.TrySpawn()
		s.clock.Schedule(TimerZombieSpawn, s.waves.Interval())

	case TimerSunSpawn:
		s.suns.Spawn()
		s.clock.Schedule(TimerSunSpawn, s.suns.NextInterval())
	}
}

// Run 以实时速度驱动模拟，直到 ctx 被取消
// frame 为驱动间隔，<= 0 时使用一个 tick 的长度
func (s *Simulation) Run(ctx context.Context, frame time.Duration) error {
	if frame <= 0 {
		frame = s.config.Round.Tick()
	}
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			s.Advance(now.Sub(last))
			last = now
		}
	}
}
