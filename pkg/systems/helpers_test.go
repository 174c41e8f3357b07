package systems

import (
	"testing"
	"time"

	"github.com/gonewx/lanedefense/pkg/config"
	"github.com/gonewx/lanedefense/pkg/ecs"
	"github.com/gonewx/lanedefense/pkg/event"
	"github.com/gonewx/lanedefense/pkg/game/state"
	"github.com/gonewx/lanedefense/pkg/types"
)

// fakeRand 按顺序返回预设值的随机数源
// 预设值用完后 Float64 返回 0.999，IntN 返回 0
type fakeRand struct {
	floats []float64
	ints   []int
}

func (r *fakeRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.999
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *fakeRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

// recordingSink 记录事件及其发生时的模拟时间
type recordingSink struct {
	world  *state.World
	events []event.Event
	times  []time.Duration
}

func (s *recordingSink) Emit(e event.Event) {
	s.events = append(s.events, e)
	if s.world != nil {
		s.times = append(s.times, s.world.Now)
	}
}

func (s *recordingSink) count(t event.EventType) int {
	n := 0
	for _, e := range s.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (s *recordingSink) timesOf(t event.EventType) []time.Duration {
	var out []time.Duration
	for i, e := range s.events {
		if e.Type == t {
			out = append(out, s.times[i])
		}
	}
	return out
}

// fixture 一局运行中的测试环境
type fixture struct {
	cfg      *config.GameConfig
	gs       *state.GameState
	sink     *recordingSink
	behavior *BehaviorSystem
	level    *LevelSystem
	planting *PlantingSystem
	shovel   *ShovelSystem
	glove    *GloveSystem
	collect  *SunCollectionSystem
	input    *InputSystem
}

func newFixture(t *testing.T, level int) *fixture {
	t.Helper()
	cfg := config.Default()
	gs := state.NewGameState(cfg.Round.StartingSun, cfg.Round.MaxSun, 1)
	sink := &recordingSink{world: gs.World}

	f := &fixture{
		cfg:      cfg,
		gs:       gs,
		sink:     sink,
		behavior: NewBehaviorSystem(gs, cfg, sink),
		level:    NewLevelSystem(gs, cfg, sink),
		planting: NewPlantingSystem(gs, cfg, sink),
		shovel:   NewShovelSystem(gs, sink),
		glove:    NewGloveSystem(gs, cfg, sink),
		collect:  NewSunCollectionSystem(gs, sink),
	}
	f.input = NewInputSystem(gs, f.planting, f.shovel, f.glove, sink)
	f.level.StartRound(level)
	sink.events = nil
	sink.times = nil
	return f
}

func (f *fixture) world() *state.World { return f.gs.World }

// plant 直接在格子上放置植物（绕过命令检查）
func (f *fixture) plant(t *testing.T, pt types.PlantType, row, col int) ecs.EntityID {
	t.Helper()
	def, ok := f.cfg.Catalog.Plant(pt)
	if !ok {
		t.Fatalf("plant %s missing from catalog", pt)
	}
	return f.world().SpawnPlant(def, row, col).ID
}

// zombie 直接生成僵尸并设置位置，返回其ID
func (f *fixture) zombie(t *testing.T, zt types.ZombieType, row int, pos float64) int {
	t.Helper()
	def, ok := f.cfg.Catalog.Zombie(zt)
	if !ok {
		t.Fatalf("zombie %s missing from catalog", zt)
	}
	z := f.world().SpawnZombie(def, row)
	z.Position = pos
	return len(f.world().Zombies) - 1
}

// tick 推进一个 tick 的模拟时间并结算、判定
func (f *fixture) tick() TickResult {
	r := f.behavior.Tick()
	f.level.Evaluate(r)
	f.gs.World.Now += f.cfg.Round.Tick()
	return r
}

// selectAndPlace 通过命令种植
func (f *fixture) selectAndPlace(pt types.PlantType, row, col int) bool {
	if !f.planting.SelectPlantType(pt) {
		return false
	}
	return f.planting.PlaceAt(row, col)
}
