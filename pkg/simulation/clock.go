package simulation

import "time"

// TimerID 时钟上的独立计时器
// 同一时刻到期的计时器按 ID 从小到大依次触发
type TimerID int

const (
	TimerTick TimerID = iota
	TimerZombieSpawn
	TimerSunSpawn

	timerCount
)

// String 返回计时器名称
func (id TimerID) String() string {
	switch id {
	case TimerTick:
		return "tick"
	case TimerZombieSpawn:
		return "zombie_spawn"
	case TimerSunSpawn:
		return "sun_spawn"
	default:
		return "unknown"
	}
}

// DefaultMaxStep 单次 Advance 最多消耗的墙钟时间
// 卡顿之后不会一次性补跑大量 tick
const DefaultMaxStep = 250 * time.Millisecond

type deadline struct {
	at    time.Duration
	armed bool
}

// Clock 模拟时钟：维护模拟时间和一组到期时间
//
// 模拟时间只在时钟运行时前进。Stop 会取消所有计时器，
// Start 之后需要重新 Schedule，错过的时间不会补偿
type Clock struct {
	now       time.Duration
	running   bool
	maxStep   time.Duration
	deadlines [timerCount]deadline
}

// NewClock 创建时钟，maxStep <= 0 时使用 DefaultMaxStep
func NewClock(maxStep time.Duration) *Clock {
	if maxStep <= 0 {
		maxStep = DefaultMaxStep
	}
	return &Clock{maxStep: maxStep}
}

// Now 当前模拟时间
func (c *Clock) Now() time.Duration { return c.now }

// Running 时钟是否在运行
func (c *Clock) Running() bool { return c.running }

// Reset 停止时钟并把模拟时间归零
func (c *Clock) Reset() {
	c.Stop()
	c.now = 0
}

// Start 开始运行（不会自动安排计时器）
func (c *Clock) Start() {
	c.running = true
}

// Stop 停止运行并取消所有计时器
func (c *Clock) Stop() {
	c.running = false
	for i := range c.deadlines {
		c.deadlines[i].armed = false
	}
}

// Schedule 安排计时器在 after 之后到期，覆盖之前的安排
func (c *Clock) Schedule(id TimerID, after time.Duration) {
	c.deadlines[id] = deadline{at: c.now + after, armed: true}
}

// Deadline 返回计时器的到期时间
func (c *Clock) Deadline(id TimerID) (time.Duration, bool) {
	d := c.deadlines[id]
	return d.at, d.armed
}

// Advance 推进 dt 的时间（最多 maxStep），按到期顺序触发计时器
//
// 触发时模拟时间已经跳到该计时器的到期时间；计时器触发后即失效，
// 回调需要自行重新 Schedule。回调中 Stop 时钟会立即结束本次推进，
// 模拟时间停留在最后一次触发的时刻。返回触发次数
func (c *Clock) Advance(dt time.Duration, fire func(id TimerID)) int {
	if !c.running || dt <= 0 {
		return 0
	}
	if dt > c.maxStep {
		dt = c.maxStep
	}
	target := c.now + dt

	fired := 0
	for c.running {
		id, ok := c.next(target)
		if !ok {
			break
		}
		c.now = c.deadlines[id].at
		c.deadlines[id].armed = false
		fired++
		fire(id)
	}

	if c.running {
		c.now = target
	}
	return fired
}

// next 找到 target 之前最早到期的计时器
func (c *Clock) next(target time.Duration) (TimerID, bool) {
	best := TimerID(-1)
	for id := TimerID(0); id < timerCount; id++ {
		d := c.deadlines[id]
		if !d.armed || d.at > target {
			continue
		}
		if best < 0 || d.at < c.deadlines[best].at {
			best = id
		}
	}
	return best, best >= 0
}
