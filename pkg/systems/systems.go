// Package systems 实现单局模拟的各个系统：
// 逐 tick 的战斗与移动结算、僵尸与阳光生成、玩家命令处理以及胜负判定
//
// 所有系统都在 Simulation 的锁内被调用，不做内部同步
package systems

import "github.com/gonewx/lanedefense/pkg/event"

// RandSource 可注入的随机数源
// math/rand/v2 的 *rand.Rand 满足此接口，测试中可以使用固定序列
type RandSource interface {
	Float64() float64
	IntN(n int) int
}

// EventSink 接收系统产生的事件
type EventSink interface {
	Emit(e event.Event)
}

// EventQueue 在锁内暂存事件，锁释放后统一分发
type EventQueue struct {
	events []event.Event
}

// Emit 实现 EventSink
func (q *EventQueue) Emit(e event.Event) {
	q.events = append(q.events, e)
}

// Drain 取出并清空所有暂存事件
func (q *EventQueue) Drain() []event.Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}

// Len 暂存事件数量
func (q *EventQueue) Len() int {
	return len(q.events)
}

// discardSink 丢弃所有事件
type discardSink struct{}

func (discardSink) Emit(event.Event) {}

func sinkOrDiscard(sink EventSink) EventSink {
	if sink == nil {
		return discardSink{}
	}
	return sink
}
