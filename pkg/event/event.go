// Package event 提供模拟核心向展示层广播事件的分发器
//
// 分发是 fire-and-forget 的：监听器中的 panic 会被捕获并记录日志，
// 不会影响模拟状态或其他监听器
package event

import (
	"log"
	"sync"
)

// EventType 事件类型
type EventType string

// Event 事件
type Event struct {
	Type EventType
	Data any // 事件数据，可为 nil
}

// Listener 事件监听器
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc 函数适配器
type ListenerFunc func(event Event)

// OnEvent 实现 Listener
func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Subscription 订阅句柄，用于取消订阅
type Subscription struct {
	eventType EventType
	id        uint64
}

type entry struct {
	id       uint64
	listener Listener
}

// Dispatcher 事件分发器（并发安全）
type Dispatcher struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners map[EventType][]entry
	all       []entry // 订阅全部事件的监听器
}

// NewDispatcher 创建新的分发器
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]entry),
	}
}

// Subscribe 订阅指定类型的事件
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], entry{id: d.nextID, listener: listener})
	return Subscription{eventType: eventType, id: d.nextID}
}

// SubscribeAll 订阅所有事件
func (d *Dispatcher) SubscribeAll(listener Listener) Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	d.all = append(d.all, entry{id: d.nextID, listener: listener})
	return Subscription{id: d.nextID}
}

// Unsubscribe 取消订阅，重复取消是安全的
func (d *Dispatcher) Unsubscribe(sub Subscription) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if sub.eventType == "" {
		d.all = removeEntry(d.all, sub.id)
		return
	}
	d.listeners[sub.eventType] = removeEntry(d.listeners[sub.eventType], sub.id)
}

func removeEntry(entries []entry, id uint64) []entry {
	for i, e := range entries {
		if e.id == id {
			// 复制而不是原地删除：Dispatch 可能正在遍历旧切片
			out := make([]entry, 0, len(entries)-1)
			out = append(out, entries[:i]...)
			return append(out, entries[i+1:]...)
		}
	}
	return entries
}

// Dispatch 把事件发送给所有订阅者
func (d *Dispatcher) Dispatch(event Event) {
	d.mu.RLock()
	typed := d.listeners[event.Type]
	all := d.all
	d.mu.RUnlock()

	for _, e := range typed {
		deliver(e.listener, event)
	}
	for _, e := range all {
		deliver(e.listener, event)
	}
}

// DispatchAll 按顺序发送一批事件
func (d *Dispatcher) DispatchAll(events []Event) {
	for _, ev := range events {
		d.Dispatch(ev)
	}
}

func deliver(listener Listener, event Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Event] listener panicked on %s: %v", event.Type, r)
		}
	}()
	listener.OnEvent(event)
}
