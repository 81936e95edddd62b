package apriori

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Listener 接收挖掘过程中发现的频繁项集
// 监听器在挖掘协程中被同步调用，调用顺序与发现顺序一致
type Listener[T comparable] func(Itemset[T])

// subscriber 是已注册的监听器
type subscriber[T comparable] struct {
	id       string
	listener Listener[T]
}

// Subscribe 注册一个监听器并返回订阅ID
// 注册只影响之后开始的挖掘，正在进行的挖掘使用开始时的监听器快照
func (m *Miner[T]) Subscribe(listener Listener[T]) string {
	if listener == nil {
		return ""
	}

	id := uuid.New().String()
	m.subscribers.Append(subscriber[T]{id: id, listener: listener})
	m.opts.Logger.Debug("listener subscribed",
		zap.String("subscription", id),
		zap.Int("subscribers", m.subscribers.Len()))
	return id
}

// Unsubscribe 移除指定ID的监听器，如果找到并移除则返回true
func (m *Miner[T]) Unsubscribe(id string) bool {
	removed := m.subscribers.DeleteFunc(func(s subscriber[T]) bool {
		return s.id == id
	})
	if removed == 0 {
		return false
	}

	m.opts.Logger.Debug("listener unsubscribed",
		zap.String("subscription", id),
		zap.Int("subscribers", m.subscribers.Len()))
	return true
}

// emitter 把一次挖掘中发现的项集分发给监听器
// 单个监听器的panic会被捕获并记录，不影响挖掘和其他监听器
type emitter[T comparable] struct {
	subscribers []subscriber[T]
	logger      *zap.Logger
	faults      int
}

// newEmitter 创建一个事件发射器
func newEmitter[T comparable](subscribers []subscriber[T], logger *zap.Logger) *emitter[T] {
	return &emitter[T]{
		subscribers: subscribers,
		logger:      logger,
	}
}

// emit 发送项集给所有监听器，每个监听器拿到各自的副本
func (e *emitter[T]) emit(itemset Itemset[T]) {
	for _, s := range e.subscribers {
		e.notify(s, itemset.clone())
	}
}

// notify 调用单个监听器
func (e *emitter[T]) notify(s subscriber[T], itemset Itemset[T]) {
	defer func() {
		if r := recover(); r != nil {
			e.faults++
			e.logger.Error("listener panicked",
				zap.String("subscription", s.id),
				zap.Stringer("itemset", itemset),
				zap.Any("panic", r))
		}
	}()

	s.listener(itemset)
}
