package slice

import (
	"sync"
)

// SafeSlice 提供并发安全的切片操作
// 读取方通过ToSlice获得快照，遍历快照时不持有锁
type SafeSlice[T any] struct {
	mu    sync.RWMutex
	items []T
}

// New 创建一个新的并发安全切片
func New[T any]() *SafeSlice[T] {
	return &SafeSlice[T]{
		items: make([]T, 0),
	}
}

// Append 在切片末尾添加元素
func (s *SafeSlice[T]) Append(items ...T) {
	if len(items) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, items...)
}

// DeleteFunc 删除所有满足条件的元素，保持剩余元素的相对顺序
// 返回被删除的元素数量
func (s *SafeSlice[T]) DeleteFunc(predicate func(T) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	// 写入新切片而不是原地修改，已发出的快照不受影响
	kept := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if !predicate(item) {
			kept = append(kept, item)
		}
	}

	removed := len(s.items) - len(kept)
	s.items = kept
	return removed
}

// Len 返回切片的长度
func (s *SafeSlice[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// ToSlice 返回内部切片的副本
func (s *SafeSlice[T]) ToSlice() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, len(s.items))
	copy(result, s.items)
	return result
}
