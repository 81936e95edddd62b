package set

// HashSet 基于Go的map实现的集合，额外记录元素的首次添加顺序
// 重复添加同一元素只保留第一次，事务中的重复项因此只计一次
type HashSet[T comparable] struct {
	items map[T]struct{} // 使用空结构体作为map值，节省内存
	order []T            // 元素的首次添加顺序
}

// New 创建一个新的HashSet
func New[T comparable](items ...T) *HashSet[T] {
	set := &HashSet[T]{
		items: make(map[T]struct{}, len(items)),
		order: make([]T, 0, len(items)),
	}
	set.AddAll(items...)
	return set
}

// Add 添加元素到集合中
func (s *HashSet[T]) Add(item T) bool {
	if _, exists := s.items[item]; exists {
		return false
	}
	s.items[item] = struct{}{}
	s.order = append(s.order, item)
	return true
}

// Contains 检查元素是否在集合中
func (s *HashSet[T]) Contains(item T) bool {
	_, exists := s.items[item]
	return exists
}

// AddAll 批量添加元素到集合中，返回成功添加的元素数量
func (s *HashSet[T]) AddAll(items ...T) int {
	added := 0
	for _, item := range items {
		if s.Add(item) {
			added++
		}
	}
	return added
}

// ContainsAll 检查集合是否包含所有指定元素
func (s *HashSet[T]) ContainsAll(items ...T) bool {
	for _, item := range items {
		if !s.Contains(item) {
			return false
		}
	}
	return true
}

// Size 返回集合中的元素数量
func (s *HashSet[T]) Size() int {
	return len(s.items)
}

// ToSlice 按首次添加顺序返回集合元素的副本
func (s *HashSet[T]) ToSlice() []T {
	result := make([]T, len(s.order))
	copy(result, s.order)
	return result
}
