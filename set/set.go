package set

// Set 是挖掘过程中使用的只读成员集合
// 每个事务在计数前被编码成一个Set，候选项集的支持度检查只依赖成员判断
type Set[T comparable] interface {
	// 基本操作
	Add(item T) bool      // 添加元素，如果元素已存在返回false，否则返回true
	Contains(item T) bool // 检查元素是否存在
	Size() int            // 返回集合大小
	ToSlice() []T         // 将集合转换为切片，顺序与首次添加顺序一致

	// 批量操作
	AddAll(items ...T) int       // 批量添加元素，返回成功添加的元素数量
	ContainsAll(items ...T) bool // 检查是否包含所有指定元素
}

// HashSet 必须实现Set接口
var _ Set[int] = (*HashSet[int])(nil)
