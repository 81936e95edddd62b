package apriori

import (
	"fmt"
	"strings"
	"time"
)

// Itemset 是一个频繁项集，Items中没有重复条目
type Itemset[T comparable] struct {
	Items   []T
	Support int
}

// Len 返回项集的大小
func (s Itemset[T]) Len() int {
	return len(s.Items)
}

// String 返回形如 {1, 3}:2 的字符串
func (s Itemset[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, item := range s.Items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprint(item))
	}
	sb.WriteString(fmt.Sprintf("}:%d", s.Support))
	return sb.String()
}

// clone 返回不共享底层数组的副本
func (s Itemset[T]) clone() Itemset[T] {
	items := make([]T, len(s.Items))
	copy(items, s.Items)
	return Itemset[T]{Items: items, Support: s.Support}
}

// LevelStats 记录一个层级的计数情况
type LevelStats struct {
	Level      int           // 项集大小
	PoolSize   int           // 生成候选时可用的条目数
	Candidates int           // 参与计数的候选项集数
	Frequent   int           // 满足最小支持度的项集数
	Duration   time.Duration // 该层级的计数和过滤耗时
}

// Stats 包含一次挖掘的统计信息
type Stats struct {
	Transactions   int // 事务数量
	MinSupport     int // 本次挖掘的绝对最小支持度
	DistinctItems  int // 不同条目的数量
	Levels         []LevelStats
	ListenerFaults int // 监听器panic的次数
}

// TotalCandidates 返回所有层级的候选项集总数
func (s Stats) TotalCandidates() int {
	total := 0
	for _, level := range s.Levels {
		total += level.Candidates
	}
	return total
}

// TotalFrequent 返回所有层级的频繁项集总数
func (s Stats) TotalFrequent() int {
	total := 0
	for _, level := range s.Levels {
		total += level.Frequent
	}
	return total
}

// Result 是一次挖掘的完整结果
// Itemsets按项集大小升序排列，同一大小内按发现顺序排列
type Result[T comparable] struct {
	Itemsets      []Itemset[T]
	ExecutionTime time.Duration
	Stats         Stats
}

// ExecutionTimeMs 返回以毫秒计的执行时间
func (r Result[T]) ExecutionTimeMs() int64 {
	return r.ExecutionTime.Milliseconds()
}

// Level 返回大小为k的所有频繁项集
func (r Result[T]) Level(k int) []Itemset[T] {
	var itemsets []Itemset[T]
	for _, s := range r.Itemsets {
		if s.Len() == k {
			itemsets = append(itemsets, s)
		}
	}
	return itemsets
}
