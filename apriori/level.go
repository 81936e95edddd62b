package apriori

import (
	"time"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"go.uber.org/zap"

	"github.com/fyerfyer/fyer-mine/slice"
)

// Phase 表示一次挖掘所处的阶段
type Phase int

const (
	// PhaseIdle 空闲
	PhaseIdle Phase = iota
	// PhaseCountingLevel1 统计单个条目
	PhaseCountingLevel1
	// PhaseFilteringLevel1 过滤单个条目
	PhaseFilteringLevel1
	// PhaseExpandingLevelK 生成并统计大小为k的候选项集
	PhaseExpandingLevelK
	// PhaseFilteringLevelK 过滤大小为k的候选项集
	PhaseFilteringLevelK
	// PhaseDone 挖掘结束
	PhaseDone
)

// String 返回阶段的字符串表示
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseCountingLevel1:
		return "CountingLevel1"
	case PhaseFilteringLevel1:
		return "FilteringLevel1"
	case PhaseExpandingLevelK:
		return "ExpandingLevelK"
	case PhaseFilteringLevelK:
		return "FilteringLevelK"
	case PhaseDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// encodedItemset 是以条目编号表示的频繁项集
type encodedItemset struct {
	ids     []int
	support int
}

// execution 保存单次挖掘的全部状态
type execution[T comparable] struct {
	minSupport int
	dict       *dictionary[T]
	counter    *supportCounter
	emitter    *emitter[T]
	logger     *zap.Logger

	phase    Phase
	itemsets []Itemset[T]
	levels   []LevelStats
}

// setPhase 切换阶段
func (e *execution[T]) setPhase(p Phase) {
	e.logger.Debug("phase changed",
		zap.Stringer("from", e.phase),
		zap.Stringer("to", p))
	e.phase = p
}

// frequentOne 统计单个条目并保留满足最小支持度的条目
func (e *execution[T]) frequentOne() []encodedItemset {
	start := time.Now()
	counts := e.counter.countItems(e.dict.size())

	e.setPhase(PhaseFilteringLevel1)
	var frequent []encodedItemset
	for id, count := range counts {
		if count >= e.minSupport {
			s := encodedItemset{ids: []int{id}, support: count}
			frequent = append(frequent, s)
			e.confirm(s)
		}
	}

	e.recordLevel(LevelStats{
		Level:      1,
		PoolSize:   len(counts),
		Candidates: len(counts),
		Frequent:   len(frequent),
		Duration:   time.Since(start),
	})
	return frequent
}

// frequentK 由大小为k-1的频繁项集得到大小为k的频繁项集
//
// 候选项集是条目池中所有大小为k的组合，而不是两两连接k-1项集再检查子集。
// 这样会多统计一些必然不频繁的候选，但结果仍然精确，
// 条目池较大时计数量按C(池大小, k)增长。
func (e *execution[T]) frequentK(previous []encodedItemset, k int) []encodedItemset {
	if len(previous) == 0 {
		return nil
	}

	e.setPhase(PhaseExpandingLevelK)
	start := time.Now()

	pool := itemPool(previous)
	candidates := slice.Combinations(pool, k)
	counts := e.counter.countCandidates(candidates)

	e.setPhase(PhaseFilteringLevelK)
	var frequent []encodedItemset
	for i, candidate := range candidates {
		if counts[i] >= e.minSupport {
			s := encodedItemset{ids: candidate, support: counts[i]}
			frequent = append(frequent, s)
			e.confirm(s)
		}
	}

	e.recordLevel(LevelStats{
		Level:      k,
		PoolSize:   len(pool),
		Candidates: len(candidates),
		Frequent:   len(frequent),
		Duration:   time.Since(start),
	})
	return frequent
}

// itemPool 收集上一层所有频繁项集中出现过的条目，按首次出现顺序去重
// 没有进入上一层的条目不可能出现在这一层的频繁项集中
func itemPool(previous []encodedItemset) []int {
	seen := linkedhashset.New()
	for _, s := range previous {
		for _, id := range s.ids {
			seen.Add(id)
		}
	}

	pool := make([]int, 0, seen.Size())
	for _, v := range seen.Values() {
		pool = append(pool, v.(int))
	}
	return pool
}

// confirm 记录一个已确认的频繁项集并立即通知监听器
func (e *execution[T]) confirm(s encodedItemset) {
	itemset := Itemset[T]{
		Items:   e.dict.decode(s.ids),
		Support: s.support,
	}
	e.itemsets = append(e.itemsets, itemset)
	e.emitter.emit(itemset)
}

// recordLevel 记录一个层级的统计信息
func (e *execution[T]) recordLevel(stats LevelStats) {
	e.levels = append(e.levels, stats)
	e.logger.Debug("level mined",
		zap.Int("level", stats.Level),
		zap.Int("pool_size", stats.PoolSize),
		zap.Int("candidates", stats.Candidates),
		zap.Int("frequent", stats.Frequent),
		zap.Duration("duration", stats.Duration))
}
