package apriori

import (
	"github.com/sourcegraph/conc/pool"

	"github.com/fyerfyer/fyer-mine/set"
)

// supportCounter 统计条目和候选项集在事务中的出现次数
type supportCounter struct {
	transactions []set.Set[int]
	concurrency  int
	minParallel  int
}

// countItems 统计每个条目出现在多少个事务中
func (c *supportCounter) countItems(numItems int) []int {
	counts := make([]int, numItems)
	for _, tx := range c.transactions {
		for _, id := range tx.ToSlice() {
			counts[id]++
		}
	}
	return counts
}

// countCandidates 统计每个候选项集的支持度，counts[i]对应candidates[i]
// 候选项集被切分成连续的块并行计数，每个块只写自己的区间，合并结果与串行一致
func (c *supportCounter) countCandidates(candidates [][]int) []int {
	counts := make([]int, len(candidates))
	if c.concurrency <= 1 || len(candidates) < c.minParallel {
		c.countRange(candidates, counts)
		return counts
	}

	chunk := (len(candidates) + c.concurrency - 1) / c.concurrency
	p := pool.New().WithMaxGoroutines(c.concurrency)
	for start := 0; start < len(candidates); start += chunk {
		end := min(start+chunk, len(candidates))
		p.Go(func() {
			c.countRange(candidates[start:end], counts[start:end])
		})
	}
	p.Wait()

	return counts
}

// countRange 对每个事务检查每个候选项集的所有条目是否都出现
// 事务已去重，条目数少于候选大小的事务不可能包含该候选
func (c *supportCounter) countRange(candidates [][]int, counts []int) {
	for _, tx := range c.transactions {
		size := tx.Size()
		for i, candidate := range candidates {
			if size < len(candidate) {
				continue
			}
			if tx.ContainsAll(candidate...) {
				counts[i]++
			}
		}
	}
}
