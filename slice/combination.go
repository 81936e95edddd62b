package slice

import "math"

// maxPrealloc 限制Combinations预分配的容量，组合数很大时按需增长
const maxPrealloc = 1 << 16

// ForEachCombination 按确定的顺序枚举pool中所有大小为k的组合
// 组合的生成方式：依次选取第一个元素，再在其后的后缀中递归选取k-1个元素
// 每个组合都是新分配的切片，回调可以直接保存；回调返回false时停止遍历
// 返回值表示是否完整遍历了所有组合
func ForEachCombination[T any](pool []T, k int, fn func(combination []T) bool) bool {
	if k < 0 || k > len(pool) {
		return true
	}
	prefix := make([]T, 0, k)
	return combine(pool, k, prefix, fn)
}

// combine 递归生成组合，prefix为已选取的元素
func combine[T any](suffix []T, k int, prefix []T, fn func([]T) bool) bool {
	if k == 0 {
		combination := make([]T, len(prefix))
		copy(combination, prefix)
		return fn(combination)
	}

	// 剩余元素不足k个时，后面的位置都不可能再作为第一个元素
	for i := 0; i <= len(suffix)-k; i++ {
		if !combine(suffix[i+1:], k-1, append(prefix, suffix[i]), fn) {
			return false
		}
	}
	return true
}

// Combinations 返回pool中所有大小为k的组合，顺序与ForEachCombination一致
func Combinations[T any](pool []T, k int) [][]T {
	result := make([][]T, 0, min(Binomial(len(pool), k), maxPrealloc))
	ForEachCombination(pool, k, func(combination []T) bool {
		result = append(result, combination)
		return true
	})
	return result
}

// Binomial 计算组合数C(n, k)，溢出时返回math.MaxInt
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}

	result := 1
	for i := 1; i <= k; i++ {
		// result * (n-k+i) / i 始终是整数
		next := n - k + i
		if result > math.MaxInt/next {
			return math.MaxInt
		}
		result = result * next / i
	}
	return result
}
