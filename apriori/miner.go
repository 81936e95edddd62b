// Package apriori 使用逐层的Apriori策略挖掘频繁项集
package apriori

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fyerfyer/fyer-mine/slice"
)

// supportTolerance 是换算阈值时容忍的相对浮点误差，例如 0.7*10 = 7.000000000000001
// 只吸收乘法的舍入误差，不会吞掉比例本身携带的小数部分
const supportTolerance = 1e-14

// Miner 是Apriori挖掘器
// 实例只持有支持度、配置和监听器；每次挖掘的状态都局限在单次调用内，
// 因此同一个实例可以被重复使用，也可以被并发调用
type Miner[T comparable] struct {
	support     float64
	opts        *Options
	subscribers *slice.SafeSlice[subscriber[T]]
}

// New 创建一个挖掘器，support是(0, 1)开区间内的最小支持度比例
func New[T comparable](support float64, options ...Option) (*Miner[T], error) {
	if math.IsNaN(support) || support <= 0 || support >= 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSupport, support)
	}

	opts := DefaultOptions()
	for _, option := range options {
		option(opts)
	}

	if opts.Concurrency < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidConcurrency, opts.Concurrency)
	}

	return &Miner[T]{
		support:     support,
		opts:        opts,
		subscribers: slice.New[subscriber[T]](),
	}, nil
}

// MustNew 与New相同，但在配置无效时panic
func MustNew[T comparable](support float64, options ...Option) *Miner[T] {
	m, err := New[T](support, options...)
	if err != nil {
		panic(err)
	}
	return m
}

// Support 返回最小支持度比例
func (m *Miner[T]) Support() float64 {
	return m.support
}

// Execute 在新的协程中挖掘transactions并立即返回Future
// 所有监听器的通知都在Future完成之前送达
// transactions在挖掘期间只读，调用方不应修改
func (m *Miner[T]) Execute(transactions [][]T) *Future[Result[T]] {
	f := newFuture[Result[T]]()
	go func() {
		f.setRunning()
		result, err := m.safeMine(f.id, transactions)
		f.setCompleted(result, err)
	}()
	return f
}

// Mine 同步挖掘transactions中的所有频繁项集
func (m *Miner[T]) Mine(transactions [][]T) (Result[T], error) {
	return m.mine(uuid.New().String(), transactions)
}

// safeMine 调用mine，并把意外的panic转换为错误，保证Future总会完成
func (m *Miner[T]) safeMine(id string, transactions [][]T) (result Result[T], err error) {
	defer func() {
		if r := recover(); r != nil {
			m.opts.Logger.Error("mining panicked",
				zap.String("execution", id),
				zap.Any("panic", r))
			result, err = Result[T]{}, fmt.Errorf("%w: %v", ErrMiningPanicked, r)
		}
	}()

	return m.mine(id, transactions)
}

// mine 执行一次完整的挖掘
func (m *Miner[T]) mine(id string, transactions [][]T) (Result[T], error) {
	logger := m.opts.Logger.With(zap.String("execution", id))
	e := &execution[T]{
		dict:    newDictionary[T](m.opts.KeyFunc),
		emitter: newEmitter(m.subscribers.ToSlice(), logger),
		logger:  logger,
	}

	// 从第一层计数之前开始计时
	start := time.Now()

	e.setPhase(PhaseCountingLevel1)
	encoded, err := e.dict.encode(transactions)
	if err != nil {
		logger.Error("failed to encode transactions", zap.Error(err))
		e.setPhase(PhaseIdle)
		return Result[T]{}, err
	}

	e.minSupport = minSupport(m.support, len(transactions))
	e.counter = &supportCounter{
		transactions: encoded,
		concurrency:  m.opts.Concurrency,
		minParallel:  m.opts.MinParallelCandidates,
	}

	if len(transactions) > 0 {
		level := e.frequentOne()
		for k := 2; len(level) > 0; k++ {
			level = e.frequentK(level, k)
		}
	}

	elapsed := time.Since(start)
	e.setPhase(PhaseDone)

	result := Result[T]{
		Itemsets:      e.itemsets,
		ExecutionTime: elapsed,
		Stats: Stats{
			Transactions:   len(transactions),
			MinSupport:     e.minSupport,
			DistinctItems:  e.dict.size(),
			Levels:         e.levels,
			ListenerFaults: e.emitter.faults,
		},
	}
	if result.Itemsets == nil {
		result.Itemsets = []Itemset[T]{}
	}

	logger.Info("mining finished",
		zap.Int("transactions", result.Stats.Transactions),
		zap.Int("min_support", result.Stats.MinSupport),
		zap.Int("itemsets", len(result.Itemsets)),
		zap.Int("levels", len(result.Stats.Levels)),
		zap.Int("listener_faults", result.Stats.ListenerFaults),
		zap.Duration("elapsed", elapsed))

	return result, nil
}

// minSupport 把支持度比例换算为绝对事务数 ceil(fraction * n)
// 每次挖掘只换算一次；存在事务时结果至少为1
func minSupport(fraction float64, transactions int) int {
	if transactions == 0 {
		return 0
	}
	product := fraction * float64(transactions)
	count := math.Ceil(product)
	if product-(count-1) <= supportTolerance*product {
		count--
	}
	return max(int(count), 1)
}
