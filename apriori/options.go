package apriori

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/fyerfyer/fyer-mine/keys"
)

// Option 是用于配置挖掘器的函数选项
type Option func(*Options)

// Options 包含挖掘器的所有配置选项
type Options struct {
	// 日志记录器，默认不输出
	Logger *zap.Logger

	// 候选项集计数的最大并发协程数
	Concurrency int

	// 候选项集数量低于该值时在当前协程中计数
	MinParallelCandidates int

	// 条目的规范化键函数，默认keys.Identity
	KeyFunc keys.Func
}

// DefaultOptions 返回挖掘器的默认配置
func DefaultOptions() *Options {
	return &Options{
		Logger:                zap.NewNop(),
		Concurrency:           runtime.GOMAXPROCS(0),
		MinParallelCandidates: 64,
		KeyFunc:               keys.Identity,
	}
}

// WithLogger 设置日志记录器
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithConcurrency 设置计数的最大并发协程数，1表示完全串行
// 小于1的值会使New返回ErrInvalidConcurrency
func WithConcurrency(n int) Option {
	return func(o *Options) {
		o.Concurrency = n
	}
}

// WithMinParallelCandidates 设置启用并行计数的候选项集数量下限
func WithMinParallelCandidates(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MinParallelCandidates = n
		}
	}
}

// WithKeyFunc 设置条目的规范化键函数
func WithKeyFunc(fn keys.Func) Option {
	return func(o *Options) {
		if fn != nil {
			o.KeyFunc = fn
		}
	}
}
