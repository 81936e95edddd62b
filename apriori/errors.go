package apriori

import "errors"

var (
	// ErrInvalidSupport 表示支持度不在开区间(0, 1)内
	ErrInvalidSupport = errors.New("support must be in the open interval (0, 1)")

	// ErrInvalidConcurrency 表示计数并发度小于1
	ErrInvalidConcurrency = errors.New("concurrency must be at least 1")

	// ErrItemKey 表示无法为条目生成规范化键，整次挖掘失败
	ErrItemKey = errors.New("cannot derive item key")

	// ErrMiningPanicked 表示挖掘过程中发生了意外的panic，Future以该错误失败
	ErrMiningPanicked = errors.New("mining panicked")
)
