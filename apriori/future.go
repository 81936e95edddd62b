package apriori

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FutureStatus 表示一次异步挖掘的状态
type FutureStatus int

const (
	// FutureStatusPending 表示挖掘尚未开始
	FutureStatusPending FutureStatus = iota
	// FutureStatusRunning 表示挖掘正在进行
	FutureStatusRunning
	// FutureStatusCompleted 表示挖掘成功完成
	FutureStatusCompleted
	// FutureStatusFailed 表示挖掘失败
	FutureStatusFailed
)

// String 返回状态的字符串表示
func (s FutureStatus) String() string {
	switch s {
	case FutureStatusPending:
		return "Pending"
	case FutureStatusRunning:
		return "Running"
	case FutureStatusCompleted:
		return "Completed"
	case FutureStatusFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Future 表示一次已提交的挖掘，可用于检查状态和获取结果
// 挖掘一旦开始就会运行到结束，不支持取消
type Future[R any] struct {
	id        string
	status    FutureStatus
	result    R
	err       error
	done      chan struct{}
	startTime time.Time
	endTime   time.Time
	mu        sync.RWMutex
}

// newFuture 创建一个新的Future
func newFuture[R any]() *Future[R] {
	return &Future[R]{
		id:     uuid.New().String(),
		status: FutureStatusPending,
		done:   make(chan struct{}),
	}
}

// ID 返回挖掘的唯一标识符，与日志中的execution字段一致
func (f *Future[R]) ID() string {
	return f.id
}

// Status 返回当前状态
func (f *Future[R]) Status() FutureStatus {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.status
}

// Done 返回一个在挖掘结束时关闭的通道
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}

// Result 返回挖掘结果，如果挖掘尚未完成则会阻塞
func (f *Future[R]) Result() (R, error) {
	<-f.done
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.result, f.err
}

// Wait 等待挖掘完成，ctx只限制等待本身，不会中止挖掘
func (f *Future[R]) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Elapsed 返回从开始运行到结束（或到现在）的时间
func (f *Future[R]) Elapsed() time.Duration {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.startTime.IsZero() {
		return 0
	}
	if f.endTime.IsZero() {
		return time.Since(f.startTime)
	}
	return f.endTime.Sub(f.startTime)
}

// setRunning 将状态设置为运行中
func (f *Future[R]) setRunning() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.status = FutureStatusRunning
	f.startTime = time.Now()
}

// setCompleted 记录结果并唤醒所有等待方，只能调用一次
func (f *Future[R]) setCompleted(result R, err error) {
	f.mu.Lock()
	f.endTime = time.Now()
	if err != nil {
		f.status = FutureStatusFailed
		f.err = err
	} else {
		f.status = FutureStatusCompleted
		f.result = result
	}
	f.mu.Unlock()

	close(f.done)
}
