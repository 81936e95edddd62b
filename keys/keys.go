// Package keys 提供条目的规范化键
// 挖掘时相等的条目必须折叠到同一个计数器上，键函数决定了"相等"的含义
package keys

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/cnf/structhash"
)

// structuralVersion 是structhash序列化使用的版本号
const structuralVersion = 1

// ErrNotComparable 表示键函数返回了不能作为map键的值
var ErrNotComparable = errors.New("key is not comparable")

// Func 将条目映射为可比较的键，键相等的条目被视为同一个条目
type Func func(item any) (any, error)

// Identity 直接使用条目本身作为键，即Go的值相等语义
// 指针类型的条目按地址比较
func Identity(item any) (any, error) {
	return item, nil
}

// Structural 使用structhash序列化条目的值作为键
// 指针会被解引用，因此指向相等值的不同指针得到相同的键
func Structural(item any) (key any, err error) {
	if item == nil {
		return nil, nil
	}

	// structhash遇到不支持的类型会panic，转换为错误返回
	defer func() {
		if r := recover(); r != nil {
			key = nil
			err = fmt.Errorf("structhash %T: %v", item, r)
		}
	}()

	hash, err := structhash.Hash(item, structuralVersion)
	if err != nil {
		return nil, fmt.Errorf("structhash %T: %w", item, err)
	}
	return hash, nil
}

// Check 校验键可以作为map键使用
func Check(key any) error {
	if key == nil {
		return nil
	}
	if !reflect.TypeOf(key).Comparable() {
		return fmt.Errorf("%w: %T", ErrNotComparable, key)
	}
	return nil
}
