package apriori

import (
	"fmt"

	"github.com/fyerfyer/fyer-mine/keys"
	"github.com/fyerfyer/fyer-mine/set"
)

// dictionary 将条目编码为稠密的整数编号
// 编号按条目在事务中首次出现的顺序分配（先按事务顺序，再按事务内位置），
// 第一层的输出顺序以及之后的候选生成顺序都由此决定
type dictionary[T comparable] struct {
	keyOf keys.Func
	ids   map[any]int
	items []T // 编号到代表值，代表值是该键第一次出现时的条目
}

// newDictionary 创建一个字典，keyOf为nil时使用keys.Identity
func newDictionary[T comparable](keyOf keys.Func) *dictionary[T] {
	if keyOf == nil {
		keyOf = keys.Identity
	}
	return &dictionary[T]{
		keyOf: keyOf,
		ids:   make(map[any]int),
	}
}

// key 返回条目的规范化键
// T为接口类型时，条目的动态类型可能不可比较，同样作为键错误返回
func (d *dictionary[T]) key(item T) (any, error) {
	k, err := d.keyOf(item)
	if err == nil {
		err = keys.Check(k)
	}
	if err != nil {
		return nil, fmt.Errorf("%w for %v: %w", ErrItemKey, item, err)
	}
	return k, nil
}

// intern 返回条目的编号，新条目会被分配下一个编号
func (d *dictionary[T]) intern(item T) (int, error) {
	k, err := d.key(item)
	if err != nil {
		return 0, err
	}

	id, ok, err := d.lookup(k)
	if err != nil {
		return 0, fmt.Errorf("%w for %v: %w", ErrItemKey, item, err)
	}
	if ok {
		return id, nil
	}
	id = len(d.items)
	d.ids[k] = id
	d.items = append(d.items, item)
	return id, nil
}

// lookup 查找键对应的编号
// 可比较的结构体中的接口字段仍可能持有不可哈希的值，map访问会panic
func (d *dictionary[T]) lookup(k any) (id int, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", keys.ErrNotComparable, r)
		}
	}()

	id, ok = d.ids[k]
	return id, ok, nil
}

// encode 把每个事务编码为条目编号的集合，事务内的重复条目只保留一次
func (d *dictionary[T]) encode(transactions [][]T) ([]set.Set[int], error) {
	encoded := make([]set.Set[int], 0, len(transactions))
	for _, tx := range transactions {
		ids := set.New[int]()
		for _, item := range tx {
			id, err := d.intern(item)
			if err != nil {
				return nil, err
			}
			ids.Add(id)
		}
		encoded = append(encoded, ids)
	}
	return encoded, nil
}

// decode 把编号序列还原为条目
func (d *dictionary[T]) decode(ids []int) []T {
	items := make([]T, len(ids))
	for i, id := range ids {
		items[i] = d.items[id]
	}
	return items
}

// size 返回不同条目的数量
func (d *dictionary[T]) size() int {
	return len(d.items)
}
