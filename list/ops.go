package list

import (
	"github.com/zyedidia/generic"
	"golang.org/x/exp/constraints"
)

// Ops 是链表对负载的两种能力：排序和释放
// Order 返回 <0 表示 a 排在 b 之前，0 表示相等，>0 表示 a 排在 b 之后
// Dispose 在节点被移除或链表被清空时对负载调用，且只调用一次
type Ops[T any] interface {
	Order(a, b T) int
	Dispose(v T)
}

// Funcs 用两个函数实现 Ops
// Compare 为 nil 时所有负载视为相等；Destroy 为 nil 时负载由调用方自行处理
type Funcs[T any] struct {
	Compare func(a, b T) int
	Destroy func(v T)
}

func (f Funcs[T]) Order(a, b T) int {
	if f.Compare == nil {
		return 0
	}
	return f.Compare(a, b)
}

func (f Funcs[T]) Dispose(v T) {
	if f.Destroy != nil {
		f.Destroy(v)
	}
}

// Ordered 返回按 < 自然排序的 Ops，destroy 可以为 nil
func Ordered[T constraints.Ordered](destroy func(v T)) Ops[T] {
	return Funcs[T]{
		Compare: func(a, b T) int {
			return generic.Compare(a, b, generic.Less[T])
		},
		Destroy: destroy,
	}
}
