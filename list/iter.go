package list

// Direction 迭代方向
type Direction int

const (
	FromHead Direction = iota
	FromTail
)

// Iter 是可以重置的只读迭代器，不持有负载
// 迭代过程中不能修改链表
type Iter[T any] struct {
	list      *List[T]
	next      *node[T]
	direction Direction
}

// Iter 返回从头部或尾部开始的迭代器
func (l *List[T]) Iter(direction Direction) *Iter[T] {
	it := &Iter[T]{list: l, direction: direction}
	it.Rewind()
	return it
}

// Next 返回下一个负载，迭代结束时第二个返回值为 false
func (it *Iter[T]) Next() (T, bool) {
	cur := it.next
	if cur == nil {
		var zero T
		return zero, false
	}
	if it.direction == FromHead {
		it.next = cur.next
	} else {
		it.next = cur.prev
	}
	return cur.datum, true
}

// Rewind 回到起点
func (it *Iter[T]) Rewind() {
	if it.direction == FromHead {
		it.next = it.list.head
	} else {
		it.next = it.list.tail
	}
}
