package list

// node 链表节点，prev/next 只是前后引用，节点本身由 List 持有
type node[T any] struct {
	prev  *node[T]
	next  *node[T]
	datum T
}

func newNodeFactory[T any]() func() (*node[T], error) {
	return func() (*node[T], error) {
		return new(node[T]), nil
	}
}
