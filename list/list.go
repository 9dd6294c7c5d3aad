package list

import (
	"errors"
	"fmt"
	"math"

	"LineList/pool"
)

var (
	ListEmptyErr = errors.New("list is empty")
	NodeAllocErr = errors.New("cannot allocate list node")
	BatchSizeErr = errors.New("batch size must be positive")
)

// maxIdleNodes 每个链表最多缓存的空闲节点数量
const maxIdleNodes = 16

// List 双向链表，持有所有节点以及节点中的负载
// 负载在插入成功后归链表所有，在 RemoveHead 或 Teardown 时通过 Ops.Dispose 释放且只释放一次
//
// List 不是并发安全的，也不可重入：在 VisitItems、Iter 或 DrainInBatches 的回调中修改链表是禁止的
type List[T any] struct {
	head, tail *node[T]
	length     int
	ops        Ops[T]
	nodes      *pool.Pool[*node[T]] // 节点存储
}

// New 创建一个空链表，节点数量不设上限
func New[T any](ops Ops[T]) *List[T] {
	// math.MaxInt 一定是合法参数
	l, _ := NewBounded(ops, math.MaxInt)
	return l
}

// NewBounded 创建一个空链表，最多同时存在 maxNodes 个节点
// 超出上限的插入返回 NodeAllocErr
func NewBounded[T any](ops Ops[T], maxNodes int) (*List[T], error) {
	if ops == nil {
		ops = Funcs[T]{}
	}

	maxIdle := min(maxIdleNodes, maxNodes)
	if maxIdle <= 0 {
		return nil, pool.PoolCreateErr
	}

	nodes, err := pool.New(maxNodes, maxIdle, newNodeFactory[T]())
	if err != nil {
		return nil, err
	}

	return &List[T]{
		ops:   ops,
		nodes: nodes,
	}, nil
}

// Len 返回链表的长度
func (l *List[T]) Len() int {
	return l.length
}

// Empty 判断链表是否为空
func (l *List[T]) Empty() bool {
	return l.length == 0
}

// Front 返回头部的负载，链表为空时第二个返回值为 false
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.datum, true
}

// Back 返回尾部的负载，链表为空时第二个返回值为 false
func (l *List[T]) Back() (T, bool) {
	if l.tail == nil {
		var zero T
		return zero, false
	}
	return l.tail.datum, true
}

// InsertTail 在链表尾部追加 v
// 获取节点失败时返回 NodeAllocErr，链表不变，v 仍归调用方所有
func (l *List[T]) InsertTail(v T) error {
	n, err := l.allocNode(v)
	if err != nil {
		return err
	}
	l.linkTail(n)
	return nil
}

// InsertSorted 把 v 插入到第一个严格排在它之后的节点之前
// 与已有负载相等时排在它们之后，所以相等元素保持插入顺序
func (l *List[T]) InsertSorted(v T) error {
	// 先定位，再申请节点：失败时链表不会被修改
	at := l.head
	for at != nil && l.ops.Order(v, at.datum) >= 0 {
		at = at.next
	}

	n, err := l.allocNode(v)
	if err != nil {
		return err
	}

	switch {
	case at == nil: // 排在所有元素之后（包括空链表）
		l.linkTail(n)
		return nil
	case at == l.head: // 成为新的头节点
		n.next = at
		at.prev = n
		l.head = n
	default: // 插在 at.prev 和 at 之间
		n.prev = at.prev
		n.next = at
		at.prev.next = n
		at.prev = n
	}
	l.length++
	return nil
}

// RemoveHead 移除头节点并释放其负载
// 链表为空时什么也不做，返回 ListEmptyErr
func (l *List[T]) RemoveHead() error {
	n := l.head
	if n == nil {
		return ListEmptyErr
	}

	l.head = n.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	l.length--

	// 节点先从链上摘下，再释放负载
	v := n.datum
	l.releaseNode(n)
	l.ops.Dispose(v)
	return nil
}

// VisitItems 从头到尾对每个负载调用一次 visitor
func (l *List[T]) VisitItems(visitor func(v T)) {
	for n := l.head; n != nil; n = n.next {
		visitor(n.datum)
	}
}

// VisitItemsReverse 从尾到头对每个负载调用一次 visitor
func (l *List[T]) VisitItemsReverse(visitor func(v T)) {
	for n := l.tail; n != nil; n = n.prev {
		visitor(n.datum)
	}
}

// Teardown 移除并释放所有节点，之后链表为空且可以继续使用
// 对空链表调用是安全的
func (l *List[T]) Teardown() {
	for l.head != nil {
		_ = l.RemoveHead()
	}
}

func (l *List[T]) linkTail(n *node[T]) {
	if l.tail == nil {
		l.head = n
		l.tail = n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.length++
}

func (l *List[T]) allocNode(v T) (*node[T], error) {
	n, err := l.nodes.Get()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", NodeAllocErr, err)
	}
	n.datum = v
	return n, nil
}

// releaseNode 清空节点后归还给节点池
// 节点池从不关闭，Release 失败说明链表内部状态已经损坏
func (l *List[T]) releaseNode(n *node[T]) {
	*n = node[T]{}
	if err := l.nodes.Release(n); err != nil {
		panic(fmt.Sprintf("list: release node: %v", err))
	}
}
