package pool

import (
	"errors"
	"sync"
)

var (
	PoolCreateErr    = errors.New("create Pool Error")
	PoolExhaustedErr = errors.New("pool has reached maxActive")
	PoolClosedErr    = errors.New("pool has been closed")
	ItemStatusErr    = errors.New("item status error")
)

// Pool 管理可复用对象（链表节点）的核心：对象池
// 与连接池不同，这里的 Get 不会阻塞：容器是单线程使用的，阻塞等待永远等不到归还
type Pool[T any] struct {
	idleQueue   chan T            // 管理所有空闲的对象，它的大小就是空闲对象的最大数量
	factory     func() (T, error) // 对象创建工厂
	maxActive   int               // 池中能够容纳的最大对象数量
	currentSize int               // 当前已经创建的对象数量（包括正在使用的和空闲的）
	closed      bool              // 对象池是否关闭
	mu          sync.Mutex        // 用于保护currentSize和closed的互斥锁
}

// New 创建一个对象池
// maxActive: 对象池的最大对象数量
// maxIdle: 对象池的最大空闲数量
func New[T any](maxActive int, maxIdle int, factory func() (T, error)) (*Pool[T], error) {
	if maxActive <= 0 || maxIdle <= 0 || maxActive < maxIdle || factory == nil {
		return nil, PoolCreateErr
	}

	p := &Pool[T]{
		idleQueue: make(chan T, maxIdle),
		factory:   factory,
		maxActive: maxActive,
	}

	// 提前创建maxIdle个对象放到空闲队列中
	for i := 0; i < maxIdle; i++ {
		item, err := factory()
		if err != nil {
			close(p.idleQueue)
			return nil, err
		}
		p.idleQueue <- item
	}

	p.currentSize = maxIdle

	return p, nil
}

// Get 从对象池中（非阻塞）获取一个对象
func (p *Pool[T]) Get() (T, error) {
	var zero T

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return zero, PoolClosedErr
	}

	// 优先复用空闲对象
	select {
	case item := <-p.idleQueue:
		p.mu.Unlock()
		return item, nil
	default:
	}

	// 已达上限，直接报错
	if p.currentSize >= p.maxActive {
		p.mu.Unlock()
		return zero, PoolExhaustedErr
	}

	p.currentSize++
	p.mu.Unlock()

	item, err := p.factory()
	if err != nil {
		// 创建失败，需要把加上的currentSize减回去
		p.mu.Lock()
		p.currentSize--
		p.mu.Unlock()
		return zero, err
	}
	return item, nil
}

// Release 归还一个对象
func (p *Pool[T]) Release(item T) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return PoolClosedErr
	}

	if p.currentSize <= 0 {
		return ItemStatusErr
	}

	select {
	case p.idleQueue <- item:
		return nil
	default:
		// 空闲队列已满，多余的对象直接丢弃
		p.currentSize--
	}

	return nil
}

// Size 返回当前已创建的对象数量
func (p *Pool[T]) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.currentSize
}

// Idle 返回空闲队列中的对象数量
func (p *Pool[T]) Idle() int {
	return len(p.idleQueue)
}

// Close 关闭对象池，可重复调用
func (p *Pool[T]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	close(p.idleQueue)
	for range p.idleQueue {
		p.currentSize--
	}

	p.closed = true
}
