package pool

import (
	"errors"
	"testing"
)

// ===== Mock Setup =====

// item 模拟一个可复用对象
type item struct {
	id int
}

// counter 记录factory一共创建了多少个对象
var counter int

var factory = func() (*item, error) {
	counter++
	return &item{id: counter}, nil
}

var errorFactory = func() (*item, error) {
	return nil, errors.New("factory failed to create item")
}

// ===== Functionality Tests =====

func TestNewPool(t *testing.T) {
	p, err := New(10, 5, factory)
	if err != nil {
		t.Fatalf("Failed to create pool with valid args: %v", err)
	}
	if p.maxActive != 10 {
		t.Errorf("Expected maxActive 10, got %d", p.maxActive)
	}
	if cap(p.idleQueue) != 5 {
		t.Errorf("Expected idleQueue capacity 5, got %d", cap(p.idleQueue))
	}
	if p.Idle() != 5 {
		t.Errorf("Expected 5 initial items, got %d", p.Idle())
	}
	if p.Size() != 5 {
		t.Errorf("Expected size 5, got %d", p.Size())
	}

	invalidArgs := [][]int{
		{0, 5},  // maxActive <= 0
		{10, 0}, // maxIdle <= 0
		{5, 10}, // maxActive < maxIdle
	}
	for _, args := range invalidArgs {
		_, err := New(args[0], args[1], factory)
		if !errors.Is(err, PoolCreateErr) {
			t.Errorf("Expected PoolCreateErr for maxActive=%d, maxIdle=%d, got %v", args[0], args[1], err)
		}
	}
	_, err = New[*item](10, 5, nil)
	if !errors.Is(err, PoolCreateErr) {
		t.Errorf("Expected PoolCreateErr for nil factory, got %v", err)
	}
}

func TestNewPool_FactoryError(t *testing.T) {
	p, err := New(10, 2, errorFactory)
	if err == nil {
		t.Fatalf("Expected factory error, got pool %v", p)
	}
}

func TestPool_GetAndRelease(t *testing.T) {
	p, _ := New(10, 5, factory)
	defer p.Close()

	it, err := p.Get()
	if err != nil {
		t.Fatalf("Failed to get an item: %v", err)
	}
	if p.Idle() != 4 {
		t.Errorf("Expected idle queue size 4 after Get, got %d", p.Idle())
	}

	if err := p.Release(it); err != nil {
		t.Fatalf("Failed to release an item: %v", err)
	}
	if p.Idle() != 5 {
		t.Errorf("Expected idle queue size 5 after Release, got %d", p.Idle())
	}
}

func TestPool_ReusesReleasedItem(t *testing.T) {
	p, _ := New(1, 1, factory)
	defer p.Close()

	first, _ := p.Get()
	_ = p.Release(first)
	second, err := p.Get()
	if err != nil {
		t.Fatalf("Failed to get an item: %v", err)
	}
	if first != second {
		t.Errorf("Expected released item to be reused")
	}
}

func TestPool_ExceedIdleCreatesNew(t *testing.T) {
	p, _ := New(10, 2, factory)
	defer p.Close()

	for i := 0; i < 3; i++ {
		if _, err := p.Get(); err != nil {
			t.Fatalf("Failed to get item %d: %v", i+1, err)
		}
	}
	if p.Size() != 3 {
		t.Errorf("Expected size 3, got %d", p.Size())
	}
}

func TestPool_Exhausted(t *testing.T) {
	p, _ := New(2, 1, factory)
	defer p.Close()

	a, _ := p.Get()
	if _, err := p.Get(); err != nil {
		t.Fatalf("Failed to get second item: %v", err)
	}

	// 达到上限后不阻塞，直接报错
	if _, err := p.Get(); !errors.Is(err, PoolExhaustedErr) {
		t.Fatalf("Expected PoolExhaustedErr, got %v", err)
	}

	// 归还之后可以再次获取
	_ = p.Release(a)
	if _, err := p.Get(); err != nil {
		t.Errorf("Expected Get to succeed after Release, got %v", err)
	}
}

func TestPool_ReleaseWhenIdleFull(t *testing.T) {
	p, _ := New(5, 1, factory)
	defer p.Close()

	a, _ := p.Get()
	b, _ := p.Get()
	if p.Size() != 2 {
		t.Fatalf("Expected size 2, got %d", p.Size())
	}

	_ = p.Release(a)
	_ = p.Release(b) // 空闲队列已满，被丢弃
	if p.Idle() != 1 {
		t.Errorf("Expected idle 1, got %d", p.Idle())
	}
	if p.Size() != 1 {
		t.Errorf("Expected size 1 after dropping, got %d", p.Size())
	}
}

func TestPool_FactoryErrorOnGet(t *testing.T) {
	calls := 0
	f := func() (*item, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("boom")
		}
		return &item{}, nil
	}
	p, _ := New(3, 1, f)
	defer p.Close()

	_, _ = p.Get()
	if _, err := p.Get(); err == nil {
		t.Fatalf("Expected factory error")
	}
	if p.Size() != 1 {
		t.Errorf("Expected size restored to 1, got %d", p.Size())
	}
}

func TestPool_ReleaseIntoEmptyPool(t *testing.T) {
	p, _ := New(2, 1, factory)
	defer p.Close()

	a, _ := p.Get()
	_ = p.Release(a)
	_ = p.Release(&item{}) // 空闲队列已满，丢弃后 currentSize 变为0

	if p.Size() != 0 {
		t.Fatalf("Expected size 0, got %d", p.Size())
	}
	// 池中已经没有任何对象，再归还说明对象不是从这个池中取出的
	if err := p.Release(&item{}); !errors.Is(err, ItemStatusErr) {
		t.Errorf("Expected ItemStatusErr, got %v", err)
	}
	if p.Idle() != 0 {
		t.Errorf("Expected idle 0, got %d", p.Idle())
	}
}

func TestPool_Close(t *testing.T) {
	p, _ := New(5, 3, factory)
	it, _ := p.Get()

	p.Close()
	p.Close() // 重复关闭不应panic

	if _, err := p.Get(); !errors.Is(err, PoolClosedErr) {
		t.Errorf("Expected PoolClosedErr on Get, got %v", err)
	}
	if err := p.Release(it); !errors.Is(err, PoolClosedErr) {
		t.Errorf("Expected PoolClosedErr on Release, got %v", err)
	}
	if p.Idle() != 0 {
		t.Errorf("Expected idle 0 after close, got %d", p.Idle())
	}
}
