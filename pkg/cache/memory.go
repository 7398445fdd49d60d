package cache

import (
	"container/list"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

type memoryEntry struct {
	key       string
	value     []byte
	expiresAt time.Time
}

func (e *memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Memory is a bounded in-process Service. When full, the least recently used
// entry is evicted.
type Memory struct {
	capacity int
	clock    clock.Clock
	interval time.Duration

	mu       sync.Mutex
	items    map[string]*list.Element
	eviction *list.List

	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// MemoryOption configures a Memory cache.
type MemoryOption func(*Memory)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(c clock.Clock) MemoryOption {
	return func(m *Memory) {
		if c != nil {
			m.clock = c
		}
	}
}

// WithJanitor starts a goroutine that purges expired entries every interval.
func WithJanitor(interval time.Duration) MemoryOption {
	return func(m *Memory) {
		m.interval = interval
	}
}

// NewMemory creates a Memory cache holding at most capacity entries.
// It panics if capacity is not positive.
func NewMemory(capacity int, opts ...MemoryOption) *Memory {
	if capacity <= 0 {
		panic("cache: memory capacity must be positive")
	}
	m := &Memory{
		capacity: capacity,
		clock:    clock.New(),
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}

	if m.interval > 0 {
		ticker := m.clock.Ticker(m.interval)
		m.wg.Add(1)
		go m.janitor(ticker)
	}

	return m
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.items[key]
	if !ok {
		return nil, ErrNotFound
	}
	entry := elem.Value.(*memoryEntry)
	if entry.expired(m.clock.Now()) {
		m.removeElement(elem)
		return nil, ErrNotFound
	}
	m.eviction.MoveToFront(elem)
	return slices.Clone(entry.value), nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = m.clock.Now().Add(ttl)
	}

	if elem, ok := m.items[key]; ok {
		entry := elem.Value.(*memoryEntry)
		entry.value = slices.Clone(value)
		entry.expiresAt = expiresAt
		m.eviction.MoveToFront(elem)
		return nil
	}

	elem := m.eviction.PushFront(&memoryEntry{key: key, value: slices.Clone(value), expiresAt: expiresAt})
	m.items[key] = elem

	if m.eviction.Len() > m.capacity {
		if oldest := m.eviction.Back(); oldest != nil {
			m.removeElement(oldest)
		}
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.items[key]; ok {
		m.removeElement(elem)
	}
	return nil
}

// Len returns the number of stored entries, expired ones included until purged.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.eviction.Len()
}

// Purge removes expired entries and returns how many were dropped.
func (m *Memory) Purge() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now()
	n := 0
	for elem := m.eviction.Back(); elem != nil; {
		prev := elem.Prev()
		if elem.Value.(*memoryEntry).expired(now) {
			m.removeElement(elem)
			n++
		}
		elem = prev
	}
	return n
}

// Close stops the janitor. It is safe to call more than once.
func (m *Memory) Close() error {
	m.closeOnce.Do(func() { close(m.done) })
	m.wg.Wait()
	return nil
}

func (m *Memory) janitor(ticker *clock.Ticker) {
	defer m.wg.Done()
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.Purge()
		case <-m.done:
			return
		}
	}
}

// Must be called with lock held.
func (m *Memory) removeElement(elem *list.Element) {
	m.eviction.Remove(elem)
	delete(m.items, elem.Value.(*memoryEntry).key)
}
