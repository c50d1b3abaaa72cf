package cache

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type entry struct {
	value   []byte
	expires time.Time
}

// Memory is a bounded in-process cache. Entries past their TTL are treated
// as misses and evicted on read.
type Memory struct {
	lru *lru.Cache[string, entry]
	now func() time.Time
}

// NewMemory creates a Memory cache holding at most size entries.
func NewMemory(size int) (*Memory, error) {
	if size <= 0 {
		size = 512
	}
	c, err := lru.New[string, entry](size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &Memory{lru: c, now: time.Now}, nil
}

// WithClock replaces the clock used for expiry checks.
func (m *Memory) WithClock(now func() time.Time) *Memory {
	m.now = now
	return m
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	e, ok := m.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !m.now().Before(e.expires) {
		m.lru.Remove(key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.lru.Add(key, entry{value: value, expires: m.now().Add(ttl)})
	return nil
}

// Len reports the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	return m.lru.Len()
}
