package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

type item struct {
	data      []byte
	expiresAt time.Time
}

// lruCache — локальный кэш процесса; просроченные записи удаляются при чтении.
type lruCache struct {
	items *lru.Cache[string, item]
	now   func() time.Time
}

// NewLRU создаёт кэш на size записей; size <= 0 заменяется на 500.
func NewLRU(size int) Cache {
	if size <= 0 {
		size = 500
	}
	l, err := lru.New[string, item](size)
	if err != nil {
		// lru.New ошибается только при size <= 0
		panic(err)
	}
	return &lruCache{items: l, now: time.Now}
}

func (c *lruCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	it, ok := c.items.Get(key)
	if !ok {
		return nil, false, nil
	}
	if c.now().After(it.expiresAt) {
		c.items.Remove(key)
		return nil, false, nil
	}
	return it.data, true, nil
}

func (c *lruCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.items.Add(key, item{data: value, expiresAt: c.now().Add(ttl)})
	return nil
}

func (c *lruCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		c.items.Remove(k)
	}
	return nil
}
