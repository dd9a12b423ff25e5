package cache

import (
	"sync"
	"time"
)

// Item represents a cached item with expiration
type Item struct {
	Value      interface{}
	Expiration int64
}

func (i Item) expired(now int64) bool {
	return i.Expiration > 0 && now > i.Expiration
}

// Cache represents a simple in-memory cache with expiration.
// Guarda o payload do formulário do totem e as sessões em andamento.
type Cache struct {
	items     map[string]Item
	mu        sync.RWMutex
	onEvicted func(key string, value interface{})
	stop      chan struct{}
	stopOnce  sync.Once
}

// New creates a new cache instance that cleans expired items every cleanupInterval
func New(cleanupInterval time.Duration) *Cache {
	cache := &Cache{
		items: make(map[string]Item),
		stop:  make(chan struct{}),
	}

	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}

	// Start a background goroutine to clean expired items
	go func() {
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cache.DeleteExpired()
			case <-cache.stop:
				return
			}
		}
	}()

	return cache
}

// OnEvicted registra uma função chamada quando um item sai do cache
// (expiração, Delete ou Clear). Sessões usam isso para parar seus timers.
func (c *Cache) OnEvicted(fn func(key string, value interface{})) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvicted = fn
}

// Set adds an item to the cache with the given expiration duration.
// duration <= 0 means the item never expires.
func (c *Cache) Set(key string, value interface{}, duration time.Duration) {
	var expiration int64
	if duration > 0 {
		expiration = time.Now().Add(duration).UnixNano()
	}

	c.mu.Lock()
	old, replaced := c.items[key]
	c.items[key] = Item{
		Value:      value,
		Expiration: expiration,
	}
	onEvicted := c.onEvicted
	c.mu.Unlock()

	if replaced && onEvicted != nil {
		onEvicted(key, old.Value)
	}
}

// Get retrieves an item from the cache
// Returns the item and a boolean indicating if the item was found
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found {
		return nil, false
	}

	// Check if the item has expired
	if item.expired(time.Now().UnixNano()) {
		return nil, false
	}

	return item.Value, true
}

// Touch renova a expiração de um item existente
func (c *Cache) Touch(key string, duration time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, found := c.items[key]
	if !found || item.expired(time.Now().UnixNano()) {
		return false
	}
	item.Expiration = time.Now().Add(duration).UnixNano()
	c.items[key] = item
	return true
}

// Delete removes an item from the cache
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	item, found := c.items[key]
	delete(c.items, key)
	onEvicted := c.onEvicted
	c.mu.Unlock()

	if found && onEvicted != nil {
		onEvicted(key, item.Value)
	}
}

// DeleteExpired removes all expired items from the cache
func (c *Cache) DeleteExpired() {
	now := time.Now().UnixNano()
	evicted := map[string]interface{}{}

	c.mu.Lock()
	for k, v := range c.items {
		if v.expired(now) {
			evicted[k] = v.Value
			delete(c.items, k)
		}
	}
	onEvicted := c.onEvicted
	c.mu.Unlock()

	if onEvicted != nil {
		for k, v := range evicted {
			onEvicted(k, v)
		}
	}
}

// Clear removes all items from the cache
func (c *Cache) Clear() {
	c.mu.Lock()
	old := c.items
	c.items = make(map[string]Item)
	onEvicted := c.onEvicted
	c.mu.Unlock()

	if onEvicted != nil {
		for k, v := range old {
			onEvicted(k, v.Value)
		}
	}
}

// Count devolve a quantidade de itens, inclusive os expirados ainda não limpos
func (c *Cache) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Close para a limpeza em segundo plano
func (c *Cache) Close() {
	c.stopOnce.Do(func() { close(c.stop) })
}
