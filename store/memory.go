package store

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/coocood/freecache"
)

// DefaultMemorySize is the cache size used when none is configured.
const DefaultMemorySize = 4 * 1024 * 1024

// Memory is an in-process store. Nothing survives the process. Values live
// in a map; the cache fronts reads and only holds entries small enough for
// it to accept.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
	cache  *freecache.Cache
}

// NewMemory returns a store whose read cache is size bytes.
func NewMemory(size int) *Memory {
	if size <= 0 {
		size = DefaultMemorySize
	}

	return &Memory{
		values: make(map[string][]byte),
		cache:  freecache.NewCache(size),
	}
}

// Load implements KV.
func (m *Memory) Load(key string) ([]byte, error) {
	if b, err := m.cache.Get([]byte(key)); err == nil {
		return b, nil
	}

	m.mu.RLock()
	v, ok := m.values[key]
	m.mu.RUnlock()

	if !ok {
		return nil, errNotFound
	}

	m.fill(key, v)

	return append([]byte(nil), v...), nil
}

// Save implements KV.
func (m *Memory) Save(key string, value []byte) error {
	v := append([]byte(nil), value...)

	m.mu.Lock()
	m.values[key] = v
	m.mu.Unlock()

	m.fill(key, v)

	return nil
}

// fill caches value under key. An entry the cache rejects must not leave an
// older value behind to be served instead.
func (m *Memory) fill(key string, value []byte) {
	err := m.cache.Set([]byte(key), value, 0)
	if err == nil {
		return
	}

	m.cache.Del([]byte(key))

	if !errors.Is(err, freecache.ErrLargeEntry) {
		slog.Debug("memory store cache", slog.String("key", key), slog.Any("error", err))
	}
}

// Close implements KV.
func (m *Memory) Close() error {
	m.mu.Lock()
	clear(m.values)
	m.mu.Unlock()

	m.cache.Clear()

	return nil
}
