package inmemorycache

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type GeoCacheData struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	DisplayName string  `json:"display_name"`
}

type cacheEntry struct {
	data       []byte
	expiration time.Time
}

type Cache interface {
	Get(city string) (*GeoCacheData, bool, error)
	Set(city string, data *GeoCacheData, ttl time.Duration) error
}

type InMemoryCache struct {
	cache           map[string]cacheEntry
	mutex           sync.Mutex
	clock           clockwork.Clock
	cleanupInterval time.Duration
	done            chan struct{}
	closeOnce       sync.Once
}

func NewInMemoryCacheProvider(cleanupInterval time.Duration) *InMemoryCache {
	return NewInMemoryCacheProviderWithClock(clockwork.NewRealClock(), cleanupInterval)
}

func NewInMemoryCacheProviderWithClock(clock clockwork.Clock, cleanupInterval time.Duration) *InMemoryCache {
	provider := &InMemoryCache{
		cache:           make(map[string]cacheEntry),
		clock:           clock,
		cleanupInterval: cleanupInterval,
		done:            make(chan struct{}),
	}

	go provider.startCleanup()

	return provider
}

// Key normalizes a city name so "Paris", " paris " and "PARIS" share an entry.
func Key(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

func (m *InMemoryCache) Get(city string) (*GeoCacheData, bool, error) {
	key := Key(city)

	m.mutex.Lock()
	defer m.mutex.Unlock()

	entry, exists := m.cache[key]
	if !exists {
		return nil, false, nil
	}

	if m.clock.Now().After(entry.expiration) {
		delete(m.cache, key)
		return nil, false, nil
	}

	var data GeoCacheData
	if err := json.Unmarshal(entry.data, &data); err != nil {
		return nil, false, err
	}

	return &data, true, nil
}

func (m *InMemoryCache) Set(city string, data *GeoCacheData, ttl time.Duration) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.cache[Key(city)] = cacheEntry{
		data:       jsonData,
		expiration: m.clock.Now().Add(ttl),
	}

	return nil
}

// Len returns the number of stored entries, expired ones included until cleanup runs.
func (m *InMemoryCache) Len() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	return len(m.cache)
}

// Close stops the cleanup goroutine.
func (m *InMemoryCache) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
	})
}

func (m *InMemoryCache) startCleanup() {
	ticker := m.clock.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.Chan():
			m.mutex.Lock()
			now := m.clock.Now()
			for k, v := range m.cache {
				if now.After(v.expiration) {
					delete(m.cache, k)
				}
			}
			m.mutex.Unlock()
		}
	}
}
