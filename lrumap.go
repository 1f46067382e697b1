package lrumap

import (
	"container/list"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Map is a bounded key-value map with least-recently-used eviction.
//
// Entries are kept in a doubly-linked list ordered by recency (front is
// the most recently used, back the least) with a map from key to list
// element for O(1) lookup. Inserting past capacity evicts the back entry.
//
// Cross-cutting behavior is configured at construction through options:
// mutual exclusion, per-entry timestamps, per-entry hit counters, and
// event emission. Each defaults to its no-op variant. Lifetime operation
// counters are always maintained and survive Clear.
type Map[K comparable, V any] struct {
	lock locker
	cap  int

	order *list.List          // front = most recently used, back = least
	index map[K]*list.Element // key -> element in order

	times  timestamper[K, V]
	hits   hitCounter[K, V]
	events eventLog[K, V]

	stats stats
}

// New creates a Map with the given capacity.
//
// Capacity is fixed for the lifetime of the Map. A capacity below 1 is a
// programmer error and panics.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Map[K, V] {
	if capacity < 1 {
		panic(fmt.Sprintf("lrumap: capacity must be at least 1, got %d", capacity))
	}

	cfg := defaultConfig[K, V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Map[K, V]{
		lock:  noLock{},
		cap:   capacity,
		order: list.New(),
		index: make(map[K]*list.Element),
		times: noTimestamps[K, V]{},
		hits:  hitsDisabled[K, V]{},
	}

	if cfg.locking {
		m.lock = new(sync.Mutex)
	}
	if cfg.timestamps {
		m.times = fullTimestamps[K, V]{clock: cfg.clock}
	}
	if cfg.hitCounts {
		m.hits = hitsEnabled[K, V]{}
	}

	sink := cfg.emitter
	if sink == nil {
		sink = NewZapEmitter(zap.L())
	}
	m.events = newEventLog(cfg.events, sink, m.renderEntry)

	return m
}

// Insert adds or updates the entry for key.
//
// An existing entry is refreshed to the most recent position and its
// value replaced; an update counts as a use. If the insert pushes the
// size past capacity, the least recently used entry is evicted.
func (m *Map[K, V]) Insert(key K, value V) {
	m.lock.Lock()
	defer m.lock.Unlock()

	var el *list.Element
	if existing, ok := m.index[key]; ok {
		m.order.MoveToFront(existing)
		existing.Value.(*entry[K, V]).value = value
		el = existing
	} else {
		el = m.order.PushFront(&entry[K, V]{key: key, value: value})
		m.index[key] = el
	}

	e := el.Value.(*entry[K, V])
	m.events.insert(e)
	m.times.touchModify(e)

	// Size grows by at most one per call, so at most one eviction.
	if m.size() > m.cap {
		oldest := m.order.Back()
		evicted := oldest.Value.(*entry[K, V])
		m.stats.overflows++
		m.events.overflow(evicted)
		delete(m.index, evicted.key)
		m.order.Remove(oldest)
	}

	m.stats.inserts++
}

// Find returns a pointer to the value for key, or nil if absent.
//
// A hit refreshes the entry to the most recent position. The returned
// pointer aliases storage owned by the Map and stays valid only until
// the next mutating call; callers that need the value longer must copy
// it out.
func (m *Map[K, V]) Find(key K) *V {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.stats.finds++

	el, ok := m.index[key]
	if !ok {
		return nil
	}

	m.order.MoveToFront(el)
	e := el.Value.(*entry[K, V])

	m.stats.findHits++
	m.hits.hit(e)
	m.events.find(e)
	m.times.touchAccess(e)

	return &e.value
}

// Exists reports whether an entry for key is present. Unlike Find it
// does not refresh recency and fires no hooks.
func (m *Map[K, V]) Exists(key K) bool {
	m.lock.Lock()
	defer m.lock.Unlock()

	_, ok := m.index[key]
	return ok
}

// Erase removes the entry for key, if present. Erasing an absent key is
// a no-op.
func (m *Map[K, V]) Erase(key K) {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.stats.erases++

	el, ok := m.index[key]
	if !ok {
		return
	}

	m.events.erase(el.Value.(*entry[K, V]))
	delete(m.index, key)
	m.order.Remove(el)
}

// Clear removes all entries and releases their storage. The lifetime
// counters are not reset.
func (m *Map[K, V]) Clear() {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.order.Init()
	m.index = make(map[K]*list.Element)
	m.stats.clears++
}

// Capacity returns the maximum number of entries.
func (m *Map[K, V]) Capacity() int {
	return m.cap
}

// Size returns the current number of entries.
func (m *Map[K, V]) Size() int {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.size()
}

// size reports the entry count without locking, verifying that the list
// and the index have not drifted apart.
func (m *Map[K, V]) size() int {
	if m.order.Len() != len(m.index) {
		panic(fmt.Sprintf("lrumap: list/index desync: %d listed, %d indexed", m.order.Len(), len(m.index)))
	}
	return m.order.Len()
}

// Valid audits the entries against the active timestamp policy: walking
// from most to least recent, the newer of each entry's access and modify
// times must never increase. Without timestamps there is no evidence to
// contradict the ordering and Valid returns true.
func (m *Map[K, V]) Valid() bool {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.times.audit(m.order)
}

// Stats returns a copy of the lifetime operation counters.
func (m *Map[K, V]) Stats() StatsSnapshot {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.stats.snapshot()
}

// String renders all entries from most to least recent, one per line,
// including whatever optional fields the active policies maintain. It is
// a diagnostic aid, not part of the correctness contract.
func (m *Map[K, V]) String() string {
	m.lock.Lock()
	defer m.lock.Unlock()

	var b strings.Builder
	b.Grow(m.order.Len() * 32)
	b.WriteString("key; value| atime; mtime\n")
	for el := m.order.Front(); el != nil; el = el.Next() {
		b.WriteString(m.renderEntry(el.Value.(*entry[K, V])))
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *Map[K, V]) renderEntry(e *entry[K, V]) string {
	return fmt.Sprintf("%v; %v", e.key, e.value) + m.times.render(e) + m.hits.render(e)
}
