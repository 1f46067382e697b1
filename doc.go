// Package lrumap provides a generic bounded key-value map with strict
// least-recently-used eviction and independently selectable cross-cutting
// policies.
//
// # Overview
//
// A Map holds at most a fixed number of entries, chosen at construction.
// Inserting past capacity evicts the least recently used entry. Insert,
// Find, and Erase are O(1): the entries live in a doubly-linked list
// ordered by recency, with a map from key to list position for lookup.
//
// Four behaviors are policies with no-op defaults, so callers who do not
// need one do not pay for it: mutual exclusion, per-entry timestamps,
// per-entry hit counters, and event emission. Lifetime operation
// counters are always maintained.
//
// # Basic Usage
//
// Create a map and perform basic operations:
//
//	m := lrumap.New[string, int](1000)
//
//	m.Insert("key", 42)
//
//	if v := m.Find("key"); v != nil {
//		fmt.Println(*v)
//	}
//
//	m.Erase("key")
//
// A successful Find refreshes the entry to the most recent position, as
// does overwriting it with Insert. Exists checks membership without
// touching recency. The pointer returned by Find aliases map-owned
// storage and is valid only until the next mutating call; copy the value
// out if you need it longer.
//
// # Policies
//
// Each policy is enabled by an option:
//
//	// Safe for concurrent use: one mutex around every operation.
//	m := lrumap.New[string, int](1000, lrumap.WithLocking[string, int]())
//
//	// Per-entry access/modify timestamps, audited by Valid.
//	m := lrumap.New[string, int](1000, lrumap.WithTimestamps[string, int]())
//
//	// Per-entry counter of Find hits.
//	m := lrumap.New[string, int](1000, lrumap.WithHitCounting[string, int]())
//
// With timestamps enabled, Valid audits that the structural recency
// order agrees with the timestamp evidence. Timestamps are
// observational: eviction always removes the structural back of the
// list, never consults timestamps.
//
// # Event Logging
//
// The map can emit one event per insert, overflow, find hit, and erase
// hit, or overflow events only. Events go to an Emitter; a zap-backed
// one is provided:
//
//	logger, _ := zap.NewProduction()
//	m := lrumap.New[string, int](1000,
//		lrumap.WithEventLog[string, int](lrumap.EventsOverflow, lrumap.NewZapEmitter(logger)),
//	)
//
// Emission is a pure side effect: it cannot mutate the map or fail the
// operation that triggered it.
//
// # Stats and Metrics
//
// Stats returns lifetime counters for insert, overflow, find, find-hit,
// erase, and clear. Clear empties the map but never resets the counters.
// A Collector exposes them to Prometheus:
//
//	reg := prometheus.NewRegistry()
//	reg.MustRegister(lrumap.NewCollector(m, "myservice"))
//
// # Config-Driven Construction
//
// Services that wire caches from configuration can use Config and
// NewFromConfig, which validates and returns an error instead of
// panicking on a bad capacity:
//
//	cfg := lrumap.Config{Capacity: 500, Locking: true, Events: "overflow"}
//	m, err := lrumap.NewFromConfig[string, int](cfg)
//
// # Testing
//
// Inject a custom clock to control timestamps in tests:
//
//	type fakeClock struct{ now time.Time }
//	func (c *fakeClock) Now() time.Time { return c.now }
//
//	clock := &fakeClock{now: time.Now()}
//	m := lrumap.New[string, int](10,
//		lrumap.WithTimestamps[string, int](),
//		lrumap.WithClock[string, int](clock),
//	)
//
// # Thread Safety
//
// Without WithLocking the map provides zero thread safety; confine it to
// one goroutine or synchronize externally. With WithLocking every
// operation is a single coarse critical section.
package lrumap
