package lrumap

type config[K comparable, V any] struct {
	locking    bool
	timestamps bool
	hitCounts  bool
	events     EventMode
	emitter    Emitter
	clock      Clock
}

func defaultConfig[K comparable, V any]() config[K, V] {
	return config[K, V]{
		clock: realClock{},
	}
}

// Option configures a Map. Every policy defaults to its no-op variant,
// so a Map with no options carries none of the optional behavior.
type Option[K comparable, V any] func(*config[K, V])

// WithLocking guards every operation with a single mutex, making the
// Map safe for concurrent use. It is one coarse critical section per
// call; there is no per-entry locking.
func WithLocking[K comparable, V any]() Option[K, V] {
	return func(c *config[K, V]) {
		c.locking = true
	}
}

// WithTimestamps maintains per-entry access and modify times and arms
// the Valid audit.
func WithTimestamps[K comparable, V any]() Option[K, V] {
	return func(c *config[K, V]) {
		c.timestamps = true
	}
}

// WithHitCounting maintains a per-entry counter of Find hits.
func WithHitCounting[K comparable, V any]() Option[K, V] {
	return func(c *config[K, V]) {
		c.hitCounts = true
	}
}

// WithEventLog emits engine events to sink according to mode. A nil
// sink falls back to a ZapEmitter over the process-global zap logger.
func WithEventLog[K comparable, V any](mode EventMode, sink Emitter) Option[K, V] {
	return func(c *config[K, V]) {
		c.events = mode
		c.emitter = sink
	}
}

// WithClock sets a custom clock for the timestamp policy.
// Useful for testing the Valid audit.
func WithClock[K comparable, V any](clk Clock) Option[K, V] {
	return func(c *config[K, V]) {
		if clk != nil {
			c.clock = clk
		}
	}
}
