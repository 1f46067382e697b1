package lrumap

import "github.com/cockroachdb/errors"

// Config describes a Map for callers that build caches from serialized
// service configuration rather than code. Zero values select the no-op
// variant of each policy.
type Config struct {
	// Capacity is the maximum number of entries. Must be at least 1.
	Capacity int `json:"capacity"`

	// Locking guards every operation with a mutex.
	Locking bool `json:"locking"`

	// Timestamps maintains per-entry access/modify times.
	Timestamps bool `json:"timestamps"`

	// HitCounting maintains per-entry Find-hit counters.
	HitCounting bool `json:"hit_counting"`

	// Events selects event emission: "none", "overflow", or "all".
	// Empty means "none".
	Events string `json:"events"`
}

// DefaultConfig returns a configuration with a moderate capacity and
// all policies off.
func DefaultConfig() Config {
	return Config{
		Capacity: 1000,
		Events:   "none",
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Capacity < 1 {
		return errors.Newf("capacity must be at least 1, got %d", c.Capacity)
	}
	if _, err := parseEventMode(c.Events); err != nil {
		return err
	}
	return nil
}

func parseEventMode(s string) (EventMode, error) {
	switch s {
	case "", "none":
		return EventsNone, nil
	case "overflow":
		return EventsOverflow, nil
	case "all":
		return EventsAll, nil
	default:
		return EventsNone, errors.Newf("unknown event mode %q", s)
	}
}

// NewFromConfig builds a Map from cfg. Unlike New it reports an invalid
// capacity as an error instead of panicking, which suits callers wiring
// the cache from external configuration. Additional options (a custom
// clock or emitter, say) are applied after those derived from cfg.
func NewFromConfig[K comparable, V any](cfg Config, opts ...Option[K, V]) (*Map[K, V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "lrumap: invalid config")
	}

	mode, _ := parseEventMode(cfg.Events)

	combined := make([]Option[K, V], 0, len(opts)+4)
	if cfg.Locking {
		combined = append(combined, WithLocking[K, V]())
	}
	if cfg.Timestamps {
		combined = append(combined, WithTimestamps[K, V]())
	}
	if cfg.HitCounting {
		combined = append(combined, WithHitCounting[K, V]())
	}
	if mode != EventsNone {
		combined = append(combined, WithEventLog[K, V](mode, nil))
	}
	combined = append(combined, opts...)

	return New[K, V](cfg.Capacity, combined...), nil
}
