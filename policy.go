package lrumap

import (
	"container/list"
	"fmt"
	"math"

	"go.uber.org/zap"
)

// The four cross-cutting behaviors of the Map are strategy objects
// chosen at construction. Go has no zero-cost compile-time policy
// mechanism, so each policy is a small interface with a no-op default;
// the dispatch overhead is the accepted tradeoff.

// locker is the exclusion policy guarding every public operation.
type locker interface {
	Lock()
	Unlock()
}

// Compile-time interface assertions.
var (
	_ locker                   = noLock{}
	_ timestamper[string, int] = noTimestamps[string, int]{}
	_ timestamper[string, int] = fullTimestamps[string, int]{}
	_ hitCounter[string, int]  = hitsDisabled[string, int]{}
	_ hitCounter[string, int]  = hitsEnabled[string, int]{}
	_ eventLog[string, int]    = noEvents[string, int]{}
	_ eventLog[string, int]    = overflowEvents[string, int]{}
	_ eventLog[string, int]    = allEvents[string, int]{}
	_ Emitter                  = (*ZapEmitter)(nil)
)

// noLock is the default: zero synchronization. Correct only under
// single-threaded or externally synchronized use.
type noLock struct{}

func (noLock) Lock()   {}
func (noLock) Unlock() {}

// timestamper maintains per-entry access and modify times and audits
// the recency order against them.
type timestamper[K comparable, V any] interface {
	touchAccess(e *entry[K, V])
	touchModify(e *entry[K, V])
	audit(order *list.List) bool
	render(e *entry[K, V]) string
}

// noTimestamps maintains nothing. With no timestamp evidence to
// contradict the ordering, the audit is vacuously true.
type noTimestamps[K comparable, V any] struct{}

func (noTimestamps[K, V]) touchAccess(*entry[K, V])   {}
func (noTimestamps[K, V]) touchModify(*entry[K, V])   {}
func (noTimestamps[K, V]) audit(*list.List) bool      { return true }
func (noTimestamps[K, V]) render(*entry[K, V]) string { return "" }

// fullTimestamps stamps microsecond wall-clock times: access on Find
// hits, modify on every Insert.
type fullTimestamps[K comparable, V any] struct {
	clock Clock
}

func (t fullTimestamps[K, V]) touchAccess(e *entry[K, V]) {
	e.accessMicros = t.clock.Now().UnixMicro()
}

func (t fullTimestamps[K, V]) touchModify(e *entry[K, V]) {
	e.modifyMicros = t.clock.Now().UnixMicro()
}

// audit walks from most to least recent and fails if any entry's newest
// timestamp exceeds the previous entry's. Ties are allowed: structural
// order is authoritative when timestamps are equal.
func (fullTimestamps[K, V]) audit(order *list.List) bool {
	prev := int64(math.MaxInt64)
	for el := order.Front(); el != nil; el = el.Next() {
		cur := el.Value.(*entry[K, V]).recentMicros()
		if cur > prev {
			return false
		}
		prev = cur
	}
	return true
}

func (fullTimestamps[K, V]) render(e *entry[K, V]) string {
	return fmt.Sprintf("| atime = %d; mtime = %d", e.accessMicros, e.modifyMicros)
}

// hitCounter maintains the per-entry access counter.
type hitCounter[K comparable, V any] interface {
	hit(e *entry[K, V])
	render(e *entry[K, V]) string
}

type hitsDisabled[K comparable, V any] struct{}

func (hitsDisabled[K, V]) hit(*entry[K, V])           {}
func (hitsDisabled[K, V]) render(*entry[K, V]) string { return "" }

// hitsEnabled increments exactly once per Find hit, never on Insert.
type hitsEnabled[K comparable, V any] struct{}

func (hitsEnabled[K, V]) hit(e *entry[K, V]) {
	e.hits++
}

func (hitsEnabled[K, V]) render(e *entry[K, V]) string {
	return fmt.Sprintf("| hit_count = %d", e.hits)
}

// EventMode selects which engine events are emitted.
type EventMode int

const (
	// EventsNone emits nothing.
	EventsNone EventMode = iota
	// EventsOverflow emits one event per capacity eviction.
	EventsOverflow
	// EventsAll emits insert, overflow, find-hit, and erase-hit events.
	EventsAll
)

// Emitter is the sink for engine events. Emit receives the event name
// and a rendering of the affected entry. Implementations must not call
// back into the Map and have no way to fail the operation that emitted.
type Emitter interface {
	Emit(event, entry string)
}

// ZapEmitter emits engine events through a zap logger at debug level.
type ZapEmitter struct {
	log *zap.Logger
}

// NewZapEmitter wraps a zap logger as an Emitter. A nil logger emits
// nothing.
func NewZapEmitter(log *zap.Logger) *ZapEmitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &ZapEmitter{log: log}
}

func (z *ZapEmitter) Emit(event, entry string) {
	z.log.Debug("lrumap event", zap.String("event", event), zap.String("entry", entry))
}

// eventLog dispatches engine events according to the configured mode.
// The active variants render the entry only when they actually emit.
type eventLog[K comparable, V any] interface {
	insert(e *entry[K, V])
	overflow(e *entry[K, V])
	find(e *entry[K, V])
	erase(e *entry[K, V])
}

type noEvents[K comparable, V any] struct{}

func (noEvents[K, V]) insert(*entry[K, V])   {}
func (noEvents[K, V]) overflow(*entry[K, V]) {}
func (noEvents[K, V]) find(*entry[K, V])     {}
func (noEvents[K, V]) erase(*entry[K, V])    {}

type overflowEvents[K comparable, V any] struct {
	sink   Emitter
	render func(*entry[K, V]) string
}

func (l overflowEvents[K, V]) insert(*entry[K, V]) {}

func (l overflowEvents[K, V]) overflow(e *entry[K, V]) {
	l.sink.Emit("overflow", l.render(e))
}

func (l overflowEvents[K, V]) find(*entry[K, V])  {}
func (l overflowEvents[K, V]) erase(*entry[K, V]) {}

type allEvents[K comparable, V any] struct {
	sink   Emitter
	render func(*entry[K, V]) string
}

func (l allEvents[K, V]) insert(e *entry[K, V]) {
	l.sink.Emit("insert", l.render(e))
}

func (l allEvents[K, V]) overflow(e *entry[K, V]) {
	l.sink.Emit("overflow", l.render(e))
}

func (l allEvents[K, V]) find(e *entry[K, V]) {
	l.sink.Emit("find", l.render(e))
}

func (l allEvents[K, V]) erase(e *entry[K, V]) {
	l.sink.Emit("erase", l.render(e))
}

func newEventLog[K comparable, V any](mode EventMode, sink Emitter, render func(*entry[K, V]) string) eventLog[K, V] {
	switch mode {
	case EventsOverflow:
		return overflowEvents[K, V]{sink: sink, render: render}
	case EventsAll:
		return allEvents[K, V]{sink: sink, render: render}
	default:
		return noEvents[K, V]{}
	}
}
