package lrumap

// entry is the unit of storage owned by the Map. The timestamp and hit
// count fields exist on every entry but are maintained only when the
// corresponding policy is active.
type entry[K comparable, V any] struct {
	key   K
	value V

	// Microseconds since epoch. Access is stamped on Find hits, modify
	// on every Insert.
	accessMicros int64
	modifyMicros int64

	hits int64
}

// recentMicros returns the newer of the two timestamps.
func (e *entry[K, V]) recentMicros() int64 {
	if e.accessMicros > e.modifyMicros {
		return e.accessMicros
	}
	return e.modifyMicros
}
