package lrumap

import "fmt"

// stats accumulates the lifetime operation counters. The fields are
// mutated only under the Map's exclusion policy, so plain integers
// suffice. Clear does not reset them.
type stats struct {
	inserts   int64
	overflows int64
	finds     int64
	findHits  int64
	erases    int64
	clears    int64
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Inserts:   s.inserts,
		Overflows: s.overflows,
		Finds:     s.finds,
		FindHits:  s.findHits,
		Erases:    s.erases,
		Clears:    s.clears,
	}
}

// StatsSnapshot is a point-in-time copy of the lifetime counters.
type StatsSnapshot struct {
	Inserts   int64 // calls to Insert
	Overflows int64 // inserts that evicted the least recent entry
	Finds     int64 // calls to Find, hit or miss
	FindHits  int64 // calls to Find that hit
	Erases    int64 // calls to Erase, hit or miss
	Clears    int64 // calls to Clear
}

// HitRate returns the fraction of Find calls that hit, between 0 and 1.
// Returns 0 if Find has never been called.
func (s StatsSnapshot) HitRate() float64 {
	if s.Finds == 0 {
		return 0
	}
	return float64(s.FindHits) / float64(s.Finds)
}

// String renders the counters on a single line.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf(
		"num_insert = %d, num_overflow = %d, num_find = %d, num_find_ok = %d, num_erase = %d, num_clear = %d",
		s.Inserts, s.Overflows, s.Finds, s.FindHits, s.Erases, s.Clears,
	)
}
