package lrumap

import (
	"strconv"
	"testing"
)

func BenchmarkMap_Find(b *testing.B) {
	m := New[string, int](1000)

	keys := make([]string, 100)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
		m.Insert(keys[i], i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Find(keys[i%100])
	}
}

func BenchmarkMap_Insert(b *testing.B) {
	m := New[string, int](b.N + 1)

	keys := make([]string, b.N)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Insert(keys[i], i)
	}
}

func BenchmarkMap_InsertWithEviction(b *testing.B) {
	m := New[string, int](100)

	keys := make([]string, b.N)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Insert(keys[i], i)
	}
}

func BenchmarkMap_Parallel(b *testing.B) {
	m := New[string, int](1000, WithLocking[string, int]())

	keys := make([]string, 100)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
		m.Insert(keys[i], i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%2 == 0 {
				m.Find(keys[i%100])
			} else {
				m.Insert(keys[i%100], i)
			}
			i++
		}
	})
}

func BenchmarkMap_Policies(b *testing.B) {
	cases := []struct {
		name string
		opts []Option[string, int]
	}{
		{"Bare", nil},
		{"Locking", []Option[string, int]{WithLocking[string, int]()}},
		{"Timestamps", []Option[string, int]{WithTimestamps[string, int]()}},
		{"HitCounting", []Option[string, int]{WithHitCounting[string, int]()}},
		{"All", []Option[string, int]{
			WithLocking[string, int](),
			WithTimestamps[string, int](),
			WithHitCounting[string, int](),
			WithEventLog[string, int](EventsOverflow, NewZapEmitter(nil)),
		}},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			m := New[string, int](100, tc.opts...)

			keys := make([]string, 200)
			for i := range keys {
				keys[i] = strconv.Itoa(i)
			}
			for i := 0; i < 100; i++ {
				m.Insert(keys[i], i)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				key := keys[i%200]
				if m.Find(key) == nil {
					m.Insert(key, i)
				}
			}
		})
	}
}
