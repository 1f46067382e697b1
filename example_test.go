package lrumap_test

import (
	"fmt"

	"github.com/bjaus/lrumap"
)

func ExampleMap() {
	m := lrumap.New[string, int](2)

	m.Insert("a", 1)
	m.Insert("b", 2)

	if v := m.Find("a"); v != nil {
		fmt.Println(*v)
	}

	m.Insert("c", 3) // evicts "b", the least recently used
	fmt.Println(m.Exists("b"))
	// Output:
	// 1
	// false
}

func ExampleMap_recencyRefresh() {
	m := lrumap.New[string, string](2)

	m.Insert("old", "x")
	m.Insert("hot", "y")

	// Finding "old" refreshes it, so "hot" is now the coldest entry.
	m.Find("old")
	m.Insert("new", "z")

	fmt.Println(m.Exists("old"), m.Exists("hot"), m.Exists("new"))
	// Output: true false true
}

func ExampleMap_Stats() {
	m := lrumap.New[string, int](2)

	m.Insert("a", 1)
	m.Insert("b", 2)
	m.Insert("c", 3)
	m.Find("c")
	m.Find("a") // miss: "a" was evicted

	fmt.Println(m.Stats())
	// Output: num_insert = 3, num_overflow = 1, num_find = 2, num_find_ok = 1, num_erase = 0, num_clear = 0
}

func ExampleMap_String() {
	m := lrumap.New[string, int](4)

	m.Insert("a", 1)
	m.Insert("b", 2)

	fmt.Print(m)
	// Output:
	// key; value| atime; mtime
	// b; 2
	// a; 1
}

func ExampleNewFromConfig() {
	m, err := lrumap.NewFromConfig[string, int](lrumap.Config{
		Capacity: 100,
		Locking:  true,
	})
	if err != nil {
		panic(err)
	}

	m.Insert("answer", 42)
	if v := m.Find("answer"); v != nil {
		fmt.Println(*v)
	}
	// Output: 42
}
