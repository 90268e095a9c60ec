package parallel

import "testing"

func TestMapSerialSmall(t *testing.T) {
	results := Map(5, 4, func(i int) int { return i * i })
	want := []int{0, 1, 4, 9, 16}
	for i, w := range want {
		if results[i] != w {
			t.Fatalf("index %d: expected %d, got %d", i, w, results[i])
		}
	}
}

func TestMapParallelLarge(t *testing.T) {
	n := 5000
	results := Map(n, 8, func(i int) int { return i * 2 })
	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Fatalf("index %d: expected %d, got %d", i, i*2, results[i])
		}
	}
}

func TestMapEmpty(t *testing.T) {
	if results := Map[int](0, 4, func(i int) int { return i }); len(results) != 0 {
		t.Fatalf("expected empty result, got %v", results)
	}
}
