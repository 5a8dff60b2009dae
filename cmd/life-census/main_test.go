package main

import "testing"

func TestSeedRange(t *testing.T) {
	seeds, err := seedRange(10, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(seeds) != 3 || seeds[0] != 10 || seeds[2] != 12 {
		t.Fatalf("seeds = %v", seeds)
	}
	for _, n := range []int{0, -4} {
		if _, err := seedRange(1, n); err == nil {
			t.Fatalf("seedRange(1, %d) accepted", n)
		}
	}
}
