package random

import "testing"

func TestIntRangeBounds(t *testing.T) {
	r := New(1)
	tests := []struct {
		name   string
		lo, hi int
	}{
		{"positive", 2, 6},
		{"negative", -100, -40},
		{"straddles zero", -1, 2},
		{"single value", 5, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := map[int]bool{}
			for i := 0; i < 2000; i++ {
				v := r.IntRange(tt.lo, tt.hi)
				if v < tt.lo || v >= tt.hi {
					t.Fatalf("IntRange(%d, %d) = %d out of range", tt.lo, tt.hi, v)
				}
				seen[v] = true
			}
			if len(seen) != tt.hi-tt.lo {
				t.Errorf("Expected all %d values drawn, saw %d", tt.hi-tt.lo, len(seen))
			}
		})
	}
}

func TestIntRangeEmpty(t *testing.T) {
	r := New(1)
	if got := r.IntRange(3, 3); got != 3 {
		t.Errorf("Expected lo for empty range, got %d", got)
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a, b := New(99), New(99)
	for i := 0; i < 100; i++ {
		if a.IntRange(0, 1000) != b.IntRange(0, 1000) {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}
