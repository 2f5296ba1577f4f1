package physics

import (
	"sort"
	"testing"
)

func TestIntersects(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 30, H: 30}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"contained", Rect{X: 20, Y: 20, W: 5, H: 5}, true},
		{"overlap corner", Rect{X: 35, Y: 35, W: 10, H: 10}, true},
		{"touching right edge", Rect{X: 40, Y: 10, W: 10, H: 10}, false},
		{"touching bottom edge", Rect{X: 10, Y: 40, W: 10, H: 10}, false},
		{"left of", Rect{X: -20, Y: 10, W: 10, H: 10}, false},
		{"above", Rect{X: 10, Y: -50, W: 10, H: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("symmetric Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampInside(t *testing.T) {
	bounds := Rect{W: 800, H: 600}
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"inside", 100, 100, 100, 100},
		{"past left top", -5, -3, 0, 0},
		{"past right bottom", 790, 590, 760, 560},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := ClampInside(tt.x, tt.y, 40, 40, bounds)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("ClampInside = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCenter(t *testing.T) {
	x, y := Rect{X: 10, Y: 20, W: 30, H: 40}.Center()
	if x != 25 || y != 40 {
		t.Errorf("Center = (%v, %v), want (25, 40)", x, y)
	}
}

func TestSpatialGridQuery(t *testing.T) {
	g := NewSpatialGrid(Rect{W: 800, H: 600}, 64)
	g.Insert(Rect{X: 10, Y: 10, W: 5, H: 10}, 0)
	g.Insert(Rect{X: 60, Y: 60, W: 10, H: 10}, 1) // spans four cells
	g.Insert(Rect{X: 700, Y: 500, W: 5, H: 10}, 2)
	g.Insert(Rect{X: 100, Y: -80, W: 30, H: 30}, 3) // above the grid, clamps to row 0

	collect := func(r Rect) []int {
		seen := map[int]bool{}
		g.QueryRect(r, func(i int) { seen[i] = true })
		var out []int
		for i := range seen {
			out = append(out, i)
		}
		sort.Ints(out)
		return out
	}

	got := collect(Rect{X: 0, Y: 0, W: 30, H: 30})
	if len(got) != 2 || got[0] != 0 || got[1] != 1 {
		t.Errorf("Expected items [0 1] near origin, got %v", got)
	}

	got = collect(Rect{X: 690, Y: 490, W: 30, H: 30})
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("Expected item [2] near bottom right, got %v", got)
	}

	got = collect(Rect{X: 150, Y: -60, W: 5, H: 10})
	if len(got) != 1 || got[0] != 3 {
		t.Errorf("Expected clamped item [3], got %v", got)
	}

	g.Clear()
	if got := collect(Rect{W: 800, H: 600}); len(got) != 0 {
		t.Errorf("Expected empty grid after Clear, got %v", got)
	}
}
