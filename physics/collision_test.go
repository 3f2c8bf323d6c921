package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/snowhop/core"
)

type box core.Rect

func (b box) Rect() core.Rect { return core.Rect(b) }

func TestResolveHorizontalClamp(t *testing.T) {
	wall := []box{{X: 200, Y: 300, W: 20, H: 200}}

	b := core.Body{Pos: core.Vec{X: 175, Y: 460}, W: 30, H: 40}
	if n := ResolveHorizontal(&b, 5, wall, DefaultBands); n != 1 || b.Right() != 200 {
		t.Fatalf("moving right: hits=%d right=%.1f", n, b.Right())
	}

	b = core.Body{Pos: core.Vec{X: 215, Y: 460}, W: 30, H: 40}
	if n := ResolveHorizontal(&b, -5, wall, DefaultBands); n != 1 || b.Left() != 220 {
		t.Fatalf("moving left: hits=%d left=%.1f", n, b.Left())
	}

	// No motion, no resolution
	b = core.Body{Pos: core.Vec{X: 205, Y: 460}, W: 30, H: 40}
	if n := ResolveHorizontal(&b, 0, wall, DefaultBands); n != 0 || b.Pos.X != 205 {
		t.Fatalf("zero dx resolved: hits=%d x=%.1f", n, b.Pos.X)
	}
}

func TestResolveHorizontalIgnoresContactBands(t *testing.T) {
	ledge := []box{{X: 100, Y: 400, W: 100, H: 20}}

	// Feet sunk 3 units into the top
	b := core.Body{Pos: core.Vec{X: 150, Y: 363}, W: 30, H: 40}
	if n := ResolveHorizontal(&b, 5, ledge, DefaultBands); n != 0 || b.Pos.X != 150 {
		t.Fatalf("foot band treated as wall: hits=%d x=%.1f", n, b.Pos.X)
	}

	// Head 4 units into the underside
	b = core.Body{Pos: core.Vec{X: 150, Y: 416}, W: 30, H: 40}
	if n := ResolveHorizontal(&b, -5, ledge, DefaultBands); n != 0 || b.Pos.X != 150 {
		t.Fatalf("head band treated as wall: hits=%d x=%.1f", n, b.Pos.X)
	}
}

// Single pass: a clamp that pushes the body into an already visited solid is not revisited
func TestResolveHorizontalOrderDependent(t *testing.T) {
	thin := box{X: 70, Y: 300, W: 20, H: 200}
	wide := box{X: 110, Y: 300, W: 90, H: 200}
	start := core.Body{Pos: core.Vec{X: 105, Y: 460}, W: 30, H: 40}

	b := start
	ResolveHorizontal(&b, 5, []box{thin, wide}, DefaultBands)
	if b.Right() != 110 {
		t.Fatalf("thin first: right=%.1f, want 110", b.Right())
	}

	b = start
	ResolveHorizontal(&b, 5, []box{wide, thin}, DefaultBands)
	if b.Right() != 70 {
		t.Fatalf("wide first: right=%.1f, want 70", b.Right())
	}
	t.Logf("✓ Resolution depends on iteration order")
}

func TestResolveFootAndHead(t *testing.T) {
	solids := []box{{X: 100, Y: 400, W: 100, H: 20}}

	cases := []struct {
		name   string
		bottom float64
		x      float64
		want   int
	}{
		{"exact top", 400, 150, 0},
		{"above band", 394.9, 150, -1},
		{"band upper edge", 395, 150, 0},
		{"band lower edge", 415, 150, 0},
		{"below band", 415.1, 150, -1},
		{"corner within inset", 400, 75, -1},
		{"corner past inset", 400, 76, 0},
	}
	for _, tc := range cases {
		b := core.Body{Pos: core.Vec{X: tc.x, Y: tc.bottom - 40}, W: 30, H: 40}
		got := ResolveFoot(&b, solids, DefaultBands)
		if got != tc.want {
			t.Errorf("%s: index %d, want %d", tc.name, got, tc.want)
			continue
		}
		if got >= 0 && b.Bottom() != 400 {
			t.Errorf("%s: bottom %.2f not snapped", tc.name, b.Bottom())
		}
	}

	b := core.Body{Pos: core.Vec{X: 150, Y: 412}, W: 30, H: 40}
	if i := ResolveHead(&b, solids, DefaultBands); i != 0 || b.Top() != 420 {
		t.Fatalf("head: index %d top %.1f", i, b.Top())
	}
	b = core.Body{Pos: core.Vec{X: 150, Y: 409}, W: 30, H: 40}
	if i := ResolveHead(&b, solids, DefaultBands); i != -1 {
		t.Fatalf("head too deep matched: %d", i)
	}
}

func TestApplyGravityCap(t *testing.T) {
	v := 19.5
	if ApplyGravity(&v, 0.8, 20) != true || v != 20 {
		t.Fatalf("cap: v=%.2f", v)
	}
	v = 1
	if ApplyGravity(&v, 0.8, 20) || math.Abs(v-1.8) > 1e-12 {
		t.Fatalf("uncapped: v=%.2f", v)
	}
}
