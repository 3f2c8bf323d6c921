package physics

import (
	"github.com/lixenwraith/snowhop/core"
	"github.com/lixenwraith/snowhop/parameter"
	"github.com/lixenwraith/snowhop/vmath"
)

// Solid is anything a body can stand on or bump into
type Solid interface {
	Rect() core.Rect
}

// Bands defines the vertical contact tolerances
// Discrete motion overshoots exact edge alignment, the bands absorb up to one tick of error
type Bands struct {
	HeadDepth float64 // Head hit when top is in [bottom-HeadDepth, bottom]
	FootAbove float64 // Landing when bottom is in [top-FootAbove, top+FootBelow]
	FootBelow float64
	Inset     float64 // Horizontal overlap must exceed Inset on both platform sides
}

// DefaultBands are the tuned arcade tolerances
var DefaultBands = Bands{
	HeadDepth: parameter.HeadBandDepth,
	FootAbove: parameter.FootBandAbove,
	FootBelow: parameter.FootBandBelow,
	Inset:     parameter.CollisionInset,
}

// ResolveHorizontal pushes the body out of every solid it overlaps after a horizontal move of dx
// Overlaps that sit inside a vertical contact band (feet sunk into a top, head poking into an
// underside) belong to vertical resolution and are not side hits.
// Single pass in iteration order; each overlap is clamped independently, so two adjacent
// solids overlapped at once resolve order-dependently.
// Returns the number of solids that clamped the body.
func ResolveHorizontal[S Solid](b *core.Body, dx float64, solids []S, bands Bands) int {
	if dx == 0 {
		return 0
	}
	hits := 0
	for _, s := range solids {
		r := s.Rect()
		if !vmath.Overlaps(b.Rect(), r) {
			continue
		}
		if b.Bottom() <= r.Y+bands.FootBelow || b.Top() >= r.Bottom()-bands.HeadDepth {
			continue
		}
		if dx > 0 {
			b.SetRight(r.X)
		} else {
			b.Pos.X = r.Right()
		}
		hits++
	}
	return hits
}

// ResolveHead snaps the body's top to the first solid whose underside it reached
// Returns the solid index or -1
func ResolveHead[S Solid](b *core.Body, solids []S, bands Bands) int {
	for i, s := range solids {
		r := s.Rect()
		if vmath.Within(b.Top(), r.Bottom()-bands.HeadDepth, r.Bottom()) &&
			vmath.OverlapsInsetX(b.Rect(), r, bands.Inset) {
			b.Pos.Y = r.Bottom()
			return i
		}
	}
	return -1
}

// ResolveFoot snaps the body's bottom to the first solid it landed on
// Returns the solid index or -1
func ResolveFoot[S Solid](b *core.Body, solids []S, bands Bands) int {
	for i, s := range solids {
		r := s.Rect()
		if vmath.Within(b.Bottom(), r.Y-bands.FootAbove, r.Y+bands.FootBelow) &&
			vmath.OverlapsInsetX(b.Rect(), r, bands.Inset) {
			b.SetBottom(r.Y)
			return i
		}
	}
	return -1
}

// OverlapsAny reports whether the body strictly overlaps any solid
func OverlapsAny[S Solid](b *core.Body, solids []S) bool {
	br := b.Rect()
	for _, s := range solids {
		if vmath.Overlaps(br, s.Rect()) {
			return true
		}
	}
	return false
}
