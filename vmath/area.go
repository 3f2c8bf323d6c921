package vmath

import "github.com/lixenwraith/snowhop/core"

// Overlaps reports strict intersection; rectangles that only share an edge do not overlap
func Overlaps(a, b core.Rect) bool {
	return a.X < b.Right() && a.Right() > b.X && a.Y < b.Bottom() && a.Bottom() > b.Y
}

// OverlapsInsetX reports horizontal overlap deeper than inset on both sides of b
// Used by vertical resolution so brushing a platform corner is not a landing
func OverlapsInsetX(a, b core.Rect, inset float64) bool {
	return a.Right() > b.X+inset && a.X < b.Right()-inset
}

// Within reports lo <= v <= hi
func Within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
