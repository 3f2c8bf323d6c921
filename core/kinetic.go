package core

// Body is the kinematic primitive shared by the player and platforms
// Pos is the top-left corner in playfield units (y grows downward)
type Body struct {
	Pos  Vec
	Vel  Vec
	W, H float64
}

// Rect returns the current axis-aligned bounding box
func (b *Body) Rect() Rect {
	return Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.W, H: b.H}
}

func (b *Body) Left() float64   { return b.Pos.X }
func (b *Body) Right() float64  { return b.Pos.X + b.W }
func (b *Body) Top() float64    { return b.Pos.Y }
func (b *Body) Bottom() float64 { return b.Pos.Y + b.H }

// SetRight moves the body so its right edge sits at x
func (b *Body) SetRight(x float64) { b.Pos.X = x - b.W }

// SetBottom moves the body so its bottom edge sits at y
func (b *Body) SetBottom(y float64) { b.Pos.Y = y - b.H }
