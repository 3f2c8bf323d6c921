package physics

import (
	"github.com/lixenwraith/snowhop/core"
)

// Integrate applies one tick of velocity to position: p = p + v
func Integrate(b *core.Body) {
	b.Pos.X += b.Vel.X
	b.Pos.Y += b.Vel.Y
}

// Translate moves the body by an explicit displacement, leaving velocity untouched
// Used when the displacement differs from the body's own velocity (platform carry)
func Translate(b *core.Body, dx, dy float64) {
	b.Pos.X += dx
	b.Pos.Y += dy
}

// Place sets the body's top-left corner and zeroes its velocity (respawn)
func Place(b *core.Body, p core.Vec) {
	b.Pos = p
	b.Vel = core.Vec{}
}
