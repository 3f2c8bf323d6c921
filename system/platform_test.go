package system

import (
	"testing"

	"github.com/lixenwraith/snowhop/component"
	"github.com/lixenwraith/snowhop/core"
)

func TestVerticalPlatformOscillation(t *testing.T) {
	c := NewPlatformController()
	p := component.NewMovingPlatform(core.Rect{X: 800, Y: 350, W: 100, H: 15}, "", true, 1.5, 80)

	if p.Direction != -1 {
		t.Fatalf("vertical mover starts with direction %d, want -1", p.Direction)
	}

	prev := p.Displacement()
	for tick := 1; tick <= 54; tick++ {
		c.Update(p)
		if p.Displacement() >= prev {
			t.Fatalf("tick %d: displacement %.1f not decreasing", tick, p.Displacement())
		}
		prev = p.Displacement()
		if tick < 54 && p.Direction != -1 {
			t.Fatalf("tick %d: flipped early at %.1f", tick, prev)
		}
	}
	if prev != -81 || p.Direction != 1 {
		t.Fatalf("tick 54: displacement %.1f direction %d, want -81 and +1", prev, p.Direction)
	}
	t.Logf("✓ Flipped at displacement %.1f", prev)

	c.Update(p)
	if p.Displacement() != -79.5 {
		t.Fatalf("tick 55: displacement %.1f, want -79.5", p.Displacement())
	}

	// Upper turn after 108 more steps, then back to the lower turn
	for tick := 56; tick <= 162; tick++ {
		c.Update(p)
	}
	if p.Displacement() != 81 || p.Direction != -1 {
		t.Fatalf("tick 162: displacement %.1f direction %d", p.Displacement(), p.Direction)
	}
	at := p.Pos
	for tick := 163; tick <= 162+216; tick++ {
		c.Update(p)
	}
	if p.Pos != at || p.Direction != -1 {
		t.Fatalf("period mismatch: pos %+v vs %+v", p.Pos, at)
	}
	t.Logf("✓ Steady-state period is 216 ticks")
}

func TestHorizontalPlatformStartsRight(t *testing.T) {
	c := NewPlatformController()
	p := component.NewMovingPlatform(core.Rect{X: 300, Y: 400, W: 100, H: 15}, "", false, 2, 100)

	c.Update(p)
	if p.Pos.X != 302 || p.Pos.Y != 400 {
		t.Fatalf("horizontal mover moved to %+v", p.Pos)
	}
	for tick := 2; tick <= 51; tick++ {
		c.Update(p)
	}
	if p.Displacement() != 102 || p.Direction != -1 {
		t.Fatalf("displacement %.1f direction %d, want 102 and -1", p.Displacement(), p.Direction)
	}
}

func TestStaticPlatformUntouched(t *testing.T) {
	c := NewPlatformController()
	p := component.NewStaticPlatform(core.Rect{X: 10, Y: 20, W: 30, H: 40}, "")
	for i := 0; i < 100; i++ {
		c.Update(p)
	}
	if p.Pos != (core.Vec{X: 10, Y: 20}) || p.Vel != (core.Vec{}) {
		t.Fatalf("static platform changed: %+v", p.Body)
	}
}
