package grip

import "github.com/hajimehoshi/ebiten/v2"

// Modifiers is the sampled state of the three manipulation modifier keys.
// Every handle rule consults it; it never changes which handle is active.
type Modifiers struct {
	// Proportional (shift) constrains the drag: uniform scaling, pure
	// rotation, aspect restore on edge handles, single-axis moves.
	Proportional bool
	// Discretize (alt) snaps the result: 0.1 steps for scale, crop, and
	// translation, 10-degree detents for rotation.
	Discretize bool
	// Override (ctrl) allows picking locked objects.
	Override bool
}

// ReadModifiers samples the keyboard through ebiten. Hosts that source
// modifiers elsewhere can build a Modifiers value directly.
func ReadModifiers() Modifiers {
	return Modifiers{
		Proportional: ebiten.IsKeyPressed(ebiten.KeyShift) ||
			ebiten.IsKeyPressed(ebiten.KeyShiftLeft) ||
			ebiten.IsKeyPressed(ebiten.KeyShiftRight),
		Discretize: ebiten.IsKeyPressed(ebiten.KeyAlt) ||
			ebiten.IsKeyPressed(ebiten.KeyAltLeft) ||
			ebiten.IsKeyPressed(ebiten.KeyAltRight),
		Override: ebiten.IsKeyPressed(ebiten.KeyControl) ||
			ebiten.IsKeyPressed(ebiten.KeyControlLeft) ||
			ebiten.IsKeyPressed(ebiten.KeyControlRight),
	}
}
