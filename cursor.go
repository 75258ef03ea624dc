package grip

import "github.com/hajimehoshi/ebiten/v2"

// EbitenShape maps a cursor hint to the matching ebiten cursor shape, so a
// host can apply hints with ebiten.SetCursorShape directly.
func (c CursorShape) EbitenShape() ebiten.CursorShapeType {
	switch c {
	case CursorHand:
		return ebiten.CursorShapePointer
	case CursorMove:
		return ebiten.CursorShapeMove
	case CursorResizeNS:
		return ebiten.CursorShapeNSResize
	case CursorResizeEW:
		return ebiten.CursorShapeEWResize
	case CursorResizeNESW:
		return ebiten.CursorShapeNESWResize
	case CursorResizeNWSE:
		return ebiten.CursorShapeNWSEResize
	default:
		return ebiten.CursorShapeDefault
	}
}
