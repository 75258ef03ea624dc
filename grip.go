package grip

import "github.com/go-gl/mathgl/mgl32"

// Rect is an axis-aligned rectangle in screen pixels. The coordinate system
// has its origin at the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float32
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// ViewMode identifies a named coordinate space objects are rendered into.
// An object owns one handle set per view mode.
type ViewMode uint8

const (
	ViewMixing   ViewMode = iota // blending/opacity arrangement
	ViewGeometry                 // geometric manipulation (this engine's home)
	ViewLayer                    // depth ordering
)

// HandleKind identifies one of the seven control handles of an object.
type HandleKind uint8

const (
	HandleResize  HandleKind = iota // corner, opposite corner stays fixed
	HandleResizeH                   // left/right edge midpoint
	HandleResizeV                   // top/bottom edge midpoint
	HandleScale                     // center-anchored scale
	HandleCrop                      // crop window
	HandleRotate                    // rotation (doubles as scale unless proportional)
	HandleMenu                      // opens the context menu, never drags
)

const handleKindCount = 7

// PartKind identifies which part of an object a hit-test node belongs to.
type PartKind uint8

const (
	PartBody       PartKind = iota // the object's surface
	PartHandle                     // one of the seven handles
	PartLocker                     // overlay group used as the move-drag anchor
	PartLockIcon                   // closed padlock, shown while locked
	PartUnlockIcon                 // open padlock, shown while unlocked
)

// ObjectID is a stable identifier for an Object. Handle identity is the pair
// (ObjectID, HandleKind); no pointer comparison is ever needed.
type ObjectID uint64

// NodeID identifies a hit-testable node: a part of an object, and for
// PartHandle, which handle.
type NodeID struct {
	Object ObjectID
	Part   PartKind
	Handle HandleKind // valid only when Part == PartHandle
}

// Hit is one entry of a hit-test traversal result: a node under the pointer
// and the pointer position in that node's local coordinates. Hit lists are
// ordered front to back.
type Hit struct {
	Node  NodeID
	Local mgl32.Vec2
}

// PickAction reports a side effect the picking resolver performed or
// requested while resolving.
type PickAction uint8

const (
	PickActionNone     PickAction = iota
	PickActionOpenMenu            // menu handle clicked: host should open the context menu
	PickActionLocked              // open-lock icon clicked: object is now locked
	PickActionUnlocked            // lock icon clicked: object is now unlocked
)

// PickResult is the outcome of resolving a hit list. A nil Object means
// nothing actionable was under the pointer (Action may still be set).
type PickResult struct {
	Object *Object
	Node   NodeID
	Local  mgl32.Vec2
	Action PickAction
}

// Empty reports whether the pick found no draggable target.
func (p PickResult) Empty() bool {
	return p.Object == nil
}

// CursorShape is a hint for the pointer cursor the host should display.
type CursorShape uint8

const (
	CursorArrow     CursorShape = iota
	CursorHand                  // rotation drag
	CursorMove                  // plain translation drag
	CursorResizeNS              // vertical resize
	CursorResizeEW              // horizontal resize
	CursorResizeNESW            // diagonal resize, NE-SW
	CursorResizeNWSE            // diagonal resize, NW-SE
)
