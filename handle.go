package grip

import "github.com/go-gl/mathgl/mgl32"

// Handle is one named control point of an object in one view.
type Handle struct {
	Kind    HandleKind
	Visible bool
	// ActiveCorner is an overlay hint naming the corner the host should
	// emphasize while a resize drag is active (conventionally the corner
	// opposite the grabbed one). Zero means neutral. Meaningful only for
	// HandleResize, HandleResizeH, and HandleResizeV.
	ActiveCorner mgl32.Vec2
}

// HandleSet is the full set of seven handles an object owns in one view.
type HandleSet struct {
	handles [handleKindCount]Handle
}

// NewHandleSet returns a set with every handle visible and neutral.
func NewHandleSet() *HandleSet {
	hs := &HandleSet{}
	for k := range hs.handles {
		hs.handles[k] = Handle{Kind: HandleKind(k), Visible: true}
	}
	return hs
}

// Get returns the handle of the given kind.
func (hs *HandleSet) Get(kind HandleKind) *Handle {
	return &hs.handles[kind]
}

// Visible reports whether the handle of the given kind is visible.
func (hs *HandleSet) Visible(kind HandleKind) bool {
	return hs.handles[kind].Visible
}

// ShowOnly hides every handle except the given one. Used at drag begin so
// only the active grip stays on screen.
func (hs *HandleSet) ShowOnly(kind HandleKind) {
	for k := range hs.handles {
		hs.handles[k].Visible = HandleKind(k) == kind
	}
}

// ShowAll restores every handle to visible and resets active-corner hints
// to neutral.
func (hs *HandleSet) ShowAll() {
	for k := range hs.handles {
		hs.handles[k].Visible = true
		hs.handles[k].ActiveCorner = mgl32.Vec2{}
	}
}
