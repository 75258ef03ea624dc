package grip

// ObjectMode is the display state of an object, driven by selection and
// picking. It never affects geometry; overlays read it to decide what to
// draw.
type ObjectMode uint8

const (
	ModeNormal   ObjectMode = iota
	ModeSelected            // part of a multi-selection, not editable alone
	ModeCurrent             // the single current object, fully editable
)

// Object is a manipulable scene element: a live transform, a lock flag, a
// workspace assignment, and one handle set per view mode.
//
// The engine mutates Transform in place during an active session and reads
// AspectRatio when building corner frames. Everything else about the object
// (its content, its rendering) belongs to the host.
type Object struct {
	ID   ObjectID
	Name string

	// Transform is the live geometry, mutated every session update.
	Transform Transform

	// AspectRatio is the width/height ratio of the object's frame, used to
	// give corner frames unit pitch on both axes.
	AspectRatio float32

	// Workspace partitions objects; only objects in the view's current
	// workspace are pickable there.
	Workspace int

	Mode ObjectMode

	locked  bool
	handles map[ViewMode]*HandleSet
}

var nextObjectID ObjectID

// NewObject creates an object with identity transform, the given frame
// aspect ratio, and a full handle set for each view mode.
func NewObject(name string, aspectRatio float32) *Object {
	nextObjectID++
	o := &Object{
		ID:          nextObjectID,
		Name:        name,
		Transform:   NewTransform(),
		AspectRatio: aspectRatio,
		handles:     make(map[ViewMode]*HandleSet),
	}
	for _, mode := range []ViewMode{ViewMixing, ViewGeometry, ViewLayer} {
		o.handles[mode] = NewHandleSet()
	}
	return o
}

// Handles returns the object's handle set for a view mode.
func (o *Object) Handles(mode ViewMode) *HandleSet {
	return o.handles[mode]
}

// Locked reports whether the object refuses manipulation.
func (o *Object) Locked() bool {
	return o.locked
}

// SetLocked locks or unlocks the object. A locked object is only pickable
// through its lock icon or with the override modifier held.
func (o *Object) SetLocked(locked bool) {
	o.locked = locked
}

// Owns reports whether a hit-test node belongs to this object.
func (o *Object) Owns(node NodeID) bool {
	return node.Object == o.ID
}

// LockerNode returns the node identity picks resolve to when the drag
// anchor is the object body rather than a specific handle.
func (o *Object) LockerNode() NodeID {
	return NodeID{Object: o.ID, Part: PartLocker}
}
