package grip

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func partHit(o *Object, part PartKind) Hit {
	return Hit{Node: NodeID{Object: o.ID, Part: part}}
}

func handleHit(o *Object, kind HandleKind) Hit {
	return Hit{Node: NodeID{Object: o.ID, Part: PartHandle, Handle: kind}}
}

func TestPickEmptyHits(t *testing.T) {
	v := newTestView()
	if r := v.Pick(nil, Modifiers{}); !r.Empty() {
		t.Errorf("Pick(nil) = %+v, want empty", r)
	}
}

func TestPickBodyFrontToBack(t *testing.T) {
	v := newTestView()
	a := NewObject("a", 1)
	b := NewObject("b", 1)
	v.AddObject(a)
	v.AddObject(b)

	r := v.Pick([]Hit{partHit(a, PartBody), partHit(b, PartBody)}, Modifiers{})
	if r.Object != a {
		t.Fatalf("picked %v, want the frontmost object", r.Object)
	}
	if r.Node != a.LockerNode() {
		t.Errorf("Node = %+v, want the locker node", r.Node)
	}
}

func TestPickCurrentObjectSticky(t *testing.T) {
	v := newTestView()
	a := NewObject("a", 1)
	b := NewObject("b", 1)
	v.AddObject(a)
	v.AddObject(b)
	v.Current = b

	// a is frontmost, but b's handle is also under the pointer.
	hits := []Hit{
		partHit(a, PartBody),
		{Node: NodeID{Object: b.ID, Part: PartHandle, Handle: HandleScale},
			Local: mgl32.Vec2{0.1, -0.1}},
	}
	r := v.Pick(hits, Modifiers{})
	if r.Object != b {
		t.Fatalf("picked %v, current object must stay sticky", r.Object)
	}
	if r.Node.Handle != HandleScale {
		t.Errorf("Node = %+v, want the scale handle", r.Node)
	}
	if r.Local != (mgl32.Vec2{0.1, -0.1}) {
		t.Errorf("Local = %v, want the hit's local coordinate", r.Local)
	}
}

func TestPickMenuHandle(t *testing.T) {
	v := newTestView()
	a := NewObject("a", 1)
	v.AddObject(a)
	v.Current = a

	r := v.Pick([]Hit{handleHit(a, HandleMenu)}, Modifiers{})
	if !r.Empty() {
		t.Error("menu pick must not start a drag")
	}
	if r.Action != PickActionOpenMenu {
		t.Errorf("Action = %v, want PickActionOpenMenu", r.Action)
	}
	if !v.TakeMenuRequest() {
		t.Error("menu request not latched on the view")
	}
	if v.TakeMenuRequest() {
		t.Error("menu request not cleared after taking it")
	}
}

func TestPickLockIconOnCurrent(t *testing.T) {
	v := newTestView()
	a := NewObject("a", 1)
	a.SetLocked(true)
	v.AddObject(a)
	v.Current = a

	r := v.Pick([]Hit{partHit(a, PartLockIcon)}, Modifiers{})
	if !r.Empty() {
		t.Error("lock icon pick must not start a drag on the current object")
	}
	if r.Action != PickActionUnlocked {
		t.Errorf("Action = %v, want PickActionUnlocked", r.Action)
	}
	if a.Locked() {
		t.Error("object still locked")
	}
}

func TestPickUnlockIconLocks(t *testing.T) {
	v := newTestView()
	a := NewObject("a", 1)
	v.AddObject(a)
	v.Current = a

	r := v.Pick([]Hit{partHit(a, PartUnlockIcon)}, Modifiers{})
	if !r.Empty() || r.Action != PickActionLocked {
		t.Errorf("result = %+v, want empty with PickActionLocked", r)
	}
	if !a.Locked() {
		t.Error("object not locked")
	}
}

func TestPickLockedCurrentCancels(t *testing.T) {
	v := newTestView()
	a := NewObject("a", 1)
	b := NewObject("b", 1)
	a.SetLocked(true)
	v.AddObject(a)
	v.AddObject(b)
	v.Current = a

	// The locked current object swallows the pick; b behind it is not
	// reached.
	hits := []Hit{partHit(a, PartBody), partHit(b, PartBody)}
	if r := v.Pick(hits, Modifiers{}); !r.Empty() {
		t.Errorf("result = %+v, want cancelled pick", r)
	}

	// The override modifier grabs the locked object anyway.
	r := v.Pick(hits, Modifiers{Override: true})
	if r.Object != a {
		t.Errorf("picked %v, want the locked current object under override", r.Object)
	}
}

func TestPickSkipsLockedObjects(t *testing.T) {
	v := newTestView()
	a := NewObject("a", 1)
	b := NewObject("b", 1)
	a.SetLocked(true)
	v.AddObject(a)
	v.AddObject(b)

	hits := []Hit{partHit(a, PartBody), partHit(b, PartBody)}
	if r := v.Pick(hits, Modifiers{}); r.Object != b {
		t.Errorf("picked %v, want the unlocked object behind", r.Object)
	}
	if r := v.Pick(hits, Modifiers{Override: true}); r.Object != a {
		t.Errorf("picked %v, want the locked object under override", r.Object)
	}
}

func TestPickLockIconUnlocksAndGrabs(t *testing.T) {
	v := newTestView()
	a := NewObject("a", 1)
	a.SetLocked(true)
	v.AddObject(a)

	r := v.Pick([]Hit{partHit(a, PartLockIcon)}, Modifiers{})
	if r.Object != a {
		t.Fatalf("picked %v, want the unlocked object", r.Object)
	}
	if r.Action != PickActionUnlocked {
		t.Errorf("Action = %v, want PickActionUnlocked", r.Action)
	}
	if r.Node != a.LockerNode() {
		t.Errorf("Node = %+v, want the locker node", r.Node)
	}
	if a.Locked() {
		t.Error("object still locked")
	}
}

func TestPickWorkspaceFilter(t *testing.T) {
	v := newTestView()
	a := NewObject("a", 1)
	b := NewObject("b", 1)
	a.Workspace = 1
	v.AddObject(a)
	v.AddObject(b)

	hits := []Hit{partHit(a, PartBody), partHit(b, PartBody)}
	if r := v.Pick(hits, Modifiers{}); r.Object != b {
		t.Errorf("picked %v, want the object in the active workspace", r.Object)
	}

	// A current object outside the workspace loses its stickiness.
	v.Current = a
	if r := v.Pick(hits, Modifiers{}); r.Object != b {
		t.Errorf("picked %v, foreign-workspace current object stayed sticky", r.Object)
	}
}

func TestPickUnknownObject(t *testing.T) {
	v := newTestView()
	hits := []Hit{{Node: NodeID{Object: 99999, Part: PartBody}}}
	if r := v.Pick(hits, Modifiers{}); !r.Empty() {
		t.Errorf("result = %+v, want empty for an unregistered object", r)
	}
}
