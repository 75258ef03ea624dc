package grip

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Session is one manipulation drag, alive from pointer press to release.
// It owns a value copy of the object's transform taken at Begin; every
// Update recomputes the live transform from that snapshot and the current
// pointer position, never from the previous frame's result.
type Session struct {
	view     *View
	object   *Object
	snapshot Transform
	node     NodeID
	corner   mgl32.Vec2 // pick coordinate snapped to the unit-rect corner
	origin   mgl32.Vec2 // screen point at Begin
	neutral  bool       // no target, or multi-selection: display only
	ended    bool
}

// Begin starts a manipulation session from a pick result. Any prior
// session on this view is ended first.
//
// An empty pick, or a pick while more than one object is selected, yields
// a neutral session whose Update never mutates anything; callers can treat
// every pick the same way and still get a valid cursor and status.
func (v *View) Begin(pick PickResult, screen mgl32.Vec2) *Session {
	if v.session != nil {
		v.session.End()
	}
	s := &Session{view: v, origin: screen}
	v.session = s

	if pick.Empty() {
		s.neutral = true
		return s
	}
	obj := pick.Object
	if v.Selection.Size() > 1 {
		// Multi-selection never allows geometric editing of one member.
		obj.Mode = ModeSelected
		s.neutral = true
		s.object = obj
		return s
	}

	s.object = obj
	s.snapshot = obj.Transform
	s.node = pick.Node
	s.corner = roundCorner(pick.Local)
	obj.Mode = ModeCurrent
	v.Current = obj

	if pick.Node.Part == PartHandle && pick.Node.Handle != HandleMenu {
		hs := obj.Handles(v.Mode)
		hs.ShowOnly(pick.Node.Handle)
		switch pick.Node.Handle {
		case HandleResize, HandleResizeH, HandleResizeV:
			// Overlay emphasizes the opposite corner, the one that stays put.
			hs.Get(pick.Node.Handle).ActiveCorner = mgl32.Vec2{-s.corner.X(), -s.corner.Y()}
		}
	}
	return s
}

// Active reports whether the session will mutate its object on Update.
func (s *Session) Active() bool {
	return s != nil && !s.ended && !s.neutral && s.object != nil
}

// Object returns the session's target, nil for a neutral session.
func (s *Session) Object() *Object {
	if s == nil {
		return nil
	}
	return s.object
}

// Update recomputes the object's transform for the current pointer
// position and returns the cursor hint and a human-readable status line.
// Safe to call on a neutral or ended session (no-op, arrow cursor).
func (s *Session) Update(screen mgl32.Vec2, mods Modifiers) (CursorShape, string) {
	if !s.Active() {
		return CursorArrow, ""
	}
	v := s.view
	snap := s.snapshot

	// Pointer travel in the view's scene frame.
	sceneFrom := v.Unproject(s.origin)
	sceneTo := v.Unproject(screen)

	// And in the object's local frame, from the snapshot.
	inv := snap.InverseMatrix()
	srcFrom := TransformPoint(inv, sceneFrom)
	srcTo := TransformPoint(inv, sceneTo)

	switch {
	case s.onHandle(HandleResize):
		return s.resizeCorner(sceneFrom, sceneTo, mods)
	case s.onHandle(HandleResizeH):
		return s.resizeEdge(sceneFrom, sceneTo, mods, true)
	case s.onHandle(HandleResizeV):
		return s.resizeEdge(sceneFrom, sceneTo, mods, false)
	case s.onHandle(HandleScale):
		return s.scaleCenter(srcFrom, srcTo, mods)
	case s.onHandle(HandleCrop):
		return s.crop(srcFrom, srcTo, mods)
	case s.onHandle(HandleRotate):
		return s.rotate(sceneFrom, sceneTo, mods)
	default:
		return s.move(sceneFrom, sceneTo, mods)
	}
}

// End finishes the session: overlays hide, every object's handles become
// visible again with neutral corner hints. Safe to call more than once.
func (s *Session) End() {
	if s == nil || s.ended {
		return
	}
	s.ended = true
	v := s.view
	if v == nil {
		return
	}
	v.Overlay.HideAll()
	for _, o := range v.objects {
		o.Handles(v.Mode).ShowAll()
	}
	if v.session == s {
		v.session = nil
	}
}

func (s *Session) onHandle(kind HandleKind) bool {
	return s.node.Part == PartHandle && s.node.Handle == kind
}

// cornerFrames builds the scene→corner and corner→scene matrices for the
// picked corner, plus the snapshot center expressed in the corner frame.
func (s *Session) cornerFrames() (toCorner, toScene mgl32.Mat4, center mgl32.Vec3) {
	toCorner = CornerFrame(s.snapshot, s.corner, s.object.AspectRatio)
	toScene = toCorner.Inv()
	center = TransformPoint(toCorner, s.snapshot.Translation)
	return
}

// anchorCenter applies the corner-frame scaling to the snapshot center and
// writes the resulting scene-space translation. This is what keeps the
// opposite corner stationary.
func (s *Session) anchorCenter(scaling mgl32.Vec3, toScene mgl32.Mat4, center mgl32.Vec3) {
	center = TransformPoint(mgl32.Scale3D(scaling.X(), scaling.Y(), scaling.Z()), center)
	s.object.Transform.Translation = TransformPoint(toScene, center)
}

// resizeCorner implements the corner handle: origin-relative scale in the
// corner frame, opposite corner pinned.
func (s *Session) resizeCorner(sceneFrom, sceneTo mgl32.Vec3, mods Modifiers) (CursorShape, string) {
	obj, snap := s.object, s.snapshot
	toCorner, toScene, center := s.cornerFrames()
	cornerFrom := TransformPoint(toCorner, sceneFrom)
	cornerTo := TransformPoint(toCorner, sceneTo)
	scaling := dragScaling(cornerTo, cornerFrom)

	if mods.Proportional {
		factor := lenXY(cornerTo) / lenXY(cornerFrom)
		scale := mulElem(snap.Scale, mgl32.Vec3{factor, factor, 1})
		if mods.Discretize {
			scale[0] = roundStep(scale.X(), 10)
			factor = scale.X() / snap.Scale.X()
			scale[1] = snap.Scale.Y() * factor
		}
		obj.Transform.Scale = scale
		scaling = divElem(scale, snap.Scale)
	} else {
		scale := mulElem(snap.Scale, scaling)
		if mods.Discretize {
			scale[0] = roundStep(scale.X(), 10)
			scale[1] = roundStep(scale.Y(), 10)
			scaling = divElem(scale, snap.Scale)
		}
		obj.Transform.Scale = scale
	}
	s.anchorCenter(scaling, toScene, center)

	// Diagonal cursor follows the corner direction under the snapshot
	// rotation and scale (mirroring flips the diagonal).
	m := mgl32.HomogRotate3DZ(snap.Rotation)
	m = m.Mul4(mgl32.Scale3D(snap.Scale.X(), snap.Scale.Y(), snap.Scale.Z()))
	c := TransformDirection(m, mgl32.Vec3{s.corner.X(), s.corner.Y(), 0})
	cursor := CursorResizeNWSE
	if c.X()*c.Y() > 0 {
		cursor = CursorResizeNESW
	}
	return cursor, sizeInfo(obj.Transform.Scale)
}

// resizeEdge implements the edge-midpoint handles: like resizeCorner but
// locked to one axis. horizontal selects the left/right handle pair.
func (s *Session) resizeEdge(sceneFrom, sceneTo mgl32.Vec3, mods Modifiers, horizontal bool) (CursorShape, string) {
	obj, snap := s.object, s.snapshot
	toCorner, toScene, center := s.cornerFrames()
	cornerFrom := TransformPoint(toCorner, sceneFrom)
	cornerTo := TransformPoint(toCorner, sceneTo)
	scaling := dragScaling(cornerTo, cornerFrom)

	if mods.Proportional {
		// Restore the snapshot aspect ratio: active axis magnitude set
		// equal to the other axis's, sign preserved.
		scale := snap.Scale
		if horizontal {
			scale[0] = abs32(snap.Scale.Y()) * sign(snap.Scale.X())
		} else {
			scale[1] = abs32(snap.Scale.X()) * sign(snap.Scale.Y())
		}
		obj.Transform.Scale = scale
		scaling = divElem(scale, snap.Scale)
	} else {
		if horizontal {
			scaling = mgl32.Vec3{scaling.X(), 1, 1}
		} else {
			scaling = mgl32.Vec3{1, scaling.Y(), 1}
		}
		scale := mulElem(snap.Scale, scaling)
		if mods.Discretize {
			if horizontal {
				scale[0] = roundStep(scale.X(), 10)
			} else {
				scale[1] = roundStep(scale.Y(), 10)
			}
			scaling = divElem(scale, snap.Scale)
		}
		obj.Transform.Scale = scale
	}
	s.anchorCenter(scaling, toScene, center)

	// NS/EW cursor flips once the object is rotated past 45 degrees.
	steep := abs32(float32(math.Tan(float64(snap.Rotation)))) > 1
	var cursor CursorShape
	if horizontal {
		cursor = CursorResizeEW
		if steep {
			cursor = CursorResizeNS
		}
	} else {
		cursor = CursorResizeNS
		if steep {
			cursor = CursorResizeEW
		}
	}
	return cursor, sizeInfo(obj.Transform.Scale)
}

// scaleCenter implements the center-anchored scale handle.
func (s *Session) scaleCenter(srcFrom, srcTo mgl32.Vec3, mods Modifiers) (CursorShape, string) {
	obj, snap := s.object, s.snapshot
	ov := &s.view.Overlay

	ov.Scaling.place(snap.Translation.Vec2(), snap.Rotation)
	ov.ScalingCross.Visible = false
	ov.ScalingGrid.Visible = false

	scaling := dragScaling(srcTo, srcFrom)
	if mods.Proportional {
		factor := lenXY(srcTo) / lenXY(srcFrom)
		scaling = mgl32.Vec3{factor, factor, 1}
		ov.ScalingCross.place(snap.Translation.Vec2(), snap.Rotation)
	}
	scale := mulElem(snap.Scale, scaling)
	if mods.Discretize {
		scale[0] = roundStep(scale.X(), 10)
		scale[1] = roundStep(scale.Y(), 10)
		ov.ScalingGrid.place(snap.Translation.Vec2(), snap.Rotation)
	}
	obj.Transform.Scale = scale

	cursor := CursorResizeNESW
	if scale.X()*scale.Y() > 0 {
		cursor = CursorResizeNWSE
	}
	return cursor, sizeInfo(scale)
}

// crop implements the crop handle: the crop window follows the drag like a
// center scale, then the geometric scale is recomputed so the framed area
// keeps its on-screen size.
func (s *Session) crop(srcFrom, srcTo mgl32.Vec3, mods Modifiers) (CursorShape, string) {
	obj, snap := s.object, s.snapshot
	ov := &s.view.Overlay

	// Frame showing the full uncropped extent.
	ov.Crop.place(snap.Translation.Vec2(), snap.Rotation)
	ov.Crop.Scale = mgl32.Vec2{
		snap.Scale.X() / snap.Crop.X() * obj.AspectRatio,
		snap.Scale.Y() / snap.Crop.Y(),
	}

	scaling := dragScaling(srcTo, srcFrom)
	if mods.Proportional {
		factor := lenXY(srcTo) / lenXY(srcFrom)
		scaling = mgl32.Vec3{factor, factor, 1}
	}
	crop := mgl32.Vec2{snap.Crop.X() * scaling.X(), snap.Crop.Y() * scaling.Y()}
	if mods.Discretize {
		crop[0] = roundStep(crop.X(), 10)
		crop[1] = roundStep(crop.Y(), 10)
	}
	obj.Transform.Crop = crop
	obj.Transform.ClampCrop()
	crop = obj.Transform.Crop

	// Crop and scale are coupled: the visible framed area keeps its size.
	obj.Transform.Scale = mulElem(snap.Scale, mgl32.Vec3{
		crop.X() / snap.Crop.X(),
		crop.Y() / snap.Crop.Y(),
		1,
	})

	cursor := CursorResizeNESW
	if obj.Transform.Scale.X()*obj.Transform.Scale.Y() < 0 {
		cursor = CursorResizeNWSE
	}
	return cursor, fmt.Sprintf("Crop %.3f x %.3f", crop.X(), crop.Y())
}

// rotate implements the rotation handle. Unless the proportional modifier
// is held, the drag also applies a radius-ratio uniform scale, so rotation
// drags double as resize drags.
func (s *Session) rotate(sceneFrom, sceneTo mgl32.Vec3, mods Modifiers) (CursorShape, string) {
	obj, snap := s.object, s.snapshot
	ov := &s.view.Overlay

	ov.Rotation.place(snap.Translation.Vec2(), 0)
	ov.RotationFix.place(snap.Translation.Vec2(), 0)
	ov.RotationClock.Visible = false

	// Pointer travel in a frame centered on the object, ignoring scale.
	invT := mgl32.Translate3D(
		-snap.Translation.X(), -snap.Translation.Y(), -snap.Translation.Z())
	from := TransformPoint(invT, sceneFrom)
	to := TransformPoint(invT, sceneTo)

	angle := orientedAngle(from.Vec2(), to.Vec2())
	rotation := snap.Rotation + angle

	var info string
	if mods.Discretize {
		// 10-degree detents; integer division truncates toward zero.
		degrees := int(mgl32.RadToDeg(rotation)) / 10 * 10
		rotation = mgl32.DegToRad(float32(degrees))
		ov.RotationClock.place(snap.Translation.Vec2(), 0)
		info = fmt.Sprintf("Angle %d°", degrees)
	} else {
		info = fmt.Sprintf("Angle %.1f°", mgl32.RadToDeg(rotation))
	}
	obj.Transform.Rotation = rotation
	ov.RotationClockHand.place(snap.Translation.Vec2(), rotation)

	if !mods.Proportional {
		factor := lenXY(to) / lenXY(from)
		obj.Transform.Scale = mulElem(snap.Scale, mgl32.Vec3{factor, factor, 1})
		info += "\n   " + sizeInfo(obj.Transform.Scale)
		ov.RotationFix.Visible = false
	}
	return CursorHand, info
}

// move implements the plain body drag.
func (s *Session) move(sceneFrom, sceneTo mgl32.Vec3, mods Modifiers) (CursorShape, string) {
	obj, snap := s.object, s.snapshot
	ov := &s.view.Overlay

	cursor := CursorMove
	translation := snap.Translation.Add(sceneTo.Sub(sceneFrom))
	if mods.Discretize {
		translation[0] = roundStep(translation.X(), 10)
		translation[1] = roundStep(translation.Y(), 10)
	}

	ov.PositionCross.Visible = false
	if mods.Proportional {
		// Lock motion to the dominant screen axis.
		ov.PositionCross.place(snap.Translation.Vec2(), 0)
		dif := snap.Translation.Sub(translation)
		if abs32(dif.X()) > abs32(dif.Y()) {
			translation[1] = snap.Translation.Y()
			cursor = CursorResizeEW
		} else {
			translation[0] = snap.Translation.X()
			cursor = CursorResizeNS
		}
	}
	obj.Transform.Translation = translation
	ov.Position.place(translation.Vec2(), 0)

	return cursor, fmt.Sprintf("Position %.3f, %.3f", translation.X(), translation.Y())
}

// dragScaling is the component-wise ratio of two drag points on the XY
// plane; Z is pinned to 1 since it never carries geometry here.
func dragScaling(to, from mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{to.X() / from.X(), to.Y() / from.Y(), 1}
}

func lenXY(v mgl32.Vec3) float32 {
	return float32(math.Hypot(float64(v.X()), float64(v.Y())))
}

// orientedAngle returns the signed angle from a to b, positive
// counterclockwise, in (-π, π].
func orientedAngle(a, b mgl32.Vec2) float32 {
	a = a.Normalize()
	b = b.Normalize()
	cross := a.X()*b.Y() - a.Y()*b.X()
	dot := a.X()*b.X() + a.Y()*b.Y()
	return float32(math.Atan2(float64(cross), float64(dot)))
}

func sizeInfo(scale mgl32.Vec3) string {
	return fmt.Sprintf("Size %.3f x %.3f", scale.X(), scale.Y())
}
