package grip

import "github.com/go-gl/mathgl/mgl32"

// Context-menu actions and keyboard nudges. These are the discrete edits a
// host offers next to drag manipulation; they act immediately on an
// object's live transform, outside any session.

// arrowMoveFactor scales unprojected arrow-key movement into a nudge step.
const arrowMoveFactor float32 = 0.1

// ResetTransform restores the object to identity geometry: unit scale, no
// rotation, full crop, centered.
func (v *View) ResetTransform(o *Object) {
	if o == nil {
		return
	}
	o.Transform.Scale = mgl32.Vec3{1, 1, 1}
	o.Transform.Rotation = 0
	o.Transform.Crop = mgl32.Vec2{1, 1}
	o.Transform.Translation = mgl32.Vec3{}
}

// Fit scales and centers the object so its frame fills the output frame.
func (v *View) Fit(o *Object) {
	if o == nil {
		return
	}
	scale := mgl32.Vec3{1, 1, 1}
	if o.AspectRatio != 0 {
		scale[0] = v.OutputAspect / o.AspectRatio
	}
	o.Transform.Scale = scale
	o.Transform.Rotation = 0
	o.Transform.Translation = mgl32.Vec3{}
}

// CenterObject moves the object back to the scene center, leaving scale,
// rotation, and crop alone.
func (v *View) CenterObject(o *Object) {
	if o == nil {
		return
	}
	o.Transform.Translation = mgl32.Vec3{}
}

// RestoreAspectRatio sets the horizontal scale so the object shows its
// source aspect ratio again, accounting for the crop window.
func (v *View) RestoreAspectRatio(o *Object) {
	if o == nil {
		return
	}
	sx := o.Transform.Scale.Y() * (o.Transform.Crop.X() / o.Transform.Crop.Y())
	o.Transform.Scale = mgl32.Vec3{sx, o.Transform.Scale.Y(), o.Transform.Scale.Z()}
}

// Nudge translates the object by an arrow-key movement given in screen
// pixels (Y down). With the discretize modifier the step snaps to the 0.1
// scene grid; otherwise the movement is unprojected through the view zoom
// so a nudge covers the same screen distance at any zoom.
func (v *View) Nudge(o *Object, movement mgl32.Vec2, mods Modifiers) {
	if o == nil {
		return
	}
	if mods.Discretize {
		t := o.Transform.Translation.Add(
			mgl32.Vec3{movement.X() * 0.1, -movement.Y() * 0.1, 0})
		t[0] = roundStep(t.X(), 10)
		t[1] = roundStep(t.Y(), 10)
		o.Transform.Translation = t
		return
	}
	from := v.Unproject(mgl32.Vec2{})
	to := v.Unproject(movement)
	delta := to.Sub(from).Mul(arrowMoveFactor)
	o.Transform.Translation = o.Transform.Translation.Add(delta)
}
