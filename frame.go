package grip

import "github.com/go-gl/mathgl/mgl32"

// Frame conversion helpers. Scene-space points are carried as Vec3 with an
// implicit w=1; directions use w=0.

// TransformPoint maps a point through an affine matrix.
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// TransformDirection maps a direction (no translation) through a matrix.
func TransformDirection(m mgl32.Mat4, d mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(d.Vec4(0)).Vec3()
}

// CornerFrame builds the matrix mapping scene-space points into a frame
// anchored at one corner of the object's unit rectangle:
//
//	T = Translate(corner) · Scale(1/aspect, 1, 1)
//	CornerFrame = T · objectTransform⁻¹
//
// In the resulting frame the picked corner sits at the origin with unit
// pitch on both axes, which turns corner-anchored resizing into an
// origin-relative scale. The inverse of the returned matrix maps back to
// scene space.
//
// objectTransform must come from Transform.Matrix of a transform whose
// scale components are non-zero; use Transform.InverseMatrix when building
// the inverse by hand to get the zero-scale guard.
func CornerFrame(object Transform, corner mgl32.Vec2, aspect float32) mgl32.Mat4 {
	t := mgl32.Translate3D(corner.X(), corner.Y(), 0)
	t = t.Mul4(mgl32.Scale3D(1/aspect, 1, 1))
	return t.Mul4(object.InverseMatrix())
}

// roundCorner snaps a handle's local pick coordinate to the nearest corner
// of the unit rectangle, e.g. (0.93, -1.02) → (1, -1).
func roundCorner(local mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{roundStep(local.X(), 1), roundStep(local.Y(), 1)}
}
