package grip

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// minCrop and maxCrop bound each crop component at all times.
	minCrop float32 = 0.1
	maxCrop float32 = 1.0

	// minScaleMagnitude is the smallest scale component magnitude used when
	// materializing an inverse matrix. The live Scale value is never
	// modified; the clamp only keeps frame conversions invertible.
	minScaleMagnitude float32 = 1e-6
)

// Transform is the affine state of an object: translation, rotation about
// the Z axis, non-uniform scale, and a crop window expressed as a fraction
// of the object's frame.
//
// Transform is a value type. Copying one produces an independent snapshot;
// the manipulation session relies on this for its fixed pre-drag state.
type Transform struct {
	Translation mgl32.Vec3
	// Rotation is the Z-axis angle in radians. It accumulates without
	// wraparound.
	Rotation float32
	// Scale components may be negative (mirroring) but should not be zero;
	// matrix inversion clamps them away from zero.
	Scale mgl32.Vec3
	// Crop components are kept in [0.1, 1.0] by ClampCrop.
	Crop mgl32.Vec2
}

// NewTransform returns the identity transform: no translation or rotation,
// unit scale, full crop.
func NewTransform() Transform {
	return Transform{
		Scale: mgl32.Vec3{1, 1, 1},
		Crop:  mgl32.Vec2{1, 1},
	}
}

// Matrix materializes the transform as Translate · RotateZ · Scale.
// Crop does not participate; it acts on the projection area, not geometry.
func (t Transform) Matrix() mgl32.Mat4 {
	m := mgl32.Translate3D(t.Translation.X(), t.Translation.Y(), t.Translation.Z())
	m = m.Mul4(mgl32.HomogRotate3DZ(t.Rotation))
	return m.Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}

// InverseMatrix materializes the inverse transform from its components:
// Scale⁻¹ · RotateZ⁻¹ · Translate⁻¹. Scale components are clamped away from
// zero so the result is always finite.
func (t Transform) InverseMatrix() mgl32.Mat4 {
	sx := safeScale(t.Scale.X())
	sy := safeScale(t.Scale.Y())
	sz := safeScale(t.Scale.Z())
	m := mgl32.Scale3D(1/sx, 1/sy, 1/sz)
	m = m.Mul4(mgl32.HomogRotate3DZ(-t.Rotation))
	return m.Mul4(mgl32.Translate3D(-t.Translation.X(), -t.Translation.Y(), -t.Translation.Z()))
}

// ClampCrop restores the crop invariant after a mutation.
func (t *Transform) ClampCrop() {
	t.Crop = mgl32.Vec2{
		mgl32.Clamp(t.Crop.X(), minCrop, maxCrop),
		mgl32.Clamp(t.Crop.Y(), minCrop, maxCrop),
	}
}

// safeScale clamps a scale component's magnitude to minScaleMagnitude,
// preserving sign. An exact zero is treated as positive.
func safeScale(s float32) float32 {
	if s >= 0 && s < minScaleMagnitude {
		return minScaleMagnitude
	}
	if s < 0 && s > -minScaleMagnitude {
		return -minScaleMagnitude
	}
	return s
}

// roundStep rounds v to the nearest multiple of 1/factor.
func roundStep(v, factor float32) float32 {
	return float32(math.Round(float64(v*factor))) / factor
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// sign returns -1 for negative values and +1 otherwise.
func sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}

// mulElem and divElem are the component-wise vector products the handle
// rules are written in terms of.

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

func divElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() / b.X(), a.Y() / b.Y(), a.Z() / b.Z()}
}
