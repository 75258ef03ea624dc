package grip

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// View zoom limits. Resize maps a 0-100 slider onto [viewMinScale,
// viewMaxScale] quadratically so fine zoom steps cluster at the small end.
const (
	viewMinScale     float32 = 0.25
	viewMaxScale     float32 = 2.25
	defaultViewScale float32 = 0.75 // slider position 50

	// Pan is clamped to ±panBorderFactor times the current zoom so the
	// scene can never be pushed entirely off screen.
	panBorderFactor float32 = 1.5
)

// scrollAnim holds active scroll-to tweens for the view pan X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// View is the controller for one manipulation surface: a camera, a root
// transform carrying the view's zoom and pan, the active workspace, the
// objects it manages, and the overlay decorations the session drives.
//
// At most one session is active per view; Begin ends any prior one.
type View struct {
	Mode   ViewMode
	Camera *Camera

	// Root is the view's own transform (zoom in Scale, pan in
	// Translation), applied as the modelview for projection.
	Root Transform

	// Workspace filters which objects are pickable.
	Workspace int

	// Current is the single current object, kept sticky by Pick.
	Current *Object

	// OutputAspect is the aspect ratio of the output frame, used by the
	// Fit action. Defaults to the camera's viewport aspect.
	OutputAspect float32

	Selection Selection
	Overlay   OverlayState

	objects       []*Object
	session       *Session
	menuRequested bool
	scroll        *scrollAnim
}

// NewView creates a geometry view with the default zoom.
func NewView(camera *Camera) *View {
	root := NewTransform()
	root.Scale = mgl32.Vec3{defaultViewScale, defaultViewScale, 1}
	return &View{
		Mode:         ViewGeometry,
		Camera:       camera,
		Root:         root,
		OutputAspect: camera.AspectRatio(),
	}
}

// AddObject registers an object with the view.
func (v *View) AddObject(o *Object) {
	v.objects = append(v.objects, o)
}

// RemoveObject unregisters an object. The current object and selection are
// cleared of it as well.
func (v *View) RemoveObject(o *Object) {
	for i, obj := range v.objects {
		if obj == o {
			v.objects = append(v.objects[:i], v.objects[i+1:]...)
			break
		}
	}
	v.Selection.Remove(o)
	if v.Current == o {
		v.Current = nil
	}
}

// Objects returns the view's object list. The returned slice MUST NOT be
// mutated.
func (v *View) Objects() []*Object {
	return v.objects
}

// FindObject resolves an ObjectID to a registered object, or nil.
func (v *View) FindObject(id ObjectID) *Object {
	for _, o := range v.objects {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// Unproject maps a screen point into the view's scene space, accounting
// for the view's zoom and pan.
func (v *View) Unproject(screen mgl32.Vec2) mgl32.Vec3 {
	return v.Camera.Unproject(screen, v.Root.Matrix())
}

// TakeMenuRequest reports whether a pick requested the context menu since
// the last call, clearing the request.
func (v *View) TakeMenuRequest() bool {
	r := v.menuRequested
	v.menuRequested = false
	return r
}

// Resize sets the view zoom from a 0-100 slider position.
func (v *View) Resize(percent int) {
	z := mgl32.Clamp(0.01*float32(percent), 0, 1)
	z *= z
	z *= viewMaxScale - viewMinScale
	z += viewMinScale
	v.Root.Scale = mgl32.Vec3{z, z, 1}
	v.clampPan()
}

// Size returns the current zoom as a 0-100 slider position, the inverse of
// Resize.
func (v *View) Size() int {
	z := (v.Root.Scale.X() - viewMinScale) / (viewMaxScale - viewMinScale)
	return int(sqrt32(z) * 100)
}

// ScrollTo animates the view pan to center on the given scene position.
func (v *View) ScrollTo(x, y float32, duration float32, easeFn ease.TweenFunc) {
	v.scroll = &scrollAnim{
		tweenX: gween.New(v.Root.Translation.X(), -x*v.Root.Scale.X(), duration, easeFn),
		tweenY: gween.New(v.Root.Translation.Y(), -y*v.Root.Scale.Y(), duration, easeFn),
	}
}

// ScrollToObject animates the view pan to center on an object.
func (v *View) ScrollToObject(o *Object, duration float32, easeFn ease.TweenFunc) {
	v.ScrollTo(o.Transform.Translation.X(), o.Transform.Translation.Y(), duration, easeFn)
}

// Update advances scroll animations and keeps the pan inside its borders.
// Call once per frame with the frame delta in seconds.
func (v *View) Update(dt float32) {
	if v.scroll != nil {
		if !v.scroll.doneX {
			val, done := v.scroll.tweenX.Update(dt)
			v.Root.Translation = mgl32.Vec3{val, v.Root.Translation.Y(), 0}
			v.scroll.doneX = done
		}
		if !v.scroll.doneY {
			val, done := v.scroll.tweenY.Update(dt)
			v.Root.Translation = mgl32.Vec3{v.Root.Translation.X(), val, 0}
			v.scroll.doneY = done
		}
		if v.scroll.doneX && v.scroll.doneY {
			v.scroll = nil
		}
	}
	v.clampPan()
}

// clampPan restricts the view pan to the acceptable area around the scene.
func (v *View) clampPan() {
	bx := v.Root.Scale.X() * panBorderFactor
	by := v.Root.Scale.Y() * panBorderFactor
	v.Root.Translation = mgl32.Vec3{
		mgl32.Clamp(v.Root.Translation.X(), -bx, bx),
		mgl32.Clamp(v.Root.Translation.Y(), -by, by),
		0,
	}
}
