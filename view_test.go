package grip

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween/ease"
)

func TestViewResizeBounds(t *testing.T) {
	v := newTestView()

	v.Resize(0)
	if !approxEqual(v.Root.Scale.X(), viewMinScale, epsilon) {
		t.Errorf("Resize(0) scale = %g, want %g", v.Root.Scale.X(), viewMinScale)
	}
	v.Resize(100)
	if !approxEqual(v.Root.Scale.X(), viewMaxScale, epsilon) {
		t.Errorf("Resize(100) scale = %g, want %g", v.Root.Scale.X(), viewMaxScale)
	}
	v.Resize(50)
	if !approxEqual(v.Root.Scale.X(), defaultViewScale, epsilon) {
		t.Errorf("Resize(50) scale = %g, want %g", v.Root.Scale.X(), defaultViewScale)
	}

	// Out-of-range slider positions clamp.
	v.Resize(250)
	if !approxEqual(v.Root.Scale.X(), viewMaxScale, epsilon) {
		t.Errorf("Resize(250) scale = %g, want %g", v.Root.Scale.X(), viewMaxScale)
	}
}

func TestViewSizeInvertsResize(t *testing.T) {
	v := newTestView()
	for _, p := range []int{0, 25, 50, 100} {
		v.Resize(p)
		if got := v.Size(); got != p {
			t.Errorf("Size after Resize(%d) = %d", p, got)
		}
	}
}

func TestViewDefaultZoom(t *testing.T) {
	v := NewView(NewCamera(Rect{Width: 200, Height: 200}))
	if got := v.Size(); got != 50 {
		t.Errorf("default Size = %d, want 50", got)
	}
	if !approxEqual(v.OutputAspect, 1, epsilon) {
		t.Errorf("OutputAspect = %g, want the camera aspect", v.OutputAspect)
	}
}

func TestViewPanClamp(t *testing.T) {
	v := newTestView()
	v.Resize(50) // scale 0.75, border ±1.125

	v.Root.Translation = mgl32.Vec3{5, -5, 0}
	v.Update(0)

	border := defaultViewScale * panBorderFactor
	if !vecApproxEqual(v.Root.Translation, mgl32.Vec3{border, -border, 0}, epsilon) {
		t.Errorf("Translation = %v, want clamped to ±%g", v.Root.Translation, border)
	}
}

func TestViewScrollTo(t *testing.T) {
	v := newTestView()
	v.Resize(50)

	v.ScrollTo(1, 0.5, 0.5, ease.Linear)
	for i := 0; i < 10; i++ {
		v.Update(0.1)
	}

	// Centering on scene (1, 0.5) means panning to -(1, 0.5) times zoom.
	want := mgl32.Vec3{-defaultViewScale, -0.5 * defaultViewScale, 0}
	if !vecApproxEqual(v.Root.Translation, want, epsilon) {
		t.Errorf("Translation = %v, want %v", v.Root.Translation, want)
	}
	if v.scroll != nil {
		t.Error("scroll animation not released after completion")
	}
}

func TestViewScrollToObject(t *testing.T) {
	v := newTestView()
	v.Resize(50)
	obj := NewObject("a", 1)
	obj.Transform.Translation = mgl32.Vec3{0.4, 0.2, 0}
	v.AddObject(obj)

	v.ScrollToObject(obj, 0.25, ease.Linear)
	for i := 0; i < 10; i++ {
		v.Update(0.1)
	}

	want := mgl32.Vec3{-0.4 * defaultViewScale, -0.2 * defaultViewScale, 0}
	if !vecApproxEqual(v.Root.Translation, want, epsilon) {
		t.Errorf("Translation = %v, want %v", v.Root.Translation, want)
	}
}

func TestViewUnprojectThroughRoot(t *testing.T) {
	v := NewView(NewCamera(Rect{Width: 200, Height: 200}))
	v.Resize(50)

	// The zoomed-out root makes the right viewport edge reach past scene 1.
	got := v.Unproject(mgl32.Vec2{200, 100})
	want := mgl32.Vec3{1 / defaultViewScale, 0, 0}
	if !vecApproxEqual(got, want, epsilon) {
		t.Errorf("Unproject = %v, want %v", got, want)
	}
}

func TestViewAddRemoveObject(t *testing.T) {
	v := newTestView()
	a := NewObject("a", 1)
	b := NewObject("b", 1)
	v.AddObject(a)
	v.AddObject(b)

	if v.FindObject(a.ID) != a || v.FindObject(b.ID) != b {
		t.Fatal("FindObject failed to resolve registered objects")
	}

	v.Current = a
	v.Selection.Add(a)
	v.RemoveObject(a)

	if len(v.Objects()) != 1 || v.Objects()[0] != b {
		t.Errorf("Objects = %v, want only b", v.Objects())
	}
	if v.FindObject(a.ID) != nil {
		t.Error("removed object still resolvable")
	}
	if v.Current != nil {
		t.Error("removed object still current")
	}
	if v.Selection.Contains(a) {
		t.Error("removed object still selected")
	}
}
