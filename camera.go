package grip

import "github.com/go-gl/mathgl/mgl32"

// Camera converts between screen pixels and scene coordinates through an
// orthographic projection. The scene's visible area spans [-aspect, aspect]
// horizontally and [-1, 1] vertically at identity modelview, matching the
// unit-rectangle convention objects are authored in.
//
// Camera holds no zoom or pan of its own; the view's root transform is
// passed as the modelview argument, so zooming the view is a scene-graph
// concern, not a projection concern.
type Camera struct {
	viewport   Rect
	projection mgl32.Mat4
}

// NewCamera creates a camera rendering into the given screen viewport.
func NewCamera(viewport Rect) *Camera {
	c := &Camera{}
	c.SetViewport(viewport)
	return c
}

// SetViewport updates the screen viewport and recomputes the projection.
func (c *Camera) SetViewport(viewport Rect) {
	c.viewport = viewport
	ar := c.AspectRatio()
	c.projection = mgl32.Ortho(-ar, ar, -1, 1, -10, 10)
}

// Viewport returns the current screen viewport.
func (c *Camera) Viewport() Rect {
	return c.viewport
}

// AspectRatio returns the viewport width/height ratio.
func (c *Camera) AspectRatio() float32 {
	if c.viewport.Height == 0 {
		return 1
	}
	return c.viewport.Width / c.viewport.Height
}

// Project maps a scene point to screen coordinates. modelview places the
// point in an ancestor frame first (pass mgl32.Ident4() for none). When
// toFramebuffer is true the result stays in GL window coordinates with Y
// growing upward; otherwise Y grows downward from the top of the viewport,
// matching pointer coordinates.
func (c *Camera) Project(scene mgl32.Vec3, modelview mgl32.Mat4, toFramebuffer bool) mgl32.Vec2 {
	win := mgl32.Project(scene, modelview, c.projection,
		int(c.viewport.X), int(c.viewport.Y),
		int(c.viewport.Width), int(c.viewport.Height))
	if toFramebuffer {
		return mgl32.Vec2{win.X(), win.Y()}
	}
	return mgl32.Vec2{win.X(), c.viewport.Y + c.viewport.Height - (win.Y() - c.viewport.Y)}
}

// Unproject maps a screen point (top-left origin, Y down) to scene
// coordinates on the z=0 plane. An optional modelview expresses the result
// in that matrix's local frame, which is how points are placed into the
// view root's space before object-local conversion.
//
// A singular combined matrix yields the zero point; callers building
// matrices through Transform never hit this case thanks to the zero-scale
// clamp.
func (c *Camera) Unproject(screen mgl32.Vec2, modelview ...mgl32.Mat4) mgl32.Vec3 {
	mv := mgl32.Ident4()
	if len(modelview) > 0 {
		mv = modelview[0]
	}
	win := mgl32.Vec3{
		screen.X(),
		c.viewport.Y + c.viewport.Height - (screen.Y() - c.viewport.Y),
		0.5, // z=0 plane sits midway between the ortho near and far planes
	}
	obj, err := mgl32.UnProject(win, mv, c.projection,
		int(c.viewport.X), int(c.viewport.Y),
		int(c.viewport.Width), int(c.viewport.Height))
	if err != nil {
		return mgl32.Vec3{}
	}
	return mgl32.Vec3{obj.X(), obj.Y(), 0}
}
