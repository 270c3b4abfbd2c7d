// Package scene projects the cube group onto the screen and answers which
// cube lies under a screen point.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera describes a perspective camera on the +Z axis looking at the
// origin.
type Camera struct {
	FOV      float32 // vertical, degrees
	Distance float32
	Near     float32
	Far      float32
}

// DefaultCamera matches a 75° lens seven units away from the group.
func DefaultCamera() Camera {
	return Camera{FOV: 75, Distance: 7, Near: 0.1, Far: 1000}
}

// Viewport is the target surface size in pixels.
type Viewport struct {
	Width, Height float32
}

// Projector maps group-local points to screen pixels for a fixed camera,
// viewport and group rotation.
type Projector struct {
	viewport Viewport
	near     float32
	mvp      mgl32.Mat4
}

// NewProjector builds the model-view-projection for a group rotated by
// pitch around X and then yaw around Y.
func NewProjector(cam Camera, vp Viewport, pitch, yaw float32) *Projector {
	aspect := float32(1)
	if vp.Height > 0 {
		aspect = vp.Width / vp.Height
	}

	projection := mgl32.Perspective(mgl32.DegToRad(cam.FOV), aspect, cam.Near, cam.Far)
	view := mgl32.LookAtV(
		mgl32.Vec3{0, 0, cam.Distance},
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{0, 1, 0},
	)
	model := mgl32.HomogRotate3DX(pitch).Mul4(mgl32.HomogRotate3DY(yaw))

	return &Projector{
		viewport: vp,
		near:     cam.Near,
		mvp:      projection.Mul4(view).Mul4(model),
	}
}

// Project returns the screen position of p and its distance along the view
// direction. ok is false for points behind the near plane.
func (pr *Projector) Project(p mgl32.Vec3) (screen mgl32.Vec2, depth float32, ok bool) {
	clip := pr.mvp.Mul4x1(p.Vec4(1))
	w := clip.W()
	if w < pr.near {
		return mgl32.Vec2{}, 0, false
	}

	ndcX := clip.X() / w
	ndcY := clip.Y() / w
	screen = mgl32.Vec2{
		(ndcX + 1) * 0.5 * pr.viewport.Width,
		(1 - ndcY) * 0.5 * pr.viewport.Height,
	}
	return screen, w, true
}
