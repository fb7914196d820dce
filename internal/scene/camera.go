// SPDX-License-Identifier: MIT

// Package scene models the 3D side of the exporter: meshes and curves,
// objects carrying world transforms and materials, and the viewport
// camera whose projection turns world geometry into page coordinates.
package scene

import (
	"cogentcore.org/core/math32"
)

// Camera describes the viewpoint a scene is projected from. It covers
// both perspective and orthographic viewing; the pixel region it maps
// onto doubles as the page size of the emitted document.
//
// Projection uses a bottom-left pixel origin with +Y up, the usual 3D
// viewport convention. Page-space flipping is the renderer's business.
type Camera struct {
	// Pos is the eye location in world space.
	Pos math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// Up is the world-space up reference, normally +Z.
	Up math32.Vector3

	// Ortho selects orthographic projection instead of perspective.
	Ortho bool

	// FOV is the vertical field of view in degrees, perspective only.
	FOV float32

	// OrthoScale is the world-space height of the visible volume in
	// orthographic mode.
	OrthoScale float32

	// Near and Far are the clip plane distances.
	Near, Far float32

	// Width and Height are the viewport region size in pixels.
	Width, Height int

	view     math32.Matrix4
	proj     math32.Matrix4
	viewProj math32.Matrix4
}

// DefaultCamera returns a camera matching a fresh viewport: eye on the
// (+X, -Y, +Z) octant looking at the origin, Z up, 1920x1080 region.
func DefaultCamera() Camera {
	c := Camera{
		Pos:        math32.Vec3(8, -8, 6),
		Target:     math32.Vector3{},
		Up:         math32.Vec3(0, 0, 1),
		FOV:        40,
		OrthoScale: 10,
		Near:       0.1,
		Far:        1000,
		Width:      1920,
		Height:     1080,
	}
	c.UpdateMatrix()
	return c
}

// Aspect returns the region width / height ratio.
func (c *Camera) Aspect() float32 {
	if c.Height == 0 {
		return 1
	}
	return float32(c.Width) / float32(c.Height)
}

// UpdateMatrix recomputes the view, projection and combined matrices.
// Call it after changing any pose or lens field.
func (c *Camera) UpdateMatrix() {
	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(c.Pos, c.Target, c.Up))
	var pose math32.Matrix4
	pose.SetTransform(c.Pos, lookq, math32.Vec3(1, 1, 1))
	view, _ := pose.Inverse()
	c.view = *view

	if c.Ortho {
		h := c.OrthoScale
		w := c.Aspect() * h
		c.proj.SetOrthographic(w, h, c.Near, c.Far)
	} else {
		c.proj.SetPerspective(c.FOV, c.Aspect(), c.Near, c.Far)
	}
	c.viewProj.MulMatrices(&c.proj, &c.view)
}

// Forward returns the unit view direction, from the eye into the scene.
func (c *Camera) Forward() math32.Vector3 {
	return c.Target.Sub(c.Pos).Normal()
}

// Right returns the world direction mapped to screen +X.
func (c *Camera) Right() math32.Vector3 {
	return c.Forward().Cross(c.Up).Normal()
}

// Project maps a world point to region pixel coordinates with a
// bottom-left origin. ok is false when the point cannot be projected,
// which for perspective means it sits at or behind the eye plane.
// Points outside the region still project; callers clip by region
// bounds only where the output format requires it.
func (c *Camera) Project(p math32.Vector3) (pt math32.Vector2, ok bool) {
	clip := math32.Vector4{X: p.X, Y: p.Y, Z: p.Z, W: 1}.MulMatrix4(&c.viewProj)
	if clip.W <= 0 {
		return math32.Vector2{}, false
	}
	ndc := clip.PerspDiv()
	pt.X = (ndc.X + 1) / 2 * float32(c.Width)
	pt.Y = (ndc.Y + 1) / 2 * float32(c.Height)
	return pt, true
}

// ViewRay returns the unit direction from the viewer toward the given
// world point: constant in orthographic mode, through the eye otherwise.
func (c *Camera) ViewRay(p math32.Vector3) math32.Vector3 {
	if c.Ortho {
		return c.Forward()
	}
	return p.Sub(c.Pos).Normal()
}

// Depth returns the painter-sort depth of a world point: euclidean
// distance from the eye in perspective, signed distance along the view
// direction in orthographic mode. Bigger always means farther.
func (c *Camera) Depth(p math32.Vector3) float32 {
	if c.Ortho {
		return p.Sub(c.Pos).Dot(c.Forward())
	}
	return p.Sub(c.Pos).Length()
}

// Distance returns the euclidean distance from the eye to p.
func (c *Camera) Distance(p math32.Vector3) float32 {
	return p.Sub(c.Pos).Length()
}

// DistanceSquared returns the squared euclidean distance from the eye
// to p, for order-only comparisons.
func (c *Camera) DistanceSquared(p math32.Vector3) float32 {
	return p.Sub(c.Pos).LengthSquared()
}

// Orbit rotates the eye around the target about the up axis by the
// given angle in degrees, then refreshes the matrices. Positive angles
// turn counter-clockwise seen from above.
func (c *Camera) Orbit(degrees float32) {
	q := math32.NewQuatAxisAngle(c.Up.Normal(), math32.DegToRad(degrees))
	c.Pos = c.Target.Add(c.Pos.Sub(c.Target).MulQuat(q))
	c.UpdateMatrix()
}
