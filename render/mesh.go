package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/amitu/bhumi/core"
	"github.com/amitu/bhumi/parameter"
	"github.com/amitu/bhumi/physics"
)

// triangle is one world-space face ready for rasterization
type triangle struct {
	a, b, c mgl64.Vec3
	color   core.RGBA
}

// lightDir is the fixed directional light used for flat shading,
// pointing down and slightly forward
var lightDir = mgl64.Vec3{0.3, -0.85, 0.44}.Normalize()

// shade flat-shades a base color by the face normal. Faces are lit
// from either side since room interiors are seen from within.
func shade(base core.RGBA, normal mgl64.Vec3) core.RGBA {
	d := normal.Dot(lightDir)
	if d < 0 {
		d = -d
	}
	return base.Scale(0.55 + 0.45*d)
}

// boxTriangles expands an axis-aligned box into 12 flat-shaded
// triangles (two per face)
func boxTriangles(b physics.Box) []triangle {
	lo, hi := b.Min, b.Max
	corners := [8]mgl64.Vec3{
		{lo.X(), lo.Y(), lo.Z()},
		{hi.X(), lo.Y(), lo.Z()},
		{hi.X(), hi.Y(), lo.Z()},
		{lo.X(), hi.Y(), lo.Z()},
		{lo.X(), lo.Y(), hi.Z()},
		{hi.X(), lo.Y(), hi.Z()},
		{hi.X(), hi.Y(), hi.Z()},
		{lo.X(), hi.Y(), hi.Z()},
	}

	faces := [6]struct {
		idx    [4]int
		normal mgl64.Vec3
	}{
		{[4]int{0, 1, 2, 3}, mgl64.Vec3{0, 0, -1}},
		{[4]int{5, 4, 7, 6}, mgl64.Vec3{0, 0, 1}},
		{[4]int{4, 0, 3, 7}, mgl64.Vec3{-1, 0, 0}},
		{[4]int{1, 5, 6, 2}, mgl64.Vec3{1, 0, 0}},
		{[4]int{4, 5, 1, 0}, mgl64.Vec3{0, -1, 0}},
		{[4]int{3, 2, 6, 7}, mgl64.Vec3{0, 1, 0}},
	}

	tris := make([]triangle, 0, 12)
	for _, f := range faces {
		col := shade(b.Color, f.normal)
		p0, p1, p2, p3 := corners[f.idx[0]], corners[f.idx[1]], corners[f.idx[2]], corners[f.idx[3]]
		tris = append(tris,
			triangle{p0, p1, p2, col},
			triangle{p0, p2, p3, col},
		)
	}
	return tris
}

// droneBase is the drone hull color
var droneBase = core.RGBA{R: 220, G: 60, B: 50, A: 255}

// droneTriangles builds the drone's visual hull: an octahedron scaled
// to the bounding radius, squashed on Y, rotated by the body attitude
func droneTriangles(body *physics.RigidBody) []triangle {
	r := parameter.DroneRadius
	local := [6]mgl64.Vec3{
		{r, 0, 0},
		{-r, 0, 0},
		{0, r * 0.5, 0},
		{0, -r * 0.5, 0},
		{0, 0, r},
		{0, 0, -r},
	}

	rot := attitude(body.Rotation)
	var world [6]mgl64.Vec3
	for i, v := range local {
		world[i] = body.Position.Add(rot.Mul3x1(v))
	}

	// Octahedron faces as (top/bottom, ±X, ±Z) fans
	faces := [8][3]int{
		{2, 4, 0}, {2, 0, 5}, {2, 5, 1}, {2, 1, 4},
		{3, 0, 4}, {3, 5, 0}, {3, 1, 5}, {3, 4, 1},
	}

	tris := make([]triangle, 0, 8)
	for _, f := range faces {
		p0, p1, p2 := world[f[0]], world[f[1]], world[f[2]]
		normal := p1.Sub(p0).Cross(p2.Sub(p0))
		if l := normal.Len(); l > 1e-12 {
			normal = normal.Mul(1 / l)
		}
		tris = append(tris, triangle{p0, p1, p2, shade(droneBase, normal)})
	}
	return tris
}

// attitude converts pitch/yaw/roll to a world rotation matrix,
// yaw-first
func attitude(rotation mgl64.Vec3) mgl64.Mat3 {
	return mgl64.Rotate3DY(rotation.Y()).
		Mul3(mgl64.Rotate3DX(rotation.X())).
		Mul3(mgl64.Rotate3DZ(rotation.Z()))
}
