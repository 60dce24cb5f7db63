package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/amitu/bhumi/core"
)

// Box is an axis-aligned static collision/render primitive. Immutable
// after World construction.
type Box struct {
	Name     string
	Min, Max mgl64.Vec3
	Color    core.RGBA
}

// Contact describes one sphere-box intersection found by the narrow
// phase. Normal points from the box surface toward the sphere center.
type Contact struct {
	Box         int // index into World.Room, fixes resolution order
	Normal      mgl64.Vec3
	Penetration float64
}

// closestPoint returns the point on the box nearest to p
func (b Box) closestPoint(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		clamp(p.X(), b.Min.X(), b.Max.X()),
		clamp(p.Y(), b.Min.Y(), b.Max.Y()),
		clamp(p.Z(), b.Min.Z(), b.Max.Z()),
	}
}

// Distance returns the separation between the sphere surface and the
// box; negative means penetration
func (b Box) Distance(center mgl64.Vec3, radius float64) float64 {
	return center.Sub(b.closestPoint(center)).Len() - radius
}

// sphereBoxContact runs the narrow phase for a sphere against one box.
// Returns the contact and whether the two intersect.
func sphereBoxContact(boxIndex int, b Box, center mgl64.Vec3, radius float64) (Contact, bool) {
	closest := b.closestPoint(center)
	delta := center.Sub(closest)
	distSq := delta.Dot(delta)

	if distSq >= radius*radius {
		return Contact{}, false
	}

	if distSq > 0 {
		dist := math.Sqrt(distSq)
		return Contact{
			Box:         boxIndex,
			Normal:      delta.Mul(1.0 / dist),
			Penetration: radius - dist,
		}, true
	}

	// Center inside the box: push out along the axis of least
	// penetration relative to the box faces
	normal, pen := deepestFaceNormal(b, center)
	return Contact{Box: boxIndex, Normal: normal, Penetration: pen + radius}, true
}

// deepestFaceNormal finds the nearest box face for a point inside the
// box and returns its outward normal plus the distance to that face
func deepestFaceNormal(b Box, p mgl64.Vec3) (mgl64.Vec3, float64) {
	best := p.X() - b.Min.X()
	normal := mgl64.Vec3{-1, 0, 0}

	if d := b.Max.X() - p.X(); d < best {
		best = d
		normal = mgl64.Vec3{1, 0, 0}
	}
	if d := p.Y() - b.Min.Y(); d < best {
		best = d
		normal = mgl64.Vec3{0, -1, 0}
	}
	if d := b.Max.Y() - p.Y(); d < best {
		best = d
		normal = mgl64.Vec3{0, 1, 0}
	}
	if d := p.Z() - b.Min.Z(); d < best {
		best = d
		normal = mgl64.Vec3{0, 0, -1}
	}
	if d := b.Max.Z() - p.Z(); d < best {
		best = d
		normal = mgl64.Vec3{0, 0, 1}
	}
	return normal, best
}

// rayBoxEntry intersects the segment origin + t*dir, t ∈ [0,1], with
// the box using the slab method. Returns the entry parameter and
// whether the segment hits at all.
func rayBoxEntry(origin, dir mgl64.Vec3, b Box) (float64, bool) {
	tEnter, tExit := 0.0, 1.0
	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			if origin[i] < b.Min[i] || origin[i] > b.Max[i] {
				return 0, false
			}
			continue
		}
		inv := 1.0 / dir[i]
		t0 := (b.Min[i] - origin[i]) * inv
		t1 := (b.Max[i] - origin[i]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tEnter {
			tEnter = t0
		}
		if t1 < tExit {
			tExit = t1
		}
		if tEnter > tExit {
			return 0, false
		}
	}
	return tEnter, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
