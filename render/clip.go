package render

import "github.com/go-gl/mathgl/mgl64"

// nearDist evaluates the near-plane function z + w for a clip-space
// vertex; non-negative means the vertex is on the visible side
func nearDist(v mgl64.Vec4) float64 {
	return v.Z() + v.W()
}

// clipNear clips a clip-space polygon against the near plane
// (Sutherland–Hodgman against the single plane z = −w). A triangle
// comes back with 0, 3, or 4 vertices.
func clipNear(poly []mgl64.Vec4) []mgl64.Vec4 {
	out := make([]mgl64.Vec4, 0, len(poly)+1)

	for i := range poly {
		cur := poly[i]
		next := poly[(i+1)%len(poly)]

		curIn := nearDist(cur) >= 0
		nextIn := nearDist(next) >= 0

		if curIn {
			out = append(out, cur)
		}
		if curIn != nextIn {
			out = append(out, intersectNear(cur, next))
		}
	}
	return out
}

// intersectNear returns the point where the edge a→b crosses the near
// plane
func intersectNear(a, b mgl64.Vec4) mgl64.Vec4 {
	da := nearDist(a)
	db := nearDist(b)
	t := da / (da - db)
	return a.Add(b.Sub(a).Mul(t))
}
