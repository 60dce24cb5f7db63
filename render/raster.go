package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/amitu/bhumi/camera"
	"github.com/amitu/bhumi/core"
	"github.com/amitu/bhumi/parameter"
	"github.com/amitu/bhumi/physics"
)

// Renderer rasterizes world geometry into a pixel buffer.
//
// Policy (fixed, relied on by tests):
//   - The buffer is cleared to the background color every frame; no
//     compositing with the previous frame.
//   - Depth: per-pixel z-buffer, nearest fragment wins.
//   - Clipping: triangles are clipped exactly against the near plane;
//     fragments past the far plane are discarded per pixel; viewport
//     edges are handled by scanline clamping, with fully-outside
//     triangles culled early.
type Renderer struct {
	zbuf []float64
}

// Background is the frame clear color
var Background = core.RGBA{R: 20, G: 20, B: 30, A: 255}

// New creates a renderer for the standard buffer resolution
func New() *Renderer {
	return &Renderer{
		zbuf: make([]float64, parameter.BufferWidth*parameter.BufferHeight),
	}
}

// Render draws the room and the drone through the camera's matrices
// into buf. The drone body is skipped in first-person mode, where the
// camera sits inside it.
func (r *Renderer) Render(w *physics.World, cam *camera.Camera, buf *core.PixelBuffer) {
	buf.Clear(Background)
	r.resetDepth()

	viewProj := cam.ViewProjection()

	for _, box := range w.Room {
		for _, t := range boxTriangles(box) {
			r.drawTriangle(buf, viewProj, t)
		}
	}

	if cam.Mode() != camera.FirstPerson {
		for _, t := range droneTriangles(&w.Drone) {
			r.drawTriangle(buf, viewProj, t)
		}
		r.drawDroneMarker(buf, viewProj, w.Drone.Position)
	}
}

// resetDepth clears the z-buffer for a new frame
func (r *Renderer) resetDepth() {
	for i := range r.zbuf {
		r.zbuf[i] = math.Inf(1)
	}
}

// drawTriangle runs one triangle through clip, projection, and fill
func (r *Renderer) drawTriangle(buf *core.PixelBuffer, viewProj mgl64.Mat4, t triangle) {
	clip := [3]mgl64.Vec4{
		viewProj.Mul4x1(t.a.Vec4(1)),
		viewProj.Mul4x1(t.b.Vec4(1)),
		viewProj.Mul4x1(t.c.Vec4(1)),
	}

	// Entirely beyond the far plane: discard
	if clip[0].W()-clip[0].Z() < 0 &&
		clip[1].W()-clip[1].Z() < 0 &&
		clip[2].W()-clip[2].Z() < 0 {
		return
	}

	// Exact near-plane clip; yields 0 to 4 vertices
	poly := clipNear(clip[:])
	if len(poly) < 3 {
		return
	}

	// Perspective divide and viewport transform
	screen := make([]screenVert, len(poly))
	for i, v := range poly {
		screen[i] = toScreen(v, buf.Width(), buf.Height())
	}

	if outsideViewport(screen, buf.Width(), buf.Height()) {
		return
	}

	// Fan triangulation of the clipped polygon
	for i := 1; i+1 < len(screen); i++ {
		r.fillTriangle(buf, screen[0], screen[i], screen[i+1], t.color)
	}
}

// screenVert is a projected vertex: pixel coordinates plus NDC depth
type screenVert struct {
	x, y  float64
	depth float64
}

// toScreen applies the viewport transform:
// x' = (ndc_x+1)/2·width, y' = (1−ndc_y)/2·height
func toScreen(v mgl64.Vec4, width, height int) screenVert {
	invW := 1.0 / v.W()
	return screenVert{
		x:     (v.X()*invW + 1) * 0.5 * float64(width),
		y:     (1 - v.Y()*invW) * 0.5 * float64(height),
		depth: v.Z() * invW,
	}
}

// outsideViewport reports whether every vertex lies beyond the same
// viewport edge, which makes the polygon trivially invisible
func outsideViewport(verts []screenVert, width, height int) bool {
	left, right, top, bottom := true, true, true, true
	for _, v := range verts {
		left = left && v.x < 0
		right = right && v.x >= float64(width)
		top = top && v.y < 0
		bottom = bottom && v.y >= float64(height)
	}
	return left || right || top || bottom
}

// fillTriangle rasterizes one screen-space triangle with a z-buffer
// test. Depth is barycentric-interpolated NDC z; fragments past the
// far plane (depth > 1) are discarded, which completes far clipping
// per pixel.
func (r *Renderer) fillTriangle(buf *core.PixelBuffer, a, b, c screenVert, col core.RGBA) {
	area := (b.x-a.x)*(c.y-a.y) - (c.x-a.x)*(b.y-a.y)
	if math.Abs(area) < 1e-12 {
		return
	}
	invArea := 1.0 / area

	minX := int(math.Floor(min3(a.x, b.x, c.x)))
	maxX := int(math.Ceil(max3(a.x, b.x, c.x)))
	minY := int(math.Floor(min3(a.y, b.y, c.y)))
	maxY := int(math.Ceil(max3(a.y, b.y, c.y)))

	// Scanline clamp against the viewport
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > buf.Width()-1 {
		maxX = buf.Width() - 1
	}
	if maxY > buf.Height()-1 {
		maxY = buf.Height() - 1
	}

	for y := minY; y <= maxY; y++ {
		py := float64(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float64(x) + 0.5

			w0 := ((b.x-px)*(c.y-py) - (c.x-px)*(b.y-py)) * invArea
			w1 := ((c.x-px)*(a.y-py) - (a.x-px)*(c.y-py)) * invArea
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			depth := w0*a.depth + w1*b.depth + w2*c.depth
			if depth > 1 {
				continue
			}

			idx := y*buf.Width() + x
			if depth >= r.zbuf[idx] {
				continue
			}
			r.zbuf[idx] = depth
			buf.Set(x, y, col)
		}
	}
}

// drawDroneMarker overlays a small cross at the drone's screen
// position so the body stays visible at distance
func (r *Renderer) drawDroneMarker(buf *core.PixelBuffer, viewProj mgl64.Mat4, pos mgl64.Vec3) {
	clip := viewProj.Mul4x1(pos.Vec4(1))
	if clip.W() <= 0 {
		return
	}
	s := toScreen(clip, buf.Width(), buf.Height())
	x, y := int(s.x), int(s.y)

	const size = 3
	marker := core.RGBA{R: 255, G: 60, B: 60, A: 255}
	buf.DrawLine(x-size, y, x+size, y, marker)
	buf.DrawLine(x, y-size, x, y+size, marker)
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
