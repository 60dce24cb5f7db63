package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/amitu/bhumi/camera"
	"github.com/amitu/bhumi/core"
	"github.com/amitu/bhumi/physics"
)

// testCamera returns a camera at (0,2,-5) looking straight down +Z
func testCamera(t *testing.T) *camera.Camera {
	t.Helper()
	cam := camera.New()
	cam.LookAt(mgl64.Vec3{0, 2, -5}, mgl64.Vec3{0, 2, 10})
	return cam
}

func countNonBackground(buf *core.PixelBuffer) int {
	n := 0
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			if c, _ := buf.Get(x, y); c != core.RGBABlack {
				n++
			}
		}
	}
	return n
}

func TestTriangleBeyondFarWritesNothing(t *testing.T) {
	cam := testCamera(t)
	buf := core.NewPixelBuffer()
	r := New()
	r.resetDepth()

	// Camera is near z=-5; far plane is 100. z=+200 is well beyond it.
	tri := triangle{
		a:     mgl64.Vec3{-50, -50, 200},
		b:     mgl64.Vec3{50, -50, 200},
		c:     mgl64.Vec3{0, 80, 200},
		color: core.RGBAWhite,
	}
	r.drawTriangle(buf, cam.ViewProjection(), tri)

	if n := countNonBackground(buf); n != 0 {
		t.Errorf("Expected no pixels beyond the far plane, got %d", n)
	}
}

func TestTriangleBehindCameraWritesNothing(t *testing.T) {
	cam := testCamera(t)
	buf := core.NewPixelBuffer()
	r := New()
	r.resetDepth()

	tri := triangle{
		a:     mgl64.Vec3{-5, 0, -20},
		b:     mgl64.Vec3{5, 0, -20},
		c:     mgl64.Vec3{0, 5, -20},
		color: core.RGBAWhite,
	}
	r.drawTriangle(buf, cam.ViewProjection(), tri)

	if n := countNonBackground(buf); n != 0 {
		t.Errorf("Expected no pixels behind the camera, got %d", n)
	}
}

// A triangle straddling the near plane must light only its in-frustum
// portion. The triangle lies in a ground-like plane one meter below the
// eye, so every surviving pixel must sit below the horizon row; the
// behind-camera portion would project above it.
func TestNearStraddlingTriangleClipsExactly(t *testing.T) {
	cam := testCamera(t)
	buf := core.NewPixelBuffer()
	r := New()
	r.resetDepth()

	tri := triangle{
		a:     mgl64.Vec3{-8, 1, -8}, // behind the camera at z=-5
		b:     mgl64.Vec3{8, 1, -8},
		c:     mgl64.Vec3{0, 1, 20}, // ahead of it
		color: core.RGBAWhite,
	}
	r.drawTriangle(buf, cam.ViewProjection(), tri)

	written := 0
	horizon := buf.Height() / 2
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			if c, _ := buf.Get(x, y); c != core.RGBABlack {
				written++
				if y < horizon {
					t.Fatalf("Pixel (%d, %d) above the horizon came from the clipped portion", x, y)
				}
			}
		}
	}
	if written == 0 {
		t.Error("Expected the in-frustum portion to write pixels")
	}
}

func TestLookAtPointLandsInsideViewport(t *testing.T) {
	cam := testCamera(t)
	buf := core.NewPixelBuffer()

	// Point on the look-at ray, inside [near, far]
	p := mgl64.Vec3{0, 2, 5}
	clip := cam.ViewProjection().Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		t.Fatal("Expected look-at point in front of the camera")
	}

	s := toScreen(clip, buf.Width(), buf.Height())
	if s.x < 0 || s.x >= float64(buf.Width()) || s.y < 0 || s.y >= float64(buf.Height()) {
		t.Errorf("Expected pixel inside viewport, got (%.1f, %.1f)", s.x, s.y)
	}
	// Straight ahead means dead center
	if s.x < float64(buf.Width())*0.45 || s.x > float64(buf.Width())*0.55 {
		t.Errorf("Expected look-at point near screen center, got x=%.1f", s.x)
	}
}

func TestZBufferNearestFragmentWins(t *testing.T) {
	cam := testCamera(t)
	buf := core.NewPixelBuffer()
	r := New()
	r.resetDepth()

	blue := core.RGBA{R: 0, G: 0, B: 255, A: 255}
	red := core.RGBA{R: 255, G: 0, B: 0, A: 255}

	near := triangle{
		a: mgl64.Vec3{-3, -1, 2}, b: mgl64.Vec3{3, -1, 2}, c: mgl64.Vec3{0, 5, 2},
		color: blue,
	}
	far := triangle{
		a: mgl64.Vec3{-3, -1, 10}, b: mgl64.Vec3{3, -1, 10}, c: mgl64.Vec3{0, 5, 10},
		color: red,
	}

	// Draw the near triangle first; the far one must not overwrite it
	r.drawTriangle(buf, cam.ViewProjection(), near)
	r.drawTriangle(buf, cam.ViewProjection(), far)

	if c, _ := buf.Get(buf.Width()/2, buf.Height()/2); c != blue {
		t.Errorf("Expected nearest fragment at center, got %+v", c)
	}
}

func TestRenderClearsPriorFrame(t *testing.T) {
	w := physics.NewWorld()
	cam := camera.New()
	cam.UpdateFromBody(w)
	buf := core.NewPixelBuffer()
	r := New()

	buf.Clear(core.RGBAWhite)
	r.Render(w, cam, buf)

	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			if c, _ := buf.Get(x, y); c == core.RGBAWhite {
				t.Fatalf("Stale pixel survived the clear at (%d, %d)", x, y)
			}
		}
	}
}

func TestRenderDrawsScene(t *testing.T) {
	w := physics.NewWorld()
	cam := camera.New()
	cam.UpdateFromBody(w)
	buf := core.NewPixelBuffer()
	r := New()

	r.Render(w, cam, buf)

	n := 0
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			if c, _ := buf.Get(x, y); c != Background {
				n++
			}
		}
	}
	// The room encloses the camera, so most of the frame is geometry
	if n < buf.Width()*buf.Height()/2 {
		t.Errorf("Expected the room to fill most of the frame, wrote %d pixels", n)
	}
}
