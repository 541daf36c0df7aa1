// This file is part of Telequad.
//
// Telequad is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Telequad is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Telequad.  If not, see <https://www.gnu.org/licenses/>.

package software_test

import (
	"math"
	"testing"

	"github.com/jetplume/telequad/compositor"
	"github.com/jetplume/telequad/compositor/software"
	"github.com/jetplume/telequad/curated"
	"github.com/jetplume/telequad/frame"
	"github.com/jetplume/telequad/test"
)

func TestGammaEncode(t *testing.T) {
	// the boundaries are exact
	test.EquateFloat64(t, software.GammaEncode(0.0), 0.0, 0.0)
	test.EquateFloat64(t, software.GammaEncode(1.0), 1.0, 0.0)

	// the transform is pow(v, 1/2.2), per channel
	test.EquateFloat64(t, software.GammaEncode(0.5), math.Pow(0.5, 1.0/2.2), 1e-12)
	test.EquateFloat64(t, software.GammaEncode(0.5), 0.7297, 1e-4)
	test.EquateFloat64(t, software.GammaEncode(0.25), math.Pow(0.25, 1.0/2.2), 1e-12)

	// inputs are clamped to [0, 1]
	test.EquateFloat64(t, software.GammaEncode(-0.5), 0.0, 0.0)
	test.EquateFloat64(t, software.GammaEncode(1.5), 1.0, 0.0)
}

func TestMidGrayBlit(t *testing.T) {
	// a 2x2 frame of pure mid-gray blitted to a 4x4 surface. every covered
	// pixel must come out gamma encoded with alpha fully opaque
	f := frame.NewFrame(2, 2)
	f.Fill(128, 128, 128)

	rnd := software.NewRenderer(2, 2, 4, 4)
	test.ExpectedSuccess(t, rnd.UpdateFrame(f))
	test.ExpectedSuccess(t, rnd.Blit())

	expected := software.GammaEncode(128.0 / 255.0)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r, g, b, a := rnd.Pixel(x, y)
			test.EquateFloat64(t, float64(r), expected, 1e-6)
			test.EquateFloat64(t, float64(g), expected, 1e-6)
			test.EquateFloat64(t, float64(b), expected, 1e-6)
			test.Equate(t, a, float32(1.0))
		}
	}

	// the well-known value for gamma-encoded mid-gray
	test.EquateFloat64(t, expected, 0.7297, 1e-2)
}

func TestBlitIdempotence(t *testing.T) {
	f := frame.NewFrame(2, 2)
	f.SetPixel(0, 0, 255, 0, 0)
	f.SetPixel(1, 0, 0, 255, 0)
	f.SetPixel(0, 1, 0, 0, 255)
	f.SetPixel(1, 1, 128, 128, 128)

	rnd := software.NewRenderer(2, 2, 8, 8)

	test.ExpectedSuccess(t, rnd.UpdateFrame(f))
	test.ExpectedSuccess(t, rnd.Blit())

	var first [8][8][4]float32
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			first[y][x][0], first[y][x][1], first[y][x][2], first[y][x][3] = rnd.Pixel(x, y)
		}
	}

	// updating with the identical frame produces bit-identical output
	test.ExpectedSuccess(t, rnd.UpdateFrame(f))
	test.ExpectedSuccess(t, rnd.Blit())

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			r, g, b, a := rnd.Pixel(x, y)
			test.Equate(t, r, first[y][x][0])
			test.Equate(t, g, first[y][x][1])
			test.Equate(t, b, first[y][x][2])
			test.Equate(t, a, first[y][x][3])
		}
	}
}

func TestDimensionMismatch(t *testing.T) {
	f := frame.NewFrame(2, 2)
	f.Fill(200, 200, 200)

	rnd := software.NewRenderer(2, 2, 4, 4)
	test.ExpectedSuccess(t, rnd.UpdateFrame(f))
	test.ExpectedSuccess(t, rnd.Blit())
	r0, _, _, _ := rnd.Pixel(0, 0)

	// a frame of the wrong size is rejected...
	wrong := frame.NewFrame(3, 2)
	wrong.Fill(0, 0, 0)
	err := rnd.UpdateFrame(wrong)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, compositor.DimensionMismatch), true)

	// ...and the texture contents are not mutated
	test.ExpectedSuccess(t, rnd.Blit())
	r1, _, _, _ := rnd.Pixel(0, 0)
	test.Equate(t, r1, r0)
}

func TestMalformedOverlay(t *testing.T) {
	rnd := software.NewRenderer(2, 2, 4, 4)

	// five vertices is not a multiple of three
	verts := make([]compositor.ColorVertex, 5)
	for i := range verts {
		verts[i] = compositor.ColorVertex{X: 0, Y: 0, R: 1, G: 1, B: 1}
	}
	err := rnd.DrawOverlay(verts, compositor.Triangles)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, compositor.MalformedVertexList), true)

	// and no draw was issued
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r, g, b, a := rnd.Pixel(x, y)
			test.Equate(t, r, float32(0.0))
			test.Equate(t, g, float32(0.0))
			test.Equate(t, b, float32(0.0))
			test.Equate(t, a, float32(0.0))
		}
	}
}

func TestTriangleInterpolation(t *testing.T) {
	// a triangle with red, green and blue corners. at the centroid the
	// interpolated color is the average of the three
	rnd := software.NewRenderer(2, 2, 64, 64)

	verts := []compositor.ColorVertex{
		{X: -0.9, Y: -0.9, R: 1, G: 0, B: 0},
		{X: 0.9, Y: -0.9, R: 0, G: 1, B: 0},
		{X: 0.0, Y: 0.9, R: 0, G: 0, B: 1},
	}
	test.ExpectedSuccess(t, rnd.DrawOverlay(verts, compositor.Triangles))

	// centroid of the three corners in NDC is (0, -0.3)
	cxNDC := float64(verts[0].X+verts[1].X+verts[2].X) / 3.0
	cyNDC := float64(verts[0].Y+verts[1].Y+verts[2].Y) / 3.0
	cx := int((cxNDC*0.5 + 0.5) * 64)
	cy := int((cyNDC*0.5 + 0.5) * 64)

	r, g, b, a := rnd.Pixel(cx, cy)
	test.EquateFloat64(t, float64(r), 1.0/3.0, 0.05)
	test.EquateFloat64(t, float64(g), 1.0/3.0, 0.05)
	test.EquateFloat64(t, float64(b), 1.0/3.0, 0.05)
	test.Equate(t, a, float32(1.0))
}

func TestOverlayHasNoGamma(t *testing.T) {
	// a quarter-intensity triangle covering the middle of the surface. the
	// sampled color must be the authored color, not a gamma encoded one
	rnd := software.NewRenderer(2, 2, 32, 32)

	verts := []compositor.ColorVertex{
		{X: -0.8, Y: -0.8, R: 0.25, G: 0.25, B: 0.25},
		{X: 0.8, Y: -0.8, R: 0.25, G: 0.25, B: 0.25},
		{X: 0.0, Y: 0.8, R: 0.25, G: 0.25, B: 0.25},
	}
	test.ExpectedSuccess(t, rnd.DrawOverlay(verts, compositor.Triangles))

	r, _, _, _ := rnd.Pixel(16, 14)
	test.EquateFloat64(t, float64(r), 0.25, 1e-6)

	// gamma encoding the same value would have given something much larger
	test.Equate(t, software.GammaEncode(0.25) > 0.5, true)
}

func TestCompositeOrder(t *testing.T) {
	// overlays draw after the blit, in caller order. later draws win
	f := frame.NewFrame(2, 2)
	f.Fill(0, 0, 0)

	rnd := software.NewRenderer(2, 2, 16, 16)

	center := []compositor.ColorVertex{
		{X: -1, Y: -1, R: 1, G: 0, B: 0},
		{X: 1, Y: -1, R: 1, G: 0, B: 0},
		{X: 0, Y: 1, R: 1, G: 0, B: 0},
	}
	onTop := []compositor.ColorVertex{
		{X: -1, Y: -1, R: 0, G: 1, B: 0},
		{X: 1, Y: -1, R: 0, G: 1, B: 0},
		{X: 0, Y: 1, R: 0, G: 1, B: 0},
	}

	err := rnd.Composite(f,
		compositor.Overlay{Vertices: center, Topology: compositor.Triangles},
		compositor.Overlay{Vertices: onTop, Topology: compositor.Triangles},
	)
	test.ExpectedSuccess(t, err)

	r, g, _, _ := rnd.Pixel(8, 4)
	test.Equate(t, r, float32(0.0))
	test.Equate(t, g, float32(1.0))
}
