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

// Package software is a CPU implementation of the compositor's pipeline
// semantics: nearest-neighbour texture sampling, per-channel gamma encoding
// on the blit path, and flat-color primitive rasterization with per-vertex
// interpolation on the overlay path.
//
// It exists so that the numeric contracts of the pipelines can be verified
// without a GPU or a window, and so that throughput of the presentation math
// can be measured headlessly (see the performance package). It is not fast
// and it is not meant to be.
package software

import (
	"math"

	"github.com/jetplume/telequad/compositor"
	"github.com/jetplume/telequad/curated"
	"github.com/jetplume/telequad/frame"
)

// GammaEncode converts a linear intensity to a display-referred intensity
// with the same fixed 1/2.2 exponent the blit fragment shader applies.
// Input and output are clamped to [0, 1].
func GammaEncode(v float64) float64 {
	if v <= 0.0 {
		return 0.0
	}
	if v >= 1.0 {
		return 1.0
	}
	return math.Pow(v, 1.0/2.2)
}

// Renderer mirrors the Compositor API onto a CPU pixel buffer. The display
// surface is an RGBA float buffer, row-major, four values per pixel.
type Renderer struct {
	// texture stage. contents are a copy of the most recent frame
	texWidth  int
	texHeight int
	tex       []uint8

	// display surface
	width  int
	height int
	pix    []float32
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type. Texture dimensions are fixed for the lifetime of the renderer, as
// they are for the GPU compositor.
func NewRenderer(texWidth int, texHeight int, surfaceWidth int, surfaceHeight int) *Renderer {
	return &Renderer{
		texWidth:  texWidth,
		texHeight: texHeight,
		tex:       make([]uint8, texWidth*texHeight*frame.Depth),
		width:     surfaceWidth,
		height:    surfaceHeight,
		pix:       make([]float32, surfaceWidth*surfaceHeight*4),
	}
}

// Pixel returns the display surface value at (x, y).
func (rnd *Renderer) Pixel(x int, y int) (r float32, g float32, b float32, a float32) {
	o := (y*rnd.width + x) * 4
	return rnd.pix[o], rnd.pix[o+1], rnd.pix[o+2], rnd.pix[o+3]
}

// UpdateFrame replaces the texture stage contents in full, exactly as the
// GPU texture stage does. On a dimension mismatch the previous contents
// survive.
func (rnd *Renderer) UpdateFrame(f *frame.Frame) error {
	if f.Width() != rnd.texWidth || f.Height() != rnd.texHeight {
		return curated.Errorf(compositor.DimensionMismatch,
			rnd.texWidth, rnd.texHeight, f.Width(), f.Height())
	}
	copy(rnd.tex, f.Pix())
	return nil
}

// Blit samples the texture stage for every pixel of the display surface,
// gamma encoding each channel and forcing alpha to fully opaque. The texture
// stage always exists, NewRenderer allocates it, so unlike the GPU pipeline
// there is no not-ready state to report.
func (rnd *Renderer) Blit() error {
	for y := 0; y < rnd.height; y++ {
		// the UV derivation of the full-screen quad means the interpolated
		// coordinate at a pixel center is simply its normalized position
		v := (float64(y) + 0.5) / float64(rnd.height)
		ty := clampIdx(int(v*float64(rnd.texHeight)), rnd.texHeight)

		for x := 0; x < rnd.width; x++ {
			u := (float64(x) + 0.5) / float64(rnd.width)
			tx := clampIdx(int(u*float64(rnd.texWidth)), rnd.texWidth)

			to := (ty*rnd.texWidth + tx) * frame.Depth
			o := (y*rnd.width + x) * 4

			rnd.pix[o] = float32(GammaEncode(float64(rnd.tex[to]) / 255.0))
			rnd.pix[o+1] = float32(GammaEncode(float64(rnd.tex[to+1]) / 255.0))
			rnd.pix[o+2] = float32(GammaEncode(float64(rnd.tex[to+2]) / 255.0))
			rnd.pix[o+3] = 1.0
		}
	}

	return nil
}

// DrawOverlay rasterizes one vertex list on the display surface with
// per-vertex color interpolation and no gamma encoding, exactly as the
// overlay shader pair does.
func (rnd *Renderer) DrawOverlay(vertices []compositor.ColorVertex, tp compositor.Topology) error {
	err := compositor.ValidateVertexList(vertices, tp)
	if err != nil {
		return err
	}

	arity := tp.Arity()
	for i := 0; i < len(vertices); i += arity {
		switch tp {
		case compositor.Triangles:
			rnd.rasterizeTriangle(vertices[i], vertices[i+1], vertices[i+2])
		case compositor.Lines:
			rnd.rasterizeLine(vertices[i], vertices[i+1])
		case compositor.Points:
			rnd.plot(vertices[i])
		}
	}

	return nil
}

// Composite runs one presentation cycle in the same order as the GPU
// compositor: upload if a new frame arrived, blit, overlays in caller
// order.
func (rnd *Renderer) Composite(newFrame *frame.Frame, overlays ...compositor.Overlay) error {
	if newFrame != nil {
		err := rnd.UpdateFrame(newFrame)
		if err != nil {
			return err
		}
	}

	err := rnd.Blit()
	if err != nil {
		return err
	}

	for _, ov := range overlays {
		err = rnd.DrawOverlay(ov.Vertices, ov.Topology)
		if err != nil {
			return err
		}
	}

	return nil
}

// ndcX and ndcY convert a pixel center to normalized device coordinates.
func (rnd *Renderer) ndcX(x int) float64 {
	return (float64(x)+0.5)/float64(rnd.width)*2.0 - 1.0
}

func (rnd *Renderer) ndcY(y int) float64 {
	return (float64(y)+0.5)/float64(rnd.height)*2.0 - 1.0
}

// pixX and pixY convert normalized device coordinates to pixel coordinates.
func (rnd *Renderer) pixX(x float64) int {
	return int(math.Floor((x*0.5 + 0.5) * float64(rnd.width)))
}

func (rnd *Renderer) pixY(y float64) int {
	return int(math.Floor((y*0.5 + 0.5) * float64(rnd.height)))
}

func (rnd *Renderer) set(x int, y int, r float64, g float64, b float64) {
	if x < 0 || x >= rnd.width || y < 0 || y >= rnd.height {
		return
	}
	o := (y*rnd.width + x) * 4
	rnd.pix[o] = float32(r)
	rnd.pix[o+1] = float32(g)
	rnd.pix[o+2] = float32(b)
	rnd.pix[o+3] = 1.0
}

func (rnd *Renderer) plot(v compositor.ColorVertex) {
	rnd.set(rnd.pixX(float64(v.X)), rnd.pixY(float64(v.Y)), float64(v.R), float64(v.G), float64(v.B))
}

// edge is the signed area of the parallelogram spanned by (a->b) and (a->p).
// The sign says which side of the edge p is on.
func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func (rnd *Renderer) rasterizeTriangle(v0, v1, v2 compositor.ColorVertex) {
	x0, y0 := float64(v0.X), float64(v0.Y)
	x1, y1 := float64(v1.X), float64(v1.Y)
	x2, y2 := float64(v2.X), float64(v2.Y)

	area := edge(x0, y0, x1, y1, x2, y2)
	if area == 0.0 {
		return
	}

	// bounding box in pixel coordinates, clamped to the surface
	minX := max(rnd.pixX(math.Min(x0, math.Min(x1, x2))), 0)
	maxX := min(rnd.pixX(math.Max(x0, math.Max(x1, x2))), rnd.width-1)
	minY := max(rnd.pixY(math.Min(y0, math.Min(y1, y2))), 0)
	maxY := min(rnd.pixY(math.Max(y0, math.Max(y1, y2))), rnd.height-1)

	for y := minY; y <= maxY; y++ {
		py := rnd.ndcY(y)
		for x := minX; x <= maxX; x++ {
			px := rnd.ndcX(x)

			// barycentric weights of the pixel center. a pixel is covered
			// when all three weights have the sign of the triangle's area
			w0 := edge(x1, y1, x2, y2, px, py) / area
			w1 := edge(x2, y2, x0, y0, px, py) / area
			w2 := edge(x0, y0, x1, y1, px, py) / area
			if w0 < 0.0 || w1 < 0.0 || w2 < 0.0 {
				continue
			}

			r := w0*float64(v0.R) + w1*float64(v1.R) + w2*float64(v2.R)
			g := w0*float64(v0.G) + w1*float64(v1.G) + w2*float64(v2.G)
			b := w0*float64(v0.B) + w1*float64(v1.B) + w2*float64(v2.B)
			rnd.set(x, y, r, g, b)
		}
	}
}

func (rnd *Renderer) rasterizeLine(v0, v1 compositor.ColorVertex) {
	x0, y0 := rnd.pixX(float64(v0.X)), rnd.pixY(float64(v0.Y))
	x1, y1 := rnd.pixX(float64(v1.X)), rnd.pixY(float64(v1.Y))

	steps := max(abs(x1-x0), abs(y1-y0))
	if steps == 0 {
		rnd.plot(v0)
		return
	}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(math.Round(t*float64(x1-x0)))
		y := y0 + int(math.Round(t*float64(y1-y0)))
		r := float64(v0.R) + t*float64(v1.R-v0.R)
		g := float64(v0.G) + t*float64(v1.G-v0.G)
		b := float64(v0.B) + t*float64(v1.B-v0.B)
		rnd.set(x, y, r, g, b)
	}
}

func clampIdx(idx int, limit int) int {
	if idx < 0 {
		return 0
	}
	if idx >= limit {
		return limit - 1
	}
	return idx
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
