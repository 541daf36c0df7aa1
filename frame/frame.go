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

// Package frame defines the pixel buffer handed from the emulation side to
// the presentation side, and the hand-off mechanism between the two.
//
// A Frame is three bytes per pixel (red, green, blue), row-major. Width and
// height are fixed at creation and match the emulated console's native
// resolution for the entire session.
package frame

import "fmt"

// NTSCWidth and NTSCHeight are the native resolution of the emulated
// console's NTSC output. The compositor does not depend on these values, they
// are defaults for frame producers that have no other opinion.
const (
	NTSCWidth  = 256
	NTSCHeight = 240
)

// Depth is the number of bytes per pixel in a Frame.
const Depth = 3

// Frame is one complete rendered pixel buffer for a single emulated display
// tick.
type Frame struct {
	width  int
	height int
	pix    []uint8
}

// NewFrame is the preferred method of initialisation for the Frame type.
func NewFrame(width int, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*Depth),
	}
}

func (f *Frame) String() string {
	return fmt.Sprintf("%dx%d RGB frame", f.width, f.height)
}

// Width of the frame in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height of the frame in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Pix is the raw RGB pixel data, row-major, three bytes per pixel. The
// length of the slice is always Width*Height*Depth.
func (f *Frame) Pix() []uint8 {
	return f.pix
}

// SetPixel sets the RGB value of the pixel at (x, y). Coordinates outside
// the frame are ignored.
func (f *Frame) SetPixel(x int, y int, r uint8, g uint8, b uint8) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	o := (y*f.width + x) * Depth
	f.pix[o] = r
	f.pix[o+1] = g
	f.pix[o+2] = b
}

// Pixel returns the RGB value of the pixel at (x, y). Coordinates outside
// the frame return black.
func (f *Frame) Pixel(x int, y int) (r uint8, g uint8, b uint8) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0, 0, 0
	}
	o := (y*f.width + x) * Depth
	return f.pix[o], f.pix[o+1], f.pix[o+2]
}

// Fill sets every pixel in the frame to the same RGB value.
func (f *Frame) Fill(r uint8, g uint8, b uint8) {
	for i := 0; i < len(f.pix); i += Depth {
		f.pix[i] = r
		f.pix[i+1] = g
		f.pix[i+2] = b
	}
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	n := NewFrame(f.width, f.height)
	copy(n.pix, f.pix)
	return n
}

// Source is implemented by anything that can produce frames for the
// compositor. The emulation core is a Source. So is the testpattern package.
//
// CurrentFrame is called at most once per presentation cycle.
type Source interface {
	CurrentFrame() *Frame
}
