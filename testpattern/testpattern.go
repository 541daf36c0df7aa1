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

// Package testpattern is a frame producer that stands in for the emulation
// core. It animates a color-bar and gradient pattern at the console's
// native resolution, one frame per call, which is exactly the contract the
// real emulation core has with the compositor.
package testpattern

import "github.com/jetplume/telequad/frame"

// the classic color bar sequence, full intensity
var bars = [8][3]uint8{
	{255, 255, 255},
	{255, 255, 0},
	{0, 255, 255},
	{0, 255, 0},
	{255, 0, 255},
	{255, 0, 0},
	{0, 0, 255},
	{0, 0, 0},
}

// Generator produces one animated frame per call to CurrentFrame().
// Implements the frame.Source interface.
type Generator struct {
	width  int
	height int
	tick   int

	// frames are drawn into rotating buffers. two is not enough when
	// publishing into a frame.Exchange: one frame can be held by the
	// presentation thread and another queued in the exchange while the next
	// is being drawn
	buffers [3]*frame.Frame
	idx     int
}

// NewGenerator is the preferred method of initialisation for the Generator
// type.
func NewGenerator(width int, height int) *Generator {
	gen := &Generator{
		width:  width,
		height: height,
	}
	for i := range gen.buffers {
		gen.buffers[i] = frame.NewFrame(width, height)
	}
	return gen
}

// CurrentFrame draws the next step of the animation and returns it. The
// returned frame stays readable for the next two calls.
func (gen *Generator) CurrentFrame() *frame.Frame {
	gen.idx = (gen.idx + 1) % len(gen.buffers)
	f := gen.buffers[gen.idx]

	barHeight := gen.height * 2 / 3
	barWidth := gen.width / len(bars)
	if barWidth == 0 {
		barWidth = 1
	}

	for y := 0; y < gen.height; y++ {
		for x := 0; x < gen.width; x++ {
			if y < barHeight {
				// scrolling color bars
				bar := ((x + gen.tick) / barWidth) % len(bars)
				f.SetPixel(x, y, bars[bar][0], bars[bar][1], bars[bar][2])
			} else {
				// sliding horizontal luminance ramp
				v := uint8((x*255/gen.width + gen.tick*2) % 256)
				f.SetPixel(x, y, v, v, v)
			}
		}
	}

	gen.tick++

	return f
}
