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

package frame_test

import (
	"testing"

	"github.com/jetplume/telequad/frame"
	"github.com/jetplume/telequad/test"
)

func TestFrame(t *testing.T) {
	f := frame.NewFrame(4, 3)
	test.Equate(t, f.Width(), 4)
	test.Equate(t, f.Height(), 3)
	test.Equate(t, len(f.Pix()), 4*3*frame.Depth)

	f.SetPixel(2, 1, 10, 20, 30)
	r, g, b := f.Pixel(2, 1)
	test.Equate(t, r, 10)
	test.Equate(t, g, 20)
	test.Equate(t, b, 30)

	// out of range coordinates are ignored on write and black on read
	f.SetPixel(4, 0, 255, 255, 255)
	f.SetPixel(-1, 0, 255, 255, 255)
	r, g, b = f.Pixel(100, 100)
	test.Equate(t, r, 0)
	test.Equate(t, g, 0)
	test.Equate(t, b, 0)
}

func TestFrameRowMajorLayout(t *testing.T) {
	f := frame.NewFrame(2, 2)
	f.SetPixel(1, 0, 1, 2, 3)
	f.SetPixel(0, 1, 4, 5, 6)

	pix := f.Pix()

	// (1,0) is the second pixel of the first row
	test.Equate(t, pix[3], 1)
	test.Equate(t, pix[4], 2)
	test.Equate(t, pix[5], 3)

	// (0,1) is the first pixel of the second row
	test.Equate(t, pix[6], 4)
	test.Equate(t, pix[7], 5)
	test.Equate(t, pix[8], 6)
}

func TestClone(t *testing.T) {
	f := frame.NewFrame(2, 2)
	f.Fill(100, 100, 100)

	c := f.Clone()
	c.SetPixel(0, 0, 1, 1, 1)

	// the original is unaffected by writes to the clone
	r, _, _ := f.Pixel(0, 0)
	test.Equate(t, r, 100)
	r, _, _ = c.Pixel(0, 0)
	test.Equate(t, r, 1)
}

func TestExchange(t *testing.T) {
	ex := &frame.Exchange{}

	// nothing published yet
	test.Equate(t, ex.Latest() == nil, true)

	a := frame.NewFrame(2, 2)
	ex.Publish(a)
	test.Equate(t, ex.Latest() == a, true)

	// consuming empties the slot
	test.Equate(t, ex.Latest() == nil, true)

	// most recent frame wins
	b := frame.NewFrame(2, 2)
	c := frame.NewFrame(2, 2)
	ex.Publish(b)
	ex.Publish(c)
	test.Equate(t, ex.Latest() == c, true)
	test.Equate(t, ex.Latest() == nil, true)
}
