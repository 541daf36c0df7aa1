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

package compositor

// NumQuadVertices is the number of vertices in the full-screen quad.
const NumQuadVertices = 4

// the corners of the full-screen quad in triangle-fan order. the quad covers
// the entire viewport whatever its size, there is nothing to recompute when
// the window changes shape.
var quadCorners = [NumQuadVertices][2]float32{
	{-1.0, -1.0},
	{1.0, -1.0},
	{1.0, 1.0},
	{-1.0, 1.0},
}

// QuadPosition returns the normalized device coordinates of the quad corner
// for the given vertex index. The same derivation runs in the blit vertex
// shader keyed on gl_VertexID, so no vertex buffer is ever allocated for the
// blit.
//
// Valid indices are 0 to NumQuadVertices-1. Out of range indices are a
// caller contract violation and are clamped.
func QuadPosition(idx int) (x float32, y float32) {
	if idx < 0 {
		idx = 0
	}
	if idx >= NumQuadVertices {
		idx = NumQuadVertices - 1
	}
	return quadCorners[idx][0], quadCorners[idx][1]
}

// QuadUV returns the texture coordinate carried by the quad corner for the
// given vertex index. The coordinate is derived from the corner position:
//
//	uv = position * 0.5 + 0.5
func QuadUV(idx int) (u float32, v float32) {
	x, y := QuadPosition(idx)
	return x*0.5 + 0.5, y*0.5 + 0.5
}
