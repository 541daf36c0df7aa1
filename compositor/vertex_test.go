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

package compositor_test

import (
	"testing"

	"github.com/jetplume/telequad/compositor"
	"github.com/jetplume/telequad/curated"
	"github.com/jetplume/telequad/test"
)

func TestTopologyArity(t *testing.T) {
	test.Equate(t, compositor.Triangles.Arity(), 3)
	test.Equate(t, compositor.Lines.Arity(), 2)
	test.Equate(t, compositor.Points.Arity(), 1)
}

func TestVertexListValidation(t *testing.T) {
	verts := make([]compositor.ColorVertex, 6)

	// multiples of the arity are fine
	test.ExpectedSuccess(t, compositor.ValidateVertexList(verts, compositor.Triangles))
	test.ExpectedSuccess(t, compositor.ValidateVertexList(verts, compositor.Lines))
	test.ExpectedSuccess(t, compositor.ValidateVertexList(verts, compositor.Points))

	// an empty list is valid and draws nothing
	test.ExpectedSuccess(t, compositor.ValidateVertexList(nil, compositor.Triangles))

	// anything else is a caller error
	verts = make([]compositor.ColorVertex, 5)
	err := compositor.ValidateVertexList(verts, compositor.Triangles)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, compositor.MalformedVertexList), true)

	err = compositor.ValidateVertexList(verts, compositor.Lines)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, compositor.MalformedVertexList), true)

	// an invalid topology is always malformed
	err = compositor.ValidateVertexList(verts, compositor.Topology(100))
	test.ExpectedFailure(t, err)
}
