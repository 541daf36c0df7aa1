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

import (
	"github.com/jetplume/telequad/curated"
)

// ColorVertex is one vertex of an overlay primitive. Position is in
// normalized device coordinates, color channels are display-referred values
// in the range [0, 1].
//
// The field order and types define the memory layout streamed to the GPU.
// Five float32 values per vertex.
type ColorVertex struct {
	X float32
	Y float32
	R float32
	G float32
	B float32
}

// colorVertexSize is the size of ColorVertex in bytes.
const colorVertexSize = 5 * 4

// Topology selects how an overlay vertex list is assembled into primitives.
type Topology int

// List of valid Topology values.
const (
	Triangles Topology = iota
	Lines
	Points
)

func (tp Topology) String() string {
	switch tp {
	case Triangles:
		return "triangles"
	case Lines:
		return "lines"
	case Points:
		return "points"
	}
	return "unknown topology"
}

// Arity is the number of vertices that make up one primitive of the
// topology.
func (tp Topology) Arity() int {
	switch tp {
	case Triangles:
		return 3
	case Lines:
		return 2
	case Points:
		return 1
	}
	return 0
}

// ValidateVertexList checks a vertex list against the arity of the topology
// it is to be drawn with. An empty list is valid and draws nothing.
func ValidateVertexList(vertices []ColorVertex, tp Topology) error {
	arity := tp.Arity()
	if arity == 0 {
		return curated.Errorf(MalformedVertexList, len(vertices), tp.String())
	}
	if len(vertices)%arity != 0 {
		return curated.Errorf(MalformedVertexList, len(vertices), tp.String())
	}
	return nil
}

// Overlay pairs a vertex list with its topology for the Composite()
// convenience function.
type Overlay struct {
	Vertices []ColorVertex
	Topology Topology
}
