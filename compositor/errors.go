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

// Error patterns for the compositor failure taxonomy. Test for these with
// curated.Is() or curated.Has().
//
// ResourceExhausted is fatal. There is no presentation without the GPU
// resources so there is no recovery path.
//
// DimensionMismatch, MalformedVertexList and PipelineNotReady indicate a bug
// in a collaborator, not a transient condition. They are detected and
// reported rather than coerced. The operation that raised them has no
// effect.
const (
	ResourceExhausted   = "compositor: resource exhausted: %s"
	DimensionMismatch   = "compositor: dimension mismatch: texture is %dx%d, frame is %dx%d"
	MalformedVertexList = "compositor: malformed vertex list: %d vertices for %s"
	PipelineNotReady    = "compositor: pipeline not ready: %s"
)
