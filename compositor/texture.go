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
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetplume/telequad/curated"
	"github.com/jetplume/telequad/frame"
)

// textureStage owns the single GPU texture holding the most recent frame.
// Dimensions are fixed at creation. Contents are replaced in full on every
// update, there is no partial or dirty-rectangle path. At the resolutions of
// the consoles being emulated a full upload is tens of kilobytes and the
// simplicity is worth more than the saved bandwidth.
type textureStage struct {
	id     uint32
	width  int32
	height int32
}

// newTextureStage allocates a GPU texture of the given dimensions. The
// texture is sized once, here, and only its contents ever change.
func newTextureStage(width int, height int) (*textureStage, error) {
	tex := &textureStage{
		width:  int32(width),
		height: int32(height),
	}

	gl.GenTextures(1, &tex.id)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)

	// frames are three bytes per pixel so rows are not necessarily four-byte
	// aligned
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	gl.TexImage2D(gl.TEXTURE_2D, 0,
		gl.RGB8, tex.width, tex.height, 0,
		gl.RGB, gl.UNSIGNED_BYTE,
		nil)

	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		gl.DeleteTextures(1, &tex.id)
		return nil, curated.Errorf(ResourceExhausted,
			fmt.Sprintf("cannot allocate %dx%d texture (gl error %#x)", width, height, glErr))
	}

	// the emulated image is magnified by whole pixels, not smeared
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return tex, nil
}

func (tex *textureStage) destroy() {
	if tex.id != 0 {
		gl.DeleteTextures(1, &tex.id)
		tex.id = 0
	}
}

// update replaces the entire texture contents with the frame's pixel data.
// The frame must be the same size as the texture. On a dimension mismatch
// the texture contents are untouched.
func (tex *textureStage) update(f *frame.Frame) error {
	if int32(f.Width()) != tex.width || int32(f.Height()) != tex.height {
		return curated.Errorf(DimensionMismatch, tex.width, tex.height, f.Width(), f.Height())
	}

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0,
		0, 0, tex.width, tex.height,
		gl.RGB, gl.UNSIGNED_BYTE,
		gl.Ptr(f.Pix()))

	return nil
}

// bind the texture as the sampling source for the next draw call. the only
// effect is on GPU pipeline state.
func (tex *textureStage) bind() {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
}
