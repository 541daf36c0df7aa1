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
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetplume/telequad/compositor/shaders"
	"github.com/jetplume/telequad/curated"
)

// shader is the base for the two shader programs used by the compositor.
type shader struct {
	handle uint32
}

func (sh *shader) destroy() {
	if sh.handle != 0 {
		gl.DeleteProgram(sh.handle)
		sh.handle = 0
	}
}

// compile and link shader programs.
func (sh *shader) createProgram(vertProgram string, fragProgram string) error {
	sh.destroy()

	sh.handle = gl.CreateProgram()

	vertHandle := gl.CreateShader(gl.VERTEX_SHADER)
	fragHandle := gl.CreateShader(gl.FRAGMENT_SHADER)

	glShaderSource := func(handle uint32, source string) {
		csource, free := gl.Strs(source + "\x00")
		defer free()

		gl.ShaderSource(handle, 1, csource, nil)
	}

	// vertex and fragment glsl sources are embedded by the shaders package
	glShaderSource(vertHandle, vertProgram)
	glShaderSource(fragHandle, fragProgram)

	gl.CompileShader(vertHandle)
	if log := sh.getShaderCompileError(vertHandle); log != "" {
		return curated.Errorf(ResourceExhausted, log)
	}

	gl.CompileShader(fragHandle)
	if log := sh.getShaderCompileError(fragHandle); log != "" {
		return curated.Errorf(ResourceExhausted, log)
	}

	gl.AttachShader(sh.handle, vertHandle)
	gl.AttachShader(sh.handle, fragHandle)
	gl.LinkProgram(sh.handle)

	// now that the shader program has linked we no longer need the
	// individual shader handles
	gl.DeleteShader(fragHandle)
	gl.DeleteShader(vertHandle)

	var isLinked int32
	gl.GetProgramiv(sh.handle, gl.LINK_STATUS, &isLinked)
	if isLinked == 0 {
		return curated.Errorf(ResourceExhausted, "shader program would not link")
	}

	return nil
}

// getShaderCompileError returns the most recent error generated by the
// shader compiler. the empty string means no error.
func (sh *shader) getShaderCompileError(handle uint32) string {
	var isCompiled int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == 0 {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			// the log length includes the NULL character
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(handle, logLength, &logLength, gl.Str(log))
			return log
		}
	}
	return ""
}

// blitShader draws the texture stage to the display surface through the
// procedurally generated full-screen quad, gamma encoding as it goes.
type blitShader struct {
	shader

	// fragment
	texture int32 // uniform
}

func newBlitShader() (*blitShader, error) {
	sh := &blitShader{}
	err := sh.createProgram(string(shaders.BlitVertexShader), string(shaders.BlitFragShader))
	if err != nil {
		return nil, err
	}
	sh.texture = gl.GetUniformLocation(sh.handle, gl.Str("Texture"+"\x00"))
	return sh, nil
}

// setAttributes prepares the blit program for the next draw call. the
// texture stage must already be bound as the sampling source.
func (sh *blitShader) setAttributes() {
	gl.UseProgram(sh.handle)
	gl.Uniform1i(sh.texture, 0)
}

// overlayShader rasterizes flat-colored overlay primitives with per-vertex
// color interpolation. no texture sampling, no gamma encoding.
type overlayShader struct {
	shader

	// vertex
	position int32
	color    int32
}

func newOverlayShader() (*overlayShader, error) {
	sh := &overlayShader{}
	err := sh.createProgram(string(shaders.OverlayVertexShader), string(shaders.OverlayFragShader))
	if err != nil {
		return nil, err
	}
	sh.position = gl.GetAttribLocation(sh.handle, gl.Str("Position"+"\x00"))
	sh.color = gl.GetAttribLocation(sh.handle, gl.Str("Color"+"\x00"))
	return sh, nil
}

// setAttributes prepares the overlay program for the next draw call. the
// vertex buffer being drawn from must already be bound.
func (sh *overlayShader) setAttributes() {
	gl.UseProgram(sh.handle)

	gl.EnableVertexAttribArray(uint32(sh.position))
	gl.EnableVertexAttribArray(uint32(sh.color))

	gl.VertexAttribPointerWithOffset(uint32(sh.position), 2, gl.FLOAT, false, colorVertexSize, 0)
	gl.VertexAttribPointerWithOffset(uint32(sh.color), 3, gl.FLOAT, false, colorVertexSize, 8)
}
