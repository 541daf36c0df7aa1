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
	"github.com/jetplume/telequad/logger"
)

// Compositor owns the texture stage and the two shader pipelines and issues
// all drawing for one display surface. Exactly one compositor per window.
//
// The compositor has no run loop of its own. Callers drive it once per
// display refresh from the thread that owns the GL context.
type Compositor struct {
	tex     *textureStage
	blit    *blitShader
	overlay *overlayShader

	// the blit draws with no vertex buffer at all but core profile GL still
	// requires a vertex array object to be bound
	quadVAO uint32

	// overlay vertex lists are streamed through this buffer every draw. the
	// pipeline retains no vertex data between calls.
	overlayVAO uint32
	overlayVBO uint32

	// size of the display surface. set with Resize()
	viewportWidth  int32
	viewportHeight int32
}

// NewCompositor is the preferred method of initialisation for the Compositor
// type. The GL context must be current on the calling thread. Frame
// dimensions are fixed for the lifetime of the compositor.
func NewCompositor(width int, height int) (*Compositor, error) {
	cmp := &Compositor{}

	err := gl.Init()
	if err != nil {
		return nil, curated.Errorf(ResourceExhausted, fmt.Sprintf("gl: %s", err))
	}

	// log GPU vendor information
	logger.Logf("compositor", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf("compositor", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf("compositor", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	cmp.blit, err = newBlitShader()
	if err != nil {
		cmp.Destroy()
		return nil, err
	}

	cmp.overlay, err = newOverlayShader()
	if err != nil {
		cmp.Destroy()
		return nil, err
	}

	cmp.tex, err = newTextureStage(width, height)
	if err != nil {
		cmp.Destroy()
		return nil, err
	}

	gl.GenVertexArrays(1, &cmp.quadVAO)
	gl.GenVertexArrays(1, &cmp.overlayVAO)
	gl.GenBuffers(1, &cmp.overlayVBO)

	logger.Logf("compositor", "created for %dx%d frames", width, height)

	return cmp, nil
}

// Destroy releases all GPU resources held by the compositor. The compositor
// must not be used again.
func (cmp *Compositor) Destroy() {
	if cmp.overlayVBO != 0 {
		gl.DeleteBuffers(1, &cmp.overlayVBO)
		cmp.overlayVBO = 0
	}
	if cmp.overlayVAO != 0 {
		gl.DeleteVertexArrays(1, &cmp.overlayVAO)
		cmp.overlayVAO = 0
	}
	if cmp.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &cmp.quadVAO)
		cmp.quadVAO = 0
	}
	if cmp.tex != nil {
		cmp.tex.destroy()
		cmp.tex = nil
	}
	if cmp.overlay != nil {
		cmp.overlay.destroy()
		cmp.overlay = nil
	}
	if cmp.blit != nil {
		cmp.blit.destroy()
		cmp.blit = nil
	}
}

// Resize tells the compositor the current size of the display surface in
// pixels. Call whenever the window layer reports a size change. The frame
// texture is unaffected, only the viewport changes.
func (cmp *Compositor) Resize(width int, height int) {
	cmp.viewportWidth = int32(width)
	cmp.viewportHeight = int32(height)
}

// UpdateFrame replaces the texture stage contents with the frame's pixels.
// The whole texture is replaced every call.
//
// Fails with DimensionMismatch if the frame is not the size the compositor
// was created with, in which case the previous contents survive.
func (cmp *Compositor) UpdateFrame(f *frame.Frame) error {
	if cmp.tex == nil {
		return curated.Errorf(PipelineNotReady, "no texture stage")
	}
	return cmp.tex.update(f)
}

// Blit draws the texture stage to the display surface, covering the whole
// viewport, gamma encoding each channel. The texture contents are whatever
// the most recent successful UpdateFrame() left there.
func (cmp *Compositor) Blit() error {
	if cmp.tex == nil || cmp.tex.id == 0 {
		return curated.Errorf(PipelineNotReady, "no texture stage")
	}

	cmp.tex.bind()
	cmp.blit.setAttributes()

	gl.BindVertexArray(cmp.quadVAO)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, NumQuadVertices)
	gl.BindVertexArray(0)

	return nil
}

// DrawOverlay rasterizes one caller-supplied vertex list on the display
// surface. May be called any number of times per cycle. Vertex data is
// streamed, nothing is retained between calls.
//
// Fails with MalformedVertexList, and issues no draw, if the vertex count is
// not a multiple of the topology's arity.
func (cmp *Compositor) DrawOverlay(vertices []ColorVertex, tp Topology) error {
	if cmp.overlay == nil {
		return curated.Errorf(PipelineNotReady, "no overlay pipeline")
	}

	err := ValidateVertexList(vertices, tp)
	if err != nil {
		return err
	}

	if len(vertices) == 0 {
		return nil
	}

	gl.BindVertexArray(cmp.overlayVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, cmp.overlayVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*colorVertexSize, gl.Ptr(vertices), gl.STREAM_DRAW)

	cmp.overlay.setAttributes()

	var mode uint32
	switch tp {
	case Triangles:
		mode = gl.TRIANGLES
	case Lines:
		mode = gl.LINES
	case Points:
		mode = gl.POINTS
	}

	gl.DrawArrays(mode, 0, int32(len(vertices)))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return nil
}

// Composite runs one full presentation cycle: upload the new frame if there
// is one, blit, then draw each overlay in the order supplied. A nil
// newFrame means no frame arrived this refresh and the previous texture
// contents are blitted again.
//
// Presentation of the display surface itself (the buffer swap) belongs to
// the window layer and happens after Composite returns.
func (cmp *Compositor) Composite(newFrame *frame.Frame, overlays ...Overlay) error {
	cmp.setRenderState()

	if newFrame != nil {
		err := cmp.UpdateFrame(newFrame)
		if err != nil {
			return err
		}
	}

	err := cmp.Blit()
	if err != nil {
		return err
	}

	for _, ov := range overlays {
		err = cmp.DrawOverlay(ov.Vertices, ov.Topology)
		if err != nil {
			return err
		}
	}

	return nil
}

// setRenderState puts the GL pipeline in the state every cycle assumes: no
// face culling, no depth testing, no scissor, polygon fill, and a viewport
// covering the display surface.
func (cmp *Compositor) setRenderState() {
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.SCISSOR_TEST)
	gl.Disable(gl.BLEND)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.Viewport(0, 0, cmp.viewportWidth, cmp.viewportHeight)

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}
