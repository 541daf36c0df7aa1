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

// Package compositor takes a finished video frame and draws it, color
// corrected, to the display surface of the current OpenGL context.
//
// The compositor owns exactly one GPU texture, sized to the emulated
// console's resolution at creation time and never resized. Every
// presentation cycle the most recent frame (if any) replaces the texture
// contents in full and the texture is blitted to the viewport through a
// full-screen quad. The quad is generated in the vertex shader from the
// vertex index. No vertex buffer exists for the blit.
//
// The blit fragment shader gamma-encodes each channel with an exponent of
// 1/2.2, converting the linear intensities produced by the emulation core to
// display-referred intensities. Alpha is forced to fully opaque.
//
// A second pipeline draws flat-colored overlay primitives (debug rectangles,
// cursors, simple UI marks) from caller-supplied vertex lists. Overlay
// colors are display-referred already and are NOT gamma-encoded. The
// asymmetry with the blit pipeline is deliberate.
//
// All sequencing is caller-driven. A typical cycle:
//
//	cmp.Resize(plt.FramebufferSize())
//	cmp.Composite(exchange.Latest(), overlays...)
//	plt.Present()
//
// Everything here must run on the thread that owns the GL context. See the
// gui/sdlwin package.
package compositor
