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

// Package shaders embeds the GLSL sources used by the compositor package.
package shaders

import _ "embed"

//go:embed "blit.vert"
var BlitVertexShader []byte

//go:embed "blit.frag"
var BlitFragShader []byte

//go:embed "overlay.vert"
var OverlayVertexShader []byte

//go:embed "overlay.frag"
var OverlayFragShader []byte
