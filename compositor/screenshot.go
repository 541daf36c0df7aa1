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
	"image"
	"image/png"
	"os"
	"time"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetplume/telequad/curated"
	"github.com/jetplume/telequad/logger"
)

// Screenshot reads the display surface back from the GPU and saves it as a
// PNG in the working directory. Returns the name of the file written.
//
// Call after Composite() and before the buffer swap, on the GL thread. What
// is saved is exactly what the next swap would present, gamma encoding and
// overlays included.
func (cmp *Compositor) Screenshot() (string, error) {
	if cmp.viewportWidth == 0 || cmp.viewportHeight == 0 {
		return "", curated.Errorf(PipelineNotReady, "display surface has no size")
	}

	w := int(cmp.viewportWidth)
	h := int(cmp.viewportHeight)

	img := image.NewRGBA(image.Rect(0, 0, w, h))

	gl.PixelStorei(gl.PACK_ALIGNMENT, 4)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	// GL rows run bottom to top, image rows run top to bottom
	for y := 0; y < h/2; y++ {
		a := img.Pix[y*img.Stride : y*img.Stride+w*4]
		b := img.Pix[(h-1-y)*img.Stride : (h-1-y)*img.Stride+w*4]
		for x := range a {
			a[x], b[x] = b[x], a[x]
		}
	}

	// the alpha channel of the display surface is always opaque but some GL
	// drivers return zero alpha from ReadPixels
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}

	filename := fmt.Sprintf("telequad_%s.png", time.Now().Format("20060102_150405"))

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	defer f.Close()

	err = png.Encode(f, img)
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	logger.Logf("screenshot", "saved %s", filename)

	return filename, nil
}
