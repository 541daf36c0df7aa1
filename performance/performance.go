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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetplume/telequad/compositor"
	"github.com/jetplume/telequad/compositor/software"
	"github.com/jetplume/telequad/testpattern"
)

// Check runs the software rendition of the presentation pipeline for the
// specified duration and reports the number of frames composited, along
// with an accuracy figure relative to the nominal refresh rate.
//
// Profiling information is written to cpu.profile and mem.profile as
// requested by the profile argument.
func Check(output io.Writer, profile Profile, duration string, width int, height int) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	gen := testpattern.NewGenerator(width, height)
	rnd := software.NewRenderer(width, height, width, height)

	// a small overlay so the check exercises the whole pipeline, not just
	// the blit
	overlay := compositor.Overlay{
		Topology: compositor.Triangles,
		Vertices: []compositor.ColorVertex{
			{X: -0.5, Y: -0.5, R: 1.0, G: 0.0, B: 0.0},
			{X: 0.5, Y: -0.5, R: 0.0, G: 1.0, B: 0.0},
			{X: 0.0, Y: 0.5, R: 0.0, G: 0.0, B: 1.0},
		},
	}

	numFrames := 0

	run := func() error {
		deadline := time.Now().Add(dur)
		for time.Now().Before(deadline) {
			err := rnd.Composite(gen.CurrentFrame(), overlay)
			if err != nil {
				return err
			}
			numFrames++
		}
		return nil
	}

	err = cpuProfile(profile, "cpu.profile", run)
	if err != nil {
		return err
	}

	fps, accuracy := CalcFPS(numFrames, dur.Seconds(), NominalRefreshRate)
	fmt.Fprintf(output, "%d frames in %v. %.2f fps (%.2f%% of nominal %0.1ffps)\n",
		numFrames, dur, fps, accuracy, NominalRefreshRate)

	return memProfile(profile, "mem.profile")
}
