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
	"os"
	"runtime"
	"runtime/pprof"
)

// Profile selects which profiling information Check() should gather.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
	ProfileBoth
)

func cpuProfile(profile Profile, outFile string, run func() error) error {
	if profile == ProfileCPU || profile == ProfileBoth {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	return run()
}

func memProfile(profile Profile, outFile string) error {
	if profile == ProfileMem || profile == ProfileBoth {
		f, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		f.Close()
	}

	return nil
}
