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

// Package performance contains helper functions relating to performance.
//
// Check() runs the software rendition of the presentation pipeline for a
// fixed duration of time and reports throughput. It will optionally
// generate profiling information.
//
// CalcFPS() calculates frames-per-second in aggregate along with an
// accuracy value (as compared to a nominal refresh rate). Probably not
// suitable for "live" FPS monitoring.
//
// The limiter sub-package paces a presentation loop when synchronisation
// with the display's vertical refresh is unavailable.
package performance
