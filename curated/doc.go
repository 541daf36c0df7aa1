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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Like the Errorf()
// function in the fmt package it takes a formatting pattern and placeholder
// values, but here the pattern also acts as the error's identity. Failure
// conditions elsewhere in the project are declared as pattern constants.
// For example:
//
//	const DimensionMismatch = "texture: dimension mismatch: texture is %dx%d, frame is %dx%d"
//
//	return curated.Errorf(DimensionMismatch, tw, th, fw, fh)
//
// Callers test for a specific condition with the Is() function:
//
//	if curated.Is(err, DimensionMismatch) {
//		...
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in a chain of curated errors. Chains arise naturally whenever a
// curated error is used as a placeholder value in another call to Errorf().
package curated
