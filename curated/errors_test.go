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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetplume/telequad/curated"
	"github.com/jetplume/telequad/test"
)

const (
	testPatternA = "a test error: %s"
	testPatternB = "another test error: %d"
)

func TestMatching(t *testing.T) {
	err := curated.Errorf(testPatternA, "detail")

	test.Equate(t, curated.IsAny(err), true)
	test.Equate(t, curated.Is(err, testPatternA), true)
	test.Equate(t, curated.Is(err, testPatternB), false)

	// plain errors never match
	plain := errors.New("plain")
	test.Equate(t, curated.IsAny(plain), false)
	test.Equate(t, curated.Is(plain, testPatternA), false)

	// nil never matches
	test.Equate(t, curated.IsAny(nil), false)
	test.Equate(t, curated.Is(nil, testPatternA), false)
	test.Equate(t, curated.Has(nil, testPatternA), false)
}

func TestChaining(t *testing.T) {
	inner := curated.Errorf(testPatternB, 100)
	outer := curated.Errorf(testPatternA, inner)

	// Is() only matches the outermost pattern
	test.Equate(t, curated.Is(outer, testPatternB), false)

	// Has() matches anywhere in the chain
	test.Equate(t, curated.Has(outer, testPatternA), true)
	test.Equate(t, curated.Has(outer, testPatternB), true)

	test.Equate(t, outer.Error(), "a test error: another test error: 100")
}

func TestDeduplication(t *testing.T) {
	// adjacent duplicate message parts are removed...
	inner := curated.Errorf("compositor: inner detail")
	outer := curated.Errorf("compositor: %s", inner)
	test.Equate(t, outer.Error(), "compositor: inner detail")

	// ...but non-adjacent duplicates are kept
	err := curated.Errorf("texture: %s", curated.Errorf("compositor: detail"))
	test.Equate(t, err.Error(), "texture: compositor: detail")
}
