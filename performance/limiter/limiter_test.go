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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetplume/telequad/performance/limiter"
	"github.com/jetplume/telequad/test"
)

func TestWaitRate(t *testing.T) {
	lim := limiter.NewFPSLimiter(100)

	// eleven waits at 100fps is ten 10ms periods. the first wait triggers
	// immediately
	start := time.Now()
	for i := 0; i < 11; i++ {
		lim.Wait()
	}
	elapsed := time.Since(start)

	// the limiter is rough and the bounds are generous. the point is that
	// the waits neither fall through immediately nor take wildly longer than
	// the requested rate
	test.Equate(t, elapsed >= 80*time.Millisecond, true)
	test.Equate(t, elapsed <= 500*time.Millisecond, true)
}

func TestHasWaited(t *testing.T) {
	// 20fps is a 50ms period
	lim := limiter.NewFPSLimiter(20)
	lim.Wait()

	// immediately after a wait the next trigger cannot have arrived
	test.Equate(t, lim.HasWaited(), false)

	// well after a full period it must have
	time.Sleep(100 * time.Millisecond)
	test.Equate(t, lim.HasWaited(), true)
}
