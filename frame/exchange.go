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

package frame

import "sync/atomic"

// Exchange is a single-slot hand-off between a frame producer and the
// presentation thread. The producer and consumer may be the same goroutine
// or different goroutines; in either case the most recent frame wins and
// older unconsumed frames are discarded.
//
// Ownership of a frame passes to the Exchange on Publish(). The producer
// must not write to the frame after publishing it. A producer that wants to
// keep drawing should publish a Clone() or rotate between buffers.
type Exchange struct {
	slot atomic.Pointer[Frame]
}

// Publish a frame, replacing any frame that has not yet been consumed.
func (ex *Exchange) Publish(f *Frame) {
	ex.slot.Store(f)
}

// Latest returns the most recently published frame, or nil if nothing new
// has been published since the last call. A nil result means the consumer
// should present whatever it presented last cycle.
func (ex *Exchange) Latest() *Frame {
	return ex.slot.Swap(nil)
}
