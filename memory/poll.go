// This file is part of mmio.
//
// mmio is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mmio is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mmio.  If not, see <https://www.gnu.org/licenses/>.

package memory

import (
	"fmt"
	"time"

	"github.com/jetsetilly/mmio/curated"
)

// Poll repeatedly reads the register until the predicate holds for the value
// read, sleeping for interval between attempts. Every attempt is a genuine
// Read(): the whole point of polling a register is that something outside
// the program changes it.
//
// Returns the first value for which the predicate holds. If the timeout is
// reached first, the most recent value is returned along with an error
// matching the TimeoutError pattern; at least floor(timeout/interval) reads
// will have been made by then.
//
// There is no cancellation other than the timeout. A caller wanting to give
// up sooner polls with a shorter timeout.
//
// Poll is the only operation in the package that blocks. interval and
// timeout must both be positive.
func Poll[T Data](g *Register[T], pred func(T) bool, interval time.Duration, timeout time.Duration) (T, error) {
	if interval <= 0 || timeout <= 0 {
		panic(curated.Errorf(InvalidPoll, "interval and timeout must be positive"))
	}

	// the minimum number of reads promised to the caller
	minReads := int(timeout / interval)

	start := time.Now()
	reads := 0

	var v T
	for {
		v = g.Read()
		reads++

		if pred(v) {
			return v, nil
		}

		if reads >= minReads && time.Since(start) >= timeout {
			return v, curated.Errorf(TimeoutError,
				fmt.Sprintf("%s after %d reads of %s", timeout, reads, g))
		}

		time.Sleep(interval)
	}
}
