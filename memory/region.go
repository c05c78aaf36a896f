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

	"github.com/jetsetilly/mmio/curated"
)

// a claim records the byte range of a register that has been handed out.
// claims last for the life of the region.
type claim struct {
	offset uint
	width  uint
}

// Region is a validated, exclusively owned handle to a contiguous address
// range. Regions are created with Map.OpenRegion().
type Region struct {
	m        *Map
	label    string
	base     uintptr
	length   uint
	access   AccessPolicy
	ordering OrderingPolicy

	released bool
	claims   []claim
}

// Label returns the label the region was opened with.
func (r *Region) Label() string {
	return r.label
}

// Length returns the length of the region in bytes.
func (r *Region) Length() uint {
	return r.length
}

// Access returns the region's access policy.
func (r *Region) Access() AccessPolicy {
	return r.access
}

// Ordering returns the region's ordering policy.
func (r *Region) Ordering() OrderingPolicy {
	return r.ordering
}

// Released returns true once Release() has been called.
func (r *Region) Released() bool {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return r.released
}

func (r *Region) String() string {
	return fmt.Sprintf("%s: %#x to %#x (%s, %s)",
		r.label, r.base, r.base+uintptr(r.length)-1, r.access, r.ordering)
}

// Release the region, making the address range available to a future
// OpenRegion() and invalidating every register derived from the region. Any
// later access through such a register panics; it does not silently succeed.
//
// Releasing a released region is a no-op.
func (r *Region) Release() {
	r.m.release(r)
}

// claimRange claims [offset, offset+width) for a new register. called with
// the Map mutex held.
func (r *Region) claimRange(offset uint, width uint) error {
	if r.released {
		return curated.Errorf(AccessViolation,
			fmt.Sprintf("%s: register on released region", r.label))
	}

	// the naive check offset+width > r.length wraps for offsets near the
	// top of uint and would pass a register that the bus cannot access
	if offset > r.length || width > r.length-offset {
		return curated.Errorf(AccessViolation,
			fmt.Sprintf("%s: offset %#x width %d outside region", r.label, offset, width))
	}

	// registers must be naturally aligned for their width. the underlying
	// access would tear or trap otherwise
	if (uint(r.base)+offset)%width != 0 {
		return curated.Errorf(AccessViolation,
			fmt.Sprintf("%s: offset %#x misaligned for width %d", r.label, offset, width))
	}

	// one live handle per register. a second handle over the same bytes
	// would alias the first
	for _, c := range r.claims {
		if offset < c.offset+c.width && c.offset < offset+width {
			return curated.Errorf(AccessViolation,
				fmt.Sprintf("%s: offset %#x width %d already claimed", r.label, offset, width))
		}
	}

	r.claims = append(r.claims, claim{offset: offset, width: width})

	return nil
}
