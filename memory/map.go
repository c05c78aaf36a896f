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
	"strings"
	"sync"

	"github.com/jetsetilly/mmio/curated"
	"github.com/jetsetilly/mmio/logger"
	"github.com/jetsetilly/mmio/memory/bus"
)

// Map owns the set of live regions on a single bus. Use one Map per physical
// bus; address ranges on different buses are unrelated and may coincide.
type Map struct {
	// guards the region list and the register claims of every region. not
	// held during register access
	mu sync.Mutex

	b       bus.Bus
	regions []*Region
}

// NewMap is the preferred method of initialisation for the Map type.
func NewMap(b bus.Bus) *Map {
	return &Map{b: b}
}

// OpenRegion validates and opens the address range [base, base+length) for
// register access.
//
// Returns an error matching the InvalidAddress pattern if base is null or
// length is zero, and an error matching the OverlapError pattern if the
// range intersects a live region of this Map. On success, the live regions
// of the Map are pairwise disjoint.
func (m *Map) OpenRegion(label string, base uintptr, length uint,
	access AccessPolicy, ordering OrderingPolicy) (*Region, error) {

	if base == 0 {
		return nil, curated.Errorf(InvalidAddress, fmt.Sprintf("%s: null base", label))
	}
	if length == 0 {
		return nil, curated.Errorf(InvalidAddress, fmt.Sprintf("%s: zero length", label))
	}

	// a range wrapping the top of the address space has no meaningful end
	// and would defeat the overlap check below
	end := base + uintptr(length)
	if end < base {
		return nil, curated.Errorf(InvalidAddress,
			fmt.Sprintf("%s: %#x + %#x wraps the address space", label, base, length))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, r := range m.regions {
		if base < r.base+uintptr(r.length) && r.base < end {
			return nil, curated.Errorf(OverlapError,
				fmt.Sprintf("%s: %#x to %#x intersects %s", label, base, end-1, r))
		}
	}

	r := &Region{
		m:        m,
		label:    label,
		base:     base,
		length:   length,
		access:   access,
		ordering: ordering,
	}
	m.regions = append(m.regions, r)

	logger.Logf("memory", "open %s", r)

	return r, nil
}

// release removes the region from the live set. called from Region.Release()
func (m *Map) release(rel *Region) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if rel.released {
		return
	}
	rel.released = true

	for i, r := range m.regions {
		if r == rel {
			m.regions = append(m.regions[:i], m.regions[i+1:]...)
			logger.Logf("memory", "release %s", rel)
			return
		}
	}
}

// Regions returns the labels of the live regions of the Map.
func (m *Map) Regions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	l := make([]string, 0, len(m.regions))
	for _, r := range m.regions {
		l = append(l, r.label)
	}
	return l
}

// String returns the memory map as a string, one live region per line.
func (m *Map) String() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := strings.Builder{}
	s.WriteString("Memory Map\n----------\n")
	for _, r := range m.regions {
		s.WriteString(r.String())
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}
