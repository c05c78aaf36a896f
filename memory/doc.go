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

// Package memory provides validated access to memory-mapped hardware
// registers.
//
// A Map sits over a bus.Bus and owns the set of live regions on that bus.
// Regions are opened with OpenRegion() and are validated on creation: a
// region never overlaps another live region of the same Map. Typed registers
// are derived from a region with NewRegister() and are likewise validated on
// creation: a register always fits its region, is naturally aligned for its
// width, never overlaps another register of the region, and never carries a
// capability the region's access policy doesn't grant.
//
// Because everything is checked at construction, Read() and Write() cannot
// fail and return no error. Each Read() issues exactly one load on the bus
// and each Write() exactly one store. Values are never cached: two
// consecutive reads are two bus accesses even if the value hasn't changed,
// and two identical writes are two bus accesses. This is the defining
// property of register access as opposed to ordinary memory access.
//
// Misusing a handle is a programming error, not a runtime condition, and is
// surfaced as a panic: reading or writing through a register whose region
// has been released, or through a handle constructed without the relevant
// capability.
//
// Raw addresses never escape the package. The unchecked pointer arithmetic
// lives in the bus implementations and the volatile package; a Register
// exposes only its offset and width.
//
// Registers never block and the package takes no locks around register
// access. The intended execution model is single-threaded. Callers sharing a
// register across goroutines must serialise access themselves; the region's
// OrderingPolicy controls whether accesses are fenced for visibility on
// other CPUs.
//
// Note that the guarantees here are about accesses issued by this program.
// Whether the hardware itself performs speculative reads or buffers stores
// is a platform property that only a platform barrier can influence, and
// only partially. Similarly, a bus access to an address the hardware doesn't
// decode may trap at platform level; prevent that by constructing regions
// that describe the hardware correctly.
package memory
