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

// Package bus defines the interface between the memory package and the
// physical access mechanism. Two implementations are provided: RAM, a
// byte-slice backed bus useful for testing and for developing against
// hardware that isn't present; and Mmap, a window onto a device file
// (usually /dev/mem) for real memory-mapped IO.
//
// A Bus never returns an error. Address validation happens in the memory
// package before an access is issued; an address outside the bus window at
// this level is a programming error and the bus will panic.
package bus

// Bus is the physical access mechanism beneath a memory.Map.
//
// Load and Store perform exactly one access of the given width at the given
// absolute address. Valid widths are 1, 2, 4 and 8 bytes. Implementations
// must not cache, merge or reorder accesses.
//
// Barrier orders accesses with respect to other CPUs. Implementations with
// no meaningful ordering concern (eg. a test double) may simply record that
// the barrier happened.
type Bus interface {
	Load(addr uintptr, width uint) uint64
	Store(addr uintptr, width uint, data uint64)
	Barrier()
}

// panic patterns used by bus implementations. these indicate programming
// errors, not runtime conditions.
const (
	AccessOutsideWindow = "bus: access outside window: %#x (width %d)"
	UnsupportedWidth    = "bus: unsupported access width: %d"
)

// error patterns returned by bus implementations.
const (
	PeekError   = "peek: address %#x not in window"
	PokeError   = "poke: address %#x not in window"
	DeviceError = "device: %v"
)
