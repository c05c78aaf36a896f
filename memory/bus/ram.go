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

package bus

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/jetsetilly/mmio/curated"
)

// RAM is a Bus backed by ordinary memory. It stands in for real hardware in
// tests and when developing against hardware that isn't present.
//
// Every Load and Store is counted, keyed by the address of the access. The
// counts are how tests observe that an access really was issued (and issued
// exactly once) rather than being satisfied from some cached value.
type RAM struct {
	origin uintptr
	memory []uint8

	loads    map[uintptr]int
	stores   map[uintptr]int
	barriers int
}

// NewRAM is the preferred method of initialisation for the RAM bus. The bus
// will accept accesses in the window [origin, origin+length).
func NewRAM(origin uintptr, length uint) *RAM {
	return &RAM{
		origin: origin,
		memory: make([]uint8, length),
		loads:  make(map[uintptr]int),
		stores: make(map[uintptr]int),
	}
}

// index converts an absolute address to an offset into the backing slice,
// panicking if the access does not fit the window.
func (r *RAM) index(addr uintptr, width uint) uint {
	if addr < r.origin || uint(addr-r.origin)+width > uint(len(r.memory)) {
		panic(curated.Errorf(AccessOutsideWindow, addr, width))
	}
	return uint(addr - r.origin)
}

// Load implements the Bus interface.
func (r *RAM) Load(addr uintptr, width uint) uint64 {
	i := r.index(addr, width)
	r.loads[addr]++

	switch width {
	case 1:
		return uint64(r.memory[i])
	case 2:
		return uint64(binary.LittleEndian.Uint16(r.memory[i:]))
	case 4:
		return uint64(binary.LittleEndian.Uint32(r.memory[i:]))
	case 8:
		return binary.LittleEndian.Uint64(r.memory[i:])
	}

	panic(curated.Errorf(UnsupportedWidth, width))
}

// Store implements the Bus interface.
func (r *RAM) Store(addr uintptr, width uint, data uint64) {
	i := r.index(addr, width)
	r.stores[addr]++

	switch width {
	case 1:
		r.memory[i] = uint8(data)
	case 2:
		binary.LittleEndian.PutUint16(r.memory[i:], uint16(data))
	case 4:
		binary.LittleEndian.PutUint32(r.memory[i:], uint32(data))
	case 8:
		binary.LittleEndian.PutUint64(r.memory[i:], data)
	default:
		panic(curated.Errorf(UnsupportedWidth, width))
	}
}

// Barrier implements the Bus interface. The RAM bus has no ordering concern
// so the barrier is simply counted.
func (r *RAM) Barrier() {
	r.barriers++
}

// LoadCount returns the number of loads issued at the address.
func (r *RAM) LoadCount(addr uintptr) int {
	return r.loads[addr]
}

// StoreCount returns the number of stores issued at the address.
func (r *RAM) StoreCount(addr uintptr) int {
	return r.stores[addr]
}

// BarrierCount returns the number of barriers issued on the bus.
func (r *RAM) BarrierCount() int {
	return r.barriers
}

// Peek reads a byte without going through the access machinery and without
// affecting the access counts. For debugging and test setup only.
func (r *RAM) Peek(addr uintptr) (uint8, error) {
	if addr < r.origin || uint(addr-r.origin) >= uint(len(r.memory)) {
		return 0, curated.Errorf(PeekError, addr)
	}
	return r.memory[addr-r.origin], nil
}

// Poke writes a byte without going through the access machinery and without
// affecting the access counts. For debugging and test setup only.
func (r *RAM) Poke(addr uintptr, value uint8) error {
	if addr < r.origin || uint(addr-r.origin) >= uint(len(r.memory)) {
		return curated.Errorf(PokeError, addr)
	}
	r.memory[addr-r.origin] = value
	return nil
}

func (r *RAM) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%#x to %#x\n", r.origin, r.origin+uintptr(len(r.memory))-1))
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -a -b -c -d -e -f")
	for i, b := range r.memory {
		if i%16 == 0 {
			s.WriteString(fmt.Sprintf("\n%04x-", (uint(r.origin)+uint(i))/16))
		}
		s.WriteString(fmt.Sprintf(" %02x", b))
	}
	return s.String()
}
