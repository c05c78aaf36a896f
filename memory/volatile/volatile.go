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

package volatile

import (
	"sync/atomic"
	"unsafe"
)

// each function is marked noinline so that the access cannot be folded into
// the caller and optimised away or combined with a neighbouring access. they
// are also marked nosplit: a stack split between deriving the pointer and
// using it would give the runtime a chance to move things around under us.

//go:noinline
//go:nosplit
func Load8(p unsafe.Pointer) uint8 {
	return *(*uint8)(p)
}

//go:noinline
//go:nosplit
func Load16(p unsafe.Pointer) uint16 {
	return *(*uint16)(p)
}

//go:noinline
//go:nosplit
func Load32(p unsafe.Pointer) uint32 {
	return *(*uint32)(p)
}

//go:noinline
//go:nosplit
func Load64(p unsafe.Pointer) uint64 {
	return *(*uint64)(p)
}

//go:noinline
//go:nosplit
func Store8(p unsafe.Pointer, v uint8) {
	*(*uint8)(p) = v
}

//go:noinline
//go:nosplit
func Store16(p unsafe.Pointer, v uint16) {
	*(*uint16)(p) = v
}

//go:noinline
//go:nosplit
func Store32(p unsafe.Pointer, v uint32) {
	*(*uint32)(p) = v
}

//go:noinline
//go:nosplit
func Store64(p unsafe.Pointer, v uint64) {
	*(*uint64)(p) = v
}

var fence int32

// Barrier emits a full memory barrier. A locked read-modify-write is the
// portable way of getting a full fence out of the Go toolchain without
// dropping to assembly.
//
//go:noinline
func Barrier() {
	atomic.CompareAndSwapInt32(&fence, 0, 0)
}
