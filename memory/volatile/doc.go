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

// Package volatile provides the load and store primitives used when talking
// to memory-mapped hardware. Each function performs exactly one access of the
// named width.
//
// The functions are marked //go:noinline so the compiler cannot inline a call
// site and then elide, duplicate or merge the access with its neighbours. A
// register read must reach the wire even when the value "cannot have
// changed"; a register write must reach the wire even when the value is the
// same as the previous write.
//
// Barrier() orders accesses with respect to other goroutines/CPUs. The
// guarantee made by the noinline functions is only about accesses issued by
// the calling goroutine; whether the hardware itself speculates reads or
// buffers writes is a property of the platform and is not addressed here.
//
// Nothing in this package checks addresses. It is the responsibility of the
// memory package to only ever hand this package validated pointers.
package volatile
