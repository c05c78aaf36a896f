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
	"unsafe"

	"github.com/jetsetilly/mmio/curated"
)

// Data constrains the types a register can be typed on. The width of the
// register is the width of the type.
type Data interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Register is a typed handle to a single hardware register within a region.
// Registers are created with NewRegister(), never directly, and there is no
// way to duplicate one. A caller wanting to share a register between
// goroutines must wrap it in its own synchronisation.
type Register[T Data] struct {
	reg    *Region
	addr   uintptr
	offset uint
	width  uint

	read  bool
	write bool
}

// NewRegister derives a typed register from a region. offset is in bytes
// from the start of the region. access declares the capabilities the handle
// needs; it must not exceed what the region's policy grants.
//
// Returns an error matching the AccessViolation pattern if the register does
// not fit the region, is misaligned for its width, overlaps a register that
// has already been claimed, or requests an unavailable capability. A claimed
// register stays claimed until the region is released.
//
// Because all preconditions are checked here, the returned register's Read()
// and Write() cannot fail.
func NewRegister[T Data](r *Region, offset uint, access AccessPolicy) (*Register[T], error) {
	var zero T
	width := uint(unsafe.Sizeof(zero))

	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if !r.access.allows(access) {
		return nil, curated.Errorf(AccessViolation,
			fmt.Sprintf("%s: %s capability on %s region", r.label, access, r.access))
	}

	if err := r.claimRange(offset, width); err != nil {
		return nil, err
	}

	return &Register[T]{
		reg:    r,
		addr:   r.base + uintptr(offset),
		offset: offset,
		width:  width,
		read:   access.CanRead(),
		write:  access.CanWrite(),
	}, nil
}

// Offset returns the register's offset in bytes from the start of its
// region. Note that there is deliberately no way of obtaining the absolute
// address.
func (g *Register[T]) Offset() uint {
	return g.offset
}

// Width returns the width of the register in bytes.
func (g *Register[T]) Width() uint {
	return g.width
}

// CanRead returns true if the handle was constructed with read capability.
func (g *Register[T]) CanRead() bool {
	return g.read
}

// CanWrite returns true if the handle was constructed with write capability.
func (g *Register[T]) CanWrite() bool {
	return g.write
}

func (g *Register[T]) String() string {
	return fmt.Sprintf("%s+%#x", g.reg.label, g.offset)
}

// contract panics if the handle can no longer be used or was never capable
// of the operation. both are programming errors.
func (g *Register[T]) contract(capable bool, op string) {
	if g.reg.released {
		panic(curated.Errorf(StaleRegister, fmt.Sprintf("%s of %s", op, g)))
	}
	if !capable {
		panic(curated.Errorf(AccessViolation,
			fmt.Sprintf("%s of %s through handle without %s capability", op, g, op)))
	}
}

// Read issues exactly one load on the bus and returns the value. The load is
// never elided, never satisfied from a cached value and never merged with a
// neighbouring access: calling Read() twice issues two loads even if nothing
// has written to the register in between.
//
// Read cannot fail. Reading a stale or write-only handle panics.
func (g *Register[T]) Read() T {
	g.contract(g.read, "read")

	b := g.reg.m.b

	switch g.reg.ordering {
	case OrderSequential:
		b.Barrier()
		v := b.Load(g.addr, g.width)
		b.Barrier()
		return T(v)

	case OrderAcquireRelease:
		// acquire: no later access moves before the load
		v := b.Load(g.addr, g.width)
		b.Barrier()
		return T(v)
	}

	return T(b.Load(g.addr, g.width))
}

// Write issues exactly one store on the bus. The store is never dropped and
// never coalesced: writing the same value twice issues two stores.
//
// Write cannot fail. Writing a stale or read-only handle panics.
func (g *Register[T]) Write(data T) {
	g.contract(g.write, "write")

	b := g.reg.m.b

	switch g.reg.ordering {
	case OrderSequential:
		b.Barrier()
		b.Store(g.addr, g.width, uint64(data))
		b.Barrier()
		return

	case OrderAcquireRelease:
		// release: no earlier access moves after the store
		b.Barrier()
		b.Store(g.addr, g.width, uint64(data))
		return
	}

	b.Store(g.addr, g.width, uint64(data))
}
