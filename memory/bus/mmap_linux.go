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

//go:build linux

package bus

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/jetsetilly/mmio/curated"
	"github.com/jetsetilly/mmio/logger"
	"github.com/jetsetilly/mmio/memory/volatile"
)

// DefaultDevice is the device file mapped by NewMmap when no other device is
// specified by the caller.
const DefaultDevice = "/dev/mem"

// Mmap is a Bus backed by a mapped window of a device file. Accesses go
// through the volatile package so that each Load and Store is a single
// machine access.
type Mmap struct {
	device string
	file   *os.File

	base   uintptr
	length uint

	// the mapping is page aligned. offset is the position of base within the
	// mapped slice
	memory []byte
	offset uint
}

// NewMmap maps the window [base, base+length) of the named device file. An
// empty device name maps DefaultDevice.
func NewMmap(device string, base uintptr, length uint) (*Mmap, error) {
	if device == "" {
		device = DefaultDevice
	}

	f, err := os.OpenFile(device, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, curated.Errorf(DeviceError, err)
	}

	// mmap wants a page aligned offset and a whole number of pages
	pg := uint(unix.Getpagesize())
	offset := uint(base) % pg
	mapLen := (offset + length + pg - 1) / pg * pg

	mem, err := unix.Mmap(int(f.Fd()), int64(base-uintptr(offset)), int(mapLen),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, curated.Errorf(DeviceError, err)
	}

	logger.Logf("mmap", "%s: %#x bytes mapped at %#x", device, mapLen, base-uintptr(offset))

	return &Mmap{
		device: device,
		file:   f,
		base:   base,
		length: length,
		memory: mem,
		offset: offset,
	}, nil
}

// pointer converts an absolute address to a pointer into the mapping,
// panicking if the access does not fit the window.
func (m *Mmap) pointer(addr uintptr, width uint) unsafe.Pointer {
	if addr < m.base || uint(addr-m.base)+width > m.length {
		panic(curated.Errorf(AccessOutsideWindow, addr, width))
	}
	return unsafe.Pointer(&m.memory[m.offset+uint(addr-m.base)])
}

// Load implements the Bus interface.
func (m *Mmap) Load(addr uintptr, width uint) uint64 {
	p := m.pointer(addr, width)
	switch width {
	case 1:
		return uint64(volatile.Load8(p))
	case 2:
		return uint64(volatile.Load16(p))
	case 4:
		return uint64(volatile.Load32(p))
	case 8:
		return volatile.Load64(p)
	}
	panic(curated.Errorf(UnsupportedWidth, width))
}

// Store implements the Bus interface.
func (m *Mmap) Store(addr uintptr, width uint, data uint64) {
	p := m.pointer(addr, width)
	switch width {
	case 1:
		volatile.Store8(p, uint8(data))
	case 2:
		volatile.Store16(p, uint16(data))
	case 4:
		volatile.Store32(p, uint32(data))
	case 8:
		volatile.Store64(p, data)
	default:
		panic(curated.Errorf(UnsupportedWidth, width))
	}
}

// Barrier implements the Bus interface.
func (m *Mmap) Barrier() {
	volatile.Barrier()
}

// Close unmaps the window and closes the device file. The Mmap must not be
// used after Close.
func (m *Mmap) Close() error {
	err := unix.Munmap(m.memory)
	m.memory = nil
	if e := m.file.Close(); err == nil {
		err = e
	}
	if err != nil {
		return curated.Errorf(DeviceError, err)
	}
	logger.Logf("mmap", "%s: unmapped", m.device)
	return nil
}
