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

//go:build !linux

package bus

import (
	"github.com/jetsetilly/mmio/curated"
)

// DefaultDevice is the device file mapped by NewMmap when no other device is
// specified by the caller.
const DefaultDevice = "/dev/mem"

// Mmap is only available on linux. On other platforms NewMmap always returns
// an error and the type exists only so that callers compile.
type Mmap struct{}

// NewMmap is not supported on this platform.
func NewMmap(device string, base uintptr, length uint) (*Mmap, error) {
	return nil, curated.Errorf(DeviceError, "memory mapping not supported on this platform")
}

// Load implements the Bus interface.
func (m *Mmap) Load(addr uintptr, width uint) uint64 {
	panic(curated.Errorf(DeviceError, "not supported"))
}

// Store implements the Bus interface.
func (m *Mmap) Store(addr uintptr, width uint, data uint64) {
	panic(curated.Errorf(DeviceError, "not supported"))
}

// Barrier implements the Bus interface.
func (m *Mmap) Barrier() {
}

// Close is a no-op on this platform.
func (m *Mmap) Close() error {
	return nil
}
