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

package bus_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/mmio/memory/bus"
	"github.com/jetsetilly/mmio/test"
)

func TestAccessCounts(t *testing.T) {
	r := bus.NewRAM(0x2000, 16)

	test.ExpectEquality(t, r.LoadCount(0x2000), 0)
	test.ExpectEquality(t, r.StoreCount(0x2000), 0)

	r.Store(0x2000, 1, 0x12)
	r.Store(0x2000, 1, 0x12)
	test.ExpectEquality(t, r.StoreCount(0x2000), 2)

	test.ExpectEquality(t, r.Load(0x2000, 1), 0x12)
	test.ExpectEquality(t, r.LoadCount(0x2000), 1)

	// counts are per address
	test.ExpectEquality(t, r.LoadCount(0x2001), 0)
}

func TestWidths(t *testing.T) {
	r := bus.NewRAM(0x2000, 16)

	r.Store(0x2000, 4, 0x0a0b0c0d)
	test.ExpectEquality(t, r.Load(0x2000, 4), 0x0a0b0c0d)

	// little-endian byte order
	test.ExpectEquality(t, r.Load(0x2000, 1), 0x0d)
	test.ExpectEquality(t, r.Load(0x2003, 1), 0x0a)

	r.Store(0x2008, 8, 0x1122334455667788)
	test.ExpectEquality(t, r.Load(0x2008, 8), 0x1122334455667788)
	test.ExpectEquality(t, r.Load(0x2008, 2), 0x7788)
}

func TestWindow(t *testing.T) {
	r := bus.NewRAM(0x2000, 4)

	// accesses outside the window are programming errors
	test.ExpectPanic(t, func() {
		_ = r.Load(0x1fff, 1)
	})
	test.ExpectPanic(t, func() {
		_ = r.Load(0x2004, 1)
	})
	test.ExpectPanic(t, func() {
		// starts inside, ends outside
		_ = r.Load(0x2002, 4)
	})
	test.ExpectPanic(t, func() {
		r.Store(0x2004, 1, 0)
	})
}

func TestPeekPoke(t *testing.T) {
	r := bus.NewRAM(0x2000, 4)

	err := r.Poke(0x2001, 0xea)
	test.ExpectSuccess(t, err)

	v, err := r.Peek(0x2001)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xea)

	// peek and poke do not affect the access counts
	test.ExpectEquality(t, r.LoadCount(0x2001), 0)
	test.ExpectEquality(t, r.StoreCount(0x2001), 0)

	_, err = r.Peek(0x3000)
	test.ExpectFailure(t, err)
	err = r.Poke(0x3000, 0)
	test.ExpectFailure(t, err)
}

func TestString(t *testing.T) {
	r := bus.NewRAM(0x2000, 32)
	err := r.Poke(0x2000, 0xff)
	test.ExpectSuccess(t, err)

	s := r.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "0x2000 to 0x201f"))
	test.ExpectSuccess(t, strings.Contains(s, " ff"))
	test.ExpectEquality(t, strings.Count(s, "\n"), 3)
}
