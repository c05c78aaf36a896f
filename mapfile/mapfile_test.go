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

package mapfile_test

import (
	"testing"

	"github.com/jetsetilly/mmio/curated"
	"github.com/jetsetilly/mmio/mapfile"
	"github.com/jetsetilly/mmio/memory"
	"github.com/jetsetilly/mmio/test"
)

const uartExample = `
regions:
  - name: uart0
    base: 0x3f8
    length: 8
    access: readwrite
    ordering: sequential
    registers:
      - name: THR
        offset: 0
        width: 1
      - name: LSR
        offset: 5
        width: 1
  - name: status
    base: 4096
    length: 4
    access: readonly
    registers:
      - name: READY
        offset: 0
        width: 4
`

func TestParse(t *testing.T) {
	m, err := mapfile.Parse([]byte(uartExample))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(m.Regions), 2)

	uart, ok := m.Region("uart0")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, uart.Base, 0x3f8)
	test.ExpectEquality(t, uart.Length, 8)

	access, ordering, err := uart.Policies()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, access, memory.ReadWrite)
	test.ExpectEquality(t, ordering, memory.OrderSequential)

	lsr, ok := uart.Register("LSR")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, lsr.Offset, 5)
	test.ExpectEquality(t, lsr.Width, 1)

	// decimal base and default ordering
	status, ok := m.Region("status")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, status.Base, 4096)
	_, ordering, err = status.Policies()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ordering, memory.OrderNone)

	_, ok = m.Region("missing")
	test.ExpectFailure(t, ok)
}

func TestNotValid(t *testing.T) {
	for _, doc := range []string{
		``,
		`regions: []`,

		// no name
		`
regions:
  - base: 0x1000
    length: 4
    access: readwrite
`,

		// unknown policy
		`
regions:
  - name: a
    base: 0x1000
    length: 4
    access: sometimes
`,

		// bad width
		`
regions:
  - name: a
    base: 0x1000
    length: 4
    access: readwrite
    registers:
      - name: r
        offset: 0
        width: 3
`,

		// register outside region
		`
regions:
  - name: a
    base: 0x1000
    length: 4
    access: readwrite
    registers:
      - name: r
        offset: 2
        width: 4
`,
	} {
		_, err := mapfile.Parse([]byte(doc))
		if test.ExpectFailure(t, err) {
			test.ExpectSuccess(t, curated.Has(err, mapfile.NotValid))
		}
	}
}
