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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It wraps
// the termios calls in functions with friendlier names. Just enough is
// provided for single-key input while a watch is in progress.
package easyterm

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is the main container for posix terminals. Usually embedded in
// other struct types.
type Terminal struct {
	input *os.File

	// the attributes to restore when we're done
	canAttr unix.Termios

	// as canAttr but with line buffering and echo turned off
	cbreakAttr unix.Termios
}

// Initialise the fields in the Terminal struct. The attributes of the
// terminal are not changed until CBreakMode() is called.
func (pt *Terminal) Initialise(input *os.File) error {
	pt.input = input

	if err := termios.Tcgetattr(input.Fd(), &pt.canAttr); err != nil {
		return err
	}

	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return nil
}

// CBreakMode puts the terminal into cbreak mode: input is available
// character by character and is not echoed.
func (pt *Terminal) CBreakMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.cbreakAttr)
}

// CanonicalMode restores the terminal attributes found by Initialise().
func (pt *Terminal) CanonicalMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr)
}

// ReadKey blocks until a single key is available.
func (pt *Terminal) ReadKey() (byte, error) {
	b := make([]byte, 1)
	if _, err := pt.input.Read(b); err != nil {
		return 0, err
	}
	return b[0], nil
}
