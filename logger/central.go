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

package logger

import (
	"fmt"
	"io"
)

// the maximum number of entries in the central logger before the oldest
// entries are lost.
const maxCentral = 256

var central = newLogger(maxCentral)

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, pattern string, args ...interface{}) {
	central.log(tag, fmt.Sprintf(pattern, args...))
}

// SetEcho to echo new entries to io.Writer as they are made. A nil writer
// turns echoing off.
func SetEcho(w io.Writer) {
	central.setEcho(w)
}

// Clear all entries from the central logger.
func Clear() {
	central.clear()
}

// Write the entire contents of the central logger to io.Writer.
func Write(w io.Writer) {
	central.write(w)
}

// Tail writes the last N entries of the central logger to io.Writer.
func Tail(w io.Writer, n int) {
	central.tail(w, n)
}
