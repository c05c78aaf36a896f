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

// Package logger is the central log for the entire program. Log entries are
// kept in memory and written out on request, or echoed immediately to an
// io.Writer set with SetEcho().
//
// Entries are made with the Log() and Logf() functions. A tag categorises the
// entry, by convention the name of the package or subsystem making the entry.
// Identical entries made in succession are collapsed into one entry with a
// repeat count.
package logger
