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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and so can be used wherever a
// regular error is expected.
//
// Curated errors are created with the Errorf() function. Like the Errorf()
// function in the fmt package it takes a formatting pattern and placeholder
// values. Unlike the fmt package the pattern is retained and can be used to
// identify the error later, which is why the argument is named pattern and
// not format.
//
//	e := curated.Errorf("register: bad offset (%d)", offset)
//
//	if curated.Is(e, "register: bad offset (%d)") {
//		...
//	}
//
// Packages that want their errors to be identifiable in this way should
// declare the pattern as a const, exporting it where callers are expected to
// differentiate.
//
// The Has() function is like Is() but checks the entire error chain. A chain
// is built naturally whenever a curated error is used as a placeholder value
// in another curated error.
package curated
