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

// Package version records the name and version of the application.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "mmio"

// the version number of the most recent release.
const number = "0.1.0"

// Version returns the version number of the project along with the vcs
// revision the binary was built from, when that information is available. A
// "+dirty" suffix means the source had been modified but not committed at
// build time.
func Version() string {
	revision := "no vcs information"

	if info, ok := debug.ReadBuildInfo(); ok {
		var rev string
		var dirty bool
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}
		if len(rev) > 8 {
			rev = rev[:8]
		}
		if rev != "" {
			revision = rev
			if dirty {
				revision += "+dirty"
			}
		}
	}

	return fmt.Sprintf("%s (%s)", number, revision)
}
