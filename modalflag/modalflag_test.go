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

package modalflag_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/mmio/modalflag"
	"github.com/jetsetilly/mmio/test"
)

func TestNoModes(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"file.yml"})

	verbose := md.AddBool("verbose", false, "echo log")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, *verbose, false)
	test.ExpectEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "file.yml")
}

func TestSubModes(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"watch", "file.yml"})
	md.AddSubModes("DUMP", "WATCH")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)

	// mode comparison is case insensitive
	test.ExpectEquality(t, md.Mode(), "WATCH")

	// the mode argument has been consumed
	test.ExpectEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "file.yml")
}

func TestDefaultSubMode(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"file.yml"})
	md.AddSubModes("DUMP", "WATCH")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)

	// no argument matched a sub-mode so the default was selected and no
	// argument was consumed
	test.ExpectEquality(t, md.Mode(), "DUMP")
	test.ExpectEquality(t, md.GetArg(0), "file.yml")
}

func TestModeFlags(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"watch", "-interval", "50ms", "file.yml"})
	md.AddSubModes("DUMP", "WATCH")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "WATCH")

	// flags for the WATCH mode are declared after the mode has been
	// selected
	md.NewMode()
	interval := md.AddDuration("interval", time.Second, "time between reads")

	p, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectEquality(t, *interval, 50*time.Millisecond)
	test.ExpectEquality(t, md.GetArg(0), "file.yml")

	test.ExpectEquality(t, md.Path(), "WATCH")
}

func TestParseError(t *testing.T) {
	md := &modalflag.Modes{}
	md.NewArgs([]string{"-no-such-flag"})

	p, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, p, modalflag.ParseError)
}
