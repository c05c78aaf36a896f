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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) with different flags for each mode.
//
// Idiomatic usage:
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("DUMP", "WATCH", "VERSION")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		...
//	}
//
//	switch md.Mode() {
//	case "DUMP":
//		...
//	}
//
// Each mode handler calls NewMode() again, adds the flags for that mode and
// calls Parse() again. Arguments not consumed by flags or by sub-mode
// selection are available through RemainingArgs() and GetArg().
package modalflag

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes provides an easy way of handling command line arguments in layers.
// The Output field should be specified before calling Parse() or help
// messages will go to os.Stdout.
type Modes struct {
	// where to print help messages
	Output io.Writer

	// the underlying flagset. recreated on every call to NewMode()
	flags *flag.FlagSet

	// arguments still to be parsed. updated by Parse() as flags and
	// sub-modes are consumed
	args []string

	// sub-modes valid for the next call to Parse(). the first entry is the
	// default
	subModes []string

	// the series of sub-modes encountered over successive calls to Parse()
	path []string

	// additional text for the help message of the current mode
	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the last mode to be encountered.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes encountered during parsing.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs begins parsing of a fresh set of arguments (from the command line
// for example).
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode indicates that further arguments are to be treated as part of a
// new (sub-)mode with its own flags.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
}

// AddSubModes valid for the next call to Parse(). The first sub-mode listed
// is the default, selected when the first argument matches no sub-mode.
// Sub-mode comparison is case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, sm := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(sm))
	}
}

// AdditionalHelp text to display after the flags in the help message.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned from the Parse() function.
type ParseResult int

// A list of valid ParseResult values.
const (
	// parsing succeeded; continue with command line processing
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error occurred and is returned as the second return value
	ParseError
)

// Parse the next layer of arguments.
func (md *Modes) Parse() (ParseResult, error) {
	output := md.Output
	if output == nil {
		output = os.Stdout
	}

	// the flag package writes its own messages as it parses. suppress them,
	// we compose the help message ourselves
	md.flags.SetOutput(io.Discard)

	err := md.flags.Parse(md.args)
	if err != nil {
		if err == flag.ErrHelp {
			md.help(output)
			return ParseHelp, nil
		}
		return ParseError, err
	}

	md.args = md.flags.Args()

	if len(md.subModes) > 0 {
		// assume the default sub-mode until an argument says otherwise
		mode := md.subModes[0]

		if len(md.args) > 0 {
			arg := strings.ToUpper(md.args[0])
			for _, sm := range md.subModes {
				if sm == arg {
					mode = arg
					md.args = md.args[1:]
					break // for loop
				}
			}
		}

		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

func (md *Modes) help(output io.Writer) {
	if len(md.subModes) > 0 {
		fmt.Fprintf(output, "available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(output, "  default: %s\n", md.subModes[0])
	}

	numFlags := 0
	md.flags.VisitAll(func(*flag.Flag) { numFlags++ })
	if numFlags > 0 {
		fmt.Fprintln(output, "available flags:")
		md.flags.SetOutput(output)
		md.flags.PrintDefaults()
		md.flags.SetOutput(io.Discard)
	}

	if md.additionalHelp != "" {
		fmt.Fprintln(output, md.additionalHelp)
	}
}

// RemainingArgs are the arguments not consumed by flags or sub-mode
// selection in the previous call to Parse().
func (md *Modes) RemainingArgs() []string {
	return md.args
}

// GetArg returns the numbered argument from RemainingArgs(), or the empty
// string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	if i >= len(md.args) {
		return ""
	}
	return md.args[i]
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddDuration flag for the next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddUint flag for the next call to Parse().
func (md *Modes) AddUint(name string, value uint, usage string) *uint {
	return md.flags.Uint(name, value, usage)
}

// AddUint64 flag for the next call to Parse().
func (md *Modes) AddUint64(name string, value uint64, usage string) *uint64 {
	return md.flags.Uint64(name, value, usage)
}
