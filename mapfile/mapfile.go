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

// Package mapfile loads a YAML description of the registers of a piece of
// hardware. Map files configure the mmio command line tool; the memory
// package itself never reads one.
//
// An example map file:
//
//	regions:
//	  - name: uart0
//	    base: 0x3f8
//	    length: 8
//	    access: readwrite
//	    ordering: sequential
//	    registers:
//	      - name: THR
//	        offset: 0
//	        width: 1
//	      - name: LSR
//	        offset: 5
//	        width: 1
//
// Addresses and offsets can be decimal or "0x" hexadecimal. The access and
// ordering fields take the policy names understood by the memory package;
// ordering may be omitted.
package mapfile

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/jetsetilly/mmio/curated"
	"github.com/jetsetilly/mmio/memory"
)

// NotValid is the error pattern returned for a map file that cannot be
// parsed or that fails validation.
const NotValid = "mapfile: %v"

// Address is a uintptr that can be unmarshalled from a decimal or a "0x"
// hexadecimal YAML scalar.
type Address uintptr

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (a *Address) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}

	switch v := v.(type) {
	case int:
		if v < 0 {
			return curated.Errorf(NotValid, fmt.Sprintf("negative address (%d)", v))
		}
		*a = Address(v)

	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		var n uint64
		var err error
		if strings.HasPrefix(s, "0x") {
			n, err = strconv.ParseUint(s[2:], 16, 64)
		} else {
			n, err = strconv.ParseUint(s, 10, 64)
		}
		if err != nil {
			return curated.Errorf(NotValid, fmt.Sprintf("bad address (%s)", v))
		}
		*a = Address(n)

	default:
		return curated.Errorf(NotValid, fmt.Sprintf("bad address (%v)", v))
	}

	return nil
}

// Register describes a single register within a region.
type Register struct {
	Name   string  `yaml:"name"`
	Offset Address `yaml:"offset"`
	Width  uint    `yaml:"width"`
}

// Region describes a contiguous range of registers.
type Region struct {
	Name      string     `yaml:"name"`
	Base      Address    `yaml:"base"`
	Length    uint       `yaml:"length"`
	Access    string     `yaml:"access"`
	Ordering  string     `yaml:"ordering"`
	Registers []Register `yaml:"registers"`
}

// Policies returns the parsed access and ordering policies of the region.
// Always succeeds on a Region that came from Parse() or Load().
func (r *Region) Policies() (memory.AccessPolicy, memory.OrderingPolicy, error) {
	access, err := memory.ParseAccessPolicy(r.Access)
	if err != nil {
		return access, memory.OrderNone, curated.Errorf(NotValid, err)
	}
	ordering, err := memory.ParseOrderingPolicy(r.Ordering)
	if err != nil {
		return access, ordering, curated.Errorf(NotValid, err)
	}
	return access, ordering, nil
}

// Register returns the named register of the region.
func (r *Region) Register(name string) (*Register, bool) {
	for i := range r.Registers {
		if r.Registers[i].Name == name {
			return &r.Registers[i], true
		}
	}
	return nil, false
}

// Mapfile is the top level of a map file.
type Mapfile struct {
	Regions []Region `yaml:"regions"`
}

// Region returns the named region of the map file.
func (m *Mapfile) Region(name string) (*Region, bool) {
	for i := range m.Regions {
		if m.Regions[i].Name == name {
			return &m.Regions[i], true
		}
	}
	return nil, false
}

// Parse and validate a map file.
func Parse(data []byte) (*Mapfile, error) {
	m := &Mapfile{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, curated.Errorf(NotValid, err)
	}

	if len(m.Regions) == 0 {
		return nil, curated.Errorf(NotValid, "no regions")
	}

	names := make(map[string]bool)
	for _, r := range m.Regions {
		if r.Name == "" {
			return nil, curated.Errorf(NotValid, "region without a name")
		}
		if names[r.Name] {
			return nil, curated.Errorf(NotValid, fmt.Sprintf("duplicate region (%s)", r.Name))
		}
		names[r.Name] = true

		if r.Length == 0 {
			return nil, curated.Errorf(NotValid, fmt.Sprintf("%s: zero length", r.Name))
		}

		if _, _, err := r.Policies(); err != nil {
			return nil, err
		}

		regNames := make(map[string]bool)
		for _, g := range r.Registers {
			if g.Name == "" {
				return nil, curated.Errorf(NotValid, fmt.Sprintf("%s: register without a name", r.Name))
			}
			if regNames[g.Name] {
				return nil, curated.Errorf(NotValid, fmt.Sprintf("%s: duplicate register (%s)", r.Name, g.Name))
			}
			regNames[g.Name] = true

			switch g.Width {
			case 1, 2, 4, 8:
			default:
				return nil, curated.Errorf(NotValid,
					fmt.Sprintf("%s.%s: bad width (%d)", r.Name, g.Name, g.Width))
			}

			if uint(g.Offset)+g.Width > r.Length {
				return nil, curated.Errorf(NotValid,
					fmt.Sprintf("%s.%s: register outside region", r.Name, g.Name))
			}
		}
	}

	return m, nil
}

// Load a map file from disk. see Parse().
func Load(filename string) (*Mapfile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(NotValid, err)
	}
	return Parse(data)
}
