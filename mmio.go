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

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/mmio/easyterm"
	"github.com/jetsetilly/mmio/logger"
	"github.com/jetsetilly/mmio/mapfile"
	"github.com/jetsetilly/mmio/memory"
	"github.com/jetsetilly/mmio/memory/bus"
	"github.com/jetsetilly/mmio/modalflag"
	"github.com/jetsetilly/mmio/statsview"
	"github.com/jetsetilly/mmio/version"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("DUMP", "WATCH", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "DUMP":
		err = dump(md)
	case "WATCH":
		err = watch(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		os.Exit(20)
	}
}

// openMap opens every region of the map file over a single bus. The bus is
// plain memory when useRAM is true and a mapping of the device file
// otherwise.
func openMap(mf *mapfile.Mapfile, useRAM bool, device string) (*memory.Map, map[string]*memory.Region, func() error, error) {
	// the bus window spans all the regions of the map file
	lo := uintptr(mf.Regions[0].Base)
	hi := lo
	for _, rc := range mf.Regions {
		if uintptr(rc.Base) < lo {
			lo = uintptr(rc.Base)
		}
		if end := uintptr(rc.Base) + uintptr(rc.Length); end > hi {
			hi = end
		}
	}

	var b bus.Bus
	closer := func() error { return nil }

	if useRAM {
		b = bus.NewRAM(lo, uint(hi-lo))
	} else {
		mm, err := bus.NewMmap(device, lo, uint(hi-lo))
		if err != nil {
			return nil, nil, nil, err
		}
		b = mm
		closer = mm.Close
	}

	mem := memory.NewMap(b)
	regions := make(map[string]*memory.Region)

	for _, rc := range mf.Regions {
		access, ordering, err := rc.Policies()
		if err != nil {
			closer()
			return nil, nil, nil, err
		}

		r, err := mem.OpenRegion(rc.Name, uintptr(rc.Base), rc.Length, access, ordering)
		if err != nil {
			closer()
			return nil, nil, nil, err
		}
		regions[rc.Name] = r
	}

	return mem, regions, closer, nil
}

// the width of a register is only known at run time so a handle of the
// right type is created on demand.

func readWidth[T memory.Data](r *memory.Region, offset uint) (uint64, error) {
	g, err := memory.NewRegister[T](r, offset, memory.ReadOnly)
	if err != nil {
		return 0, err
	}
	return uint64(g.Read()), nil
}

func readRegister(r *memory.Region, rc *mapfile.Register) (uint64, error) {
	switch rc.Width {
	case 1:
		return readWidth[uint8](r, uint(rc.Offset))
	case 2:
		return readWidth[uint16](r, uint(rc.Offset))
	case 4:
		return readWidth[uint32](r, uint(rc.Offset))
	case 8:
		return readWidth[uint64](r, uint(rc.Offset))
	}
	return 0, fmt.Errorf("unsupported width (%d)", rc.Width)
}

func pollWidth[T memory.Data](r *memory.Region, offset uint, mask uint64, equals uint64,
	interval time.Duration, timeout time.Duration) (uint64, error) {

	g, err := memory.NewRegister[T](r, offset, memory.ReadOnly)
	if err != nil {
		return 0, err
	}
	v, err := memory.Poll(g, func(v T) bool {
		return uint64(v)&mask == equals
	}, interval, timeout)
	return uint64(v), err
}

func pollRegister(r *memory.Region, rc *mapfile.Register, mask uint64, equals uint64,
	interval time.Duration, timeout time.Duration) (uint64, error) {

	switch rc.Width {
	case 1:
		return pollWidth[uint8](r, uint(rc.Offset), mask, equals, interval, timeout)
	case 2:
		return pollWidth[uint16](r, uint(rc.Offset), mask, equals, interval, timeout)
	case 4:
		return pollWidth[uint32](r, uint(rc.Offset), mask, equals, interval, timeout)
	case 8:
		return pollWidth[uint64](r, uint(rc.Offset), mask, equals, interval, timeout)
	}
	return 0, fmt.Errorf("unsupported width (%d)", rc.Width)
}

func dump(md *modalflag.Modes) error {
	md.NewMode()

	useRAM := md.AddBool("ram", false, "back the map file with plain memory rather than the device")
	device := md.AddString("device", "", "device file to map (default: "+bus.DefaultDevice+")")
	viz := md.AddString("viz", "", "write graphviz visualisation of the memory map to file")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}
	if *stats {
		statsview.Launch(md.Output)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("map file required")
	case 1:
	default:
		return fmt.Errorf("too many arguments")
	}

	mf, err := mapfile.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	mem, regions, closer, err := openMap(mf, *useRAM, *device)
	if err != nil {
		return err
	}
	defer closer()

	fmt.Fprintln(md.Output, mem)

	for _, rc := range mf.Regions {
		r := regions[rc.Name]
		for i := range rc.Registers {
			gc := &rc.Registers[i]
			if !r.Access().CanRead() {
				fmt.Fprintf(md.Output, "%s.%s (writeonly)\n", rc.Name, gc.Name)
				continue
			}

			v, err := readRegister(r, gc)
			if err != nil {
				return err
			}
			fmt.Fprintf(md.Output, "%s.%s = %#0*x\n", rc.Name, gc.Name, int(gc.Width*2), v)
		}
	}

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, mem)
		fmt.Fprintf(md.Output, "memory map visualisation written to %s\n", *viz)
	}

	return nil
}

func watch(md *modalflag.Modes) error {
	md.NewMode()

	useRAM := md.AddBool("ram", false, "back the map file with plain memory rather than the device")
	device := md.AddString("device", "", "device file to map (default: "+bus.DefaultDevice+")")
	interval := md.AddDuration("interval", 100*time.Millisecond, "time between reads")
	timeout := md.AddDuration("timeout", 10*time.Second, "give up after this long")
	mask := md.AddUint64("mask", ^uint64(0), "mask applied to the value before comparison")
	equals := md.AddUint64("equals", 0, "masked value to wait for")
	log := md.AddBool("log", false, "echo debugging log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("map file and register (eg. uart0.LSR) required")
	}

	mf, err := mapfile.Load(md.GetArg(0))
	if err != nil {
		return err
	}

	spec := strings.SplitN(md.GetArg(1), ".", 2)
	if len(spec) != 2 {
		return fmt.Errorf("register must be specified as region.register")
	}

	rc, ok := mf.Region(spec[0])
	if !ok {
		return fmt.Errorf("no region named %s in map file", spec[0])
	}
	gc, ok := rc.Register(spec[1])
	if !ok {
		return fmt.Errorf("no register named %s in region %s", spec[1], spec[0])
	}

	_, regions, closer, err := openMap(mf, *useRAM, *device)
	if err != nil {
		return err
	}
	defer closer()

	r := regions[rc.Name]
	if !r.Access().CanRead() {
		return fmt.Errorf("%s is not readable", md.GetArg(1))
	}

	// cbreak terminal so a single key can abandon the watch. a failure here
	// is not fatal, we just lose the quit key (input may not be a terminal)
	term := &easyterm.Terminal{}
	if err := term.Initialise(os.Stdin); err == nil {
		if err := term.CBreakMode(); err == nil {
			defer term.CanonicalMode()
			go func() {
				for {
					k, err := term.ReadKey()
					if err != nil {
						return
					}
					if k == 'q' || k == 'Q' {
						term.CanonicalMode()
						fmt.Println("\nwatch abandoned")
						os.Exit(2)
					}
				}
			}()
		}
	} else {
		logger.Logf("easyterm", "%v", err)
	}

	fmt.Fprintf(md.Output, "waiting for %s & %#x == %#x ('q' to abandon)\n",
		md.GetArg(1), *mask, *equals)

	v, err := pollRegister(r, gc, *mask, *equals, *interval, *timeout)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s = %#0*x\n", md.GetArg(1), int(gc.Width*2), v)

	return nil
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, version.Version())

	return nil
}
