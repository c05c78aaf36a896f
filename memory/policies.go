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

package memory

import (
	"strings"

	"github.com/jetsetilly/mmio/curated"
)

// AccessPolicy declares the direction of access a region (or a register
// handle derived from it) supports.
type AccessPolicy int

// Valid AccessPolicy values.
const (
	ReadOnly AccessPolicy = iota
	WriteOnly
	ReadWrite
)

func (p AccessPolicy) String() string {
	switch p {
	case ReadOnly:
		return "readonly"
	case WriteOnly:
		return "writeonly"
	case ReadWrite:
		return "readwrite"
	}
	return "unknown"
}

// CanRead returns true if the policy grants read capability.
func (p AccessPolicy) CanRead() bool {
	return p == ReadOnly || p == ReadWrite
}

// CanWrite returns true if the policy grants write capability.
func (p AccessPolicy) CanWrite() bool {
	return p == WriteOnly || p == ReadWrite
}

// allows checks that every capability of the requested policy is granted by
// policy p.
func (p AccessPolicy) allows(req AccessPolicy) bool {
	if req.CanRead() && !p.CanRead() {
		return false
	}
	if req.CanWrite() && !p.CanWrite() {
		return false
	}
	return true
}

// ParseAccessPolicy converts a policy name, as found in a map file for
// example, to an AccessPolicy.
func ParseAccessPolicy(s string) (AccessPolicy, error) {
	switch strings.ToLower(s) {
	case "readonly", "ro":
		return ReadOnly, nil
	case "writeonly", "wo":
		return WriteOnly, nil
	case "readwrite", "rw":
		return ReadWrite, nil
	}
	return ReadOnly, curated.Errorf(PolicyError, s)
}

// OrderingPolicy declares whether barriers are emitted around the accesses
// of a region. Barriers order accesses with respect to other CPUs; they make
// no difference to the one-access-per-call guarantee, which always holds.
type OrderingPolicy int

// Valid OrderingPolicy values.
//
// OrderNone emits no barriers. OrderAcquireRelease emits an acquiring
// barrier after every load and a releasing barrier before every store.
// OrderSequential emits a full barrier either side of every access; all
// accesses to the region appear in program order from anywhere in the
// system.
const (
	OrderNone OrderingPolicy = iota
	OrderAcquireRelease
	OrderSequential
)

func (p OrderingPolicy) String() string {
	switch p {
	case OrderNone:
		return "none"
	case OrderAcquireRelease:
		return "acquirerelease"
	case OrderSequential:
		return "sequential"
	}
	return "unknown"
}

// ParseOrderingPolicy converts an ordering name, as found in a map file for
// example, to an OrderingPolicy.
func ParseOrderingPolicy(s string) (OrderingPolicy, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return OrderNone, nil
	case "acquirerelease", "acqrel":
		return OrderAcquireRelease, nil
	case "sequential", "seq":
		return OrderSequential, nil
	}
	return OrderNone, curated.Errorf(PolicyError, s)
}
