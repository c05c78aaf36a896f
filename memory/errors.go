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

// Error patterns returned by the memory package. Callers can differentiate
// with curated.Is() / curated.Has().
const (
	// base address is null, or the requested region is otherwise nonsense
	InvalidAddress = "memory: invalid address: %v"

	// requested region intersects a live region of the same Map
	OverlapError = "memory: region overlap: %v"

	// register out of bounds, misaligned, already claimed, or requesting a
	// capability the region's policy doesn't grant
	AccessViolation = "memory: access violation: %v"

	// Poll() reached its timeout before the predicate held
	TimeoutError = "memory: poll timeout: %v"

	// unknown access/ordering policy name
	PolicyError = "memory: unknown policy: %v"
)

// Panic patterns used for contract violations by the caller. These are
// programming errors and are deliberately not recoverable.
const (
	// register accessed after its region has been released
	StaleRegister = "memory: stale register: %v"

	// Poll() called with a non-positive interval or timeout. a
	// misparameterised poll is not a timeout and matches neither pattern
	InvalidPoll = "memory: invalid poll: %v"
)
