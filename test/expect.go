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

package test

import (
	"testing"
)

// ExpectEquality tests equality between one value and another. It is very
// convenient to be able to write the expected value as an untyped constant,
// which is why the expected argument is generic on its own parameter.
//
//	var v uint8
//	v = someFunction()
//	test.ExpectEquality(t, v, 10)
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equality test of type %T failed: %v does not equal %v", value, value, expectedValue)
	}
}

// ExpectFailure tests argument v for a failure condition suitable for its
// type. Supported types are bool and error. A bool fails when it is false
// and an error fails when it is not nil. An unsupported type fails the test
// immediately.
func ExpectFailure(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("expected failure (bool)")
			return false
		}

	case error:
		if v == nil {
			t.Errorf("expected failure (error)")
			return false
		}

	case nil:
		t.Errorf("expected failure (nil)")
		return false

	default:
		t.Fatalf("unsupported type (%T) for ExpectFailure()", v)
		return false
	}

	return true
}

// ExpectSuccess is the inverse of ExpectFailure. A bool succeeds when true
// and an error succeeds when nil.
func ExpectSuccess(t *testing.T, v interface{}) bool {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("expected success (bool)")
			return false
		}

	case error:
		if v != nil {
			t.Errorf("expected success (error): %v", v)
			return false
		}

	case nil:
		// nil is an acceptable success value. it facilitates testing of
		// functions that return an error or nil

	default:
		t.Fatalf("unsupported type (%T) for ExpectSuccess()", v)
		return false
	}

	return true
}

// ExpectPanic tests that the supplied function panics. Useful for testing
// contract violations that are surfaced as panics rather than errors.
func ExpectPanic(t *testing.T, f func()) {
	t.Helper()

	defer func() {
		t.Helper()
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()

	f()
}
