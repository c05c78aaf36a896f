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

package curated_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/mmio/curated"
	"github.com/jetsetilly/mmio/test"
)

const testError = "test error: %v"
const wrapError = "wrap: %v"

func TestMatching(t *testing.T) {
	e := curated.Errorf(testError, "fail")

	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, wrapError))

	// plain errors never match
	p := fmt.Errorf("plain error")
	test.ExpectFailure(t, curated.IsAny(p))
	test.ExpectFailure(t, curated.Is(p, testError))

	// nil never matches
	test.ExpectFailure(t, curated.IsAny(nil))
	test.ExpectFailure(t, curated.Is(nil, testError))
	test.ExpectFailure(t, curated.Has(nil, testError))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testError, "fail")
	w := curated.Errorf(wrapError, e)

	// Is() matches the outermost pattern only. Has() searches the chain
	test.ExpectSuccess(t, curated.Is(w, wrapError))
	test.ExpectFailure(t, curated.Is(w, testError))
	test.ExpectSuccess(t, curated.Has(w, wrapError))
	test.ExpectSuccess(t, curated.Has(w, testError))
}

func TestDuplicateNormalisation(t *testing.T) {
	// a message that repeats the head of the message it wraps should
	// collapse the repetition
	e := curated.Errorf("error: %v", curated.Errorf("error: %v", "fail"))
	test.ExpectEquality(t, e.Error(), "error: fail")

	// non-adjacent repeats are left alone
	f := curated.Errorf("error: %v", curated.Errorf("other: %v", curated.Errorf("error: %v", "fail")))
	test.ExpectEquality(t, f.Error(), "error: other: error: fail")
}
