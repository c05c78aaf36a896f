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

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/mmio/logger"
	"github.com/jetsetilly/mmio/test"
)

func TestCentral(t *testing.T) {
	logger.Clear()

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "")

	logger.Log("test", "this is a test")
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "test: this is a test\n")
}

func TestRepeats(t *testing.T) {
	logger.Clear()

	logger.Log("test", "same entry")
	logger.Log("test", "same entry")
	logger.Log("test", "same entry")

	s := &strings.Builder{}
	logger.Write(s)
	test.ExpectEquality(t, s.String(), "test: same entry (repeat x3)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log("test", "entry one")
	logger.Log("test", "entry two")
	logger.Log("test", "entry three")

	s := &strings.Builder{}
	logger.Tail(s, 1)
	test.ExpectEquality(t, s.String(), "test: entry three\n")

	s.Reset()
	logger.Tail(s, 100)
	test.ExpectEquality(t, strings.Count(s.String(), "\n"), 3)
}
