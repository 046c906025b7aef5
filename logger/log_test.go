// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/test"
)

func TestLogger(t *testing.T) {
	l := newLogger(100)

	s := &strings.Builder{}
	l.write(s)
	test.Equate(t, s.String(), "")

	l.log("test", "this is a test")
	l.write(s)
	test.Equate(t, s.String(), "test: this is a test\n")

	s.Reset()
	l.logf("test", "this is a %s", "formatted test")
	l.write(s)
	test.Equate(t, s.String(), "test: this is a test\ntest: this is a formatted test\n")
}

func TestRepeatFolding(t *testing.T) {
	l := newLogger(100)

	l.log("test", "same message")
	l.log("test", "same message")
	l.log("test", "same message")

	s := &strings.Builder{}
	l.write(s)
	test.Equate(t, s.String(), "test: same message (repeat x3)\n")

	// a different tag breaks the fold
	l.log("other", "same message")
	s.Reset()
	l.write(s)
	test.Equate(t, s.String(), "test: same message (repeat x3)\nother: same message\n")
}

func TestWriteRecent(t *testing.T) {
	l := newLogger(100)

	l.log("test", "first")

	s := &strings.Builder{}
	l.writeRecent(s)
	test.Equate(t, s.String(), "test: first\n")

	// nothing new since the last writeRecent
	s.Reset()
	l.writeRecent(s)
	test.Equate(t, s.String(), "")

	l.log("test", "second")
	s.Reset()
	l.writeRecent(s)
	test.Equate(t, s.String(), "test: second\n")
}

func TestTail(t *testing.T) {
	l := newLogger(100)

	l.log("test", "one")
	l.log("test", "two")
	l.log("test", "three")

	s := &strings.Builder{}
	l.tail(s, 2)
	test.Equate(t, s.String(), "test: two\ntest: three\n")

	// asking for more entries than exist is not an error
	s.Reset()
	l.tail(s, 100)
	test.Equate(t, s.String(), "test: one\ntest: two\ntest: three\n")
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(2)

	l.log("test", "one")
	l.log("test", "two")
	l.log("test", "three")

	s := &strings.Builder{}
	l.write(s)
	test.Equate(t, s.String(), "test: two\ntest: three\n")
}

func TestEcho(t *testing.T) {
	l := newLogger(100)

	s := &strings.Builder{}
	l.setEcho(s, false)

	l.log("test", "echoed")
	test.Equate(t, s.String(), "test: echoed\n")
}
