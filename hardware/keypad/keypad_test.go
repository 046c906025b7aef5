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

package keypad_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
)

func TestPressRelease(t *testing.T) {
	key := keypad.NewKeypad()

	key.Press(0x5)
	test.Equate(t, key.IsPressed(0x5), true)
	test.Equate(t, key.IsPressed(0x6), false)

	key.Release(0x5)
	test.Equate(t, key.IsPressed(0x5), false)

	// keys outside the keypad are silently ignored
	key.Press(0x10)
	test.Equate(t, key.IsPressed(0x10), false)
}

func TestSet(t *testing.T) {
	key := keypad.NewKeypad()

	key.Set(0x8001)
	test.Equate(t, key.IsPressed(0x0), true)
	test.Equate(t, key.IsPressed(0xf), true)
	test.Equate(t, key.IsPressed(0x1), false)

	key.Set(0)
	test.Equate(t, key.IsPressed(0x0), false)
}

func TestFirstPressed(t *testing.T) {
	key := keypad.NewKeypad()

	_, ok := key.FirstPressed()
	test.Equate(t, ok, false)

	key.Press(0xa)
	key.Press(0x3)

	k, ok := key.FirstPressed()
	test.Equate(t, ok, true)
	test.Equate(t, k, 0x3)
}
