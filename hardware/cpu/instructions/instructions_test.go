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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestOperandFields(t *testing.T) {
	ins := instructions.Instruction(0xd3a5)

	test.Equate(t, ins.Group(), 0xd)
	test.Equate(t, ins.X(), 0x3)
	test.Equate(t, ins.Y(), 0xa)
	test.Equate(t, ins.N(), 0x5)
	test.Equate(t, ins.NN(), 0xa5)
	test.Equate(t, ins.NNN(), 0x03a5)
}

func TestDecode(t *testing.T) {
	def, err := instructions.Decode(0x00e0)
	test.ExpectedSuccess(t, err)
	test.Equate(t, def.Operation == instructions.Clear, true)

	def, err = instructions.Decode(0x00ee)
	test.ExpectedSuccess(t, err)
	test.Equate(t, def.Operation == instructions.Return, true)

	def, err = instructions.Decode(0x8125)
	test.ExpectedSuccess(t, err)
	test.Equate(t, def.Operation == instructions.SubtractWithBorrow, true)
	test.Equate(t, def.Mnemonic, "SUB")

	def, err = instructions.Decode(0xf265)
	test.ExpectedSuccess(t, err)
	test.Equate(t, def.Operation == instructions.LoadRegisters, true)
}

func TestDecodeStrictness(t *testing.T) {
	// decoding is strict. combinations outside the defined set are errors,
	// never NOPs
	undefined := []uint16{
		0x0000, // 0nnn (machine language routine) is not in the set
		0x00e1,
		0x5001, // group 5 defines only sub-code 0
		0x8008,
		0x800f,
		0x9005,
		0xe000,
		0xe09f,
		0xf000,
		0xf066,
		0xffff,
	}

	for _, u := range undefined {
		_, err := instructions.Decode(instructions.Instruction(u))
		if !curated.Is(err, instructions.UndefinedError) {
			t.Errorf("expected undefined instruction for %#04x, got %v", u, err)
		}
	}
}
