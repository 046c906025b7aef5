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

package cpu

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
)

// skip advances PC by one extra instruction width, the effect of a
// successful skip instruction.
func (mc *CPU) skip() error {
	if int(mc.PC)+2 >= int(memorymap.Memtop) {
		return curated.Errorf(BranchError)
	}
	mc.PC += 2
	return nil
}

// checkOrdering guards the arithmetic group against the flag register being
// used as an operand. see the OrderingError commentary in cpu.go.
func (mc *CPU) checkOrdering(ins instructions.Instruction, def instructions.Definition) error {
	if ins.X() == FlagRegister || ins.Y() == FlagRegister {
		return curated.Errorf(OrderingError, def.Mnemonic)
	}
	return nil
}

// execute applies the decoded instruction to machine state. PC has already
// advanced past the instruction.
func (mc *CPU) execute(ins instructions.Instruction, def instructions.Definition) error {
	switch def.Operation {
	case instructions.Clear:
		mc.vid.Clear()

	case instructions.Return:
		if mc.depth == 0 {
			return curated.Errorf(OutOfStackError)
		}
		mc.depth--
		address := mc.stack[mc.depth]
		if address >= memorymap.Memtop {
			return curated.Errorf(ReturnAddressError, address)
		}
		mc.PC = address

	case instructions.Jump:
		mc.PC = ins.NNN()

	case instructions.Call:
		if mc.depth+1 > StackDepth {
			return curated.Errorf(OutOfStackError)
		}
		// PC has already moved past the call instruction. this is the
		// address the matching return will restore
		mc.stack[mc.depth] = mc.PC
		mc.depth++
		mc.PC = ins.NNN()

	case instructions.SkipEqualValue:
		if mc.V[ins.X()] == ins.NN() {
			return mc.skip()
		}

	case instructions.SkipNotEqualValue:
		if mc.V[ins.X()] != ins.NN() {
			return mc.skip()
		}

	case instructions.SkipEqualRegister:
		if mc.V[ins.X()] == mc.V[ins.Y()] {
			return mc.skip()
		}

	case instructions.SkipNotEqualRegister:
		if mc.V[ins.X()] != mc.V[ins.Y()] {
			return mc.skip()
		}

	case instructions.LoadValue:
		mc.V[ins.X()] = ins.NN()

	case instructions.AddValue:
		// wraps modulo 256. no flag
		mc.V[ins.X()] += ins.NN()

	case instructions.Move:
		mc.V[ins.X()] = mc.V[ins.Y()]

	case instructions.Or:
		mc.V[ins.X()] |= mc.V[ins.Y()]

	case instructions.And:
		mc.V[ins.X()] &= mc.V[ins.Y()]

	case instructions.Xor:
		mc.V[ins.X()] ^= mc.V[ins.Y()]

	case instructions.AddWithCarry:
		if err := mc.checkOrdering(ins, def); err != nil {
			return err
		}
		carry := int(mc.V[ins.X()])+int(mc.V[ins.Y()]) > 0xff
		mc.V[ins.X()] += mc.V[ins.Y()]
		if carry {
			mc.V[FlagRegister] = 1
		} else {
			mc.V[FlagRegister] = 0
		}

	case instructions.SubtractWithBorrow:
		if err := mc.checkOrdering(ins, def); err != nil {
			return err
		}
		// flag is NOT borrow. 1 when no borrow occurred
		borrow := mc.V[ins.X()] < mc.V[ins.Y()]
		mc.V[ins.X()] -= mc.V[ins.Y()]
		if borrow {
			mc.V[FlagRegister] = 0
		} else {
			mc.V[FlagRegister] = 1
		}

	case instructions.ReverseSubtract:
		if err := mc.checkOrdering(ins, def); err != nil {
			return err
		}
		borrow := mc.V[ins.Y()] < mc.V[ins.X()]
		mc.V[ins.X()] = mc.V[ins.Y()] - mc.V[ins.X()]
		if borrow {
			mc.V[FlagRegister] = 0
		} else {
			mc.V[FlagRegister] = 1
		}

	case instructions.ShiftRight:
		if err := mc.checkOrdering(ins, def); err != nil {
			return err
		}
		flag := mc.V[ins.X()] & 0x01
		mc.V[ins.X()] >>= 1
		mc.V[FlagRegister] = flag

	case instructions.ShiftLeft:
		if err := mc.checkOrdering(ins, def); err != nil {
			return err
		}
		flag := mc.V[ins.X()] >> 7
		mc.V[ins.X()] <<= 1
		mc.V[FlagRegister] = flag

	case instructions.LoadIndex:
		mc.I = ins.NNN()

	case instructions.JumpOffset:
		if int(mc.V[0])+int(ins.NNN()) > int(memorymap.Memtop) {
			return curated.Errorf(JumpError)
		}
		mc.PC = ins.NNN() + uint16(mc.V[0])

	case instructions.Random:
		mc.V[ins.X()] = mc.rnd.Uint8() & ins.NN()

	case instructions.DrawSprite:
		height := uint16(ins.N())
		if int(mc.I)+int(height) >= int(memorymap.Memtop) {
			return curated.Errorf(BlitSourceError)
		}
		sprite, err := mc.mem.ReadBlock(mc.I, height)
		if err != nil {
			return err
		}
		if mc.vid.DrawSprite(mc.V[ins.X()], mc.V[ins.Y()], sprite) {
			mc.V[FlagRegister] = 1
		} else {
			mc.V[FlagRegister] = 0
		}

	case instructions.SkipKeyPressed:
		k := mc.V[ins.X()]
		if k >= keypad.NumKeys {
			return curated.Errorf(KeyError, k)
		}
		if mc.key.IsPressed(k) {
			mc.PC += 2
		}

	case instructions.SkipKeyNotPressed:
		k := mc.V[ins.X()]
		if k >= keypad.NumKeys {
			return curated.Errorf(KeyError, k)
		}
		if !mc.key.IsPressed(k) {
			mc.PC += 2
		}

	case instructions.ReadDelay:
		mc.V[ins.X()] = mc.tmr.Delay

	case instructions.AwaitKey:
		// the keypress is detected and fulfilled by the Step() function on
		// a later step. execution is suspended until then
		mc.State = AwaitingKey
		mc.awaitRegister = ins.X()

	case instructions.SetDelay:
		mc.tmr.Delay = mc.V[ins.X()]

	case instructions.SetSound:
		mc.tmr.Sound = mc.V[ins.X()]

	case instructions.AddIndex:
		if int(mc.I)+int(mc.V[ins.X()]) > int(memorymap.Memtop) {
			return curated.Errorf(IndexError)
		}
		mc.I += uint16(mc.V[ins.X()])

	case instructions.GlyphAddress:
		v := mc.V[ins.X()]
		if v >= 16 {
			return curated.Errorf(GlyphError, v)
		}
		mc.I = memorymap.OriginGlyphs + uint16(v)*memorymap.GlyphSize

	case instructions.StoreDigits:
		if int(mc.I)+3 > int(memorymap.Memtop) {
			return curated.Errorf(StoreDigitsError)
		}
		v := mc.V[ins.X()]
		digits := []uint8{(v / 100) % 10, (v / 10) % 10, v % 10}
		if err := mc.mem.WriteBlock(mc.I, digits); err != nil {
			return err
		}

	case instructions.StoreRegisters:
		x := ins.X()
		if int(mc.I)+int(x) > int(memorymap.Memtop) {
			return curated.Errorf(CopyError)
		}
		if err := mc.mem.WriteBlock(mc.I, mc.V[:int(x)+1]); err != nil {
			return err
		}

	case instructions.LoadRegisters:
		x := ins.X()
		if int(mc.I)+int(x) > int(memorymap.Memtop) {
			return curated.Errorf(CopyError)
		}
		block, err := mc.mem.ReadBlock(mc.I, uint16(x)+1)
		if err != nil {
			return err
		}
		copy(mc.V[:int(x)+1], block)

	default:
		// Decode() never returns an operation outside of the switch
		return curated.Errorf(instructions.UndefinedError, uint16(ins))
	}

	return nil
}
