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

// Package instructions defines the CHIP-8 instruction set. An instruction is
// sixteen bits wide. The top nibble selects one of sixteen opcode groups and,
// depending on the group, a sub-code in the low nibble or low byte selects
// the operation within the group.
//
// The Decode() function maps a (group, sub-code) pair onto a Definition. The
// mapping is finite and strict: a combination with no Definition is an
// error, never a NOP.
package instructions

import (
	"github.com/jetsetilly/gopher8/curated"
)

// UndefinedError is returned by Decode() for any (group, sub-code)
// combination outside the instruction set.
const UndefinedError = "instructions: undefined instruction (%#04x)"

// Instruction is a single 16 bit CHIP-8 instruction. The operand fields
// overlap; which of them are meaningful depends on the Operation.
type Instruction uint16

// Group returns the opcode group, the top nibble of the instruction.
func (ins Instruction) Group() uint8 {
	return uint8(ins >> 12)
}

// X returns the first register operand.
func (ins Instruction) X() uint8 {
	return uint8(ins>>8) & 0x0f
}

// Y returns the second register operand.
func (ins Instruction) Y() uint8 {
	return uint8(ins>>4) & 0x0f
}

// N returns the low nibble operand.
func (ins Instruction) N() uint8 {
	return uint8(ins) & 0x0f
}

// NN returns the low byte operand.
func (ins Instruction) NN() uint8 {
	return uint8(ins)
}

// NNN returns the embedded 12 bit address operand.
func (ins Instruction) NNN() uint16 {
	return uint16(ins) & 0x0fff
}

// Operation is the tag identifying what an instruction does once decoded.
type Operation int

// List of defined operations.
const (
	Clear Operation = iota
	Return
	Jump
	Call
	SkipEqualValue
	SkipNotEqualValue
	SkipEqualRegister
	LoadValue
	AddValue
	Move
	Or
	And
	Xor
	AddWithCarry
	SubtractWithBorrow
	ShiftRight
	ReverseSubtract
	ShiftLeft
	SkipNotEqualRegister
	LoadIndex
	JumpOffset
	Random
	DrawSprite
	SkipKeyPressed
	SkipKeyNotPressed
	ReadDelay
	AwaitKey
	SetDelay
	SetSound
	AddIndex
	GlyphAddress
	StoreDigits
	StoreRegisters
	LoadRegisters
)

// Definition describes one operation in the instruction set.
type Definition struct {
	Operation Operation
	Mnemonic  string
}

// the decode tables for the groups that carry a sub-code. groups without an
// entry here decode on the group nibble alone.
var subLow12 = map[uint16]Definition{
	// group 0x0. the full low 12 bits are the sub-code
	0x0e0: {Clear, "CLS"},
	0x0ee: {Return, "RET"},
}

var subNibble = map[uint8]map[uint8]Definition{
	// groups 0x5, 0x8 and 0x9. the low nibble is the sub-code
	0x5: {
		0x0: {SkipEqualRegister, "SE"},
	},
	0x8: {
		0x0: {Move, "LD"},
		0x1: {Or, "OR"},
		0x2: {And, "AND"},
		0x3: {Xor, "XOR"},
		0x4: {AddWithCarry, "ADD"},
		0x5: {SubtractWithBorrow, "SUB"},
		0x6: {ShiftRight, "SHR"},
		0x7: {ReverseSubtract, "SUBN"},
		0xe: {ShiftLeft, "SHL"},
	},
	0x9: {
		0x0: {SkipNotEqualRegister, "SNE"},
	},
}

var subByte = map[uint8]map[uint8]Definition{
	// groups 0xe and 0xf. the low byte is the sub-code
	0xe: {
		0x9e: {SkipKeyPressed, "SKP"},
		0xa1: {SkipKeyNotPressed, "SKNP"},
	},
	0xf: {
		0x07: {ReadDelay, "LD"},
		0x0a: {AwaitKey, "LD"},
		0x15: {SetDelay, "LD"},
		0x18: {SetSound, "LD"},
		0x1e: {AddIndex, "ADD"},
		0x29: {GlyphAddress, "LD"},
		0x33: {StoreDigits, "LD"},
		0x55: {StoreRegisters, "LD"},
		0x65: {LoadRegisters, "LD"},
	},
}

var groups = map[uint8]Definition{
	// groups with no sub-code
	0x1: {Jump, "JP"},
	0x2: {Call, "CALL"},
	0x3: {SkipEqualValue, "SE"},
	0x4: {SkipNotEqualValue, "SNE"},
	0x6: {LoadValue, "LD"},
	0x7: {AddValue, "ADD"},
	0xa: {LoadIndex, "LD"},
	0xb: {JumpOffset, "JP"},
	0xc: {Random, "RND"},
	0xd: {DrawSprite, "DRW"},
}

// Decode maps an instruction onto its Definition. An instruction outside the
// defined set returns an error with the UndefinedError pattern.
func Decode(ins Instruction) (Definition, error) {
	group := ins.Group()

	if def, ok := groups[group]; ok {
		return def, nil
	}

	if group == 0x0 {
		if def, ok := subLow12[uint16(ins)&0x0fff]; ok {
			return def, nil
		}
		return Definition{}, curated.Errorf(UndefinedError, uint16(ins))
	}

	if sub, ok := subNibble[group]; ok {
		if def, ok := sub[ins.N()]; ok {
			return def, nil
		}
		return Definition{}, curated.Errorf(UndefinedError, uint16(ins))
	}

	if sub, ok := subByte[group]; ok {
		if def, ok := sub[ins.NN()]; ok {
			return def, nil
		}
		return Definition{}, curated.Errorf(UndefinedError, uint16(ins))
	}

	return Definition{}, curated.Errorf(UndefinedError, uint16(ins))
}
