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

// Package cpu implements the fetch-decode-execute cycle of the CHIP-8
// machine. The CPU owns the register file, the program counter, the index
// register and the call stack. Decoding is handled by the instructions
// sub-package; display, timer and keypad effects are delegated to the other
// hardware sub-packages.
//
// All errors returned by the Step() function are fatal faults. The CPU makes
// no attempt at recovery and the instruction that faulted may have been
// partially applied.
package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/random"
)

// NumRegisters is the size of the register file. Register 0xf doubles as the
// carry/borrow/collision flag.
const NumRegisters = 16

// FlagRegister is the register written as a side effect by the arithmetic
// group and the sprite blit.
const FlagRegister = 0x0f

// StackDepth is the maximum number of return addresses that can be pushed.
const StackDepth = 24

// Error patterns raised by the cpu package. All of them are fatal faults.
const (
	PCError            = "cpu: program counter left memory (%#04x)"
	BranchError        = "cpu: branching outside of memory"
	JumpError          = "cpu: jumping outside of memory"
	OutOfStackError    = "cpu: out of stack frames"
	ReturnAddressError = "cpu: invalid address on stack (%#04x)"
	BlitSourceError    = "cpu: blitting from outside of memory"
	IndexError         = "cpu: moving index outside of memory"
	StoreDigitsError   = "cpu: storing digits outside of memory"
	CopyError          = "cpu: copying outside of memory"
	KeyError           = "cpu: invalid key (%#02x)"
	GlyphError         = "cpu: no glyph for value (%#02x)"

	// OrderingError is raised when the flag register is used as an operand
	// of an instruction that also writes the flag register. The read/write
	// ordering would be undefined so the combination is forbidden outright.
	OrderingError = "cpu: flag register used as operand (%s)"
)

// State records whether the CPU is executing instructions or is suspended
// waiting for a keypress.
type State int

// The CPU is in the Running state unless an AwaitKey instruction has been
// executed, in which case it is AwaitingKey until the keypad snapshot shows
// a pressed key.
const (
	Running State = iota
	AwaitingKey
)

// CPU implements the CHIP-8 interpreter loop. Create with NewCPU().
type CPU struct {
	mem *memory.RAM
	vid *video.Video
	tmr *timer.Timer
	key *keypad.Keypad
	rnd *random.Random

	// V is the general purpose register file. V[FlagRegister] is the flag
	V  [NumRegisters]uint8
	PC uint16
	I  uint16

	stack [StackDepth]uint16
	depth int

	// State is read-only from outside of the package
	State State

	// the register a fulfilled keypress will be written to. only meaningful
	// in the AwaitingKey state
	awaitRegister uint8
}

// NewCPU is the preferred method of initialisation for the CPU type. All
// state is zeroed; the program counter is set when a program is loaded.
func NewCPU(mem *memory.RAM, vid *video.Video, tmr *timer.Timer, key *keypad.Keypad, rnd *random.Random) *CPU {
	return &CPU{
		mem: mem,
		vid: vid,
		tmr: tmr,
		key: key,
		rnd: rnd,
	}
}

// Snapshot creates a copy of the CPU in its current state. The copy still
// points at the supplied collaborators.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new RAM instance into the CPU.
func (mc *CPU) Plumb(mem *memory.RAM) {
	mc.mem = mem
}

// Reset the CPU to its power-on state.
func (mc *CPU) Reset() {
	for i := range mc.V {
		mc.V[i] = 0
	}
	mc.PC = 0
	mc.I = 0
	mc.depth = 0
	mc.State = Running
	mc.awaitRegister = 0
}

// LoadPC sets the program counter. Used when attaching a program.
func (mc *CPU) LoadPC(address uint16) {
	mc.PC = address
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC: 0x%04X\tI:  0x%04X", mc.PC, mc.I)
}

// RegisterString returns the register file formatted four to a row, in the
// layout of the diagnostic dump.
func (mc *CPU) RegisterString() string {
	s := strings.Builder{}
	for i := 0; i < NumRegisters; i++ {
		if i&3 == 0 {
			s.WriteString("\t")
		}
		s.WriteString(fmt.Sprintf("\tV%X: 0x%02X", i, mc.V[i]))
		if i&3 == 3 {
			s.WriteString("\n")
		}
	}
	return s.String()
}

// StackString returns the pushed return addresses, oldest first, in the
// layout of the diagnostic dump.
func (mc *CPU) StackString() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("\tStack (%d frames):\n", mc.depth))
	for i := 0; i < mc.depth; i++ {
		s.WriteString(fmt.Sprintf("\t\t%d:\t0x%03X\n", i, mc.stack[i]))
	}
	return s.String()
}

// StackFrames returns a copy of the pushed return addresses, oldest first.
func (mc *CPU) StackFrames() []uint16 {
	f := make([]uint16, mc.depth)
	copy(f, mc.stack[:mc.depth])
	return f
}

// fetch reads the instruction at PC and advances PC by the instruction
// width. The advance happens on every fetch; opcodes that change the flow of
// the program overwrite PC afterwards.
func (mc *CPU) fetch() (instructions.Instruction, error) {
	if int(mc.PC)+2 >= int(memorymap.Memtop) {
		return 0, curated.Errorf(PCError, mc.PC)
	}

	// first fetched byte is the high byte
	ins, err := mc.mem.Read16(mc.PC)
	if err != nil {
		return 0, err
	}

	mc.PC += 2

	return instructions.Instruction(ins), nil
}

// Step executes a single instruction, or services the AwaitingKey state. The
// boolean return value is false when the CPU is awaiting a keypress and none
// is pressed - the host should abandon the rest of the step batch.
//
// Fulfilling an awaited keypress consumes the whole step: the lowest-indexed
// pressed key is written to the recorded register and no instruction is
// fetched.
func (mc *CPU) Step() (bool, error) {
	if mc.State == AwaitingKey {
		k, ok := mc.key.FirstPressed()
		if !ok {
			return false, nil
		}
		mc.V[mc.awaitRegister] = k
		mc.State = Running
		return true, nil
	}

	ins, err := mc.fetch()
	if err != nil {
		return true, err
	}

	def, err := instructions.Decode(ins)
	if err != nil {
		return true, err
	}

	return true, mc.execute(ins, def)
}
