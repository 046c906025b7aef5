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

package hardware

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/random"
)

// FaultError is the pattern every fatal fault is wrapped in before leaving
// the Step() function. The underlying cause can be recovered with
// curated.Has().
const FaultError = "chip8: %v"

// CHIP8 struct is the main container for the emulated components of the
// machine.
type CHIP8 struct {
	Mem    *memory.RAM
	CPU    *cpu.CPU
	Timer  *timer.Timer
	Video  *video.Video
	Keypad *keypad.Keypad
	Random *random.Random

	// the most recently attached program. used by Reset()
	cartload cartridgeloader.Loader
	attached bool
}

// NewCHIP8 creates a new CHIP8 and everything associated with the hardware.
// It is used for all aspects of emulation: debugging sessions and regular
// play.
func NewCHIP8() *CHIP8 {
	ch := &CHIP8{
		Mem:    memory.NewRAM(),
		Timer:  timer.NewTimer(),
		Keypad: keypad.NewKeypad(),
		Random: random.NewRandom(),
	}

	ch.Video = video.NewVideo(ch.Mem)
	ch.CPU = cpu.NewCPU(ch.Mem, ch.Video, ch.Timer, ch.Keypad, ch.Random)

	return ch
}

// AttachCartridge loads a program into the emulated machine's memory and
// sets the program counter to the load origin for the program's species.
//
// A program that will not fit in memory is a reportable condition returned
// to the caller, not a fault. Machine state is unchanged in that case.
func (ch *CHIP8) AttachCartridge(cartload cartridgeloader.Loader) error {
	err := cartload.Load()
	if err != nil {
		return err
	}

	origin, err := cartload.Origin()
	if err != nil {
		return err
	}

	err = ch.Mem.Load(cartload.Data, origin)
	if err != nil {
		return err
	}

	ch.CPU.Reset()
	ch.CPU.LoadPC(origin)

	ch.cartload = cartload
	ch.attached = true

	logger.Logf("chip8", "%s attached (%s species, %d bytes, origin %#04x)",
		cartload.ShortName(), cartload.Species, len(cartload.Data), origin)

	return nil
}

// Reset the machine to its power-on state and reload the attached program,
// if there is one.
func (ch *CHIP8) Reset() error {
	ch.Mem.Reset()
	ch.CPU.Reset()
	ch.Timer.Reset()
	ch.Keypad.Reset()
	ch.Video.Reset()

	if ch.attached {
		return ch.AttachCartridge(ch.cartload)
	}

	return nil
}

// Step executes up to the requested number of instructions. The batch ends
// early, without error, if the CPU enters or remains in the awaiting
// keypress state and no key is pressed in the current keypad snapshot.
//
// Any error is a fatal fault: the diagnostic dump is written to the central
// logger and the machine should not be stepped again.
func (ch *CHIP8) Step(instructions int) error {
	for i := 0; i < instructions; i++ {
		executed, err := ch.CPU.Step()
		if err != nil {
			ch.dump()
			return curated.Errorf(FaultError, err)
		}
		if !executed {
			break
		}
	}

	return nil
}

// Tick decrements the delay and sound timers. Must be called by the host at
// a fixed rate, nominally 60Hz, decoupled from the Step() rate.
func (ch *CHIP8) Tick() {
	ch.Timer.Tick()
}

// SoundActive returns true if a tone should currently be playing. Tone
// generation itself is the host's responsibility.
func (ch *CHIP8) SoundActive() bool {
	return ch.Timer.SoundActive()
}

// String returns the diagnostic dump: every register, the program counter,
// the index register, both timers and the contents of the call stack.
func (ch *CHIP8) String() string {
	s := strings.Builder{}
	s.WriteString("CHIP-8 state:\n")
	s.WriteString("\tRegisters:\n")
	s.WriteString(ch.CPU.RegisterString())
	s.WriteString(fmt.Sprintf("\t\t%s\t%s\n", ch.CPU.String(), ch.Timer.String()))
	s.WriteString(ch.CPU.StackString())
	return s.String()
}

// write the diagnostic dump to the central logger, one entry per line.
// called before any fatal fault leaves the Step() function.
func (ch *CHIP8) dump() {
	for _, l := range strings.Split(ch.String(), "\n") {
		if l != "" {
			logger.Log("fault", l)
		}
	}
}
