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

// Package debugger is a terminal driven interface to the emulated machine.
// It runs the machine headless; the display is inspected with the DISPLAY
// command, which renders the frame buffer as ASCII art.
package debugger

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/logger"
)

// Error pattern for all errors leaving the debugger package.
const DebuggerError = "debugger: %v"

// the number of instructions executed per frame by the RUN command. the
// same nominal speed as playmode.
const instructionsPerFrame = 12

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	ch8  *hardware.CHIP8
	term terminal.Terminal

	// buffer for user input
	input []byte

	// set to true when the QUIT command has been issued
	quit bool
}

// NewDebugger creates and initialises everything required by the debugger.
func NewDebugger(term terminal.Terminal) (*Debugger, error) {
	dbg := &Debugger{
		ch8:   hardware.NewCHIP8(),
		term:  term,
		input: make([]byte, 255),
	}

	if err := dbg.term.Initialise(); err != nil {
		return nil, curated.Errorf(DebuggerError, err)
	}

	return dbg, nil
}

// Start the main debugger sequence with the cartridge specified by the
// loader.
func (dbg *Debugger) Start(cartload cartridgeloader.Loader) error {
	defer dbg.term.CleanUp()

	if err := dbg.ch8.AttachCartridge(cartload); err != nil {
		return curated.Errorf(DebuggerError, err)
	}

	for !dbg.quit {
		prompt := terminal.Prompt{
			Content: fmt.Sprintf("PC 0x%04x", dbg.ch8.CPU.PC),
		}

		n, err := dbg.term.TermRead(dbg.input, prompt)
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) || err == io.EOF {
				return nil
			}
			return curated.Errorf(DebuggerError, err)
		}

		if err := dbg.parseInput(strings.TrimSpace(string(dbg.input[:n]))); err != nil {
			dbg.term.TermPrintLine(terminal.StyleError, err.Error())
		}
	}

	return nil
}

// parseInput splits the input into a command and its arguments and acts on
// it. an empty input is treated as a single STEP.
func (dbg *Debugger) parseInput(input string) error {
	toks := strings.Fields(input)

	command := "STEP"
	args := []string{}
	if len(toks) > 0 {
		command = strings.ToUpper(toks[0])
		args = toks[1:]
	}

	switch command {
	case "STEP":
		num := 1
		if len(args) > 0 {
			var err error
			num, err = strconv.Atoi(args[0])
			if err != nil {
				return curated.Errorf("cannot step by %s", args[0])
			}
		}

		if err := dbg.ch8.Step(num); err != nil {
			return err
		}
		dbg.printInstrument(dbg.ch8.CPU.String())

	case "RUN":
		frames := 60
		if len(args) > 0 {
			var err error
			frames, err = strconv.Atoi(args[0])
			if err != nil {
				return curated.Errorf("cannot run for %s frames", args[0])
			}
		}

		for i := 0; i < frames; i++ {
			if err := dbg.ch8.Step(instructionsPerFrame); err != nil {
				return err
			}
			dbg.ch8.Tick()
		}
		dbg.printInstrument(dbg.ch8.CPU.String())

	case "TICK":
		dbg.ch8.Tick()
		dbg.printInstrument(dbg.ch8.Timer.String())

	case "CPU":
		dbg.printInstrument(dbg.ch8.String())

	case "DISPLAY":
		dbg.printInstrument(dbg.ch8.Video.String())

	case "MEM":
		if len(args) == 0 {
			return curated.Errorf("MEM requires an address")
		}

		addr, err := strconv.ParseUint(args[0], 0, 16)
		if err != nil {
			return curated.Errorf("cannot parse address %s", args[0])
		}

		length := uint64(16)
		if len(args) > 1 {
			length, err = strconv.ParseUint(args[1], 0, 16)
			if err != nil {
				return curated.Errorf("cannot parse length %s", args[1])
			}
		}

		block, err := dbg.ch8.Mem.ReadBlock(uint16(addr), uint16(length))
		if err != nil {
			return err
		}
		dbg.printMemory(uint16(addr), block)

	case "KEY":
		if len(args) == 0 {
			return curated.Errorf("KEY requires a 16 bit key mask")
		}

		mask, err := strconv.ParseUint(args[0], 0, 16)
		if err != nil {
			return curated.Errorf("cannot parse key mask %s", args[0])
		}

		dbg.ch8.Keypad.Set(uint16(mask))

	case "LOG":
		s := &strings.Builder{}
		logger.WriteRecent(s)
		for _, l := range strings.Split(strings.TrimRight(s.String(), "\n"), "\n") {
			dbg.term.TermPrintLine(terminal.StyleFeedback, l)
		}

	case "RESET":
		if err := dbg.ch8.Reset(); err != nil {
			return err
		}
		dbg.term.TermPrintLine(terminal.StyleFeedback, "machine reset")

	case "QUIT":
		dbg.quit = true

	case "HELP":
		dbg.printHelp()

	default:
		return curated.Errorf("%s is not a debugging command", command)
	}

	return nil
}

func (dbg *Debugger) printInstrument(s string) {
	for _, l := range strings.Split(s, "\n") {
		dbg.term.TermPrintLine(terminal.StyleInstrument, l)
	}
}

// printMemory displays a block of memory eight bytes to a row, each row
// prefixed with the address of the first byte.
func (dbg *Debugger) printMemory(origin uint16, block []uint8) {
	s := strings.Builder{}
	for i, b := range block {
		if i%8 == 0 {
			if i > 0 {
				dbg.term.TermPrintLine(terminal.StyleInstrument, s.String())
				s.Reset()
			}
			s.WriteString(fmt.Sprintf("0x%04x:", origin+uint16(i)))
		}
		s.WriteString(fmt.Sprintf(" %02x", b))
	}
	if s.Len() > 0 {
		dbg.term.TermPrintLine(terminal.StyleInstrument, s.String())
	}
}

func (dbg *Debugger) printHelp() {
	help := []string{
		"STEP [n]       execute the next instruction (or the next n instructions)",
		"RUN [frames]   run for the specified number of frames (default 60)",
		"TICK           advance the delay and sound timers by one tick",
		"CPU            display the state of the CPU",
		"DISPLAY        display the frame buffer",
		"MEM addr [n]   display n bytes of memory from addr (default 16)",
		"KEY mask       set the pressed state of the keypad",
		"LOG            display recent log entries",
		"RESET          reset the machine (the loaded program survives)",
		"QUIT           quit the debugger",
	}
	for _, l := range help {
		dbg.term.TermPrintLine(terminal.StyleHelp, l)
	}
}
