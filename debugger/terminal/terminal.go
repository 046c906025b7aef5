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

// Package terminal defines the operations required for command line
// interaction with the debugger. Implementations can be found in the
// plainterm and colorterm sub-packages.
package terminal

import (
	"strings"
)

// Input defines the operations required by an interface that allows input.
type Input interface {
	// TermRead returns the number of characters inserted into the buffer,
	// or an error, when completed.
	TermRead(buffer []byte, prompt Prompt) (int, error)

	// IsInteractive should return true for implementations that expect a
	// user to be present at the other end.
	IsInteractive() bool
}

// Sentinal error returned by TermRead() if an interrupt (ctrl-c) is caught
// whilst waiting for input.
const UserInterrupt = "user interrupt"

// Output defines the operations required by an interface that allows output.
type Output interface {
	TermPrintLine(Style, string)
}

// Terminal defines the operations required by the debugger's command line
// interface.
type Terminal interface {
	Input
	Output

	// Initialise the terminal. not all terminal implementations will need
	// to do anything.
	Initialise() error

	// Restore the terminal to its original state, if possible. for
	// example, making sure the terminal is returned to canonical mode.
	CleanUp()

	// Silence all input and output except error messages. In other words,
	// TermPrintLine() should display error messages even if silenced is
	// true.
	Silence(silenced bool)
}

// Prompt specifies the prompt text shown before input is accepted.
type Prompt struct {
	Content string
}

// String returns the prompt with "standard" decoration. Good for terminals
// with no graphical capabilities at all.
func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString("[ ")
	s.WriteString(strings.TrimSpace(p.Content))
	s.WriteString(" ] >> ")
	return s.String()
}

// Style is used to identify the category of text being sent to the
// Output.TermPrintLine() function.
type Style int

// List of Style values.
const (
	// input that has been echoed back to the user. some terminals do this
	// automatically and can ignore lines of this style.
	StyleEcho Style = iota

	// information from the emulated machine itself, the register and
	// memory dumps.
	StyleInstrument

	// information about the debugger, help text and the like.
	StyleHelp

	// information as a result of a command that is not from the machine.
	StyleFeedback

	// disastrous results, shown even when the terminal is silenced.
	StyleError
)
