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

package colorterm

import (
	"io"
	"unicode"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(input []byte, prompt terminal.Prompt) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	ct.CBreakMode()
	defer ct.CanonicalMode()

	n := 0
	history := len(ct.commandHistory)

	// buffInput is used to store the latest input when we scroll through
	// history. we don't want to lose what we've typed in case the user
	// wants to resume where they left off
	buffInput := make([]byte, cap(input))
	buffN := 0

	// redraw the prompt and the input buffer so far on every iteration
	for {
		ct.EasyTerm.TermPrint("\r")
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
		ct.EasyTerm.TermPrint(prompt.String())
		ct.EasyTerm.TermPrint(ansi.NormalPen)
		ct.EasyTerm.TermPrint(string(input[:n]))

		b, err := ct.reader.ReadByte()
		if err != nil {
			return n, err
		}

		switch b {
		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return 0, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEndOfFile:
			ct.EasyTerm.TermPrint("\n")
			return 0, io.EOF

		case easyterm.KeyCarriageReturn, '\n':
			// append to command history unless it repeats the most
			// recent entry
			if n > 0 {
				newEntry := true
				if len(ct.commandHistory) > 0 {
					last := ct.commandHistory[len(ct.commandHistory)-1].input
					if string(last) == string(input[:n]) {
						newEntry = false
					}
				}
				if newEntry {
					nh := make([]byte, n)
					copy(nh, input[:n])
					ct.commandHistory = append(ct.commandHistory, command{input: nh})
				}
			}

			ct.EasyTerm.TermPrint("\n")
			return n, nil

		case easyterm.KeyEsc:
			b, err := ct.reader.ReadByte()
			if err != nil {
				return n, err
			}
			if b != easyterm.EscCursor {
				break
			}

			b, err = ct.reader.ReadByte()
			if err != nil {
				return n, err
			}

			switch b {
			case easyterm.CursorUp:
				// move up through command history
				if len(ct.commandHistory) > 0 {
					// store current input for possible later editing
					if history == len(ct.commandHistory) {
						copy(buffInput, input[:n])
						buffN = n
					}

					if history > 0 {
						history--
						copy(input, ct.commandHistory[history].input)
						n = len(ct.commandHistory[history].input)
					}
				}
			case easyterm.CursorDown:
				// move down through command history
				if len(ct.commandHistory) > 0 {
					if history < len(ct.commandHistory)-1 {
						history++
						copy(input, ct.commandHistory[history].input)
						n = len(ct.commandHistory[history].input)
					} else if history == len(ct.commandHistory)-1 {
						history++
						copy(input, buffInput)
						n = buffN
					}
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyDel:
			if n > 0 {
				n--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(rune(b)) && n < len(input) {
				input[n] = b
				n++
				history = len(ct.commandHistory)
			}
		}
	}
}
