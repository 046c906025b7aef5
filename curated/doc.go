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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created by the
// Errorf() function with a specific pattern. For example:
//
//	e := curated.Errorf("vm: out of stack frames")
//
//	if curated.Is(e, "vm: out of stack frames") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. This is useful when an error has been wrapped by another
// part of the emulation:
//
//	e := curated.Errorf("vm: out of stack frames")
//	f := curated.Errorf("chip8: %v", e)
//
//	if curated.Has(f, "vm: out of stack frames") {
//		fmt.Println("true")
//	}
//
// Packages that raise curated errors should declare their patterns as
// exported constants so that callers can test for them.
package curated
