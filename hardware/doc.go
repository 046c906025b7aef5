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

// Package hardware is the container package for the emulated components of
// the CHIP-8 machine: the CPU, the RAM, the display operations, the two
// countdown timers and the keypad snapshot.
//
// The CHIP8 type is the root of the emulation. Nothing in this package or
// its sub-packages paces itself: the host calls Step() for a batch of
// instructions and Tick() at its own fixed rate, nominally 60Hz.
//
// All errors returned by Step() are fatal faults. A diagnostic dump of
// machine state is written to the central logger before the fault is
// returned.
package hardware
