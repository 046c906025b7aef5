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

// Package beeper defines the tone emitted while the machine's sound timer
// is above zero. The machine itself only exposes the on/off condition; the
// shape of the tone is shared by whatever is producing actual sound - the
// SDL audio device in playmode and the wavwriter package.
package beeper

// SampleFreq is the number of samples per second produced for the beeper.
const SampleFreq = 44100

// SamplesPerFrame is the number of samples produced for one frame of the
// nominal 60Hz host loop.
const SamplesPerFrame = SampleFreq / 60

// ToneFreq is the frequency of the beeper's square wave in Hz.
const ToneFreq = 440

// SquareWaveHigh returns whether the square wave is in the high part of its
// cycle at the given sample position.
func SquareWaveHigh(phase int) bool {
	return (phase/(SampleFreq/ToneFreq/2))%2 == 0
}
