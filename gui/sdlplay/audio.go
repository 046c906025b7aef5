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

package sdlplay

import (
	"github.com/jetsetilly/gopher8/hardware/beeper"

	"github.com/veandco/go-sdl2/sdl"
)

// the amount the square wave deviates from the silence value. kept small so
// the beep isn't overbearing.
const amplitude = 0x18

// Audio outputs the beeper tone using SDL. Samples are queued a frame at a
// time; the queue is not allowed to run too far ahead of playback.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// one frame's worth of samples, refilled on every call to SetSound()
	buffer []uint8

	// position in the square wave, in samples
	phase int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     beeper.SampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(beeper.SamplesPerFrame),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}

	aud.spec = actualSpec
	aud.buffer = make([]uint8, beeper.SamplesPerFrame)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Destroy closes the audio device.
func (aud *Audio) Destroy() {
	sdl.CloseAudioDevice(aud.id)
}

// SetSound queues a frame of the square wave when on is true, a frame of
// silence otherwise.
func (aud *Audio) SetSound(on bool) error {
	// don't run ahead of playback when frames are produced too quickly
	if sdl.GetQueuedAudioSize(aud.id) > uint32(2*len(aud.buffer)) {
		return nil
	}

	for i := range aud.buffer {
		if on && beeper.SquareWaveHigh(aud.phase) {
			aud.buffer[i] = aud.spec.Silence + amplitude
		} else {
			aud.buffer[i] = aud.spec.Silence
		}
		aud.phase++
	}

	return sdl.QueueAudio(aud.id, aud.buffer)
}
