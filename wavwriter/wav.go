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

// Package wavwriter allows writing of the beeper output to disk as a WAV
// file. Note that audio data is buffered in memory in its entirety, and
// written to disk on program end. It is therefore probably only suitable
// for testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/beeper"
	"github.com/jetsetilly/gopher8/logger"
)

// WavWriter records the state of the beeper, one frame of samples at a time.
type WavWriter struct {
	filename string
	buffer   []int
	phase    int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0, beeper.SampleFreq),
	}

	return aw, nil
}

// SetSound appends one frame's worth of samples: the square wave when on is
// true, silence otherwise. Call once per frame of the host loop.
func (aw *WavWriter) SetSound(on bool) error {
	for i := 0; i < beeper.SamplesPerFrame; i++ {
		v := 0x80
		if on && beeper.SquareWaveHigh(aw.phase) {
			v = 0xa0
		}
		aw.buffer = append(aw.buffer, v)
		aw.phase++
	}

	return nil
}

// EndMixing writes the buffered samples to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, beeper.SampleFreq, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  beeper.SampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf("wavwriter", "writing audio to %s", aw.filename)

	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
