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

// Package playmode is the normal-use emulation mode: an SDL window, the
// keyboard mapped to the CHIP-8 keypad and the beeper audible. The loop is
// paced at a nominal 60 frames per second; each frame executes a fixed
// batch of instructions and ticks the machine's timers once.
package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/gui/sdlplay"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/wavwriter"
)

// FramesPerSecond is the rate of the host loop. The machine's timers tick
// once per frame, which is how the nominal 60Hz tick requirement is met.
const FramesPerSecond = 60

// Error pattern for all errors leaving the playmode package.
const PlayError = "playmode: %v"

// Play sets the emulation running.
//
// The instructionsPerFrame argument controls how fast the emulated machine
// runs relative to the fixed timer rate. The conventional speed for CHIP-8
// programs is around 700 instructions per second, or about 12 per frame.
//
// If transcript is not the empty string the state of the beeper is recorded
// to a WAV file of that name for the duration of the session.
func Play(scale float32, instructionsPerFrame int, transcript string, cartload cartridgeloader.Loader) error {
	scr, err := sdlplay.NewSdlPlay(scale)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	defer scr.Destroy()

	ch8 := hardware.NewCHIP8()
	if err := ch8.AttachCartridge(cartload); err != nil {
		return curated.Errorf(PlayError, err)
	}

	var rec *wavwriter.WavWriter
	if transcript != "" {
		rec, err = wavwriter.New(transcript)
		if err != nil {
			return curated.Errorf(PlayError, err)
		}
		defer func() {
			_ = rec.EndMixing()
		}()
	}

	lmtr, err := limiter.NewFPSLimiter(FramesPerSecond)
	if err != nil {
		return curated.Errorf(PlayError, err)
	}

	// redirect interrupt signal so ctrl-c ends the session cleanly and any
	// deferred cleanup runs
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// the pressed/released state of the keypad. rebuilt from keyboard
	// events and handed to the machine before every step batch
	var keys uint16

	for {
		lmtr.Wait()

		select {
		case <-intChan:
			return nil
		default:
		}

		// drain pending window/keyboard events
		for {
			ev := scr.PollEvent()
			if ev.ID == sdlplay.EventNone {
				break
			}

			switch ev.ID {
			case sdlplay.EventQuit:
				return nil
			case sdlplay.EventKeyDown:
				if k, ok := userinput.Key(ev.Key); ok {
					keys |= 1 << k
				}
			case sdlplay.EventKeyUp:
				if k, ok := userinput.Key(ev.Key); ok {
					keys &^= 1 << k
				}
			}
		}

		ch8.Keypad.Set(keys)

		if err := ch8.Step(instructionsPerFrame); err != nil {
			return curated.Errorf(PlayError, err)
		}

		ch8.Tick()

		if ch8.Video.NeedsRedraw() {
			if err := scr.SetDisplay(ch8.Video.Draw()); err != nil {
				return curated.Errorf(PlayError, err)
			}
		}

		if err := scr.SetSound(ch8.SoundActive()); err != nil {
			return curated.Errorf(PlayError, err)
		}

		if rec != nil {
			_ = rec.SetSound(ch8.SoundActive())
		}
	}
}
