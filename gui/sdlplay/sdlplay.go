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

// Package sdlplay is the SDL2 playmode surface: a window showing the scaled
// frame buffer, a queueing audio device for the beeper and a polling
// function for keyboard and window events.
//
// Everything here must be called from the main thread; the playmode package
// takes care of that.
package sdlplay

import (
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"

	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "Gopher8"

// the display is monochrome so every pixel is one of two RGBA values
const pixelDepth = 4

// SdlPlay is a simple SDL implementation of the playmode surface.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array we copy to the texture before applying to
	// the renderer. the texture is the size of the unscaled display; the
	// renderer scales it to the window
	pixels []byte

	// all audio is handled by the Audio type
	aud *Audio
}

// EventID differentiates the events returned by PollEvent().
type EventID int

// List of EventID values.
const (
	EventNone EventID = iota
	EventQuit
	EventKeyDown
	EventKeyUp
)

// Event is a notification of a window or keyboard event. Key is only
// meaningful for the keyboard events.
type Event struct {
	ID  EventID
	Key rune
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
func NewSdlPlay(scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return nil, err
	}

	var err error

	scr.window, err = sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(float32(memorymap.DisplayWidth)*scale),
		int32(float32(memorymap.DisplayHeight)*scale),
		sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, err
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return nil, err
	}

	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		memorymap.DisplayWidth, memorymap.DisplayHeight)
	if err != nil {
		return nil, err
	}

	scr.pixels = make([]byte, memorymap.DisplayWidth*memorymap.DisplayHeight*pixelDepth)

	scr.aud, err = NewAudio()
	if err != nil {
		return nil, err
	}

	return scr, nil
}

// Destroy cleans up the SDL resources.
func (scr *SdlPlay) Destroy() {
	scr.aud.Destroy()
	_ = scr.texture.Destroy()
	_ = scr.renderer.Destroy()
	_ = scr.window.Destroy()
	sdl.Quit()
}

// SetDisplay unpacks the one-bit-per-pixel display buffer and presents it.
func (scr *SdlPlay) SetDisplay(display []uint8) error {
	for pixel := 0; pixel < memorymap.DisplayWidth*memorymap.DisplayHeight; pixel++ {
		var v byte
		if display[pixel/8]&(1<<uint(7-(pixel%8))) != 0 {
			v = 0xff
		}

		o := pixel * pixelDepth
		scr.pixels[o] = v
		scr.pixels[o+1] = v
		scr.pixels[o+2] = v
		scr.pixels[o+3] = 0xff
	}

	if err := scr.texture.Update(nil, scr.pixels, memorymap.DisplayWidth*pixelDepth); err != nil {
		return err
	}
	if err := scr.renderer.Clear(); err != nil {
		return err
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return err
	}
	scr.renderer.Present()

	return nil
}

// SetSound services the beeper. Call once per frame with the current state
// of the machine's sound condition.
func (scr *SdlPlay) SetSound(on bool) error {
	return scr.aud.SetSound(on)
}

// PollEvent returns the next pending window or keyboard event. An Event
// with ID of EventNone is returned when there is nothing pending.
func (scr *SdlPlay) PollEvent() Event {
	ev := sdl.PollEvent()

	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return Event{ID: EventQuit}

	case *sdl.KeyboardEvent:
		if ev.Repeat != 0 {
			break
		}
		switch ev.Type {
		case sdl.KEYDOWN:
			return Event{ID: EventKeyDown, Key: rune(ev.Keysym.Sym)}
		case sdl.KEYUP:
			return Event{ID: EventKeyUp, Key: rune(ev.Keysym.Sym)}
		}
	}

	return Event{ID: EventNone}
}
