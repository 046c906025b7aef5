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

package video_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8/hardware/video"
	"github.com/jetsetilly/gopher8/test"
)

func newTestVideo() (*video.Video, *memory.RAM) {
	mem := memory.NewRAM()
	return video.NewVideo(mem), mem
}

func TestDrawSprite(t *testing.T) {
	vid, _ := newTestVideo()

	sprite := []uint8{0b10000001}
	collision := vid.DrawSprite(0, 0, sprite)
	test.Equate(t, collision, false)

	test.Equate(t, vid.Pixel(0, 0), true)
	test.Equate(t, vid.Pixel(7, 0), true)
	test.Equate(t, vid.Pixel(1, 0), false)
}

func TestDoubleDrawRestores(t *testing.T) {
	vid, _ := newTestVideo()

	sprite := []uint8{0xff, 0x81}

	collision := vid.DrawSprite(10, 10, sprite)
	test.Equate(t, collision, false)

	// the second identical draw collides and erases the first
	collision = vid.DrawSprite(10, 10, sprite)
	test.Equate(t, collision, true)

	for y := 0; y < memorymap.DisplayHeight; y++ {
		for x := 0; x < memorymap.DisplayWidth; x++ {
			if vid.Pixel(x, y) {
				t.Fatalf("pixel (%d,%d) still set after double draw", x, y)
			}
		}
	}
}

func TestPartialOverlapCollision(t *testing.T) {
	vid, _ := newTestVideo()

	_ = vid.DrawSprite(0, 0, []uint8{0b11000000})

	// overlaps only in the second pixel column
	collision := vid.DrawSprite(1, 0, []uint8{0b10000000})
	test.Equate(t, collision, true)

	// the overlapping pixel flipped off, the non-overlapping one stayed
	test.Equate(t, vid.Pixel(0, 0), true)
	test.Equate(t, vid.Pixel(1, 0), false)
}

func TestWrapHorizontal(t *testing.T) {
	vid, _ := newTestVideo()

	// drawing at x=60 wraps the last four pixels to the left edge
	collision := vid.DrawSprite(60, 5, []uint8{0xff})
	test.Equate(t, collision, false)

	for x := 60; x < 64; x++ {
		test.Equate(t, vid.Pixel(x, 5), true)
	}
	for x := 0; x < 4; x++ {
		test.Equate(t, vid.Pixel(x, 5), true)
	}
	test.Equate(t, vid.Pixel(4, 5), false)
}

func TestWrapVertical(t *testing.T) {
	vid, _ := newTestVideo()

	// a two row sprite at the bottom row wraps to the top
	collision := vid.DrawSprite(0, 31, []uint8{0x80, 0x80})
	test.Equate(t, collision, false)

	test.Equate(t, vid.Pixel(0, 31), true)
	test.Equate(t, vid.Pixel(0, 0), true)
}

func TestCorners(t *testing.T) {
	vid, _ := newTestVideo()

	_ = vid.DrawSprite(0, 0, []uint8{0x80})
	_ = vid.DrawSprite(63, 31, []uint8{0x80})

	test.Equate(t, vid.Pixel(0, 0), true)
	test.Equate(t, vid.Pixel(63, 31), true)
}

func TestClear(t *testing.T) {
	vid, _ := newTestVideo()

	_ = vid.DrawSprite(20, 20, []uint8{0xff})
	vid.Clear()

	test.Equate(t, vid.Pixel(20, 20), false)
}

func TestNeedsRedraw(t *testing.T) {
	vid, _ := newTestVideo()

	// a fresh display matches the shadow copy
	test.Equate(t, vid.NeedsRedraw(), false)

	_ = vid.DrawSprite(0, 0, []uint8{0xff})
	test.Equate(t, vid.NeedsRedraw(), true)

	// Draw() snapshots the frame buffer
	_ = vid.Draw()
	test.Equate(t, vid.NeedsRedraw(), false)

	// drawing the same sprite again erases it, which is still a change
	_ = vid.DrawSprite(0, 0, []uint8{0xff})
	test.Equate(t, vid.NeedsRedraw(), true)
}

func TestStringFormat(t *testing.T) {
	vid, _ := newTestVideo()
	_ = vid.DrawSprite(0, 0, []uint8{0x80})

	lines := strings.Split(strings.TrimRight(vid.String(), "\n"), "\n")

	// border, 32 rows, border
	test.Equate(t, len(lines), memorymap.DisplayHeight+2)

	// top-left pixel renders as '#' just inside the border
	test.Equate(t, lines[1][:2], "|#")
}
