/*
	Copyright 2015 Franc[e]sco (lolisamurai@tfwno.gf)
	This file is part of go-hachi.
	go-hachi is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.
	go-hachi is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.
	You should have received a copy of the GNU General Public License
	along with go-hachi. If not, see <http://www.gnu.org/licenses/>.
*/


package hachi

const (
	// DisplayWidth and DisplayHeight are the screen size in pixels.
	DisplayWidth  = 64
	DisplayHeight = 32
)

// A Framebuffer is a 64x32 monochrome pixel grid. Drivers embed it as the
// storage behind their Display implementation.
type Framebuffer struct {
	pixels [DisplayWidth * DisplayHeight]bool
}

// SetPixel turns the pixel at x,y on or off. Coordinates outside the grid
// are ignored.
func (f *Framebuffer) SetPixel(x, y int, on bool) {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return
	}
	f.pixels[y*DisplayWidth+x] = on
}

// GetPixel returns the state of the pixel at x,y. Pixels outside the grid
// are always off.
func (f *Framebuffer) GetPixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return f.pixels[y*DisplayWidth+x]
}

// Clear turns every pixel off.
func (f *Framebuffer) Clear() {
	clear(f.pixels[:])
}

// Lit returns the number of pixels that are on.
func (f *Framebuffer) Lit() (n int) {
	for _, on := range f.pixels {
		if on {
			n++
		}
	}
	return
}

// -----------------------------------------------------------------------------

// Key flags for the Keypad bitfield.
const (
	Key0 = 1 << iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
)

// Key flags mapped by number.
var KeyFlags = [16]uint16{Key0, Key1, Key2, Key3, Key4, Key5, Key6, Key7,
	Key8, Key9, KeyA, KeyB, KeyC, KeyD, KeyE, KeyF}

// A Keypad is a hex keyboard with 16 keys, stored as a bitfield of held keys.
// 8, 4, 6 and 2 are typically used for directional input.
type Keypad uint16

// Press marks key as held. Only the low nibble of key is used.
func (k *Keypad) Press(key uint8) { *k |= Keypad(KeyFlags[key&0x0F]) }

// Release marks key as not held.
func (k *Keypad) Release(key uint8) { *k &^= Keypad(KeyFlags[key&0x0F]) }

// IsKeyDown reports whether key is currently held.
func (k Keypad) IsKeyDown(key uint8) bool {
	return uint16(k)&KeyFlags[key&0x0F] != 0
}
