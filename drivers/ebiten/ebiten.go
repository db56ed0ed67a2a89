//go:build !headless

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


// Package ebiten implements a window driver on top of Ebitengine.
//
// Each CHIP-8 pixel is drawn as a 10x10 block. The keypad is mapped to
// 1234/QWER/ASDF/ZXCV, Escape or closing the window ends the session.
package ebiten

import (
	"context"
	"errors"
	"image/color"
	"time"

	"github.com/AhmadJanjua/Emulator/hachi"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const scale = 10

var (
	foreground = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	background = color.RGBA{0x00, 0x00, 0x00, 0xFF}
)

// keyMap maps keypad keys to keyboard keys.
var keyMap = [16]ebiten.Key{
	0x1: ebiten.Key1, 0x2: ebiten.Key2, 0x3: ebiten.Key3, 0xC: ebiten.Key4,
	0x4: ebiten.KeyQ, 0x5: ebiten.KeyW, 0x6: ebiten.KeyE, 0xD: ebiten.KeyR,
	0x7: ebiten.KeyA, 0x8: ebiten.KeyS, 0x9: ebiten.KeyD, 0xE: ebiten.KeyF,
	0xA: ebiten.KeyZ, 0x0: ebiten.KeyX, 0xB: ebiten.KeyC, 0xF: ebiten.KeyV,
}

// A Driver shows the screen in a window. It implements ebiten.Game and runs
// one emulator frame per update.
type Driver struct {
	hachi.Framebuffer
	keys hachi.Keypad

	ctx context.Context
	c   *hachi.Chip8
	err error

	// RGBA pixels of the last presented frame
	pixels []byte
	image  *ebiten.Image
}

// New returns an ebiten driver. The window is opened by Run.
func New() *Driver {
	return &Driver{
		ctx:    context.Background(),
		pixels: make([]byte, hachi.DisplayWidth*hachi.DisplayHeight*4),
	}
}

func (d *Driver) OnInit(c *hachi.Chip8) error {
	ebiten.SetWindowSize(hachi.DisplayWidth*scale, hachi.DisplayHeight*scale)
	ebiten.SetWindowTitle("hachi")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(int(time.Second / c.Settings().TimerInterval))
	d.Present()
	return nil
}

// Present renders the framebuffer into the pixels Draw uploads.
func (d *Driver) Present() {
	render(d.pixels, &d.Framebuffer)
}

func render(pixels []byte, fb *hachi.Framebuffer) {
	for y := 0; y < hachi.DisplayHeight; y++ {
		for x := 0; x < hachi.DisplayWidth; x++ {
			c := background
			if fb.GetPixel(x, y) {
				c = foreground
			}
			i := (y*hachi.DisplayWidth + x) * 4
			pixels[i], pixels[i+1], pixels[i+2], pixels[i+3] = c.R, c.G, c.B, c.A
		}
	}
}

// Beep is a no-op, there is no audio output.
func (d *Driver) Beep() {}

// PollEvents reads the keyboard state. Escape, closing the window or the
// end of Run's context end the session.
func (d *Driver) PollEvents() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		d.ctx.Err() != nil {
		return hachi.ErrQuit
	}

	for key, k := range keyMap {
		if ebiten.IsKeyPressed(k) {
			d.keys.Press(uint8(key))
		} else {
			d.keys.Release(uint8(key))
		}
	}
	return nil
}

func (d *Driver) IsKeyDown(key uint8) bool { return d.keys.IsKeyDown(key) }

// Run opens the window and blocks until the session ends. It must be called
// from the main goroutine.
func (d *Driver) Run(ctx context.Context, c *hachi.Chip8) error {
	d.ctx = ctx
	d.c = c
	if err := ebiten.RunGame(d); err != nil {
		return err
	}
	return d.err
}

func (d *Driver) Update() error {
	err := d.c.Frame()
	if err == nil {
		return nil
	}
	if !errors.Is(err, hachi.ErrQuit) {
		d.err = err
	}
	return ebiten.Termination
}

func (d *Driver) Draw(screen *ebiten.Image) {
	if d.image == nil {
		d.image = ebiten.NewImage(hachi.DisplayWidth, hachi.DisplayHeight)
	}
	d.image.WritePixels(d.pixels)
	screen.DrawImage(d.image, nil)
}

func (d *Driver) Layout(_, _ int) (int, int) {
	return hachi.DisplayWidth, hachi.DisplayHeight
}

func init() {
	err := hachi.RegisterDriver("ebiten", func() hachi.Driver { return New() })
	if err != nil {
		panic(err)
	}
}
