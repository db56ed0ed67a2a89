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


// Package termloop implements a terminal driver on top of termloop.
//
// The screen is drawn with one terminal cell per pixel next to a panel that
// shows the stack, the registers and a log of recent events. The keypad is
// mapped to the left side of a qwerty keyboard:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
//
// The arrow keys also work as 2, 4, 6 and 8. Escape ends the session.
package termloop

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
	"unicode"

	"github.com/AhmadJanjua/Emulator/hachi"
	tl "github.com/JoelOtter/termloop"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/term"
)

const (
	// terminal position of the screen preview
	screenX = 20
	screenY = 5

	eventLogSize = 10

	// termbox only reports key presses, so keys are released automatically
	// after this long
	keyHold = 100 * time.Millisecond
)

// ErrNotTerminal is returned by OnInit when stdout is not a terminal.
var ErrNotTerminal = errors.New("termloop driver needs a terminal")

var runeMap = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}

var keyMap = map[tl.Key]uint8{
	tl.KeyArrowUp:    0x2,
	tl.KeyArrowLeft:  0x4,
	tl.KeyArrowRight: 0x6,
	tl.KeyArrowDown:  0x8,
}

// keypadKey returns the keypad key a terminal event stands for.
func keypadKey(ev tl.Event) (uint8, bool) {
	if ev.Type != tl.EventKey {
		return 0, false
	}
	if ev.Ch != 0 {
		key, ok := runeMap[unicode.ToLower(ev.Ch)]
		return key, ok
	}
	key, ok := keyMap[ev.Key]
	return key, ok
}

// A Driver is a terminal-based driver that uses the termloop library.
// It shows the current emulator state in real time next to the screen.
type Driver struct {
	// back buffer the emulator draws into
	hachi.Framebuffer
	keys hachi.Keypad
	// when each key was last pressed
	pressed [16]time.Time
	now     func() time.Time

	// what the canvas shows, updated on Present
	front hachi.Framebuffer

	g         *tl.Game
	registers *tl.Text
	pointers  *tl.Text
	devices   *tl.Text
	status    *tl.Text
	stack     [hachi.StackSize]*tl.Text
	events    [eventLogSize]*tl.Text

	// set once the emulator stopped for good
	err    error
	halted bool
}

// New returns a termloop driver. The terminal is only taken over when Run
// is called.
func New() *Driver {
	return &Driver{now: time.Now}
}

func (d *Driver) logEvent(s string) {
	for i := eventLogSize - 1; i > 0; i-- {
		d.events[i].SetText(d.events[i-1].Text())
	}
	d.events[0].SetText(s)
}

func (d *Driver) OnInit(c *hachi.Chip8) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	d.g = tl.NewGame()
	d.g.SetEndKey(tl.KeyEsc)
	scr := d.g.Screen()
	scr.SetFps(float64(time.Second / c.Settings().TimerInterval))

	scr.AddEntity(tl.NewText(0, 0, "Stack   Events", tl.ColorDefault, tl.ColorDefault))
	for i := range d.stack {
		d.stack[i] = tl.NewText(0, i+1, "", tl.ColorDefault, tl.ColorDefault)
		scr.AddEntity(d.stack[i])
	}
	for i := range d.events {
		d.events[i] = tl.NewText(8, i+1, "", tl.ColorDefault, tl.ColorDefault)
		scr.AddEntity(d.events[i])
	}

	d.registers = tl.NewText(screenX, 0, "", tl.ColorDefault, tl.ColorDefault)
	d.pointers = tl.NewText(screenX, 1, "", tl.ColorDefault, tl.ColorDefault)
	d.devices = tl.NewText(screenX, 2, "", tl.ColorDefault, tl.ColorDefault)
	d.status = tl.NewText(screenX, 3, "Running, press Esc to quit",
		tl.ColorDefault, tl.ColorDefault)
	scr.AddEntity(d.registers)
	scr.AddEntity(d.pointers)
	scr.AddEntity(d.devices)
	scr.AddEntity(d.status)

	scr.AddEntity(&canvas{d})

	c.Logger().Debug("Termloop driver initialized")
	return nil
}

func (d *Driver) Clear() {
	d.Framebuffer.Clear()
	d.logEvent("CLS")
}

// Present makes the back buffer visible.
func (d *Driver) Present() { d.front = d.Framebuffer }

func (d *Driver) Beep() { d.logEvent("BEEP") }

// PollEvents releases keys that have been held for long enough. Key presses
// arrive through the input entity and quitting is handled by termloop's end
// key.
func (d *Driver) PollEvents() error {
	now := d.now()
	for key := uint8(0); key < 16; key++ {
		if d.keys.IsKeyDown(key) && now.Sub(d.pressed[key]) > keyHold {
			d.keys.Release(key)
		}
	}
	return nil
}

func (d *Driver) IsKeyDown(key uint8) bool { return d.keys.IsKeyDown(key) }

func (d *Driver) press(key uint8) {
	d.keys.Press(key)
	d.pressed[key] = d.now()
}

// Run takes over the terminal and runs the emulator until Escape is pressed.
// When ctx is cancelled or the emulator fails, execution stops and the
// reason is shown until the user leaves. The emulator error, if any, is
// returned.
func (d *Driver) Run(ctx context.Context, c *hachi.Chip8) error {
	d.g.Screen().AddEntity(&emulator{ctx: ctx, c: c, d: d})
	d.g.Start()
	return d.err
}

// halt stops the emulator and shows why.
func (d *Driver) halt(reason string) {
	d.halted = true
	d.status.SetText(reason + ", press Esc to quit")
}

func (d *Driver) update(c *hachi.Chip8) {
	d.registers.SetText(fmt.Sprintf("Registers: % 02X", c.V))
	d.pointers.SetText(fmt.Sprintf("I: %04X SP: %v, PC: %04X, DT: %02X, ST: %02X",
		c.I, c.SP, c.PC, c.DT, c.ST))
	d.devices.SetText(fmt.Sprintf("Keyboard: %016b, Faults: %v",
		uint16(d.keys), c.Faults()))

	for i := range d.stack {
		if i < c.SP {
			d.stack[i].SetText(fmt.Sprintf("%04X", c.Stack[i]))
		} else {
			d.stack[i].SetText("")
		}
	}
}

// -----------------------------------------------------------------------------

// canvas draws the presented frame, one cell per pixel.
type canvas struct{ d *Driver }

func (v *canvas) Draw(s *tl.Screen) {
	for y := 0; y < hachi.DisplayHeight; y++ {
		for x := 0; x < hachi.DisplayWidth; x++ {
			if v.d.front.GetPixel(x, y) {
				s.RenderCell(screenX+x, screenY+y, &tl.Cell{Bg: tl.ColorWhite, Ch: ' '})
			}
		}
	}
}

func (v *canvas) Tick(ev tl.Event) {}

// emulator runs one frame on every Draw and feeds key events to the driver.
// Draw is used because Tick is only called on input.
type emulator struct {
	ctx context.Context
	c   *hachi.Chip8
	d   *Driver
}

func (e *emulator) Draw(s *tl.Screen) {
	if e.d.halted {
		return
	}
	if e.ctx.Err() != nil {
		e.d.halt("Stopped")
		return
	}

	if err := e.c.Frame(); err != nil {
		if errors.Is(err, hachi.ErrQuit) {
			e.d.halt("Finished")
			return
		}
		e.d.err = err
		e.d.halt(fmt.Sprintf("Error: %v", err))
		e.c.Logger().Error("Emulator stopped", log.Err(err),
			log.String("state", e.c.String()))
		return
	}
	e.d.update(e.c)
}

func (e *emulator) Tick(ev tl.Event) {
	if key, ok := keypadKey(ev); ok {
		e.d.press(key)
	}
}

// -----------------------------------------------------------------------------

func init() {
	err := hachi.RegisterDriver("termloop", func() hachi.Driver { return New() })
	if err != nil {
		panic(err)
	}
}
