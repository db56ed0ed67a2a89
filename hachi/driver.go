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

import (
	"context"
	"fmt"
	"sort"
)

// Display is the screen the emulator draws on. It owns the pixel storage;
// the emulator only reads and writes single pixels through it.
type Display interface {
	// Sets the pixel at x,y (0..63, 0..31).
	SetPixel(x, y int, on bool)
	// Returns the pixel at x,y.
	GetPixel(x, y int) bool
	// Turns every pixel off.
	Clear()
	// Shows the current pixels on screen. Called once per timer tick.
	Present()
}

// Input is the hex keypad.
type Input interface {
	// Updates the held key state. Returns ErrQuit when the user asked to
	// end the session.
	PollEvents() error
	// Reports whether the key (0x0..0xF) is currently held.
	IsKeyDown(key uint8) bool
}

// A Driver is an interface through which the emulator can perform platform
// specific calls.
// Drivers should be registered by the RegisterDriver function in init().
type Driver interface {
	Display
	Input
	// Called before the emulator starts executing the program.
	OnInit(c *Chip8) error
	// Plays a beeping sound (this will be called every 1/60th of a second
	// while the sound timer is running)
	Beep()
	// Runs the emulator until the session ends, pacing frames the way the
	// platform wants. Returns nil when the user quits or ctx is cancelled.
	Run(ctx context.Context, c *Chip8) error
}

// -----------------------------------------------------------------------------

var drivers map[string]func() Driver

// RegisterDriver registers a driver constructor to a name. The driver can
// then be used by passing its name to New.
// This is not thread-safe, so don't call it concurrently to the emulator's
// execution.
func RegisterDriver(name string, newDriver func() Driver) error {
	if drivers[name] != nil {
		return fmt.Errorf("driver %s already exists", name)
	}
	drivers[name] = newDriver
	return nil
}

// UnregisterDriver unloads a previously registered driver.
// This is not thread-safe, so don't call it concurrently to the emulator's
// execution.
func UnregisterDriver(name string) error {
	if drivers[name] == nil {
		return fmt.Errorf("driver %s does not exist", name)
	}
	delete(drivers, name)
	return nil
}

// Drivers returns the names of all registered drivers, sorted.
func Drivers() []string {
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupDriver(name string) (Driver, error) {
	newDriver := drivers[name]
	if newDriver == nil {
		return nil, fmt.Errorf("driver %s not found (available: %v)", name, Drivers())
	}
	return newDriver(), nil
}

// -----------------------------------------------------------------------------

// A NullDriver is the default driver. It keeps the screen in memory, never
// reports a key press and runs the emulator at 60 frames per second until
// the context is cancelled.
type NullDriver struct {
	Framebuffer
	Keypad
	// Number of Present and Beep calls so far.
	Presents, Beeps int
}

func (d *NullDriver) OnInit(c *Chip8) error { return nil }
func (d *NullDriver) Present()              { d.Presents++ }
func (d *NullDriver) Beep()                 { d.Beeps++ }
func (d *NullDriver) PollEvents() error     { return nil }

func (d *NullDriver) Run(ctx context.Context, c *Chip8) error {
	return c.Run(ctx)
}

// -----------------------------------------------------------------------------

func init() {
	drivers = make(map[string]func() Driver)

	err := RegisterDriver("null", func() Driver { return &NullDriver{} })
	if err != nil {
		panic(err)
	}
}
