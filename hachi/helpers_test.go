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


package hachi_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AhmadJanjua/Emulator/hachi"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// testDriver keeps the screen and keypad in memory and counts the calls the
// emulator makes.
type testDriver struct {
	hachi.Framebuffer
	hachi.Keypad
	clears, presents, beeps int
	quit                    bool
	pollErr                 error
}

func (d *testDriver) OnInit(c *hachi.Chip8) error { return nil }
func (d *testDriver) Present()                    { d.presents++ }
func (d *testDriver) Beep()                       { d.beeps++ }

func (d *testDriver) Clear() {
	d.clears++
	d.Framebuffer.Clear()
}

func (d *testDriver) PollEvents() error {
	if d.quit {
		return hachi.ErrQuit
	}
	return d.pollErr
}

func (d *testDriver) Run(ctx context.Context, c *hachi.Chip8) error {
	return c.Run(ctx)
}

// fakeClock only moves when told to.
type fakeClock struct{ now time.Time }

func (f *fakeClock) Now() time.Time          { return f.now }
func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

var errDriver = errors.New("driver failure")

// words converts opcode words to a big-endian program image.
func words(ws ...uint16) []byte {
	b := make([]byte, 0, len(ws)*2)
	for _, w := range ws {
		b = append(b, byte(w>>8), byte(w))
	}
	return b
}

// newTestChip8 returns an emulator with program loaded, a fake clock and a
// fixed RND seed.
func newTestChip8(t *testing.T, s *hachi.Settings, program ...uint16) (*hachi.Chip8, *testDriver, *fakeClock) {
	t.Helper()

	settings := hachi.DefaultSettings()
	if s != nil {
		settings = *s
	}
	settings.Seed = 1

	drv := &testDriver{}
	c, err := hachi.NewWithDriver(drv, &settings, log.NewTestLogger(t))
	assert.NoError(t, err)

	clock := &fakeClock{now: time.Unix(0, 0)}
	c.SetClock(clock)

	if len(program) > 0 {
		assert.NoError(t, c.LoadRaw(words(program...)))
	}
	return c, drv, clock
}

// steps runs n steps and fails the test on the first error.
func steps(t *testing.T, c *hachi.Chip8, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		assert.NoError(t, c.Step())
	}
}
