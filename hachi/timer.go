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

import "time"

// A Clock tells the interpreter the current time. Timer ticks are derived
// from it, so tests can drive the 60hz timers without sleeping.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock used by default.
var SystemClock Clock = systemClock{}

// tickTimers retires every whole TimerInterval elapsed since the last tick:
// DT and ST count down (never below zero), the driver beeps while ST is
// running and the display is presented once per tick.
func (c *Chip8) tickTimers() {
	now := c.clock.Now()

	if c.lastTimerUpdate.IsZero() {
		c.lastTimerUpdate = now
		return
	}

	for now.Sub(c.lastTimerUpdate) >= c.settings.TimerInterval {
		if c.DT > 0 {
			c.DT--
		}
		if c.ST > 0 {
			c.ST--
			c.driver.Beep()
		}
		c.driver.Present()
		c.ticks++
		c.lastTimerUpdate = c.lastTimerUpdate.Add(c.settings.TimerInterval)
	}
}

// Ticks returns the number of timer ticks retired so far.
func (c *Chip8) Ticks() uint64 { return c.ticks }
